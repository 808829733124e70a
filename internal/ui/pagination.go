package ui

import "fmt"

// Pagination はページネーション状態を管理する。
type Pagination struct {
	TotalItems  int
	PageSize    int
	CurrentPage int
}

// DefaultPageSize はリスト画面のデフォルトページサイズ
const DefaultPageSize = 25

// NewPagination は新しいPaginationを生成する。
func NewPagination(pageSize int) *Pagination {
	return &Pagination{
		PageSize:    pageSize,
		CurrentPage: 1,
	}
}

// SetTotalItems は総アイテム数を設定する。
// ページ番号が範囲外になった場合は調整する。
func (p *Pagination) SetTotalItems(total int) {
	p.TotalItems = total
	if p.CurrentPage > p.TotalPages() {
		p.CurrentPage = p.TotalPages()
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
}

// TotalPages は総ページ数を返す。
func (p *Pagination) TotalPages() int {
	if p.TotalItems == 0 {
		return 1
	}
	pages := p.TotalItems / p.PageSize
	if p.TotalItems%p.PageSize > 0 {
		pages++
	}
	return pages
}

// StartIndex は現在のページの開始インデックスを返す。
func (p *Pagination) StartIndex() int {
	return (p.CurrentPage - 1) * p.PageSize
}

// EndIndex は現在のページの終了インデックス（排他的）を返す。
func (p *Pagination) EndIndex() int {
	end := p.CurrentPage * p.PageSize
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return end
}

// NextPage は次のページに移動する。
func (p *Pagination) NextPage() bool {
	if p.CurrentPage < p.TotalPages() {
		p.CurrentPage++
		return true
	}
	return false
}

// PrevPage は前のページに移動する。
func (p *Pagination) PrevPage() bool {
	if p.CurrentPage > 1 {
		p.CurrentPage--
		return true
	}
	return false
}

// FirstPage は最初のページに移動する。
func (p *Pagination) FirstPage() {
	p.CurrentPage = 1
}

// GetPageItems はスライスから現在のページのアイテムを取得する。
func GetPageItems[T any](items []T, p *Pagination) []T {
	p.SetTotalItems(len(items))
	start := p.StartIndex()
	end := p.EndIndex()
	if start >= len(items) {
		return []T{}
	}
	return items[start:end]
}

// FormatPageInfo はページ情報の文字列を生成する。
func (p *Pagination) FormatPageInfo() string {
	if p.TotalItems == 0 {
		return "No items"
	}
	start := p.StartIndex() + 1
	end := p.EndIndex()
	return fmt.Sprintf("%d-%d of %d (Page %d/%d)", start, end, p.TotalItems, p.CurrentPage, p.TotalPages())
}
