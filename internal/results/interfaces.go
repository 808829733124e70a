// Package results はテスト結果PDFの生成とWhatsApp共有のフローを提供する。
package results

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=results

import (
	"context"

	"github.com/omkar381/pcc-console/internal/api"
)

// PDFAPI はPDF生成・共有リンク取得のインターフェース。
type PDFAPI interface {
	GenerateResultsPDF(ctx context.Context, testID int) (string, error)
	ShareResultsWhatsApp(ctx context.Context, testID int) (*api.WhatsAppShare, error)
}
