package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ConfirmDialog は確認ダイアログを表示する。
type ConfirmDialog struct {
	modal     *tview.Modal
	onConfirm func()
	onCancel  func()
}

// NewConfirmDialog は新しいConfirmDialogを生成する。
func NewConfirmDialog(title, message string, onConfirm, onCancel func()) *ConfirmDialog {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Yes" {
				if onConfirm != nil {
					onConfirm()
				}
			} else {
				if onCancel != nil {
					onCancel()
				}
			}
		})

	modal.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(tcell.ColorWhite)

	return &ConfirmDialog{
		modal:     modal,
		onConfirm: onConfirm,
		onCancel:  onCancel,
	}
}

// GetModal は内部のtview.Modalを返す。
func (d *ConfirmDialog) GetModal() *tview.Modal {
	return d.modal
}

// InfoDialog は情報ダイアログを表示する。
type InfoDialog struct {
	modal   *tview.Modal
	onClose func()
}

// NewInfoDialog は新しいInfoDialogを生成する。
func NewInfoDialog(title, message string, onClose func()) *InfoDialog {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if onClose != nil {
				onClose()
			}
		})

	modal.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(tcell.ColorTeal)

	return &InfoDialog{
		modal:   modal,
		onClose: onClose,
	}
}

// GetModal は内部のtview.Modalを返す。
func (d *InfoDialog) GetModal() *tview.Modal {
	return d.modal
}

// ErrorDialog はエラーダイアログを表示する。
type ErrorDialog struct {
	modal   *tview.Modal
	onClose func()
}

// NewErrorDialog は新しいErrorDialogを生成する。
func NewErrorDialog(title, message string, onClose func()) *ErrorDialog {
	modal := tview.NewModal().
		SetText("✗ ERROR\n\n" + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if onClose != nil {
				onClose()
			}
		})

	modal.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(tcell.ColorRed)

	return &ErrorDialog{
		modal:   modal,
		onClose: onClose,
	}
}

// GetModal は内部のtview.Modalを返す。
func (d *ErrorDialog) GetModal() *tview.Modal {
	return d.modal
}

// InputDialog は入力ダイアログを表示する。
type InputDialog struct {
	form     *tview.Form
	onSubmit func(value string)
	onCancel func()
}

// NewInputDialog は新しいInputDialogを生成する。
func NewInputDialog(title, label, defaultValue string, onSubmit func(value string), onCancel func()) *InputDialog {
	form := tview.NewForm()

	form.AddInputField(label, defaultValue, 20, nil, nil)
	form.AddButton("OK", func() {
		value := form.GetFormItemByLabel(label).(*tview.InputField).GetText()
		if onSubmit != nil {
			onSubmit(value)
		}
	})
	form.AddButton("Cancel", func() {
		if onCancel != nil {
			onCancel()
		}
	})

	form.SetBorder(true).
		SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorWhite)

	return &InputDialog{
		form:     form,
		onSubmit: onSubmit,
		onCancel: onCancel,
	}
}

// GetForm は内部のtview.Formを返す。
func (d *InputDialog) GetForm() *tview.Form {
	return d.form
}
