package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFormatKeyBindingHint(t *testing.T) {
	tests := []struct {
		name     string
		bindings []KeyBinding
		want     string
	}{
		{
			name:     "empty",
			bindings: nil,
			want:     "",
		},
		{
			name: "function key",
			bindings: []KeyBinding{
				{Key: tcell.KeyF5, Description: "Refresh"},
			},
			want: "F5: Refresh",
		},
		{
			name: "rune key",
			bindings: []KeyBinding{
				{Rune: 'g', Description: "Generate PDF"},
			},
			want: "g: Generate PDF",
		},
		{
			name: "mixed keys joined with separator",
			bindings: []KeyBinding{
				{Key: tcell.KeyF2, Description: "Create"},
				{Rune: 'd', Description: "Delete"},
				{Key: tcell.KeyCtrlQ, Description: "Exit"},
			},
			want: "F2: Create | d: Delete | Ctrl+Q: Exit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatKeyBindingHint(tt.bindings)
			if got != tt.want {
				t.Errorf("FormatKeyBindingHint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultStatusHints(t *testing.T) {
	got := FormatKeyBindingHint(DefaultStatusHints())
	want := "F1: Help | q: Back | Ctrl+Q: Exit"
	if got != want {
		t.Errorf("default hint = %q, want %q", got, want)
	}
}
