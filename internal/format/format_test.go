package format

import "testing"

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"valid date", "2026-09-01", "01 Sep 2026"},
		{"invalid passthrough", "not-a-date", "not-a-date"},
		{"empty passthrough", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayDate(tt.date); got != tt.want {
				t.Errorf("DisplayDate(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestMarks(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		max      int
		want     string
	}{
		{"integer marks", 42, 50, "42 / 50"},
		{"half marks", 42.5, 50, "42.5 / 50"},
		{"zero", 0, 50, "0 / 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Marks(tt.obtained, tt.max); got != tt.want {
				t.Errorf("Marks(%v, %d) = %q, want %q", tt.obtained, tt.max, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(85); got != "85%" {
		t.Errorf("Percent(85) = %q", got)
	}
}

func TestPresenceMark(t *testing.T) {
	if got := PresenceMark(true); got != "P" {
		t.Errorf("PresenceMark(true) = %q", got)
	}
	if got := PresenceMark(false); got != "A" {
		t.Errorf("PresenceMark(false) = %q", got)
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1048576, "1.00 MB"},
	}

	for _, tt := range tests {
		if got := Bytes(tt.bytes); got != tt.want {
			t.Errorf("Bytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{"no truncation", "short", 10, "short"},
		{"truncated", "a very long title here", 10, "a very ..."},
		{"multibyte", "物理の配布資料です", 5, "物理..."},
		{"tiny max", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("abcdef", 5); got != "abcdef" {
		t.Errorf("PadRight over width = %q", got)
	}
}
