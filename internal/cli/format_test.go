package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{90000, "90,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatWon(t *testing.T) {
	if got := FormatWon(90000); got != "90,000원" {
		t.Errorf("FormatWon(90000) = %q", got)
	}
}

func TestFormatAccount(t *testing.T) {
	got := FormatAccount("주거래 통장", "110-123-456789")
	if got != "주거래 통장 (110-123-456789)" {
		t.Errorf("FormatAccount() = %q", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(3.5); got != "연 3.50%" {
		t.Errorf("FormatRate(3.5) = %q", got)
	}
}
