package cli

import (
	"testing"

	"github.com/girlmathhq/girlmath/internal/engine"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.5, "$3.50"},
		{99.99, "$99.99"},
		{150, "$150"},
		{999.4, "$999"},
		{1250, "$1,250"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyPtr(t *testing.T) {
	if got := FormatMoneyPtr(nil); got != NotAvailable {
		t.Errorf("nil = %q, want %q", got, NotAvailable)
	}
	v := 2.5
	if got := FormatMoneyPtr(&v); got != "$2.50" {
		t.Errorf("2.5 = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q", got)
	}
	if got := FormatNumber(-4200); got != "-4,200" {
		t.Errorf("FormatNumber = %q", got)
	}
}

func TestFormatSavings(t *testing.T) {
	if got := FormatSavings(0, 0); got != NotAvailable {
		t.Errorf("no savings = %q", got)
	}
	if got := FormatSavings(25, 25); got != "$25.00 (25% off)" {
		t.Errorf("savings = %q", got)
	}
}

func TestFormatPoints(t *testing.T) {
	f := engine.FactorScore{Points: 20, Max: 25}
	if got := FormatPoints(f); got != "20/25" {
		t.Errorf("FormatPoints = %q", got)
	}
}
