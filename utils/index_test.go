package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alice Rao", "Alice_Rao"},
		{"Bob O'Neil-Singh", "Bob_ONeilSingh"},
		{"J.R. D'Souza Jr.", "JR_DSouza_Jr"},
		{"plain", "plain"},
		{"M/S. Traders & Co", "MS_Traders__Co"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatWithThousands(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"45000", "45,000.00"},
		{"1234567.5", "1,234,567.50"},
		{"999.99", "999.99"},
		{"-12345.6", "-12,345.60"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad test input %q: %v", tc.in, err)
		}
		if got := FormatWithThousands(d); got != tc.want {
			t.Errorf("FormatWithThousands(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCountWithThousands(t *testing.T) {
	if got := FormatCountWithThousands(1234567); got != "1,234,567" {
		t.Errorf("FormatCountWithThousands(1234567) = %q", got)
	}
	if got := FormatCountWithThousands(42); got != "42" {
		t.Errorf("FormatCountWithThousands(42) = %q", got)
	}
}
