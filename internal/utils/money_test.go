package utils

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1500, "ARS", "ARS 1.500,00"},
		{1234567.89, "ARS", "ARS 1.234.567,89"},
		{0, "ARS", "ARS 0,00"},
		{-250.5, "USD", "USD -250,50"},
		// los centavos que redondean hacia arriba suben la parte entera
		{0.995, "ARS", "ARS 1,00"},
		{1999.995, "USD", "USD 2.000,00"},
		{-0.995, "ARS", "ARS -1,00"},
		{2.675, "USD", "USD 2,68"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.amount, tc.currency); got != tc.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}
