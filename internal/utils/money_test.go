package utils

import "testing"

func TestFormatPreco(t *testing.T) {
	cases := []struct {
		value  float64
		places int
		want   string
	}{
		{10.5, 3, "10,500"},
		{15.5, 2, "15,50"},
		{0, 2, "0,00"},
		{1234.5, 2, "1.234,50"},
		{1234567.891, 3, "1.234.567,891"},
		{-42.1, 2, "-42,10"},
		{7, 0, "7"},
	}
	for _, tc := range cases {
		if got := FormatPreco(tc.value, tc.places); got != tc.want {
			t.Errorf("FormatPreco(%v, %d) = %q, want %q", tc.value, tc.places, got, tc.want)
		}
	}
}
