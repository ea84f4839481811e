package format

import "testing"

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(12.49); got != "12.5%" {
		t.Errorf("FormatPercent(12.49) = %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestFormatPlayers(t *testing.T) {
	if got := FormatPlayers(3, 20); got != "3/20" {
		t.Errorf("FormatPlayers(3, 20) = %q", got)
	}
	if got := FormatPlayers(3, 0); got != "3" {
		t.Errorf("FormatPlayers(3, 0) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345678, "12,345,678"},
		{-4321, "-4,321"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("a very long string", 10); got != "a very ..." {
		t.Errorf("Truncate long = %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("Truncate zero = %q", got)
	}
}
