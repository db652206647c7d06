package cmd

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"ff00ff":  {255, 0, 255, 255},
		"#102030": {16, 32, 48, 255},
		" 000000": {0, 0, 0, 255},
	}
	for in, want := range cases {
		got, err := parseHexColor(in)
		if err != nil {
			t.Errorf("parseHexColor(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("parseHexColor(%q) = %v, want %v", in, got, want)
		}
	}
	for _, bad := range []string{"", "fff", "gg0000", "#1234567"} {
		if _, err := parseHexColor(bad); err == nil {
			t.Errorf("parseHexColor(%q) should fail", bad)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		512:     "512 B",
		2048:    "2.0 KB",
		3 << 20: "3.0 MB",
	}
	for in, want := range cases {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
