package textbox

import "errors"
import "image/color"
import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#FFFFFF", color.NRGBA{255, 255, 255, 255}},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
		{"#FF8800", color.NRGBA{255, 136, 0, 255}},
		{"#F80", color.NRGBA{255, 136, 0, 255}}, // short form doubles each nibble
		{"#2E3440", color.NRGBA{46, 52, 64, 255}},
		{"#abc", color.NRGBA{170, 187, 204, 255}},
	}
	for _, test := range tests {
		got, err := ParseHex(test.input)
		if err != nil { t.Fatalf("ParseHex(%q) failed: %s", test.input, err) }
		if got != test.want {
			t.Fatalf("ParseHex(%q) = %v, expected %v", test.input, got, test.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, input := range []string{"", "F80", "#F8", "#FFFF", "#FFFFF", "#FFFFFFF", "#GGG", "#12345G", "red"} {
		_, err := ParseHex(input)
		if !errors.Is(err, ErrInvalidColorFormat) {
			t.Fatalf("ParseHex(%q): expected ErrInvalidColorFormat, got %v", input, err)
		}
	}
}

func TestChannels(t *testing.T) {
	got, err := Channels(255, 136, 0)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if got != (color.NRGBA{255, 136, 0, 255}) {
		t.Fatalf("expected opaque color, got %v", got)
	}

	got, err = Channels(10, 20, 30, 40)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if got != (color.NRGBA{10, 20, 30, 40}) {
		t.Fatalf("expected alpha-aware color, got %v", got)
	}
}

func TestChannelsInvalid(t *testing.T) {
	cases := [][]int{
		{}, {1}, {1, 2}, {1, 2, 3, 4, 5}, // wrong arity
		{-1, 0, 0}, {0, 256, 0}, {0, 0, 0, 300}, // out of range
	}
	for _, values := range cases {
		_, err := Channels(values...)
		if !errors.Is(err, ErrInvalidColorFormat) {
			t.Fatalf("Channels(%v): expected ErrInvalidColorFormat, got %v", values, err)
		}
	}
}
