package colour

import (
	"errors"
	"image/color"
	"testing"
)

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#000000", true},
		{"#abcdef", true},
		{"#ABCDEF", true},
		{"#aBc123", true},
		{"000000", false},
		{"#fff", false},
		{"#ZZZZZZ", false},
		{"#1234567", false},
		{"", false},
		{" #000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidHex(tt.in); got != tt.want {
				t.Errorf("IsValidHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", in: "#FF8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "without hash", in: "777777", want: RGB{R: 119, G: 119, B: 119}},
		{name: "lowercase", in: "#abcdef", want: RGB{R: 0xab, G: 0xcd, B: 0xef}},
		{name: "surrounding space", in: "  #000000\n", want: Black},
		{name: "shorthand", in: "#fff", wantErr: true},
		{name: "bad digit", in: "#ZZZZZZ", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBFormatting(t *testing.T) {
	rgb := RGB{R: 26, G: 43, B: 60}
	if got := rgb.Hex(); got != "#1A2B3C" {
		t.Errorf("Hex() = %q, want %q", got, "#1A2B3C")
	}
	if got := rgb.String(); got != "rgb(26, 43, 60)" {
		t.Errorf("String() = %q, want %q", got, "rgb(26, 43, 60)")
	}

	text, err := rgb.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	var back RGB
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if back != rgb {
		t.Errorf("UnmarshalText(%s) = %+v, want %+v", text, back, rgb)
	}
}

func TestRGBImplementsColor(t *testing.T) {
	var c color.Color = RGB{R: 255, G: 0, B: 128}
	got := color.RGBAModel.Convert(c).(color.RGBA)
	want := color.RGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("RGBAModel.Convert() = %+v, want %+v", got, want)
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex did not panic on invalid input")
		}
	}()
	MustParseHex("#nothex")
}
