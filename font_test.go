package paint

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/gomedium"
)

func TestFontString(t *testing.T) {
	f := Font{Size: DefaultFontSize, Family: DefaultFontFamily}
	if got := f.String(); got != "48px sans-serif" {
		t.Errorf("String() = %q, want 48px sans-serif", got)
	}
}

func TestFontBook_Bundled(t *testing.T) {
	b := NewFontBook()
	want := []string{"bold", "italic", "monospace", "sans-serif"}
	if got := b.Families(); !slices.Equal(got, want) {
		t.Errorf("Families() = %v, want %v", got, want)
	}
	for _, family := range []string{"sans-serif", "SANS-SERIF", " Monospace "} {
		if !b.Has(family) {
			t.Errorf("Has(%q) = false, want true", family)
		}
	}
	face, err := b.Face(Font{Size: 24, Family: "Sans-Serif"})
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	if face == nil {
		t.Fatal("Face() = nil")
	}
}

func TestFontBook_FaceErrors(t *testing.T) {
	b := NewFontBook()
	if _, err := b.Face(Font{Size: 12, Family: "serif"}); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("Face(serif) error = %v, want ErrUnknownFont", err)
	}
	if _, err := b.Face(Font{Size: 0, Family: "sans-serif"}); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("Face(size 0) error = %v, want ErrInvalidFont", err)
	}
}

func TestFontBook_Register(t *testing.T) {
	b := NewFontBook()
	if err := b.Register("Medium", gomedium.TTF); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !b.Has("medium") {
		t.Error("Has(medium) = false after Register")
	}
	if _, err := b.Face(Font{Size: 16, Family: "MEDIUM"}); err != nil {
		t.Errorf("Face() error = %v", err)
	}

	if err := b.Register("junk", []byte("not a font")); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("Register(junk) error = %v, want ErrInvalidFont", err)
	}
	if b.Has("junk") {
		t.Error("invalid font was registered")
	}
	if err := b.Register("  ", gomedium.TTF); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("Register(blank) error = %v, want ErrInvalidFont", err)
	}
	if err := b.RegisterFile("x", "/nonexistent/font.ttf"); err == nil {
		t.Error("RegisterFile(missing) error = nil")
	}
}
