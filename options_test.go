package paint

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.background != White {
		t.Errorf("background = %v, want white", o.background)
	}
	if o.strokeWidth != DefaultStrokeWidth {
		t.Errorf("strokeWidth = %v, want %v", o.strokeWidth, DefaultStrokeWidth)
	}
	if o.strokeColor != Black {
		t.Errorf("strokeColor = %v, want black", o.strokeColor)
	}
	if o.fontSize != DefaultFontSize || o.fontFamily != DefaultFontFamily {
		t.Errorf("font = %dpx %s, want %dpx %s", o.fontSize, o.fontFamily, DefaultFontSize, DefaultFontFamily)
	}
	if o.fonts != nil || o.persistent != nil || o.overlay != nil {
		t.Error("default options carry surfaces or a font book")
	}
}

func TestOptions_IgnoreNonPositive(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero width", WithStrokeWidth(0)},
		{"negative width", WithStrokeWidth(-2)},
		{"zero font size", WithFontSize(0)},
		{"negative font size", WithFontSize(-12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if o != defaultOptions() {
				t.Errorf("option changed defaults: %+v", o)
			}
		})
	}
}

func TestOptions_Apply(t *testing.T) {
	fonts := NewFontBook()
	p, ov := newMemSurface(4, 4), newMemSurface(4, 4)

	o := defaultOptions()
	for _, opt := range []Option{
		WithBackground(Pink),
		WithStrokeWidth(3),
		WithStrokeColor(Jade),
		WithFontSize(20),
		WithFontFamily("monospace"),
		WithFontBook(fonts),
		WithSurfaces(p, ov),
	} {
		opt(&o)
	}

	if o.background != Pink || o.strokeWidth != 3 || o.strokeColor != Jade {
		t.Errorf("style = %v %v %v", o.background, o.strokeWidth, o.strokeColor)
	}
	if o.fontSize != 20 || o.fontFamily != "monospace" || o.fonts != fonts {
		t.Errorf("font = %d %q %p", o.fontSize, o.fontFamily, o.fonts)
	}
	if o.persistent != p || o.overlay != ov {
		t.Error("surfaces not applied")
	}
}
