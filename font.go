package paint

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
)

// Text tool defaults.
const (
	DefaultFontSize   = 48
	DefaultFontFamily = "sans-serif"
)

// Font selects a face by pixel size and family name.
type Font struct {
	Size   int
	Family string
}

// String formats the font as a CSS font shorthand, e.g. "48px sans-serif".
func (f Font) String() string {
	return fmt.Sprintf("%dpx %s", f.Size, f.Family)
}

// FontBook resolves font families to gg text faces. Family names are
// matched case-insensitively. The Go font family is bundled under the names
// "sans-serif", "monospace", "bold" and "italic".
//
// A FontBook is not safe for concurrent use.
type FontBook struct {
	fold    cases.Caser
	data    map[string][]byte
	names   map[string]string
	sources map[string]*text.FontSource
	faces   map[Font]text.Face
}

// NewFontBook returns a FontBook holding the bundled Go fonts.
func NewFontBook() *FontBook {
	b := &FontBook{
		fold:    cases.Fold(),
		data:    make(map[string][]byte),
		names:   make(map[string]string),
		sources: make(map[string]*text.FontSource),
		faces:   make(map[Font]text.Face),
	}
	b.add("sans-serif", goregular.TTF)
	b.add("monospace", gomono.TTF)
	b.add("bold", gobold.TTF)
	b.add("italic", goitalic.TTF)
	return b
}

func (b *FontBook) key(family string) string {
	return b.fold.String(strings.TrimSpace(family))
}

func (b *FontBook) add(family string, data []byte) {
	k := b.key(family)
	b.data[k] = data
	b.names[k] = family
	delete(b.sources, k)
	for f := range b.faces {
		if b.key(f.Family) == k {
			delete(b.faces, f)
		}
	}
}

// Register adds or replaces a family from TrueType/OpenType data.
func (b *FontBook) Register(family string, data []byte) error {
	if strings.TrimSpace(family) == "" {
		return fmt.Errorf("%w: empty family name", ErrInvalidFont)
	}
	if _, err := font.ParseTTF(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFont, family, err)
	}
	b.add(family, bytes.Clone(data))
	return nil
}

// RegisterFile adds a family from a font file on disk.
func (b *FontBook) RegisterFile(family, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("paint: read font %s: %w", path, err)
	}
	return b.Register(family, data)
}

// Has reports whether family is registered.
func (b *FontBook) Has(family string) bool {
	_, ok := b.data[b.key(family)]
	return ok
}

// Families returns the registered family names, sorted.
func (b *FontBook) Families() []string {
	out := make([]string, 0, len(b.names))
	for _, n := range b.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Face returns a face for f, parsing the family on first use.
func (b *FontBook) Face(f Font) (text.Face, error) {
	if f.Size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidFont, f.Size)
	}
	k := b.key(f.Family)
	norm := Font{Size: f.Size, Family: k}
	if face, ok := b.faces[norm]; ok {
		return face, nil
	}

	src, ok := b.sources[k]
	if !ok {
		data, ok := b.data[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFont, f.Family)
		}
		var err error
		src, err = text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFont, f.Family, err)
		}
		b.sources[k] = src
	}

	face := src.Face(float64(f.Size))
	b.faces[norm] = face
	return face, nil
}
