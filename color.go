package paint

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// RGBA is a raw 8-bit colour quadruple, the unit of every
// pixel buffer in this package.
type RGBA struct {
	R, G, B, A uint8
}

// Transparent is the overlay clear colour.
var Transparent = RGBA{}

// NRGBA converts the quadruple to the standard library colour type.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

type colorName uint8

const (
	nameCustom colorName = iota
	nameWhite
	nameBlack
	nameGray
	nameRed
	nameBlue
	nameWaterBlue
	nameYellow
	nameOrange
	nameGreen
	nameJade
	nameBrown
	namePurple
	nameViolet
	namePink
)

var namedColors = [...]struct {
	name  string
	value RGBA
}{
	nameCustom:    {"custom", RGBA{}},
	nameWhite:     {"white", RGBA{255, 255, 255, 255}},
	nameBlack:     {"black", RGBA{0, 0, 0, 255}},
	nameGray:      {"gray", RGBA{128, 128, 128, 255}},
	nameRed:       {"red", RGBA{255, 0, 0, 255}},
	nameBlue:      {"blue", RGBA{0, 0, 255, 255}},
	nameWaterBlue: {"water-blue", RGBA{30, 144, 255, 255}},
	nameYellow:    {"yellow", RGBA{255, 255, 0, 255}},
	nameOrange:    {"orange", RGBA{255, 165, 0, 255}},
	nameGreen:     {"green", RGBA{0, 128, 0, 255}},
	nameJade:      {"jade", RGBA{0, 168, 107, 255}},
	nameBrown:     {"brown", RGBA{165, 42, 42, 255}},
	namePurple:    {"purple", RGBA{128, 0, 128, 255}},
	nameViolet:    {"violet", RGBA{238, 130, 238, 255}},
	namePink:      {"pink", RGBA{255, 192, 203, 255}},
}

// Color is a drawing colour: one of the named palette entries or an
// arbitrary RGBA value built with [Custom]. The zero value is Custom(0,0,0,0).
type Color struct {
	name   colorName
	custom RGBA
}

// Palette colours.
var (
	White     = Color{name: nameWhite}
	Black     = Color{name: nameBlack}
	Gray      = Color{name: nameGray}
	Red       = Color{name: nameRed}
	Blue      = Color{name: nameBlue}
	WaterBlue = Color{name: nameWaterBlue}
	Yellow    = Color{name: nameYellow}
	Orange    = Color{name: nameOrange}
	Green     = Color{name: nameGreen}
	Jade      = Color{name: nameJade}
	Brown     = Color{name: nameBrown}
	Purple    = Color{name: namePurple}
	Violet    = Color{name: nameViolet}
	Pink      = Color{name: namePink}
)

// Palette returns every named colour in declaration order.
func Palette() []Color {
	return []Color{
		White, Black, Gray, Red, Blue, WaterBlue, Yellow,
		Orange, Green, Jade, Brown, Purple, Violet, Pink,
	}
}

// Custom returns an arbitrary colour.
func Custom(r, g, b, a uint8) Color {
	return Color{name: nameCustom, custom: RGBA{r, g, b, a}}
}

// Value resolves the colour to its RGBA quadruple.
func (c Color) Value() RGBA {
	if c.name == nameCustom || int(c.name) >= len(namedColors) {
		return c.custom
	}
	return namedColors[c.name].value
}

// IsCustom reports whether c was built with [Custom].
func (c Color) IsCustom() bool {
	return c.name == nameCustom
}

// Name returns the palette name, or "custom".
func (c Color) Name() string {
	if int(c.name) >= len(namedColors) {
		return namedColors[nameCustom].name
	}
	return namedColors[c.name].name
}

// NRGBA converts the colour to the standard library colour type.
func (c Color) NRGBA() color.NRGBA {
	return c.Value().NRGBA()
}

// String returns the display string used for stroke styles: six hex digits
// with a leading '#'. Alpha is not represented.
func (c Color) String() string {
	v := c.Value()
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

// ParseColor parses a palette name (case-insensitive, "water-blue" or
// "waterblue") or a hex string of the form "#rgb" or "#rrggbb", '#' optional.
// Parsed hex colours are opaque. On failure it returns Black together with
// ErrUnknownColor, so callers that want the fail-soft behaviour can ignore
// the error.
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i := nameWhite; int(i) < len(namedColors); i++ {
		name := namedColors[i].name
		if key == name || key == strings.ReplaceAll(name, "-", "") {
			return Color{name: i}, nil
		}
	}

	hex := strings.TrimPrefix(key, "#")
	if (len(hex) != 3 && len(hex) != 6) || !isHex(hex) {
		return Black, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v := gg.Hex(hex)
	return Custom(unit8(v.R), unit8(v.G), unit8(v.B), 255), nil
}

// unit8 maps a [0,1] channel to a byte.
func unit8(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
