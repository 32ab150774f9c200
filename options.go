package paint

// Option configures a Controller during creation.
//
// Example:
//
//	// White background, 8px black pen
//	c, err := paint.NewController(1500, 800)
//
//	// Custom style
//	c, err := paint.NewController(800, 600,
//	    paint.WithStrokeWidth(3),
//	    paint.WithStrokeColor(paint.WaterBlue))
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	background  Color
	strokeWidth float64
	strokeColor Color
	fontSize    int
	fontFamily  string
	fonts       *FontBook
	persistent  Surface
	overlay     Surface
}

// Default controller settings.
const (
	DefaultWidth       = 1500
	DefaultHeight      = 800
	DefaultStrokeWidth = 8
)

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		background:  White,
		strokeWidth: DefaultStrokeWidth,
		strokeColor: Black,
		fontSize:    DefaultFontSize,
		fontFamily:  DefaultFontFamily,
	}
}

// WithBackground sets the colour the persistent surface starts with. It is
// also the fill colour used when a crop cuts its rectangle out.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithStrokeWidth sets the initial line width of both surfaces.
// Non-positive values are ignored.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.strokeWidth = w
		}
	}
}

// WithStrokeColor sets the initial current colour.
func WithStrokeColor(c Color) Option {
	return func(o *options) {
		o.strokeColor = c
	}
}

// WithFontSize sets the pixel size used by the text tool.
// Non-positive values are ignored.
func WithFontSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithFontFamily sets the family used by the text tool. The family must be
// registered in the controller's FontBook.
func WithFontFamily(family string) Option {
	return func(o *options) {
		o.fontFamily = family
	}
}

// WithFontBook sets the FontBook the default layers resolve faces from.
// Ignored when WithSurfaces supplies the surfaces.
func WithFontBook(b *FontBook) Option {
	return func(o *options) {
		o.fonts = b
	}
}

// WithSurfaces replaces the default gg-backed layers. Both surfaces must
// have the size passed to NewController. The persistent surface is filled
// with the background colour and the overlay is cleared.
//
// Example:
//
//	p, _ := paint.NewLayer(800, 600, nil)
//	o, _ := paint.NewLayer(800, 600, nil)
//	c, err := paint.NewController(800, 600, paint.WithSurfaces(p, o))
func WithSurfaces(persistent, overlay Surface) Option {
	return func(o *options) {
		o.persistent = persistent
		o.overlay = overlay
	}
}
