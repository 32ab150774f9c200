// Package pdfexport writes a raster image as a single-page PDF.
package pdfexport

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// DefaultDPI maps image pixels to PDF points (72 per inch).
const DefaultDPI = 96

const imageName = "paint"

// Option configures a PDF export.
type Option func(*options)

type options struct {
	title string
	dpi   float64
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithDPI sets the image resolution used to size the page. Non-positive
// values are ignored.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// Write encodes img as a PDF whose single page is exactly the image size.
func Write(w io.Writer, img image.Image, opts ...Option) error {
	o := options{title: "paint", dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&o)
	}

	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("pdfexport: empty image %v", b)
	}
	var raster bytes.Buffer
	if err := png.Encode(&raster, img); err != nil {
		return fmt.Errorf("pdfexport: encode png: %w", err)
	}

	scale := 72 / o.dpi
	wd, ht := float64(b.Dx())*scale, float64(b.Dy())*scale
	orientation := "P"
	if wd > ht {
		orientation = "L"
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetTitle(o.title, true)
	pdf.SetCreator("paint", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imageName, imgOpts, &raster)
	pdf.ImageOptions(imageName, 0, 0, wd, ht, false, imgOpts, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdfexport: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdfexport: write: %w", err)
	}
	return nil
}

// WriteFile writes img as a PDF file at path.
func WriteFile(path string, img image.Image, opts ...Option) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("pdfexport: %w", err)
	}
	if err := Write(f, img, opts...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
