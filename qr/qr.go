package qr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

var logger = logrus.WithField("component", "qr")

// Defaults used when an Options field is left zero or negative.
const (
	DefaultBoxSize = 10
	DefaultBorder  = 2
)

// logoPadding is the white margin, in pixels, drawn on every side of the
// logo before it is pasted over the symbol.
const logoPadding = 10

// Options configures a single QR code rendering.
type Options struct {
	BoxSize int    // pixels per QR module
	Border  int    // quiet zone width in modules
	Logo    string // path to a logo image, empty means none
}

// DefaultOptions returns the rendering defaults: 10 pixels per module,
// a 2 module quiet zone and no logo.
func DefaultOptions() Options {
	return Options{BoxSize: DefaultBoxSize, Border: DefaultBorder}
}

func (o Options) normalized() Options {
	if o.BoxSize <= 0 {
		o.BoxSize = DefaultBoxSize
	}
	if o.Border <= 0 {
		o.Border = DefaultBorder
	}
	return o
}

// Generate encodes content into a QR symbol and renders it black on white.
// The encoder picks the smallest symbol version that fits the content.
// Error correction is always the highest tier so the symbol survives the
// logo overlay. When a logo is configured it is resized to an eighth of
// the symbol's side, placed in the center over a white padding square and
// composited using its own alpha channel.
func (o Options) Generate(content string) (image.Image, error) {
	o = o.normalized()

	code, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true

	modules := code.Bitmap()
	side := (len(modules) + 2*o.Border) * o.BoxSize

	logger.WithFields(logrus.Fields{
		"version": code.VersionNumber,
		"modules": len(modules),
		"side":    side,
	}).Debug("rendering qr symbol")

	dc := gg.NewContext(side, side)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(color.Black)
	for y, row := range modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			dc.DrawRectangle(
				float64((x+o.Border)*o.BoxSize),
				float64((y+o.Border)*o.BoxSize),
				float64(o.BoxSize),
				float64(o.BoxSize),
			)
		}
	}
	dc.Fill()

	if o.Logo != "" {
		if err := o.overlayLogo(dc); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

// overlayLogo pastes the configured logo over the center of the rendered
// symbol. The logo is forced to a square of an eighth of the smaller
// raster dimension, distorting non-square logos.
func (o Options) overlayLogo(dc *gg.Context) error {
	logo, err := gg.LoadImage(o.Logo)
	if err != nil {
		return fmt.Errorf("load logo: %w", err)
	}

	w, h := dc.Width(), dc.Height()
	size := min(w, h) / 8
	scaled := resize.Resize(uint(size), uint(size), logo, resize.Lanczos3)

	x := (w - size) / 2
	y := (h - size) / 2

	// White padding square erases the modules underneath so the quiet
	// zone around the logo stays scannable.
	dc.SetColor(color.White)
	dc.DrawRectangle(
		float64(x-logoPadding),
		float64(y-logoPadding),
		float64(size+2*logoPadding),
		float64(size+2*logoPadding),
	)
	dc.Fill()

	dc.DrawImage(scaled, x, y)
	return nil
}
