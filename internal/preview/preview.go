// Package preview draws frames as images of round LEDs.
package preview

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"sync"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
)

//go:embed led.svg
var ledSVG []byte

// offOpacity keeps dark LEDs faintly visible so the grid reads as a matrix
const offOpacity = 0.08

// palette is black to full red, matching the LED icon
var palette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.RGBA{R: uint8(i), A: 0xff}
	}
	return p
}()

// Renderer draws frames using an SVG LED icon
type Renderer struct {
	mu   sync.Mutex
	icon *oksvg.SvgIcon
	cell int
}

// NewRenderer creates a renderer drawing each LED in a cell x cell square
func NewRenderer(cell int) (*Renderer, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cell)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(ledSVG))
	if err != nil {
		return nil, fmt.Errorf("failed to parse LED icon: %w", err)
	}
	return &Renderer{icon: icon, cell: cell}, nil
}

// Render draws f on a black background. LED opacity is its level over the
// frame's maximum level.
func (r *Renderer) Render(f *frame.Frame) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, h := f.Cols()*r.cell, f.Rows()*r.cell
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)

	size := float64(r.cell)
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			opacity := offOpacity
			if level := f.Level(row, col); level > 0 {
				opacity = float64(level) / float64(f.MaxLevel())
			}
			r.icon.SetTarget(float64(col)*size, float64(row)*size, size, size)
			r.icon.Draw(dasher, opacity)
		}
	}
	return img
}

// WritePNG encodes f as a PNG
func (r *Renderer) WritePNG(w io.Writer, f *frame.Frame) error {
	if err := png.Encode(w, r.Render(f)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WriteGIF encodes frames as a looping animation showing each for delay
func (r *Renderer) WriteGIF(w io.Writer, frames []*frame.Frame, delay time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}

	anim := &gif.GIF{}
	centis := int(delay / (10 * time.Millisecond))
	for _, f := range frames {
		img := r.Render(f)
		pal := image.NewPaletted(img.Bounds(), palette)
		draw.Draw(pal, pal.Bounds(), img, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, centis)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}
