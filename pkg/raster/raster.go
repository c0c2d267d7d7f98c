package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strings"

	"golang.org/x/image/draw"

	"github.com/matzehuels/datastripes/pkg/errors"
)

// Color is a real-valued RGB triple. Channels are nominally in [0, 255].
type Color struct {
	R, G, B float64
}

// RGBA converts c to an 8-bit opaque color, clamping and truncating each channel.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: 0xff}
}

func quantize(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Surface is the raster capability the pipeline is written against.
type Surface interface {
	Width() int
	Height() int
	At(x, y int) Color
	Set(x, y int, c Color)
	Fill(r image.Rectangle, c Color)
	Resize(w, h int) (Surface, error)
	Image() image.Image
}

// Allocator creates a blank surface of the given size.
type Allocator func(w, h int) Surface

// Interpolators maps configuration names to x/image/draw scalers.
var Interpolators = map[string]draw.Interpolator{
	"nearest":        draw.NearestNeighbor,
	"approxbilinear": draw.ApproxBiLinear,
	"bilinear":       draw.BiLinear,
	"catmullrom":     draw.CatmullRom,
}

// DefaultInterpolator is the name of the interpolator used when none is configured.
const DefaultInterpolator = "nearest"

// ParseInterpolator resolves an interpolator by name. Empty selects nearest neighbor.
func ParseInterpolator(name string) (draw.Interpolator, error) {
	if name == "" {
		name = DefaultInterpolator
	}
	if ip, ok := Interpolators[strings.ToLower(name)]; ok {
		return ip, nil
	}
	names := make([]string, 0, len(Interpolators))
	for k := range Interpolators {
		names = append(names, k)
	}
	sort.Strings(names)
	return nil, errors.New(errors.ErrCodeInvalidInput,
		"invalid interpolator: %q (must be one of: %s)", name, strings.Join(names, ", "))
}

// Option configures an RGBA surface.
type Option func(*RGBA)

// WithInterpolator sets the scaler used by Resize.
func WithInterpolator(ip draw.Interpolator) Option {
	return func(s *RGBA) {
		if ip != nil {
			s.interp = ip
		}
	}
}

// RGBA is an in-memory Surface backed by *image.RGBA.
type RGBA struct {
	img    *image.RGBA
	interp draw.Interpolator
}

// NewRGBA allocates a black, fully opaque surface.
func NewRGBA(w, h int, opts ...Option) *RGBA {
	s := &RGBA{
		img:    image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		interp: draw.NearestNeighbor,
	}
	for _, opt := range opts {
		opt(s)
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(color.RGBA{A: 0xff}), image.Point{}, draw.Src)
	return s
}

// NewAllocator returns an Allocator producing RGBA surfaces with opts applied.
func NewAllocator(opts ...Option) Allocator {
	return func(w, h int) Surface { return NewRGBA(w, h, opts...) }
}

// FromImage copies img into a new RGBA surface anchored at the origin.
func FromImage(img image.Image, opts ...Option) *RGBA {
	b := img.Bounds()
	s := NewRGBA(b.Dx(), b.Dy(), opts...)
	draw.Draw(s.img, s.img.Bounds(), img, b.Min, draw.Src)
	return s
}

// Width returns the surface width in pixels.
func (s *RGBA) Width() int { return s.img.Rect.Dx() }

// Height returns the surface height in pixels.
func (s *RGBA) Height() int { return s.img.Rect.Dy() }

// At returns the stored pixel. Out-of-range coordinates yield black.
func (s *RGBA) At(x, y int) Color {
	c := s.img.RGBAAt(x, y)
	return Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Set stores c at (x, y). Out-of-range coordinates are ignored.
func (s *RGBA) Set(x, y int, c Color) {
	s.img.SetRGBA(x, y, c.RGBA())
}

// Fill paints the intersection of r and the surface with c.
func (s *RGBA) Fill(r image.Rectangle, c Color) {
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// Resize returns a new surface of size (w, h) scaled with the configured interpolator.
func (s *RGBA) Resize(w, h int) (Surface, error) {
	if s.Width() == 0 || s.Height() == 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "cannot resize empty %dx%d surface", s.Width(), s.Height())
	}
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "invalid resize target %dx%d", w, h)
	}
	dst := &RGBA{img: image.NewRGBA(image.Rect(0, 0, w, h)), interp: s.interp}
	s.interp.Scale(dst.img, dst.img.Bounds(), s.img, s.img.Bounds(), draw.Src, nil)
	return dst, nil
}

// Image exposes the underlying image for encoding and display.
func (s *RGBA) Image() image.Image { return s.img }

// String describes the surface size.
func (s *RGBA) String() string {
	return fmt.Sprintf("RGBA(%dx%d)", s.Width(), s.Height())
}

var _ Surface = (*RGBA)(nil)
