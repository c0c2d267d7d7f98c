package raster

import (
	"image"
	"math"
	"testing"

	"github.com/matzehuels/datastripes/pkg/errors"
)

func TestColorQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{127.5, 127},
		{127.9, 127},
		{255, 255},
		{300, 255},
		{-4, 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		got := Color{R: tt.in}.RGBA().R
		if got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewRGBABlank(t *testing.T) {
	s := NewRGBA(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if got := s.At(2, 1); got != (Color{}) {
		t.Errorf("At(2,1) = %+v, want black", got)
	}
	if a := s.img.RGBAAt(0, 0).A; a != 0xff {
		t.Errorf("alpha = %d, want 255", a)
	}
}

func TestSetAt(t *testing.T) {
	s := NewRGBA(2, 2)
	s.Set(1, 0, Color{R: 255, G: 127.5, B: 127})

	got := s.At(1, 0)
	want := Color{R: 255, G: 127, B: 127}
	if got != want {
		t.Errorf("At(1,0) = %+v, want %+v", got, want)
	}

	// Out of range writes are ignored.
	s.Set(5, 5, Color{R: 1})
	if s.At(5, 5) != (Color{}) {
		t.Error("out of range At should be black")
	}
}

func TestFill(t *testing.T) {
	s := NewRGBA(6, 2)
	c := Color{R: 10, G: 20, B: 30}
	s.Fill(image.Rect(2, 0, 4, 2), c)

	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			want := Color{}
			if x >= 2 && x < 4 {
				want = c
			}
			if got := s.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestFillClipsToBounds(t *testing.T) {
	s := NewRGBA(2, 2)
	s.Fill(image.Rect(-5, -5, 50, 50), Color{B: 127})
	if got := s.At(1, 1); got.B != 127 {
		t.Errorf("At(1,1).B = %v, want 127", got.B)
	}
}

func TestResizeDimensions(t *testing.T) {
	for _, srcW := range []int{1, 3, 366, 1098, 1100, 2000} {
		s := NewRGBA(srcW, 200)
		out, err := s.Resize(1100, 200)
		if err != nil {
			t.Fatalf("Resize from %d error = %v", srcW, err)
		}
		if out.Width() != 1100 || out.Height() != 200 {
			t.Errorf("Resize from %d = %dx%d, want 1100x200", srcW, out.Width(), out.Height())
		}
	}
}

func TestResizeNearestPreservesOrder(t *testing.T) {
	s := NewRGBA(2, 1)
	left := Color{R: 255, B: 127}
	right := Color{G: 255, B: 127}
	s.Set(0, 0, left)
	s.Set(1, 0, right)

	out, err := s.Resize(10, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			want := left
			if x >= 5 {
				want = right
			}
			if got := out.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestResizeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  *RGBA
		w, h int
	}{
		{"empty source", NewRGBA(0, 200), 1100, 200},
		{"zero width target", NewRGBA(10, 10), 0, 10},
		{"negative height target", NewRGBA(10, 10), 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.src.Resize(tt.w, tt.h)
			if !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Errorf("Resize() error = %v, want CONFIGURATION_ERROR", err)
			}
		})
	}
}

func TestParseInterpolator(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"nearest", false},
		{"NEAREST", false},
		{"bilinear", false},
		{"approxbilinear", false},
		{"catmullrom", false},
		{"lanczos", true},
	}

	for _, tt := range tests {
		ip, err := ParseInterpolator(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInterpolator(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err == nil && ip == nil {
			t.Errorf("ParseInterpolator(%q) returned nil interpolator", tt.name)
		}
	}
}

func TestFromImage(t *testing.T) {
	src := NewRGBA(3, 2)
	src.Set(2, 1, Color{R: 9, G: 8, B: 7})

	sub := src.img.SubImage(image.Rect(1, 1, 3, 2))
	cp := FromImage(sub)
	if cp.Width() != 2 || cp.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", cp.Width(), cp.Height())
	}
	if got := cp.At(1, 0); got != (Color{R: 9, G: 8, B: 7}) {
		t.Errorf("At(1,0) = %+v", got)
	}
}

func TestAllocator(t *testing.T) {
	ip, _ := ParseInterpolator("bilinear")
	alloc := NewAllocator(WithInterpolator(ip))
	s := alloc(5, 5)
	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("alloc size = %dx%d", s.Width(), s.Height())
	}
	if s.(*RGBA).interp != ip {
		t.Error("allocator did not apply interpolator option")
	}
}
