// Package domain contains the core types shared by the BMI tracker.
package domain

import (
	"fmt"
	"image"
	"image/color"
)

// BytesPerPixel is the number of bytes per pixel (RGB).
const BytesPerPixel = 3

// RGB represents an RGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Equals checks if two RGB colors are equal.
func (c RGB) Equals(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Brightness returns the mean channel value.
func (c RGB) Brightness() int {
	return (int(c.R) + int(c.G) + int(c.B)) / 3
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// Frame is a raster canvas the chart renderer draws into.
type Frame struct {
	Width  int
	Height int
	// Pixels is a flat array of RGB values: [r0,g0,b0, r1,g1,b1, ...]
	Pixels []byte
}

// NewFrame creates a new frame filled with black (0, 0, 0).
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*BytesPerPixel),
	}
}

// NewFrameWithColor creates a new frame filled with the specified color.
func NewFrameWithColor(width, height int, c RGB) *Frame {
	f := NewFrame(width, height)
	f.Fill(c)
	return f
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// SetPixel sets a single pixel in the frame. Out of bounds coordinates are silently ignored.
func (f *Frame) SetPixel(x, y int, c RGB) {
	if !f.inBounds(x, y) {
		return
	}
	offset := (y*f.Width + x) * BytesPerPixel
	f.Pixels[offset] = c.R
	f.Pixels[offset+1] = c.G
	f.Pixels[offset+2] = c.B
}

// GetPixel returns the color at the specified coordinates, or nil if out of bounds.
func (f *Frame) GetPixel(x, y int) *RGB {
	if !f.inBounds(x, y) {
		return nil
	}
	offset := (y*f.Width + x) * BytesPerPixel
	return &RGB{
		R: f.Pixels[offset],
		G: f.Pixels[offset+1],
		B: f.Pixels[offset+2],
	}
}

// Fill fills the entire frame with the specified color.
func (f *Frame) Fill(c RGB) {
	f.FillRect(0, 0, f.Width, f.Height, c)
}

// FillRect fills a rectangular area with the specified color.
func (f *Frame) FillRect(x, y, width, height int, c RGB) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			f.SetPixel(x+dx, y+dy, c)
		}
	}
}

// DottedHLine draws every other pixel of a horizontal line from x0 to x1 inclusive.
func (f *Frame) DottedHLine(x0, x1, y int, c RGB) {
	for x := x0; x <= x1; x += 2 {
		f.SetPixel(x, y, c)
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (f *Frame) DrawLine(x0, y0, x1, y1 int, c RGB) {
	WalkLine(x0, y0, x1, y1, func(x, y int) {
		f.SetPixel(x, y, c)
	})
}

// WalkLine calls visit for every pixel on the Bresenham line between two points.
func WalkLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Image returns the frame as an image.RGBA, e.g. for PNG encoding.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.GetPixel(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return img
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
