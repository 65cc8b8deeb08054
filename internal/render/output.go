package render

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"strings"

	"github.com/jwulff/bmi-go/internal/domain"
)

// WritePNG encodes frame as a PNG image.
func WritePNG(w io.Writer, frame *domain.Frame) error {
	if err := png.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Brightness ramps for the terminal preview, brightest first.
var (
	unicodeRamp = []string{"█", "▓", "▒", "░", "·", " "}
	asciiRamp   = []string{"@", "#", "+", "-", ".", " "}
)

// PrintASCII writes a character-cell preview of frame to w. Block glyphs and
// box borders are used when unicode is true, plain ASCII otherwise.
func PrintASCII(w io.Writer, frame *domain.Frame, unicode bool) error {
	ramp := asciiRamp
	corners := [4]string{"+", "+", "+", "+"}
	horiz, vert := "-", "|"
	if unicode {
		ramp = unicodeRamp
		corners = [4]string{"┌", "┐", "└", "┘"}
		horiz, vert = "─", "│"
	}

	bw := bufio.NewWriter(w)
	border := strings.Repeat(horiz, frame.Width)
	fmt.Fprintf(bw, "%s%s%s\n", corners[0], border, corners[1])

	for y := 0; y < frame.Height; y++ {
		bw.WriteString(vert)
		for x := 0; x < frame.Width; x++ {
			bw.WriteString(shade(frame.GetPixel(x, y).Brightness(), ramp))
		}
		bw.WriteString(vert)
		bw.WriteString("\n")
	}

	fmt.Fprintf(bw, "%s%s%s\n", corners[2], border, corners[3])
	return bw.Flush()
}

func shade(brightness int, ramp []string) string {
	switch {
	case brightness > 200:
		return ramp[0]
	case brightness > 150:
		return ramp[1]
	case brightness > 100:
		return ramp[2]
	case brightness > 50:
		return ramp[3]
	case brightness > 10:
		return ramp[4]
	default:
		return ramp[5]
	}
}
