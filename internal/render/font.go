package render

import "github.com/jwulff/bmi-go/internal/domain"

// Label font metrics (3x5 pixels).
const (
	GlyphWidth   = 3
	GlyphHeight  = 5
	GlyphSpacing = 1
)

// glyphs holds the 3x5 bitmaps. Each row is three bits, leftmost pixel in the high bit.
var glyphs = map[rune][GlyphHeight]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b001, 0b001},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},

	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'M': {0b101, 0b111, 0b101, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},

	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
}

// Glyph returns the bitmap for r, or a blank glyph if the font lacks it.
func Glyph(r rune) [GlyphHeight]uint8 {
	if bitmap, ok := glyphs[r]; ok {
		return bitmap
	}
	return glyphs[' ']
}

// MeasureLabel returns the pixel width of text.
func MeasureLabel(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return n*GlyphWidth + (n-1)*GlyphSpacing
}

// DrawLabel draws text with its top-left corner at (x, y).
func DrawLabel(frame *domain.Frame, text string, x, y int, color domain.RGB) {
	for _, r := range text {
		bitmap := Glyph(r)
		for row := 0; row < GlyphHeight; row++ {
			for col := 0; col < GlyphWidth; col++ {
				if bitmap[row]&(1<<(GlyphWidth-1-col)) != 0 {
					frame.SetPixel(x+col, y+row, color)
				}
			}
		}
		x += GlyphWidth + GlyphSpacing
	}
}

// DrawLabelRight draws text so that its last column lands on rightX.
func DrawLabelRight(frame *domain.Frame, text string, rightX, y int, color domain.RGB) {
	DrawLabel(frame, text, rightX-MeasureLabel(text)+1, y, color)
}
