package render

import (
	"github.com/jwulff/bmi-go/internal/bmi"
	"github.com/jwulff/bmi-go/internal/domain"
)

// Common colors for the trend chart.
var (
	ColorBlack = domain.NewRGB(0, 0, 0)
	ColorBg    = ColorBlack

	// Text colors
	ColorTitle = domain.NewRGB(200, 200, 200)
	ColorLabel = domain.NewRGB(128, 128, 128)

	ColorAxis = domain.NewRGB(70, 70, 70)

	// Category colors
	ColorUnderweight = domain.NewRGB(80, 160, 255) // Blue
	ColorNormal      = domain.NewRGB(0, 220, 0)    // Green
	ColorOverweight  = domain.NewRGB(255, 200, 0)  // Yellow
	ColorObesity     = domain.NewRGB(255, 70, 70)  // Red
)

// guideDim is how bright a category edge guide is relative to its category color.
const guideDim = 0.3

// CategoryColor returns the display color for a BMI category.
func CategoryColor(c bmi.Category) domain.RGB {
	switch c {
	case bmi.CategoryUnderweight:
		return ColorUnderweight
	case bmi.CategoryNormal:
		return ColorNormal
	case bmi.CategoryOverweight:
		return ColorOverweight
	default:
		return ColorObesity
	}
}

// ColorForBMI returns the color for a BMI value. Inside the normal band the
// green is tinted toward the neighbouring category near either edge.
func ColorForBMI(value float64) domain.RGB {
	category := bmi.Categorize(value)
	if category != bmi.CategoryNormal {
		return CategoryColor(category)
	}

	center := (bmi.ThresholdUnderweight + bmi.ThresholdNormalHigh) / 2
	if value <= center {
		t := (value - bmi.ThresholdUnderweight) / (center - bmi.ThresholdUnderweight)
		edge := LerpColor(ColorUnderweight, ColorNormal, 0.5)
		return LerpColor(edge, ColorNormal, t)
	}
	t := (value - center) / (bmi.ThresholdNormalHigh - center)
	edge := LerpColor(ColorNormal, ColorOverweight, 0.5)
	return LerpColor(ColorNormal, edge, t)
}

// LerpColor linearly interpolates between two colors.
func LerpColor(a, b domain.RGB, t float64) domain.RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return domain.NewRGB(
		uint8(float64(a.R)+t*float64(int(b.R)-int(a.R))),
		uint8(float64(a.G)+t*float64(int(b.G)-int(a.G))),
		uint8(float64(a.B)+t*float64(int(b.B)-int(a.B))),
	)
}

// DimColor reduces the brightness of a color by a factor (0-1).
func DimColor(c domain.RGB, factor float64) domain.RGB {
	if factor <= 0 {
		return ColorBlack
	}
	if factor >= 1 {
		return c
	}
	return domain.NewRGB(
		uint8(float64(c.R)*factor),
		uint8(float64(c.G)*factor),
		uint8(float64(c.B)*factor),
	)
}
