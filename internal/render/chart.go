package render

import (
	"math"
	"time"

	"github.com/jwulff/bmi-go/internal/bmi"
	"github.com/jwulff/bmi-go/internal/domain"
)

// ChartPoint represents a single point on the chart.
type ChartPoint struct {
	Timestamp time.Time
	Value     float64 // BMI
}

// ChartConfig configures the chart rendering.
type ChartConfig struct {
	X            int
	Y            int
	Width        int
	Height       int
	Padding      float64   // Padding in BMI units above/below data range
	MinSpan      float64   // Smallest BMI range the y axis may cover
	MarkerRadius int       // Point markers are squares of side 2*MarkerRadius+1
	Guides       []float64 // BMI values drawn as dotted horizontal lines
}

// DefaultGuides are the category edges.
var DefaultGuides = []float64{
	bmi.ThresholdUnderweight,
	bmi.ThresholdOverweight,
	bmi.ThresholdObesity,
}

// NewChartConfig creates a chart config with sensible defaults.
func NewChartConfig(x, y, width, height int) ChartConfig {
	return ChartConfig{
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Padding:      1,
		MinSpan:      4,
		MarkerRadius: 1,
		Guides:       DefaultGuides,
	}
}

// ApplyDefaults applies default values to zero fields.
func (c *ChartConfig) ApplyDefaults() {
	if c.Padding == 0 {
		c.Padding = 1
	}
	if c.MinSpan == 0 {
		c.MinSpan = 4
	}
	if c.Guides == nil {
		c.Guides = DefaultGuides
	}
}

// chartScale maps data coordinates onto the chart area.
type chartScale struct {
	cfg        ChartConfig
	start, end time.Time
	lo, hi     float64
}

func newChartScale(points []ChartPoint, cfg ChartConfig) chartScale {
	start, end := timeRange(points)
	lo, hi := calculateDataRange(points, cfg.Padding, cfg.MinSpan)
	return chartScale{cfg: cfg, start: start, end: end, lo: lo, hi: hi}
}

// RenderTrendChart draws points as a line in the order given, with a marker
// on each point. Nothing is drawn for an empty slice.
func RenderTrendChart(frame *domain.Frame, points []ChartPoint, cfg ChartConfig) {
	cfg.ApplyDefaults()

	if len(points) == 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return
	}

	scale := newChartScale(points, cfg)

	// Guides first so the data is drawn on top
	for _, g := range cfg.Guides {
		if g <= scale.lo || g >= scale.hi {
			continue
		}
		color := DimColor(CategoryColor(bmi.Categorize(g)), guideDim)
		frame.DottedHLine(cfg.X, cfg.X+cfg.Width-1, scale.valueToY(g), color)
	}

	for i := 1; i < len(points); i++ {
		x0, y0 := scale.project(points[i-1])
		x1, y1 := scale.project(points[i])
		domain.WalkLine(x0, y0, x1, y1, func(x, y int) {
			if scale.contains(x, y) {
				frame.SetPixel(x, y, ColorForBMI(scale.yToValue(y)))
			}
		})
	}

	for _, p := range points {
		x, y := scale.project(p)
		drawMarker(frame, scale, x, y, ColorForBMI(p.Value))
	}
}

// drawMarker fills a square around (cx, cy), clipped to the chart area.
func drawMarker(frame *domain.Frame, scale chartScale, cx, cy int, color domain.RGB) {
	r := scale.cfg.MarkerRadius
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if scale.contains(x, y) {
				frame.SetPixel(x, y, color)
			}
		}
	}
}

// timeRange returns the earliest and latest timestamps.
func timeRange(points []ChartPoint) (time.Time, time.Time) {
	start, end := points[0].Timestamp, points[0].Timestamp
	for _, p := range points[1:] {
		if p.Timestamp.Before(start) {
			start = p.Timestamp
		}
		if p.Timestamp.After(end) {
			end = p.Timestamp
		}
	}
	return start, end
}

// calculateDataRange computes the min/max BMI with padding, widened
// symmetrically to at least minSpan.
func calculateDataRange(points []ChartPoint, padding, minSpan float64) (float64, float64) {
	if len(points) == 0 {
		return bmi.ThresholdUnderweight, bmi.ThresholdObesity
	}

	dataMin := points[0].Value
	dataMax := points[0].Value
	for _, p := range points[1:] {
		dataMin = math.Min(dataMin, p.Value)
		dataMax = math.Max(dataMax, p.Value)
	}

	lo := dataMin - padding
	hi := dataMax + padding
	if span := hi - lo; span < minSpan {
		extra := (minSpan - span) / 2
		lo -= extra
		hi += extra
	}
	if lo < 0 {
		hi -= lo
		lo = 0
	}
	return lo, hi
}

func (s chartScale) project(p ChartPoint) (int, int) {
	return s.timeToX(p.Timestamp), s.valueToY(p.Value)
}

func (s chartScale) contains(x, y int) bool {
	return x >= s.cfg.X && x < s.cfg.X+s.cfg.Width &&
		y >= s.cfg.Y && y < s.cfg.Y+s.cfg.Height
}

// timeToX converts a timestamp to X pixel position. A zero-length time range
// puts everything in the middle.
func (s chartScale) timeToX(t time.Time) int {
	span := s.end.Sub(s.start)
	if span <= 0 {
		return s.cfg.X + (s.cfg.Width-1)/2
	}
	offset := t.Sub(s.start)
	return s.cfg.X + int(math.Round(float64(offset)/float64(span)*float64(s.cfg.Width-1)))
}

// valueToY converts a BMI value to Y pixel position.
func (s chartScale) valueToY(v float64) int {
	span := s.hi - s.lo
	if span <= 0 {
		return s.cfg.Y + s.cfg.Height/2
	}
	v = math.Max(s.lo, math.Min(s.hi, v))

	// Higher BMI = lower Y (top of chart)
	normalized := (v - s.lo) / span
	return s.cfg.Y + s.cfg.Height - 1 - int(math.Round(normalized*float64(s.cfg.Height-1)))
}

// yToValue converts Y pixel position back to a BMI value.
func (s chartScale) yToValue(y int) float64 {
	if s.cfg.Height <= 1 {
		return s.lo
	}
	normalized := float64(s.cfg.Y+s.cfg.Height-1-y) / float64(s.cfg.Height-1)
	return s.lo + normalized*(s.hi-s.lo)
}
