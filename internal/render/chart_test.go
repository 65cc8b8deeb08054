package render

import (
	"testing"
	"time"

	"github.com/jwulff/bmi-go/internal/bmi"
	"github.com/jwulff/bmi-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLit(frame *domain.Frame, cfg ChartConfig) int {
	lit := 0
	for y := cfg.Y; y < cfg.Y+cfg.Height; y++ {
		for x := cfg.X; x < cfg.X+cfg.Width; x++ {
			p := frame.GetPixel(x, y)
			if p != nil && (p.R > 0 || p.G > 0 || p.B > 0) {
				lit++
			}
		}
	}
	return lit
}

func dailyPoints(start time.Time, values ...float64) []ChartPoint {
	points := make([]ChartPoint, len(values))
	for i, v := range values {
		points[i] = ChartPoint{Timestamp: start.Add(time.Duration(i) * 24 * time.Hour), Value: v}
	}
	return points
}

func TestNewChartConfig(t *testing.T) {
	cfg := NewChartConfig(10, 8, 100, 40)

	assert.Equal(t, 10, cfg.X)
	assert.Equal(t, 8, cfg.Y)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, 1.0, cfg.Padding)
	assert.Equal(t, 4.0, cfg.MinSpan)
	assert.Equal(t, 1, cfg.MarkerRadius)
	assert.Equal(t, DefaultGuides, cfg.Guides)
}

func TestDefaultGuidesSitOnCategoryEdges(t *testing.T) {
	assert.Equal(t, []float64{18.5, 25, 29.9}, DefaultGuides)

	for _, g := range DefaultGuides {
		assert.NotEqual(t, bmi.Categorize(g-0.01), bmi.Categorize(g), "guide %v", g)
	}
}

func TestChartConfigDefaults(t *testing.T) {
	cfg := &ChartConfig{X: 0, Y: 0, Width: 64, Height: 32}
	cfg.ApplyDefaults()

	assert.Equal(t, 1.0, cfg.Padding)
	assert.Equal(t, 4.0, cfg.MinSpan)
	assert.Equal(t, DefaultGuides, cfg.Guides)
	assert.Equal(t, 0, cfg.MarkerRadius)
}

func TestRenderTrendChartEmptyPoints(t *testing.T) {
	frame := domain.NewFrame(64, 32)
	cfg := NewChartConfig(0, 0, 64, 32)

	// Should not panic with empty points
	RenderTrendChart(frame, nil, cfg)
	RenderTrendChart(frame, []ChartPoint{}, cfg)

	assert.Equal(t, 0, countLit(frame, cfg))
}

func TestRenderTrendChartSinglePoint(t *testing.T) {
	frame := domain.NewFrame(64, 32)
	cfg := NewChartConfig(0, 0, 64, 32)
	cfg.Guides = []float64{}

	RenderTrendChart(frame, []ChartPoint{{Timestamp: time.Now(), Value: 22.86}}, cfg)

	// A lone point sits in the middle as a 3x3 marker
	assert.Equal(t, 9, countLit(frame, cfg))
	center := frame.GetPixel(31, 15)
	require.NotNil(t, center)
	assert.True(t, center.G > center.R, "normal BMI marker should be greenish")
}

func TestRenderTrendChartMultiplePoints(t *testing.T) {
	frame := domain.NewFrame(128, 48)
	cfg := NewChartConfig(0, 0, 128, 48)

	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	points := dailyPoints(start, 22.1, 22.9, 23.6, 24.2, 23.8, 23.1)

	RenderTrendChart(frame, points, cfg)

	assert.Greater(t, countLit(frame, cfg), 6*9, "line should add pixels beyond the markers")
}

func TestRenderTrendChartEndpoints(t *testing.T) {
	frame := domain.NewFrame(64, 32)
	cfg := NewChartConfig(0, 0, 64, 32)
	cfg.Guides = []float64{}
	cfg.Padding = 0.0001

	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	RenderTrendChart(frame, dailyPoints(start, 20, 30), cfg)

	// First point bottom-left, last point top-right
	assert.NotEqual(t, ColorBlack, *frame.GetPixel(0, 31))
	assert.NotEqual(t, ColorBlack, *frame.GetPixel(63, 0))
	assert.Equal(t, ColorBlack, *frame.GetPixel(0, 0))
	assert.Equal(t, ColorBlack, *frame.GetPixel(63, 31))
}

func TestRenderTrendChartStaysInsideArea(t *testing.T) {
	frame := domain.NewFrame(40, 40)
	cfg := NewChartConfig(10, 10, 20, 20)

	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	RenderTrendChart(frame, dailyPoints(start, 15, 40, 18, 33), cfg)

	outside := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x >= 10 && x < 30 && y >= 10 && y < 30 {
				continue
			}
			if !frame.GetPixel(x, y).Equals(ColorBlack) {
				outside++
			}
		}
	}
	assert.Equal(t, 0, outside)
}

func TestRenderTrendChartGuides(t *testing.T) {
	frame := domain.NewFrame(64, 32)
	cfg := NewChartConfig(0, 0, 64, 32)
	cfg.MarkerRadius = 0

	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	// Range straddles 25, but not 18.5 or 29.9
	points := dailyPoints(start, 24, 26)

	RenderTrendChart(frame, points, cfg)

	scale := newChartScale(points, cfg)
	guideY := scale.valueToY(25)
	expected := DimColor(ColorOverweight, guideDim)
	assert.True(t, frame.GetPixel(2, guideY).Equals(expected), "guide at BMI 25 should be drawn")
}

func TestChartDataRange(t *testing.T) {
	points := []ChartPoint{{Value: 20}, {Value: 28}}

	lo, hi := calculateDataRange(points, 1, 4)

	assert.Equal(t, 19.0, lo)
	assert.Equal(t, 29.0, hi)
}

func TestChartDataRangeMinimum(t *testing.T) {
	points := []ChartPoint{{Value: 22}, {Value: 22.5}}

	lo, hi := calculateDataRange(points, 1, 4)

	assert.InDelta(t, 4.0, hi-lo, 1e-9)
	assert.InDelta(t, 22.25, (lo+hi)/2, 1e-9, "range should stay centred on the data")
}

func TestChartDataRangeNotNegative(t *testing.T) {
	lo, hi := calculateDataRange([]ChartPoint{{Value: 0.5}}, 1, 4)

	assert.Equal(t, 0.0, lo)
	assert.InDelta(t, 4.0, hi, 1e-9)
}

func TestTimeToX(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(10 * 24 * time.Hour)
	scale := chartScale{cfg: NewChartConfig(0, 0, 64, 16), start: start, end: end, lo: 18, hi: 30}

	assert.Equal(t, 0, scale.timeToX(start))
	assert.Equal(t, 63, scale.timeToX(end))

	mid := scale.timeToX(start.Add(5 * 24 * time.Hour))
	assert.True(t, mid > 25 && mid < 40, "mid point should be near center")
}

func TestValueToY(t *testing.T) {
	scale := chartScale{cfg: NewChartConfig(0, 0, 64, 16), lo: 18, hi: 30}

	assert.Less(t, scale.valueToY(29), scale.valueToY(19), "higher BMI should have lower Y")
	assert.Equal(t, 0, scale.valueToY(30))
	assert.Equal(t, 15, scale.valueToY(18))
	// Clamped
	assert.Equal(t, 0, scale.valueToY(55))
	assert.Equal(t, 15, scale.valueToY(3))
}

func TestYToValueInvertsValueToY(t *testing.T) {
	scale := chartScale{cfg: NewChartConfig(0, 0, 64, 16), lo: 18, hi: 30}

	assert.InDelta(t, 30.0, scale.yToValue(0), 1e-9)
	assert.InDelta(t, 18.0, scale.yToValue(15), 1e-9)
}
