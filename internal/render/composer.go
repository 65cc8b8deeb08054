package render

import (
	"strconv"
	"time"

	"github.com/jwulff/bmi-go/internal/domain"
)

// Layout constants
const (
	TitleY      = 1
	ChartTop    = 8 // Below title row
	LabelMargin = 1 // Left/right margin for labels
	labelGap    = 2 // Gap between y labels and chart area
	xLabelRows  = GlyphHeight + 2

	// Smallest frame that fits the title, the latest value and a chart.
	MinFrameWidth  = 64
	MinFrameHeight = 32

	TrendTitle = "BMI TREND"
)

// XLabelLayout formats the first and last timestamps under the chart.
const XLabelLayout = "01-02"

// ComposeTrendFrame renders a titled trend chart of points into a new frame.
// Points are plotted in the order given.
func ComposeTrendFrame(points []ChartPoint, width, height int) *domain.Frame {
	frame := domain.NewFrameWithColor(width, height, ColorBg)

	DrawLabel(frame, TrendTitle, LabelMargin, TitleY, ColorTitle)

	if len(points) == 0 {
		return frame
	}

	// Latest value in the top-right corner
	latest := points[len(points)-1]
	DrawLabelRight(frame, strconv.FormatFloat(latest.Value, 'f', 2, 64), width-1-LabelMargin, TitleY, ColorForBMI(latest.Value))

	cfg := NewChartConfig(0, ChartTop, 0, height-ChartTop-xLabelRows)
	lo, hi := calculateDataRange(points, cfg.Padding, cfg.MinSpan)
	loLabel, hiLabel := FormatValue(lo), FormatValue(hi)

	labelWidth := max(MeasureLabel(loLabel), MeasureLabel(hiLabel))
	cfg.X = LabelMargin + labelWidth + labelGap
	cfg.Width = width - cfg.X - LabelMargin

	// Y axis labels
	DrawLabelRight(frame, hiLabel, LabelMargin+labelWidth-1, cfg.Y, ColorLabel)
	DrawLabelRight(frame, loLabel, LabelMargin+labelWidth-1, cfg.Y+cfg.Height-GlyphHeight, ColorLabel)

	// Axes
	axisX := cfg.X - 1
	axisY := cfg.Y + cfg.Height
	for y := cfg.Y; y <= axisY; y++ {
		frame.SetPixel(axisX, y, ColorAxis)
	}
	for x := axisX; x < cfg.X+cfg.Width; x++ {
		frame.SetPixel(x, axisY, ColorAxis)
	}

	// X axis labels: first and last dates
	start, end := timeRange(points)
	labelY := axisY + 2
	DrawLabel(frame, start.Format(XLabelLayout), cfg.X, labelY, ColorLabel)
	if !sameDay(start, end) {
		DrawLabelRight(frame, end.Format(XLabelLayout), cfg.X+cfg.Width-1, labelY, ColorLabel)
	}

	RenderTrendChart(frame, points, cfg)
	return frame
}

// FormatValue formats a BMI value for an axis label.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
