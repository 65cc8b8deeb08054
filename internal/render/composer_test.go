package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComposeTrendFrameDimensions(t *testing.T) {
	frame := ComposeTrendFrame(nil, 128, 64)

	assert.Equal(t, 128, frame.Width)
	assert.Equal(t, 64, frame.Height)
}

func TestComposeTrendFrameTitleOnlyWhenEmpty(t *testing.T) {
	frame := ComposeTrendFrame(nil, 128, 64)

	lit := 0
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if !frame.GetPixel(x, y).Equals(ColorBg) {
				lit++
				assert.Less(t, y, ChartTop, "only the title row should be drawn")
			}
		}
	}
	assert.Greater(t, lit, 0)
}

func TestComposeTrendFrameDrawsChart(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	points := dailyPoints(start, 23.4, 23.1, 22.9, 22.86)

	frame := ComposeTrendFrame(points, 128, 64)

	normalPixels := 0
	for y := ChartTop; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			p := frame.GetPixel(x, y)
			if p.G > p.R && p.G > p.B {
				normalPixels++
			}
		}
	}
	assert.Greater(t, normalPixels, 4*9/2, "chart should show green normal-weight markers")
}

func TestComposeTrendFrameSingleDayHasOneDateLabel(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	points := []ChartPoint{
		{Timestamp: start, Value: 22},
		{Timestamp: start.Add(time.Hour), Value: 23},
	}

	frame := ComposeTrendFrame(points, 128, 64)

	// Right-hand date label would end at the frame's right margin
	labelY := 64 - GlyphHeight
	for x := 100; x < 127; x++ {
		for y := labelY; y < 64; y++ {
			assert.True(t, frame.GetPixel(x, y).Equals(ColorBg), "unexpected label pixel at (%d, %d)", x, y)
		}
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "22.9", FormatValue(22.86))
	assert.Equal(t, "18.0", FormatValue(18))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 9, 1, 0, 0, 1, 0, time.UTC)
	assert.True(t, sameDay(a, a.Add(23*time.Hour)))
	assert.False(t, sameDay(a, a.Add(24*time.Hour)))
}
