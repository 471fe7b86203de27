package decay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series() []Point {
	return []Point{
		{"1 min", time.Minute, 391},
		{"2 min", 2 * time.Minute, 160},
		{"3 min", 3 * time.Minute, 98},
		{"30 min", 30 * time.Minute, 62},
		{"1 hour", time.Hour, 36},
		{"24 hours", 24 * time.Hour, 17},
	}
}

func TestBars(t *testing.T) {
	bars := Bars(series())
	require.Len(t, bars, 6)

	want := []int{100, 41, 25, 16, 9, 4}
	for i, b := range bars {
		assert.Equal(t, want[i], b.HeightPercent, b.Label)
		assert.Equal(t, series()[i].Label, b.Label, "order preserved")
	}
	assert.True(t, bars[0].Highlight)
	for _, b := range bars[1:] {
		assert.False(t, b.Highlight)
	}
}

func TestBars_Edges(t *testing.T) {
	assert.Nil(t, Bars(nil))

	bars := Bars([]Point{
		{"a", time.Minute, 0},
		{"b", 2 * time.Minute, -5},
	})
	require.Len(t, bars, 2)
	assert.Equal(t, 0, bars[0].HeightPercent)
	assert.Equal(t, 0, bars[1].HeightPercent)
}

func TestBars_HighlightsFastestNotFirst(t *testing.T) {
	bars := Bars([]Point{
		{"1 hour", time.Hour, 36},
		{"1 min", time.Minute, 391},
	})
	assert.False(t, bars[0].Highlight)
	assert.True(t, bars[1].Highlight)
	assert.Equal(t, 9, bars[0].HeightPercent)
}

func TestDropOff(t *testing.T) {
	assert.Equal(t, 96.0, DropOff(series()))
	assert.Equal(t, 0.0, DropOff(nil))
	assert.Equal(t, 0.0, DropOff(series()[:1]))
	assert.Equal(t, 0.0, DropOff([]Point{{"a", 0, 0}, {"b", 0, 10}}))
}
