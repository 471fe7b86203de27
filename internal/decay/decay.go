// Package decay turns the lead-response-time series into the bar chart shown
// next to the proof section: how much conversion lift is left the longer a
// lead waits for a reply.
package decay

import (
	"math"
	"time"
)

// Point is one bucket of the series.
type Point struct {
	Label string        `yaml:"label"`
	Delay time.Duration `yaml:"delay"`
	Lift  float64       `yaml:"lift"` // percent lift in conversion vs. no fast response
}

// Bar is a point scaled for rendering.
type Bar struct {
	Point
	HeightPercent int
	Highlight     bool
}

// Bars scales every point against the largest lift. The largest bar is 100,
// non-positive lifts render as 0, and the fastest bucket is highlighted.
func Bars(points []Point) []Bar {
	if len(points) == 0 {
		return nil
	}

	maxLift := 0.0
	fastest := 0
	for i, p := range points {
		if p.Lift > maxLift {
			maxLift = p.Lift
		}
		if p.Delay < points[fastest].Delay {
			fastest = i
		}
	}

	bars := make([]Bar, len(points))
	for i, p := range points {
		bars[i] = Bar{Point: p, Highlight: i == fastest}
		if maxLift > 0 && p.Lift > 0 {
			bars[i].HeightPercent = int(math.Round(p.Lift / maxLift * 100))
		}
	}
	return bars
}

// DropOff is the percent of the first bucket's lift that is gone by the
// last bucket. It is 0 when the first lift is not positive.
func DropOff(points []Point) float64 {
	if len(points) < 2 || points[0].Lift <= 0 {
		return 0
	}
	first, last := points[0].Lift, points[len(points)-1].Lift
	return math.Round((first - last) / first * 100)
}
