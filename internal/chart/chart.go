// Package chart lays out the population trend as SVG bar geometry.
package chart

import (
	"fmt"
	"math"
	"sprawl-lens/internal/types"
)

// Canvas and scale constants
const (
	Width        = 600.0
	Height       = 350.0
	MarginTop    = 20.0
	MarginRight  = 20.0
	MarginBottom = 50.0
	MarginLeft   = 80.0

	// BoundStep is the granularity the y-axis bounds snap to
	BoundStep = 500_000.0
	// YIntervals is the number of gaps between y gridlines
	YIntervals = 5
	// BarFraction is the share of each band a bar occupies
	BarFraction = 0.7

	HistoricalFill = "currentColor"
	ProjectedFill  = "#38bdf8"
)

// Bar is one rectangle plus the point it represents
type Bar struct {
	X      float64                   `json:"x"`
	Y      float64                   `json:"y"`
	Width  float64                   `json:"width"`
	Height float64                   `json:"height"`
	Fill   string                    `json:"fill"`
	Point  types.PopulationDataPoint `json:"point"`
}

// Projected reports whether the bar shows a forecast value
func (b Bar) Projected() bool {
	return b.Point.Type == types.TrendProjected
}

// XTick is a year label centred under a bar
type XTick struct {
	Label   string  `json:"label"`
	XOffset float64 `json:"xOffset"`
}

// YTick is a horizontal gridline with its population label
type YTick struct {
	Value   float64 `json:"value"`
	Label   string  `json:"label"`
	YOffset float64 `json:"yOffset"`
}

// Chart is the full geometry for one trend
type Chart struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MarginLeft   float64 `json:"marginLeft"`
	MarginRight  float64 `json:"marginRight"`
	MarginBottom float64 `json:"marginBottom"`
	YMin         float64 `json:"yMin"`
	YMax         float64 `json:"yMax"`
	Bars         []Bar   `json:"bars"`
	XTicks       []XTick `json:"xTicks"`
	YTicks       []YTick `json:"yTicks"`
}

// Empty reports whether there is nothing to draw
func (c Chart) Empty() bool {
	return len(c.Bars) == 0
}

// Baseline is the y coordinate of the x-axis
func (c Chart) Baseline() float64 {
	return c.Height - c.MarginBottom
}

// PlotRight is the x coordinate where gridlines end
func (c Chart) PlotRight() float64 {
	return c.Width - c.MarginRight
}

// Bounds snaps the population range outward to BoundStep.
// When both snap to the same value the upper bound moves up one step so the
// scale never divides by zero.
func Bounds(points []types.PopulationDataPoint) (yMin, yMax float64) {
	if len(points) == 0 {
		return 0, BoundStep
	}

	lo, hi := points[0].Population, points[0].Population
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Population)
		hi = math.Max(hi, p.Population)
	}

	yMin = math.Floor(lo/BoundStep) * BoundStep
	yMax = math.Ceil(hi/BoundStep) * BoundStep
	if yMax <= yMin {
		yMax = yMin + BoundStep
	}
	return yMin, yMax
}

// Layout computes bar, tick and gridline geometry for points in the order given.
// Callers sort the trend by year first.
func Layout(points []types.PopulationDataPoint) Chart {
	c := Chart{
		Width:        Width,
		Height:       Height,
		MarginLeft:   MarginLeft,
		MarginRight:  MarginRight,
		MarginBottom: MarginBottom,
	}
	if len(points) == 0 {
		return c
	}

	c.YMin, c.YMax = Bounds(points)

	plotWidth := Width - MarginLeft - MarginRight
	plotHeight := Height - MarginTop - MarginBottom
	band := plotWidth / float64(len(points))
	barWidth := band * BarFraction

	xScale := func(i int) float64 {
		return MarginLeft + float64(i)*band
	}
	yScale := func(population float64) float64 {
		return Height - MarginBottom - ((population-c.YMin)/(c.YMax-c.YMin))*plotHeight
	}

	c.Bars = make([]Bar, len(points))
	c.XTicks = make([]XTick, len(points))
	for i, p := range points {
		y := yScale(p.Population)
		fill := HistoricalFill
		if p.Type == types.TrendProjected {
			fill = ProjectedFill
		}
		c.Bars[i] = Bar{
			X:      xScale(i) + (band-barWidth)/2,
			Y:      y,
			Width:  barWidth,
			Height: Height - MarginBottom - y,
			Fill:   fill,
			Point:  p,
		}
		c.XTicks[i] = XTick{
			Label:   fmt.Sprintf("%d", p.Year),
			XOffset: xScale(i) + band/2,
		}
	}

	c.YTicks = make([]YTick, YIntervals+1)
	for i := range c.YTicks {
		value := c.YMin + float64(i)*(c.YMax-c.YMin)/YIntervals
		c.YTicks[i] = YTick{
			Value:   value,
			Label:   fmt.Sprintf("%.1fM", value/1_000_000),
			YOffset: yScale(value),
		}
	}

	return c
}
