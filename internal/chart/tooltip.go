package chart

import (
	"math"
	"sprawl-lens/internal/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPopulation renders a population rounded to a whole number with
// thousands separators, e.g. 7,200,000. Any float64 formats without overflow.
func FormatPopulation(population float64) string {
	return printer.Sprintf("%.0f", math.Round(population))
}

// Tooltip is what the chart shows while the pointer is over a bar. The page
// positions it at the pointer and blanks every field again on leave.
type Tooltip struct {
	Year       int
	Population string
	Type       types.TrendType
}

// TooltipFor returns the tooltip content for a bar
func TooltipFor(bar Bar) Tooltip {
	return Tooltip{
		Year:       bar.Point.Year,
		Population: FormatPopulation(bar.Point.Population),
		Type:       bar.Point.Type,
	}
}
