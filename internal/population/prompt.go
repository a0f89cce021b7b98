package population

import (
	"fmt"
	"strings"
)

// Request cardinalities the prompt asks the model for
const (
	HistoricalYears   = 5
	ProjectedYears    = 5
	SprawlPredictions = 3
	Hotspots          = 3
	SummaryMinWords   = 30
	SummaryMaxWords   = 40
)

const sprawlContext = `Predicting urban sprawl means analysing the factors and trends that drive urban development. ` +
	`The extent and pattern of expansion depend on indicators drawn from demographic, economic, environmental and spatial data. ` +
	`Key indicators include population growth, economic indicators (job growth, income levels), Land Use and Land Cover (LULC), ` +
	`transportation infrastructure, zoning regulations, local politics, and proximity to services and natural features.`

// Factors lists the indicators the analysis is asked to weigh, in display order
var Factors = []string{
	"Population growth",
	"Economic indicators (job growth, income levels)",
	"Land Use and Land Cover (LULC)",
	"Transportation Infrastructure",
	"Zoning and Land Use Regulations",
	"Proximity to essential services",
	"Proximity to natural features",
}

// BuildPrompt renders the analyst instruction for one location within a region
func BuildPrompt(region, location string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Act as an expert urban planning analyst for the %s.\n", region)
	fmt.Fprintf(&b, "Using the context below on predicting urban sprawl, produce a detailed analysis for %s.\n", location)
	fmt.Fprintf(&b, "If the location is '%s', cover the entire region.\n\n", region)

	fmt.Fprintf(&b, "Context on urban sprawl prediction:\n%q\n\n", sprawlContext)

	b.WriteString("The analysis must include:\n")
	fmt.Fprintf(&b, "1. A page title specific to %s.\n", location)
	fmt.Fprintf(&b, "2. A concise natural-language summary (%d-%d words) of the population trend.\n", SummaryMinWords, SummaryMaxWords)
	b.WriteString("3. Three to five key insights, each with a short title and a description.\n")
	fmt.Fprintf(&b, "4. Population figures for the last %d years (type \"historical\") and projections for the next %d years (type \"projected\"), one entry per year.\n", HistoricalYears, ProjectedYears)
	fmt.Fprintf(&b, "5. Exactly %d predictions about the future of urban sprawl in %s, with short titles and detailed descriptions.\n", SprawlPredictions, location)
	fmt.Fprintf(&b, "6. Exactly %d predicted growth hotspots strictly within %s, each with:\n", Hotspots, location)
	b.WriteString("   - 'name': a human-readable name for the area.\n")
	b.WriteString("   - 'locationQuery': a map-searchable string that identifies the area precisely.\n")
	b.WriteString("   - 'reason': a detailed explanation based on zoning, transit projects, housing, or redevelopment potential.\n\n")

	b.WriteString("Return the entire response as a single JSON object.\n")

	return b.String()
}
