package chart

import (
	"sprawl-lens/internal/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPopulation(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{656_480, "656,480"},
		{7_200_000, "7,200,000"},
		{6_972_000.6, "6,972,001"},
		{1e19, "10,000,000,000,000,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPopulation(tt.in))
		})
	}
}

func TestTooltipFor(t *testing.T) {
	c := Layout([]types.PopulationDataPoint{
		{Year: 2024, Population: 7_106_379, Type: types.TrendHistorical},
		{Year: 2029, Population: 7_900_000, Type: types.TrendProjected},
	})

	assert.Equal(t, Tooltip{Year: 2024, Population: "7,106,379", Type: types.TrendHistorical}, TooltipFor(c.Bars[0]))
	assert.Equal(t, Tooltip{Year: 2029, Population: "7,900,000", Type: types.TrendProjected}, TooltipFor(c.Bars[1]))
}
