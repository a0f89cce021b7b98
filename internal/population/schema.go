package population

import (
	"sprawl-lens/internal/types"

	"google.golang.org/genai"
)

func stringField() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func titledItem() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       stringField(),
			"description": stringField(),
		},
		Required:         []string{"title", "description"},
		PropertyOrdering: []string{"title", "description"},
	}
}

// ResponseSchema declares the JSON shape of types.PopulationData for the model.
// keyPoints is the only optional top-level list.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":   stringField(),
			"summary": stringField(),
			"keyPoints": {
				Type:  genai.TypeArray,
				Items: titledItem(),
			},
			"populationTrend": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"year":       {Type: genai.TypeInteger},
						"population": {Type: genai.TypeNumber},
						"type": {
							Type: genai.TypeString,
							Enum: []string{string(types.TrendHistorical), string(types.TrendProjected)},
						},
					},
					Required:         []string{"year", "population", "type"},
					PropertyOrdering: []string{"year", "population", "type"},
				},
			},
			"urbanSprawlPredictions": {
				Type:  genai.TypeArray,
				Items: titledItem(),
			},
			"predictedHotspots": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":          stringField(),
						"locationQuery": stringField(),
						"reason":        stringField(),
					},
					Required:         []string{"name", "locationQuery", "reason"},
					PropertyOrdering: []string{"name", "locationQuery", "reason"},
				},
			},
		},
		Required: []string{
			"title",
			"summary",
			"populationTrend",
			"urbanSprawlPredictions",
			"predictedHotspots",
		},
		PropertyOrdering: []string{
			"title",
			"summary",
			"keyPoints",
			"populationTrend",
			"urbanSprawlPredictions",
			"predictedHotspots",
		},
	}
}
