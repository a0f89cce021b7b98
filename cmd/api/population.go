package main

import (
	"errors"
	"net/http"
	"sprawl-lens/internal/chart"
	"sprawl-lens/internal/population"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error string `json:"error" example:"The API returned an empty response. Please try again."`
	Kind  string `json:"kind,omitempty" example:"empty_response"`
}

// PopulationInput defines the query parameters for the population endpoints
type PopulationInput struct {
	Location string `form:"location"` // Location to analyse; blank means the default location
}

// handleGetPopulation godoc
// @Summary Get population analysis
// @Description Ask Gemini for the population trend, sprawl predictions and growth hotspots of a location
// @Tags population
// @Produce json
// @Param location query string false "Location to analyse" example(Brampton, Ontario)
// @Success 200 {object} types.PopulationData
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/population [get]
func (app *App) handleGetPopulation(c *gin.Context) {
	var input PopulationInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	data, err := app.populationService.FetchPopulationInfo(c.Request.Context(), input.Location)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// handleGetChart godoc
// @Summary Get population chart geometry
// @Description Lay out the population trend of a location as SVG bar chart geometry
// @Tags population
// @Produce json
// @Param location query string false "Location to analyse" example(Vaughan, Ontario)
// @Success 200 {object} chart.Chart
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/chart [get]
func (app *App) handleGetChart(c *gin.Context) {
	var input PopulationInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	data, err := app.populationService.FetchPopulationInfo(c.Request.Context(), input.Location)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart.Layout(data.PopulationTrend))
}

// queryErrorStatus maps a population failure onto a gateway status:
// 503 for transport failures, 502 for anything the upstream got wrong.
func queryErrorStatus(err error) int {
	var qe *population.QueryError
	if errors.As(err, &qe) && qe.Kind != population.KindUnavailable {
		return http.StatusBadGateway
	}
	return http.StatusServiceUnavailable
}

func writeQueryError(c *gin.Context, err error) {
	resp := ErrorResponse{Error: population.UserMessage(err)}

	var qe *population.QueryError
	if errors.As(err, &qe) {
		resp.Kind = qe.Kind.String()
	}

	_ = c.Error(err)
	c.JSON(queryErrorStatus(err), resp)
}
