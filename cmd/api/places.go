package main

import (
	"errors"
	"net/http"
	"sprawl-lens/internal/location"
	"sprawl-lens/internal/providers/openstreetmap"

	"github.com/gin-gonic/gin"
)

// PlaceInput defines the query parameters for the place lookup endpoint
type PlaceInput struct {
	Query string `form:"q" binding:"required"` // Free-text location, e.g. a hotspot's locationQuery
}

// handleGetPlace godoc
// @Summary Resolve a place
// @Description Geocode a location query with OpenStreetMap and attach its timezone
// @Tags location
// @Produce json
// @Param q query string true "Location query" example(Downtown Brampton, ON)
// @Success 200 {object} types.Place
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/places [get]
func (app *App) handleGetPlace(c *gin.Context) {
	var input PlaceInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	place, err := app.locationService.Resolve(c.Request.Context(), input.Query)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, openstreetmap.ErrNoResults):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no place matched the query"})
		default:
			app.logger.Error("failed to resolve place", "query", input.Query, "error", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to resolve place"})
		}
		return
	}

	c.JSON(http.StatusOK, place)
}
