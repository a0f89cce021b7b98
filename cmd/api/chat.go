package main

import (
	"errors"
	"net/http"
	"sprawl-lens/internal/assistant"
	"sprawl-lens/internal/types"

	"github.com/gin-gonic/gin"
)

// ChatRequest is a question plus the conversation so far
type ChatRequest struct {
	Question string           `json:"question" binding:"required" example:"Which new transit lines are planned for Mississauga?"`
	History  []types.ChatTurn `json:"history" binding:"dive"`
}

// ChatResponse carries the assistant's reply
type ChatResponse struct {
	Reply string `json:"reply" example:"- Hurontario LRT (opening 2025)"`
}

// handleAsk godoc
// @Summary Ask the assistant
// @Description Send a question and the prior conversation to Urbo, the regional planning assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Question and history"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/chat [post]
func (app *App) handleAsk(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reply, err := app.assistantService.Ask(c.Request.Context(), req.Question, req.History)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: assistant.NoResponseMessage})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
