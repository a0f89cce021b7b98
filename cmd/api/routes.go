package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Dashboard pages
	app.router.GET("/", app.handleDashboard)
	app.router.GET("/intro", app.handleIntro)
	app.router.POST("/location", app.handleChangeLocation)
	app.router.POST("/retry", app.handleRetry)
	app.router.POST("/sprawl", app.handleRevealSprawl)
	app.router.POST("/hotspot", app.handleSelectHotspot)
	app.router.POST("/chat", app.handleChat)

	// JSON API
	api := app.router.Group("/api/v1")
	{
		api.GET("/population", app.handleGetPopulation)
		api.GET("/chart", app.handleGetChart)
		api.GET("/places", app.handleGetPlace)
		api.POST("/chat", app.handleAsk)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
