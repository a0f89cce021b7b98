package main

import (
	"context"
	"fmt"
	"log/slog"
	"sprawl-lens/internal/assistant"
	"sprawl-lens/internal/config"
	"sprawl-lens/internal/dashboard"
	"sprawl-lens/internal/location"
	"sprawl-lens/internal/population"
	"sprawl-lens/internal/providers/gemini"
	"sprawl-lens/internal/timezone"
	"sprawl-lens/internal/ui"
	"sprawl-lens/internal/view"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	logger            *slog.Logger
	cfg               *config.Config
	populationService population.Service
	locationService   location.Service
	assistantService  assistant.Service
	dashboard         *dashboard.Controller
}

// NewApp creates a new application backed by the live Gemini and OpenStreetMap clients
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	structured, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	chat := structured
	if cfg.Gemini.ChatModel != "" && cfg.Gemini.ChatModel != cfg.Gemini.Model {
		chat, err = gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.ChatModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini chat client: %w", err)
		}
	}

	// Without a timezone finder the map panel simply omits the zone
	tz, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
		tz = nil
	}

	return newApp(
		cfg,
		logger,
		population.NewPopulationService(structured, cfg.App.Region, cfg.App.DefaultLocation, logger),
		location.NewLocationService(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, tz, logger),
		assistant.NewAssistantService(chat, cfg.App.Region, logger),
	)
}

// newApp wires the router around the given services
func newApp(
	cfg *config.Config,
	logger *slog.Logger,
	populationService population.Service,
	locationService location.Service,
	assistantService assistant.Service,
) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	templates, err := ui.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Create Gin router
	router := gin.New()
	router.SetHTMLTemplate(templates)

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger, "/ping"))

	sessions := view.NewStore(cfg.App.DefaultLocation, cfg.App.SessionTTL)

	app := &App{
		router:            router,
		logger:            logger,
		cfg:               cfg,
		populationService: populationService,
		locationService:   locationService,
		assistantService:  assistantService,
		dashboard: dashboard.NewController(
			sessions,
			populationService,
			locationService,
			assistantService,
			cfg.App.QueryTimeout,
			logger,
		),
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized",
		"region", cfg.App.Region,
		"default_location", cfg.App.DefaultLocation,
		"model", cfg.Gemini.Model,
	)

	return app, nil
}
