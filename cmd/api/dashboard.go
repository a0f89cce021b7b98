package main

import (
	"net/http"
	"sprawl-lens/internal/ui"
	"sprawl-lens/internal/view"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "sprawl_lens_session"

// LocationForm is posted by the map panel
type LocationForm struct {
	Location string `form:"location"`
}

// HotspotForm is posted by a hotspot's View on Map button
type HotspotForm struct {
	LocationQuery string `form:"locationQuery" binding:"required"`
}

// ChatForm is posted by the assistant panel
type ChatForm struct {
	Question string `form:"question"`
}

// sessionID returns the browser's session id, or "" for a first visit
func (app *App) sessionID(c *gin.Context) string {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return id
}

func (app *App) setSession(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, int(app.cfg.App.SessionTTL.Seconds()), "/", "", false, true)
}

func (app *App) renderDashboard(c *gin.Context, id string, shell *view.Shell) {
	app.setSession(c, id)
	c.HTML(http.StatusOK, ui.DashboardTemplate, ui.NewDashboardPage(shell.Snapshot(), app.cfg.App.Region))
}

// backToDashboard finishes a form post with a redirect so reloads do not resubmit
func (app *App) backToDashboard(c *gin.Context, id, fragment string) {
	app.setSession(c, id)
	c.Redirect(http.StatusSeeOther, "/"+fragment)
}

func (app *App) handleDashboard(c *gin.Context) {
	id, shell := app.dashboard.Session(app.sessionID(c))
	app.renderDashboard(c, id, shell)
}

func (app *App) handleIntro(c *gin.Context) {
	c.HTML(http.StatusOK, ui.IntroTemplate, ui.NewIntroPage(app.cfg.App.Region, app.cfg.App.DefaultLocation))
}

func (app *App) handleChangeLocation(c *gin.Context) {
	var form LocationForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	id, _ := app.dashboard.ChangeLocation(app.sessionID(c), form.Location)
	app.backToDashboard(c, id, "")
}

func (app *App) handleRetry(c *gin.Context) {
	id, _ := app.dashboard.Retry(app.sessionID(c))
	app.backToDashboard(c, id, "")
}

func (app *App) handleRevealSprawl(c *gin.Context) {
	id, _ := app.dashboard.RevealSprawl(app.sessionID(c))
	app.backToDashboard(c, id, "#urban-sprawl-section")
}

func (app *App) handleSelectHotspot(c *gin.Context) {
	var form HotspotForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "a hotspot location is required")
		return
	}

	id, _ := app.dashboard.SelectHotspot(app.sessionID(c), form.LocationQuery)
	app.backToDashboard(c, id, "#map")
}

func (app *App) handleChat(c *gin.Context) {
	var form ChatForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	id, _ := app.dashboard.Ask(c.Request.Context(), app.sessionID(c), form.Question)
	app.backToDashboard(c, id, "#chat")
}
