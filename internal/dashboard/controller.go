package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sprawl-lens/internal/assistant"
	"sprawl-lens/internal/location"
	"sprawl-lens/internal/population"
	"sprawl-lens/internal/types"
	"sprawl-lens/internal/view"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Controller drives dashboard sessions: it applies view transitions and runs
// the fetches they start.
type Controller struct {
	sessions   *view.Store
	population population.Service
	locations  location.Service
	assistant  assistant.Service
	timeout    time.Duration
	logger     *slog.Logger

	inflight sync.WaitGroup
}

// NewController wires a controller. locations may be nil, in which case the
// map panel shows no resolved place.
func NewController(
	sessions *view.Store,
	populationService population.Service,
	locationService location.Service,
	assistantService assistant.Service,
	timeout time.Duration,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		sessions:   sessions,
		population: populationService,
		locations:  locationService,
		assistant:  assistantService,
		timeout:    timeout,
		logger:     logger.With("component", "dashboard-controller"),
	}
}

// Session returns the session for id, mounting it (first fetch of the default
// location) when it is new or still idle.
func (c *Controller) Session(id string) (string, *view.Shell) {
	id, shell := c.lookup(id)
	if ticket, ok := shell.Mount(); ok {
		c.start(id, shell, ticket)
	}
	return id, shell
}

// lookup returns the session for id without mounting it. Callers that begin
// their own fetch use it so a new session does not also load the default.
func (c *Controller) lookup(id string) (string, *view.Shell) {
	id, shell, created := c.sessions.Get(id)
	if created {
		c.logger.Debug("session created", "session", id)
	}
	return id, shell
}

// ChangeLocation points the dashboard at a new location and fetches it
func (c *Controller) ChangeLocation(id, loc string) (string, *view.Shell) {
	id, shell := c.lookup(id)
	c.start(id, shell, shell.Begin(loc))
	return id, shell
}

// SelectHotspot re-targets the dashboard at a hotspot's map query
func (c *Controller) SelectHotspot(id, locationQuery string) (string, *view.Shell) {
	id, shell := c.lookup(id)
	c.start(id, shell, shell.SelectHotspot(locationQuery))
	return id, shell
}

// Retry re-issues the failed fetch; it does nothing unless the session is in error
func (c *Controller) Retry(id string) (string, *view.Shell) {
	id, shell := c.Session(id)
	if ticket, ok := shell.Retry(); ok {
		c.start(id, shell, ticket)
	}
	return id, shell
}

// RevealSprawl shows the sprawl predictions section
func (c *Controller) RevealSprawl(id string) (string, *view.Shell) {
	id, shell := c.Session(id)
	shell.RevealSprawl()
	return id, shell
}

// Ask sends a question to the assistant and records both turns in the session.
// Failures are recorded as an apology turn rather than returned.
func (c *Controller) Ask(ctx context.Context, id, question string) (string, *view.Shell) {
	id, shell := c.Session(id)

	history := shell.ChatHistory()
	reply, err := c.assistant.Ask(ctx, question, history)
	if errors.Is(err, assistant.ErrEmptyQuestion) {
		return id, shell
	}

	userTurn := types.ChatTurn{Role: types.ChatRoleUser, Text: question}
	if err != nil {
		shell.AppendChat(userTurn, types.ChatTurn{Role: types.ChatRoleModel, Text: assistant.NoResponseMessage, Failed: true})
		return id, shell
	}

	shell.AppendChat(userTurn, types.ChatTurn{Role: types.ChatRoleModel, Text: reply})
	return id, shell
}

// Wait blocks until every started fetch has completed
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// start runs the fetch for ticket in the background. Superseded fetches are
// not cancelled; the shell discards their results.
func (c *Controller) start(id string, shell *view.Shell, ticket view.Ticket) {
	c.logger.Info("fetch started",
		"session", id,
		"seq", ticket.Seq,
		"location", ticket.Location,
	)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		data, place, err := c.fetch(ctx, ticket.Location)
		if err != nil {
			if !shell.Fail(ticket, population.UserMessage(err)) {
				c.logger.Debug("discarded stale failure", "session", id, "seq", ticket.Seq)
			}
			return
		}

		if !shell.Resolve(ticket, data, place) {
			c.logger.Debug("discarded stale response", "session", id, "seq", ticket.Seq)
			return
		}

		c.logger.Info("fetch completed", "session", id, "seq", ticket.Seq, "location", ticket.Location)
	}()
}

// fetch runs the population query and the place lookup concurrently.
// Only the population query can fail the fetch.
func (c *Controller) fetch(ctx context.Context, loc string) (*types.PopulationData, *types.Place, error) {
	var (
		data  *types.PopulationData
		place *types.Place
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data, err = c.population.FetchPopulationInfo(gctx, loc)
		return err
	})

	if c.locations != nil {
		// Parent ctx: a failed population query must not cancel the lookup
		g.Go(func() error {
			p, err := c.locations.Resolve(ctx, loc)
			if err != nil {
				c.logger.Warn("place lookup failed", "location", loc, "error", err)
				return nil
			}
			place = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return data, place, nil
}
