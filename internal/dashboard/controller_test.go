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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePopulation struct {
	mu      sync.Mutex
	calls   []string
	results map[string]*types.PopulationData
	err     error
	gates   map[string]chan struct{}
}

func (f *fakePopulation) FetchPopulationInfo(ctx context.Context, loc string) (*types.PopulationData, error) {
	f.mu.Lock()
	f.calls = append(f.calls, loc)
	gate := f.gates[loc]
	err := f.err
	data := f.results[loc]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = &types.PopulationData{Title: loc}
	}
	return data, nil
}

func (f *fakePopulation) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeLocations struct {
	err error
}

func (f *fakeLocations) Resolve(ctx context.Context, query string) (*types.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.Place{Query: query, Name: query}, nil
}

type fakeAssistant struct {
	reply string
	err   error
	seen  [][]types.ChatTurn
}

func (f *fakeAssistant) Ask(ctx context.Context, question string, history []types.ChatTurn) (string, error) {
	if question == "" {
		return "", assistant.ErrEmptyQuestion
	}
	f.seen = append(f.seen, history)
	return f.reply, f.err
}

func newController(pop population.Service, loc location.Service, asst *fakeAssistant) *Controller {
	if asst == nil {
		asst = &fakeAssistant{}
	}
	return NewController(view.NewStore("Greater Toronto Area", time.Hour), pop, loc, asst, time.Second, slog.Default())
}

func TestController_FirstVisitLoadsDefault(t *testing.T) {
	pop := &fakePopulation{}
	c := newController(pop, &fakeLocations{}, nil)

	id, shell := c.Session("")
	require.NotEmpty(t, id)
	c.Wait()

	snap := shell.Snapshot()
	require.True(t, snap.Ready())
	assert.Equal(t, "Greater Toronto Area", snap.Data.Title)
	require.NotNil(t, snap.Place)
	assert.Equal(t, "Greater Toronto Area", snap.Place.Query)

	// Returning visitor does not refetch
	c.Session(id)
	c.Wait()
	assert.Equal(t, []string{"Greater Toronto Area"}, pop.Calls())
}

func TestController_NewSessionFetchesOnlyRequestedLocation(t *testing.T) {
	tests := []struct {
		name string
		do   func(c *Controller) *view.Shell
		want string
	}{
		{
			name: "change location",
			do: func(c *Controller) *view.Shell {
				_, shell := c.ChangeLocation("", "Brampton")
				return shell
			},
			want: "Brampton",
		},
		{
			name: "select hotspot",
			do: func(c *Controller) *view.Shell {
				_, shell := c.SelectHotspot("expired-session", "Downtown Brampton, ON")
				return shell
			},
			want: "Downtown Brampton, ON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pop := &fakePopulation{}
			c := newController(pop, nil, nil)

			shell := tt.do(c)
			c.Wait()

			assert.Equal(t, []string{tt.want}, pop.Calls())
			assert.Equal(t, tt.want, shell.Snapshot().Data.Title)
		})
	}
}

func TestController_PlaceFailureTolerated(t *testing.T) {
	c := newController(&fakePopulation{}, &fakeLocations{err: errors.New("nominatim down")}, nil)

	_, shell := c.ChangeLocation("", "Brampton")
	c.Wait()

	snap := shell.Snapshot()
	assert.True(t, snap.Ready())
	assert.Nil(t, snap.Place)
}

func TestController_ErrorThenRetrySameLocation(t *testing.T) {
	pop := &fakePopulation{err: &population.QueryError{Kind: population.KindEmptyResponse}}
	c := newController(pop, nil, nil)

	id, shell := c.ChangeLocation("", "Markham")
	c.Wait()

	snap := shell.Snapshot()
	require.True(t, snap.Failed())
	assert.Equal(t, "The API returned an empty response. Please try again.", snap.Error)

	pop.mu.Lock()
	pop.err = nil
	pop.mu.Unlock()

	c.Retry(id)
	c.Wait()

	calls := pop.Calls()
	assert.Equal(t, "Markham", calls[len(calls)-1])
	assert.True(t, shell.Snapshot().Ready())
}

func TestController_RetryIgnoredWhenReady(t *testing.T) {
	pop := &fakePopulation{}
	c := newController(pop, nil, nil)

	id, _ := c.Session("")
	c.Wait()
	before := len(pop.Calls())

	c.Retry(id)
	c.Wait()
	assert.Len(t, pop.Calls(), before)
}

func TestController_SelectHotspotResetsRevealBeforeResolve(t *testing.T) {
	gate := make(chan struct{})
	pop := &fakePopulation{
		results: map[string]*types.PopulationData{
			"Greater Toronto Area": {
				Title:                  "GTA",
				UrbanSprawlPredictions: []types.UrbanSprawlPrediction{{Title: "x"}},
				PredictedHotspots:      []types.PredictedHotspot{{Name: "Downtown", LocationQuery: "Downtown Brampton, ON"}},
			},
		},
		gates: map[string]chan struct{}{"Downtown Brampton, ON": gate},
	}
	c := newController(pop, nil, nil)

	id, shell := c.Session("")
	c.Wait()
	c.RevealSprawl(id)
	require.True(t, shell.Snapshot().SprawlRevealed)

	c.SelectHotspot(id, "Downtown Brampton, ON")

	snap := shell.Snapshot()
	assert.Equal(t, "Downtown Brampton, ON", snap.Location)
	assert.False(t, snap.SprawlRevealed)
	assert.True(t, snap.Loading())

	close(gate)
	c.Wait()
	assert.Equal(t, "Downtown Brampton, ON", shell.Snapshot().Data.Title)
}

func TestController_LateResponseDoesNotOverwrite(t *testing.T) {
	slowGate := make(chan struct{})
	pop := &fakePopulation{gates: map[string]chan struct{}{"Vaughan": slowGate}}
	c := newController(pop, nil, nil)

	id, shell := c.Session("")
	c.Wait()

	c.ChangeLocation(id, "Vaughan")
	c.ChangeLocation(id, "Oakville")

	// Let Oakville finish first, then release the slow Vaughan response
	require.Eventually(t, func() bool { return shell.Snapshot().Ready() }, time.Second, 5*time.Millisecond)
	close(slowGate)
	c.Wait()

	snap := shell.Snapshot()
	assert.Equal(t, "Oakville", snap.Location)
	assert.Equal(t, "Oakville", snap.Data.Title)
}

func TestController_Ask(t *testing.T) {
	asst := &fakeAssistant{reply: "- Hurontario LRT"}
	c := newController(&fakePopulation{}, nil, asst)

	id, shell := c.Ask(context.Background(), "", "Which LRTs?")
	c.Wait()

	_, _ = c.Ask(context.Background(), id, "And subways?")

	chat := shell.Snapshot().Chat
	require.Len(t, chat, 4)
	assert.Equal(t, types.ChatRoleUser, chat[0].Role)
	assert.Equal(t, "- Hurontario LRT", chat[1].Text)

	// Second question carried the first exchange as history
	require.Len(t, asst.seen, 2)
	assert.Len(t, asst.seen[1], 2)
}

func TestController_AskFailureRecordsApology(t *testing.T) {
	asst := &fakeAssistant{err: assistant.ErrNoResponse}
	c := newController(&fakePopulation{}, nil, asst)

	_, shell := c.Ask(context.Background(), "", "Anything?")
	c.Wait()

	chat := shell.Snapshot().Chat
	require.Len(t, chat, 2)
	assert.True(t, chat[1].Failed)
	assert.Equal(t, assistant.NoResponseMessage, chat[1].Text)
}

func TestController_AskBlankQuestionIgnored(t *testing.T) {
	c := newController(&fakePopulation{}, nil, &fakeAssistant{reply: "x"})

	_, shell := c.Ask(context.Background(), "", "")
	c.Wait()

	assert.Empty(t, shell.Snapshot().Chat)
}
