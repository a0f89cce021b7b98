// Package view holds the dashboard's per-browser state and the transitions
// between loading, error and ready.
package view

import (
	"slices"
	"sprawl-lens/internal/types"
	"strings"
	"sync"
)

// Status is the data state of the dashboard
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Ticket identifies one fetch. Only the most recent ticket may complete it.
type Ticket struct {
	Seq      uint64
	Location string
}

// Snapshot is an immutable copy of the shell for rendering
type Snapshot struct {
	Location       string
	Status         Status
	Data           *types.PopulationData
	Place          *types.Place
	Error          string
	SprawlRevealed bool
	Chat           []types.ChatTurn
}

// Loading reports whether a fetch is outstanding
func (s Snapshot) Loading() bool { return s.Status == StatusLoading }

// Ready reports whether data is available to render
func (s Snapshot) Ready() bool { return s.Status == StatusReady && s.Data != nil }

// Failed reports whether the last fetch failed
func (s Snapshot) Failed() bool { return s.Status == StatusError }

// Shell is the state container for one dashboard
type Shell struct {
	mu sync.Mutex

	location       string
	status         Status
	data           *types.PopulationData
	place          *types.Place
	errMsg         string
	sprawlRevealed bool
	seq            uint64
	chat           []types.ChatTurn
}

// NewShell returns an idle shell pointed at location
func NewShell(location string) *Shell {
	return &Shell{location: location}
}

// Begin starts a fetch for location from any state.
// A blank location keeps the current one.
func (s *Shell) Begin(location string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if loc := strings.TrimSpace(location); loc != "" {
		s.location = loc
	}
	return s.beginLocked()
}

// Mount starts the first fetch of an idle shell; ok is false once the shell
// has left idle.
func (s *Shell) Mount() (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusIdle {
		return Ticket{}, false
	}
	return s.beginLocked(), true
}

// Retry re-issues the failed fetch with the same location.
// It only applies in the error state.
func (s *Shell) Retry() (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusError {
		return Ticket{}, false
	}
	return s.beginLocked(), true
}

// SelectHotspot re-targets the dashboard at a hotspot's map query
func (s *Shell) SelectHotspot(locationQuery string) Ticket {
	return s.Begin(locationQuery)
}

func (s *Shell) beginLocked() Ticket {
	s.seq++
	s.status = StatusLoading
	s.errMsg = ""
	s.sprawlRevealed = false
	return Ticket{Seq: s.seq, Location: s.location}
}

// Resolve completes ticket with data. Stale tickets are ignored and false is returned.
func (s *Shell) Resolve(t Ticket, data *types.PopulationData, place *types.Place) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Seq != s.seq || s.status != StatusLoading {
		return false
	}
	s.status = StatusReady
	s.data = data
	s.place = place
	s.errMsg = ""
	return true
}

// Fail completes ticket with a user-facing message. Stale tickets are ignored.
func (s *Shell) Fail(t Ticket, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Seq != s.seq || s.status != StatusLoading {
		return false
	}
	s.status = StatusError
	s.data = nil
	s.errMsg = message
	return true
}

// RevealSprawl shows the sprawl predictions; it only applies to ready data
func (s *Shell) RevealSprawl() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusReady {
		return false
	}
	s.sprawlRevealed = true
	return true
}

// AppendChat records turns in the assistant conversation
func (s *Shell) AppendChat(turns ...types.ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, turns...)
}

// ChatHistory returns a copy of the conversation so far
func (s *Shell) ChatHistory() []types.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.chat)
}

// Location returns the active location
func (s *Shell) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// Snapshot copies the current state
func (s *Shell) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Location:       s.location,
		Status:         s.status,
		Data:           s.data,
		Place:          s.place,
		Error:          s.errMsg,
		SprawlRevealed: s.sprawlRevealed,
		Chat:           slices.Clone(s.chat),
	}
}
