// Package session composes the browsing engine for one active screen: the
// restaurant list slot, the derived list view, the selection coordinator and
// the booking workflow. A session owns all of this state exclusively; nothing
// in it outlives Close.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/example/table-booker/internal/booking"
	"github.com/example/table-booker/internal/dining"
	"github.com/example/table-booker/internal/fetch"
	"github.com/example/table-booker/internal/listview"
	"github.com/example/table-booker/internal/selection"
)

// Gateway is the remote service contract the session consumes.
type Gateway interface {
	FetchRestaurants(ctx context.Context) ([]dining.RestaurantSummary, error)
	selection.DetailFetcher
	booking.Submitter
}

type Session struct {
	gw Gateway

	List      *fetch.Controller[[]dining.RestaurantSummary]
	Pipeline  *listview.Pipeline
	Selection *selection.Coordinator

	closeOnce sync.Once
}

// New wires a session. debounce is the list-query quiet window; notify, if
// non-nil, fires after every observable state change.
func New(gw Gateway, debounce time.Duration, notify func()) *Session {
	s := &Session{gw: gw}

	s.Pipeline = listview.NewPipeline(debounce, notify)
	// The pipeline source updates only from applied list transitions, so a
	// stale collection fetch can never replace a newer one. A failed fetch
	// discards the previous collection rather than keeping it visible.
	s.List = fetch.NewController[[]dining.RestaurantSummary](func(st fetch.State[[]dining.RestaurantSummary]) {
		switch st.Status {
		case fetch.StatusReady:
			s.Pipeline.SetSource(st.Value)
		case fetch.StatusFailed:
			s.Pipeline.SetSource(nil)
		default:
			if notify != nil {
				notify()
			}
		}
	})
	s.Selection = selection.NewCoordinator(gw, gw, notify)
	return s
}

// Open starts the initial restaurant-collection fetch. Calling it again
// reloads the collection, superseding any fetch still in flight.
func (s *Session) Open(ctx context.Context) {
	s.List.Load(ctx, s.gw.FetchRestaurants)
}

// View returns the current filtered, sorted list.
func (s *Session) View() []dining.RestaurantSummary {
	return s.Pipeline.View()
}

// Close tears the session down. Pending debounce deliveries are cancelled and
// late fetch or submit completions are swallowed.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.Pipeline.Stop()
		s.List.Dispose()
		s.Selection.Dispose()
	})
}
