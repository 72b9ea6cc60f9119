// Package selection tracks which restaurant is currently selected across the
// list and detail views.
package selection

import (
	"context"
	"sync"

	"github.com/example/table-booker/internal/booking"
	"github.com/example/table-booker/internal/dining"
	"github.com/example/table-booker/internal/fetch"
)

// DetailFetcher loads the full record for one restaurant.
type DetailFetcher interface {
	FetchRestaurantDetail(ctx context.Context, id string) (dining.RestaurantDetail, error)
}

// Coordinator owns the current selection, the detail resource slot and the
// booking workflow tied to it. Changing the selection resets the booking form
// and starts a fresh detail fetch; the generation guard in the detail
// controller invalidates whatever was still in flight for the previous id.
type Coordinator struct {
	fetcher DetailFetcher

	// selectMu serializes Select end to end, so overlapping calls issue
	// their detail loads in the same order they update the selection.
	selectMu sync.Mutex

	mu        sync.Mutex
	currentID string // "" means no selection

	Detail   *fetch.Controller[dining.RestaurantDetail]
	Workflow *booking.Workflow
}

func NewCoordinator(fetcher DetailFetcher, submitter booking.Submitter, notify func()) *Coordinator {
	var forward func(fetch.State[dining.RestaurantDetail])
	if notify != nil {
		forward = func(fetch.State[dining.RestaurantDetail]) { notify() }
	}
	return &Coordinator{
		fetcher:  fetcher,
		Detail:   fetch.NewController[dining.RestaurantDetail](forward),
		Workflow: booking.NewWorkflow(submitter, notify),
	}
}

// Select makes id the current selection. Selecting the already-current id is
// a no-op; on a real change the booking draft and any prior result are
// cleared and a new detail load starts.
func (c *Coordinator) Select(ctx context.Context, id string) {
	c.selectMu.Lock()
	defer c.selectMu.Unlock()

	c.mu.Lock()
	if id == c.currentID {
		c.mu.Unlock()
		return
	}
	c.currentID = id
	c.mu.Unlock()

	c.Workflow.Reset()
	if id == "" {
		return
	}
	c.Detail.Load(ctx, func(ctx context.Context) (dining.RestaurantDetail, error) {
		return c.fetcher.FetchRestaurantDetail(ctx, id)
	})
}

// Current returns the selected id, "" when none.
func (c *Coordinator) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentID
}

// Dispose tears down the detail slot; late fetch completions become no-ops.
func (c *Coordinator) Dispose() {
	c.Detail.Dispose()
}
