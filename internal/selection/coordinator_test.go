package selection

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/table-booker/internal/dining"
	"github.com/example/table-booker/internal/fetch"
)

type fakeDetailFetcher struct {
	mu      sync.Mutex
	calls   map[string]int
	blocked map[string]chan struct{}
}

func newFakeDetailFetcher() *fakeDetailFetcher {
	return &fakeDetailFetcher{
		calls:   make(map[string]int),
		blocked: make(map[string]chan struct{}),
	}
}

func (f *fakeDetailFetcher) blockID(id string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.blocked[id] = ch
	return ch
}

func (f *fakeDetailFetcher) FetchRestaurantDetail(ctx context.Context, id string) (dining.RestaurantDetail, error) {
	f.mu.Lock()
	f.calls[id]++
	block := f.blocked[id]
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return dining.RestaurantDetail{ID: id, Name: "Restaurant " + id}, nil
}

func (f *fakeDetailFetcher) callsFor(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

type nopSubmitter struct{}

func (nopSubmitter) SubmitBooking(ctx context.Context, draft dining.BookingDraft) error { return nil }

func waitDetail(t *testing.T, c *Coordinator, id string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s := c.Detail.Snapshot()
		if s.Status == fetch.StatusReady && s.Value.ID == id {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for detail %q, have %+v", id, c.Detail.Snapshot())
}

func TestSelectTriggersDetailLoad(t *testing.T) {
	f := newFakeDetailFetcher()
	c := NewCoordinator(f, nopSubmitter{}, nil)
	defer c.Dispose()

	c.Select(context.Background(), "1")
	assert.Equal(t, "1", c.Current())
	waitDetail(t, c, "1")
}

func TestSelectIsIdempotent(t *testing.T) {
	f := newFakeDetailFetcher()
	c := NewCoordinator(f, nopSubmitter{}, nil)
	defer c.Dispose()

	c.Select(context.Background(), "1")
	waitDetail(t, c, "1")
	c.Select(context.Background(), "1")
	c.Select(context.Background(), "1")

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, f.callsFor("1"), "re-selecting the current id must not refetch")
}

func TestSelectChangeInvalidatesInFlightFetch(t *testing.T) {
	f := newFakeDetailFetcher()
	c := NewCoordinator(f, nopSubmitter{}, nil)
	defer c.Dispose()

	release1 := f.blockID("1")
	c.Select(context.Background(), "1")
	c.Select(context.Background(), "2")
	waitDetail(t, c, "2")

	// The fetch for "1" settles after "2" is already showing.
	close(release1)
	time.Sleep(50 * time.Millisecond)

	s := c.Detail.Snapshot()
	assert.Equal(t, "2", s.Value.ID, "stale detail must never replace the newer selection")
}

func TestSelectChangeResetsBookingForm(t *testing.T) {
	f := newFakeDetailFetcher()
	c := NewCoordinator(f, nopSubmitter{}, nil)
	defer c.Dispose()

	c.Select(context.Background(), "1")
	c.Workflow.UpdateDraft(func(d *dining.BookingDraft) {
		d.Name = "Alice"
		d.Guests = 4
	})
	require.False(t, c.Workflow.Draft().Empty())

	c.Select(context.Background(), "2")
	assert.True(t, c.Workflow.Draft().Empty(), "draft resets when the selection changes")
	assert.Empty(t, c.Workflow.Reason())
}

func TestConcurrentSelectsConvergeOnCurrentID(t *testing.T) {
	// Overlapping Select calls must issue detail loads in selection order,
	// so the slot always ends up holding the detail for Current().
	f := newFakeDetailFetcher()
	c := NewCoordinator(f, nopSubmitter{}, nil)
	defer c.Dispose()

	ids := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			c.Select(context.Background(), id)
		}(id)
	}
	wg.Wait()

	want := c.Current()
	require.NotEmpty(t, want)
	waitDetail(t, c, want)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, want, c.Detail.Snapshot().Value.ID,
		"detail slot must settle on the last-selected id")
}

func TestSelectEmptyClearsSelectionWithoutFetch(t *testing.T) {
	f := newFakeDetailFetcher()
	c := NewCoordinator(f, nopSubmitter{}, nil)
	defer c.Dispose()

	c.Select(context.Background(), "1")
	waitDetail(t, c, "1")
	c.Select(context.Background(), "")

	assert.Equal(t, "", c.Current())
	assert.Equal(t, 0, f.callsFor(""))
}
