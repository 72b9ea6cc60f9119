package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/table-booker/internal/booking"
	"github.com/example/table-booker/internal/dining"
	"github.com/example/table-booker/internal/fetch"
	"github.com/example/table-booker/internal/fixture"
	"github.com/example/table-booker/internal/gateway"
)

func newSessionAgainstFixture(t *testing.T, debounce time.Duration) *Session {
	t.Helper()
	srv := httptest.NewServer(fixture.NewServer().Routes())
	t.Cleanup(srv.Close)

	s := New(gateway.New(srv.URL, 2*time.Second), debounce, nil)
	t.Cleanup(s.Close)
	return s
}

func waitListReady(t *testing.T, s *Session) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.List.Snapshot().Status == fetch.StatusReady {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for list, at %q", s.List.Snapshot().Status)
}

func TestSessionBrowseFilterAndBook(t *testing.T) {
	s := newSessionAgainstFixture(t, 30*time.Millisecond)

	s.Open(context.Background())
	waitListReady(t, s)
	require.Len(t, s.View(), 3)

	// Type "Cafe" one keystroke at a time; only the settled query filters.
	for _, q := range []string{"C", "Ca", "Caf", "Cafe"} {
		s.Pipeline.QueryInput(q)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	view := s.View()
	require.Len(t, view, 1)
	assert.Equal(t, "3", view[0].ID)
	assert.Equal(t, "Cafe C", view[0].Name)

	// Select it and book a table.
	s.Selection.Select(context.Background(), "3")
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && s.Selection.Detail.Snapshot().Status != fetch.StatusReady {
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, "Cafe C", s.Selection.Detail.Snapshot().Value.Name)

	wf := s.Selection.Workflow
	wf.UpdateDraft(func(d *dining.BookingDraft) {
		*d = dining.BookingDraft{
			Name:  "Alice Example",
			Email: "alice@example.com",
			Phone: "0123456789",
			Date:  time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
			Time:  "19:00", Guests: 2,
		}
	})
	require.True(t, wf.Submit(context.Background()))

	deadline = time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && wf.Phase() == booking.PhaseSubmitting {
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, booking.PhaseSucceeded, wf.Phase())
}

func TestSessionReloadReplacesCollectionWholesale(t *testing.T) {
	s := newSessionAgainstFixture(t, time.Millisecond)

	s.Open(context.Background())
	waitListReady(t, s)
	first := s.List.Snapshot()

	s.Open(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && s.List.Snapshot().Generation == first.Generation {
		time.Sleep(time.Millisecond)
	}
	waitListReady(t, s)

	assert.Greater(t, s.List.Snapshot().Generation, first.Generation)
	assert.Len(t, s.View(), 3)
}

func TestSessionFailedReloadDiscardsPreviousCollection(t *testing.T) {
	fixtureHandler := fixture.NewServer().Routes()
	var failing atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fixtureHandler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	s := New(gateway.New(srv.URL, 2*time.Second), time.Millisecond, nil)
	t.Cleanup(s.Close)

	s.Open(context.Background())
	waitListReady(t, s)
	require.Len(t, s.View(), 3)

	failing.Store(true)
	s.Open(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && s.List.Snapshot().Status != fetch.StatusFailed {
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, fetch.StatusFailed, s.List.Snapshot().Status)

	assert.Empty(t, s.View(), "a failed fetch leaves no previous value behind")
	assert.Nil(t, s.List.Snapshot().Value)
}

func TestSessionCloseSwallowsEverything(t *testing.T) {
	s := newSessionAgainstFixture(t, 20*time.Millisecond)

	s.Open(context.Background())
	s.Pipeline.QueryInput("Cafe")
	s.Close()
	s.Close() // idempotent

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, "", s.Pipeline.Query(), "debounce cancelled by teardown")
}

func TestSessionSelectionChangeDuringSubmitDiscardsResult(t *testing.T) {
	s := newSessionAgainstFixture(t, time.Millisecond)

	s.Open(context.Background())
	waitListReady(t, s)

	s.Selection.Select(context.Background(), "1")
	wf := s.Selection.Workflow
	wf.UpdateDraft(func(d *dining.BookingDraft) {
		*d = dining.BookingDraft{
			Name:  "Alice Example",
			Email: "alice@example.com",
			Phone: "0123456789",
			Date:  time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
			Time:  "19:00", Guests: 2,
		}
	})
	require.True(t, wf.Submit(context.Background()))

	// Switch restaurants while the submit may still be in flight.
	s.Selection.Select(context.Background(), "2")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, booking.PhaseEditing, wf.Phase(),
		"the in-flight result is discarded once the selection moved on")
	assert.True(t, wf.Draft().Empty())
}
