package fixture

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/table-booker/internal/dining"
	"github.com/example/table-booker/internal/gateway"
	"github.com/example/table-booker/internal/internaltypes"
)

func newFixtureClient(t *testing.T) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(NewServer().Routes())
	t.Cleanup(srv.Close)
	return gateway.New(srv.URL, 2*time.Second)
}

func TestFixtureServesSeededCollection(t *testing.T) {
	c := newFixtureClient(t)

	rs, err := c.FetchRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 3)
	assert.Equal(t, "Restaurant A", rs[0].Name)
	assert.Equal(t, "Cafe C", rs[2].Name)
}

func TestFixtureDetailRoundTrip(t *testing.T) {
	c := newFixtureClient(t)

	d, err := c.FetchRestaurantDetail(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Cafe C", d.Name)
	assert.NotEmpty(t, d.Address)
	assert.NotEmpty(t, d.OpeningHours.Weekday)
}

func TestFixtureUnknownDetailIsNotFound(t *testing.T) {
	c := newFixtureClient(t)

	_, err := c.FetchRestaurantDetail(context.Background(), "999")
	assert.ErrorIs(t, err, internaltypes.ErrNotFound)
}

func TestFixtureRejectsDoubleBookedSlot(t *testing.T) {
	c := newFixtureClient(t)

	draft := dining.BookingDraft{
		Name: "Alice", Email: "alice@example.com", Phone: "0123456789",
		Date: "2026-09-14", Time: "19:00", Guests: 2,
	}
	require.NoError(t, c.SubmitBooking(context.Background(), draft))

	err := c.SubmitBooking(context.Background(), draft)
	assert.ErrorIs(t, err, internaltypes.ErrRejected)

	draft.Time = "20:00"
	assert.NoError(t, c.SubmitBooking(context.Background(), draft), "a different slot still books")
}
