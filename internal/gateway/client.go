package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/example/table-booker/internal/dining"
	"github.com/example/table-booker/internal/internaltypes"
)

// Client talks to the remote booking service over JSON/HTTP. It is the only
// component that crosses the network boundary; everything above it consumes
// the three operations below and the error taxonomy in internaltypes.
type Client struct {
	hc      *http.Client
	baseURL string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// FetchRestaurants returns the full restaurant collection. Callers replace
// their copy wholesale; the slice is never patched in place.
func (c *Client) FetchRestaurants(ctx context.Context) ([]dining.RestaurantSummary, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/restaurants", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch restaurants: %w: %v", internaltypes.ErrNetwork, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch restaurants: %w (status=%d)", internaltypes.ErrNetwork, status)
	}
	var out []dining.RestaurantSummary
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("fetch restaurants: %w: %v", internaltypes.ErrNetwork, err)
	}
	return out, nil
}

// detailResponse matches the service payload, which nests the secondary
// fields under "details".
type detailResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription string  `json:"shortDescription"`
	Cuisine          string  `json:"cuisine"`
	Rating           float64 `json:"rating"`
	Details          struct {
		Address      string              `json:"address"`
		OpeningHours dining.OpeningHours `json:"openingHours"`
		ReviewScore  float64             `json:"reviewScore"`
		ContactEmail string              `json:"contactEmail"`
	} `json:"details"`
}

func (c *Client) FetchRestaurantDetail(ctx context.Context, id string) (dining.RestaurantDetail, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/restaurants/"+url.PathEscape(id), nil)
	if err != nil {
		return dining.RestaurantDetail{}, fmt.Errorf("fetch detail: %w: %v", internaltypes.ErrNetwork, err)
	}
	if status == http.StatusNotFound {
		return dining.RestaurantDetail{}, fmt.Errorf("fetch detail %q: %w", id, internaltypes.ErrNotFound)
	}
	if status != http.StatusOK {
		return dining.RestaurantDetail{}, fmt.Errorf("fetch detail: %w (status=%d)", internaltypes.ErrNetwork, status)
	}
	var res detailResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return dining.RestaurantDetail{}, fmt.Errorf("fetch detail: %w: %v", internaltypes.ErrNetwork, err)
	}
	return dining.RestaurantDetail{
		ID:               res.ID,
		Name:             res.Name,
		ShortDescription: res.ShortDescription,
		Cuisine:          res.Cuisine,
		Rating:           res.Rating,
		Address:          res.Details.Address,
		OpeningHours:     res.Details.OpeningHours,
		ReviewScore:      res.Details.ReviewScore,
		ContactEmail:     res.Details.ContactEmail,
	}, nil
}

// SubmitBooking posts a validated draft. Each call carries a fresh
// idempotency key so a duplicated delivery cannot double-book.
func (c *Client) SubmitBooking(ctx context.Context, draft dining.BookingDraft) error {
	jb, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("submit booking: %w: %v", internaltypes.ErrNetwork, err)
	}
	status, _, err := c.do(ctx, http.MethodPost, "/bookings", jb)
	if err != nil {
		return fmt.Errorf("submit booking: %w: %v", internaltypes.ErrNetwork, err)
	}
	switch {
	case status >= 200 && status < 300:
		return nil
	case status >= 400 && status < 500:
		return fmt.Errorf("submit booking: %w (status=%d)", internaltypes.ErrRejected, status)
	default:
		return fmt.Errorf("submit booking: %w (status=%d)", internaltypes.ErrNetwork, status)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, err
	}
	return res.StatusCode, b, nil
}
