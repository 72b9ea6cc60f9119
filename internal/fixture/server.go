// Package fixture is a local stand-in for the remote booking service, used by
// the CLI and for manual testing. It serves the same three endpoints the real
// gateway exposes, backed by seeded in-memory data.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/example/table-booker/internal/dining"
)

type detailPayload struct {
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

type Server struct {
	mu       sync.Mutex
	details  map[string]detailPayload
	order    []string
	bookings map[string]string // restaurant-agnostic slot key -> confirmation id
}

func NewServer() *Server {
	s := &Server{
		details:  make(map[string]detailPayload),
		bookings: make(map[string]string),
	}
	s.seed()
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/restaurants", s.handleList)
	r.Get("/restaurants/{id}", s.handleDetail)
	r.Post("/bookings", s.handleBooking)
	return r
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]dining.RestaurantSummary, 0, len(s.order))
	for _, id := range s.order {
		d := s.details[id]
		out = append(out, dining.RestaurantSummary{
			ID:               d.ID,
			Name:             d.Name,
			ShortDescription: d.ShortDescription,
			Rating:           d.Rating,
		})
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	d, ok := s.details[id]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "restaurant not found"})
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleBooking(w http.ResponseWriter, r *http.Request) {
	var draft dining.BookingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed booking"})
		return
	}

	// One booking per email per date+time slot; a duplicate is the
	// slot-unavailable rejection the client maps to its rejected category.
	key := draft.Email + "|" + draft.Date + "|" + draft.Time
	s.mu.Lock()
	if _, taken := s.bookings[key]; taken {
		s.mu.Unlock()
		writeJSON(w, http.StatusConflict, map[string]string{"error": "slot unavailable"})
		return
	}
	conf := uuid.NewString()
	s.bookings[key] = conf
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]string{"confirmation": conf})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("fixture: encode response: %v", err)
	}
}

// Start serves h on addr until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	fmt.Printf("fixture gateway listening on %s\n", addr)
	return srv.ListenAndServe()
}
