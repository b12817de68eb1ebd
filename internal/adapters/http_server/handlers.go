// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"yatrimitra/internal/app"
	"yatrimitra/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	// Now is the clock used for default stay dates; nil means time.Now.
	Now func() time.Time
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type listResponse struct {
	Items []string `json:"items"`
}

type geocodeResponse struct {
	Hotel  string             `json:"hotel"`
	City   string             `json:"city"`
	Coords domain.Coordinate  `json:"coords"`
	Source domain.CoordSource `json:"source"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/destinations", h.destinations)
		r.Get("/amenities", h.amenities)
		r.Get("/recommendations", h.recommendations)
		r.Get("/weather/{city}", h.weather)
		r.Get("/geocode", h.geocode)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDatasetUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Dataset Unavailable", err.Error())
	case errors.Is(err, domain.ErrMissingSentimentColumn):
		writeProblem(w, http.StatusInternalServerError, "Dataset Schema Error", err.Error())
	case errors.Is(err, domain.ErrInvalidStay), errors.Is(err, domain.ErrUnknownPriceTier):
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
	default:
		log.Error().Err(err).Msg("unhandled service error")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable sends v with a weak ETag and answers 304 when the client
// already holds that version.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	writeJSON(w, body)
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) destinations(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Q.Destinations()
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, listResponse{Items: nonNil(ds)})
}

func (h *Handlers) amenities(w http.ResponseWriter, r *http.Request) {
	as, err := h.Q.Amenities()
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, listResponse{Items: nonNil(as)})
}

func (h *Handlers) recommendations(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	// sent back verbatim so values from /v1/destinations match exactly
	dest := qs.Get("destination")
	if strings.TrimSpace(dest) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid destination", "destination is required")
		return
	}
	tier, err := domain.ParsePriceTier(qs.Get("tier"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid tier", "tier must be one of budget, comfort, luxury")
		return
	}

	today := h.now()
	checkIn, ok := parseDate(qs.Get("check_in"), today.AddDate(0, 0, 1))
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid check_in", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, ok := parseDate(qs.Get("check_out"), today.AddDate(0, 0, 3))
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid check_out", "check_out must be YYYY-MM-DD")
		return
	}

	var amenities []string
	for _, a := range qs["amenity"] {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}

	page, err := h.Q.Recommend(r.Context(), domain.RecommendationQuery{
		Destination: dest,
		Tier:        tier,
		Amenities:   amenities,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	// every page carries a fresh search_id, so there is nothing to revalidate
	body, err := json.Marshal(page)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, body)
}

func (h *Handlers) weather(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if strings.TrimSpace(city) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid city", "city is required")
		return
	}
	writeCacheable(w, r, h.Q.Weather(r.Context(), city))
}

func (h *Handlers) geocode(w http.ResponseWriter, r *http.Request) {
	hotel := r.URL.Query().Get("hotel")
	city := r.URL.Query().Get("city")
	if strings.TrimSpace(hotel) == "" || strings.TrimSpace(city) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "hotel and city are required")
		return
	}
	c, src := h.Q.Locate(r.Context(), hotel, city)
	writeCacheable(w, r, geocodeResponse{Hotel: hotel, City: city, Coords: c, Source: src})
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// parseDate reads a YYYY-MM-DD value; empty means def.
func parseDate(s string, def time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
