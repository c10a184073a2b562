// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"kitchen_cali/internal/adapters/observability"
	"kitchen_cali/internal/app"
	"kitchen_cali/internal/catalog"
	"kitchen_cali/internal/domain"
)

const emptyMessage = "No matches yet. Try clearing filters or searching another cuisine."

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Back   string `json:"back,omitempty"`
}

type listingResponse struct {
	domain.Listing
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

type filtersResponse struct {
	Cuisines []string           `json:"cuisines"`
	Prices   []domain.PriceTier `json:"prices"`
	Sorts    []domain.SortOrder `json:"sorts"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/regions", h.listRegions)
	s.mux.Get("/v1/regions/boundaries", h.listBoundaries)
	s.mux.Get("/v1/filters", h.listFilters)
	s.mux.Get("/v1/caterers/{county}/{city}", h.listCaterers)
	s.mux.Get("/v1/caterers/{county}/{city}/{slug}", h.getCaterer)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
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

// writeJSON sends v with a weak ETag, or 304 when the client already has it.
func writeJSON(w http.ResponseWriter, r *http.Request, v any, name string) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("handler", name).Msg("failed to write body")
	}
}

// pathParam percent-decodes a route segment, keeping the raw value if it is malformed.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func parseFilter(q url.Values) (domain.Filter, error) {
	f := domain.Filter{Search: q.Get("q")}
	if c := strings.TrimSpace(q.Get("cuisine")); c != "" {
		f.Cuisine = &c
	}
	if p := strings.TrimSpace(q.Get("price")); p != "" {
		tier, err := domain.ParsePriceTier(p)
		if err != nil {
			return f, err
		}
		f.PriceTier = &tier
	}
	sortBy, err := domain.ParseSortOrder(q.Get("sort"))
	if err != nil {
		return f, err
	}
	f.SortBy = sortBy
	return f, nil
}

func (h *Handlers) listRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Q.Regions(), "listRegions")
}

func (h *Handlers) listFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, filtersResponse{
		Cuisines: catalog.CuisineOptions(),
		Prices:   catalog.PriceOptions(),
		Sorts:    catalog.SortOptions(),
	}, "listFilters")
}

func (h *Handlers) listBoundaries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Boundaries(r.Context())
	switch {
	case errors.Is(err, app.ErrBoundariesDisabled):
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", err.Error())
		return
	case err != nil:
		log.Warn().Err(err).Msg("boundary fetch failed")
		writeProblem(w, http.StatusBadGateway, "Bad Gateway", err.Error())
		return
	}
	writeJSON(w, r, out, "listBoundaries")
}

func (h *Handlers) listCaterers(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	county, city := pathParam(r, "county"), pathParam(r, "city")

	out := listingResponse{Listing: h.Q.Listing(r.Context(), county, city, f)}
	if out.Total == 0 {
		out.EmptyMessage = emptyMessage
	}
	observability.ObserveListing(out.Total)
	writeJSON(w, r, out, "listCaterers")
}

func (h *Handlers) getCaterer(w http.ResponseWriter, r *http.Request) {
	county, city := pathParam(r, "county"), pathParam(r, "city")
	c, err := h.Q.Profile(r.Context(), county, city, pathParam(r, "slug"))
	if err != nil {
		writeProblemBody(w, problem{
			Type:   "about:blank",
			Title:  "Caterer not found",
			Status: http.StatusNotFound,
			Back:   "/" + county + "/" + city,
		})
		return
	}
	writeJSON(w, r, c, "getCaterer")
}
