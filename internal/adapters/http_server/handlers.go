package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"hotel_pricing/internal/app"
	"hotel_pricing/internal/domain"
	"hotel_pricing/internal/validation"
)

type Handlers struct{ S *app.RecommendationService }

type problem struct {
	Type   string                  `json:"type"`
	Title  string                  `json:"title"`
	Status int                     `json:"status"`
	Detail string                  `json:"detail,omitempty"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/catalog", h.getCatalog)
	s.mux.Get("/v1/recommendation", h.getRecommendation)
	s.mux.Get("/v1/recommendation/projection", h.getProjection)
	s.mux.Get("/v1/recommendation/segments", h.getSegments)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string, fields ...validation.FieldError) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Errors: fields}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeProblem(w, http.StatusBadRequest, "Invalid Input", verr.Error(), verr.Fields...)
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	case errors.Is(err, domain.ErrInvalidScenario):
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid Scenario", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body, nil
}

// writeJSON answers 304 when the client already holds this representation.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body, err := calcETagAndBody(v)
	if err != nil {
		writeError(w, err)
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func (h *Handlers) getCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.S.Catalog())
}

func (h *Handlers) getRecommendation(w http.ResponseWriter, r *http.Request) {
	sc, err := parseScenario(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.S.Recommend(r.Context(), sc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, rec)
}

func (h *Handlers) getProjection(w http.ResponseWriter, r *http.Request) {
	sc, err := parseScenario(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	pts, err := h.S.Projection(r.Context(), sc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, pts)
}

func (h *Handlers) getSegments(w http.ResponseWriter, r *http.Request) {
	sc, err := parseScenario(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	segs, err := h.S.Segments(r.Context(), sc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, segs)
}
