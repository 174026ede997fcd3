// Package server exposes the directory over a JSON REST API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/myhalal/directory/internal/directory"
	"github.com/myhalal/directory/internal/listing"
	"github.com/myhalal/directory/internal/model"
	"github.com/myhalal/directory/internal/store"
)

// Server routes HTTP requests to the directory service. Edits to a place
// are serialized per id so two concurrent PATCHes cannot interleave the
// read-modify-write cycle.
type Server struct {
	svc   *directory.Service
	locks keyedLocks
}

// New builds a server around a directory service.
func New(svc *directory.Service) *Server {
	return &Server{svc: svc}
}

// Router assembles the chi router with logging, recovery and CORS.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		renderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)

		r.Route("/places", func(r chi.Router) {
			r.Get("/", s.handleListPlaces)
			r.Post("/", s.handleAddPlace)
			r.Post("/swap", s.handleSwap)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetPlace)
				r.Delete("/", s.handleDeletePlace)
				r.Patch("/fields/{field}", s.handleEditField)
				r.Patch("/coordinates", s.handleSetCoordinates)
			})
		})

		r.Route("/blacklist", func(r chi.Router) {
			r.Get("/", s.handleListBlacklist)
			r.Post("/", s.handleBlockWord)
			r.Delete("/{word}", s.handleUnblockWord)
		})
	})

	return r
}

type resolveRequest struct {
	Text string   `json:"text,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

type resolveResponse struct {
	Places []*model.Place `json:"places"`
}

// handleResolve answers both query forms. A free-text query that produces
// no reply returns 204: silence is the contract, not an error. A
// coordinate query with nothing in range is an explicit 404.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		places []*model.Place
		err    error
	)
	switch {
	case req.Lat != nil && req.Lng != nil:
		places, err = s.svc.ResolvePoint(r.Context(), model.Coordinate{Lat: *req.Lat, Lng: *req.Lng})
	case req.Text != "":
		places, err = s.svc.ResolveText(r.Context(), req.Text)
	default:
		renderError(w, http.StatusBadRequest, "either text or lat/lng is required")
		return
	}

	switch {
	case err == nil:
		renderJSON(w, http.StatusOK, resolveResponse{Places: places})
	case errors.Is(err, directory.ErrNoReply):
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, directory.ErrNoneNearby):
		renderError(w, http.StatusNotFound, "no establishments within radius")
	default:
		renderError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleListPlaces(w http.ResponseWriter, _ *http.Request) {
	places := s.svc.Places()
	if places == nil {
		places = []*model.Place{}
	}
	renderJSON(w, http.StatusOK, places)
}

func (s *Server) handleGetPlace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p := s.svc.Place(id)
	if p == nil {
		renderError(w, http.StatusNotFound, "place not found")
		return
	}
	renderJSON(w, http.StatusOK, p)
}

func (s *Server) handleAddPlace(w http.ResponseWriter, r *http.Request) {
	var draft model.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := s.svc.AddPlace(r.Context(), draft)
	if err != nil {
		renderError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	renderJSON(w, http.StatusCreated, p)
}

type editFieldRequest struct {
	Value string `json:"value"`
	Index int    `json:"index,omitempty"`
}

func (s *Server) handleEditField(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req editFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Index == 0 {
		req.Index = 1
	}
	field := listing.Field(chi.URLParam(r, "field"))

	s.locks.lock(id)
	defer s.locks.unlock(id)

	p, err := s.svc.EditField(r.Context(), id, field, req.Value, req.Index)
	switch {
	case err == nil:
		renderJSON(w, http.StatusOK, p)
	case errors.Is(err, store.ErrNotFound):
		renderError(w, http.StatusNotFound, "place not found")
	case errors.Is(err, listing.ErrUnknownField):
		renderError(w, http.StatusBadRequest, "unknown field")
	case errors.Is(err, listing.ErrBadValue), errors.Is(err, listing.ErrBadIndex):
		renderError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, listing.ErrNoMarker):
		renderError(w, http.StatusConflict, "field marker not present in listing text")
	default:
		renderError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleSetCoordinates(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var c model.Coordinate
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.locks.lock(id)
	defer s.locks.unlock(id)

	err := s.svc.SetCoordinates(r.Context(), id, c)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, store.ErrNotFound):
		renderError(w, http.StatusNotFound, "place not found")
	default:
		renderError(w, http.StatusUnprocessableEntity, err.Error())
	}
}

func (s *Server) handleDeletePlace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := s.svc.DeletePlace(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, store.ErrNotFound):
		renderError(w, http.StatusNotFound, "place not found")
	default:
		renderError(w, http.StatusInternalServerError, err.Error())
	}
}

type swapRequest struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Lock in a fixed order so two crossed swaps cannot deadlock.
	lo, hi := req.A, req.B
	if lo > hi {
		lo, hi = hi, lo
	}
	s.locks.lock(lo)
	defer s.locks.unlock(lo)
	if hi != lo {
		s.locks.lock(hi)
		defer s.locks.unlock(hi)
	}

	err := s.svc.Swap(r.Context(), req.A, req.B)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, store.ErrNotFound):
		renderError(w, http.StatusNotFound, "place not found")
	default:
		renderError(w, http.StatusUnprocessableEntity, err.Error())
	}
}

func (s *Server) handleListBlacklist(w http.ResponseWriter, r *http.Request) {
	words, err := s.svc.Blacklist(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if words == nil {
		words = []string{}
	}
	renderJSON(w, http.StatusOK, words)
}

type blacklistRequest struct {
	Word string `json:"word"`
}

func (s *Server) handleBlockWord(w http.ResponseWriter, r *http.Request) {
	var req blacklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Word) == "" {
		renderError(w, http.StatusUnprocessableEntity, "word is required")
		return
	}
	if err := s.svc.BlockWord(r.Context(), req.Word); err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnblockWord(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	err := s.svc.UnblockWord(r.Context(), word)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, store.ErrNotFound):
		renderError(w, http.StatusNotFound, "word not blacklisted")
	default:
		renderError(w, http.StatusInternalServerError, err.Error())
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

type apiError struct {
	Error string `json:"error"`
}

func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func renderError(w http.ResponseWriter, status int, msg string) {
	renderJSON(w, status, apiError{Error: msg})
}

// keyedLocks hands out one mutex per place id. Entries are never removed;
// the catalog is small and ids are stable.
type keyedLocks struct {
	mu sync.Mutex
	m  map[int64]*sync.Mutex
}

func (k *keyedLocks) lock(id int64) {
	k.mu.Lock()
	if k.m == nil {
		k.m = make(map[int64]*sync.Mutex)
	}
	l, ok := k.m[id]
	if !ok {
		l = &sync.Mutex{}
		k.m[id] = l
	}
	k.mu.Unlock()
	l.Lock()
}

func (k *keyedLocks) unlock(id int64) {
	k.mu.Lock()
	l := k.m[id]
	k.mu.Unlock()
	l.Unlock()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
