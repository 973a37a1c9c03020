// Package mockapi is an in-memory stand-in for the academic records backend.
// It honours the same REST contract: ids are assigned on create, joined
// display fields are only computed for list responses, and failures answer
// with a plain-text body.
package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/logging"
)

// Server holds every collection in memory.
type Server struct {
	mu          sync.Mutex
	collections map[string]*collection
	rows        map[string]map[int64]map[string]any
	nextID      map[string]int64
	log         *zap.Logger
}

// New returns an empty backend.
func New(logger *zap.Logger) *Server {
	s := &Server{
		collections: make(map[string]*collection),
		rows:        make(map[string]map[int64]map[string]any),
		nextID:      make(map[string]int64),
		log:         logging.OrNop(logger).Named("mockapi"),
	}
	for _, c := range collections() {
		s.collections[c.path] = c
		s.rows[c.path] = make(map[int64]map[string]any)
		s.nextID[c.path] = 1
	}
	return s
}

// Handler returns the chi router serving every collection.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	for path, c := range s.collections {
		c := c
		r.Get("/"+path, func(w http.ResponseWriter, r *http.Request) { s.handleList(w, c) })
		r.Post("/"+path, func(w http.ResponseWriter, r *http.Request) { s.handleCreate(w, r, c) })
		r.Get("/"+path+"/{id}", func(w http.ResponseWriter, r *http.Request) { s.handleGet(w, r, c) })
		r.Put("/"+path+"/{id}", func(w http.ResponseWriter, r *http.Request) { s.handleUpdate(w, r, c) })
		r.Delete("/"+path+"/{id}", func(w http.ResponseWriter, r *http.Request) { s.handleDelete(w, r, c) })
	}

	return r
}

// Insert stores row in the collection at path and returns its new id.
func (s *Server) Insert(path string, row map[string]any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[path]
	if !ok {
		return 0, fmt.Errorf("unknown collection %q", path)
	}
	stored := s.insertLocked(c, row)
	return toInt64(stored[c.idField]), nil
}

// Len returns the number of rows stored at path.
func (s *Server) Len(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows[path])
}

func (s *Server) handleList(w http.ResponseWriter, c *collection) {
	s.mu.Lock()
	ids := s.sortedIDs(c.path)
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		row := clone(s.rows[c.path][id])
		if c.enrich != nil {
			c.enrich(s, row)
		}
		out = append(out, row)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request, c *collection) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	row, found := s.rows[c.path][id]
	if found {
		row = clone(row)
		if c.enrich != nil {
			c.enrich(s, row)
		}
	}
	s.mu.Unlock()

	if !found {
		writeText(w, http.StatusNotFound, "Registro no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request, c *collection) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	if missing := missingFields(c, body); len(missing) > 0 {
		writeText(w, http.StatusBadRequest, "Campos requeridos: "+strings.Join(missing, ", "))
		return
	}

	s.mu.Lock()
	stored := clone(s.insertLocked(c, body))
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request, c *collection) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	row, found := s.rows[c.path][id]
	if found {
		for k, v := range ownFields(c, body) {
			row[k] = v
		}
		row = clone(row)
	}
	s.mu.Unlock()

	if !found {
		writeText(w, http.StatusNotFound, "Registro no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, c *collection) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	_, found := s.rows[c.path][id]
	delete(s.rows[c.path], id)
	s.mu.Unlock()

	if !found {
		writeText(w, http.StatusNotFound, "Registro no encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) insertLocked(c *collection, body map[string]any) map[string]any {
	id := s.nextID[c.path]
	s.nextID[c.path]++

	row := ownFields(c, body)
	row[c.idField] = id
	s.rows[c.path][id] = row
	return row
}

func (s *Server) sortedIDs(path string) []int64 {
	ids := make([]int64, 0, len(s.rows[path]))
	for id := range s.rows[path] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// lookup finds a row of path by id. Callers hold s.mu.
func (s *Server) lookup(path string, id any) (map[string]any, bool) {
	key := toInt64(id)
	if key == 0 {
		return nil, false
	}
	row, ok := s.rows[path][key]
	return row, ok
}

// join copies target[source] into row[field] following the foreign key fk.
func (s *Server) join(row map[string]any, field, target, fk, source string) {
	if ref, ok := s.lookup(target, row[fk]); ok {
		row[field] = ref[source]
	}
}

func (s *Server) joinPersona(row map[string]any) {
	if persona, ok := s.lookup("personas", row["personaid"]); ok {
		row["nombres"] = persona["nombres"]
		row["apellidos"] = persona["apellidos"]
	}
}

func (s *Server) count(path, fk string, id any) int {
	key := toInt64(id)
	n := 0
	for _, row := range s.rows[path] {
		if toInt64(row[fk]) == key {
			n++
		}
	}
	return n
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(started)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// ownFields drops the id and joined members from a request body.
func ownFields(c *collection, body map[string]any) map[string]any {
	out := make(map[string]any, len(body))
	for k, v := range body {
		if k == c.idField || k == "id" || k == "displayName" {
			continue
		}
		out[k] = v
	}
	for _, k := range c.joined {
		delete(out, k)
	}
	return out
}

func missingFields(c *collection, body map[string]any) []string {
	var missing []string
	for _, field := range c.required {
		v, ok := body[field]
		if !ok || v == nil {
			missing = append(missing, field)
			continue
		}
		if str, isString := v.(string); isString && strings.TrimSpace(str) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func clone(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	}
	return 0
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeText(w, http.StatusBadRequest, "ID inválido: "+raw)
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	defer r.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeText(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return nil, false
	}
	if body == nil {
		body = make(map[string]any)
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
