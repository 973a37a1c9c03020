package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/api"
	"github.com/academia-admin/academia/internal/logging"
	"github.com/academia-admin/academia/internal/model"
	"github.com/academia-admin/academia/internal/navigation"
)

// ErrNoKey is returned when deleting a record the server never confirmed.
var ErrNoKey = errors.New("record has no server id")

// Store holds one screen's copy of an entity collection.
type Store[T model.Entity] struct {
	mu      sync.RWMutex
	base    string
	svc     api.Service[T]
	items   []model.Display[T]
	state   model.LoadState
	err     error
	applied string

	log      *zap.Logger
	now      func() time.Time
	refetch  bool
	onUpdate func()
}

// NewStore creates an idle store for the entity whose navigation base is
// base (e.g. "Facultad").
func NewStore[T model.Entity](base string, svc api.Service[T], opts ...Option) *Store[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		base:    base,
		svc:     svc,
		state:   model.LoadStateIdle,
		log:     logging.OrNop(o.log).Named("listing").With(zap.String("entity", base)),
		now:     o.now,
		refetch: o.refetch,
	}
}

// SetUpdateCallback sets the function called after every state change.
func (s *Store[T]) SetUpdateCallback(callback func()) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Load fetches the whole collection and replaces the held list.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.state = model.LoadStateLoading
	s.err = nil
	s.mu.Unlock()
	s.notifyUpdate()

	records, err := s.svc.List(ctx)

	s.mu.Lock()
	if err != nil {
		s.state = model.LoadStateFailed
		s.err = err
		s.mu.Unlock()
		s.log.Warn("list fetch failed", zap.Error(err))
		s.notifyUpdate()
		return err
	}

	now := s.now()
	items := make([]model.Display[T], 0, len(records))
	for _, rec := range records {
		items = append(items, model.Decorate(rec, now))
	}
	s.items = items
	s.state = model.LoadStateReady
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// Apply merges the mutation carried by params, if any, into the list and
// reports whether the list changed. Malformed payloads are logged and
// ignored. Applying the same parameter value twice in a row is a no-op.
func (s *Store[T]) Apply(params navigation.Params) bool {
	m, ok := params.Mutation(s.base)
	if !ok {
		return false
	}

	s.mu.Lock()
	marker := m.Kind.String() + ":" + m.Raw
	if marker == s.applied {
		s.mu.Unlock()
		return false
	}
	s.applied = marker

	var changed bool
	switch m.Kind {
	case navigation.MutationNew:
		changed = s.appendLocked(m.Raw)
	case navigation.MutationUpdated:
		changed = s.replaceLocked(m.Raw)
	}
	s.mu.Unlock()

	if changed {
		s.notifyUpdate()
	}
	return changed
}

// Sync applies params and, when the store was built with refetch after save,
// reloads the collection once a mutation was merged.
func (s *Store[T]) Sync(ctx context.Context, params navigation.Params) error {
	if !s.Apply(params) || !s.refetch {
		return nil
	}
	return s.Load(ctx)
}

func (s *Store[T]) appendLocked(raw string) bool {
	var rec T
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.log.Warn("ignoring unparsable new record", zap.Error(err))
		return false
	}
	s.items = append(s.items, model.Decorate(rec, s.now()))
	return true
}

func (s *Store[T]) replaceLocked(raw string) bool {
	var probe T
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		s.log.Warn("ignoring unparsable updated record", zap.Error(err))
		return false
	}
	key := probe.Key()
	if key == 0 {
		s.log.Warn("ignoring updated record without id")
		return false
	}

	changed := false
	for i, item := range s.items {
		if item.Record.Key() != key {
			continue
		}
		merged, err := mergeOnto(item.Record, raw)
		if err != nil {
			s.log.Warn("ignoring unparsable updated record", zap.Int64("id", key), zap.Error(err))
			return false
		}
		s.items[i] = model.Decorate(merged, s.now())
		changed = true
	}
	if !changed {
		s.log.Debug("updated record not in list", zap.Int64("id", key))
	}
	return changed
}

// mergeOnto decodes raw over a deep copy of rec: members present in raw
// replace the held values, absent, null or empty-string ones keep them.
func mergeOnto[T any](rec T, raw string) (T, error) {
	var merged T
	held, err := json.Marshal(rec)
	if err != nil {
		return merged, fmt.Errorf("copy record: %w", err)
	}
	if err := json.Unmarshal(held, &merged); err != nil {
		return merged, fmt.Errorf("copy record: %w", err)
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		return merged, err
	}
	for name, value := range members {
		if v := strings.TrimSpace(string(value)); v == `""` || v == "null" {
			delete(members, name)
		}
	}
	trimmed, err := json.Marshal(members)
	if err != nil {
		return merged, err
	}
	if err := json.Unmarshal(trimmed, &merged); err != nil {
		return merged, err
	}
	return merged, nil
}

// Delete removes the record on the server and, only on success, from the list.
func (s *Store[T]) Delete(ctx context.Context, key int64) error {
	if key == 0 {
		return ErrNoKey
	}
	if err := s.svc.Delete(ctx, key); err != nil {
		s.log.Warn("delete failed", zap.Int64("id", key), zap.Error(err))
		return err
	}

	s.mu.Lock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.Record.Key() != key {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// Items returns a copy of the held list.
func (s *Store[T]) Items() []model.Display[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Display[T], len(s.items))
	copy(out, s.items)
	return out
}

// Filter returns the items whose display name contains query, ignoring case
// and accents. An empty query returns every item.
func (s *Store[T]) Filter(query string) []model.Display[T] {
	q := Normalize(query)
	if q == "" {
		return s.Items()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Display[T]
	for _, item := range s.items {
		if matches(item.DisplayName, q) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of held items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// State returns the load state.
func (s *Store[T]) State() model.LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error of the last failed load.
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Empty reports a loaded collection with no records.
func (s *Store[T]) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == model.LoadStateReady && len(s.items) == 0
}

// Base returns the navigation base of the entity.
func (s *Store[T]) Base() string {
	return s.base
}

func (s *Store[T]) notifyUpdate() {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback()
	}
}
