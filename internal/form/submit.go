package form

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/academia-admin/academia/internal/api"
	"github.com/academia-admin/academia/internal/logging"
	"github.com/academia-admin/academia/internal/navigation"
)

// FormErrorMessage is shown above a form that failed validation.
const FormErrorMessage = "Por favor, corrige los errores en el formulario."

// ErrInFlight is returned when a submit is attempted while another one is
// still waiting for the server.
var ErrInFlight = errors.New("a save is already in progress")

// ValidationError carries the per-field messages of a rejected submit.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, name := range e.Errors.Fields() {
		parts = append(parts, name+": "+e.Errors[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Submitter performs the save of one form instance.
type Submitter[T any] struct {
	base   string
	fields []Field
	svc    api.Service[T]
	sem    *semaphore.Weighted
	log    *zap.Logger
}

// NewSubmitter creates a submitter for the entity with navigation base base.
func NewSubmitter[T any](base string, fields []Field, svc api.Service[T], logger *zap.Logger) *Submitter[T] {
	return &Submitter[T]{
		base:   base,
		fields: fields,
		svc:    svc,
		sem:    semaphore.NewWeighted(1),
		log:    logging.OrNop(logger).Named("form").With(zap.String("entity", base)),
	}
}

// Submit validates values and issues a create, or an update of key when key
// is non-zero. On success it returns the parameters to hand back to the list,
// tagged by the request that actually ran.
func (s *Submitter[T]) Submit(ctx context.Context, key int64, values Values) (navigation.Params, error) {
	if errs := Validate(s.fields, values); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	if !s.sem.TryAcquire(1) {
		return nil, ErrInFlight
	}
	defer s.sem.Release(1)

	payload, err := Encode[T](s.fields, values)
	if err != nil {
		return nil, err
	}

	var (
		raw  json.RawMessage
		kind navigation.MutationKind
	)
	if key != 0 {
		kind = navigation.MutationUpdated
		raw, err = s.svc.Update(ctx, key, payload)
	} else {
		kind = navigation.MutationNew
		raw, err = s.svc.Create(ctx, payload)
	}
	if err != nil {
		s.log.Warn("save failed", zap.Stringer("kind", kind), zap.Int64("id", key), zap.Error(err))
		return nil, err
	}

	s.log.Debug("saved", zap.Stringer("kind", kind), zap.Int64("id", key))
	return navigation.Result(s.base, kind, raw), nil
}

// Busy reports whether a save is in flight.
func (s *Submitter[T]) Busy() bool {
	if !s.sem.TryAcquire(1) {
		return true
	}
	s.sem.Release(1)
	return false
}
