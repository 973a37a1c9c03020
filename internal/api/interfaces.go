package api

import (
	"context"
	"encoding/json"
)

// Service defines the operations available on one entity collection.
type Service[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload T) (json.RawMessage, error)
	Update(ctx context.Context, id int64, payload T) (json.RawMessage, error)
	Delete(ctx context.Context, id int64) error
}

var _ Service[struct{}] = (*Resource[struct{}])(nil)
