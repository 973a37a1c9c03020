package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Resource is the typed view of one entity path, e.g. /facultades.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds path to the client.
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{
		client: client,
		path:   "/" + strings.Trim(path, "/"),
	}
}

// Path returns the resource path with a leading slash.
func (r *Resource[T]) Path() string {
	return r.path
}

// List fetches the whole collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	data, err := r.client.Do(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return items, nil
}

// Create posts payload and returns the server's response untouched.
func (r *Resource[T]) Create(ctx context.Context, payload T) (json.RawMessage, error) {
	data, err := r.client.Do(ctx, http.MethodPost, r.path, payload)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// Update puts payload at /{id} and returns the server's response untouched.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload T) (json.RawMessage, error) {
	data, err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), payload)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// Delete removes /{id}.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil)
	return err
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}
