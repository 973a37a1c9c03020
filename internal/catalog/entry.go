package catalog

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/api"
	"github.com/academia-admin/academia/internal/form"
	"github.com/academia-admin/academia/internal/listing"
	"github.com/academia-admin/academia/internal/model"
	"github.com/academia-admin/academia/internal/navigation"
)

// Row is an entity-agnostic list row.
type Row struct {
	ID       string
	Key      int64
	Title    string
	Subtitle string
	// Data is the flattened display record, the payload of the <b>Data
	// navigation parameter.
	Data json.RawMessage
}

// Collection is the entity-agnostic view of a list store.
type Collection interface {
	Load(ctx context.Context) error
	Sync(ctx context.Context, params navigation.Params) error
	Delete(ctx context.Context, key int64) error
	Rows(query string) []Row
	State() model.LoadState
	Err() error
	Empty() bool
	Len() int
	SetUpdateCallback(callback func())
}

// Saver is the entity-agnostic view of a form submitter.
type Saver interface {
	Submit(ctx context.Context, key int64, values form.Values) (navigation.Params, error)
	Busy() bool
}

// Descriptor is an entity of the catalog regardless of its record type.
type Descriptor interface {
	Meta() Meta
	NewCollection(client *api.Client, opts ...listing.Option) Collection
	NewSaver(client *api.Client, logger *zap.Logger) Saver
}

// Entry binds an entity schema to its record type.
type Entry[T model.Entity] struct {
	meta Meta
}

// NewEntry creates the entry for meta.
func NewEntry[T model.Entity](meta Meta) *Entry[T] {
	return &Entry[T]{meta: meta}
}

// Meta returns the entity schema.
func (e *Entry[T]) Meta() Meta {
	return e.meta
}

// Resource returns the typed API resource of the entity.
func (e *Entry[T]) Resource(client *api.Client) *api.Resource[T] {
	return api.NewResource[T](client, e.meta.Path)
}

// NewStore creates a typed list store.
func (e *Entry[T]) NewStore(svc api.Service[T], opts ...listing.Option) *listing.Store[T] {
	return listing.NewStore[T](e.meta.Base, svc, opts...)
}

// NewCollection creates a list store behind the Collection interface.
func (e *Entry[T]) NewCollection(client *api.Client, opts ...listing.Option) Collection {
	return &collection[T]{Store: e.NewStore(e.Resource(client), opts...)}
}

// NewSaver creates a form submitter behind the Saver interface.
func (e *Entry[T]) NewSaver(client *api.Client, logger *zap.Logger) Saver {
	return form.NewSubmitter[T](e.meta.Base, e.meta.Fields, e.Resource(client), logger)
}

type collection[T model.Entity] struct {
	*listing.Store[T]
}

func (c *collection[T]) Rows(query string) []Row {
	items := c.Filter(query)
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			data = nil
		}
		rows = append(rows, Row{
			ID:       item.ID,
			Key:      item.Record.Key(),
			Title:    item.DisplayName,
			Subtitle: item.Record.Subtitle(),
			Data:     data,
		})
	}
	return rows
}
