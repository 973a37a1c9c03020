package listing

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia-admin/academia/internal/model"
	"github.com/academia-admin/academia/internal/navigation"
)

var fixedNow = time.UnixMilli(1700000000000)

// fakeService is an in-memory api.Service used by the store tests.
type fakeService[T model.Entity] struct {
	mu        sync.Mutex
	records   []T
	listErr   error
	deleteErr error
	deleted   []int64
}

func (f *fakeService[T]) List(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]T(nil), f.records...), nil
}

func (f *fakeService[T]) Create(ctx context.Context, payload T) (json.RawMessage, error) {
	return json.Marshal(payload)
}

func (f *fakeService[T]) Update(ctx context.Context, id int64, payload T) (json.RawMessage, error) {
	return json.Marshal(payload)
}

func (f *fakeService[T]) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newFacultadStore(t *testing.T, svc *fakeService[model.Facultad], opts ...Option) *Store[model.Facultad] {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	store := NewStore[model.Facultad]("Facultad", svc, opts...)
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestLoadDecoratesRecords(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{
		{FacultadID: 1, Nombre: "A"},
		{FacultadID: 2, Nombre: "Ciencias"},
	}}
	store := newFacultadStore(t, svc)

	want := []model.Display[model.Facultad]{
		{ID: "1", DisplayName: "A", Record: model.Facultad{FacultadID: 1, Nombre: "A"}},
		{ID: "2", DisplayName: "Ciencias", Record: model.Facultad{FacultadID: 2, Nombre: "Ciencias"}},
	}
	if diff := cmp.Diff(want, store.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, model.LoadStateReady, store.State())
	assert.False(t, store.Empty())
}

func TestLoadFailure(t *testing.T) {
	svc := &fakeService[model.Facultad]{listErr: errors.New("Error HTTP: 500 - boom")}
	store := NewStore[model.Facultad]("Facultad", svc)

	var states []model.LoadState
	store.SetUpdateCallback(func() { states = append(states, store.State()) })

	err := store.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, model.LoadStateFailed, store.State())
	assert.EqualError(t, store.Err(), "Error HTTP: 500 - boom")
	assert.False(t, store.Empty())
	assert.Equal(t, []model.LoadState{model.LoadStateLoading, model.LoadStateFailed}, states)
}

func TestEmpty(t *testing.T) {
	store := NewStore[model.Facultad]("Facultad", &fakeService[model.Facultad]{})
	assert.False(t, store.Empty())
	require.NoError(t, store.Load(context.Background()))
	assert.True(t, store.Empty())
}

func TestApplyUpdatedReplacesByKey(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}}}
	store := newFacultadStore(t, svc)

	changed := store.Apply(navigation.Params{"updatedFacultad": `{"facultadid":1,"nombre":"B"}`})
	require.True(t, changed)

	want := []model.Display[model.Facultad]{
		{ID: "1", DisplayName: "B", Record: model.Facultad{FacultadID: 1, Nombre: "B"}},
	}
	if diff := cmp.Diff(want, store.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyUpdatedKeepsJoinedFields(t *testing.T) {
	svc := &fakeService[model.Carrera]{records: []model.Carrera{
		{CarreraID: 4, Nombre: "Medicina", FacultadID: 2, Facultad: "Ciencias Médicas"},
	}}
	store := NewStore[model.Carrera]("Carrera", svc)
	require.NoError(t, store.Load(context.Background()))

	store.Apply(navigation.Params{"updatedCarrera": `{"carreraid":4,"nombre":"Medicina y Cirugía","facultadid":2}`})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Medicina y Cirugía", items[0].DisplayName)
	assert.Equal(t, "Ciencias Médicas", items[0].Record.Facultad)
}

func TestApplyUpdatedEmptyJoinedFieldKeepsHeldValue(t *testing.T) {
	svc := &fakeService[model.Carrera]{records: []model.Carrera{
		{CarreraID: 1, Nombre: "A", FacultadID: 1, Facultad: "Ingeniería"},
	}}
	store := NewStore[model.Carrera]("Carrera", svc)
	require.NoError(t, store.Load(context.Background()))

	changed := store.Apply(navigation.Params{"updatedCarrera": `{"carreraid":1,"nombre":"B","facultad":"","facultadid":null}`})
	require.True(t, changed)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].DisplayName)
	assert.Equal(t, "Facultad: Ingeniería", items[0].Record.Subtitle())
	assert.EqualValues(t, 1, items[0].Record.FacultadID)
}

func TestApplyUpdatedIsIdempotent(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}, {FacultadID: 2, Nombre: "C"}}}
	once := newFacultadStore(t, svc)
	twice := newFacultadStore(t, svc)

	raw := `{"facultadid":2,"nombre":"D"}`
	once.Apply(navigation.Params{"updatedFacultad": raw})
	twice.Apply(navigation.Params{"updatedFacultad": raw})
	assert.False(t, twice.Apply(navigation.Params{"updatedFacultad": raw}))

	// a fresh store that has not seen the value applies it again to the same result
	third := newFacultadStore(t, svc)
	third.Apply(navigation.Params{"updatedFacultad": raw})
	third.Apply(navigation.Params{"updatedFacultad": `{"facultadid":2,"nombre":"D"} `})

	if diff := cmp.Diff(once.Items(), twice.Items()); diff != "" {
		t.Errorf("twice mismatch (-once +twice):\n%s", diff)
	}
	if diff := cmp.Diff(once.Items(), third.Items()); diff != "" {
		t.Errorf("third mismatch (-once +third):\n%s", diff)
	}
}

func TestApplyUpdatedUnknownKey(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}}}
	store := newFacultadStore(t, svc)

	assert.False(t, store.Apply(navigation.Params{"updatedFacultad": `{"facultadid":9,"nombre":"Z"}`}))
	assert.False(t, store.Apply(navigation.Params{"updatedFacultad": `{"nombre":"Z"}`}))
	assert.Equal(t, "A", store.Items()[0].DisplayName)
}

func TestApplyNewAppends(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}}}
	store := newFacultadStore(t, svc)

	require.True(t, store.Apply(navigation.Params{"newFacultad": `{"facultadid":7,"nombre":"Nueva"}`}))
	require.True(t, store.Apply(navigation.Params{"newFacultad": `{"nombre":"Sin id"}`}))

	items := store.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "7", items[1].ID)
	assert.Equal(t, "Nueva", items[1].DisplayName)
	assert.Equal(t, "1700000000000", items[2].ID)
	assert.Equal(t, "Sin id", items[2].DisplayName)
}

func TestApplyNewJoinedFieldsRenderNA(t *testing.T) {
	svc := &fakeService[model.Titulo]{}
	store := NewStore[model.Titulo]("Titulo", svc)
	require.NoError(t, store.Load(context.Background()))

	store.Apply(navigation.Params{"newTitulo": `{"tituloid":3,"personaid":1,"carreraid":2,"fechagraduacion":"2020-01-31"}`})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "N/A N/A - N/A", items[0].DisplayName)
}

func TestApplyNewTakesPrecedence(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}}}
	store := newFacultadStore(t, svc)

	store.Apply(navigation.Params{
		"newFacultad":     `{"facultadid":2,"nombre":"N"}`,
		"updatedFacultad": `{"facultadid":1,"nombre":"U"}`,
	})

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].DisplayName)
	assert.Equal(t, "N", items[1].DisplayName)
}

func TestApplyMalformedPayloadIsIgnored(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}}}
	store := newFacultadStore(t, svc)
	before := store.Items()

	assert.False(t, store.Apply(navigation.Params{"newFacultad": `{"nombre":`}))
	assert.False(t, store.Apply(navigation.Params{"updatedFacultad": `not json`}))
	assert.False(t, store.Apply(navigation.Params{"updatedFacultad": `{"facultadid":"uno"}`}))
	assert.False(t, store.Apply(navigation.Params{}))

	if diff := cmp.Diff(before, store.Items()); diff != "" {
		t.Errorf("list changed (-before +after):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}, {FacultadID: 2, Nombre: "B"}}}
	store := newFacultadStore(t, svc)

	require.NoError(t, store.Delete(context.Background(), 1))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "2", store.Items()[0].ID)
	assert.Equal(t, []int64{1}, svc.deleted)

	assert.ErrorIs(t, store.Delete(context.Background(), 0), ErrNoKey)
}

func TestDeleteFailureKeepsList(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}}}
	store := newFacultadStore(t, svc)
	svc.deleteErr = errors.New("Error HTTP: 409 - en uso")

	err := store.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestSyncRefetch(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{{FacultadID: 1, Nombre: "A"}}}
	store := newFacultadStore(t, svc, WithRefetchAfterSave(true))

	svc.mu.Lock()
	svc.records = []model.Facultad{{FacultadID: 1, Nombre: "B", TotalPersonas: json.Number("3")}}
	svc.mu.Unlock()

	require.NoError(t, store.Sync(context.Background(), navigation.Params{"updatedFacultad": `{"facultadid":1,"nombre":"B"}`}))
	assert.Equal(t, json.Number("3"), store.Items()[0].Record.TotalPersonas)

	noRefetch := newFacultadStore(t, svc)
	require.NoError(t, noRefetch.Sync(context.Background(), navigation.Params{"newFacultad": `{"facultadid":5,"nombre":"E"}`}))
	assert.Equal(t, 2, noRefetch.Len())
}

func TestFilter(t *testing.T) {
	svc := &fakeService[model.Facultad]{records: []model.Facultad{
		{FacultadID: 1, Nombre: "Ingeniería"},
		{FacultadID: 2, Nombre: "Ciencias Médicas"},
		{FacultadID: 3, Nombre: "Química y Farmacia"},
	}}
	store := newFacultadStore(t, svc)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"ingenieria", []string{"1"}},
		{"MEDICAS", []string{"2"}},
		{"ci", []string{"2", "3"}},
		{"a", []string{"1", "2", "3"}},
		{"derecho", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, item := range store.Filter(tt.query) {
				got = append(got, item.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "nunez arana", Normalize("  Núñez Araña "))
	assert.Equal(t, "investigacion", Normalize("INVESTIGACIÓN"))
}
