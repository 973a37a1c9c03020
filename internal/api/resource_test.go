package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia-admin/academia/internal/mockapi"
	"github.com/academia-admin/academia/internal/model"
)

func newMockResource[T any](t *testing.T, path string) (*Resource[T], *mockapi.Server) {
	t.Helper()
	backend := mockapi.New(nil)
	require.NoError(t, backend.Seed())
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)
	return NewResource[T](client, path), backend
}

func TestResourcePath(t *testing.T) {
	client, err := NewClient(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/facultades", NewResource[model.Facultad](client, "facultades/").Path())
	assert.Equal(t, "/carrera/7", NewResource[model.Carrera](client, "/carrera").itemPath(7))
}

func TestResourceList(t *testing.T) {
	res, _ := newMockResource[model.Carrera](t, "/carrera")

	items, err := res.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].CarreraID)
	assert.Equal(t, "Ingeniería", items[0].Facultad)
}

func TestResourceCreateReturnsRawResponse(t *testing.T) {
	res, backend := newMockResource[model.Departamento](t, "/departamento")

	raw, err := res.Create(context.Background(), model.Departamento{Nombre: "Atlántida"})
	require.NoError(t, err)

	var created model.Departamento
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, int64(3), created.DepartamentoID)
	assert.Equal(t, "Atlántida", created.Nombre)
	assert.Equal(t, 3, backend.Len("departamento"))
}

func TestResourceUpdate(t *testing.T) {
	res, _ := newMockResource[model.Municipio](t, "/municipio")

	raw, err := res.Update(context.Background(), 1, model.Municipio{MunicipioID: 1, Nombre: "Distrito Central", DepartamentoID: 1})
	require.NoError(t, err)

	var updated model.Municipio
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Distrito Central", updated.Nombre)
	assert.Empty(t, updated.Departamento)
}

func TestResourceDelete(t *testing.T) {
	res, backend := newMockResource[model.Facultad](t, "/facultades")

	require.NoError(t, res.Delete(context.Background(), 2))
	assert.Equal(t, 1, backend.Len("facultades"))

	err := res.Delete(context.Background(), 2)
	assert.True(t, IsStatus(err, http.StatusNotFound))
}
