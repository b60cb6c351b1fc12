package Controllers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableJSON struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Capacity   int    `json:"capacity"`
	Status     string `json:"status"`
	IsOccupied bool   `json:"is_occupied"`
}

func TestGetAllTables(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodGet, "/tables", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var tables []tableJSON
	env := decode(t, w, &tables)
	assert.Equal(t, "Tables", env.Message)
	assert.Len(t, tables, 4)

	w = s.do(t, http.MethodGet, "/tables?lang=de", "", nil)
	env = decode(t, w, nil)
	assert.Equal(t, "Tische", env.Message)
	assert.Equal(t, "de", w.Header().Get("Content-Language"))

	w = s.do(t, http.MethodGet, "/tables?status=dirty", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectTable(t *testing.T) {
	s := setupServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/tables/1/select", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/admin/tables/1", token, map[string]string{"status": "reserved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/tables/1/select", "", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/tables/99/select", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminTableCRUD(t *testing.T) {
	s := setupServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/admin/tables", token, map[string]interface{}{"number": "Bar 1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created tableJSON
	decode(t, w, &created)
	assert.Equal(t, "available", created.Status)
	assert.Equal(t, 4, created.Capacity)
	assert.False(t, created.IsOccupied)

	w = s.do(t, http.MethodPost, "/admin/tables", token, map[string]interface{}{"number": "Bar 1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/admin/tables", token, map[string]interface{}{"number": "Bar 2", "capacity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code, "zero capacity must not fall back to the default")

	w = s.do(t, http.MethodPut, "/admin/tables/"+created.ID, token, map[string]interface{}{"status": "occupied", "capacity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	var updated tableJSON
	decode(t, w, &updated)
	assert.True(t, updated.IsOccupied)
	assert.Equal(t, 2, updated.Capacity)

	w = s.do(t, http.MethodPut, "/admin/tables/missing", token, map[string]interface{}{"capacity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/admin/tables/"+created.ID+"/qrcode", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = s.do(t, http.MethodDelete, "/admin/tables/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/admin/tables/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodPost, "/admin/tables", "", map[string]interface{}{"number": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/admin/tables", "not-a-token", map[string]interface{}{"number": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
