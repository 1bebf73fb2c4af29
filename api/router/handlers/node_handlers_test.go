package handlers

import (
	"encoding/json"
	"fmt"
	"graphdb/models"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetNode(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/db/data/node", `{"name": "Alice", "age": 30}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var rep models.NodeRepresentation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, rec.Header().Get("Location"), rep.Self)
	assert.Equal(t, rep.Self+"/relationships", rep.CreateRelationship)
	assert.Equal(t, map[string]any{"name": "Alice", "age": float64(30)}, rep.Data)

	id := s.createNode(t, "")
	got := s.do(t, http.MethodGet, fmt.Sprintf("/db/data/node/%d", id), "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"self": "%[1]snode/%[2]d",
		"data": {},
		"property": "%[1]snode/%[2]d/properties/{key}",
		"properties": "%[1]snode/%[2]d/properties",
		"create_relationship": "%[1]snode/%[2]d/relationships"
	}`, testBase, id), got.Body.String())
}

func TestCreateNode_Rejected(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/db/data/node", `{"name": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "malformed_input", decodeError(t, rec).Code)

	rec = s.do(t, http.MethodPost, "/db/data/node", `{"tags": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_property_value", decodeError(t, rec).Code)
}

func TestGetNode_NotFound(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/db/data/node/12345", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "node_not_found", decodeError(t, rec).Code)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/db/data/index", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route_not_found", decodeError(t, rec).Code)
}
