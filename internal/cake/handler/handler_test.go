package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/cakeshop/cakes-service/internal/cake"
	"github.com/cakeshop/cakes-service/internal/cake/repository"
	"github.com/cakeshop/cakes-service/internal/cake/service"
)

func newTestRouter(store repository.Store) *gin.Engine {
	g := gin.New()
	RegisterCakeRoutes(g, service.New(store))
	return g
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestCakesAPI_EndToEnd(t *testing.T) {
	g := newTestRouter(repository.NewMemoryStore())

	// add
	w := do(g, http.MethodPost, "/cakes", `{"name":"Victoria Sponge","comment":"classic","imageUrl":"v.jpg","yumFactor":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	var added map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	require.Equal(t, "Cake added successfully", added["message"])
	id := added["id"]
	require.NotEmpty(t, id)

	// get returns the full record including the generated id
	w = do(g, http.MethodGet, "/cakes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, id, got["id"])
	require.Equal(t, "Victoria Sponge", got["name"])
	require.Equal(t, "classic", got["comment"])
	require.Equal(t, "v.jpg", got["imageUrl"])
	require.EqualValues(t, 5, got["yumFactor"])

	// delete
	w = do(g, http.MethodDelete, "/cakes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Cake deleted successfully"}`, w.Body.String())

	// gone
	w = do(g, http.MethodGet, "/cakes/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Cake not found"}`, w.Body.String())
}

func TestListCakes(t *testing.T) {
	g := newTestRouter(repository.NewMemoryStore())

	// empty store lists as an empty array, not null
	w := do(g, http.MethodGet, "/cakes", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	do(g, http.MethodPost, "/cakes", `{"name":"Cake 1","comment":"Comment 1","imageUrl":"image1.jpg","yumFactor":4}`)
	do(g, http.MethodPost, "/cakes", `{"name":"Cake 2","comment":"Comment 2","imageUrl":"image2.jpg","yumFactor":5}`)

	w = do(g, http.MethodGet, "/cakes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	for _, item := range list {
		require.IsType(t, "", item["id"])
		require.NotContains(t, item, "_id")
	}
}

func TestAddCakeMissingFields(t *testing.T) {
	g := newTestRouter(repository.NewMemoryStore())

	w := do(g, http.MethodPost, "/cakes", `{"comment":"Test comment","imageUrl":"test-image.jpg","yumFactor":3}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Missing required fields in the data"}`, w.Body.String())

	// nothing persisted
	w = do(g, http.MethodGet, "/cakes", "")
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestAddCakeUnexpectedFields(t *testing.T) {
	g := newTestRouter(repository.NewMemoryStore())

	w := do(g, http.MethodPost, "/cakes", `{"name":"Test Cake","comment":"Test comment","imageUrl":"test-image.jpg","yumFactor":3,"extraField":"This should not be here"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Unexpected fields: extraField"}`, w.Body.String())

	w = do(g, http.MethodGet, "/cakes", "")
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestAddCakeMalformedBody(t *testing.T) {
	g := newTestRouter(repository.NewMemoryStore())

	w := do(g, http.MethodPost, "/cakes", `{"name": `)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(g, http.MethodPut, "/cakes/some-id", `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

type failingStore struct {
	repository.Store
}

func (failingStore) InsertOne(context.Context, cake.Document) error {
	return errors.New("write concern violated")
}

func TestAddCakePersistenceFailure(t *testing.T) {
	g := newTestRouter(failingStore{repository.NewMemoryStore()})

	w := do(g, http.MethodPost, "/cakes", `{"name":"Test Cake","comment":"Test comment","imageUrl":"test-image.jpg","yumFactor":3}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Server error while adding the cake", body["message"])
	require.Contains(t, body["error"], "write concern violated")
	require.NotContains(t, body, "id")
}

func TestUpdateCakePartial(t *testing.T) {
	g := newTestRouter(repository.NewMemoryStore())

	w := do(g, http.MethodPost, "/cakes", `{"name":"Cake 1","comment":"Comment 1","imageUrl":"image1.jpg","yumFactor":4}`)
	var added map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	id := added["id"]

	w = do(g, http.MethodPut, "/cakes/"+id, `{"name":"New Cake Name"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Cake updated successfully"}`, w.Body.String())

	w = do(g, http.MethodGet, "/cakes/"+id, "")
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "New Cake Name", got["name"])
	require.Equal(t, "Comment 1", got["comment"])
	require.Equal(t, "image1.jpg", got["imageUrl"])
	require.EqualValues(t, 4, got["yumFactor"])
}

func TestUpdateCakeNotFound(t *testing.T) {
	g := newTestRouter(repository.NewMemoryStore())

	w := do(g, http.MethodPut, "/cakes/123", `{"name":"Updated Cake"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Cake not found"}`, w.Body.String())
}

func TestDeleteCakeNotFound(t *testing.T) {
	g := newTestRouter(repository.NewMemoryStore())

	w := do(g, http.MethodDelete, "/cakes/123", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Cake not found"}`, w.Body.String())
}
