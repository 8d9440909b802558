package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightline-data/resolver/internal/httpapi/dto"
	"github.com/brightline-data/resolver/internal/resolve/config"
	"github.com/brightline-data/resolver/internal/resolve/engine"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	eng := engine.New(config.Individual, zap.NewNop())

	r := gin.New()
	resolveHandler := NewResolveHandler(eng)
	entityHandler := NewEntityHandler(eng)
	statsHandler := NewStatsHandler(eng)

	r.POST("/resolve/individual", resolveHandler.ResolveIndividual)
	r.GET("/entity/:id", entityHandler.GetEntity)
	r.GET("/stats", statsHandler.Stats)
	return r
}

func TestResolveThenGetEntity(t *testing.T) {
	r := newTestRouter()

	body := `{"id":"r1","first_name":"Alice","last_name":"Smith","birth_date":"1990-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/resolve/individual", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"entity_id"`)

	var resolved dto.ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))

	entityW := httptest.NewRecorder()
	r.ServeHTTP(entityW, httptest.NewRequest(http.MethodGet, "/entity/"+resolved.EntityID, nil))
	require.Equal(t, http.StatusOK, entityW.Code)
	var entity dto.EntityResponse
	require.NoError(t, json.Unmarshal(entityW.Body.Bytes(), &entity))
	require.Equal(t, resolved.EntityID, entity.ID)
	require.Equal(t, []string{"r1"}, entity.RecordIDs)

	statsW := httptest.NewRecorder()
	r.ServeHTTP(statsW, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, statsW.Code)
	require.Contains(t, statsW.Body.String(), `"entities":1`)
}

func TestResolveRejectsMissingID(t *testing.T) {
	r := newTestRouter()

	body := `{"first_name":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/resolve/individual", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveRejectsUnknownFields(t *testing.T) {
	r := newTestRouter()

	body := `{"id":"r1","nickname":"Al"}`
	req := httptest.NewRequest(http.MethodPost, "/resolve/individual", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEntityNotFound(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/entity/does-not-exist", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
