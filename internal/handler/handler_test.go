package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"starwars-api/internal/middleware"
	"starwars-api/internal/models"
	"starwars-api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var errDown = errors.New("database is down")

type fakeFavorites struct {
	addErr    error
	removeErr error
	removed   []models.FavoriteTarget
}

func (f *fakeFavorites) ListByUserID(context.Context, uint) ([]models.Favorite, error) {
	return nil, errDown
}

func (f *fakeFavorites) Add(_ context.Context, userID uint, target models.FavoriteTarget) (*models.Favorite, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	fav := models.NewFavorite(userID, target)
	fav.ID = 1
	return fav, nil
}

func (f *fakeFavorites) RemoveByTarget(_ context.Context, target models.FavoriteTarget) (int64, error) {
	f.removed = append(f.removed, target)
	return 0, f.removeErr
}

func (f *fakeFavorites) Delete(context.Context, uint) error {
	return repository.ErrNotFound
}

func (f *fakeFavorites) Count(context.Context) (int64, error) {
	return 0, errDown
}

func newFavoriteEngine(store FavoriteStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFavoriteHandler(store)
	r := gin.New()
	r.Use(middleware.RequestID(zap.NewNop()), middleware.ErrorHandler())
	r.GET("/:user_id/favorites", h.List)
	r.POST("/favorites/planets", h.AddPlanet)
	r.POST("/favorites/characters", h.AddCharacter)
	r.DELETE("/:user_id/favorites/planets/:planet_id", h.RemovePlanet)
	r.DELETE("/:user_id/favorites/characters/:character_id", h.RemoveCharacter)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFavoriteHandler_StoreFailure(t *testing.T) {
	r := newFavoriteEngine(&fakeFavorites{removeErr: errDown})

	w := serve(r, http.MethodGet, "/1/favorites", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())

	w = serve(r, http.MethodDelete, "/1/favorites/planets/4", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFavoriteHandler_InvalidReference(t *testing.T) {
	r := newFavoriteEngine(&fakeFavorites{addErr: repository.ErrInvalidReference})

	w := serve(r, http.MethodPost, "/favorites/characters", `{"character_id":42,"user_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"referenced record does not exist"}`, w.Body.String())
}

func TestFavoriteHandler_RemoveBuildsTarget(t *testing.T) {
	store := &fakeFavorites{}
	r := newFavoriteEngine(store)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodDelete, "/5/favorites/planets/4", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodDelete, "/5/favorites/characters/9", "").Code)
	assert.Equal(t, []models.FavoriteTarget{
		models.PlanetTarget{ID: 4},
		models.CharacterTarget{ID: 9},
	}, store.removed)

	w := serve(r, http.MethodDelete, "/5/favorites/planets/tatooine", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"invalid planet_id"}`, w.Body.String())
	assert.Len(t, store.removed, 2)
}

func TestFavoriteHandler_AddZeroIDIsPresent(t *testing.T) {
	r := newFavoriteEngine(&fakeFavorites{})

	w := serve(r, http.MethodPost, "/favorites/planets", `{"planet_id":0,"user_id":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSitemapHandler_SortsAndHidesAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSitemapHandler(func() gin.RoutesInfo {
		return gin.RoutesInfo{
			{Method: "POST", Path: "/favorites/planets"},
			{Method: "GET", Path: "/admin/"},
			{Method: "GET", Path: "/characters"},
			{Method: "DELETE", Path: "/characters"},
		}
	})
	r := gin.New()
	r.GET("/", h.Show)

	w := serve(r, http.MethodGet, "/", "")
	assert.JSONEq(t, `{"endpoints":[
		{"method":"DELETE","path":"/characters"},
		{"method":"GET","path":"/characters"},
		{"method":"POST","path":"/favorites/planets"}
	]}`, w.Body.String())
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler(func(context.Context) error { return errDown })
	r := gin.New()
	r.GET("/health", h.Check)

	w := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"down"}`, w.Body.String())
}
