package handler

import (
	"net/http"
	"net/url"
	"testing"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavorites_RequireSignIn(t *testing.T) {
	svc := new(MockFavoriteService)
	r := setupRouter(anonymous, NewFavoriteHandler(svc))

	assert.Equal(t, http.StatusUnauthorized, query(r, "favorites.list", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, mutate(r, "favorites.add", dto.PlaceIDRequest{PlaceID: 1}).Code)
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavorites_AddTwiceThenCheck(t *testing.T) {
	svc := new(MockFavoriteService)
	svc.On("Add", mock.Anything, testUserID, int64(3)).Return(nil).Twice()
	svc.On("IsFavorite", mock.Anything, testUserID, int64(3)).Return(true, nil)
	r := setupRouter(asUser, NewFavoriteHandler(svc))

	assert.Equal(t, http.StatusOK, mutate(r, "favorites.add", dto.PlaceIDRequest{PlaceID: 3}).Code)
	assert.Equal(t, http.StatusOK, mutate(r, "favorites.add", dto.PlaceIDRequest{PlaceID: 3}).Code)

	w := query(r, "favorites.isFavorite", url.Values{"placeId": {"3"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Body.String())
	svc.AssertExpectations(t)
}

func TestFavorites_ListScopedToCaller(t *testing.T) {
	svc := new(MockFavoriteService)
	svc.On("List", mock.Anything, testUserID).Return([]models.Favorite{
		{ID: 1, UserID: testUserID, PlaceID: 3, Place: &models.Place{ID: 3, Name: "Night Bazaar"}},
	}, nil)

	w := query(setupRouter(asUser, NewFavoriteHandler(svc)), "favorites.list", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Night Bazaar")
	svc.AssertExpectations(t)
}

func TestFavorites_Remove(t *testing.T) {
	svc := new(MockFavoriteService)
	svc.On("Remove", mock.Anything, testUserID, int64(3)).Return(nil)

	w := mutate(setupRouter(asUser, NewFavoriteHandler(svc)), "favorites.remove", dto.PlaceIDRequest{PlaceID: 3})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
