package repository

import (
	"context"
	"testing"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a store every read degrades to an empty value and every write reports UNAVAILABLE.

func TestPlaceRepository_NoStore(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepository(nil)

	places, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)

	place, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, place)

	stats, err := repo.GetViewStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalViews)
	assert.NotNil(t, stats.ViewsByCategory)
	assert.NotNil(t, stats.TopPlaces)

	assert.ErrorIs(t, repo.Create(ctx, &models.Place{Name: "x"}), apperror.ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Update(ctx, 1, map[string]any{"name": "y"}), apperror.ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Delete(ctx, 1), apperror.ErrStoreUnavailable)
	assert.ErrorIs(t, repo.IncrementViewCount(ctx, 1), apperror.ErrStoreUnavailable)
}

func TestReviewRepository_NoStore(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(nil)

	reviews, err := repo.GetByPlaceID(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = repo.Create(ctx, &models.Review{PlaceID: 1, UserID: 1, Rating: 5})
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestFavoriteRepository_NoStore(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoriteRepository(nil)

	ok, err := repo.Exists(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	favorites, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	assert.ErrorIs(t, repo.Add(ctx, 1, 1), apperror.ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Remove(ctx, 1, 1), apperror.ErrStoreUnavailable)
}

func TestSharedFavoriteRepository_NoStore(t *testing.T) {
	ctx := context.Background()
	repo := NewSharedFavoriteRepository(nil)

	detail, err := repo.GetByShareID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, detail)

	err = repo.Create(ctx, &models.SharedFavoriteList{Title: "t"}, []int64{1})
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
	assert.ErrorIs(t, repo.IncrementViewCount(ctx, "abc"), apperror.ErrStoreUnavailable)
}

func TestNotificationAndCategoryRepository_NoStore(t *testing.T) {
	ctx := context.Background()
	notifications := NewNotificationRepository(nil)
	categories := NewCategoryRepository(nil)

	count, err := notifications.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	list, err := notifications.ListForUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	all, err := categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, categories.Delete(ctx, 1), apperror.ErrStoreUnavailable)
	assert.ErrorIs(t, notifications.MarkAllAsRead(ctx, 1), apperror.ErrStoreUnavailable)
}

func TestRevokedTokenRepository_NilClient(t *testing.T) {
	ctx := context.Background()
	repo := NewRevokedTokenRepository(nil)

	require.NoError(t, repo.Revoke(ctx, "jti", 0))
	revoked, err := repo.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestParseAggregates(t *testing.T) {
	assert.Equal(t, 4.5, parseFloat("4.5000000000000000"))
	assert.Equal(t, 0.0, parseFloat(""))
	assert.Equal(t, int64(12), parseInt("12"))
	assert.Equal(t, int64(3), parseInt("3.0"))
	assert.Equal(t, int64(0), parseInt("n/a"))
}
