package service

import (
	"context"
	"testing"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateRejectsRatingOutOfRange(t *testing.T) {
	repo := new(MockReviewRepository)
	reviewService := NewReviewService(repo)

	for _, rating := range []int{0, 6, -1} {
		_, err := reviewService.Create(context.Background(), 1, dto.CreateReviewDTO{PlaceID: 1, Rating: rating})
		assert.ErrorIs(t, err, apperror.ErrValidation, "rating %d", rating)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_CreateSetsAuthor(t *testing.T) {
	repo := new(MockReviewRepository)
	reviewService := NewReviewService(repo)
	comment := "great view"

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
		return r.UserID == 42 && r.PlaceID == 3 && r.Rating == 5 && *r.Comment == comment
	})).Return(nil)

	review, err := reviewService.Create(context.Background(), 42, dto.CreateReviewDTO{PlaceID: 3, Rating: 5, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, int64(42), review.UserID)
	repo.AssertExpectations(t)
}

func TestReviewService_CreatePropagatesStoreErrors(t *testing.T) {
	repo := new(MockReviewRepository)
	reviewService := NewReviewService(repo)
	repo.On("Create", mock.Anything, mock.Anything).Return(apperror.NotFound("place not found"))

	_, err := reviewService.Create(context.Background(), 1, dto.CreateReviewDTO{PlaceID: 99, Rating: 4})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
