package service

import (
	"context"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/repository"
)

type ReviewService interface {
	GetByPlaceID(ctx context.Context, placeID int64) ([]models.ReviewWithUser, error)
	GetAll(ctx context.Context) ([]models.ReviewWithNames, error)
	Create(ctx context.Context, userID int64, req dto.CreateReviewDTO) (*models.Review, error)
	Delete(ctx context.Context, id int64) error
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) GetByPlaceID(ctx context.Context, placeID int64) ([]models.ReviewWithUser, error) {
	return s.repo.GetByPlaceID(ctx, placeID)
}

func (s *reviewService) GetAll(ctx context.Context) ([]models.ReviewWithNames, error) {
	return s.repo.GetAll(ctx)
}

func (s *reviewService) Create(ctx context.Context, userID int64, req dto.CreateReviewDTO) (*models.Review, error) {
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, apperror.Validationf("rating must be between %d and %d", models.MinRating, models.MaxRating)
	}
	review := req.ToModel(userID)
	if err := s.repo.Create(ctx, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
