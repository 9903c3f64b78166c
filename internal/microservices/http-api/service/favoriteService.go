package service

import (
	"context"

	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, userID, placeID int64) error
	Remove(ctx context.Context, userID, placeID int64) error
	List(ctx context.Context, userID int64) ([]models.Favorite, error)
	IsFavorite(ctx context.Context, userID, placeID int64) (bool, error)
}

type favoriteService struct {
	repo repository.FavoriteRepository
}

func NewFavoriteService(repo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{repo: repo}
}

// Add never fails for a pair that is already favorited.
func (s *favoriteService) Add(ctx context.Context, userID, placeID int64) error {
	return s.repo.Add(ctx, userID, placeID)
}

func (s *favoriteService) Remove(ctx context.Context, userID, placeID int64) error {
	return s.repo.Remove(ctx, userID, placeID)
}

func (s *favoriteService) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, placeID int64) (bool, error) {
	return s.repo.Exists(ctx, userID, placeID)
}
