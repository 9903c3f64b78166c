package service

import (
	"context"
	"errors"
	"fmt"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// shareIDAttempts bounds retries when a generated share id is already taken.
const shareIDAttempts = 3

type SharedFavoriteService interface {
	Create(ctx context.Context, userID int64, req dto.CreateSharedListDTO) (*dto.CreateSharedListResponse, error)
	GetByShareID(ctx context.Context, shareID string) (*models.SharedFavoriteListDetail, error)
	IncrementView(ctx context.Context, shareID string) error
	ListMine(ctx context.Context, userID int64) ([]models.SharedFavoriteList, error)
}

type sharedFavoriteService struct {
	repo  repository.SharedFavoriteRepository
	newID func() (string, error)
}

func NewSharedFavoriteService(repo repository.SharedFavoriteRepository) SharedFavoriteService {
	return &sharedFavoriteService{
		repo:  repo,
		newID: func() (string, error) { return gonanoid.New() },
	}
}

func (s *sharedFavoriteService) Create(ctx context.Context, userID int64, req dto.CreateSharedListDTO) (*dto.CreateSharedListResponse, error) {
	if len(req.PlaceIDs) == 0 {
		return nil, apperror.Validation("at least one place is required")
	}

	for attempt := 1; ; attempt++ {
		shareID, err := s.newID()
		if err != nil {
			return nil, fmt.Errorf("generate share id: %w", err)
		}

		list := &models.SharedFavoriteList{
			UserID:      userID,
			ShareID:     shareID,
			Title:       req.Title,
			Description: req.Description,
		}
		err = s.repo.Create(ctx, list, req.PlaceIDs)
		if err == nil {
			return &dto.CreateSharedListResponse{ID: list.ID, ShareID: list.ShareID}, nil
		}
		if !errors.Is(err, apperror.ErrConflict) || attempt == shareIDAttempts {
			return nil, err
		}
	}
}

func (s *sharedFavoriteService) GetByShareID(ctx context.Context, shareID string) (*models.SharedFavoriteListDetail, error) {
	return s.repo.GetByShareID(ctx, shareID)
}

func (s *sharedFavoriteService) IncrementView(ctx context.Context, shareID string) error {
	return s.repo.IncrementViewCount(ctx, shareID)
}

func (s *sharedFavoriteService) ListMine(ctx context.Context, userID int64) ([]models.SharedFavoriteList, error) {
	return s.repo.GetByUser(ctx, userID)
}
