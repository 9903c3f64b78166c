package service

import (
	"context"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/repository"
)

type PlaceService interface {
	List(ctx context.Context) ([]models.PlaceWithStats, error)
	GetByID(ctx context.Context, id int64) (*models.PlaceWithStats, error)
	IncrementView(ctx context.Context, id int64) error
	Create(ctx context.Context, req dto.CreatePlaceDTO) (*models.Place, error)
	Update(ctx context.Context, req dto.UpdatePlaceDTO) error
	Delete(ctx context.Context, id int64) error

	ListImages(ctx context.Context, placeID int64) ([]models.PlaceImage, error)
	AddImage(ctx context.Context, req dto.AddPlaceImageDTO) (*models.PlaceImage, error)
	DeleteImage(ctx context.Context, id int64) error
}

type placeService struct {
	repo   repository.PlaceRepository
	images repository.PlaceImageRepository
}

func NewPlaceService(repo repository.PlaceRepository, images repository.PlaceImageRepository) PlaceService {
	return &placeService{
		repo:   repo,
		images: images,
	}
}

func (s *placeService) List(ctx context.Context) ([]models.PlaceWithStats, error) {
	return s.repo.GetAll(ctx)
}

func (s *placeService) GetByID(ctx context.Context, id int64) (*models.PlaceWithStats, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *placeService) IncrementView(ctx context.Context, id int64) error {
	return s.repo.IncrementViewCount(ctx, id)
}

func (s *placeService) Create(ctx context.Context, req dto.CreatePlaceDTO) (*models.Place, error) {
	place := req.ToModel()
	if err := s.repo.Create(ctx, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (s *placeService) Update(ctx context.Context, req dto.UpdatePlaceDTO) error {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil
	}
	return s.repo.Update(ctx, req.ID, fields)
}

func (s *placeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *placeService) ListImages(ctx context.Context, placeID int64) ([]models.PlaceImage, error) {
	return s.images.ListByPlace(ctx, placeID)
}

func (s *placeService) AddImage(ctx context.Context, req dto.AddPlaceImageDTO) (*models.PlaceImage, error) {
	image := req.ToModel()
	if err := s.images.Create(ctx, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *placeService) DeleteImage(ctx context.Context, id int64) error {
	return s.images.Delete(ctx, id)
}
