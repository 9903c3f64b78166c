package service

import (
	"context"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/repository"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, req dto.CreateCategoryDTO) (*models.Category, error)
	Update(ctx context.Context, req dto.UpdateCategoryDTO) error
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryDTO) (*models.Category, error) {
	category := req.ToModel()
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) Update(ctx context.Context, req dto.UpdateCategoryDTO) error {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil
	}
	return s.repo.Update(ctx, req.ID, fields)
}

// Delete is rejected with CONFLICT while any place still uses the category name.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
