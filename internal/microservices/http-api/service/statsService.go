package service

import (
	"context"

	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/repository"
)

type StatsService interface {
	GetViewStats(ctx context.Context) (*models.ViewStats, error)
}

type statsService struct {
	places repository.PlaceRepository
}

func NewStatsService(places repository.PlaceRepository) StatsService {
	return &statsService{places: places}
}

func (s *statsService) GetViewStats(ctx context.Context) (*models.ViewStats, error) {
	return s.places.GetViewStats(ctx)
}
