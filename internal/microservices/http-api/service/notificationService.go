package service

import (
	"context"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/repository"
)

type NotificationService interface {
	Create(ctx context.Context, req dto.CreateNotificationDTO) (*models.Notification, error)
	List(ctx context.Context, userID int64) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID, notificationID int64) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, req dto.CreateNotificationDTO) (*models.Notification, error) {
	notification := req.ToModel()
	if err := s.repo.Create(ctx, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (s *notificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int64) error {
	return s.repo.MarkAsRead(ctx, userID, notificationID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID int64) error {
	return s.repo.Delete(ctx, userID, notificationID)
}
