package handler

import (
	"context"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IssueToken(claims service.SessionClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionClaims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

type MockPlaceService struct {
	mock.Mock
}

func (m *MockPlaceService) List(ctx context.Context) ([]models.PlaceWithStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PlaceWithStats), args.Error(1)
}

func (m *MockPlaceService) GetByID(ctx context.Context, id int64) (*models.PlaceWithStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaceWithStats), args.Error(1)
}

func (m *MockPlaceService) IncrementView(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaceService) Create(ctx context.Context, req dto.CreatePlaceDTO) (*models.Place, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Place), args.Error(1)
}

func (m *MockPlaceService) Update(ctx context.Context, req dto.UpdatePlaceDTO) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPlaceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaceService) ListImages(ctx context.Context, placeID int64) ([]models.PlaceImage, error) {
	args := m.Called(ctx, placeID)
	return args.Get(0).([]models.PlaceImage), args.Error(1)
}

func (m *MockPlaceService) AddImage(ctx context.Context, req dto.AddPlaceImageDTO) (*models.PlaceImage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaceImage), args.Error(1)
}

func (m *MockPlaceService) DeleteImage(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) GetByPlaceID(ctx context.Context, placeID int64) ([]models.ReviewWithUser, error) {
	args := m.Called(ctx, placeID)
	return args.Get(0).([]models.ReviewWithUser), args.Error(1)
}

func (m *MockReviewService) GetAll(ctx context.Context) ([]models.ReviewWithNames, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ReviewWithNames), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, userID int64, req dto.CreateReviewDTO) (*models.Review, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, req dto.CreateCategoryDTO) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, req dto.UpdateCategoryDTO) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID, placeID int64) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID, placeID int64) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) IsFavorite(ctx context.Context, userID, placeID int64) (bool, error) {
	args := m.Called(ctx, userID, placeID)
	return args.Bool(0), args.Error(1)
}

type MockSharedFavoriteService struct {
	mock.Mock
}

func (m *MockSharedFavoriteService) Create(ctx context.Context, userID int64, req dto.CreateSharedListDTO) (*dto.CreateSharedListResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateSharedListResponse), args.Error(1)
}

func (m *MockSharedFavoriteService) GetByShareID(ctx context.Context, shareID string) (*models.SharedFavoriteListDetail, error) {
	args := m.Called(ctx, shareID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SharedFavoriteListDetail), args.Error(1)
}

func (m *MockSharedFavoriteService) IncrementView(ctx context.Context, shareID string) error {
	args := m.Called(ctx, shareID)
	return args.Error(0)
}

func (m *MockSharedFavoriteService) ListMine(ctx context.Context, userID int64) ([]models.SharedFavoriteList, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.SharedFavoriteList), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Create(ctx context.Context, req dto.CreateNotificationDTO) (*models.Notification, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int64) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationService) Delete(ctx context.Context, userID, notificationID int64) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetViewStats(ctx context.Context) (*models.ViewStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ViewStats), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, req dto.UploadFileDTO) (*dto.UploadFileResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadFileResponse), args.Error(1)
}
