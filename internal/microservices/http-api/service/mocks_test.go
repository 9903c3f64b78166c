package service

import (
	"context"
	"time"

	"placehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByOpenID(ctx context.Context, openID string) (*models.User, error) {
	args := m.Called(ctx, openID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRevokedTokenRepository mocks the RevokedTokenRepository interface
type MockRevokedTokenRepository struct {
	mock.Mock
}

func (m *MockRevokedTokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockRevokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockPlaceRepository mocks the PlaceRepository interface
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) GetAll(ctx context.Context) ([]models.PlaceWithStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlaceWithStats), args.Error(1)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id int64) (*models.PlaceWithStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaceWithStats), args.Error(1)
}

func (m *MockPlaceRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Place, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Place), args.Error(1)
}

func (m *MockPlaceRepository) Create(ctx context.Context, place *models.Place) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockPlaceRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockPlaceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaceRepository) IncrementViewCount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaceRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlaceRepository) GetViewStats(ctx context.Context) (*models.ViewStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ViewStats), args.Error(1)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetByPlaceID(ctx context.Context, placeID int64) ([]models.ReviewWithUser, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewWithUser), args.Error(1)
}

func (m *MockReviewRepository) GetAll(ctx context.Context) ([]models.ReviewWithNames, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewWithNames), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSharedFavoriteRepository mocks the SharedFavoriteRepository interface
type MockSharedFavoriteRepository struct {
	mock.Mock
}

func (m *MockSharedFavoriteRepository) Create(ctx context.Context, list *models.SharedFavoriteList, placeIDs []int64) error {
	args := m.Called(ctx, list, placeIDs)
	return args.Error(0)
}

func (m *MockSharedFavoriteRepository) GetByShareID(ctx context.Context, shareID string) (*models.SharedFavoriteListDetail, error) {
	args := m.Called(ctx, shareID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SharedFavoriteListDetail), args.Error(1)
}

func (m *MockSharedFavoriteRepository) IncrementViewCount(ctx context.Context, shareID string) error {
	args := m.Called(ctx, shareID)
	return args.Error(0)
}

func (m *MockSharedFavoriteRepository) GetByUser(ctx context.Context, userID int64) ([]models.SharedFavoriteList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SharedFavoriteList), args.Error(1)
}

// MockBlobStore mocks the BlobStore interface
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}
