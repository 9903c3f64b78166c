package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// unreachableDB returns a handle whose every query fails to connect.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("postgres://placehub@127.0.0.1:1/placehub?sslmode=disable&connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func TestNotificationRepository_WrapsStoreErrors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	repo := NewNotificationRepository(unreachableDB(t))

	err := repo.MarkAsRead(ctx, 1, 9)
	assert.ErrorContains(t, err, "mark notification 9 read: ")

	err = repo.MarkAllAsRead(ctx, 1)
	assert.ErrorContains(t, err, "mark all notifications read: ")

	err = repo.Delete(ctx, 1, 9)
	assert.ErrorContains(t, err, "delete notification 9: ")
}
