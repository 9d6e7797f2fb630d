package repository

import (
	"context"
	"fmt"
	"testing"

	"tandem/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserFriend{}, &models.FriendRequest{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, onboarded bool) *models.User {
	t.Helper()
	user := &models.User{
		FullName:    name,
		Email:       fmt.Sprintf("%s@example.com", name),
		Password:    "hashed",
		IsOnboarded: onboarded,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustCreateRequest(t *testing.T, repo FriendRequestRepository, senderID, recipientID uint) *models.FriendRequest {
	t.Helper()
	request := &models.FriendRequest{SenderID: senderID, RecipientID: recipientID}
	require.NoError(t, repo.Create(context.Background(), request))
	return request
}

func requireAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}
