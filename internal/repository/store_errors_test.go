package repository

import (
	"context"
	"errors"
	"testing"

	"tandem/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepositoryStoreUnavailable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByID(context.Background(), 1)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeStoreUnavailable, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRequestCreateUniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFriendRequestRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "friend_requests"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_friend_requests_pair"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.FriendRequest{SenderID: 1, RecipientID: 2})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeDuplicateRequest, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRequestListStoreUnavailable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFriendRequestRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "friend_requests"`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListIncoming(context.Background(), 1)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeStoreUnavailable, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
