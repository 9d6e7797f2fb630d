package repository

import (
	"context"
	"errors"

	"tandem/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique-index violations.
const pgUniqueViolation = "23505"

// FriendRequestRepository is the request ledger: it owns friend-request
// records and their state machine. It never writes the friends set directly.
type FriendRequestRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) FriendRequestRepository
	// Create persists a new pending request. A unique-index violation on the
	// unordered sender/recipient pair is returned as DUPLICATE_REQUEST, which
	// closes the race between two callers creating mutual requests.
	Create(ctx context.Context, request *models.FriendRequest) error
	GetByID(ctx context.Context, id uint) (*models.FriendRequest, error)
	// GetBetweenUsers returns the request between the unordered pair in
	// either direction and any status, or (nil, nil) when none exists.
	GetBetweenUsers(ctx context.Context, userID, otherID uint) (*models.FriendRequest, error)
	// MarkAccepted transitions the request from pending to accepted. The
	// update is guarded on the current status; a request that is no longer
	// pending yields INVALID_STATE.
	MarkAccepted(ctx context.Context, id uint) error
	ListIncoming(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	ListOutgoing(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	ListSentAccepted(ctx context.Context, userID uint) ([]models.FriendRequest, error)
}

// friendRequestRepository implements FriendRequestRepository
type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository creates a new friend request repository
func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) WithTx(tx *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: tx}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (r *friendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr // BeforeCreate rejection, e.g. self-directed request
		}
		if isDuplicateKey(err) {
			return models.NewDuplicateRequestError()
		}
		return models.NewStoreUnavailableError(err)
	}
	return nil
}

func (r *friendRequestRepository) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friend request", id)
		}
		return nil, models.NewStoreUnavailableError(err)
	}
	return &request, nil
}

func (r *friendRequestRepository) GetBetweenUsers(ctx context.Context, userID, otherID uint) (*models.FriendRequest, error) {
	pairMin, pairMax := userID, otherID
	if pairMin > pairMax {
		pairMin, pairMax = pairMax, pairMin
	}

	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("pair_min_id = ? AND pair_max_id = ?", pairMin, pairMax).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStoreUnavailableError(err)
	}
	return &request, nil
}

func (r *friendRequestRepository) MarkAccepted(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", id, models.FriendRequestPending).
		Update("status", models.FriendRequestAccepted)
	if result.Error != nil {
		return models.NewStoreUnavailableError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewInvalidStateError("Friend request is not pending")
	}
	return nil
}

func (r *friendRequestRepository) listByRole(ctx context.Context, column string, userID uint, status models.FriendRequestStatus) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where(column+" = ? AND status = ?", userID, status).
		Preload("Sender").
		Preload("Recipient").
		Order("created_at ASC, id ASC").
		Find(&requests).Error; err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	return requests, nil
}

func (r *friendRequestRepository) ListIncoming(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return r.listByRole(ctx, "recipient_id", userID, models.FriendRequestPending)
}

func (r *friendRequestRepository) ListOutgoing(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return r.listByRole(ctx, "sender_id", userID, models.FriendRequestPending)
}

func (r *friendRequestRepository) ListSentAccepted(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return r.listByRole(ctx, "sender_id", userID, models.FriendRequestAccepted)
}
