// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"tandem/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository is the user directory: it owns user records and the
// symmetric friends set, and is the only component that writes user_friends.
type UserRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) UserRepository
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// Recommend returns all onboarded users excluding userID and everyone
	// already in userID's friends set. Candidate ordering is not significant.
	Recommend(ctx context.Context, userID uint) ([]models.User, error)
	// ListFriends resolves userID's friends set to full user records.
	ListFriends(ctx context.Context, userID uint) ([]models.User, error)
	IsFriend(ctx context.Context, userID, otherID uint) (bool, error)
	// AddFriendship records the symmetric edge between two users. The write
	// is idempotent: re-adding an existing edge is a no-op.
	AddFriendship(ctx context.Context, userID, otherID uint) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewStoreUnavailableError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStoreUnavailableError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("Email already in use")
		}
		return models.NewStoreUnavailableError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewStoreUnavailableError(err)
	}
	return nil
}

func (r *userRepository) Recommend(ctx context.Context, userID uint) ([]models.User, error) {
	friendIDs := r.db.Model(&models.UserFriend{}).
		Select("friend_id").
		Where("user_id = ?", userID)

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("is_onboarded = ?", true).
		Where("id <> ?", userID).
		Where("id NOT IN (?)", friendIDs).
		Find(&users).Error; err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	return users, nil
}

func (r *userRepository) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN user_friends uf ON uf.friend_id = users.id").
		Where("uf.user_id = ?", userID).
		Order("uf.created_at ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	return users, nil
}

func (r *userRepository) IsFriend(ctx context.Context, userID, otherID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserFriend{}).
		Where("user_id = ? AND friend_id = ?", userID, otherID).
		Count(&count).Error; err != nil {
		return false, models.NewStoreUnavailableError(err)
	}
	return count > 0, nil
}

func (r *userRepository) AddFriendship(ctx context.Context, userID, otherID uint) error {
	if userID == otherID {
		return models.NewInvalidOperationError("A user cannot befriend themselves")
	}

	var existing []uint
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id IN ?", []uint{userID, otherID}).
		Pluck("id", &existing).Error; err != nil {
		return models.NewStoreUnavailableError(err)
	}
	if len(existing) != 2 {
		present := make(map[uint]bool, len(existing))
		for _, id := range existing {
			present[id] = true
		}
		for _, id := range []uint{userID, otherID} {
			if !present[id] {
				return models.NewNotFoundError("User", id)
			}
		}
	}

	// Both directions of the edge; DoNothing keeps the write idempotent.
	edges := []models.UserFriend{
		{UserID: userID, FriendID: otherID},
		{UserID: otherID, FriendID: userID},
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edges).Error; err != nil {
		return models.NewStoreUnavailableError(err)
	}
	return nil
}
