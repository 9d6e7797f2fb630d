// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a member of the language-exchange platform.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FullName         string    `gorm:"not null" json:"fullName"`
	Email            string    `gorm:"unique;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	ProfilePic       string    `json:"profilePic"`
	Bio              string    `json:"bio"`
	NativeLanguage   string    `json:"nativeLanguage"`
	LearningLanguage string    `json:"learningLanguage"`
	Location         string    `json:"location"`
	IsOnboarded      bool      `gorm:"default:false" json:"isOnboarded"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserFriend is one direction of a friendship edge. A friendship between A
// and B is stored as the two rows (A,B) and (B,A); both rows are written in
// the same transaction, so the edge is always symmetric. Only the user
// repository writes this table.
type UserFriend struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	FriendID  uint      `gorm:"primaryKey;autoIncrement:false" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (UserFriend) TableName() string {
	return "user_friends"
}

// UserSummary is the profile subset exposed in friend and request listings.
type UserSummary struct {
	ID               uint   `json:"id"`
	FullName         string `json:"fullName"`
	ProfilePic       string `json:"profilePic"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
}

// Summary returns the listing view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:               u.ID,
		FullName:         u.FullName,
		ProfilePic:       u.ProfilePic,
		NativeLanguage:   u.NativeLanguage,
		LearningLanguage: u.LearningLanguage,
	}
}

// Summaries maps users to their listing view.
func Summaries(users []User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out
}
