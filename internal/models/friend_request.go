package models

import (
	"time"

	"gorm.io/gorm"
)

// FriendRequestStatus represents the status of a friend request.
type FriendRequestStatus string

const (
	// FriendRequestPending indicates a request awaiting the recipient's decision.
	FriendRequestPending FriendRequestStatus = "pending"
	// FriendRequestAccepted indicates a request the recipient accepted. Terminal.
	FriendRequestAccepted FriendRequestStatus = "accepted"
)

// FriendRequest is a directional proposal from sender to recipient. The
// record is never deleted; after acceptance it remains as history.
//
// PairMinID/PairMaxID hold the unordered pair of user IDs and carry a
// composite unique index, so the store rejects a second request between the
// same two users regardless of direction. Two callers racing to create
// mutual requests cannot both succeed even if both pass the application-level
// existence check.
type FriendRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	SenderID    uint                `gorm:"not null;index" json:"sender_id"`
	RecipientID uint                `gorm:"not null;index" json:"recipient_id"`
	PairMinID   uint                `gorm:"not null;uniqueIndex:idx_friend_requests_pair" json:"-"`
	PairMaxID   uint                `gorm:"not null;uniqueIndex:idx_friend_requests_pair" json:"-"`
	Status      FriendRequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}

// BeforeCreate normalizes the unordered pair columns from the directional
// sender/recipient fields and rejects self-directed requests.
func (fr *FriendRequest) BeforeCreate(_ *gorm.DB) error {
	if fr.SenderID == fr.RecipientID {
		return NewInvalidOperationError("You cannot send a friend request to yourself")
	}
	fr.PairMinID, fr.PairMaxID = fr.SenderID, fr.RecipientID
	if fr.PairMinID > fr.PairMaxID {
		fr.PairMinID, fr.PairMaxID = fr.PairMaxID, fr.PairMinID
	}
	return nil
}
