package service

import (
	"context"
	"log/slog"

	"tandem/internal/models"
	"tandem/internal/notifications"
	"tandem/internal/observability"
	"tandem/internal/repository"

	"gorm.io/gorm"
)

// FriendService owns the friend-request lifecycle: sending, accepting, and
// the listings around them. Acceptance is the only path that writes the
// friends set, and it does so in one transaction with the status change.
type FriendService struct {
	db          *gorm.DB
	requestRepo repository.FriendRequestRepository
	userRepo    repository.UserRepository
	userService *UserService
	notifier    *notifications.Notifier
}

// NewFriendService returns a new FriendService. notifier may be nil, in which
// case no events are published.
func NewFriendService(
	db *gorm.DB,
	requestRepo repository.FriendRequestRepository,
	userRepo repository.UserRepository,
	userService *UserService,
	notifier *notifications.Notifier,
) *FriendService {
	return &FriendService{
		db:          db,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		userService: userService,
		notifier:    notifier,
	}
}

func (s *FriendService) reject(err error) error {
	observability.FriendRequestsRejected.WithLabelValues(models.ErrorCode(err)).Inc()
	return err
}

// SendFriendRequest creates a pending request from sender to recipient.
//
// The checks run in order: self-request, recipient existence, existing
// friendship, existing request in either direction. The store's unique pair
// index backs the last check, so two racing mutual requests cannot both
// succeed.
func (s *FriendService) SendFriendRequest(ctx context.Context, senderID, recipientID uint) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, s.reject(models.NewInvalidOperationError("You cannot send a friend request to yourself"))
	}

	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, s.reject(err)
	}

	alreadyFriends, err := s.userRepo.IsFriend(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if alreadyFriends {
		return nil, s.reject(models.NewAlreadyFriendsError())
	}

	existing, err := s.requestRepo.GetBetweenUsers(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, s.reject(models.NewDuplicateRequestError())
	}

	request := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.FriendRequestPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, s.reject(err)
	}

	// Reload with sender/recipient preloaded for the response body.
	created, err := s.requestRepo.GetByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	observability.FriendRequestsSent.Inc()

	if s.notifier != nil {
		event := notifications.FriendRequestEvent{
			Type:        notifications.EventFriendRequestCreated,
			RequestID:   created.ID,
			SenderID:    created.SenderID,
			RecipientID: created.RecipientID,
		}
		if created.Sender != nil {
			event.SenderName = created.Sender.FullName
		}
		if err := s.notifier.PublishFriendRequestEvent(ctx, recipientID, event); err != nil {
			slog.Warn("failed to publish friend request event", "error", err, "recipient_id", recipientID)
		}
	}

	return created, nil
}

// AcceptFriendRequest transitions the request to accepted and records the
// symmetric friendship. Only the recipient may accept, and only while the
// request is pending. The status change and the friendship rows commit
// together or not at all.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID, requestID uint) (*models.FriendRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, s.reject(err)
	}

	if request.RecipientID != userID {
		return nil, s.reject(models.NewUnauthorizedError("You can only accept friend requests sent to you"))
	}
	if request.Status != models.FriendRequestPending {
		return nil, s.reject(models.NewInvalidStateError("Friend request is not pending"))
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requestRepo.WithTx(tx).MarkAccepted(ctx, requestID); err != nil {
			return err
		}
		return s.userRepo.WithTx(tx).AddFriendship(ctx, request.SenderID, request.RecipientID)
	})
	if err != nil {
		return nil, s.reject(err)
	}

	observability.FriendRequestsAccepted.Inc()

	if s.userService != nil {
		s.userService.InvalidateRecommendations(ctx, request.SenderID, request.RecipientID)
	}

	if s.notifier != nil {
		event := notifications.FriendRequestEvent{
			Type:        notifications.EventFriendRequestAccepted,
			RequestID:   request.ID,
			SenderID:    request.SenderID,
			RecipientID: request.RecipientID,
		}
		if request.Recipient != nil {
			event.SenderName = request.Recipient.FullName
		}
		if err := s.notifier.PublishFriendRequestEvent(ctx, request.SenderID, event); err != nil {
			slog.Warn("failed to publish friend request event", "error", err, "sender_id", request.SenderID)
		}
	}

	return s.requestRepo.GetByID(ctx, requestID)
}

// GetIncomingRequests returns pending requests addressed to the user.
func (s *FriendService) GetIncomingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.requestRepo.ListIncoming(ctx, userID)
}

// GetOutgoingRequests returns pending requests the user has sent.
func (s *FriendService) GetOutgoingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.requestRepo.ListOutgoing(ctx, userID)
}

// GetAcceptedSentRequests returns requests the user sent that were accepted,
// used to surface "your request was accepted" notifications.
func (s *FriendService) GetAcceptedSentRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.requestRepo.ListSentAccepted(ctx, userID)
}
