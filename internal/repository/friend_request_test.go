package repository

import (
	"context"
	"testing"

	"tandem/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRequestCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db, "alice", true)
	bob := createTestUser(t, db, "bob", true)

	request := mustCreateRequest(t, repo, alice.ID, bob.ID)
	require.NotZero(t, request.ID)

	loaded, err := repo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestPending, loaded.Status)
	require.NotNil(t, loaded.Sender)
	assert.Equal(t, alice.ID, loaded.Sender.ID)
	require.NotNil(t, loaded.Recipient)
	assert.Equal(t, bob.ID, loaded.Recipient.ID)
}

func TestFriendRequestCreateSelfRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db, "alice", true)

	err := repo.Create(context.Background(), &models.FriendRequest{
		SenderID:    alice.ID,
		RecipientID: alice.ID,
	})
	requireAppErrorCode(t, err, models.CodeInvalidOperation)
}

func TestFriendRequestDuplicatePairRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db, "alice", true)
	bob := createTestUser(t, db, "bob", true)

	mustCreateRequest(t, repo, alice.ID, bob.ID)

	// Same direction
	err := repo.Create(context.Background(), &models.FriendRequest{
		SenderID:    alice.ID,
		RecipientID: bob.ID,
	})
	requireAppErrorCode(t, err, models.CodeDuplicateRequest)

	// Reverse direction hits the same unique pair index
	err = repo.Create(context.Background(), &models.FriendRequest{
		SenderID:    bob.ID,
		RecipientID: alice.ID,
	})
	requireAppErrorCode(t, err, models.CodeDuplicateRequest)
}

func TestFriendRequestGetBetweenUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db, "alice", true)
	bob := createTestUser(t, db, "bob", true)
	carol := createTestUser(t, db, "carol", true)

	created := mustCreateRequest(t, repo, alice.ID, bob.ID)

	// Direction-independent lookup
	found, err := repo.GetBetweenUsers(context.Background(), bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	none, err := repo.GetBetweenUsers(context.Background(), alice.ID, carol.ID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestFriendRequestMarkAccepted(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db, "alice", true)
	bob := createTestUser(t, db, "bob", true)

	request := mustCreateRequest(t, repo, alice.ID, bob.ID)

	require.NoError(t, repo.MarkAccepted(context.Background(), request.ID))

	loaded, err := repo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestAccepted, loaded.Status)

	// Second acceptance finds no pending row
	err = repo.MarkAccepted(context.Background(), request.ID)
	requireAppErrorCode(t, err, models.CodeInvalidState)
}

func TestFriendRequestGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	requireAppErrorCode(t, err, models.CodeNotFound)
}

func TestFriendRequestListings(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRequestRepository(db)
	alice := createTestUser(t, db, "alice", true)
	bob := createTestUser(t, db, "bob", true)
	carol := createTestUser(t, db, "carol", true)
	dave := createTestUser(t, db, "dave", true)

	first := mustCreateRequest(t, repo, bob.ID, alice.ID)
	second := mustCreateRequest(t, repo, carol.ID, alice.ID)
	toDave := mustCreateRequest(t, repo, alice.ID, dave.ID)

	incoming, err := repo.ListIncoming(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 2)
	// Oldest first, ties broken by ID
	assert.Equal(t, first.ID, incoming[0].ID)
	assert.Equal(t, second.ID, incoming[1].ID)
	require.NotNil(t, incoming[0].Sender)
	assert.Equal(t, "bob", incoming[0].Sender.FullName)

	outgoing, err := repo.ListOutgoing(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, toDave.ID, outgoing[0].ID)

	// Accepted requests move out of the pending listings and into the
	// sender's accepted listing.
	require.NoError(t, repo.MarkAccepted(context.Background(), toDave.ID))

	outgoing, err = repo.ListOutgoing(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, outgoing)

	accepted, err := repo.ListSentAccepted(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, toDave.ID, accepted[0].ID)
}
