package models

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRequestBeforeCreateNormalizesPair(t *testing.T) {
	fr := &FriendRequest{SenderID: 9, RecipientID: 4}
	require.NoError(t, fr.BeforeCreate(nil))
	assert.EqualValues(t, 4, fr.PairMinID)
	assert.EqualValues(t, 9, fr.PairMaxID)

	// Already-ordered pair stays as is
	fr = &FriendRequest{SenderID: 2, RecipientID: 7}
	require.NoError(t, fr.BeforeCreate(nil))
	assert.EqualValues(t, 2, fr.PairMinID)
	assert.EqualValues(t, 7, fr.PairMaxID)
}

func TestFriendRequestBeforeCreateRejectsSelf(t *testing.T) {
	fr := &FriendRequest{SenderID: 3, RecipientID: 3}
	err := fr.BeforeCreate(nil)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodeInvalidOperation, appErr.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NewNotFoundError("User", 1), fiber.StatusNotFound},
		{NewValidationError("bad"), fiber.StatusBadRequest},
		{NewInvalidOperationError("bad"), fiber.StatusBadRequest},
		{NewUnauthorizedError("no"), fiber.StatusForbidden},
		{NewAlreadyFriendsError(), fiber.StatusConflict},
		{NewDuplicateRequestError(), fiber.StatusConflict},
		{NewInvalidStateError("not pending"), fiber.StatusConflict},
		{NewStoreUnavailableError(errors.New("down")), fiber.StatusServiceUnavailable},
		{errors.New("plain"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), "HTTPStatus(%v)", tc.err)
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeDuplicateRequest, ErrorCode(NewDuplicateRequestError()))
	assert.Equal(t, CodeInternal, ErrorCode(errors.New("plain")))
}

func TestUserSummary(t *testing.T) {
	u := User{
		ID:               7,
		FullName:         "Mia Park",
		Email:            "mia@example.com",
		ProfilePic:       "https://avatar.iran.liara.run/public/7.png",
		NativeLanguage:   "Korean",
		LearningLanguage: "Spanish",
	}
	summary := u.Summary()
	assert.EqualValues(t, 7, summary.ID)
	assert.Equal(t, "Mia Park", summary.FullName)
	assert.Equal(t, "Korean", summary.NativeLanguage)
	assert.Equal(t, "Spanish", summary.LearningLanguage)

	summaries := Summaries([]User{u, {ID: 8}})
	require.Len(t, summaries, 2)
	assert.EqualValues(t, 8, summaries[1].ID)
}
