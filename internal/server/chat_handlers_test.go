package server

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStreamTokenUnconfigured(t *testing.T) {
	srv, app := newTestServer(t)
	alice := seedServerUser(t, srv, "alice", true)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/chat/token", authToken(t, srv, alice.ID), nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetStreamToken(t *testing.T) {
	srv, app := newTestServer(t)
	srv.config.StreamAPISecret = "stream-secret"
	alice := seedServerUser(t, srv, "alice", true)

	resp, body := doJSON(t, app, http.MethodGet, "/api/chat/token", authToken(t, srv, alice.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tokenString, ok := body["token"].(string)
	require.True(t, ok)

	// The token must be verifiable with the provider secret and carry the
	// caller's chat identity.
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte("stream-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "1", claims["user_id"])
}

func TestHealthEndpoints(t *testing.T) {
	_, app := newTestServer(t)

	for _, path := range []string{"/health/live", "/health/ready", "/health", "/api/"} {
		resp, _ := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "path %s", path)
	}
}
