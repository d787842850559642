package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"online-store/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionContext(t *testing.T) (*gin.Context, *middleware.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := middleware.NewSessionStore(nil, time.Minute)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/cart", nil)
	middleware.SessionMiddleware(store)(c)
	return c, store
}

func TestResolveCartOwnerAnonymous(t *testing.T) {
	c, _ := newSessionContext(t)

	owner, err := resolveCartOwner(c)
	require.NoError(t, err)
	assert.False(t, owner.Authenticated)
	assert.NotEmpty(t, owner.Key)

	// The minted token is persisted: the same session resolves to it again.
	again, err := resolveCartOwner(c)
	require.NoError(t, err)
	assert.Equal(t, owner.Key, again.Key)
}

func TestResolveCartOwnerAuthenticated(t *testing.T) {
	c, _ := newSessionContext(t)
	c.Set("user_id", 7)

	owner, err := resolveCartOwner(c)
	require.NoError(t, err)
	assert.True(t, owner.Authenticated)
	assert.Equal(t, "7", owner.Key)
}

func TestResolveCartOwnerFallsBackToSessionID(t *testing.T) {
	c, _ := newSessionContext(t)
	c.Set("user_id", 0)

	owner, err := resolveCartOwner(c)
	require.NoError(t, err)
	assert.True(t, owner.Authenticated)
	assert.Equal(t, middleware.GetSession(c).ID, owner.Key,
		"claims without a usable id fall back to the session id")
}
