package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const SessionCookie = "session_id"

// SessionStore keeps per-visitor key/value state with an idle TTL that is
// refreshed on every access. Values live in Redis when a client is
// available and fall back to process memory otherwise, so the store keeps
// working in development without a Redis instance.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.Mutex
	local map[string]*localSession
}

type localSession struct {
	values    map[string]string
	expiresAt time.Time
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		local:  map[string]*localSession{},
	}
}

func (s *SessionStore) redisKey(sid string) string {
	return "session:" + sid
}

func (s *SessionStore) Get(ctx context.Context, sid, key string) (string, error) {
	if s.client != nil {
		value, err := s.client.HGet(ctx, s.redisKey(sid), key).Result()
		if err == redis.Nil {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		s.client.Expire(ctx, s.redisKey(sid), s.ttl)
		return value, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.local[sid]
	if !ok || time.Now().After(sess.expiresAt) {
		delete(s.local, sid)
		return "", nil
	}
	sess.expiresAt = time.Now().Add(s.ttl)
	return sess.values[key], nil
}

func (s *SessionStore) Set(ctx context.Context, sid, key, value string) error {
	if s.client != nil {
		if err := s.client.HSet(ctx, s.redisKey(sid), key, value).Err(); err != nil {
			return err
		}
		return s.client.Expire(ctx, s.redisKey(sid), s.ttl).Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.local[sid]
	if !ok || time.Now().After(sess.expiresAt) {
		sess = &localSession{values: map[string]string{}}
		s.local[sid] = sess
	}
	sess.values[key] = value
	sess.expiresAt = time.Now().Add(s.ttl)
	return nil
}

// Session is the per-request view of the store.
type Session struct {
	ID    string
	store *SessionStore
}

func (s *Session) Get(ctx context.Context, key string) (string, error) {
	return s.store.Get(ctx, s.ID, key)
}

func (s *Session) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.ID, key, value)
}

// SessionMiddleware issues the session id cookie on first contact and
// attaches the Session to the gin context.
func SessionMiddleware(store *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, 0, "/", "", false, true)
		}

		c.Set("session", &Session{ID: sid, store: store})
		c.Next()
	}
}

// GetSession returns the request's session. It panics if the session
// middleware is not installed on the route.
func GetSession(c *gin.Context) *Session {
	return c.MustGet("session").(*Session)
}
