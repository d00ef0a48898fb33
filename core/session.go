package core

import (
	"context"
	"time"

	"github.com/shopauth/shopauth/pkg/crypto"
)

type SessionConfig struct {
	MaxAge time.Duration
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MaxAge: 24 * time.Hour,
	}
}

// SessionManager owns the session lifecycle: creation on login, verification
// on each request, destruction on logout or expiry. Sessions are stored by
// token hash; the raw token exists only in the client's hands.
type SessionManager struct {
	config  SessionConfig
	storage SessionStore
	cache   Cache // optional, can be nil if caching is disabled
	nanoid  *crypto.NanoIDGenerator
}

type CreateSessionResult struct {
	Session *Session `json:"session"`
	Token   string   `json:"token"`
}

func NewSessionManager(config SessionConfig, storage SessionStore, cache Cache) *SessionManager {
	nanoid, _ := crypto.NewNanoID()
	return &SessionManager{config: config, storage: storage, cache: cache, nanoid: nanoid}
}

// MaxAge returns the configured session lifetime.
func (sm *SessionManager) MaxAge() time.Duration {
	return sm.config.MaxAge
}

func (sm *SessionManager) Create(ctx context.Context, userID, ip, userAgent string) (*CreateSessionResult, error) {
	// Generate cryptographic material
	pair, err := crypto.GenerateHashedToken()
	if err != nil {
		return nil, err
	}

	sessionID, err := sm.nanoid.Generate()
	if err != nil {
		return nil, err
	}

	// Create session with timestamps and expiry
	now := time.Now()
	session := &Session{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: pair.Hash,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(sm.config.MaxAge),
	}

	// Persist session
	if err := sm.storage.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	// Cache session if caching is enabled (cache is non-nil)
	if sm.cache != nil {
		// We don't fail the request if caching fails
		_ = sm.cache.Set(pair.Hash, session)
	}

	return &CreateSessionResult{Session: session, Token: pair.Token}, nil
}

func (sm *SessionManager) Verify(ctx context.Context, token string) (*Session, error) {
	// Validate input
	if token == "" {
		return nil, ErrInvalidToken
	}

	tokenHash := crypto.HashToken(token)

	// Try cache first if caching is enabled
	if sm.cache != nil {
		if session, err := sm.cache.Get(tokenHash); err == nil && session != nil {
			// Cache hit - validate expiry
			if time.Now().After(session.ExpiresAt) {
				// Remove expired session from cache
				_ = sm.cache.Delete(tokenHash)
				return nil, ErrSessionExpired
			}
			return session, nil
		}
		// Cache miss - fall through to storage
	}

	session, err := sm.storage.GetSessionByHash(ctx, tokenHash)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	valid, err := crypto.VerifyToken(token, session.TokenHash)
	if err != nil || !valid {
		return nil, ErrInvalidToken
	}

	if time.Now().After(session.ExpiresAt) {
		// Expired sessions are inert; clean up eagerly.
		_ = sm.storage.DeleteSessionByHash(ctx, tokenHash)
		return nil, ErrSessionExpired
	}

	if sm.cache != nil {
		_ = sm.cache.Set(tokenHash, session)
	}

	return session, nil
}

func (sm *SessionManager) Destroy(ctx context.Context, token string) error {
	tokenHash := crypto.HashToken(token)

	// Invalidate cache if available
	if sm.cache != nil {
		_ = sm.cache.Delete(tokenHash)
	}

	return sm.storage.DeleteSessionByHash(ctx, tokenHash)
}

func (sm *SessionManager) DestroyAllUserSessions(ctx context.Context, userID string) (int, error) {
	if sm.cache != nil {
		_ = sm.cache.Clear()
	}

	return sm.storage.DeleteUserSessions(ctx, userID)
}

// PurgeExpired removes expired sessions from storage. Intended for periodic
// housekeeping by the embedding application.
func (sm *SessionManager) PurgeExpired(ctx context.Context) (int, error) {
	return sm.storage.DeleteExpiredSessions(ctx)
}
