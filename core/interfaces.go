package core

import (
	"context"
	"time"
)

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORTS (Database operations)
// ============================================

// CredentialStore persists user identity and credential material. It is the
// single source of truth for users and their reset-token state.
type CredentialStore interface {
	// Insert stores a new user and fills in store-assigned fields (ID,
	// timestamps). Unique collisions surface as ErrDuplicateUsername or
	// ErrDuplicateEmail.
	Insert(ctx context.Context, u *User) error

	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByResetToken looks a user up by the hash of a reset token.
	FindByResetToken(ctx context.Context, tokenHash string) (*User, error)

	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// SetResetToken stores a new reset token hash and expiry on the user,
	// replacing any previous token.
	SetResetToken(ctx context.Context, userID, tokenHash string, expires time.Time) error

	// ConsumeResetToken atomically sets the password and clears the reset
	// token, but only while the stored token hash still matches and is
	// unexpired. It reports false when the token was already consumed,
	// replaced, or expired. This conditional write is the linearization
	// point for concurrent reset completions: exactly one caller wins.
	ConsumeResetToken(ctx context.Context, userID, tokenHash, passwordHash string) (bool, error)
}

// SessionStore defines session-related database operations
type SessionStore interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSessionByHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteSessionByHash(ctx context.Context, tokenHash string) error
	DeleteUserSessions(ctx context.Context, userID string) (int, error)
	DeleteExpiredSessions(ctx context.Context) (int, error)
}

// LikeStore persists the user/product favorite relation. Both operations
// must be atomic so concurrent toggles converge instead of half-applying.
type LikeStore interface {
	// AddLike creates the relation. Reports false when it already existed.
	AddLike(ctx context.Context, userID, productID string) (bool, error)
	// RemoveLike deletes the relation. Reports false when it was absent.
	RemoveLike(ctx context.Context, userID, productID string) (bool, error)
}

// AuthStorage combines every storage port a full deployment needs.
type AuthStorage interface {
	CredentialStore
	SessionStore
	LikeStore
}

// ============================================
// MAIL PORT
// ============================================

// MailSender delivers transactional email (reset links, confirmations).
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ============================================
// CACHE PORT
// ============================================

// Cache defines session caching operations
type Cache interface {
	Get(tokenHash string) (*Session, error)
	Set(tokenHash string, session *Session) error
	Delete(tokenHash string) error
	Clear() error
}

// CacheWithStats extends Cache with statistics tracking
type CacheWithStats interface {
	Cache
	Stats() CacheStats
}

// CacheConfig configures cache behavior
type CacheConfig struct {
	TTL     time.Duration
	MaxSize int
}

// CacheStats tracks cache performance metrics
type CacheStats struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Sets      int64         `json:"sets"`
	Deletes   int64         `json:"deletes"`
	Evictions int64         `json:"evictions"`
	Size      int           `json:"size"`
	TTL       time.Duration `json:"ttl"`
}

// ============================================
// AUTH HANDLER (for HTTP adapters)
// ============================================

// AuthHandler provides the authentication operations HTTP adapters expose.
// Every method returns typed sentinel errors so adapters can map each kind
// to a status code without parsing message text.
type AuthHandler interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	SignIn(ctx context.Context, input SignInInput, ipAddress, userAgent string) (*SignInResult, error)
	SignOut(ctx context.Context, token string) error
	GetSession(ctx context.Context, token string) (*SessionData, error)
	ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error

	RequestReset(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) (*User, error)
	CompleteReset(ctx context.Context, token, newPassword, confirmPassword string) error

	ToggleLike(ctx context.Context, token, productID string) (bool, error)

	AddFlash(scope string, kind FlashKind, text string)
	TakeFlash(scope string) []FlashMessage
}

// ============================================
// HTTP PORT
// ============================================

type HTTPAdapter interface {
	RegisterRoutes(handler AuthHandler, basePath string, sessionTTL time.Duration) error
}
