package core

import (
	"fmt"
	"time"

	"github.com/shopauth/shopauth/pkg/crypto"
)

type Config struct {
	Store AuthStorage
	Mail  MailSender
	HTTP  HTTPAdapter

	// Optional config
	CacheAdapter   Cache
	DisableCache   bool
	SessionConfig  *SessionConfig
	PasswordHasher crypto.PasswordHandler
	Verifier       CredentialVerifier
	BasePath       string
	AppName        string
	ResetURLBase   string
	ResetTokenTTL  time.Duration
}

// Auth is the authentication core. It owns registration, credential
// verification, the password-reset token lifecycle, and the like toggle,
// and calls out to its collaborators for persistence and mail delivery.
type Auth struct {
	Store    AuthStorage
	Mail     MailSender
	Sessions *SessionManager
	Hasher   crypto.PasswordHandler
	Verifier CredentialVerifier
	Flash    *FlashStore

	BasePath     string
	AppName      string
	ResetURLBase string
	ResetTTL     time.Duration
}

// Ensure Auth implements AuthHandler
var _ AuthHandler = (*Auth)(nil)

// AddFlash records a transient message for the given scope (a session or
// visitor id). It is read once via TakeFlash.
func (a *Auth) AddFlash(scope string, kind FlashKind, text string) {
	a.Flash.Add(scope, kind, text)
}

// TakeFlash returns and clears the pending messages for the given scope.
func (a *Auth) TakeFlash(scope string) []FlashMessage {
	return a.Flash.Take(scope)
}

// dependencyFailure wraps an infrastructure error so callers can match
// ErrDependencyUnavailable with errors.Is while keeping the cause.
func dependencyFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDependencyUnavailable, err)
}
