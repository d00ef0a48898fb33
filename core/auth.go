package core

import (
	"context"
	"errors"
)

// SignInInput contains the credentials for authentication
type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResult contains the authenticated user and their session
type SignInResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
	Token   string   `json:"token"` // The raw token (not the hash)
}

// SignIn authenticates a user and binds their identity into a new session.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller - both fail with ErrInvalidCredentials.
func (a *Auth) SignIn(ctx context.Context, input SignInInput, ipAddress, userAgent string) (*SignInResult, error) {
	// Step 1: Verify the credentials through the configured verifier
	user, err := a.Verifier.Verify(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	// Step 2: Create a new session
	sessionResult, err := a.Sessions.Create(ctx, user.ID, ipAddress, userAgent)
	if err != nil {
		return nil, dependencyFailure("failed to create session", err)
	}

	return &SignInResult{
		User:    user,
		Session: sessionResult.Session,
		Token:   sessionResult.Token,
	}, nil
}

// SignOut invalidates the current session. It is idempotent: signing out
// with an unknown or already-invalidated token succeeds.
func (a *Auth) SignOut(ctx context.Context, token string) error {
	err := a.Sessions.Destroy(ctx, token)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return dependencyFailure("failed to delete session", err)
	}
	return nil
}

// GetSession retrieves session data by token
func (a *Auth) GetSession(ctx context.Context, token string) (*SessionData, error) {
	session, err := a.Sessions.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := a.Store.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Session references a deleted user; treat as not signed in.
			return nil, ErrInvalidToken
		}
		return nil, dependencyFailure("failed to get user", err)
	}

	return &SessionData{
		User:    user,
		Session: session,
	}, nil
}

// ChangePassword updates the password of the signed-in user after checking
// the current one. All other sessions stay valid; only a reset revokes them.
func (a *Auth) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}

	data, err := a.GetSession(ctx, token)
	if err != nil {
		return ErrUnauthenticated
	}

	valid, err := a.Hasher.Verify(currentPassword, data.User.Password)
	if err != nil || !valid {
		return ErrInvalidCredentials
	}

	hashed, err := a.Hasher.Hash(newPassword)
	if err != nil {
		return dependencyFailure("failed to hash password", err)
	}

	if err := a.Store.UpdatePassword(ctx, data.User.ID, hashed); err != nil {
		return dependencyFailure("failed to update password", err)
	}

	return nil
}
