package core

import (
	"context"
	"errors"
	"time"

	"github.com/shopauth/shopauth/pkg/crypto"
)

// Reset token configuration.
const (
	// ResetTokenBytes is the entropy of generated reset tokens.
	ResetTokenBytes = 32

	// DefaultResetTokenTTL bounds how long a reset link stays usable.
	DefaultResetTokenTTL = time.Hour
)

// RequestReset starts the password-reset flow for the account registered
// under the given email. The outcome is identical whether or not the email
// exists, so the endpoint cannot be used to enumerate accounts. When the
// account does exist, a fresh token replaces any earlier unconsumed one and
// a reset link is mailed out.
func (a *Auth) RequestReset(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmailRequired
	}

	// Step 1: Look up the account. Unknown emails take the success path.
	user, err := a.Store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return dependencyFailure("failed to find user", err)
	}

	// Step 2: Generate the token. Only its hash is persisted; the raw value
	// goes into the mailed link and is otherwise forgotten.
	pair, err := crypto.GenerateHashedToken(ResetTokenBytes)
	if err != nil {
		return dependencyFailure("failed to generate token", err)
	}

	// Step 3: Persist, overwriting any prior token. A later request always
	// supersedes an earlier one.
	expires := time.Now().Add(a.ResetTTL)
	if err := a.Store.SetResetToken(ctx, user.ID, pair.Hash, expires); err != nil {
		return dependencyFailure("failed to store reset token", err)
	}

	// Step 4: Mail the link. A stored token with a failed send is harmless -
	// requesting again reissues.
	resetURL := a.ResetURLBase + "/" + pair.Token
	body := resetMailBody(a.AppName, user.Email, resetURL)
	if err := a.Mail.Send(ctx, user.Email, resetMailSubject(a.AppName), body); err != nil {
		return dependencyFailure("failed to send reset email", err)
	}

	return nil
}

// ValidateResetToken resolves a raw reset token to its user. It fails with
// ErrInvalidOrExpiredToken for unknown, replaced, consumed, or expired
// tokens - the four cases are indistinguishable.
func (a *Auth) ValidateResetToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrInvalidOrExpiredToken
	}

	tokenHash := crypto.HashToken(token)

	user, err := a.Store.FindByResetToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, dependencyFailure("failed to find reset token", err)
	}

	if !user.HasActiveResetToken(time.Now()) {
		return nil, ErrInvalidOrExpiredToken
	}

	return user, nil
}

// CompleteReset consumes a reset token and installs the new password. The
// token is re-validated here to guard against expiry between the form being
// shown and submitted, and the conditional consume in the store decides the
// winner when two completions race - the loser gets
// ErrInvalidOrExpiredToken.
func (a *Auth) CompleteReset(ctx context.Context, token, newPassword, confirmPassword string) error {
	// Step 1: Check the two password fields agree and are usable.
	if newPassword == "" {
		return ErrPasswordRequired
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	// Step 2: Re-validate the token.
	user, err := a.ValidateResetToken(ctx, token)
	if err != nil {
		return err
	}

	// Step 3: Hash the new password before touching stored state.
	hashed, err := a.Hasher.Hash(newPassword)
	if err != nil {
		return dependencyFailure("failed to hash password", err)
	}

	// Step 4: Consume the token and set the password in one conditional
	// write. This is the linearization point.
	tokenHash := crypto.HashToken(token)
	consumed, err := a.Store.ConsumeResetToken(ctx, user.ID, tokenHash, hashed)
	if err != nil {
		return dependencyFailure("failed to consume reset token", err)
	}
	if !consumed {
		return ErrInvalidOrExpiredToken
	}

	// Step 5: Revoke every open session; the credential just changed.
	_, _ = a.Sessions.DestroyAllUserSessions(ctx, user.ID)

	// Step 6: Confirmation mail is advisory. The reset already committed,
	// so a send failure is not surfaced as a reset failure.
	body := confirmMailBody(a.AppName, user.Username, user.Email)
	_ = a.Mail.Send(ctx, user.Email, confirmMailSubject(a.AppName), body)

	return nil
}
