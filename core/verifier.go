package core

import (
	"context"
	"errors"

	"github.com/shopauth/shopauth/pkg/crypto"
)

// CredentialVerifier resolves a username/password pair to a user. The two
// variants - local credentials and an upstream identity provider - are
// selected by configuration, not by a runtime strategy lookup.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*User, error)
}

// LocalVerifier checks credentials against the credential store.
type LocalVerifier struct {
	Store  CredentialStore
	Hasher crypto.PasswordHandler
}

var _ CredentialVerifier = (*LocalVerifier)(nil)

func NewLocalVerifier(store CredentialStore, hasher crypto.PasswordHandler) *LocalVerifier {
	return &LocalVerifier{Store: store, Hasher: hasher}
}

func (v *LocalVerifier) Verify(ctx context.Context, username, password string) (*User, error) {
	user, err := v.Store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Same error as a hash mismatch so callers cannot tell which
			// field was wrong.
			return nil, ErrInvalidCredentials
		}
		return nil, dependencyFailure("failed to find user", err)
	}

	valid, err := v.Hasher.Verify(password, user.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ExternalProviderVerifier trusts an identity already established upstream
// (SSO or forward auth). The password argument is ignored; the username is
// the provider-asserted identity, conventionally an email address. Unknown
// identities are auto-provisioned with an unusable credential.
type ExternalProviderVerifier struct {
	Store CredentialStore

	// DefaultRole is assigned to auto-provisioned users. Defaults to buyer.
	DefaultRole Role
}

var _ CredentialVerifier = (*ExternalProviderVerifier)(nil)

func NewExternalProviderVerifier(store CredentialStore) *ExternalProviderVerifier {
	return &ExternalProviderVerifier{Store: store, DefaultRole: RoleBuyer}
}

func (v *ExternalProviderVerifier) Verify(ctx context.Context, username, _ string) (*User, error) {
	if username == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := v.Store.FindByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, dependencyFailure("failed to find user", err)
	}

	role := v.DefaultRole
	if role == "" {
		role = RoleBuyer
	}

	user = &User{
		Username: username,
		Email:    username,
		Password: "", // no local credential; the provider owns authentication
		Role:     role,
	}

	if err := v.Store.Insert(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUsername) || errors.Is(err, ErrDuplicateEmail) {
			// Lost a provisioning race; the row exists now.
			user, err = v.Store.FindByUsername(ctx, username)
			if err != nil {
				return nil, dependencyFailure("failed to find user", err)
			}
			return user, nil
		}
		return nil, dependencyFailure("failed to create user", err)
	}

	return user, nil
}
