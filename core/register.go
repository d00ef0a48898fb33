package core

import (
	"context"
	"errors"
	"net/mail"
)

// RegisterInput contains the data needed to register a new user
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Gender   string `json:"gender"`
}

// Register creates a new user account. All five fields are required; the
// password is hashed before anything is persisted. The caller is expected
// to prompt for login afterwards - registration never creates a session.
func (a *Auth) Register(ctx context.Context, input RegisterInput) (*User, error) {
	// Step 1: Validate required fields
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	// Step 2: Hash the password
	hashedPassword, err := a.Hasher.Hash(input.Password)
	if err != nil {
		return nil, dependencyFailure("failed to hash password", err)
	}

	// Step 3: Insert the user. The store enforces uniqueness and maps its
	// collision signal to the specific duplicate error.
	user := &User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     input.Role,
		Gender:   input.Gender,
	}

	if err := a.Store.Insert(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUsername) || errors.Is(err, ErrDuplicateEmail) {
			return nil, err
		}
		return nil, dependencyFailure("failed to create user", err)
	}

	return user, nil
}

func validateRegisterInput(input RegisterInput) error {
	if input.Username == "" {
		return ErrUsernameRequired
	}
	if input.Email == "" {
		return ErrEmailRequired
	}
	if input.Password == "" {
		return ErrPasswordRequired
	}
	if input.Role == "" {
		return ErrRoleRequired
	}
	if input.Gender == "" {
		return ErrGenderRequired
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return ErrInvalidEmail
	}
	if !input.Role.Valid() {
		return ErrInvalidRole
	}

	return nil
}
