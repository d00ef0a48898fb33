package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopauth/shopauth/pkg/crypto"
)

// testHasher returns argon2id with deliberately low cost parameters so the
// suite stays fast. Production defaults live in crypto.NewArgon2.
func testHasher() *crypto.Argon2 {
	return &crypto.Argon2{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func newTestAuth(store *FakeStore, mail *FakeMailSender) *Auth {
	hasher := testHasher()
	return &Auth{
		Store:        store,
		Mail:         mail,
		Sessions:     NewSessionManager(SessionConfig{MaxAge: 24 * time.Hour}, store, nil),
		Hasher:       hasher,
		Verifier:     NewLocalVerifier(store, hasher),
		Flash:        NewFlashStore(),
		AppName:      "Shopiko",
		ResetURLBase: "http://localhost:3000/reset-password",
		ResetTTL:     time.Hour,
	}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123",
		Role:     RoleBuyer,
		Gender:   "female",
	}
}

// Requirement: Register requires all five fields and rejects malformed values
// with the matching validation error.
func TestAuth_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{
			name:    "missing username",
			mutate:  func(in *RegisterInput) { in.Username = "" },
			wantErr: ErrUsernameRequired,
		},
		{
			name:    "missing email",
			mutate:  func(in *RegisterInput) { in.Email = "" },
			wantErr: ErrEmailRequired,
		},
		{
			name:    "missing password",
			mutate:  func(in *RegisterInput) { in.Password = "" },
			wantErr: ErrPasswordRequired,
		},
		{
			name:    "missing role",
			mutate:  func(in *RegisterInput) { in.Role = "" },
			wantErr: ErrRoleRequired,
		},
		{
			name:    "missing gender",
			mutate:  func(in *RegisterInput) { in.Gender = "" },
			wantErr: ErrGenderRequired,
		},
		{
			name:    "malformed email",
			mutate:  func(in *RegisterInput) { in.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "unknown role",
			mutate:  func(in *RegisterInput) { in.Role = "superuser" },
			wantErr: ErrInvalidRole,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			auth := newTestAuth(NewFakeStore(), NewFakeMailSender())

			input := validRegisterInput()
			test.mutate(&input)

			_, err := auth.Register(context.Background(), input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

// Requirement: A valid registration succeeds exactly once; repeats fail with
// the specific duplicate error and the password is never stored in plaintext.
func TestAuth_Register(t *testing.T) {
	store := NewFakeStore()
	auth := newTestAuth(store, NewFakeMailSender())
	ctx := context.Background()

	user, err := auth.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.ID == "" {
		t.Error("Register() should assign a user ID")
	}
	if user.Password == "Secret123" {
		t.Error("Register() must not store the plaintext password")
	}
	if ok, _ := auth.Hasher.Verify("Secret123", user.Password); !ok {
		t.Error("stored hash should verify against the original password")
	}

	// Same username, different email
	dup := validRegisterInput()
	dup.Email = "alice2@example.com"
	if _, err := auth.Register(ctx, dup); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Register() with taken username error = %v, want ErrDuplicateUsername", err)
	}

	// Same email, different username
	dup = validRegisterInput()
	dup.Username = "alice2"
	if _, err := auth.Register(ctx, dup); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Register() with taken email error = %v, want ErrDuplicateEmail", err)
	}
}

// Requirement: Registration does not auto-login; no session exists until the
// user signs in.
func TestAuth_Register_NoAutoLogin(t *testing.T) {
	store := NewFakeStore()
	auth := newTestAuth(store, NewFakeMailSender())

	user, err := auth.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got := store.SessionCount(user.ID); got != 0 {
		t.Errorf("sessions after registration = %d, want 0", got)
	}
}

// Requirement: Infrastructure failures surface as ErrDependencyUnavailable,
// never as a validation or duplicate error.
func TestAuth_Register_StoreDown(t *testing.T) {
	store := NewFakeStore()
	store.InsertErr = errors.New("connection refused")
	auth := newTestAuth(store, NewFakeMailSender())

	_, err := auth.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("Register() error = %v, want ErrDependencyUnavailable", err)
	}
}
