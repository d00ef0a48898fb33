package core

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// FakeStore is a test-only in-memory implementation of AuthStorage. It
// mirrors the store contract closely enough for concurrency tests: every
// operation holds the mutex, so ConsumeResetToken is a real compare-and-swap.
// Error fields allow behavior injection.
type FakeStore struct {
	mu       sync.Mutex
	users    map[string]*User    // by ID
	sessions map[string]*Session // by token hash
	likes    map[string]bool     // userID + "|" + productID
	nextID   int

	InsertErr  error
	FindErr    error
	UpdateErr  error
	ConsumeErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		users:    make(map[string]*User),
		sessions: make(map[string]*Session),
		likes:    make(map[string]bool),
	}
}

func (f *FakeStore) Insert(ctx context.Context, u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.InsertErr != nil {
		return f.InsertErr
	}

	for _, existing := range f.users {
		if existing.Username == u.Username {
			return ErrDuplicateUsername
		}
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}

	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return nil
}

func (f *FakeStore) FindByID(ctx context.Context, id string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *FakeStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *FakeStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *FakeStore) FindByResetToken(ctx context.Context, tokenHash string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	for _, u := range f.users {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *FakeStore) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	u, ok := f.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Password = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

func (f *FakeStore) SetResetToken(ctx context.Context, userID, tokenHash string, expires time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	u, ok := f.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	hash := tokenHash
	exp := expires
	u.ResetTokenHash = &hash
	u.ResetTokenExpires = &exp
	u.UpdatedAt = time.Now()
	return nil
}

func (f *FakeStore) ConsumeResetToken(ctx context.Context, userID, tokenHash, passwordHash string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ConsumeErr != nil {
		return false, f.ConsumeErr
	}
	u, ok := f.users[userID]
	if !ok {
		return false, nil
	}
	if u.ResetTokenHash == nil || *u.ResetTokenHash != tokenHash {
		return false, nil
	}
	if u.ResetTokenExpires == nil || !time.Now().Before(*u.ResetTokenExpires) {
		return false, nil
	}
	u.Password = passwordHash
	u.ResetTokenHash = nil
	u.ResetTokenExpires = nil
	u.UpdatedAt = time.Now()
	return true, nil
}

// SeedUser inserts a user directly, bypassing validation. For test setup.
func (f *FakeStore) SeedUser(u *User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		f.nextID++
		u.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users[u.ID] = u
}

// SessionStore methods

func (f *FakeStore) CreateSession(ctx context.Context, s *Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.TokenHash] = s
	return nil
}

func (f *FakeStore) GetSessionByHash(ctx context.Context, tokenHash string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (f *FakeStore) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, tokenHash)
	return nil
}

func (f *FakeStore) DeleteUserSessions(ctx context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for k, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, k)
			count++
		}
	}
	return count, nil
}

func (f *FakeStore) DeleteExpiredSessions(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	count := 0
	for k, s := range f.sessions {
		if now.After(s.ExpiresAt) {
			delete(f.sessions, k)
			count++
		}
	}
	return count, nil
}

// SessionCount reports live sessions for a user. For test assertions.
func (f *FakeStore) SessionCount(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, s := range f.sessions {
		if s.UserID == userID {
			count++
		}
	}
	return count
}

// LikeStore methods

func (f *FakeStore) AddLike(ctx context.Context, userID, productID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userID + "|" + productID
	if f.likes[key] {
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}

func (f *FakeStore) RemoveLike(ctx context.Context, userID, productID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userID + "|" + productID
	if !f.likes[key] {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

// Liked reports the current relation state. For test assertions.
func (f *FakeStore) Liked(userID, productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[userID+"|"+productID]
}

// Ensure FakeStore implements AuthStorage
var _ AuthStorage = (*FakeStore)(nil)

// SentMail records one delivery made through FakeMailSender.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// FakeMailSender is a test-only MailSender that records deliveries.
type FakeMailSender struct {
	mu      sync.Mutex
	sent    []SentMail
	SendErr error
}

func NewFakeMailSender() *FakeMailSender {
	return &FakeMailSender{}
}

func (f *FakeMailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return f.SendErr
	}
	f.sent = append(f.sent, SentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// Sent returns a copy of the deliveries made so far.
func (f *FakeMailSender) Sent() []SentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentMail, len(f.sent))
	copy(out, f.sent)
	return out
}

var _ MailSender = (*FakeMailSender)(nil)
