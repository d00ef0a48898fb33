package core

import "time"

// Role classifies what a user is allowed to do in the storefront.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User represents a customer account in the storefront.
//
// This is the "identity" - who someone is
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"` // Hashed. Never expose in JSON
	Role     Role   `json:"role"`
	Gender   string `json:"gender,omitempty"`

	// Reset token material. Both fields are set together on a
	// forgot-password request and cleared together when the token is
	// consumed. The raw token is never stored, only its hash.
	ResetTokenHash    *string    `json:"-"`
	ResetTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasActiveResetToken reports whether the user holds a reset token that is
// still usable at the given instant. An expired token counts as absent.
func (u *User) HasActiveResetToken(now time.Time) bool {
	return u.ResetTokenHash != nil &&
		u.ResetTokenExpires != nil &&
		now.Before(*u.ResetTokenExpires)
}

// Session represents an active login session
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TokenHash string    `json:"-"` // Never expose in JSON (security!)
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionData combines user and session info
// The model returned to clients
type SessionData struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

// Like is the join record between a user and a product they marked as a
// favorite. Presence of the row means "liked".
type Like struct {
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}
