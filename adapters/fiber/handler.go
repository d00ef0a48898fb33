package fiber

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/shopauth/shopauth"
	"github.com/shopauth/shopauth/pkg/crypto"
)

const (
	authCookie  = "auth_token"
	flashCookie = "flash_id"
)

// register handles the sign-up endpoint. Registration never signs the user
// in; the response and flash both prompt for login.
func (a *Adapter) register(c fiber.Ctx) error {
	var input shopauth.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "invalid request body",
		})
	}

	user, err := a.handler.Register(c.Context(), input)
	if err != nil {
		return handleAuthError(c, err)
	}

	a.handler.AddFlash(a.flashScope(c), shopauth.FlashSuccess, "Registration successful! Please login.")

	return c.Status(http.StatusCreated).JSON(user)
}

// login handles the sign-in endpoint and binds the session token into an
// HTTP-only cookie alongside the JSON response.
func (a *Adapter) login(c fiber.Ctx) error {
	var input shopauth.SignInInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "invalid request body",
		})
	}

	ipAddress := c.IP()
	userAgent := c.Get(fiber.HeaderUserAgent)

	result, err := a.handler.SignIn(c.Context(), input, ipAddress, userAgent)
	if err != nil {
		return handleAuthError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    result.Token,
		Expires:  time.Now().Add(a.ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	a.handler.AddFlash(result.Session.ID, shopauth.FlashSuccess, "Welcome Back "+result.User.Username)

	return c.Status(http.StatusOK).JSON(result)
}

func (a *Adapter) logout(c fiber.Ctx) error {
	token := extractToken(c)
	if err := a.handler.SignOut(c.Context(), token); err != nil {
		return handleAuthError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Status(http.StatusOK).JSON(map[string]string{
		"message": "logged out successfully",
	})
}

// session returns the signed-in user plus any pending flash messages for
// that session (read once, then gone).
func (a *Adapter) session(c fiber.Ctx) error {
	data, ok := c.Locals("sessionData").(*shopauth.SessionData)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(map[string]string{
			"error": shopauth.ErrUnauthenticated.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(map[string]any{
		"user":    data.User,
		"session": data.Session,
		"flash":   a.handler.TakeFlash(data.Session.ID),
	})
}

func (a *Adapter) changePassword(c fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "invalid request body",
		})
	}

	token := extractToken(c)
	if err := a.handler.ChangePassword(c.Context(), token, input.CurrentPassword, input.NewPassword); err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(map[string]string{
		"message": "password updated",
	})
}

// forgotPassword responds identically whether or not the email exists, so
// the endpoint cannot confirm which addresses have accounts.
func (a *Adapter) forgotPassword(c fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "invalid request body",
		})
	}

	if err := a.handler.RequestReset(c.Context(), input.Email); err != nil {
		return handleAuthError(c, err)
	}

	a.handler.AddFlash(a.flashScope(c), shopauth.FlashSuccess,
		"An email has been sent with further instructions.")

	return c.Status(http.StatusOK).JSON(map[string]string{
		"message": "If an account with that email exists, a reset link has been sent.",
	})
}

// showReset validates the token behind a reset link before the client
// renders the new-password form.
func (a *Adapter) showReset(c fiber.Ctx) error {
	if _, err := a.handler.ValidateResetToken(c.Context(), c.Params("token")); err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(map[string]string{
		"token": c.Params("token"),
	})
}

func (a *Adapter) completeReset(c fiber.Ctx) error {
	var input struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "invalid request body",
		})
	}

	err := a.handler.CompleteReset(c.Context(), c.Params("token"), input.Password, input.ConfirmPassword)
	if err != nil {
		return handleAuthError(c, err)
	}

	a.handler.AddFlash(a.flashScope(c), shopauth.FlashSuccess,
		"Success! Your password has been changed. Please login with your new password.")

	return c.Status(http.StatusOK).JSON(map[string]string{
		"message": "password has been reset",
	})
}

func (a *Adapter) toggleLike(c fiber.Ctx) error {
	token := extractToken(c)

	liked, err := a.handler.ToggleLike(c.Context(), token, c.Params("id"))
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(map[string]bool{
		"liked": liked,
	})
}

// flash drains pending messages for the anonymous visitor scope. Signed-in
// flows read theirs from the session endpoint instead.
func (a *Adapter) flash(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(map[string]any{
		"flash": a.handler.TakeFlash(a.flashScope(c)),
	})
}

// flashScope returns the visitor's flash scope, minting a cookie for
// first-time visitors so anonymous flows (register, reset) can carry a
// message to the next request.
func (a *Adapter) flashScope(c fiber.Ctx) string {
	if id := c.Cookies(flashCookie); id != "" {
		return id
	}

	nanoid, err := crypto.NewNanoID()
	if err != nil {
		return ""
	}
	id, err := nanoid.Generate()
	if err != nil {
		return ""
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    id,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return id
}

// extractToken extracts the authentication token from the request.
// Checks Authorization header (Bearer token) first, then falls back to cookie.
func extractToken(c fiber.Ctx) string {
	// Try Bearer token first
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}

	// Fall back to cookie
	return c.Cookies(authCookie)
}

// handleAuthError maps authentication errors to appropriate HTTP responses
func handleAuthError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	return c.Status(status).JSON(map[string]string{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps shopauth error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, shopauth.ErrInvalidCredentials),
		errors.Is(err, shopauth.ErrUnauthenticated),
		errors.Is(err, shopauth.ErrInvalidToken),
		errors.Is(err, shopauth.ErrSessionNotFound),
		errors.Is(err, shopauth.ErrSessionExpired),
		errors.Is(err, shopauth.ErrInvalidOrExpiredToken):
		return http.StatusUnauthorized

	case errors.Is(err, shopauth.ErrDuplicateUsername),
		errors.Is(err, shopauth.ErrDuplicateEmail):
		return http.StatusConflict

	case errors.Is(err, shopauth.ErrUsernameRequired),
		errors.Is(err, shopauth.ErrEmailRequired),
		errors.Is(err, shopauth.ErrPasswordRequired),
		errors.Is(err, shopauth.ErrRoleRequired),
		errors.Is(err, shopauth.ErrGenderRequired),
		errors.Is(err, shopauth.ErrInvalidEmail),
		errors.Is(err, shopauth.ErrInvalidRole),
		errors.Is(err, shopauth.ErrPasswordMismatch):
		return http.StatusBadRequest

	case errors.Is(err, shopauth.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
