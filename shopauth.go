// Package shopauth is a storefront authentication kit: registration, login
// sessions, password reset by mailed token, and the product-like toggle,
// built as a framework-agnostic core with pluggable storage, HTTP, and mail
// adapters.
package shopauth

import (
	"time"

	"github.com/shopauth/shopauth/core"
	"github.com/shopauth/shopauth/pkg/cache"
	"github.com/shopauth/shopauth/pkg/crypto"
)

// interfaces
type (
	AuthStorage     = core.AuthStorage
	CredentialStore = core.CredentialStore
	SessionStore    = core.SessionStore
	LikeStore       = core.LikeStore
	MailSender      = core.MailSender
	Cache           = core.Cache

	AuthHandler = core.AuthHandler
	HTTPAdapter = core.HTTPAdapter

	CredentialVerifier = core.CredentialVerifier

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Auth          = core.Auth
	Config        = core.Config
	SessionConfig = core.SessionConfig
	CacheConfig   = core.CacheConfig

	RegisterInput = core.RegisterInput
	SignInInput   = core.SignInInput
	SignInResult  = core.SignInResult
)

type (
	User         = core.User
	Role         = core.Role
	Session      = core.Session
	SessionData  = core.SessionData
	Like         = core.Like
	FlashMessage = core.FlashMessage
	FlashKind    = core.FlashKind
	CacheStats   = core.CacheStats
)

const (
	RoleBuyer  = core.RoleBuyer
	RoleSeller = core.RoleSeller
	RoleAdmin  = core.RoleAdmin

	FlashSuccess = core.FlashSuccess
	FlashError   = core.FlashError
)

const (
	defaultBasePath     = "/api/auth"
	defaultAppName      = "Storefront"
	defaultResetURLBase = "http://localhost:3000/reset-password"
)

// Constructors & helpers (convenience re-exports)
var (
	NewInMemoryCache            = cache.NewInMemoryCache
	NewArgon2                   = crypto.NewArgon2
	DefaultSessionConfig        = core.DefaultSessionConfig
	NewLocalVerifier            = core.NewLocalVerifier
	NewExternalProviderVerifier = core.NewExternalProviderVerifier
)

var (
	ErrDuplicateUsername  = core.ErrDuplicateUsername
	ErrDuplicateEmail     = core.ErrDuplicateEmail
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrUnauthenticated    = core.ErrUnauthenticated
)

var (
	ErrMissingAuthHeader = core.ErrMissingAuthHeader
	ErrInvalidToken      = core.ErrInvalidToken
	ErrSessionNotFound   = core.ErrSessionNotFound
	ErrSessionExpired    = core.ErrSessionExpired
	ErrCacheNotFound     = core.ErrCacheNotFound
)

var (
	ErrInvalidOrExpiredToken = core.ErrInvalidOrExpiredToken
	ErrPasswordMismatch      = core.ErrPasswordMismatch
)

var (
	ErrInvalidAuthHeader = core.ErrInvalidAuthHeader
	ErrUsernameRequired  = core.ErrUsernameRequired
	ErrEmailRequired     = core.ErrEmailRequired
	ErrPasswordRequired  = core.ErrPasswordRequired
	ErrRoleRequired      = core.ErrRoleRequired
	ErrGenderRequired    = core.ErrGenderRequired
	ErrInvalidEmail      = core.ErrInvalidEmail
	ErrInvalidRole       = core.ErrInvalidRole
)

var (
	ErrDependencyUnavailable = core.ErrDependencyUnavailable
)

var (
	ErrStoreRequired       = core.ErrStoreRequired
	ErrMailSenderRequired  = core.ErrMailSenderRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
)

// New wires the auth core from config, filling in defaults for everything
// optional, and hands the configured routes to the HTTP adapter.
func New(config Config) (*Auth, error) {
	if config.Store == nil {
		return nil, ErrStoreRequired
	}
	if config.Mail == nil {
		return nil, ErrMailSenderRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	cacheAdapter := config.CacheAdapter
	if cacheAdapter == nil && !config.DisableCache {
		cacheAdapter = NewInMemoryCache(CacheConfig{
			TTL:     5 * time.Minute,
			MaxSize: 500,
		})
	}

	sessionConfig := config.SessionConfig
	if sessionConfig == nil {
		defaults := DefaultSessionConfig()
		sessionConfig = &defaults
	}

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	verifier := config.Verifier
	if verifier == nil {
		verifier = NewLocalVerifier(config.Store, passwordHasher)
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	appName := config.AppName
	if appName == "" {
		appName = defaultAppName
	}

	resetURLBase := config.ResetURLBase
	if resetURLBase == "" {
		resetURLBase = defaultResetURLBase
	}

	resetTTL := config.ResetTokenTTL
	if resetTTL == 0 {
		resetTTL = core.DefaultResetTokenTTL
	}

	sessionManager := core.NewSessionManager(
		*sessionConfig,
		config.Store,
		cacheAdapter,
	)

	auth := &Auth{
		Store:        config.Store,
		Mail:         config.Mail,
		Sessions:     sessionManager,
		Hasher:       passwordHasher,
		Verifier:     verifier,
		Flash:        core.NewFlashStore(),
		BasePath:     basePath,
		AppName:      appName,
		ResetURLBase: resetURLBase,
		ResetTTL:     resetTTL,
	}

	if err := config.HTTP.RegisterRoutes(auth, basePath, sessionConfig.MaxAge); err != nil {
		return nil, err
	}

	return auth, nil
}
