package pgx

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopauth/shopauth"
)

const userColumns = `id, username, email, password_hash, role, gender, reset_token_hash, reset_token_expires_at, created_at, updated_at`

func (a *Adapter) Insert(ctx context.Context, user *shopauth.User) error {
	query := `INSERT INTO public.users (username, email, password_hash, role, gender)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`

	err := a.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Password, string(user.Role), user.Gender,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

// mapUniqueViolation translates the store's collision signal into the
// specific duplicate error the core promises.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return shopauth.ErrDuplicateUsername
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return shopauth.ErrDuplicateEmail
		}
	}
	return err
}

func (a *Adapter) FindByID(ctx context.Context, id string) (*shopauth.User, error) {
	return a.findUser(ctx, `SELECT `+userColumns+` FROM public.users WHERE id = $1`, id)
}

func (a *Adapter) FindByUsername(ctx context.Context, username string) (*shopauth.User, error) {
	return a.findUser(ctx, `SELECT `+userColumns+` FROM public.users WHERE username = $1`, username)
}

func (a *Adapter) FindByEmail(ctx context.Context, email string) (*shopauth.User, error) {
	return a.findUser(ctx, `SELECT `+userColumns+` FROM public.users WHERE email = $1`, email)
}

func (a *Adapter) FindByResetToken(ctx context.Context, tokenHash string) (*shopauth.User, error) {
	return a.findUser(ctx, `SELECT `+userColumns+` FROM public.users WHERE reset_token_hash = $1`, tokenHash)
}

func (a *Adapter) findUser(ctx context.Context, query string, arg any) (*shopauth.User, error) {
	user := &shopauth.User{}
	var role string
	err := a.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &role, &user.Gender,
		&user.ResetTokenHash, &user.ResetTokenExpires, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shopauth.ErrUserNotFound
		}
		return nil, err
	}
	user.Role = shopauth.Role(role)
	return user, nil
}

func (a *Adapter) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE public.users SET password_hash = $1, updated_at = now() WHERE id = $2`
	tag, err := a.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shopauth.ErrUserNotFound
	}
	return nil
}

func (a *Adapter) SetResetToken(ctx context.Context, userID, tokenHash string, expires time.Time) error {
	query := `UPDATE public.users
	          SET reset_token_hash = $1, reset_token_expires_at = $2, updated_at = now()
	          WHERE id = $3`
	tag, err := a.db.Exec(ctx, query, tokenHash, expires, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shopauth.ErrUserNotFound
	}
	return nil
}

// ConsumeResetToken is a single conditional UPDATE: the password changes and
// the token clears only while the stored hash still matches and is fresh.
// Of two racing completions exactly one sees RowsAffected == 1.
func (a *Adapter) ConsumeResetToken(ctx context.Context, userID, tokenHash, passwordHash string) (bool, error) {
	query := `UPDATE public.users
	          SET password_hash = $1, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = now()
	          WHERE id = $2 AND reset_token_hash = $3 AND reset_token_expires_at > now()`
	tag, err := a.db.Exec(ctx, query, passwordHash, userID, tokenHash)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
