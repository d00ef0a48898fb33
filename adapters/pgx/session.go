package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopauth/shopauth"
)

func (a *Adapter) CreateSession(ctx context.Context, session *shopauth.Session) error {
	query := `INSERT INTO public.sessions (id, user_id, token_hash, ip_address, user_agent, expires_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := a.db.Exec(ctx, query,
		session.ID, session.UserID, session.TokenHash,
		session.IPAddress, session.UserAgent,
		session.ExpiresAt, session.CreatedAt, session.UpdatedAt,
	)
	return err
}

func (a *Adapter) GetSessionByHash(ctx context.Context, tokenHash string) (*shopauth.Session, error) {
	query := `SELECT id, user_id, token_hash, ip_address, user_agent, expires_at, created_at, updated_at
	          FROM public.sessions WHERE token_hash = $1`

	session := &shopauth.Session{}
	err := a.db.QueryRow(ctx, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.IPAddress, &session.UserAgent,
		&session.ExpiresAt, &session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shopauth.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (a *Adapter) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	_, err := a.db.Exec(ctx, `DELETE FROM public.sessions WHERE token_hash = $1`, tokenHash)
	return err
}

func (a *Adapter) DeleteUserSessions(ctx context.Context, userID string) (int, error) {
	tag, err := a.db.Exec(ctx, `DELETE FROM public.sessions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (a *Adapter) DeleteExpiredSessions(ctx context.Context) (int, error) {
	tag, err := a.db.Exec(ctx, `DELETE FROM public.sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
