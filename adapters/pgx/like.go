package pgx

import (
	"context"
)

// AddLike inserts the favorite relation. ON CONFLICT DO NOTHING makes the
// insert atomic under concurrent double-clicks: the row ends up present
// exactly once and RowsAffected tells us whether this call created it.
func (a *Adapter) AddLike(ctx context.Context, userID, productID string) (bool, error) {
	query := `INSERT INTO public.product_likes (user_id, product_id)
	          VALUES ($1, $2)
	          ON CONFLICT (user_id, product_id) DO NOTHING`
	tag, err := a.db.Exec(ctx, query, userID, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveLike deletes the favorite relation if present.
func (a *Adapter) RemoveLike(ctx context.Context, userID, productID string) (bool, error) {
	query := `DELETE FROM public.product_likes WHERE user_id = $1 AND product_id = $2`
	tag, err := a.db.Exec(ctx, query, userID, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
