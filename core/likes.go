package core

import "context"

// ToggleLike flips the favorite relation between the signed-in user and a
// product, returning the resulting state (true = liked). Each store
// operation is atomic, so a double-click racing against itself converges on
// one of the two states instead of a phantom half-state.
func (a *Auth) ToggleLike(ctx context.Context, token, productID string) (bool, error) {
	session, err := a.Sessions.Verify(ctx, token)
	if err != nil {
		return false, ErrUnauthenticated
	}

	// Try the remove first: if the relation existed, this toggle unlikes.
	removed, err := a.Store.RemoveLike(ctx, session.UserID, productID)
	if err != nil {
		return false, dependencyFailure("failed to remove like", err)
	}
	if removed {
		return false, nil
	}

	// Nothing to remove; create the relation. A concurrent add winning the
	// race leaves the relation present either way, which is the state we
	// report.
	if _, err := a.Store.AddLike(ctx, session.UserID, productID); err != nil {
		return false, dependencyFailure("failed to add like", err)
	}
	return true, nil
}
