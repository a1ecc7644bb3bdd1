package wardrobe

import "context"

// Repo is the fetch capability behind the closet screen.
type Repo interface {
	Items(ctx context.Context, userID string) ([]Item, error)
}
