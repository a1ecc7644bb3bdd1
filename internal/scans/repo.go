package scans

import "context"

// Repo defines persistence operations for scans.
type Repo interface {
	Create(ctx context.Context, scan Scan) error
	GetByID(ctx context.Context, userID, scanID string) (Scan, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Scan, error)
}
