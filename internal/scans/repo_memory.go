package scans

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores scans in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Scan
	byUser map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Scan),
		byUser: make(map[string][]string),
	}
}

// Create stores the scan.
func (r *MemoryRepo) Create(ctx context.Context, scan Scan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[scan.ID]; !exists {
		r.byUser[scan.UserID] = append(r.byUser[scan.UserID], scan.ID)
	}
	r.byID[scan.ID] = copyScan(scan)
	return nil
}

// GetByID returns a scan owned by userID.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, scanID string) (Scan, error) {
	if err := ctx.Err(); err != nil {
		return Scan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	scan, ok := r.byID[scanID]
	if !ok || scan.UserID != userID {
		return Scan{}, ErrNotFound
	}
	return copyScan(scan), nil
}

// ListByUser returns scans for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Scan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	ids := r.byUser[userID]
	out := make([]Scan, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyScan(r.byID[id]))
	}
	r.mu.RUnlock()

	if offset >= len(out) {
		return []Scan{}, nil
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

func copyScan(s Scan) Scan {
	if s.Result != nil {
		res := *s.Result
		s.Result = &res
	}
	if s.ErrorMessage != nil {
		msg := *s.ErrorMessage
		s.ErrorMessage = &msg
	}
	return s
}
