package scans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"lookcircuit-backend/internal/face"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const scanColumns = `id, user_id, image_key, thumbnail_key, mime_type, width, height, status, analyzer, result, error_message, created_at`

// Create inserts a new scan.
func (r *PGRepo) Create(ctx context.Context, scan Scan) error {
	const query = `
INSERT INTO scans (` + scanColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	result, err := marshalResult(scan.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		scan.ID,
		scan.UserID,
		scan.ImageKey,
		nullString(scan.ThumbnailKey),
		scan.MimeType,
		scan.Width,
		scan.Height,
		scan.Status,
		scan.Analyzer,
		result,
		scan.ErrorMessage,
		scan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// GetByID returns a scan owned by userID.
func (r *PGRepo) GetByID(ctx context.Context, userID, scanID string) (Scan, error) {
	const query = `
SELECT ` + scanColumns + `
FROM scans
WHERE id = $1 AND user_id = $2
LIMIT 1`
	scan, err := scanRow(r.DB.QueryRowContext(ctx, query, scanID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Scan{}, ErrNotFound
		}
		return Scan{}, err
	}
	return scan, nil
}

// ListByUser returns scans for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Scan, error) {
	if offset < 0 {
		offset = 0
	}
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	const query = `
SELECT ` + scanColumns + `
FROM scans
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	out := []Scan{}
	for rows.Next() {
		scan, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, scan)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (Scan, error) {
	var s Scan
	var thumbnail sql.NullString
	var result []byte
	var errorMessage sql.NullString
	if err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.ImageKey,
		&thumbnail,
		&s.MimeType,
		&s.Width,
		&s.Height,
		&s.Status,
		&s.Analyzer,
		&result,
		&errorMessage,
		&s.CreatedAt,
	); err != nil {
		return Scan{}, err
	}
	s.ThumbnailKey = thumbnail.String
	if errorMessage.Valid {
		msg := errorMessage.String
		s.ErrorMessage = &msg
	}
	if len(result) > 0 {
		var res face.Result
		if err := json.Unmarshal(result, &res); err != nil {
			return Scan{}, fmt.Errorf("decode scan result: %w", err)
		}
		s.Result = &res
	}
	return s, nil
}

func marshalResult(res *face.Result) (any, error) {
	if res == nil {
		return nil, nil
	}
	b, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encode scan result: %w", err)
	}
	return b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
