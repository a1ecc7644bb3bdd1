package wardrobe

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

// Items returns the user's items plus the shared rows seeded without an owner.
func (r *PGRepo) Items(ctx context.Context, userID string) ([]Item, error) {
	const query = `
SELECT id, name, category, image_url, color, date_added
FROM wardrobe_items
WHERE user_id = $1 OR user_id IS NULL
ORDER BY date_added ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query wardrobe items: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var item Item
		var added time.Time
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Image, &item.Color, &added); err != nil {
			return nil, fmt.Errorf("scan wardrobe item: %w", err)
		}
		item.DateAdded = added.Format(dateLayout)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wardrobe items: %w", err)
	}
	return items, nil
}
