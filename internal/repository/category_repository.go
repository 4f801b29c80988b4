package repository

import (
	"context"
	"database/sql"

	"github.com/eventory/miniapp-storefront/internal/model"
)

// CategoryRepo manages read access to event categories.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the given DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// ListAll returns every category ordered by its position column.  When
// no categories exist it returns an empty slice and nil error.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.EventCategory, error) {
	const q = `SELECT id, name, glyph FROM categories ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []model.EventCategory
	for rows.Next() {
		var c model.EventCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Glyph); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}
