package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
)

// OrganizerRepo manages read access to organizer profiles.
type OrganizerRepo struct {
	db *sql.DB
}

// NewOrganizerRepo constructs an OrganizerRepo with the given DB handle.
func NewOrganizerRepo(db *sql.DB) *OrganizerRepo {
	return &OrganizerRepo{db: db}
}

// GetByID retrieves one organizer profile.  It returns
// catalog.ErrOrganizerNotFound when no row matches.
func (r *OrganizerRepo) GetByID(ctx context.Context, id string) (model.OrganizerProfile, error) {
	const q = `SELECT id, name, image_url, verified FROM organizers WHERE id = ?`
	var o model.OrganizerProfile
	err := r.db.QueryRowContext(ctx, q, id).Scan(&o.ID, &o.Name, &o.ImageURL, &o.Verified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OrganizerProfile{}, catalog.ErrOrganizerNotFound
		}
		return model.OrganizerProfile{}, err
	}
	return o, nil
}
