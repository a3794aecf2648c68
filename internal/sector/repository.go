package sector

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PredefinedSector is a reusable origin/destination pair bookings reference.
// The (origin, destination) route is unique.
type PredefinedSector struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]PredefinedSector, error) {
	const q = `
SELECT id, origin, destination, created_at
FROM predefined_sectors
ORDER BY origin ASC, destination ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PredefinedSector
	for rows.Next() {
		var s PredefinedSector
		if err := rows.Scan(&s.ID, &s.Origin, &s.Destination, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, s *PredefinedSector) error {
	const q = `
INSERT INTO predefined_sectors (origin, destination)
VALUES ($1, $2)
RETURNING id, created_at
`
	return r.db.QueryRow(ctx, q, s.Origin, s.Destination).Scan(&s.ID, &s.CreatedAt)
}

func (r *Repository) Update(ctx context.Context, s *PredefinedSector) error {
	const q = `
UPDATE predefined_sectors
SET origin = $1, destination = $2
WHERE id = $3
RETURNING created_at
`
	return r.db.QueryRow(ctx, q, s.Origin, s.Destination, s.ID).Scan(&s.CreatedAt)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM predefined_sectors WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
