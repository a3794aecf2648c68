package tourproduct

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TourProduct is a sellable tour package template. BasePrice is the
// per-pax list price as a decimal string.
type TourProduct struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Destination  string    `json:"destination,omitempty"`
	DurationDays int       `json:"durationDays"`
	BasePrice    string    `json:"basePrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]TourProduct, error) {
	const q = `
SELECT id, name, COALESCE(destination,''), duration_days, base_price::text, created_at, updated_at
FROM tour_products
ORDER BY name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TourProduct
	for rows.Next() {
		var p TourProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Destination, &p.DurationDays, &p.BasePrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*TourProduct, error) {
	const q = `
SELECT id, name, COALESCE(destination,''), duration_days, base_price::text, created_at, updated_at
FROM tour_products
WHERE id = $1
`
	p := &TourProduct{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Destination, &p.DurationDays, &p.BasePrice, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repository) Insert(ctx context.Context, p *TourProduct) error {
	const q = `
INSERT INTO tour_products (name, destination, duration_days, base_price)
VALUES ($1, NULLIF($2,''), $3, $4)
RETURNING id, created_at, updated_at
`
	return r.db.QueryRow(ctx, q, p.Name, p.Destination, p.DurationDays, p.BasePrice).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, p *TourProduct) error {
	const q = `
UPDATE tour_products
SET name = $1, destination = NULLIF($2,''), duration_days = $3, base_price = $4, updated_at = NOW()
WHERE id = $5
RETURNING created_at, updated_at
`
	return r.db.QueryRow(ctx, q, p.Name, p.Destination, p.DurationDays, p.BasePrice, p.ID).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tour_products WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
