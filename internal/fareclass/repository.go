package fareclass

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FareClass is a named fare bucket (unique name) used when pricing sectors.
type FareClass struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Airline     string    `json:"airline,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]FareClass, error) {
	const q = `
SELECT id, name, COALESCE(airline,''), COALESCE(description,''), created_at
FROM fare_classes
ORDER BY name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FareClass
	for rows.Next() {
		var f FareClass
		if err := rows.Scan(&f.ID, &f.Name, &f.Airline, &f.Description, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, f *FareClass) error {
	const q = `
INSERT INTO fare_classes (name, airline, description)
VALUES ($1, NULLIF($2,''), NULLIF($3,''))
RETURNING id, created_at
`
	return r.db.QueryRow(ctx, q, f.Name, f.Airline, f.Description).Scan(&f.ID, &f.CreatedAt)
}

func (r *Repository) Update(ctx context.Context, f *FareClass) error {
	const q = `
UPDATE fare_classes
SET name = $1, airline = NULLIF($2,''), description = NULLIF($3,'')
WHERE id = $4
RETURNING created_at
`
	return r.db.QueryRow(ctx, q, f.Name, f.Airline, f.Description, f.ID).Scan(&f.CreatedAt)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM fare_classes WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
