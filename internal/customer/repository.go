package customer

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Customer, error) {
	const q = `
SELECT id, name, COALESCE(email,''), COALESCE(phone,''), COALESCE(notes,''), created_at, updated_at
FROM customers
ORDER BY name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Customer, error) {
	const q = `
SELECT id, name, COALESCE(email,''), COALESCE(phone,''), COALESCE(notes,''), created_at, updated_at
FROM customers
WHERE id = $1
`
	c := &Customer{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) Insert(ctx context.Context, c *Customer) error {
	const q = `
INSERT INTO customers (name, email, phone, notes)
VALUES ($1, NULLIF($2,''), NULLIF($3,''), NULLIF($4,''))
RETURNING id, created_at, updated_at
`
	return r.db.QueryRow(ctx, q, c.Name, c.Email, c.Phone, c.Notes).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, c *Customer) error {
	const q = `
UPDATE customers
SET name = $1, email = NULLIF($2,''), phone = NULLIF($3,''), notes = NULLIF($4,''), updated_at = NOW()
WHERE id = $5
RETURNING created_at, updated_at
`
	return r.db.QueryRow(ctx, q, c.Name, c.Email, c.Phone, c.Notes, c.ID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM customers WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
