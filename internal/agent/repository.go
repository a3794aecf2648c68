package agent

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Agent, error) {
	const q = `
SELECT id, email, name, password_hash, active, created_at
FROM agents
WHERE email = $1
`
	a := &Agent{}
	if err := r.db.QueryRow(ctx, q, email).Scan(
		&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Active, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Agent, error) {
	const q = `
SELECT id, email, name, password_hash, active, created_at
FROM agents
WHERE id = $1
`
	a := &Agent{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Active, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}
