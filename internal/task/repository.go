package task

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Task struct {
	ID        string
	Title     string
	Notes     string
	DueDate   *time.Time
	Done      bool
	AgentID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const columns = `id, title, COALESCE(notes, ''), due_date, done, agent_id, created_at, updated_at`

func scanTask(row pgx.Row) (*Task, error) {
	t := &Task{}
	if err := row.Scan(&t.ID, &t.Title, &t.Notes, &t.DueDate, &t.Done, &t.AgentID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) List(ctx context.Context) ([]Task, error) {
	const q = `
SELECT ` + columns + `
FROM tasks
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Task, error) {
	const q = `SELECT ` + columns + ` FROM tasks WHERE id = $1`
	return scanTask(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Insert(ctx context.Context, t *Task) error {
	const q = `
INSERT INTO tasks (title, notes, due_date, agent_id)
VALUES ($1, NULLIF($2, ''), $3, $4)
RETURNING id, done, created_at, updated_at
`
	return r.db.QueryRow(ctx, q, t.Title, t.Notes, t.DueDate, t.AgentID).
		Scan(&t.ID, &t.Done, &t.CreatedAt, &t.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, t *Task) error {
	const q = `
UPDATE tasks
SET title = $1, notes = NULLIF($2, ''), due_date = $3, done = $4, agent_id = $5, updated_at = NOW()
WHERE id = $6
RETURNING created_at, updated_at
`
	return r.db.QueryRow(ctx, q, t.Title, t.Notes, t.DueDate, t.Done, t.AgentID, t.ID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tasks WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
