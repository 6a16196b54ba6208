package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ecofolio/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, msg domain.ContactMessage) error
}

type PgContactRepository struct {
	pool *pgxpool.Pool
}

func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// EnsureSchema crea la tabla si no existe.
func (r *PgContactRepository) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

func (r *PgContactRepository) Create(ctx context.Context, msg domain.ContactMessage) error {
	const query = `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Message,
		msg.CreatedAt,
	)
	return err
}
