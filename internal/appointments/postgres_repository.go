package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository needs.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository persists appointments in Postgres.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository creates a Postgres-backed appointment store.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		return nil
	}
	return &PostgresRepository{pool: pool}
}

// ListByOwner returns the owner's appointments, newest booking first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]Appointment, error) {
	query := `
		SELECT id, service, module, partner, booked_date, booked_time, price, status, created_at
		FROM appointments
		WHERE owner = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("appointments: list by owner: %w", err)
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		var appt Appointment
		var id uuid.UUID
		if err := rows.Scan(&id, &appt.Service, &appt.Module, &appt.Partner, &appt.Date, &appt.Time, &appt.Price, &appt.Status, &appt.CreatedAt); err != nil {
			return nil, fmt.Errorf("appointments: scan row: %w", err)
		}
		appt.ID = id.String()
		out = append(out, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("appointments: iterate rows: %w", err)
	}
	return out, nil
}

// Add inserts a new appointment row for the owner.
func (r *PostgresRepository) Add(ctx context.Context, owner string, appt Appointment) (Appointment, error) {
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now().UTC()
	}
	id, err := uuid.Parse(appt.ID)
	if err != nil {
		return Appointment{}, fmt.Errorf("appointments: parse id: %w", err)
	}

	query := `
		INSERT INTO appointments (id, owner, service, module, partner, booked_date, booked_time, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if _, err := r.pool.Exec(ctx, query, id, owner, appt.Service, appt.Module, appt.Partner, appt.Date, appt.Time, appt.Price, string(appt.Status), appt.CreatedAt); err != nil {
		return Appointment{}, fmt.Errorf("appointments: insert: %w", err)
	}
	return appt, nil
}

var _ Repository = (*PostgresRepository)(nil)
