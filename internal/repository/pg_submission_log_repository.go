package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumeo/backend/internal/model"
)

// PgSubmissionLogRepository is the PostgreSQL implementation of
// SubmissionLogRepository.
type PgSubmissionLogRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionLogRepository creates a PgSubmissionLogRepository backed by
// the given pool.
func NewPgSubmissionLogRepository(pool *pgxpool.Pool) *PgSubmissionLogRepository {
	return &PgSubmissionLogRepository{pool: pool}
}

var _ SubmissionLogRepository = (*PgSubmissionLogRepository)(nil)

// Insert appends one contact_submissions_log row. The timestamp is assigned
// by the database, not the caller, so clock skew between instances cannot
// distort the rate-limit window.
func (r *PgSubmissionLogRepository) Insert(ctx context.Context, entry *model.SubmissionLogEntry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions_log (ip_address, email, user_agent)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		entry.IPAddress, entry.Email, entry.UserAgent,
	).Scan(&entry.ID, &entry.Timestamp)
}

// CountByIPAfter counts entries for ipAddress strictly after the given instant.
func (r *PgSubmissionLogRepository) CountByIPAfter(ctx context.Context, ipAddress string, after time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions_log
		 WHERE ip_address = $1 AND created_at > $2`, ipAddress, after,
	).Scan(&n)
	return n, err
}

// CountByEmailAfter counts entries for email strictly after the given instant.
func (r *PgSubmissionLogRepository) CountByEmailAfter(ctx context.Context, email string, after time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions_log
		 WHERE email = $1 AND created_at > $2`, email, after,
	).Scan(&n)
	return n, err
}

// DeleteOlderThan removes all entries older than cutoff in one statement.
// Volume is bounded by the rate limiter's own thresholds, so no chunking
// is applied here.
func (r *PgSubmissionLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM contact_submissions_log WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
