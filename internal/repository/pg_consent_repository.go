package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumeo/backend/internal/model"
)

// PgConsentRepository is the PostgreSQL implementation of ConsentRepository.
type PgConsentRepository struct {
	pool *pgxpool.Pool
}

// NewPgConsentRepository creates a PgConsentRepository backed by the given pool.
func NewPgConsentRepository(pool *pgxpool.Pool) *PgConsentRepository {
	return &PgConsentRepository{pool: pool}
}

var _ ConsentRepository = (*PgConsentRepository)(nil)

// Insert appends one user_consents row. consent_type is stored verbatim:
// the set of types is open and unknown values must not be rejected.
func (r *PgConsentRepository) Insert(ctx context.Context, rec *model.ConsentRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO user_consents (id, email, consent_type, consent_version, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		rec.ID, rec.Email, rec.ConsentType, rec.ConsentVersion, rec.IPAddress, rec.UserAgent,
	).Scan(&rec.Timestamp)
}
