package identity

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProvider stores custom claims in the identity_claims table, one row per
// uid. It stands in for a hosted identity service's claim storage while
// keeping the same merge semantics.
type PgProvider struct {
	pool *pgxpool.Pool
}

// NewPgProvider creates a PgProvider backed by the given pool.
func NewPgProvider(pool *pgxpool.Pool) *PgProvider {
	return &PgProvider{pool: pool}
}

var _ Provider = (*PgProvider)(nil)

// SetCustomClaims merges claims into the identity's stored claim set.
// The jsonb || operator performs the merge in the store, so concurrent
// setters cannot clobber each other's keys.
func (p *PgProvider) SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error {
	payload, err := json.Marshal(claims)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO identity_claims (uid, claims)
		 VALUES ($1, $2)
		 ON CONFLICT (uid) DO UPDATE
		 SET claims = identity_claims.claims || EXCLUDED.claims, updated_at = NOW()`,
		uid, payload)
	return err
}

// GetCustomClaims returns the identity's claim set, or an empty map when the
// identity has never had claims attached.
func (p *PgProvider) GetCustomClaims(ctx context.Context, uid string) (map[string]any, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx,
		`SELECT claims FROM identity_claims WHERE uid = $1`, uid,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}
