package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumeo/backend/internal/model"
)

// PgAuditLogRepository is the PostgreSQL implementation of AuditLogRepository.
type PgAuditLogRepository struct {
	pool *pgxpool.Pool
}

// NewPgAuditLogRepository creates a PgAuditLogRepository backed by the given pool.
func NewPgAuditLogRepository(pool *pgxpool.Pool) *PgAuditLogRepository {
	return &PgAuditLogRepository{pool: pool}
}

var _ AuditLogRepository = (*PgAuditLogRepository)(nil)

// Append inserts one audit_logs row. The id is generated app-side so the
// entry is fully formed before it reaches the store; the timestamp is
// assigned by the database.
func (r *PgAuditLogRepository) Append(ctx context.Context, entry *model.AuditLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO audit_logs (id, action, details)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		entry.ID, entry.Action, details,
	).Scan(&entry.Timestamp)
}

// List returns audit entries filtered by action and paginated by limit/offset,
// newest first.
func (r *PgAuditLogRepository) List(ctx context.Context, opts model.AuditListOptions) ([]*model.AuditLogEntry, error) {
	var conditions []string
	var args []any

	if action := strings.TrimSpace(opts.Action); action != "" {
		args = append(args, action)
		conditions = append(conditions, "action = $1")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT id, action, details, created_at FROM audit_logs ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.AuditLogEntry
	for rows.Next() {
		var (
			e       model.AuditLogEntry
			details []byte
			ts      time.Time
		)
		if err := rows.Scan(&e.ID, &e.Action, &details, &ts); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(details, &e.Details); err != nil {
			return nil, err
		}
		e.Timestamp = ts
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
