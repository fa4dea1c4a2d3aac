package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumeo/backend/internal/model"
)

// MaxBatchOps is the hard per-batch operation ceiling of the store.
// Batched deletes are flushed and restarted before crossing it.
const MaxBatchOps = 500

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID and msg.CreatedAt
// from the database RETURNING clause. created_at is set once by the database
// and never touched afterwards.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, phone, company, message, is_read)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Phone, msg.Company, msg.Message, msg.IsRead,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// FindByID returns one contact message, or ErrNotFound.
func (r *PgContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), COALESCE(company, ''), message, is_read, created_at
		 FROM contact_messages WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Company, &m.Message, &m.IsRead, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns contact messages filtered by read state and paginated by
// limit/offset. Status "" or "all" returns all messages.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	var conditions []string
	var args []any

	switch strings.TrimSpace(opts.Status) {
	case "", "all":
	case "unread":
		conditions = append(conditions, "is_read = FALSE")
	case "read":
		conditions = append(conditions, "is_read = TRUE")
	default:
		return nil, fmt.Errorf("unknown status filter %q", opts.Status)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT id, name, email, COALESCE(phone, ''), COALESCE(company, ''), message, is_read, created_at
	          FROM contact_messages ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Company, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// SetRead updates only the is_read flag; created_at is deliberately left
// untouched because retention eligibility is computed from it.
func (r *PgContactRepository) SetRead(ctx context.Context, id string, read bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET is_read = $2 WHERE id = $1`, id, read)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one contact message.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// FindIDsCreatedBefore returns ids of messages with created_at strictly
// before cutoff, oldest first.
func (r *PgContactRepository) FindIDsCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM contact_messages WHERE created_at < $1 ORDER BY created_at`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteByIDs removes the given messages in a single pgx batch, one delete
// per id. The caller is responsible for chunking to MaxBatchOps.
func (r *PgContactRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) > MaxBatchOps {
		return fmt.Errorf("batch of %d exceeds max %d operations", len(ids), MaxBatchOps)
	}
	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(`DELETE FROM contact_messages WHERE id = $1`, id)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}
