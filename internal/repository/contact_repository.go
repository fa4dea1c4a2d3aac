package repository

import (
	"context"
	"time"

	"github.com/lumeo/backend/internal/model"
)

// ContactRepository はお問い合わせメッセージ永続化のインターフェース
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	FindByID(ctx context.Context, id string) (*model.ContactMessage, error)
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error

	// FindIDsCreatedBefore returns the ids of all messages whose created_at
	// is strictly before cutoff, oldest first.
	FindIDsCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error)

	// DeleteByIDs removes the given messages in one store batch.
	// len(ids) must not exceed MaxBatchOps.
	DeleteByIDs(ctx context.Context, ids []string) error
}
