package repository

import (
	"context"

	"github.com/lumeo/backend/internal/model"
)

// AuditLogRepository は監査ログ永続化のインターフェース。
// 追記と参照のみ — 更新・削除の操作は意図的に存在しない。
type AuditLogRepository interface {
	Append(ctx context.Context, entry *model.AuditLogEntry) error
	List(ctx context.Context, opts model.AuditListOptions) ([]*model.AuditLogEntry, error)
}
