package repository

import (
	"context"

	"github.com/lumeo/backend/internal/model"
)

// ConsentRepository は同意記録永続化のインターフェース。
// 同意記録は不変 — 追記のみで更新・削除は行わない。
type ConsentRepository interface {
	Insert(ctx context.Context, rec *model.ConsentRecord) error
}
