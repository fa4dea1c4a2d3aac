package repository

import (
	"context"
	"time"

	"github.com/lumeo/backend/internal/model"
)

// SubmissionLogRepository は投稿ログ（レート制限用）永続化のインターフェース
type SubmissionLogRepository interface {
	// Insert appends one log entry; the store assigns the timestamp and
	// populates entry.ID and entry.Timestamp.
	Insert(ctx context.Context, entry *model.SubmissionLogEntry) error

	// CountByIPAfter counts entries for ipAddress with timestamp strictly
	// after the given instant.
	CountByIPAfter(ctx context.Context, ipAddress string, after time.Time) (int, error)

	// CountByEmailAfter counts entries for email with timestamp strictly
	// after the given instant.
	CountByEmailAfter(ctx context.Context, email string, after time.Time) (int, error)

	// DeleteOlderThan removes all entries with timestamp before cutoff and
	// returns the number removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
