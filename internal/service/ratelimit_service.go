package service

import (
	"context"
	"time"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
)

const (
	// rateLimitWindow is a sliding window anchored at the check time,
	// not a clock-aligned bucket.
	rateLimitWindow = time.Hour

	maxSubmissionsPerIP    = 5
	maxSubmissionsPerEmail = 3
)

// RateLimitResult is the outcome of a rate-limit check.
type RateLimitResult struct {
	Allowed bool
	Message string
}

// RateLimitService gates contact-form submissions by IP and by email over
// the trailing hour of logged submissions.
type RateLimitService interface {
	// CheckAndLog checks both thresholds and, only when the submission is
	// allowed, appends one log entry. Rejections fail with RESOURCE_EXHAUSTED
	// and leave the log untouched.
	CheckAndLog(ctx context.Context, email string, meta RequestMeta) (*RateLimitResult, error)
}

type rateLimitService struct {
	logRepo repository.SubmissionLogRepository
	now     func() time.Time
}

// NewRateLimitService creates a RateLimitService backed by the given log
// repository.
func NewRateLimitService(logRepo repository.SubmissionLogRepository) RateLimitService {
	return &rateLimitService{logRepo: logRepo, now: time.Now}
}

// CheckAndLog runs the IP threshold first, then the email threshold; the
// first violation wins. The two counts are independent queries that can race
// with concurrent submissions — slightly exceeding the nominal limit under
// contention is accepted, so no transaction is taken.
func (s *rateLimitService) CheckAndLog(ctx context.Context, email string, meta RequestMeta) (*RateLimitResult, error) {
	windowStart := s.now().UTC().Add(-rateLimitWindow)

	ipCount, err := s.logRepo.CountByIPAfter(ctx, meta.IPAddress, windowStart)
	if err != nil {
		return nil, ErrInternal(err)
	}
	if ipCount >= maxSubmissionsPerIP {
		return nil, ErrResourceExhausted("Too many submissions from your IP address. Please try again in an hour.")
	}

	emailCount, err := s.logRepo.CountByEmailAfter(ctx, email, windowStart)
	if err != nil {
		return nil, ErrInternal(err)
	}
	if emailCount >= maxSubmissionsPerEmail {
		return nil, ErrResourceExhausted("Too many submissions for this email address. Please try again in an hour.")
	}

	entry := &model.SubmissionLogEntry{
		IPAddress: meta.IPAddress,
		Email:     email,
		UserAgent: meta.UserAgent,
	}
	if err := s.logRepo.Insert(ctx, entry); err != nil {
		return nil, ErrInternal(err)
	}

	return &RateLimitResult{Allowed: true, Message: "Submission allowed"}, nil
}
