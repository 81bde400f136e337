package repository

import (
	"context"
	"time"

	"tenantconsole/internal/model"
)

// SessionRepository defines data access for console user sessions.
type SessionRepository interface {
	// Create stores a new active session and returns its ID.
	Create(ctx context.Context, s *model.UserSession) (string, error)

	IncrementActions(ctx context.Context, id string, now time.Time) error

	End(ctx context.Context, id string, now time.Time) error

	// ListActive returns active sessions joined with their profile, most recent first.
	ListActive(ctx context.Context) ([]model.UserSession, error)

	// DeactivateStale ends active sessions idle since before cutoff.
	DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error)

	// Stats computes session statistics; totals count sessions started after since.
	Stats(ctx context.Context, since time.Time, highActivity int) (*model.SessionStats, error)
}

// OverviewRepository reads the platform counters shown on the SaaS overview.
type OverviewRepository interface {
	CountActivePlatformSessions(ctx context.Context) (int, error)
	CountOpenTickets(ctx context.Context) (int, error)
}
