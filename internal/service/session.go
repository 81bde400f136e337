package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// Session tracking thresholds.
const (
	StaleSessionAge       = 24 * time.Hour
	SessionStatsWindow    = 24 * time.Hour
	HighActivityThreshold = 100
)

// SessionInput opens a console session.
type SessionInput struct {
	UserID     string           `json:"user_id" validate:"required"`
	ProfileID  string           `json:"profile_id" validate:"required"`
	DeviceInfo model.DeviceInfo `json:"device_info"`
	IPAddress  string           `json:"ip_address" validate:"omitempty,ip"`
	Location   *model.Location  `json:"location,omitempty"`
}

// SessionService tracks console user sessions.
type SessionService interface {
	Create(ctx context.Context, in SessionInput) (string, error)
	IncrementActions(ctx context.Context, id string) error
	End(ctx context.Context, id string) error
	Active(ctx context.Context) ([]model.UserSession, error)
	// CleanupStale ends sessions idle for longer than StaleSessionAge.
	CleanupStale(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*model.SessionStats, error)
}

type sessionService struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(repo repository.SessionRepository) SessionService {
	return &sessionService{repo: repo, now: time.Now}
}

func (s *sessionService) Create(ctx context.Context, in SessionInput) (string, error) {
	if err := validateStruct(in); err != nil {
		return "", err
	}
	return s.repo.Create(ctx, &model.UserSession{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		ProfileID:  in.ProfileID,
		DeviceInfo: in.DeviceInfo,
		IPAddress:  in.IPAddress,
		Location:   in.Location,
		IsActive:   true,
		StartedAt:  s.now().UTC(),
	})
}

func (s *sessionService) IncrementActions(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.IncrementActions(ctx, id, s.now().UTC()))
}

func (s *sessionService) End(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.End(ctx, id, s.now().UTC()))
}

func (s *sessionService) Active(ctx context.Context) ([]model.UserSession, error) {
	return s.repo.ListActive(ctx)
}

func (s *sessionService) CleanupStale(ctx context.Context) (int64, error) {
	return s.repo.DeactivateStale(ctx, s.now().UTC().Add(-StaleSessionAge))
}

func (s *sessionService) Stats(ctx context.Context) (*model.SessionStats, error) {
	return s.repo.Stats(ctx, s.now().UTC().Add(-SessionStatsWindow), HighActivityThreshold)
}
