package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tenantconsole/internal/cache"
	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// ProfileService manages platform users and clients.
type ProfileService interface {
	List(ctx context.Context, f model.ProfileFilter) ([]model.Profile, error)
	Get(ctx context.Context, id string) (*model.Profile, error)
	Create(ctx context.Context, in model.ProfileInput) (*model.Profile, error)
	Update(ctx context.Context, id string, in model.ProfileInput) (*model.Profile, error)
	Delete(ctx context.Context, id string) error
	// ToggleStatus flips is_active and returns the updated profile.
	ToggleStatus(ctx context.Context, id string) (*model.Profile, error)
	Stats(ctx context.Context) (*model.ProfileStats, error)
	Clients(ctx context.Context) ([]model.Client, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	cache cache.Cache
	loc   *time.Location
	log   *zap.Logger
	now   func() time.Time
}

// NewProfileService constructs a ProfileService. Month boundaries for
// statistics are computed in loc. Successful mutations drop the cached
// overview from c, which may be nil.
func NewProfileService(repo repository.ProfileRepository, loc *time.Location, c cache.Cache, log *zap.Logger) ProfileService {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &profileService{repo: repo, cache: c, loc: loc, log: log, now: time.Now}
}

// overviewKeys depend on salon owner profiles.
var overviewKeys = []string{cache.KeyClientStats, cache.KeyRecentActivity}

func (s *profileService) changed(ctx context.Context) {
	invalidate(ctx, s.cache, s.log, "", overviewKeys...)
}

func (s *profileService) List(ctx context.Context, f model.ProfileFilter) ([]model.Profile, error) {
	switch f.Status {
	case "", "all", "active", "inactive":
	default:
		return nil, invalid("status must be one of all, active, inactive")
	}
	if f.DateRange != nil && !f.DateRange.Complete() {
		f.DateRange = nil
	}
	return s.repo.List(ctx, f)
}

func (s *profileService) Get(ctx context.Context, id string) (*model.Profile, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *profileService) Create(ctx context.Context, in model.ProfileInput) (*model.Profile, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.FullName == nil || *in.FullName == "" || in.Email == nil || *in.Email == "" {
		return nil, invalid("full_name and email are required")
	}

	now := s.now().UTC()
	p := &model.Profile{
		ID:             uuid.NewString(),
		FullName:       *in.FullName,
		Email:          *in.Email,
		Role:           model.RoleStylist,
		IsActive:       true,
		AvatarURL:      in.AvatarURL,
		PhoneNumber:    in.PhoneNumber,
		WhatsappNumber: in.WhatsappNumber,
		ClientID:       in.ClientID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Username != nil {
		p.Username = *in.Username
	}
	if in.Role != nil {
		p.Role = *in.Role
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.changed(ctx)
	return created, nil
}

func (s *profileService) Update(ctx context.Context, id string, in model.ProfileInput) (*model.Profile, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in == (model.ProfileInput{}) {
		return s.Get(ctx, id)
	}
	p, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, notFound(err)
	}
	s.changed(ctx)
	return p, nil
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.changed(ctx)
	return nil
}

func (s *profileService) ToggleStatus(ctx context.Context, id string) (*model.Profile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	active := !p.IsActive
	return s.Update(ctx, id, model.ProfileInput{IsActive: &active})
}

func (s *profileService) Stats(ctx context.Context) (*model.ProfileStats, error) {
	items, err := s.repo.Summaries(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeProfileStats(items, s.now().In(s.loc)), nil
}

// ComputeProfileStats aggregates summaries relative to now. The current
// month starts on the first day of now's month in now's location. A
// profile without a role counts as "user".
func ComputeProfileStats(items []model.ProfileSummary, now time.Time) *model.ProfileStats {
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	st := &model.ProfileStats{
		TotalProfiles:    len(items),
		RoleDistribution: make(map[string]int),
	}
	var prev int
	for _, p := range items {
		if p.IsActive {
			st.ActiveProfiles++
		}
		switch {
		case !p.CreatedAt.Before(thisMonth):
			st.NewThisMonth++
		case !p.CreatedAt.Before(lastMonth):
			prev++
		}
		role := p.Role
		if role == "" {
			role = "user"
		}
		st.RoleDistribution[role]++
	}
	st.InactiveProfiles = st.TotalProfiles - st.ActiveProfiles
	if prev > 0 {
		st.GrowthRate = float64(st.NewThisMonth-prev) / float64(prev) * 100
	}
	return st
}

func (s *profileService) Clients(ctx context.Context) ([]model.Client, error) {
	return s.repo.Clients(ctx)
}
