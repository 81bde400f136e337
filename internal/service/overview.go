package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tenantconsole/internal/cache"
	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// PlanRates are the monthly prices of the subscription plans.
var PlanRates = map[string]float64{
	model.PlanBasic:      29.99,
	model.PlanPremium:    49.99,
	model.PlanEnterprise: 99.99,
}

const recentActivityLimit = 5

// OverviewService computes the SaaS overview headline and activity feed.
type OverviewService interface {
	ClientStats(ctx context.Context) (*model.ClientStats, error)
	RecentActivity(ctx context.Context) ([]model.ClientActivity, error)
}

type overviewService struct {
	profiles repository.ProfileRepository
	counters repository.OverviewRepository
	cache    cache.Cache
	ttl      time.Duration
	log      *zap.Logger
}

// NewOverviewService constructs an OverviewService; results are cached for ttl.
func NewOverviewService(profiles repository.ProfileRepository, counters repository.OverviewRepository, c cache.Cache, ttl time.Duration, log *zap.Logger) OverviewService {
	if log == nil {
		log = zap.NewNop()
	}
	return &overviewService{profiles: profiles, counters: counters, cache: c, ttl: ttl, log: log}
}

func (s *overviewService) ClientStats(ctx context.Context) (*model.ClientStats, error) {
	var st model.ClientStats
	if cached(ctx, s.cache, s.log, cache.KeyClientStats, &st) {
		return &st, nil
	}

	owners, err := s.profiles.SalonOwners(ctx)
	if err != nil {
		return nil, err
	}
	st = ComputeClientStats(owners)

	if st.ActiveSessions, err = s.counters.CountActivePlatformSessions(ctx); err != nil {
		return nil, err
	}
	if st.OpenTickets, err = s.counters.CountOpenTickets(ctx); err != nil {
		return nil, err
	}

	store(ctx, s.cache, s.log, cache.KeyClientStats, st, s.ttl)
	return &st, nil
}

// ComputeClientStats totals salon owners and their plan revenue. A missing
// plan is billed as basic; an unknown plan adds nothing.
func ComputeClientStats(owners []model.Profile) model.ClientStats {
	st := model.ClientStats{TotalClients: len(owners)}
	for _, p := range owners {
		if p.IsActive {
			st.ActiveClients++
		}
		plan := model.PlanBasic
		if p.SubscriptionPlan != nil && *p.SubscriptionPlan != "" {
			plan = *p.SubscriptionPlan
		}
		st.MonthlyRevenue += PlanRates[plan]
	}
	return st
}

func (s *overviewService) RecentActivity(ctx context.Context) ([]model.ClientActivity, error) {
	var items []model.ClientActivity
	if cached(ctx, s.cache, s.log, cache.KeyRecentActivity, &items) {
		return items, nil
	}

	owners, err := s.profiles.RecentOwners(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	items = make([]model.ClientActivity, len(owners))
	for i, p := range owners {
		items[i] = toActivity(p)
	}

	store(ctx, s.cache, s.log, cache.KeyRecentActivity, items, s.ttl)
	return items, nil
}

func toActivity(p model.Profile) model.ClientActivity {
	a := model.ClientActivity{
		ID:               p.ID,
		SalonName:        "Unnamed Salon",
		OwnerName:        "Unknown Owner",
		SubscriptionPlan: model.PlanBasic,
		LastActive:       p.LastActive,
	}
	if p.SalonName != nil && *p.SalonName != "" {
		a.SalonName = *p.SalonName
	}
	if p.FullName != "" {
		a.OwnerName = p.FullName
	}
	if p.MonthlyRevenue != nil {
		a.MonthlyRevenue = *p.MonthlyRevenue
	}
	if p.SubscriptionPlan != nil && *p.SubscriptionPlan != "" {
		a.SubscriptionPlan = *p.SubscriptionPlan
	}
	return a
}
