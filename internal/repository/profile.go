package repository

import (
	"context"

	"tenantconsole/internal/model"
)

// ProfileRepository defines data access for profiles.
type ProfileRepository interface {
	// List returns profiles matching the filter, newest first.
	List(ctx context.Context, f model.ProfileFilter) ([]model.Profile, error)

	// FindByID returns sql.ErrNoRows when the profile does not exist.
	FindByID(ctx context.Context, id string) (*model.Profile, error)

	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)

	// Update writes the non-nil fields of in and returns the stored profile.
	Update(ctx context.Context, id string, in model.ProfileInput) (*model.Profile, error)

	Delete(ctx context.Context, id string) error

	// Summaries returns the projection used for profile statistics.
	Summaries(ctx context.Context) ([]model.ProfileSummary, error)

	// Clients lists profiles for client pickers ordered by full name.
	Clients(ctx context.Context) ([]model.Client, error)

	// SalonOwners returns all profiles with role salon_owner.
	SalonOwners(ctx context.Context) ([]model.Profile, error)

	// RecentOwners returns salon owners ordered by last activity.
	RecentOwners(ctx context.Context, limit int) ([]model.Profile, error)
}
