package model

import (
	"encoding/json"
	"time"
)

// Profile roles.
const (
	RoleSalonOwner = "salon_owner"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleStylist    = "stylist"
)

// Subscription plans.
const (
	PlanBasic      = "basic"
	PlanPremium    = "premium"
	PlanEnterprise = "enterprise"
)

// Profile is a platform user account: a salon owner (tenant) or one of its staff.
type Profile struct {
	ID               string          `json:"id"`
	FullName         string          `json:"full_name"`
	Username         string          `json:"username"`
	AvatarURL        *string         `json:"avatar_url,omitempty"`
	Email            string          `json:"email"`
	PhoneNumber      *string         `json:"phone_number,omitempty"`
	WhatsappNumber   *string         `json:"whatsapp_number,omitempty"`
	Role             string          `json:"role"`
	IsActive         bool            `json:"is_active"`
	LastActive       *time.Time      `json:"last_active,omitempty"`
	SalonName        *string         `json:"salon_name,omitempty"`
	SubscriptionPlan *string         `json:"subscription_plan,omitempty"`
	MonthlyRevenue   *float64        `json:"monthly_revenue,omitempty"`
	ClientID         *string         `json:"client_id,omitempty"`
	Settings         json.RawMessage `json:"settings,omitempty"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProfileInput carries the writable profile fields. Nil fields are left
// untouched on update.
type ProfileInput struct {
	Username       *string `json:"username,omitempty" validate:"omitempty,max=64"`
	FullName       *string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	WhatsappNumber *string `json:"whatsapp_number,omitempty" validate:"omitempty,max=32"`
	Role           *string `json:"role,omitempty" validate:"omitempty,oneof=salon_owner admin manager stylist"`
	IsActive       *bool   `json:"is_active,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	ClientID       *string `json:"client_id,omitempty" validate:"omitempty,uuid"`
}

// ProfileFilter narrows a profile listing. Role "all" and Status "all" mean no filter.
type ProfileFilter struct {
	Role      string
	Status    string
	Search    string
	ClientID  string
	DateRange *DateRange
}

// ProfileStats summarises the profile table.
type ProfileStats struct {
	TotalProfiles    int            `json:"total_profiles"`
	ActiveProfiles   int            `json:"active_profiles"`
	InactiveProfiles int            `json:"inactive_profiles"`
	NewThisMonth     int            `json:"new_this_month"`
	GrowthRate       float64        `json:"growth_rate"`
	RoleDistribution map[string]int `json:"role_distribution"`
}

// ProfileSummary is the projection used for statistics.
type ProfileSummary struct {
	ID        string
	IsActive  bool
	CreatedAt time.Time
	Role      string
}

// Client is the reduced profile used by client pickers.
type Client struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
