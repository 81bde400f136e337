package model

import "time"

// DeviceInfo describes the device a session was opened from.
type DeviceInfo struct {
	Type    string `json:"type" validate:"required,oneof=desktop mobile tablet"`
	Browser string `json:"browser"`
	OS      string `json:"os"`
}

// Location is the approximate origin of a session.
type Location struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserSession is a tracked console session.
type UserSession struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	ProfileID    string     `json:"profile_id"`
	DeviceInfo   DeviceInfo `json:"device_info"`
	IPAddress    string     `json:"ip_address"`
	Location     *Location  `json:"location,omitempty"`
	IsActive     bool       `json:"is_active"`
	ActionsCount int        `json:"actions_count"`
	StartedAt    time.Time  `json:"started_at"`
	LastActive   time.Time  `json:"last_active"`

	// Joined from profiles.
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// SessionStats summarises session activity.
type SessionStats struct {
	ActiveSessions       int `json:"active_sessions"`
	TotalSessions        int `json:"total_sessions"`
	UniqueLocations      int `json:"unique_locations"`
	HighActivitySessions int `json:"high_activity_sessions"`
}
