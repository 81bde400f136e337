package model

import "time"

// ClientStats is the SaaS overview headline.
type ClientStats struct {
	TotalClients   int     `json:"total_clients"`
	ActiveClients  int     `json:"active_clients"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	ActiveSessions int     `json:"active_sessions"`
	OpenTickets    int     `json:"open_tickets"`
}

// ClientActivity is one row of the recent activity feed.
type ClientActivity struct {
	ID               string     `json:"id"`
	SalonName        string     `json:"salon_name"`
	OwnerName        string     `json:"owner_name"`
	MonthlyRevenue   float64    `json:"monthly_revenue"`
	SubscriptionPlan string     `json:"subscription_plan"`
	LastActive       *time.Time `json:"last_active,omitempty"`
}

// TableStat is the size of one user table.
type TableStat struct {
	Name  string `json:"name"`
	Rows  int64  `json:"rows"`
	Bytes int64  `json:"bytes"`
}

// TableStats aggregates TableStat over all user tables.
type TableStats struct {
	TotalRows  int64       `json:"total_rows"`
	TotalSize  int64       `json:"total_size"`
	TableNames []string    `json:"table_names"`
	Tables     []TableStat `json:"tables"`
}

// DataStats backs the data management page.
type DataStats struct {
	TotalRecords int64    `json:"total_records"`
	StorageUsed  int64    `json:"storage_used"`
	LastBackup   string   `json:"last_backup"`
	DataTypes    []string `json:"data_types"`
}

// Column describes one table column.
type Column struct {
	Name      string  `json:"column_name"`
	DataType  string  `json:"data_type"`
	Nullable  bool    `json:"is_nullable"`
	Default   *string `json:"column_default,omitempty"`
	IsPrimary bool    `json:"is_primary"`
}
