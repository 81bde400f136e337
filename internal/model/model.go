// Package model contains the domain records shared by every layer.
// Models carry JSON tags only; persistence details stay in the repositories.
package model

import "time"

// Row is a single table row keyed by column name, as read from or written to
// an arbitrary table.
type Row map[string]any

// DateRange bounds a created_at filter. Either end may be nil.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Complete reports whether both ends are set.
func (d *DateRange) Complete() bool {
	return d != nil && d.Start != nil && d.End != nil
}
