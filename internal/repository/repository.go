// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and hold no business logic.
package repository

import (
	"errors"
	"time"
)

// RowQuery selects rows from an arbitrary table.
type RowQuery struct {
	// OwnerColumn and OwnerID restrict rows to one client when both are set.
	OwnerColumn string
	OwnerID     string
	// CreatedFrom and CreatedTo bound created_at inclusively when both are set.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	// Limit caps the number of rows; zero means no limit.
	Limit int
}

// ErrNoColumns is returned when a row write names no usable column.
var ErrNoColumns = errors.New("no columns to write")
