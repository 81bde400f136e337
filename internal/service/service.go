// Package service implements the console use cases on top of the
// repositories, artifact stores and cache.
package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrIDRequired           = errors.New("id is required")
	ErrNotFound             = errors.New("not found")
	ErrInvalidTable         = errors.New("invalid table")
	ErrConfirmationMismatch = errors.New("confirmation does not match the backup table name")
	ErrInvalidBackupRecord  = errors.New("invalid backup record")
	ErrValidation           = errors.New("validation failed")
)

var validate = validator.New()

// validateStruct runs the struct's validate tags and folds every failed
// field into one ErrValidation.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// notFound maps sql.ErrNoRows to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
