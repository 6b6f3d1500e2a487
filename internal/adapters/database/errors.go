package database

import (
	"errors"
	"fmt"

	"yatube/internal/core/apperror"

	"gorm.io/gorm"
)

// wrap maps a missing record onto apperror.ErrNotFound and annotates the rest.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
