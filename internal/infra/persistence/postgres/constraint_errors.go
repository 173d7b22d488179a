package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classification for PostgreSQL errors surfaced through GORM.
// Repositories use these to translate driver failures into domain errors.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// GORM has no sentinel for not-null violations, so fall back to matching the
// PostgreSQL error text and SQLSTATE 23502.
func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "23502")
}
