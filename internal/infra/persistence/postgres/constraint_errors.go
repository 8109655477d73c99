package postgres

import (
	"petwelfare/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasPgCode(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasPgCode(err, pgForeignKeyViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}

// translateWriteError maps constraint violations to repository sentinels and wraps the rest.
func translateWriteError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicate
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(repository.ErrNotFound, msg+": missing reference")
	default:
		return errors.Wrap(err, msg)
	}
}

// translateReadError maps gorm.ErrRecordNotFound to repository.ErrNotFound.
func translateReadError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}

	return errors.Wrap(err, msg)
}

// affectedOrNotFound returns ErrNotFound when a write matched no row.
func affectedOrNotFound(result *gorm.DB, msg string) error {
	if result.Error != nil {
		return translateWriteError(result.Error, msg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
