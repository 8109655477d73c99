package errors

import (
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/errors"
)

// FromRepository translates repository sentinel errors into AppErrors.
// notFound is returned for repository.ErrNotFound; unknown errors become
// DatabaseExecuteError carrying details.
func FromRepository(err error, notFound *BaseError, details string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		if notFound == nil {
			return ErrNotFound
		}

		return notFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrDuplicateKey
	case errors.Is(err, repository.ErrInsufficientStock):
		return ErrInsufficientStock
	default:
		return NewDatabaseExecuteError(err, details)
	}
}

// IsAppError reports whether err carries an AppError anywhere in its chain.
func IsAppError(err error) bool {
	_, ok := errors.AsType[AppError](err)

	return ok
}
