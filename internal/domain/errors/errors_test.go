package errors

import (
	"net/http"
	"testing"

	"petwelfare/internal/domain/repository"
	"petwelfare/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestFromRepository(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		notFound *BaseError
		wantCode string
		wantHTTP int
	}{
		{"not found uses module error", errors.Wrap(repository.ErrNotFound, "find"), ErrPetNotFound, "PET_NOT_FOUND", http.StatusNotFound},
		{"not found falls back to generic", repository.ErrNotFound, nil, "NOT_FOUND", http.StatusNotFound},
		{"duplicate key", repository.ErrDuplicate, ErrPetNotFound, "DUPLICATE_KEY", http.StatusConflict},
		{"insufficient stock", repository.ErrInsufficientStock, nil, "INSUFFICIENT_STOCK", http.StatusBadRequest},
		{"driver error", errors.New("connection reset"), nil, "DATABASE_EXECUTE_FAILED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FromRepository(tt.err, tt.notFound, "details")
			appErr, ok := errors.AsType[AppError](got)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			assert.Equal(t, tt.wantHTTP, appErr.HTTPCode())
		})
	}

	assert.NoError(t, FromRepository(nil, ErrPetNotFound, ""))
}

func TestBaseError_IsMatchesCopies(t *testing.T) {
	t.Parallel()

	detailed := ErrSlotTaken.WithDetails("09:30")
	wrapped := errors.Wrap(detailed, "book appointment")

	assert.ErrorIs(t, wrapped, ErrSlotTaken)
	assert.NotErrorIs(t, wrapped, ErrPetNotFound)
	assert.Equal(t, "09:30", detailed.Details())
	assert.Equal(t, "Time slot is already booked", detailed.Message())
	assert.True(t, IsAppError(wrapped))
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestBaseError_WithMessage(t *testing.T) {
	t.Parallel()

	custom := ErrInvalidStatus.WithMessage("Only pending applications can be approved")

	assert.Equal(t, "INVALID_STATUS", custom.ErrorCode())
	assert.Equal(t, "Only pending applications can be approved", custom.Message())
	assert.Equal(t, "Operation not allowed in the current status", ErrInvalidStatus.Message())
}
