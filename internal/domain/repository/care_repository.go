package repository

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// CareServiceRepository persists the temporary care service catalogue.
type CareServiceRepository interface {
	Create(ctx context.Context, svc *entity.CareService) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CareService, error)
	Update(ctx context.Context, svc *entity.CareService) error
	List(ctx context.Context, category entity.CareCategory, activeOnly bool) ([]*entity.CareService, error)
}

// CareBookingRepository persists temporary care bookings.
type CareBookingRepository interface {
	Create(ctx context.Context, booking *entity.CareBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CareBooking, error)
	Update(ctx context.Context, booking *entity.CareBooking) error
	List(ctx context.Context, filter entity.CareBookingFilter, page entity.PageRequest) ([]*entity.CareBooking, int64, error)

	// FindOverlapping returns bookings of petID in statuses that intersect [start, end).
	FindOverlapping(ctx context.Context, petID uuid.UUID, start, end time.Time, statuses []entity.CareBookingStatus) ([]*entity.CareBooking, error)

	Count(ctx context.Context, filter entity.CareBookingFilter) (int64, error)
}
