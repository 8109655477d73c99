package usecase

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// CareServiceInput creates or replaces a catalogue service.
type CareServiceInput struct {
	Name              string
	Category          entity.CareCategory
	Description       string
	BasePrice         float64
	PriceUnit         entity.PriceUnit
	AdvancePercentage float64
	AdditionalCharges []entity.AdditionalCharge
	StoreID           string
}

// CareBookingInput requests a stay. Without ServiceID the caller supplies ServiceCategory and BaseAmount.
// A nil Duration is derived from the dates.
type CareBookingInput struct {
	PetID               uuid.UUID
	PetName             string
	ServiceID           *uuid.UUID
	ServiceCategory     entity.CareCategory
	StartDate           time.Time
	EndDate             time.Time
	Duration            *entity.CareDuration
	Location            entity.CareLocation
	SpecialRequirements string
	BaseAmount          float64
}

// ActivityInput is a caregiver log entry.
type ActivityInput struct {
	Type        string
	Description string
	Images      []string
}

// CareUsecase covers the temporary care catalogue and bookings with OTP verified handovers.
type CareUsecase interface {
	ListServices(ctx context.Context, category entity.CareCategory) ([]*entity.CareService, error)
	GetService(ctx context.Context, id uuid.UUID) (*entity.CareService, error)
	ListManagedServices(ctx context.Context, actor *Actor, category entity.CareCategory) ([]*entity.CareService, error)
	CreateService(ctx context.Context, actor *Actor, input CareServiceInput) (*entity.CareService, error)
	UpdateService(ctx context.Context, actor *Actor, id uuid.UUID, input CareServiceInput) (*entity.CareService, error)
	DeactivateService(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.CareService, error)

	// Quote prices a booking request without saving it.
	Quote(ctx context.Context, input CareBookingInput) (*entity.CarePricing, error)
	CreateBooking(ctx context.Context, actor *Actor, input CareBookingInput) (*entity.CareBooking, error)
	ListMyBookings(ctx context.Context, actor *Actor, page entity.PageRequest) (*entity.Page[*entity.CareBooking], error)
	GetMyBooking(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.CareBooking, error)
	PayAdvance(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.CareBooking, error)
	CancelBooking(ctx context.Context, actor *Actor, id uuid.UUID, reason string) (*entity.CareBooking, error)
	ReviewBooking(ctx context.Context, actor *Actor, id uuid.UUID, rating int, comment string) (*entity.CareBooking, error)

	ListBookings(ctx context.Context, actor *Actor, filter entity.CareBookingFilter, page entity.PageRequest) (*entity.Page[*entity.CareBooking], error)
	GetBooking(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.CareBooking, error)
	AssignCaregiver(ctx context.Context, actor *Actor, id, caregiverID uuid.UUID) (*entity.CareBooking, error)
	GenerateDropOffOTP(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.CareBooking, error)
	VerifyDropOff(ctx context.Context, actor *Actor, id uuid.UUID, otp string) (*entity.CareBooking, error)
	LogActivity(ctx context.Context, actor *Actor, id uuid.UUID, input ActivityInput) (*entity.CareBooking, error)
	GeneratePickupOTP(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.CareBooking, error)
	VerifyPickup(ctx context.Context, actor *Actor, id uuid.UUID, otp string) (*entity.CareBooking, error)
}
