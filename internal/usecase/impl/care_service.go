package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"petwelfare/config"
	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type careService struct {
	txManager repository.TransactionManager
	notifier  notifier
	otpTTL    time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// CareServiceParams holds dependencies for CareService, injected by Fx.
type CareServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCareService is the constructor for careService.
func NewCareService(params CareServiceParams) usecase.CareUsecase {
	srv := &careService{
		txManager: params.TxManager,
		notifier:  newNotifier(params.Publisher, params.Logger),
		otpTTL:    24 * time.Hour,
		now:       time.Now,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.HandoverOTPTTL > 0 {
		srv.otpTTL = params.Config.Auth.HandoverOTPTTL
	}

	return srv
}

func (srv *careService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *careService) ListServices(ctx context.Context, category entity.CareCategory) ([]*entity.CareService, error) {
	return srv.listServices(ctx, category, true)
}

func (srv *careService) ListManagedServices(ctx context.Context, _ *usecase.Actor, category entity.CareCategory) ([]*entity.CareService, error) {
	return srv.listServices(ctx, category, false)
}

func (srv *careService) listServices(ctx context.Context, category entity.CareCategory, activeOnly bool) ([]*entity.CareService, error) {
	if category != "" && !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category " + string(category))
	}

	services := []*entity.CareService{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CareServiceRepo().List(ctx, category, activeOnly)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list care services")
		}
		if found != nil {
			services = found
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list care services")
	}

	return services, nil
}

func (srv *careService) GetService(ctx context.Context, id uuid.UUID) (*entity.CareService, error) {
	var svc *entity.CareService
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CareServiceRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrServiceNotFound, "find care service")
		}
		svc = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get care service")
	}

	return svc, nil
}

func (srv *careService) CreateService(ctx context.Context, actor *usecase.Actor, input usecase.CareServiceInput) (*entity.CareService, error) {
	if err := validateCareServiceInput(input); err != nil {
		return nil, err
	}

	now := srv.now()
	svc := &entity.CareService{ID: uuid.New(), IsActive: true, CreatedAt: now}
	applyCareServiceInput(svc, input, now)
	if scope := actor.StoreScope(entity.ModuleTemporaryCare); scope != "" {
		svc.StoreID = scope
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return domainerrors.FromRepository(repoFactory.CareServiceRepo().Create(ctx, svc), nil, "create care service")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create care service")
	}

	srv.log(ctx).Info("Care service created", slog.String("serviceID", svc.ID.String()), slog.String("category", string(svc.Category)))

	return svc, nil
}

func (srv *careService) UpdateService(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.CareServiceInput) (*entity.CareService, error) {
	if err := validateCareServiceInput(input); err != nil {
		return nil, err
	}

	return srv.mutateService(ctx, actor, id, "update care service", func(svc *entity.CareService) {
		storeID := svc.StoreID
		applyCareServiceInput(svc, input, srv.now())
		if actor.StoreScope(entity.ModuleTemporaryCare) != "" {
			svc.StoreID = storeID
		}
	})
}

func (srv *careService) DeactivateService(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.CareService, error) {
	return srv.mutateService(ctx, actor, id, "deactivate care service", func(svc *entity.CareService) {
		svc.IsActive = false
		svc.UpdatedAt = srv.now()
	})
}

func (srv *careService) mutateService(ctx context.Context, actor *usecase.Actor, id uuid.UUID, op string, change func(*entity.CareService)) (*entity.CareService, error) {
	var svc *entity.CareService
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.CareServiceRepo()

		found, err := serviceRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrServiceNotFound, "find care service")
		}
		if !actor.CanAccessStore(entity.ModuleTemporaryCare, found.StoreID) {
			return domainerrors.ErrServiceNotFound
		}
		change(found)
		if err := serviceRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		svc = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return svc, nil
}

func validateCareServiceInput(input usecase.CareServiceInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case !input.Category.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("category must be boarding, in-home, daycare or overnight")
	case input.BasePrice < 0:
		return domainerrors.ErrValidationFailed.WithDetails("basePrice cannot be negative")
	case input.AdvancePercentage < 0 || input.AdvancePercentage > 100:
		return domainerrors.ErrValidationFailed.WithDetails("advancePercentage must be between 0 and 100")
	}
	switch input.PriceUnit {
	case "", entity.PricePerDay, entity.PricePerHour, entity.PriceFixed:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("priceUnit must be per_day, per_hour or fixed")
	}
	for _, charge := range input.AdditionalCharges {
		if strings.TrimSpace(charge.Name) == "" || charge.Amount < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("additional charges need a name and a non-negative amount")
		}
	}

	return nil
}

func applyCareServiceInput(svc *entity.CareService, input usecase.CareServiceInput, now time.Time) {
	svc.Name = strings.TrimSpace(input.Name)
	svc.Category = input.Category
	svc.Description = input.Description
	svc.BasePrice = input.BasePrice
	svc.PriceUnit = input.PriceUnit
	if svc.PriceUnit == "" {
		svc.PriceUnit = entity.PricePerDay
	}
	svc.AdvancePercentage = input.AdvancePercentage
	if svc.AdvancePercentage == 0 {
		svc.AdvancePercentage = entity.DefaultAdvancePercentage
	}
	svc.AdditionalCharges = input.AdditionalCharges
	svc.StoreID = strings.TrimSpace(input.StoreID)
	svc.UpdatedAt = now
}

func (srv *careService) Quote(ctx context.Context, input usecase.CareBookingInput) (*entity.CarePricing, error) {
	if err := srv.validateDates(input); err != nil {
		return nil, err
	}

	var pricing entity.CarePricing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pet, err := findOwnedPet(ctx, repoFactory.PetRepo(), actor.UserID, input.PetID)
		if err != nil {
			return err
		}
		if booking.PetName == "" {
			booking.PetName = pet.Name
		}

		svc, err := findBookableService(ctx, repoFactory, input.ServiceID)
		if err != nil {
			return err
		}
		pricing, _, err = priceBooking(input, svc)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to quote booking")
	}

	return &pricing, nil
}

func (srv *careService) CreateBooking(ctx context.Context, actor *usecase.Actor, input usecase.CareBookingInput) (*entity.CareBooking, error) {
	if input.PetID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("petId is required")
	}
	if err := srv.validateDates(input); err != nil {
		return nil, err
	}

	now := srv.now()
	booking := &entity.CareBooking{
		ID:                  uuid.New(),
		UserID:              actor.UserID,
		PetID:               input.PetID,
		PetName:             strings.TrimSpace(input.PetName),
		ServiceID:           input.ServiceID,
		StartDate:           input.StartDate,
		EndDate:             input.EndDate,
		Location:            input.Location,
		SpecialRequirements: strings.TrimSpace(input.SpecialRequirements),
		PaymentStatus:       entity.CarePaymentStatus{Advance: entity.PaymentPending, Final: entity.PaymentPending},
		Status:              entity.CarePendingPayment,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		svc, err := findBookableService(ctx, repoFactory, input.ServiceID)
		if err != nil {
			return err
		}
		pricing, duration, err := priceBooking(input, svc)
		if err != nil {
			return err
		}
		booking.Pricing = pricing
		booking.Duration = duration
		booking.ServiceCategory = input.ServiceCategory
		if svc != nil {
			booking.ServiceCategory = svc.Category
			booking.StoreID = svc.StoreID
		}
		if err := normalizeCareLocation(booking); err != nil {
			return err
		}

		if err := checkPetFree(ctx, repoFactory.CareBookingRepo(), booking); err != nil {
			return err
		}

		number, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixCareBooking, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate booking number")
		}
		booking.BookingNumber = number

		return domainerrors.FromRepository(repoFactory.CareBookingRepo().Create(ctx, booking), nil, "create care booking")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create care booking")
	}

	srv.log(ctx).Info("Care booking created",
		slog.String("bookingNumber", booking.BookingNumber),
		slog.String("category", string(booking.ServiceCategory)),
		slog.Float64("total", booking.Pricing.TotalAmount),
	)

	return booking, nil
}

func (srv *careService) validateDates(input usecase.CareBookingInput) error {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("startDate and endDate are required")
	}
	if !input.EndDate.After(input.StartDate) {
		return domainerrors.ErrInvalidDateRange
	}
	if input.StartDate.Before(srv.now()) {
		return domainerrors.ErrInvalidDateRange.WithDetails("startDate is in the past")
	}
	if input.Duration != nil {
		if input.Duration.Value <= 0 || (input.Duration.Unit != entity.DurationDays && input.Duration.Unit != entity.DurationHours) {
			return domainerrors.ErrValidationFailed.WithDetails("duration needs a positive value in hours or days")
		}
	}

	return nil
}

func findBookableService(ctx context.Context, repoFactory repository.RepositoryFactory, id *uuid.UUID) (*entity.CareService, error) {
	if id == nil {
		return nil, nil
	}

	svc, err := repoFactory.CareServiceRepo().FindByID(ctx, *id)
	if err != nil {
		return nil, domainerrors.FromRepository(err, domainerrors.ErrServiceNotFound, "find care service")
	}
	if !svc.IsActive {
		return nil, domainerrors.ErrServiceNotFound.WithDetails("service is no longer offered")
	}

	return svc, nil
}

// priceBooking quotes from the catalogue service when there is one, otherwise from the caller's base amount.
func priceBooking(input usecase.CareBookingInput, svc *entity.CareService) (entity.CarePricing, entity.CareDuration, error) {
	duration := entity.DurationBetween(input.StartDate, input.EndDate)
	if input.Duration != nil {
		duration = *input.Duration
	}

	if svc != nil {
		return entity.QuoteCare(svc.BaseFor(duration), svc.AdditionalCharges, svc.AdvancePercentage), duration, nil
	}

	if !input.ServiceCategory.IsValid() {
		return entity.CarePricing{}, duration, domainerrors.ErrValidationFailed.WithDetails("serviceCategory must be boarding, in-home, daycare or overnight")
	}
	if input.BaseAmount <= 0 {
		return entity.CarePricing{}, duration, domainerrors.ErrValidationFailed.WithDetails("baseAmount is required without a serviceId")
	}

	return entity.QuoteCare(input.BaseAmount, nil, entity.DefaultAdvancePercentage), duration, nil
}

func normalizeCareLocation(booking *entity.CareBooking) error {
	if booking.ServiceCategory == entity.CareInHome {
		booking.Location.Type = entity.LocationCustomerHome
	}
	if booking.Location.Type == "" {
		booking.Location.Type = entity.LocationFacility
	}
	switch booking.Location.Type {
	case entity.LocationFacility:
	case entity.LocationCustomerHome:
		if booking.Location.Address == nil {
			return domainerrors.ErrValidationFailed.WithDetails("in-home care needs an address")
		}
	default:
		return domainerrors.ErrValidationFailed.WithDetails("location type must be facility or customer_home")
	}

	return nil
}

func checkPetFree(ctx context.Context, bookingRepo repository.CareBookingRepository, booking *entity.CareBooking) error {
	clashes, err := bookingRepo.FindOverlapping(ctx, booking.PetID, booking.StartDate, booking.EndDate, entity.CareConflictStatuses)
	if err != nil {
		return domainerrors.FromRepository(err, nil, "find overlapping bookings")
	}
	for _, other := range clashes {
		if other.ID != booking.ID && other.Overlaps(booking.StartDate, booking.EndDate) {
			return domainerrors.ErrBookingConflict.WithDetails("overlaps " + other.BookingNumber)
		}
	}

	return nil
}

func (srv *careService) ListMyBookings(ctx context.Context, actor *usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.CareBooking], error) {
	return srv.list(ctx, entity.CareBookingFilter{UserID: &actor.UserID}, page)
}

func (srv *careService) GetMyBooking(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.CareBooking, error) {
	booking, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID {
		return nil, domainerrors.ErrBookingNotFound
	}

	return booking, nil
}

// PayAdvance records the advance and confirms the booking. The pet must still be free for the dates.
func (srv *careService) PayAdvance(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.CareBooking, error) {
	booking, err := srv.mutate(ctx, id, "pay advance", func(repoFactory repository.RepositoryFactory, booking *entity.CareBooking) error {
		if booking.UserID != actor.UserID {
			return domainerrors.ErrBookingNotFound
		}
		if booking.Status != entity.CarePendingPayment {
			return domainerrors.ErrInvalidStatus.WithDetails("booking is " + string(booking.Status))
		}
		if err := checkPetFree(ctx, repoFactory.CareBookingRepo(), booking); err != nil {
			return err
		}

		booking.PaymentStatus.Advance = entity.PaymentCompleted
		booking.Status = entity.CareConfirmed

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifyOwner(ctx, booking, "Booking confirmed", nil)

	return booking, nil
}

func (srv *careService) CancelBooking(ctx context.Context, actor *usecase.Actor, id uuid.UUID, reason string) (*entity.CareBooking, error) {
	booking, err := srv.mutate(ctx, id, "cancel care booking", func(_ repository.RepositoryFactory, booking *entity.CareBooking) error {
		if booking.UserID != actor.UserID {
			return domainerrors.ErrBookingNotFound
		}
		if booking.Status != entity.CarePendingPayment && booking.Status != entity.CareConfirmed {
			return domainerrors.ErrInvalidStatus.WithDetails("booking is " + string(booking.Status))
		}

		now := srv.now()
		if !booking.CanCancel(now) {
			return domainerrors.ErrCancelWindow
		}

		refund := booking.RefundAmount(now)
		booking.Cancellation = &entity.CareCancellation{
			Reason:       strings.TrimSpace(reason),
			CancelledBy:  actor.UserID,
			CancelledAt:  now,
			RefundAmount: refund,
		}
		booking.Status = entity.CareCancelled
		if refund > 0 {
			booking.Status = entity.CareRefunded
			booking.PaymentStatus.Advance = entity.PaymentRefunded
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Care booking cancelled",
		slog.String("bookingNumber", booking.BookingNumber),
		slog.Float64("refund", booking.Cancellation.RefundAmount),
	)

	return booking, nil
}

func (srv *careService) ReviewBooking(ctx context.Context, actor *usecase.Actor, id uuid.UUID, rating int, comment string) (*entity.CareBooking, error) {
	if rating < 1 || rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	return srv.mutate(ctx, id, "review care booking", func(_ repository.RepositoryFactory, booking *entity.CareBooking) error {
		if booking.UserID != actor.UserID {
			return domainerrors.ErrBookingNotFound
		}
		if booking.Status != entity.CareCompleted {
			return domainerrors.ErrInvalidStatus.WithDetails("only completed bookings can be reviewed")
		}
		if booking.Review != nil {
			return domainerrors.ErrReviewExists
		}
		booking.Review = &entity.CareReview{Rating: rating, Comment: strings.TrimSpace(comment), ReviewedAt: srv.now()}

		return nil
	})
}

// ListBookings is limited to the manager's store, and to their own assignments for caregivers.
func (srv *careService) ListBookings(ctx context.Context, actor *usecase.Actor, filter entity.CareBookingFilter, page entity.PageRequest) (*entity.Page[*entity.CareBooking], error) {
	if scope := actor.StoreScope(entity.ModuleTemporaryCare); scope != "" {
		filter.StoreID = scope
	}
	if isCaregiver(actor) {
		filter.CaregiverID = &actor.UserID
	}

	return srv.list(ctx, filter, page)
}

func (srv *careService) GetBooking(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.CareBooking, error) {
	booking, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkCareStaff(actor, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (srv *careService) AssignCaregiver(ctx context.Context, actor *usecase.Actor, id, caregiverID uuid.UUID) (*entity.CareBooking, error) {
	booking, err := srv.staffMutate(ctx, actor, id, "assign caregiver", func(repoFactory repository.RepositoryFactory, booking *entity.CareBooking) error {
		if booking.Status != entity.CareConfirmed && booking.Status != entity.CareInProgress && booking.Status != entity.CarePendingPayment {
			return domainerrors.ErrInvalidStatus.WithDetails("booking is " + string(booking.Status))
		}

		caregiver, err := repoFactory.UserRepo().FindByID(ctx, caregiverID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find caregiver")
		}
		if !caregiver.IsActive || caregiver.Module != entity.ModuleTemporaryCare {
			return domainerrors.ErrValidationFailed.WithDetails("caregiver must be active temporary care staff")
		}
		if !slices.Contains(booking.AssignedCaregivers, caregiverID) {
			booking.AssignedCaregivers = append(booking.AssignedCaregivers, caregiverID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifier.notify(ctx, entity.NotificationCareBookingStatus, []uuid.UUID{caregiverID},
		"New assignment", "You have been assigned to booking "+booking.BookingNumber,
		map[string]string{"bookingId": booking.ID.String()},
	)

	return booking, nil
}

func (srv *careService) GenerateDropOffOTP(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.CareBooking, error) {
	return srv.issueOTP(ctx, actor, id, entity.CareConfirmed, "drop-off", func(b *entity.CareBooking) *entity.CareOTP {
		return &b.Handover.DropOff
	})
}

func (srv *careService) GeneratePickupOTP(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.CareBooking, error) {
	return srv.issueOTP(ctx, actor, id, entity.CareInProgress, "pickup", func(b *entity.CareBooking) *entity.CareOTP {
		return &b.Handover.Pickup
	})
}

// issueOTP replaces the handover code and sends it to the owner.
func (srv *careService) issueOTP(
	ctx context.Context,
	actor *usecase.Actor,
	id uuid.UUID,
	required entity.CareBookingStatus,
	stage string,
	slot func(*entity.CareBooking) *entity.CareOTP,
) (*entity.CareBooking, error) {
	var code string
	booking, err := srv.staffMutate(ctx, actor, id, "generate "+stage+" otp", func(_ repository.RepositoryFactory, booking *entity.CareBooking) error {
		if booking.Status != required {
			return domainerrors.ErrInvalidStatus.WithDetails(stage + " codes need a " + string(required) + " booking")
		}

		otp, err := generateOTP()
		if err != nil {
			return err
		}
		now := srv.now()
		expires := now.Add(srv.otpTTL)
		*slot(booking) = entity.CareOTP{OTP: otp, GeneratedAt: &now, ExpiresAt: &expires}
		code = otp

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifyOwner(ctx, booking, "Your "+stage+" code is "+code, map[string]string{"otp": code, "stage": stage})

	return booking, nil
}

func (srv *careService) VerifyDropOff(ctx context.Context, actor *usecase.Actor, id uuid.UUID, otp string) (*entity.CareBooking, error) {
	booking, err := srv.verifyOTP(ctx, actor, id, otp, entity.CareConfirmed, func(b *entity.CareBooking) *entity.CareOTP {
		return &b.Handover.DropOff
	}, func(b *entity.CareBooking) {
		b.Status = entity.CareInProgress
	})
	if err != nil {
		return nil, err
	}

	srv.notifyOwner(ctx, booking, "Your pet has been dropped off", nil)

	return booking, nil
}

func (srv *careService) VerifyPickup(ctx context.Context, actor *usecase.Actor, id uuid.UUID, otp string) (*entity.CareBooking, error) {
	booking, err := srv.verifyOTP(ctx, actor, id, otp, entity.CareInProgress, func(b *entity.CareBooking) *entity.CareOTP {
		return &b.Handover.Pickup
	}, func(b *entity.CareBooking) {
		b.Status = entity.CareCompleted
		b.PaymentStatus.Final = entity.PaymentCompleted
	})
	if err != nil {
		return nil, err
	}

	srv.notifyOwner(ctx, booking, "Your pet has been picked up", nil)

	return booking, nil
}

func (srv *careService) verifyOTP(
	ctx context.Context,
	actor *usecase.Actor,
	id uuid.UUID,
	otp string,
	required entity.CareBookingStatus,
	slot func(*entity.CareBooking) *entity.CareOTP,
	complete func(*entity.CareBooking),
) (*entity.CareBooking, error) {
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("otp is required")
	}

	return srv.staffMutate(ctx, actor, id, "verify handover", func(_ repository.RepositoryFactory, booking *entity.CareBooking) error {
		if booking.Status != required {
			return domainerrors.ErrInvalidStatus.WithDetails("booking is " + string(booking.Status))
		}

		code := slot(booking)
		now := srv.now()
		if code.ExpiresAt != nil && !now.Before(*code.ExpiresAt) && !code.Verified {
			return domainerrors.ErrOTPExpired
		}
		if !code.Matches(otp, now) {
			return domainerrors.ErrOTPInvalid
		}

		code.Verified = true
		code.VerifiedAt = &now
		complete(booking)

		return nil
	})
}

func (srv *careService) LogActivity(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.ActivityInput) (*entity.CareBooking, error) {
	if strings.TrimSpace(input.Type) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type and description are required")
	}

	return srv.staffMutate(ctx, actor, id, "log care activity", func(_ repository.RepositoryFactory, booking *entity.CareBooking) error {
		if booking.Status != entity.CareInProgress {
			return domainerrors.ErrInvalidStatus.WithDetails("activities can only be logged during a stay")
		}
		booking.ActivityLog = append(booking.ActivityLog, entity.CareActivity{
			Type:        strings.TrimSpace(input.Type),
			Description: strings.TrimSpace(input.Description),
			Images:      compactStrings(input.Images),
			LoggedBy:    actor.UserID,
			At:          srv.now(),
		})

		return nil
	})
}

func isCaregiver(actor *usecase.Actor) bool {
	return actor.Role == entity.ModuleRoleName(entity.ModuleTemporaryCare, entity.StaffWorker)
}

func checkCareStaff(actor *usecase.Actor, booking *entity.CareBooking) error {
	if !actor.CanAccessStore(entity.ModuleTemporaryCare, booking.StoreID) {
		return domainerrors.ErrBookingNotFound
	}
	if isCaregiver(actor) && !slices.Contains(booking.AssignedCaregivers, actor.UserID) {
		return domainerrors.ErrBookingNotFound
	}

	return nil
}

func (srv *careService) staffMutate(
	ctx context.Context,
	actor *usecase.Actor,
	id uuid.UUID,
	op string,
	change func(repository.RepositoryFactory, *entity.CareBooking) error,
) (*entity.CareBooking, error) {
	return srv.mutate(ctx, id, op, func(repoFactory repository.RepositoryFactory, booking *entity.CareBooking) error {
		if err := checkCareStaff(actor, booking); err != nil {
			return err
		}

		return change(repoFactory, booking)
	})
}

func (srv *careService) mutate(
	ctx context.Context,
	id uuid.UUID,
	op string,
	change func(repository.RepositoryFactory, *entity.CareBooking) error,
) (*entity.CareBooking, error) {
	var booking *entity.CareBooking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.CareBookingRepo()

		found, err := bookingRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrBookingNotFound, "find care booking")
		}
		if err := change(repoFactory, found); err != nil {
			return err
		}

		found.UpdatedAt = srv.now()
		if err := bookingRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		booking = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return booking, nil
}

func (srv *careService) list(ctx context.Context, filter entity.CareBookingFilter, page entity.PageRequest) (*entity.Page[*entity.CareBooking], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.CareBooking]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookings, total, err := repoFactory.CareBookingRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list care bookings")
		}
		result = newPage(bookings, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list care bookings")
	}

	return result, nil
}

func (srv *careService) find(ctx context.Context, id uuid.UUID) (*entity.CareBooking, error) {
	var booking *entity.CareBooking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CareBookingRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrBookingNotFound, "find care booking")
		}
		booking = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get care booking")
	}

	return booking, nil
}

func (srv *careService) notifyOwner(ctx context.Context, booking *entity.CareBooking, body string, extra map[string]string) {
	data := map[string]string{
		"bookingId": booking.ID.String(),
		"status":    string(booking.Status),
		"total":     strconv.FormatFloat(booking.Pricing.TotalAmount, 'f', 2, 64),
	}
	maps.Copy(data, extra)
	kind := entity.NotificationCareBookingStatus
	if _, ok := extra["otp"]; ok {
		kind = entity.NotificationHandoverOTP
	}

	srv.notifier.notify(ctx, kind, []uuid.UUID{booking.UserID}, "Booking "+booking.BookingNumber, body, data)
}
