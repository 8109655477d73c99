package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

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

const slotDateLayout = "2006-01-02"

type veterinaryService struct {
	txManager repository.TransactionManager
	notifier  notifier
	now       func() time.Time
	logger    *slog.Logger
}

// VeterinaryServiceParams holds dependencies for VeterinaryService, injected by Fx.
type VeterinaryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewVeterinaryService is the constructor for veterinaryService.
func NewVeterinaryService(params VeterinaryServiceParams) usecase.VeterinaryUsecase {
	return &veterinaryService{
		txManager: params.TxManager,
		notifier:  newNotifier(params.Publisher, params.Logger),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *veterinaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *veterinaryService) BookAppointment(ctx context.Context, actor *usecase.Actor, input usecase.BookAppointmentInput) (*entity.VetAppointment, error) {
	now := srv.now()
	day := TruncateToLocalDay(input.AppointmentDate, now.Location())
	if err := srv.validateBooking(input, day, now); err != nil {
		return nil, err
	}

	appt := &entity.VetAppointment{
		ID:              uuid.New(),
		PetID:           input.PetID,
		PetName:         strings.TrimSpace(input.PetName),
		OwnerID:         actor.UserID,
		StoreID:         strings.TrimSpace(input.StoreID),
		AppointmentDate: day,
		TimeSlot:        input.TimeSlot,
		BookingType:     input.BookingType,
		VisitType:       input.VisitType,
		Reason:          strings.TrimSpace(input.Reason),
		Symptoms:        input.Symptoms,
		Status:          entity.AppointmentScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if appt.BookingType == entity.BookingEmergency {
		appt.Status = entity.AppointmentPendingApproval
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		apptRepo := repoFactory.AppointmentRepo()

		if appt.PetID != nil {
			pet, err := findOwnedPet(ctx, repoFactory.PetRepo(), actor.UserID, *appt.PetID)
			if err != nil {
				return err
			}
			if appt.PetName == "" {
				appt.PetName = pet.Name
			}
		}

		if appt.BookingType != entity.BookingEmergency {
			taken, err := apptRepo.SlotTaken(ctx, appt.StoreID, day, appt.TimeSlot)
			if err != nil {
				return domainerrors.FromRepository(err, nil, "check slot")
			}
			if taken {
				return domainerrors.ErrSlotTaken.WithDetails(appt.TimeSlot + " on " + day.Format(slotDateLayout))
			}
		}

		number, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixAppointment, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate appointment number")
		}
		appt.AppointmentNumber = number

		if err := apptRepo.Create(ctx, appt); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrSlotTaken
			}

			return domainerrors.FromRepository(err, nil, "create appointment")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to book appointment")
	}

	srv.log(ctx).Info("Appointment booked",
		slog.String("number", appt.AppointmentNumber),
		slog.String("type", string(appt.BookingType)),
		slog.String("storeID", appt.StoreID),
	)

	return appt, nil
}

// validateBooking applies the booking window of each booking type. day is the appointment date at midnight.
func (srv *veterinaryService) validateBooking(input usecase.BookAppointmentInput, day, now time.Time) error {
	if strings.TrimSpace(input.StoreID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("storeId is required")
	}
	if strings.TrimSpace(input.PetName) == "" && input.PetID == nil {
		return domainerrors.ErrValidationFailed.WithDetails("petId or petName is required")
	}
	if input.AppointmentDate.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("appointmentDate is required")
	}

	daysAhead := int(math.Round(day.Sub(entity.TruncateToDay(now)).Hours() / 24))

	switch input.BookingType {
	case entity.BookingRoutine:
		if daysAhead < 1 || daysAhead > entity.RoutineMaxDaysAhead {
			return domainerrors.ErrInvalidBookingDate.WithDetails("routine visits must be booked 1 to 7 days ahead")
		}
	case entity.BookingWalkIn:
		if daysAhead < 0 || daysAhead > entity.WalkInMaxDaysAhead {
			return domainerrors.ErrInvalidBookingDate.WithDetails("walk-ins are only accepted for today or tomorrow")
		}
	case entity.BookingEmergency:
		if len([]rune(strings.TrimSpace(input.Reason))) < entity.MinEmergencyReason {
			return domainerrors.ErrValidationFailed.WithDetails("emergency bookings need a reason of at least 10 characters")
		}
		if daysAhead < 0 || daysAhead > entity.RoutineMaxDaysAhead {
			return domainerrors.ErrInvalidBookingDate.WithDetails("emergency date must be within the next 7 days")
		}
		if input.TimeSlot == "" {
			return nil
		}
	default:
		return domainerrors.ErrValidationFailed.WithDetails("bookingType must be routine, walkin or emergency")
	}

	if !slices.Contains(entity.DaySlots(), input.TimeSlot) {
		return domainerrors.ErrValidationFailed.WithDetails("timeSlot must be a 30 minute slot between 09:00 and 17:00")
	}
	if daysAhead == 0 && !slotStart(day, input.TimeSlot).After(now) {
		return domainerrors.ErrInvalidBookingDate.WithDetails("slot " + input.TimeSlot + " has already started")
	}

	return nil
}

func (srv *veterinaryService) ListMyAppointments(ctx context.Context, actor *usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.VetAppointment], error) {
	return srv.list(ctx, entity.AppointmentFilter{OwnerID: &actor.UserID}, page)
}

func (srv *veterinaryService) GetMyAppointment(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.VetAppointment, error) {
	appt, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.OwnerID != actor.UserID {
		return nil, domainerrors.ErrAppointmentNotFound
	}

	return appt, nil
}

func (srv *veterinaryService) CancelAppointment(ctx context.Context, actor *usecase.Actor, id uuid.UUID, reason string) (*entity.VetAppointment, error) {
	return srv.mutate(ctx, id, "cancel appointment", func(appt *entity.VetAppointment) error {
		if appt.OwnerID != actor.UserID {
			return domainerrors.ErrAppointmentNotFound
		}
		if !appt.UserCancellable() {
			return domainerrors.ErrInvalidStatus.WithDetails("appointment is " + string(appt.Status))
		}

		now := srv.now()
		appt.Status = entity.AppointmentCancelled
		appt.CancellationReason = strings.TrimSpace(reason)
		appt.CancelledAt = &now

		return nil
	})
}

func (srv *veterinaryService) AvailableSlots(ctx context.Context, storeID string, date time.Time) (*usecase.SlotAvailability, error) {
	if strings.TrimSpace(storeID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("storeId is required")
	}

	now := srv.now()
	day := TruncateToLocalDay(date, now.Location())

	var booked []string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		slots, err := repoFactory.AppointmentRepo().BookedSlots(ctx, storeID, day, entity.SlotBlockingStatuses)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list booked slots")
		}
		booked = slots

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available slots")
	}

	result := &usecase.SlotAvailability{
		Date:      day.Format(slotDateLayout),
		StoreID:   storeID,
		Available: []string{},
		Booked:    []string{},
	}
	today := day.Equal(entity.TruncateToDay(now))
	for _, slot := range entity.DaySlots() {
		if today && !slotStart(day, slot).After(now) {
			continue
		}
		if slices.Contains(booked, slot) {
			result.Booked = append(result.Booked, slot)

			continue
		}
		result.Available = append(result.Available, slot)
	}

	return result, nil
}

func (srv *veterinaryService) ListAppointments(ctx context.Context, actor *usecase.Actor, filter entity.AppointmentFilter, page entity.PageRequest) (*entity.Page[*entity.VetAppointment], error) {
	if scope := actor.StoreScope(entity.ModuleVeterinary); scope != "" {
		filter.StoreID = scope
	}

	return srv.list(ctx, filter, page)
}

func (srv *veterinaryService) GetAppointment(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.VetAppointment, error) {
	appt, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessStore(entity.ModuleVeterinary, appt.StoreID) {
		return nil, domainerrors.ErrAppointmentNotFound
	}

	return appt, nil
}

// UpdateStatus moves an appointment along the clinic workflow. Approving an emergency
// into a slot re-checks that the slot is still free.
func (srv *veterinaryService) UpdateStatus(ctx context.Context, actor *usecase.Actor, id uuid.UUID, status entity.AppointmentStatus, notes string) (*entity.VetAppointment, error) {
	appt, err := srv.mutateWith(ctx, id, "update appointment status", func(repoFactory repository.RepositoryFactory, appt *entity.VetAppointment) error {
		if !actor.CanAccessStore(entity.ModuleVeterinary, appt.StoreID) {
			return domainerrors.ErrAppointmentNotFound
		}
		if !appt.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatus.WithDetails("cannot move from " + string(appt.Status) + " to " + string(status))
		}

		next := entity.VetAppointment{TimeSlot: appt.TimeSlot, Status: status}
		if !appt.HoldsSlot() && next.HoldsSlot() {
			taken, err := repoFactory.AppointmentRepo().SlotTaken(ctx, appt.StoreID, appt.AppointmentDate, appt.TimeSlot)
			if err != nil {
				return domainerrors.FromRepository(err, nil, "check slot")
			}
			if taken {
				return domainerrors.ErrSlotTaken
			}
		}

		appt.Status = status
		if notes = strings.TrimSpace(notes); notes != "" {
			appt.Notes = notes
		}
		if status == entity.AppointmentCancelled || status == entity.AppointmentRejected {
			now := srv.now()
			appt.CancelledAt = &now
			appt.CancellationReason = notes
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifier.notify(ctx, entity.NotificationAppointmentStatus, []uuid.UUID{appt.OwnerID},
		"Appointment "+appt.AppointmentNumber, "Your appointment is now "+strings.ReplaceAll(string(appt.Status), "_", " "),
		map[string]string{"appointmentId": appt.ID.String(), "status": string(appt.Status)},
	)

	return appt, nil
}

func (srv *veterinaryService) RecordConsultation(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.ConsultationInput) (*entity.VetAppointment, error) {
	if strings.TrimSpace(input.Diagnosis) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("diagnosis is required")
	}
	if input.Amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount cannot be negative")
	}

	return srv.mutate(ctx, id, "record consultation", func(appt *entity.VetAppointment) error {
		if !actor.CanAccessStore(entity.ModuleVeterinary, appt.StoreID) {
			return domainerrors.ErrAppointmentNotFound
		}
		if appt.Status != entity.AppointmentInProgress && appt.Status != entity.AppointmentCompleted {
			return domainerrors.ErrInvalidStatus.WithDetails("consultations can only be recorded for visits in progress")
		}

		appt.Diagnosis = strings.TrimSpace(input.Diagnosis)
		appt.Treatment = input.Treatment
		if input.Notes != "" {
			appt.Notes = input.Notes
		}
		if input.Amount > 0 {
			appt.Amount = input.Amount
		}
		appt.Status = entity.AppointmentCompleted

		return nil
	})
}

func (srv *veterinaryService) DeleteAppointment(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		apptRepo := repoFactory.AppointmentRepo()

		appt, err := apptRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrAppointmentNotFound, "find appointment")
		}
		if !actor.CanAccessStore(entity.ModuleVeterinary, appt.StoreID) {
			return domainerrors.ErrAppointmentNotFound
		}

		return domainerrors.FromRepository(apptRepo.Delete(ctx, id), domainerrors.ErrAppointmentNotFound, "delete appointment")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete appointment")
	}

	return nil
}

func (srv *veterinaryService) list(ctx context.Context, filter entity.AppointmentFilter, page entity.PageRequest) (*entity.Page[*entity.VetAppointment], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.VetAppointment]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appts, total, err := repoFactory.AppointmentRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list appointments")
		}
		result = newPage(appts, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return result, nil
}

func (srv *veterinaryService) find(ctx context.Context, id uuid.UUID) (*entity.VetAppointment, error) {
	var appt *entity.VetAppointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AppointmentRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrAppointmentNotFound, "find appointment")
		}
		appt = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get appointment")
	}

	return appt, nil
}

func (srv *veterinaryService) mutate(ctx context.Context, id uuid.UUID, op string, change func(*entity.VetAppointment) error) (*entity.VetAppointment, error) {
	return srv.mutateWith(ctx, id, op, func(_ repository.RepositoryFactory, appt *entity.VetAppointment) error {
		return change(appt)
	})
}

func (srv *veterinaryService) mutateWith(
	ctx context.Context,
	id uuid.UUID,
	op string,
	change func(repository.RepositoryFactory, *entity.VetAppointment) error,
) (*entity.VetAppointment, error) {
	var updated *entity.VetAppointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		apptRepo := repoFactory.AppointmentRepo()

		appt, err := apptRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrAppointmentNotFound, "find appointment")
		}
		if err := change(repoFactory, appt); err != nil {
			return err
		}

		appt.UpdatedAt = srv.now()
		if err := apptRepo.Update(ctx, appt); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		updated = appt

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return updated, nil
}

// TruncateToLocalDay returns midnight of t's calendar date in loc.
// Dates sent as bare YYYY-MM-DD arrive as UTC midnight and keep their calendar day.
func TruncateToLocalDay(t time.Time, loc *time.Location) time.Time {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		y, m, d := t.Date()

		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}

	return entity.TruncateToDay(t.In(loc))
}

func slotStart(day time.Time, slot string) time.Time {
	parsed, err := time.Parse("15:04", slot)
	if err != nil {
		return day
	}

	return day.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)
}
