package repository

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentRepository persists veterinary appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.VetAppointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VetAppointment, error)
	Update(ctx context.Context, appt *entity.VetAppointment) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List orders emergencies first, then by date and slot.
	List(ctx context.Context, filter entity.AppointmentFilter, page entity.PageRequest) ([]*entity.VetAppointment, int64, error)

	// BookedSlots returns the slots on date held by appointments in statuses.
	BookedSlots(ctx context.Context, storeID string, date time.Time, statuses []entity.AppointmentStatus) ([]string, error)

	// SlotTaken reports whether an appointment in entity.SlotBlockingStatuses holds the slot.
	SlotTaken(ctx context.Context, storeID string, date time.Time, slot string) (bool, error)

	Count(ctx context.Context, filter entity.AppointmentFilter) (int64, error)
}
