package usecase

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// BookAppointmentInput books a veterinary visit. TimeSlot is optional for emergencies.
type BookAppointmentInput struct {
	StoreID         string
	PetID           *uuid.UUID
	PetName         string
	AppointmentDate time.Time
	TimeSlot        string
	BookingType     entity.BookingType
	VisitType       string
	Reason          string
	Symptoms        string
}

// ConsultationInput records the outcome of a visit.
type ConsultationInput struct {
	Diagnosis string
	Treatment string
	Notes     string
	Amount    float64
}

// SlotAvailability lists the free and taken slots of a store on one day.
type SlotAvailability struct {
	Date      string   `json:"date"`
	StoreID   string   `json:"storeId"`
	Available []string `json:"availableSlots"`
	Booked    []string `json:"bookedSlots"`
}

// VeterinaryUsecase covers appointment booking and clinic management.
type VeterinaryUsecase interface {
	BookAppointment(ctx context.Context, actor *Actor, input BookAppointmentInput) (*entity.VetAppointment, error)
	ListMyAppointments(ctx context.Context, actor *Actor, page entity.PageRequest) (*entity.Page[*entity.VetAppointment], error)
	GetMyAppointment(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.VetAppointment, error)
	CancelAppointment(ctx context.Context, actor *Actor, id uuid.UUID, reason string) (*entity.VetAppointment, error)

	// AvailableSlots lists the 30 minute slots between 09:00 and 17:00 that are still free.
	AvailableSlots(ctx context.Context, storeID string, date time.Time) (*SlotAvailability, error)

	ListAppointments(ctx context.Context, actor *Actor, filter entity.AppointmentFilter, page entity.PageRequest) (*entity.Page[*entity.VetAppointment], error)
	GetAppointment(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.VetAppointment, error)
	UpdateStatus(ctx context.Context, actor *Actor, id uuid.UUID, status entity.AppointmentStatus, notes string) (*entity.VetAppointment, error)
	RecordConsultation(ctx context.Context, actor *Actor, id uuid.UUID, input ConsultationInput) (*entity.VetAppointment, error)
	DeleteAppointment(ctx context.Context, actor *Actor, id uuid.UUID) error
}
