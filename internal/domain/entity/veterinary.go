package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type BookingType string

const (
	BookingRoutine   BookingType = "routine"
	BookingWalkIn    BookingType = "walkin"
	BookingEmergency BookingType = "emergency"
)

type AppointmentStatus string

const (
	AppointmentPendingApproval AppointmentStatus = "pending_approval"
	AppointmentScheduled       AppointmentStatus = "scheduled"
	AppointmentConfirmed       AppointmentStatus = "confirmed"
	AppointmentInProgress      AppointmentStatus = "in_progress"
	AppointmentCompleted       AppointmentStatus = "completed"
	AppointmentCancelled       AppointmentStatus = "cancelled"
	AppointmentRejected        AppointmentStatus = "rejected"
)

// Clinic opening hours and slot length used to generate bookable slots.
const (
	ClinicOpenHour      = 9
	ClinicCloseHour     = 17
	SlotLength          = 30 * time.Minute
	MinEmergencyReason  = 10
	RoutineMaxDaysAhead = 7
	WalkInMaxDaysAhead  = 1
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPendingApproval: {AppointmentScheduled, AppointmentRejected, AppointmentCancelled},
	AppointmentScheduled:       {AppointmentConfirmed, AppointmentInProgress, AppointmentCancelled},
	AppointmentConfirmed:       {AppointmentInProgress, AppointmentCancelled},
	AppointmentInProgress:      {AppointmentCompleted},
}

// CanTransitionTo reports whether a manager may move an appointment from s to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// VetAppointment is a booking at a veterinary store.
type VetAppointment struct {
	ID                 uuid.UUID         `json:"id"`
	AppointmentNumber  string            `json:"appointmentNumber"`
	PetID              *uuid.UUID        `json:"petId,omitempty"`
	PetName            string            `json:"petName"`
	OwnerID            uuid.UUID         `json:"ownerId"`
	StoreID            string            `json:"storeId"`
	AppointmentDate    time.Time         `json:"appointmentDate"`
	TimeSlot           string            `json:"timeSlot"`
	BookingType        BookingType       `json:"bookingType"`
	VisitType          string            `json:"visitType,omitempty"`
	Reason             string            `json:"reason,omitempty"`
	Symptoms           string            `json:"symptoms,omitempty"`
	Status             AppointmentStatus `json:"status"`
	Amount             float64           `json:"amount,omitempty"`
	Diagnosis          string            `json:"diagnosis,omitempty"`
	Treatment          string            `json:"treatment,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time        `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// UserCancellable reports whether the owner may still cancel.
func (a *VetAppointment) UserCancellable() bool {
	return a.Status == AppointmentScheduled || a.Status == AppointmentPendingApproval
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	OwnerID     *uuid.UUID
	StoreID     string
	Date        *time.Time
	Status      AppointmentStatus
	BookingType BookingType
}

// DaySlots lists every HH:MM slot start between opening and closing hours.
func DaySlots() []string {
	slots := make([]string, 0, (ClinicCloseHour-ClinicOpenHour)*2)
	start := time.Date(2000, 1, 1, ClinicOpenHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, ClinicCloseHour, 0, 0, 0, time.UTC)
	for t := start; t.Before(end); t = t.Add(SlotLength) {
		slots = append(slots, fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
	}

	return slots
}

// SlotBlockingStatuses make a slot unavailable to other bookings. Emergencies waiting
// for approval are not in the set, so they never compete for a slot.
var SlotBlockingStatuses = []AppointmentStatus{
	AppointmentScheduled,
	AppointmentConfirmed,
	AppointmentInProgress,
	AppointmentCompleted,
}

// HoldsSlot reports whether the appointment occupies its time slot.
func (a *VetAppointment) HoldsSlot() bool {
	return a.TimeSlot != "" && slices.Contains(SlotBlockingStatuses, a.Status)
}

// TruncateToDay drops the time of day in t's location.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
