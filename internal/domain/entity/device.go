package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms accepted at registration.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// UserDevice is a push notification target registered by a signed-in user.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FCMToken  string    `json:"fcmToken"`
	DeviceID  string    `json:"deviceId"` // Client-generated identifier, stable across token rotations.
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotificationKind tags notification events so the worker can pick copy and data.
type NotificationKind string

const (
	NotificationPasswordReset      NotificationKind = "password_reset"
	NotificationApplicationStatus  NotificationKind = "adoption_application_status"
	NotificationReservationStatus  NotificationKind = "petshop_reservation_status"
	NotificationHandoverOTP        NotificationKind = "handover_otp"
	NotificationAppointmentStatus  NotificationKind = "vet_appointment_status"
	NotificationPrescriptionStatus NotificationKind = "prescription_status"
	NotificationOrderStatus        NotificationKind = "order_status"
	NotificationRescueAssigned     NotificationKind = "rescue_assigned"
	NotificationCareBookingStatus  NotificationKind = "care_booking_status"
	NotificationLowStock           NotificationKind = "low_stock"
)
