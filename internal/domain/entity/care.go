package entity

import (
	"crypto/subtle"
	"math"
	"time"

	"github.com/google/uuid"
)

type CareCategory string

const (
	CareBoarding  CareCategory = "boarding"
	CareInHome    CareCategory = "in-home"
	CareDaycare   CareCategory = "daycare"
	CareOvernight CareCategory = "overnight"
)

// IsValid reports whether c is a known service category.
func (c CareCategory) IsValid() bool {
	switch c {
	case CareBoarding, CareInHome, CareDaycare, CareOvernight:
		return true
	}

	return false
}

type PriceUnit string

const (
	PricePerDay  PriceUnit = "per_day"
	PricePerHour PriceUnit = "per_hour"
	PriceFixed   PriceUnit = "fixed"
)

// DefaultAdvancePercentage is charged up front when a service does not set its own.
const DefaultAdvancePercentage = 50.0

// AdditionalCharge is an extra line added on top of the base price.
type AdditionalCharge struct {
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	IsPercentage bool    `json:"isPercentage"`
}

// CareService is a bookable offering in the temporary care catalogue.
type CareService struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Category          CareCategory       `json:"category"`
	Description       string             `json:"description,omitempty"`
	BasePrice         float64            `json:"basePrice"`
	PriceUnit         PriceUnit          `json:"priceUnit"`
	AdvancePercentage float64            `json:"advancePercentage"`
	AdditionalCharges []AdditionalCharge `json:"additionalCharges,omitempty"`
	StoreID           string             `json:"storeId,omitempty"`
	IsActive          bool               `json:"isActive"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// BaseFor prices the service for d before extras and tax.
func (s *CareService) BaseFor(d CareDuration) float64 {
	switch s.PriceUnit {
	case PricePerHour:
		return s.BasePrice * float64(d.Hours())
	case PriceFixed:
		return s.BasePrice
	default:
		return s.BasePrice * float64(d.Days())
	}
}

type DurationUnit string

const (
	DurationHours DurationUnit = "hours"
	DurationDays  DurationUnit = "days"
)

// CareDuration is the length of a booking as entered by the user.
type CareDuration struct {
	Value int          `json:"value"`
	Unit  DurationUnit `json:"unit"`
}

// Days rounds hour based durations up to whole days.
func (d CareDuration) Days() int {
	if d.Unit == DurationHours {
		return int(math.Ceil(float64(d.Value) / 24))
	}

	return d.Value
}

// Hours converts the duration to hours.
func (d CareDuration) Hours() int {
	if d.Unit == DurationDays {
		return d.Value * 24
	}

	return d.Value
}

// DurationBetween derives a day based duration from a date range, rounding up.
func DurationBetween(start, end time.Time) CareDuration {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}

	return CareDuration{Value: days, Unit: DurationDays}
}

// CarePricing is the quote stored on a booking.
type CarePricing struct {
	BaseAmount       float64 `json:"baseAmount"`
	AdditionalAmount float64 `json:"additionalAmount"`
	Tax              float64 `json:"tax"`
	TotalAmount      float64 `json:"totalAmount"`
	AdvanceAmount    float64 `json:"advanceAmount"`
	RemainingAmount  float64 `json:"remainingAmount"`
}

// QuoteCare adds extras and tax to base and splits the total into advance and remainder.
func QuoteCare(base float64, extras []AdditionalCharge, advancePct float64) CarePricing {
	if advancePct <= 0 {
		advancePct = DefaultAdvancePercentage
	}

	var additional float64
	for _, charge := range extras {
		if charge.IsPercentage {
			additional += Percent(base, charge.Amount)
		} else {
			additional += charge.Amount
		}
	}

	subtotal := base + additional
	tax := roundMoney(Percent(subtotal, TaxPercentage))
	total := roundMoney(subtotal + tax)
	advance := roundMoney(Percent(total, advancePct))

	return CarePricing{
		BaseAmount:       roundMoney(base),
		AdditionalAmount: roundMoney(additional),
		Tax:              tax,
		TotalAmount:      total,
		AdvanceAmount:    advance,
		RemainingAmount:  roundMoney(total - advance),
	}
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

type CareBookingStatus string

const (
	CarePendingPayment CareBookingStatus = "pending_payment"
	CareConfirmed      CareBookingStatus = "confirmed"
	CareInProgress     CareBookingStatus = "in_progress"
	CareCompleted      CareBookingStatus = "completed"
	CareCancelled      CareBookingStatus = "cancelled"
	CareRefunded       CareBookingStatus = "refunded"
)

// CarePaymentStatus tracks the two instalments of a booking.
type CarePaymentStatus struct {
	Advance PaymentStatus `json:"advance"`
	Final   PaymentStatus `json:"final"`
}

// CareOTP is a drop-off or pickup verification code.
type CareOTP struct {
	OTP         string     `json:"otp,omitempty"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Verified    bool       `json:"verified"`
	VerifiedAt  *time.Time `json:"verifiedAt,omitempty"`
}

// Matches reports whether otp is the current, unexpired and unverified code.
func (c *CareOTP) Matches(otp string, now time.Time) bool {
	if c.OTP == "" || c.Verified || c.ExpiresAt == nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(c.OTP), []byte(otp)) == 1 && now.Before(*c.ExpiresAt)
}

// CareHandover holds both ends of a stay.
type CareHandover struct {
	DropOff CareOTP `json:"dropOff"`
	Pickup  CareOTP `json:"pickup"`
}

// CareActivity is a caregiver's log entry during a stay.
type CareActivity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Images      []string  `json:"images,omitempty"`
	LoggedBy    uuid.UUID `json:"loggedBy"`
	At          time.Time `json:"at"`
}

// CareCancellation records who cancelled and what was refunded.
type CareCancellation struct {
	Reason       string    `json:"reason,omitempty"`
	CancelledBy  uuid.UUID `json:"cancelledBy"`
	CancelledAt  time.Time `json:"cancelledAt"`
	RefundAmount float64   `json:"refundAmount"`
}

// CareReview is the owner's rating after completion.
type CareReview struct {
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	ReviewedAt time.Time `json:"reviewedAt"`
}

// CareLocation is where the stay takes place.
type CareLocation struct {
	Type    string   `json:"type"`
	Address *Address `json:"address,omitempty"`
}

// Care location types.
const (
	LocationFacility     = "facility"
	LocationCustomerHome = "customer_home"
)

// Cancellation and refund windows measured before the booking starts.
const (
	CareCancelWindow     = 24 * time.Hour
	CareFullRefundWindow = 48 * time.Hour
)

// CareBooking is a temporary care stay.
type CareBooking struct {
	ID                  uuid.UUID         `json:"id"`
	BookingNumber       string            `json:"bookingNumber"`
	UserID              uuid.UUID         `json:"userId"`
	PetID               uuid.UUID         `json:"petId"`
	PetName             string            `json:"petName,omitempty"`
	ServiceID           *uuid.UUID        `json:"serviceId,omitempty"`
	ServiceCategory     CareCategory      `json:"serviceCategory"`
	StoreID             string            `json:"storeId,omitempty"`
	StartDate           time.Time         `json:"startDate"`
	EndDate             time.Time         `json:"endDate"`
	Duration            CareDuration      `json:"duration"`
	Location            CareLocation      `json:"location"`
	SpecialRequirements string            `json:"specialRequirements,omitempty"`
	Pricing             CarePricing       `json:"pricing"`
	PaymentStatus       CarePaymentStatus `json:"paymentStatus"`
	Status              CareBookingStatus `json:"status"`
	AssignedCaregivers  []uuid.UUID       `json:"assignedCaregivers,omitempty"`
	Handover            CareHandover      `json:"handover"`
	ActivityLog         []CareActivity    `json:"activityLog,omitempty"`
	Cancellation        *CareCancellation `json:"cancellation,omitempty"`
	Review              *CareReview       `json:"review,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// DurationInDays is the billed number of days.
func (b *CareBooking) DurationInDays() int {
	return b.Duration.Days()
}

// CanCancel reports whether the owner may still cancel at now.
func (b *CareBooking) CanCancel(now time.Time) bool {
	if b.Status != CarePendingPayment && b.Status != CareConfirmed {
		return false
	}

	return b.StartDate.Sub(now) > CareCancelWindow
}

// RefundAmount is the share of the paid advance returned when cancelling at now.
func (b *CareBooking) RefundAmount(now time.Time) float64 {
	if b.PaymentStatus.Advance != PaymentCompleted {
		return 0
	}

	until := b.StartDate.Sub(now)
	switch {
	case until > CareFullRefundWindow:
		return b.Pricing.AdvanceAmount
	case until > CareCancelWindow:
		return roundMoney(b.Pricing.AdvanceAmount / 2)
	default:
		return 0
	}
}

// Overlaps reports whether the booking's dates intersect [start, end).
func (b *CareBooking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(end) && start.Before(b.EndDate)
}

// CareConflictStatuses hold a pet for their date range.
var CareConflictStatuses = []CareBookingStatus{CareConfirmed, CareInProgress}

// CareBookingFilter narrows booking listings.
type CareBookingFilter struct {
	UserID          *uuid.UUID
	StoreID         string
	Status          CareBookingStatus
	ServiceCategory CareCategory
	CaregiverID     *uuid.UUID
}
