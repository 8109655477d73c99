package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdoptionPetStatus string

const (
	PetAvailable   AdoptionPetStatus = "available"
	PetReserved    AdoptionPetStatus = "reserved"
	PetAdopted     AdoptionPetStatus = "adopted"
	PetUnavailable AdoptionPetStatus = "unavailable"
)

// AdoptionPet is a pet listed for adoption by an adoption manager.
type AdoptionPet struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Species         string            `json:"species"`
	Breed           string            `json:"breed,omitempty"`
	Age             int               `json:"age"`
	AgeUnit         string            `json:"ageUnit"`
	Gender          string            `json:"gender"`
	Color           string            `json:"color,omitempty"`
	Size            string            `json:"size,omitempty"`
	Description     string            `json:"description,omitempty"`
	HealthStatus    string            `json:"healthStatus,omitempty"`
	Vaccinations    []string          `json:"vaccinations,omitempty"`
	Images          []string          `json:"images,omitempty"`
	AdoptionFee     float64           `json:"adoptionFee"`
	Status          AdoptionPetStatus `json:"status"`
	AdopterUserID   *uuid.UUID        `json:"adopterUserId,omitempty"`
	ShelterAnimalID *uuid.UUID        `json:"shelterAnimalId,omitempty"`
	CreatedBy       uuid.UUID         `json:"createdBy"`
	IsActive        bool              `json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// IsAdoptable reports whether new applications may be filed against the pet.
func (p *AdoptionPet) IsAdoptable() bool {
	return p.IsActive && p.Status == PetAvailable
}

// AdoptionPetFilter narrows pet listings.
type AdoptionPetFilter struct {
	Species    string
	Gender     string
	Size       string
	Status     AdoptionPetStatus
	Search     string
	OnlyActive bool
}

type ApplicationStatus string

const (
	ApplicationPending        ApplicationStatus = "pending"
	ApplicationApproved       ApplicationStatus = "approved"
	ApplicationPaymentPending ApplicationStatus = "payment_pending"
	ApplicationCompleted      ApplicationStatus = "completed"
	ApplicationRejected       ApplicationStatus = "rejected"
	ApplicationCancelled      ApplicationStatus = "cancelled"
)

// ActiveApplicationStatuses block a user from filing another application.
var ActiveApplicationStatuses = []ApplicationStatus{ApplicationPending, ApplicationApproved, ApplicationPaymentPending}

type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentCompleted   PaymentStatus = "completed"
	PaymentNotRequired PaymentStatus = "not_required"
	PaymentRefunded    PaymentStatus = "refunded"
)

// Adoption handovers are booked within AdoptionHandoverWindow and each code stays valid
// for AdoptionHandoverOTPTTL.
const (
	AdoptionHandoverWindow     = 30 * 24 * time.Hour
	AdoptionHandoverOTPTTL     = 7 * 24 * time.Hour
	AdoptionHandoverOTPHistory = 10
	AdoptionHandoverLocation   = "Adoption center, main branch pickup desk"
)

// ReadyForHandover reports whether the adopter has been approved and nothing is left to pay.
func (a *AdoptionApplication) ReadyForHandover() bool {
	if a.Status != ApplicationApproved {
		return false
	}

	return a.PaymentStatus == PaymentCompleted || a.PaymentStatus == PaymentNotRequired
}

// AdoptionCertificate is issued when a handover completes.
type AdoptionCertificate struct {
	Number   string    `json:"number"`
	URL      string    `json:"url"`
	QRURL    string    `json:"qrUrl,omitempty"`
	IssuedAt time.Time `json:"issuedAt"`
}

// AdoptionApplication is a user's request to adopt a specific pet.
type AdoptionApplication struct {
	ID               uuid.UUID            `json:"id"`
	UserID           uuid.UUID            `json:"userId"`
	PetID            uuid.UUID            `json:"petId"`
	ApplicationData  map[string]any       `json:"applicationData,omitempty"`
	Documents        []string             `json:"documents,omitempty"`
	Status           ApplicationStatus    `json:"status"`
	RejectionReason  string               `json:"rejectionReason,omitempty"`
	ReviewedBy       *uuid.UUID           `json:"reviewedBy,omitempty"`
	ReviewedAt       *time.Time           `json:"reviewedAt,omitempty"`
	PaymentStatus    PaymentStatus        `json:"paymentStatus"`
	PaymentReference string               `json:"paymentReference,omitempty"`
	PaidAt           *time.Time           `json:"paidAt,omitempty"`
	Handover         Handover             `json:"handover"`
	Certificate      *AdoptionCertificate `json:"certificate,omitempty"`
	CompletedAt      *time.Time           `json:"completedAt,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// IsActive reports whether the application still holds a claim on the pet.
func (a *AdoptionApplication) IsActive() bool {
	for _, status := range ActiveApplicationStatuses {
		if a.Status == status {
			return true
		}
	}

	return false
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	UserID *uuid.UUID
	PetID  *uuid.UUID
	Status ApplicationStatus
}
