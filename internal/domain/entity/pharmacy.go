package entity

import (
	"time"

	"github.com/google/uuid"
)

// Stock tracks on-hand quantity for a pharmacy medicine.
type Stock struct {
	Current      int `json:"current"`
	ReorderLevel int `json:"reorderLevel"`
}

// Medicine is a pharmacy catalogue entry.
type Medicine struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description,omitempty"`
	Category             string     `json:"category"`
	Price                float64    `json:"price"`
	CostPrice            float64    `json:"costPrice,omitempty"`
	Dosage               string     `json:"dosage,omitempty"`
	Manufacturer         string     `json:"manufacturer,omitempty"`
	ExpiryDate           *time.Time `json:"expiryDate,omitempty"`
	BatchNumber          string     `json:"batchNumber,omitempty"`
	RequiresPrescription bool       `json:"requiresPrescription"`
	PetTypes             []string   `json:"petTypes,omitempty"`
	Stock                Stock      `json:"stock"`
	StoreID              string     `json:"storeId,omitempty"`
	IsActive             bool       `json:"isActive"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// IsLowStock reports whether stock has fallen to or below the reorder level.
func (m *Medicine) IsLowStock() bool {
	return m.Stock.Current <= m.Stock.ReorderLevel
}

// MedicineFilter narrows medicine listings.
type MedicineFilter struct {
	Search     string
	Category   string
	OnlyActive bool
}

type PrescriptionStatus string

const (
	PrescriptionPending  PrescriptionStatus = "pending"
	PrescriptionApproved PrescriptionStatus = "approved"
	PrescriptionRejected PrescriptionStatus = "rejected"
)

// Prescription is a document uploaded by a user to unlock a prescription-only medicine.
type Prescription struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"userId"`
	MedicineID  uuid.UUID          `json:"medicineId"`
	PetID       *uuid.UUID         `json:"petId,omitempty"`
	DocumentURL string             `json:"documentUrl"`
	Status      PrescriptionStatus `json:"status"`
	ReviewNotes string             `json:"reviewNotes,omitempty"`
	ReviewedBy  *uuid.UUID         `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time         `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type PharmacyOrderStatus string

const (
	PharmacyOrderPending    PharmacyOrderStatus = "pending"
	PharmacyOrderConfirmed  PharmacyOrderStatus = "confirmed"
	PharmacyOrderDispatched PharmacyOrderStatus = "dispatched"
	PharmacyOrderDelivered  PharmacyOrderStatus = "delivered"
	PharmacyOrderCancelled  PharmacyOrderStatus = "cancelled"
)

// IsValid reports whether s is a known pharmacy order status.
func (s PharmacyOrderStatus) IsValid() bool {
	switch s {
	case PharmacyOrderPending, PharmacyOrderConfirmed, PharmacyOrderDispatched, PharmacyOrderDelivered, PharmacyOrderCancelled:
		return true
	}

	return false
}

// PharmacyOrderItem is one medicine line of an order.
type PharmacyOrderItem struct {
	MedicineID uuid.UUID `json:"medicineId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	Total      float64   `json:"total"`
}

// PharmacyOrder is a user's medicine purchase.
type PharmacyOrder struct {
	ID              uuid.UUID           `json:"id"`
	OrderNumber     string              `json:"orderNumber"`
	UserID          uuid.UUID           `json:"userId"`
	Items           []PharmacyOrderItem `json:"items"`
	Total           float64             `json:"total"`
	Status          PharmacyOrderStatus `json:"status"`
	PrescriptionID  *uuid.UUID          `json:"prescriptionId,omitempty"`
	ShippingAddress *Address            `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}
