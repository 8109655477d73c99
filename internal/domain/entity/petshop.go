package entity

import (
	"time"

	"github.com/google/uuid"
)

type InventoryStatus string

const (
	InventoryInStock     InventoryStatus = "in_stock"
	InventoryReserved    InventoryStatus = "reserved"
	InventorySold        InventoryStatus = "sold"
	InventoryUnavailable InventoryStatus = "unavailable"
)

// ShopInventoryItem is a pet offered for sale by a pet shop store.
type ShopInventoryItem struct {
	ID            uuid.UUID       `json:"id"`
	PetCode       string          `json:"petCode"`
	Name          string          `json:"name"`
	Species       string          `json:"species"`
	Breed         string          `json:"breed,omitempty"`
	Gender        string          `json:"gender"`
	AgeMonths     int             `json:"ageMonths"`
	Color         string          `json:"color,omitempty"`
	Description   string          `json:"description,omitempty"`
	Price         float64         `json:"price"`
	DiscountPrice float64         `json:"discountPrice,omitempty"`
	Status        InventoryStatus `json:"status"`
	StoreID       string          `json:"storeId"`
	Images        []string        `json:"images,omitempty"`
	BuyerID       *uuid.UUID      `json:"buyerId,omitempty"`
	SoldAt        *time.Time      `json:"soldAt,omitempty"`
	CreatedBy     uuid.UUID       `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// EffectivePrice is the discounted price when one is set.
func (i *ShopInventoryItem) EffectivePrice() float64 {
	if i.DiscountPrice > 0 && i.DiscountPrice < i.Price {
		return i.DiscountPrice
	}

	return i.Price
}

// InventoryFilter narrows inventory listings.
type InventoryFilter struct {
	StoreID string
	Species string
	Status  InventoryStatus
	Search  string
}

type ReservationStatus string

const (
	ReservationPending     ReservationStatus = "pending"
	ReservationApproved    ReservationStatus = "approved"
	ReservationRejected    ReservationStatus = "rejected"
	ReservationPaid        ReservationStatus = "paid"
	ReservationReadyPickup ReservationStatus = "ready_pickup"
	ReservationAtOwner     ReservationStatus = "at_owner"
	ReservationCancelled   ReservationStatus = "cancelled"
)

// ContactInfo is how the shop reaches the buyer.
type ContactInfo struct {
	Phone                  string `json:"phone,omitempty"`
	Email                  string `json:"email,omitempty"`
	PreferredContactMethod string `json:"preferredContactMethod,omitempty"`
}

// ReservationPayment records the buyer's payment.
type ReservationPayment struct {
	Amount    float64    `json:"amount"`
	Method    string     `json:"method,omitempty"`
	Reference string     `json:"reference,omitempty"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

// PetReservation is a user's hold on a shop inventory item.
type PetReservation struct {
	ID              uuid.UUID           `json:"id"`
	ReservationCode string              `json:"reservationCode"`
	ItemID          uuid.UUID           `json:"itemId"`
	UserID          uuid.UUID           `json:"userId"`
	StoreID         string              `json:"storeId"`
	ContactInfo     ContactInfo         `json:"contactInfo"`
	Notes           string              `json:"notes,omitempty"`
	Status          ReservationStatus   `json:"status"`
	RejectionReason string              `json:"rejectionReason,omitempty"`
	Handover        Handover            `json:"handover"`
	Payment         *ReservationPayment `json:"payment,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	UserID  *uuid.UUID
	StoreID string
	Status  ReservationStatus
}
