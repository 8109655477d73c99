package usecase

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryItemInput creates or replaces a pet shop listing.
// StoreID is only honoured for module admins; managers always list under their own store.
type InventoryItemInput struct {
	Name          string
	Species       string
	Breed         string
	Gender        string
	AgeMonths     int
	Color         string
	Description   string
	Price         float64
	DiscountPrice float64
	Images        []string
	StoreID       string
}

// ReservationInput reserves an in-stock item.
type ReservationInput struct {
	ItemID      uuid.UUID
	ContactInfo entity.ContactInfo
	Notes       string
}

// PaymentInput records a reservation payment. A zero Amount charges the item's effective price.
type PaymentInput struct {
	Amount    float64
	Method    string
	Reference string
}

// HandoverInput schedules a pickup.
type HandoverInput struct {
	ScheduledAt time.Time
	Location    string
	Notes       string
}

// ReservationView is a reservation with its item attached.
type ReservationView struct {
	*entity.PetReservation
	Item *entity.ShopInventoryItem `json:"item,omitempty"`
}

// PetShopUsecase covers pet shop inventory, reservations and pickup handovers.
type PetShopUsecase interface {
	ListItems(ctx context.Context, filter entity.InventoryFilter, page entity.PageRequest) (*entity.Page[*entity.ShopInventoryItem], error)
	GetItem(ctx context.Context, id uuid.UUID) (*entity.ShopInventoryItem, error)

	ListStoreItems(ctx context.Context, actor *Actor, filter entity.InventoryFilter, page entity.PageRequest) (*entity.Page[*entity.ShopInventoryItem], error)
	GetStoreItem(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.ShopInventoryItem, error)
	CreateItem(ctx context.Context, actor *Actor, input InventoryItemInput) (*entity.ShopInventoryItem, error)
	UpdateItem(ctx context.Context, actor *Actor, id uuid.UUID, input InventoryItemInput) (*entity.ShopInventoryItem, error)
	DeleteItem(ctx context.Context, actor *Actor, id uuid.UUID) error

	CreateReservation(ctx context.Context, actor *Actor, input ReservationInput) (*entity.PetReservation, error)
	ListMyReservations(ctx context.Context, actor *Actor, page entity.PageRequest) (*entity.Page[*entity.PetReservation], error)
	GetMyReservation(ctx context.Context, actor *Actor, id uuid.UUID) (*ReservationView, error)
	CancelReservation(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.PetReservation, error)

	ListReservations(ctx context.Context, actor *Actor, filter entity.ReservationFilter, page entity.PageRequest) (*entity.Page[*entity.PetReservation], error)
	GetReservation(ctx context.Context, actor *Actor, id uuid.UUID) (*ReservationView, error)
	ApproveReservation(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.PetReservation, error)
	RejectReservation(ctx context.Context, actor *Actor, id uuid.UUID, reason string) (*entity.PetReservation, error)
	RecordPayment(ctx context.Context, actor *Actor, id uuid.UUID, input PaymentInput) (*entity.PetReservation, error)

	// ScheduleHandover sets the pickup details and issues a fresh OTP to the buyer.
	ScheduleHandover(ctx context.Context, actor *Actor, id uuid.UUID, input HandoverInput) (*entity.PetReservation, error)
	RegenerateOTP(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.PetReservation, error)

	// CompleteHandover checks otp against the latest unused code and transfers the pet to the buyer.
	CompleteHandover(ctx context.Context, actor *Actor, id uuid.UUID, otp string) (*entity.PetReservation, error)

	// HandoverQR renders the reservation code as a PNG for the buyer or the store.
	HandoverQR(ctx context.Context, actor *Actor, id uuid.UUID) ([]byte, error)
}
