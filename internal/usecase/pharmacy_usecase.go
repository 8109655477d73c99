package usecase

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicineInput creates or updates a catalogue entry. Entries are matched on name and batch number.
type MedicineInput struct {
	Name                 string
	Description          string
	Category             string
	Price                float64
	CostPrice            float64
	Dosage               string
	Manufacturer         string
	ExpiryDate           *time.Time
	BatchNumber          string
	RequiresPrescription bool
	PetTypes             []string
	Stock                entity.Stock
}

// PrescriptionInput uploads a prescription for one medicine.
type PrescriptionInput struct {
	MedicineID  uuid.UUID
	PetID       *uuid.UUID
	DocumentURL string
}

// PharmacyOrderLine is one requested medicine.
type PharmacyOrderLine struct {
	MedicineID uuid.UUID
	Quantity   int
}

// PharmacyOrderInput places a medicine order.
type PharmacyOrderInput struct {
	Items           []PharmacyOrderLine
	ShippingAddress *entity.Address
}

// PharmacyUsecase covers the medicine catalogue, prescriptions and medicine orders.
type PharmacyUsecase interface {
	ListMedicines(ctx context.Context, filter entity.MedicineFilter, page entity.PageRequest) (*entity.Page[*entity.Medicine], error)
	GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)

	// SaveMedicine creates the medicine or updates the existing entry with the same name and batch.
	// created reports which of the two happened.
	SaveMedicine(ctx context.Context, actor *Actor, input MedicineInput) (medicine *entity.Medicine, created bool, err error)
	UpdateMedicine(ctx context.Context, actor *Actor, id uuid.UUID, input MedicineInput) (*entity.Medicine, error)
	DeleteMedicine(ctx context.Context, actor *Actor, id uuid.UUID) error
	ListLowStock(ctx context.Context) ([]*entity.Medicine, error)

	UploadPrescription(ctx context.Context, actor *Actor, input PrescriptionInput) (*entity.Prescription, error)
	ListMyPrescriptions(ctx context.Context, actor *Actor) ([]*entity.Prescription, error)
	ListPendingPrescriptions(ctx context.Context) ([]*entity.Prescription, error)
	ReviewPrescription(ctx context.Context, actor *Actor, id uuid.UUID, approve bool, notes string) (*entity.Prescription, error)

	PlaceOrder(ctx context.Context, actor *Actor, input PharmacyOrderInput) (*entity.PharmacyOrder, error)
	ListMyOrders(ctx context.Context, actor *Actor, page entity.PageRequest) (*entity.Page[*entity.PharmacyOrder], error)
	GetMyOrder(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.PharmacyOrder, error)
	ListOrders(ctx context.Context, status entity.PharmacyOrderStatus, page entity.PageRequest) (*entity.Page[*entity.PharmacyOrder], error)
	UpdateOrderStatus(ctx context.Context, actor *Actor, id uuid.UUID, status entity.PharmacyOrderStatus) (*entity.PharmacyOrder, error)
}
