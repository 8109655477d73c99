package repository

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicineRepository persists the pharmacy catalogue.
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	FindByNameAndBatch(ctx context.Context, name, batch string) (*entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	List(ctx context.Context, filter entity.MedicineFilter, page entity.PageRequest) ([]*entity.Medicine, int64, error)

	// ListLowStock returns active medicines at or below their reorder level.
	ListLowStock(ctx context.Context) ([]*entity.Medicine, error)

	// DecrementStock removes quantity from stock, failing with ErrInsufficientStock when not enough remains.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

// PrescriptionRepository persists uploaded prescriptions.
type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	Update(ctx context.Context, prescription *entity.Prescription) error
	ListByStatus(ctx context.Context, status entity.PrescriptionStatus) ([]*entity.Prescription, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error)

	// FindApproved returns the newest approved prescription of userID for medicineID.
	FindApproved(ctx context.Context, userID, medicineID uuid.UUID) (*entity.Prescription, error)
}

// PharmacyOrderRepository persists medicine orders.
type PharmacyOrderRepository interface {
	Create(ctx context.Context, order *entity.PharmacyOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error)
	Update(ctx context.Context, order *entity.PharmacyOrder) error
	ListByUser(ctx context.Context, userID uuid.UUID, page entity.PageRequest) ([]*entity.PharmacyOrder, int64, error)
	List(ctx context.Context, status entity.PharmacyOrderStatus, page entity.PageRequest) ([]*entity.PharmacyOrder, int64, error)
}
