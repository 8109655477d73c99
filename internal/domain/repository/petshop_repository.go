package repository

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryRepository persists pet shop inventory.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.ShopInventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShopInventoryItem, error)
	Update(ctx context.Context, item *entity.ShopInventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entity.InventoryFilter, page entity.PageRequest) ([]*entity.ShopInventoryItem, int64, error)
	Count(ctx context.Context, filter entity.InventoryFilter) (int64, error)
}

// ReservationRepository persists pet shop reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.PetReservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PetReservation, error)
	Update(ctx context.Context, reservation *entity.PetReservation) error
	List(ctx context.Context, filter entity.ReservationFilter, page entity.PageRequest) ([]*entity.PetReservation, int64, error)
}
