package repository

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// PetRepository persists the central registry of owned pets.
type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// FindByCode looks a pet up by its registry code, e.g. when a shop pet changes hands again.
	FindByCode(ctx context.Context, code string) (*entity.Pet, error)

	Update(ctx context.Context, pet *entity.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entity.PetFilter, page entity.PageRequest) ([]*entity.Pet, int64, error)
	Count(ctx context.Context, filter entity.PetFilter) (int64, error)
}
