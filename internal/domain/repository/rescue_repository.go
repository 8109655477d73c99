package repository

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// RescueRepository persists rescue reports.
type RescueRepository interface {
	Create(ctx context.Context, report *entity.RescueReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RescueReport, error)
	Update(ctx context.Context, report *entity.RescueReport) error
	List(ctx context.Context, filter entity.RescueFilter, page entity.PageRequest) ([]*entity.RescueReport, int64, error)

	// ListWithin returns open reports inside box. Callers refine by exact distance.
	ListWithin(ctx context.Context, box entity.BoundingBox) ([]*entity.RescueReport, error)

	Count(ctx context.Context, filter entity.RescueFilter) (int64, error)
}

// ShelterRepository persists shelter animals.
type ShelterRepository interface {
	Create(ctx context.Context, animal *entity.ShelterAnimal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShelterAnimal, error)
	Update(ctx context.Context, animal *entity.ShelterAnimal) error
	List(ctx context.Context, filter entity.ShelterFilter, page entity.PageRequest) ([]*entity.ShelterAnimal, int64, error)

	// FindResidentInKennel returns the resident animal occupying kennel, if any.
	FindResidentInKennel(ctx context.Context, kennel string) (*entity.ShelterAnimal, error)

	Count(ctx context.Context, filter entity.ShelterFilter) (int64, error)
}
