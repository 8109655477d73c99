package repository

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// AdoptionPetRepository persists pets listed for adoption.
type AdoptionPetRepository interface {
	Create(ctx context.Context, pet *entity.AdoptionPet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionPet, error)
	Update(ctx context.Context, pet *entity.AdoptionPet) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entity.AdoptionPetFilter, page entity.PageRequest) ([]*entity.AdoptionPet, int64, error)
	Count(ctx context.Context, filter entity.AdoptionPetFilter) (int64, error)
}

// AdoptionApplicationRepository persists adoption applications.
type AdoptionApplicationRepository interface {
	Create(ctx context.Context, app *entity.AdoptionApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionApplication, error)
	Update(ctx context.Context, app *entity.AdoptionApplication) error
	List(ctx context.Context, filter entity.ApplicationFilter, page entity.PageRequest) ([]*entity.AdoptionApplication, int64, error)

	// ExistsActive reports whether an application in one of statuses matches filter.
	ExistsActive(ctx context.Context, filter entity.ApplicationFilter, statuses []entity.ApplicationStatus) (bool, error)

	// ListWithCertificates returns every completed application that carries a certificate.
	ListWithCertificates(ctx context.Context) ([]*entity.AdoptionApplication, error)
}
