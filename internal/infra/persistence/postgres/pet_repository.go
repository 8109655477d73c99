package postgres

import (
	"context"
	"strings"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)
	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		return translateWriteError(err, "failed to register pet")
	}
	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

func (repo *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&petM).Error; err != nil {
		return nil, translateReadError(err, "failed to find pet")
	}

	return toPetDomain(&petM), nil
}

func (repo *petRepository) FindByCode(ctx context.Context, code string) (*entity.Pet, error) {
	var petM model.PetModel
	if err := repo.db.WithContext(ctx).Where("pet_code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&petM).Error; err != nil {
		return nil, translateReadError(err, "failed to find pet by code")
	}

	return toPetDomain(&petM), nil
}

func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	return updateAll(repo.db.WithContext(ctx), fromPetDomain(pet), "failed to update pet")
}

func (repo *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOrNotFound(
		repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PetModel{}),
		"failed to delete pet",
	)
}

func (repo *petRepository) List(ctx context.Context, filter entity.PetFilter, page entity.PageRequest) ([]*entity.Pet, int64, error) {
	rows, total, err := findPage[model.PetModel](repo.filtered(ctx, filter), page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list pets")
	}

	return mapAll(rows, toPetDomain), total, nil
}

func (repo *petRepository) Count(ctx context.Context, filter entity.PetFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pets")
	}

	return count, nil
}

func (repo *petRepository) filtered(ctx context.Context, filter entity.PetFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.PetModel{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Species != "" {
		query = query.Where("species = ?", strings.ToLower(filter.Species))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR pet_code ILIKE ? OR breed ILIKE ?", pattern, pattern, pattern)
	}

	return query
}

// --- Mapper Functions ---

func toPetDomain(data *model.PetModel) *entity.Pet {
	return &entity.Pet{
		ID:               data.ID,
		PetCode:          data.PetCode,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		Species:          data.Species,
		Breed:            data.Breed,
		Gender:           data.Gender,
		DateOfBirth:      data.DateOfBirth,
		Color:            data.Color,
		WeightKg:         data.WeightKg,
		MicrochipID:      data.MicrochipID,
		Images:           data.Images,
		Source:           entity.PetSource(data.Source),
		SourceRef:        data.SourceRef,
		Status:           entity.PetStatus(data.Status),
		MedicalHistory:   data.MedicalHistory,
		Vaccinations:     data.Vaccinations,
		OwnershipHistory: data.OwnershipHistory,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromPetDomain(data *entity.Pet) *model.PetModel {
	return &model.PetModel{
		ID:               data.ID,
		PetCode:          data.PetCode,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		Species:          data.Species,
		Breed:            data.Breed,
		Gender:           data.Gender,
		DateOfBirth:      data.DateOfBirth,
		Color:            data.Color,
		WeightKg:         data.WeightKg,
		MicrochipID:      data.MicrochipID,
		Images:           data.Images,
		Source:           string(data.Source),
		SourceRef:        data.SourceRef,
		Status:           string(data.Status),
		MedicalHistory:   data.MedicalHistory,
		Vaccinations:     data.Vaccinations,
		OwnershipHistory: data.OwnershipHistory,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
