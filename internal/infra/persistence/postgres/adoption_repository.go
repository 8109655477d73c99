package postgres

import (
	"context"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type adoptionPetRepository struct {
	db *gorm.DB
}

// NewAdoptionPetRepository is the constructor for adoptionPetRepository.
func NewAdoptionPetRepository(db *gorm.DB) repository.AdoptionPetRepository {
	return &adoptionPetRepository{db: db}
}

func (repo *adoptionPetRepository) Create(ctx context.Context, pet *entity.AdoptionPet) error {
	petM := fromAdoptionPetDomain(pet)
	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		return translateWriteError(err, "failed to create adoption pet")
	}
	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

func (repo *adoptionPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionPet, error) {
	var petM model.AdoptionPetModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&petM).Error; err != nil {
		return nil, translateReadError(err, "failed to find adoption pet")
	}

	return toAdoptionPetDomain(&petM), nil
}

func (repo *adoptionPetRepository) Update(ctx context.Context, pet *entity.AdoptionPet) error {
	return updateAll(repo.db.WithContext(ctx), fromAdoptionPetDomain(pet), "failed to update adoption pet")
}

// Delete soft deletes the pet.
func (repo *adoptionPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOrNotFound(
		repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdoptionPetModel{}),
		"failed to delete adoption pet",
	)
}

func (repo *adoptionPetRepository) List(ctx context.Context, filter entity.AdoptionPetFilter, page entity.PageRequest) ([]*entity.AdoptionPet, int64, error) {
	rows, total, err := findPage[model.AdoptionPetModel](repo.filtered(ctx, filter), page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list adoption pets")
	}

	return mapAll(rows, toAdoptionPetDomain), total, nil
}

func (repo *adoptionPetRepository) Count(ctx context.Context, filter entity.AdoptionPetFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count adoption pets")
	}

	return count, nil
}

func (repo *adoptionPetRepository) filtered(ctx context.Context, filter entity.AdoptionPetFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.AdoptionPetModel{})
	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.Size != "" {
		query = query.Where("size = ?", filter.Size)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR breed ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	return query
}

type adoptionApplicationRepository struct {
	db *gorm.DB
}

// NewAdoptionApplicationRepository is the constructor for adoptionApplicationRepository.
func NewAdoptionApplicationRepository(db *gorm.DB) repository.AdoptionApplicationRepository {
	return &adoptionApplicationRepository{db: db}
}

func (repo *adoptionApplicationRepository) Create(ctx context.Context, app *entity.AdoptionApplication) error {
	appM := fromApplicationDomain(app)
	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		return translateWriteError(err, "failed to create adoption application")
	}
	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

func (repo *adoptionApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionApplication, error) {
	var appM model.AdoptionApplicationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&appM).Error; err != nil {
		return nil, translateReadError(err, "failed to find adoption application")
	}

	return toApplicationDomain(&appM), nil
}

func (repo *adoptionApplicationRepository) Update(ctx context.Context, app *entity.AdoptionApplication) error {
	return updateAll(repo.db.WithContext(ctx), fromApplicationDomain(app), "failed to update adoption application")
}

func (repo *adoptionApplicationRepository) List(ctx context.Context, filter entity.ApplicationFilter, page entity.PageRequest) ([]*entity.AdoptionApplication, int64, error) {
	rows, total, err := findPage[model.AdoptionApplicationModel](repo.filtered(ctx, filter), page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list adoption applications")
	}

	return mapAll(rows, toApplicationDomain), total, nil
}

func (repo *adoptionApplicationRepository) ExistsActive(ctx context.Context, filter entity.ApplicationFilter, statuses []entity.ApplicationStatus) (bool, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Where("status IN ?", statusNames(statuses)).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check active applications")
	}

	return count > 0, nil
}

func (repo *adoptionApplicationRepository) ListWithCertificates(ctx context.Context) ([]*entity.AdoptionApplication, error) {
	var rows []*model.AdoptionApplicationModel
	if err := repo.db.WithContext(ctx).
		Where("status = ? AND certificate IS NOT NULL AND certificate <> 'null'::jsonb", string(entity.ApplicationCompleted)).
		Order("completed_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list certificates")
	}

	return mapAll(rows, toApplicationDomain), nil
}

func (repo *adoptionApplicationRepository) filtered(ctx context.Context, filter entity.ApplicationFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.AdoptionApplicationModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.PetID != nil {
		query = query.Where("pet_id = ?", *filter.PetID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	return query
}

// --- Mapper Functions ---

func toAdoptionPetDomain(data *model.AdoptionPetModel) *entity.AdoptionPet {
	return &entity.AdoptionPet{
		ID:              data.ID,
		Name:            data.Name,
		Species:         data.Species,
		Breed:           data.Breed,
		Age:             data.Age,
		AgeUnit:         data.AgeUnit,
		Gender:          data.Gender,
		Color:           data.Color,
		Size:            data.Size,
		Description:     data.Description,
		HealthStatus:    data.HealthStatus,
		Vaccinations:    data.Vaccinations,
		Images:          data.Images,
		AdoptionFee:     data.AdoptionFee,
		Status:          entity.AdoptionPetStatus(data.Status),
		AdopterUserID:   data.AdopterUserID,
		ShelterAnimalID: data.ShelterAnimalID,
		CreatedBy:       data.CreatedBy,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromAdoptionPetDomain(data *entity.AdoptionPet) *model.AdoptionPetModel {
	return &model.AdoptionPetModel{
		ID:              data.ID,
		Name:            data.Name,
		Species:         data.Species,
		Breed:           data.Breed,
		Age:             data.Age,
		AgeUnit:         data.AgeUnit,
		Gender:          data.Gender,
		Color:           data.Color,
		Size:            data.Size,
		Description:     data.Description,
		HealthStatus:    data.HealthStatus,
		Vaccinations:    data.Vaccinations,
		Images:          data.Images,
		AdoptionFee:     data.AdoptionFee,
		Status:          string(data.Status),
		AdopterUserID:   data.AdopterUserID,
		ShelterAnimalID: data.ShelterAnimalID,
		CreatedBy:       data.CreatedBy,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toApplicationDomain(data *model.AdoptionApplicationModel) *entity.AdoptionApplication {
	return &entity.AdoptionApplication{
		ID:               data.ID,
		UserID:           data.UserID,
		PetID:            data.PetID,
		ApplicationData:  map[string]any(data.ApplicationData),
		Documents:        data.Documents,
		Status:           entity.ApplicationStatus(data.Status),
		RejectionReason:  data.RejectionReason,
		ReviewedBy:       data.ReviewedBy,
		ReviewedAt:       data.ReviewedAt,
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		PaymentReference: data.PaymentReference,
		PaidAt:           data.PaidAt,
		Handover:         data.Handover.Data(),
		Certificate:      data.Certificate,
		CompletedAt:      data.CompletedAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromApplicationDomain(data *entity.AdoptionApplication) *model.AdoptionApplicationModel {
	return &model.AdoptionApplicationModel{
		ID:               data.ID,
		UserID:           data.UserID,
		PetID:            data.PetID,
		ApplicationData:  datatypes.JSONMap(data.ApplicationData),
		Documents:        data.Documents,
		Status:           string(data.Status),
		RejectionReason:  data.RejectionReason,
		ReviewedBy:       data.ReviewedBy,
		ReviewedAt:       data.ReviewedAt,
		PaymentStatus:    string(data.PaymentStatus),
		PaymentReference: data.PaymentReference,
		PaidAt:           data.PaidAt,
		Handover:         datatypes.NewJSONType(data.Handover),
		Certificate:      data.Certificate,
		CompletedAt:      data.CompletedAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
