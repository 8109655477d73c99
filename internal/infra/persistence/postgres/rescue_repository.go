package postgres

import (
	"context"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Reports in these states no longer need responders.
var closedRescueStatuses = []entity.RescueStatus{entity.RescueClosed, entity.RescueFalseAlarm, entity.RescueRescued}

type rescueRepository struct {
	db *gorm.DB
}

// NewRescueRepository is the constructor for rescueRepository.
func NewRescueRepository(db *gorm.DB) repository.RescueRepository {
	return &rescueRepository{db: db}
}

func (repo *rescueRepository) Create(ctx context.Context, report *entity.RescueReport) error {
	reportM := fromRescueDomain(report)
	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		return translateWriteError(err, "failed to create rescue report")
	}
	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt
	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

func (repo *rescueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RescueReport, error) {
	var reportM model.RescueReportModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reportM).Error; err != nil {
		return nil, translateReadError(err, "failed to find rescue report")
	}

	return toRescueDomain(&reportM), nil
}

func (repo *rescueRepository) Update(ctx context.Context, report *entity.RescueReport) error {
	return updateAll(repo.db.WithContext(ctx), fromRescueDomain(report), "failed to update rescue report")
}

func (repo *rescueRepository) List(ctx context.Context, filter entity.RescueFilter, page entity.PageRequest) ([]*entity.RescueReport, int64, error) {
	rows, total, err := findPage[model.RescueReportModel](repo.filtered(ctx, filter), page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list rescue reports")
	}

	return mapAll(rows, toRescueDomain), total, nil
}

func (repo *rescueRepository) ListWithin(ctx context.Context, box entity.BoundingBox) ([]*entity.RescueReport, error) {
	var rows []*model.RescueReportModel
	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Where("status NOT IN ?", statusNames(closedRescueStatuses)).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rescue reports within box")
	}

	return mapAll(rows, toRescueDomain), nil
}

func (repo *rescueRepository) Count(ctx context.Context, filter entity.RescueFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rescue reports")
	}

	return count, nil
}

func (repo *rescueRepository) filtered(ctx context.Context, filter entity.RescueFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.RescueReportModel{})
	if filter.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Urgency != "" {
		query = query.Where("urgency = ?", string(filter.Urgency))
	}
	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species)
	}

	return query
}

type shelterRepository struct {
	db *gorm.DB
}

// NewShelterRepository is the constructor for shelterRepository.
func NewShelterRepository(db *gorm.DB) repository.ShelterRepository {
	return &shelterRepository{db: db}
}

func (repo *shelterRepository) Create(ctx context.Context, animal *entity.ShelterAnimal) error {
	animalM := fromShelterDomain(animal)
	if err := repo.db.WithContext(ctx).Create(animalM).Error; err != nil {
		return translateWriteError(err, "failed to create shelter animal")
	}
	animal.ID = animalM.ID
	animal.CreatedAt = animalM.CreatedAt
	animal.UpdatedAt = animalM.UpdatedAt

	return nil
}

func (repo *shelterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShelterAnimal, error) {
	var animalM model.ShelterAnimalModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&animalM).Error; err != nil {
		return nil, translateReadError(err, "failed to find shelter animal")
	}

	return toShelterDomain(&animalM), nil
}

func (repo *shelterRepository) Update(ctx context.Context, animal *entity.ShelterAnimal) error {
	return updateAll(repo.db.WithContext(ctx), fromShelterDomain(animal), "failed to update shelter animal")
}

func (repo *shelterRepository) List(ctx context.Context, filter entity.ShelterFilter, page entity.PageRequest) ([]*entity.ShelterAnimal, int64, error) {
	rows, total, err := findPage[model.ShelterAnimalModel](repo.filtered(ctx, filter), page, "intake_date DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list shelter animals")
	}

	return mapAll(rows, toShelterDomain), total, nil
}

func (repo *shelterRepository) FindResidentInKennel(ctx context.Context, kennel string) (*entity.ShelterAnimal, error) {
	residents := []entity.ShelterStatus{entity.ShelterSheltered, entity.ShelterMedicalCare, entity.ShelterReadyForAdoption}

	var animalM model.ShelterAnimalModel
	if err := repo.db.WithContext(ctx).
		Where("kennel = ? AND status IN ?", kennel, statusNames(residents)).
		First(&animalM).Error; err != nil {
		return nil, translateReadError(err, "failed to find kennel resident")
	}

	return toShelterDomain(&animalM), nil
}

func (repo *shelterRepository) Count(ctx context.Context, filter entity.ShelterFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count shelter animals")
	}

	return count, nil
}

func (repo *shelterRepository) filtered(ctx context.Context, filter entity.ShelterFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.ShelterAnimalModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species)
	}
	if filter.Kennel != "" {
		query = query.Where("kennel = ?", filter.Kennel)
	}

	return query
}

// --- Mapper Functions ---

func toRescueDomain(data *model.RescueReportModel) *entity.RescueReport {
	return &entity.RescueReport{
		ID:           data.ID,
		ReportNumber: data.ReportNumber,
		ReporterID:   data.ReporterID,
		Species:      data.Species,
		Description:  data.Description,
		Urgency:      entity.RescueUrgency(data.Urgency),
		Location: entity.GeoPoint{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
			Address:   data.Address,
		},
		Photos:       data.Photos,
		ContactPhone: data.ContactPhone,
		Status:       entity.RescueStatus(data.Status),
		AssignedTo:   data.AssignedTo,
		Notes:        data.Notes,
		RescuedAt:    data.RescuedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromRescueDomain(data *entity.RescueReport) *model.RescueReportModel {
	return &model.RescueReportModel{
		ID:           data.ID,
		ReportNumber: data.ReportNumber,
		ReporterID:   data.ReporterID,
		Species:      data.Species,
		Description:  data.Description,
		Urgency:      string(data.Urgency),
		Latitude:     data.Location.Latitude,
		Longitude:    data.Location.Longitude,
		Address:      data.Location.Address,
		Photos:       data.Photos,
		ContactPhone: data.ContactPhone,
		Status:       string(data.Status),
		AssignedTo:   data.AssignedTo,
		Notes:        data.Notes,
		RescuedAt:    data.RescuedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toShelterDomain(data *model.ShelterAnimalModel) *entity.ShelterAnimal {
	return &entity.ShelterAnimal{
		ID:                 data.ID,
		IntakeNumber:       data.IntakeNumber,
		Name:               data.Name,
		Species:            data.Species,
		Breed:              data.Breed,
		Gender:             data.Gender,
		EstimatedAgeMonths: data.EstimatedAgeMonths,
		IntakeDate:         data.IntakeDate,
		IntakeSource:       entity.IntakeSource(data.IntakeSource),
		RescueReportID:     data.RescueReportID,
		Kennel:             data.Kennel,
		HealthStatus:       data.HealthStatus,
		Status:             entity.ShelterStatus(data.Status),
		AdoptionPetID:      data.AdoptionPetID,
		Images:             data.Images,
		Notes:              data.Notes,
		CreatedBy:          data.CreatedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromShelterDomain(data *entity.ShelterAnimal) *model.ShelterAnimalModel {
	return &model.ShelterAnimalModel{
		ID:                 data.ID,
		IntakeNumber:       data.IntakeNumber,
		Name:               data.Name,
		Species:            data.Species,
		Breed:              data.Breed,
		Gender:             data.Gender,
		EstimatedAgeMonths: data.EstimatedAgeMonths,
		IntakeDate:         data.IntakeDate,
		IntakeSource:       string(data.IntakeSource),
		RescueReportID:     data.RescueReportID,
		Kennel:             data.Kennel,
		HealthStatus:       data.HealthStatus,
		Status:             string(data.Status),
		AdoptionPetID:      data.AdoptionPetID,
		Images:             data.Images,
		Notes:              data.Notes,
		CreatedBy:          data.CreatedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
