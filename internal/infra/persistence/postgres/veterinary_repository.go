package postgres

import (
	"context"
	"time"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const appointmentOrder = "CASE WHEN booking_type = 'emergency' THEN 0 ELSE 1 END, appointment_date ASC, time_slot ASC"

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (repo *appointmentRepository) Create(ctx context.Context, appt *entity.VetAppointment) error {
	apptM := fromAppointmentDomain(appt)
	if err := repo.db.WithContext(ctx).Create(apptM).Error; err != nil {
		return translateWriteError(err, "failed to create appointment")
	}
	appt.ID = apptM.ID
	appt.CreatedAt = apptM.CreatedAt
	appt.UpdatedAt = apptM.UpdatedAt

	return nil
}

func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VetAppointment, error) {
	var apptM model.VetAppointmentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&apptM).Error; err != nil {
		return nil, translateReadError(err, "failed to find appointment")
	}

	return toAppointmentDomain(&apptM), nil
}

func (repo *appointmentRepository) Update(ctx context.Context, appt *entity.VetAppointment) error {
	return updateAll(repo.db.WithContext(ctx), fromAppointmentDomain(appt), "failed to update appointment")
}

func (repo *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOrNotFound(
		repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VetAppointmentModel{}),
		"failed to delete appointment",
	)
}

func (repo *appointmentRepository) List(ctx context.Context, filter entity.AppointmentFilter, page entity.PageRequest) ([]*entity.VetAppointment, int64, error) {
	rows, total, err := findPage[model.VetAppointmentModel](repo.filtered(ctx, filter), page, appointmentOrder)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list appointments")
	}

	return mapAll(rows, toAppointmentDomain), total, nil
}

func (repo *appointmentRepository) BookedSlots(ctx context.Context, storeID string, date time.Time, statuses []entity.AppointmentStatus) ([]string, error) {
	var slots []string
	if err := repo.db.WithContext(ctx).
		Model(&model.VetAppointmentModel{}).
		Where("store_id = ? AND appointment_date = ? AND time_slot <> '' AND status IN ?", storeID, entity.TruncateToDay(date), statusNames(statuses)).
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load booked slots")
	}

	return slots, nil
}

func (repo *appointmentRepository) SlotTaken(ctx context.Context, storeID string, date time.Time, slot string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VetAppointmentModel{}).
		Where("store_id = ? AND appointment_date = ? AND time_slot = ?", storeID, entity.TruncateToDay(date), slot).
		Where("status IN ?", statusNames(entity.SlotBlockingStatuses)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slot")
	}

	return count > 0, nil
}

func (repo *appointmentRepository) Count(ctx context.Context, filter entity.AppointmentFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count appointments")
	}

	return count, nil
}

func (repo *appointmentRepository) filtered(ctx context.Context, filter entity.AppointmentFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.VetAppointmentModel{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.StoreID != "" {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.Date != nil {
		query = query.Where("appointment_date = ?", entity.TruncateToDay(*filter.Date))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.BookingType != "" {
		query = query.Where("booking_type = ?", string(filter.BookingType))
	}

	return query
}

func statusNames[S ~string](statuses []S) []string {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, string(status))
	}

	return names
}

// --- Mapper Functions ---

func toAppointmentDomain(data *model.VetAppointmentModel) *entity.VetAppointment {
	return &entity.VetAppointment{
		ID:                 data.ID,
		AppointmentNumber:  data.AppointmentNumber,
		PetID:              data.PetID,
		PetName:            data.PetName,
		OwnerID:            data.OwnerID,
		StoreID:            data.StoreID,
		AppointmentDate:    data.AppointmentDate,
		TimeSlot:           data.TimeSlot,
		BookingType:        entity.BookingType(data.BookingType),
		VisitType:          data.VisitType,
		Reason:             data.Reason,
		Symptoms:           data.Symptoms,
		Status:             entity.AppointmentStatus(data.Status),
		Amount:             data.Amount,
		Diagnosis:          data.Diagnosis,
		Treatment:          data.Treatment,
		Notes:              data.Notes,
		CancellationReason: data.CancellationReason,
		CancelledAt:        data.CancelledAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromAppointmentDomain(data *entity.VetAppointment) *model.VetAppointmentModel {
	return &model.VetAppointmentModel{
		ID:                 data.ID,
		AppointmentNumber:  data.AppointmentNumber,
		PetID:              data.PetID,
		PetName:            data.PetName,
		OwnerID:            data.OwnerID,
		StoreID:            data.StoreID,
		AppointmentDate:    entity.TruncateToDay(data.AppointmentDate),
		TimeSlot:           data.TimeSlot,
		BookingType:        string(data.BookingType),
		VisitType:          data.VisitType,
		Reason:             data.Reason,
		Symptoms:           data.Symptoms,
		Status:             string(data.Status),
		Amount:             data.Amount,
		Diagnosis:          data.Diagnosis,
		Treatment:          data.Treatment,
		Notes:              data.Notes,
		CancellationReason: data.CancellationReason,
		CancelledAt:        data.CancelledAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
