package postgres

import (
	"context"
	"strconv"
	"time"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type careServiceRepository struct {
	db *gorm.DB
}

// NewCareServiceRepository is the constructor for careServiceRepository.
func NewCareServiceRepository(db *gorm.DB) repository.CareServiceRepository {
	return &careServiceRepository{db: db}
}

func (repo *careServiceRepository) Create(ctx context.Context, svc *entity.CareService) error {
	svcM := fromCareServiceDomain(svc)
	if err := repo.db.WithContext(ctx).Create(svcM).Error; err != nil {
		return translateWriteError(err, "failed to create care service")
	}
	svc.ID = svcM.ID
	svc.CreatedAt = svcM.CreatedAt
	svc.UpdatedAt = svcM.UpdatedAt

	return nil
}

func (repo *careServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareService, error) {
	var svcM model.CareServiceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&svcM).Error; err != nil {
		return nil, translateReadError(err, "failed to find care service")
	}

	return toCareServiceDomain(&svcM), nil
}

func (repo *careServiceRepository) Update(ctx context.Context, svc *entity.CareService) error {
	return updateAll(repo.db.WithContext(ctx), fromCareServiceDomain(svc), "failed to update care service")
}

func (repo *careServiceRepository) List(ctx context.Context, category entity.CareCategory, activeOnly bool) ([]*entity.CareService, error) {
	query := repo.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", string(category))
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []*model.CareServiceModel
	if err := query.Order("category ASC, base_price ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list care services")
	}

	return mapAll(rows, toCareServiceDomain), nil
}

type careBookingRepository struct {
	db *gorm.DB
}

// NewCareBookingRepository is the constructor for careBookingRepository.
func NewCareBookingRepository(db *gorm.DB) repository.CareBookingRepository {
	return &careBookingRepository{db: db}
}

func (repo *careBookingRepository) Create(ctx context.Context, booking *entity.CareBooking) error {
	bookingM := fromCareBookingDomain(booking)
	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		return translateWriteError(err, "failed to create care booking")
	}
	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

func (repo *careBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareBooking, error) {
	var bookingM model.CareBookingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bookingM).Error; err != nil {
		return nil, translateReadError(err, "failed to find care booking")
	}

	return toCareBookingDomain(&bookingM), nil
}

func (repo *careBookingRepository) Update(ctx context.Context, booking *entity.CareBooking) error {
	return updateAll(repo.db.WithContext(ctx), fromCareBookingDomain(booking), "failed to update care booking")
}

func (repo *careBookingRepository) List(ctx context.Context, filter entity.CareBookingFilter, page entity.PageRequest) ([]*entity.CareBooking, int64, error) {
	rows, total, err := findPage[model.CareBookingModel](repo.filtered(ctx, filter), page, "start_date DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list care bookings")
	}

	return mapAll(rows, toCareBookingDomain), total, nil
}

func (repo *careBookingRepository) FindOverlapping(ctx context.Context, petID uuid.UUID, start, end time.Time, statuses []entity.CareBookingStatus) ([]*entity.CareBooking, error) {
	var rows []*model.CareBookingModel
	if err := repo.db.WithContext(ctx).
		Where("pet_id = ? AND status IN ?", petID, statusNames(statuses)).
		Where("start_date < ? AND end_date > ?", end, start).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overlapping bookings")
	}

	return mapAll(rows, toCareBookingDomain), nil
}

func (repo *careBookingRepository) Count(ctx context.Context, filter entity.CareBookingFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count care bookings")
	}

	return count, nil
}

func (repo *careBookingRepository) filtered(ctx context.Context, filter entity.CareBookingFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.CareBookingModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StoreID != "" {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ServiceCategory != "" {
		query = query.Where("service_category = ?", string(filter.ServiceCategory))
	}
	if filter.CaregiverID != nil {
		query = query.Where("assigned_caregivers @> ?::jsonb", "["+strconv.Quote(filter.CaregiverID.String())+"]")
	}

	return query
}

// --- Mapper Functions ---

func toCareServiceDomain(data *model.CareServiceModel) *entity.CareService {
	return &entity.CareService{
		ID:                data.ID,
		Name:              data.Name,
		Category:          entity.CareCategory(data.Category),
		Description:       data.Description,
		BasePrice:         data.BasePrice,
		PriceUnit:         entity.PriceUnit(data.PriceUnit),
		AdvancePercentage: data.AdvancePercentage,
		AdditionalCharges: data.AdditionalCharges,
		StoreID:           data.StoreID,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromCareServiceDomain(data *entity.CareService) *model.CareServiceModel {
	return &model.CareServiceModel{
		ID:                data.ID,
		Name:              data.Name,
		Category:          string(data.Category),
		Description:       data.Description,
		BasePrice:         data.BasePrice,
		PriceUnit:         string(data.PriceUnit),
		AdvancePercentage: data.AdvancePercentage,
		AdditionalCharges: data.AdditionalCharges,
		StoreID:           data.StoreID,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toCareBookingDomain(data *model.CareBookingModel) *entity.CareBooking {
	return &entity.CareBooking{
		ID:                  data.ID,
		BookingNumber:       data.BookingNumber,
		UserID:              data.UserID,
		PetID:               data.PetID,
		PetName:             data.PetName,
		ServiceID:           data.ServiceID,
		ServiceCategory:     entity.CareCategory(data.ServiceCategory),
		StoreID:             data.StoreID,
		StartDate:           data.StartDate,
		EndDate:             data.EndDate,
		Duration:            data.Duration.Data(),
		Location:            data.Location.Data(),
		SpecialRequirements: data.SpecialRequirements,
		Pricing:             data.Pricing.Data(),
		PaymentStatus:       data.PaymentStatus.Data(),
		Status:              entity.CareBookingStatus(data.Status),
		AssignedCaregivers:  data.AssignedCaregivers,
		Handover:            data.Handover.Data(),
		ActivityLog:         data.ActivityLog,
		Cancellation:        data.Cancellation,
		Review:              data.Review,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromCareBookingDomain(data *entity.CareBooking) *model.CareBookingModel {
	return &model.CareBookingModel{
		ID:                  data.ID,
		BookingNumber:       data.BookingNumber,
		UserID:              data.UserID,
		PetID:               data.PetID,
		PetName:             data.PetName,
		ServiceID:           data.ServiceID,
		ServiceCategory:     string(data.ServiceCategory),
		StoreID:             data.StoreID,
		StartDate:           data.StartDate,
		EndDate:             data.EndDate,
		Duration:            datatypes.NewJSONType(data.Duration),
		Location:            datatypes.NewJSONType(data.Location),
		SpecialRequirements: data.SpecialRequirements,
		Pricing:             datatypes.NewJSONType(data.Pricing),
		PaymentStatus:       datatypes.NewJSONType(data.PaymentStatus),
		Status:              string(data.Status),
		AssignedCaregivers:  data.AssignedCaregivers,
		Handover:            datatypes.NewJSONType(data.Handover),
		ActivityLog:         data.ActivityLog,
		Cancellation:        data.Cancellation,
		Review:              data.Review,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
