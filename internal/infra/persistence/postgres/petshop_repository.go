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

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (repo *inventoryRepository) Create(ctx context.Context, item *entity.ShopInventoryItem) error {
	itemM := fromInventoryDomain(item)
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return translateWriteError(err, "failed to create inventory item")
	}
	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShopInventoryItem, error) {
	var itemM model.ShopInventoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		return nil, translateReadError(err, "failed to find inventory item")
	}

	return toInventoryDomain(&itemM), nil
}

func (repo *inventoryRepository) Update(ctx context.Context, item *entity.ShopInventoryItem) error {
	return updateAll(repo.db.WithContext(ctx), fromInventoryDomain(item), "failed to update inventory item")
}

func (repo *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOrNotFound(
		repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopInventoryModel{}),
		"failed to delete inventory item",
	)
}

func (repo *inventoryRepository) List(ctx context.Context, filter entity.InventoryFilter, page entity.PageRequest) ([]*entity.ShopInventoryItem, int64, error) {
	rows, total, err := findPage[model.ShopInventoryModel](repo.filtered(ctx, filter), page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list inventory")
	}

	return mapAll(rows, toInventoryDomain), total, nil
}

func (repo *inventoryRepository) Count(ctx context.Context, filter entity.InventoryFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count inventory")
	}

	return count, nil
}

func (repo *inventoryRepository) filtered(ctx context.Context, filter entity.InventoryFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.ShopInventoryModel{})
	if filter.StoreID != "" {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR breed ILIKE ? OR pet_code ILIKE ?", pattern, pattern, pattern)
	}

	return query
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.PetReservation) error {
	resM := fromReservationDomain(reservation)
	if err := repo.db.WithContext(ctx).Create(resM).Error; err != nil {
		return translateWriteError(err, "failed to create reservation")
	}
	reservation.ID = resM.ID
	reservation.CreatedAt = resM.CreatedAt
	reservation.UpdatedAt = resM.UpdatedAt

	return nil
}

func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PetReservation, error) {
	var resM model.PetReservationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&resM).Error; err != nil {
		return nil, translateReadError(err, "failed to find reservation")
	}

	return toReservationDomain(&resM), nil
}

func (repo *reservationRepository) Update(ctx context.Context, reservation *entity.PetReservation) error {
	return updateAll(repo.db.WithContext(ctx), fromReservationDomain(reservation), "failed to update reservation")
}

func (repo *reservationRepository) List(ctx context.Context, filter entity.ReservationFilter, page entity.PageRequest) ([]*entity.PetReservation, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PetReservationModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StoreID != "" {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	rows, total, err := findPage[model.PetReservationModel](query, page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reservations")
	}

	return mapAll(rows, toReservationDomain), total, nil
}

// --- Mapper Functions ---

func toInventoryDomain(data *model.ShopInventoryModel) *entity.ShopInventoryItem {
	return &entity.ShopInventoryItem{
		ID:            data.ID,
		PetCode:       data.PetCode,
		Name:          data.Name,
		Species:       data.Species,
		Breed:         data.Breed,
		Gender:        data.Gender,
		AgeMonths:     data.AgeMonths,
		Color:         data.Color,
		Description:   data.Description,
		Price:         data.Price,
		DiscountPrice: data.DiscountPrice,
		Status:        entity.InventoryStatus(data.Status),
		StoreID:       data.StoreID,
		Images:        data.Images,
		BuyerID:       data.BuyerID,
		SoldAt:        data.SoldAt,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromInventoryDomain(data *entity.ShopInventoryItem) *model.ShopInventoryModel {
	return &model.ShopInventoryModel{
		ID:            data.ID,
		PetCode:       data.PetCode,
		Name:          data.Name,
		Species:       data.Species,
		Breed:         data.Breed,
		Gender:        data.Gender,
		AgeMonths:     data.AgeMonths,
		Color:         data.Color,
		Description:   data.Description,
		Price:         data.Price,
		DiscountPrice: data.DiscountPrice,
		Status:        string(data.Status),
		StoreID:       data.StoreID,
		Images:        data.Images,
		BuyerID:       data.BuyerID,
		SoldAt:        data.SoldAt,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toReservationDomain(data *model.PetReservationModel) *entity.PetReservation {
	return &entity.PetReservation{
		ID:              data.ID,
		ReservationCode: data.ReservationCode,
		ItemID:          data.ItemID,
		UserID:          data.UserID,
		StoreID:         data.StoreID,
		ContactInfo:     data.ContactInfo.Data(),
		Notes:           data.Notes,
		Status:          entity.ReservationStatus(data.Status),
		RejectionReason: data.RejectionReason,
		Handover:        data.Handover.Data(),
		Payment:         data.Payment,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromReservationDomain(data *entity.PetReservation) *model.PetReservationModel {
	return &model.PetReservationModel{
		ID:              data.ID,
		ReservationCode: data.ReservationCode,
		ItemID:          data.ItemID,
		UserID:          data.UserID,
		StoreID:         data.StoreID,
		ContactInfo:     datatypes.NewJSONType(data.ContactInfo),
		Notes:           data.Notes,
		Status:          string(data.Status),
		RejectionReason: data.RejectionReason,
		Handover:        datatypes.NewJSONType(data.Handover),
		Payment:         data.Payment,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
