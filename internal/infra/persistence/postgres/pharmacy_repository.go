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

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *gorm.DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}

func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	medM := fromMedicineDomain(medicine)
	if err := repo.db.WithContext(ctx).Create(medM).Error; err != nil {
		return translateWriteError(err, "failed to create medicine")
	}
	medicine.ID = medM.ID
	medicine.CreatedAt = medM.CreatedAt
	medicine.UpdatedAt = medM.UpdatedAt

	return nil
}

func (repo *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medM model.MedicineModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&medM).Error; err != nil {
		return nil, translateReadError(err, "failed to find medicine")
	}

	return toMedicineDomain(&medM), nil
}

func (repo *medicineRepository) FindByNameAndBatch(ctx context.Context, name, batch string) (*entity.Medicine, error) {
	var medM model.MedicineModel
	if err := repo.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND batch_number = ?", name, batch).
		First(&medM).Error; err != nil {
		return nil, translateReadError(err, "failed to find medicine by batch")
	}

	return toMedicineDomain(&medM), nil
}

func (repo *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return updateAll(repo.db.WithContext(ctx), fromMedicineDomain(medicine), "failed to update medicine")
}

func (repo *medicineRepository) List(ctx context.Context, filter entity.MedicineFilter, page entity.PageRequest) ([]*entity.Medicine, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MedicineModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR manufacturer ILIKE ?", pattern, pattern)
	}

	rows, total, err := findPage[model.MedicineModel](query, page, "name ASC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list medicines")
	}

	return mapAll(rows, toMedicineDomain), total, nil
}

func (repo *medicineRepository) ListLowStock(ctx context.Context) ([]*entity.Medicine, error) {
	var rows []*model.MedicineModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND stock_current <= stock_reorder_level", true).
		Order("stock_current ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list low stock medicines")
	}

	return mapAll(rows, toMedicineDomain), nil
}

// DecrementStock guards the decrement in the WHERE clause so concurrent orders cannot oversell.
func (repo *medicineRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ? AND stock_current >= ?", id, quantity).
		Update("stock_current", gorm.Expr("stock_current - ?", quantity))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement medicine stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

type prescriptionRepository struct {
	db *gorm.DB
}

// NewPrescriptionRepository is the constructor for prescriptionRepository.
func NewPrescriptionRepository(db *gorm.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (repo *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	rxM := fromPrescriptionDomain(prescription)
	if err := repo.db.WithContext(ctx).Create(rxM).Error; err != nil {
		return translateWriteError(err, "failed to create prescription")
	}
	prescription.ID = rxM.ID
	prescription.CreatedAt = rxM.CreatedAt
	prescription.UpdatedAt = rxM.UpdatedAt

	return nil
}

func (repo *prescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var rxM model.PrescriptionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&rxM).Error; err != nil {
		return nil, translateReadError(err, "failed to find prescription")
	}

	return toPrescriptionDomain(&rxM), nil
}

func (repo *prescriptionRepository) Update(ctx context.Context, prescription *entity.Prescription) error {
	return updateAll(repo.db.WithContext(ctx), fromPrescriptionDomain(prescription), "failed to update prescription")
}

func (repo *prescriptionRepository) ListByStatus(ctx context.Context, status entity.PrescriptionStatus) ([]*entity.Prescription, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var rows []*model.PrescriptionModel
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list prescriptions")
	}

	return mapAll(rows, toPrescriptionDomain), nil
}

func (repo *prescriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error) {
	var rows []*model.PrescriptionModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user prescriptions")
	}

	return mapAll(rows, toPrescriptionDomain), nil
}

func (repo *prescriptionRepository) FindApproved(ctx context.Context, userID, medicineID uuid.UUID) (*entity.Prescription, error) {
	var rxM model.PrescriptionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND medicine_id = ? AND status = ?", userID, medicineID, string(entity.PrescriptionApproved)).
		Order("reviewed_at DESC").
		First(&rxM).Error; err != nil {
		return nil, translateReadError(err, "failed to find approved prescription")
	}

	return toPrescriptionDomain(&rxM), nil
}

type pharmacyOrderRepository struct {
	db *gorm.DB
}

// NewPharmacyOrderRepository is the constructor for pharmacyOrderRepository.
func NewPharmacyOrderRepository(db *gorm.DB) repository.PharmacyOrderRepository {
	return &pharmacyOrderRepository{db: db}
}

func (repo *pharmacyOrderRepository) Create(ctx context.Context, order *entity.PharmacyOrder) error {
	orderM := fromPharmacyOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return translateWriteError(err, "failed to create pharmacy order")
	}
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *pharmacyOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error) {
	var orderM model.PharmacyOrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		return nil, translateReadError(err, "failed to find pharmacy order")
	}

	return toPharmacyOrderDomain(&orderM), nil
}

func (repo *pharmacyOrderRepository) Update(ctx context.Context, order *entity.PharmacyOrder) error {
	return updateAll(repo.db.WithContext(ctx), fromPharmacyOrderDomain(order), "failed to update pharmacy order")
}

func (repo *pharmacyOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, page entity.PageRequest) ([]*entity.PharmacyOrder, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PharmacyOrderModel{}).Where("user_id = ?", userID)

	rows, total, err := findPage[model.PharmacyOrderModel](query, page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list user pharmacy orders")
	}

	return mapAll(rows, toPharmacyOrderDomain), total, nil
}

func (repo *pharmacyOrderRepository) List(ctx context.Context, status entity.PharmacyOrderStatus, page entity.PageRequest) ([]*entity.PharmacyOrder, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PharmacyOrderModel{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	rows, total, err := findPage[model.PharmacyOrderModel](query, page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list pharmacy orders")
	}

	return mapAll(rows, toPharmacyOrderDomain), total, nil
}

// --- Mapper Functions ---

func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	return &entity.Medicine{
		ID:                   data.ID,
		Name:                 data.Name,
		Description:          data.Description,
		Category:             data.Category,
		Price:                data.Price,
		CostPrice:            data.CostPrice,
		Dosage:               data.Dosage,
		Manufacturer:         data.Manufacturer,
		ExpiryDate:           data.ExpiryDate,
		BatchNumber:          data.BatchNumber,
		RequiresPrescription: data.RequiresPrescription,
		PetTypes:             data.PetTypes,
		Stock:                entity.Stock{Current: data.StockCurrent, ReorderLevel: data.StockReorderLevel},
		StoreID:              data.StoreID,
		IsActive:             data.IsActive,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	return &model.MedicineModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Description:          data.Description,
		Category:             data.Category,
		Price:                data.Price,
		CostPrice:            data.CostPrice,
		Dosage:               data.Dosage,
		Manufacturer:         data.Manufacturer,
		ExpiryDate:           data.ExpiryDate,
		BatchNumber:          data.BatchNumber,
		RequiresPrescription: data.RequiresPrescription,
		PetTypes:             data.PetTypes,
		StockCurrent:         data.Stock.Current,
		StockReorderLevel:    data.Stock.ReorderLevel,
		StoreID:              data.StoreID,
		IsActive:             data.IsActive,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toPrescriptionDomain(data *model.PrescriptionModel) *entity.Prescription {
	return &entity.Prescription{
		ID:          data.ID,
		UserID:      data.UserID,
		MedicineID:  data.MedicineID,
		PetID:       data.PetID,
		DocumentURL: data.DocumentURL,
		Status:      entity.PrescriptionStatus(data.Status),
		ReviewNotes: data.ReviewNotes,
		ReviewedBy:  data.ReviewedBy,
		ReviewedAt:  data.ReviewedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPrescriptionDomain(data *entity.Prescription) *model.PrescriptionModel {
	return &model.PrescriptionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		MedicineID:  data.MedicineID,
		PetID:       data.PetID,
		DocumentURL: data.DocumentURL,
		Status:      string(data.Status),
		ReviewNotes: data.ReviewNotes,
		ReviewedBy:  data.ReviewedBy,
		ReviewedAt:  data.ReviewedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toPharmacyOrderDomain(data *model.PharmacyOrderModel) *entity.PharmacyOrder {
	return &entity.PharmacyOrder{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		Items:           data.Items,
		Total:           data.Total,
		Status:          entity.PharmacyOrderStatus(data.Status),
		PrescriptionID:  data.PrescriptionID,
		ShippingAddress: data.ShippingAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPharmacyOrderDomain(data *entity.PharmacyOrder) *model.PharmacyOrderModel {
	return &model.PharmacyOrderModel{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		Items:           data.Items,
		Total:           data.Total,
		Status:          string(data.Status),
		PrescriptionID:  data.PrescriptionID,
		ShippingAddress: data.ShippingAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
