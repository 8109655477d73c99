package postgres

import (
	"context"
	"strconv"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return translateWriteError(err, "failed to create product")
	}
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		return nil, translateReadError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return updateAll(repo.db.WithContext(ctx), fromProductDomain(product), "failed to update product")
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOrNotFound(
		repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{}),
		"failed to delete product",
	)
}

func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter, page entity.PageRequest) ([]*entity.Product, int64, error) {
	rows, total, err := findPage[model.ProductModel](repo.filtered(ctx, filter), page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return mapAll(rows, toProductDomain), total, nil
}

func (repo *productRepository) ListSimilar(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*entity.Product, error) {
	var rows []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("category = ? AND id <> ? AND status = ?", category, excludeID, string(entity.ProductActive)).
		Order("rating_average DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list similar products")
	}

	return mapAll(rows, toProductDomain), nil
}

func (repo *productRepository) ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return repo.moveStock(ctx, repo.db, id, "stock_current >= ?", quantity, map[string]any{
		"stock_current":  gorm.Expr("stock_current - ?", quantity),
		"stock_reserved": gorm.Expr("stock_reserved + ?", quantity),
	})
}

// ReleaseStock and ConsumeReserved run unscoped so orders placed before a product was
// deleted can still be cancelled or delivered.
func (repo *productRepository) ReleaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return repo.moveStock(ctx, repo.db.Unscoped(), id, "stock_reserved >= ?", quantity, map[string]any{
		"stock_current":  gorm.Expr("stock_current + ?", quantity),
		"stock_reserved": gorm.Expr("stock_reserved - ?", quantity),
	})
}

func (repo *productRepository) ConsumeReserved(ctx context.Context, id uuid.UUID, quantity int) error {
	return repo.moveStock(ctx, repo.db.Unscoped(), id, "stock_reserved >= ?", quantity, map[string]any{
		"stock_reserved": gorm.Expr("stock_reserved - ?", quantity),
	})
}

// moveStock applies updates only while guard holds, so a row that would go negative is left alone.
func (repo *productRepository) moveStock(ctx context.Context, db *gorm.DB, id uuid.UUID, guard string, quantity int, updates map[string]any) error {
	result := db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Where(guard, quantity).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to move product stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating entity.Rating) error {
	return affectedOrNotFound(
		repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Updates(map[string]any{"rating_average": rating.Average, "rating_count": rating.Count}),
		"failed to update product rating",
	)
}

func (repo *productRepository) Count(ctx context.Context, filter entity.ProductFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func (repo *productRepository) filtered(ctx context.Context, filter entity.ProductFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PetType != "" {
		query = query.Where("pet_types @> ?::jsonb", "["+strconv.Quote(filter.PetType)+"]")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?", pattern, pattern, pattern)
	}

	return query
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&cartM).Error; err != nil {
		return nil, translateReadError(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// Save upserts on user_id so each user keeps a single cart row.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(cartM).Error; err != nil {
		return errors.Wrap(err, "failed to save cart")
	}
	cart.ID = cartM.ID
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return translateWriteError(err, "failed to create order")
	}
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		return nil, translateReadError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return updateAll(repo.db.WithContext(ctx), fromOrderDomain(order), "failed to update order")
}

func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter, page entity.PageRequest) ([]*entity.Order, int64, error) {
	rows, total, err := findPage[model.OrderModel](repo.filtered(ctx, filter), page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return mapAll(rows, toOrderDomain), total, nil
}

func (repo *orderRepository) Count(ctx context.Context, filter entity.OrderFilter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func (repo *orderRepository) filtered(ctx context.Context, filter entity.OrderFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	return query
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return translateWriteError(err, "failed to create review")
	}
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

func (repo *reviewRepository) Exists(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check review")
	}

	return count > 0, nil
}

func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID, page entity.PageRequest) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Where("product_id = ?", productID)

	rows, total, err := findPage[model.ReviewModel](query, page, "created_at DESC")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	return mapAll(rows, toReviewDomain), total, nil
}

func (repo *reviewRepository) Aggregate(ctx context.Context, productID uuid.UUID) (entity.Rating, error) {
	var agg struct {
		Average float64
		Count   int
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&agg).Error; err != nil {
		return entity.Rating{}, errors.Wrap(err, "failed to aggregate reviews")
	}

	return entity.Rating{Average: agg.Average, Count: agg.Count}, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Brand:        data.Brand,
		Price:        data.Price,
		ComparePrice: data.ComparePrice,
		PetTypes:     data.PetTypes,
		Stock:        entity.ProductStock{Current: data.StockCurrent, Reserved: data.StockReserved},
		Status:       entity.ProductStatus(data.Status),
		Rating:       entity.Rating{Average: data.RatingAverage, Count: data.RatingCount},
		Images:       data.Images,
		StoreID:      data.StoreID,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Brand:         data.Brand,
		Price:         data.Price,
		ComparePrice:  data.ComparePrice,
		PetTypes:      data.PetTypes,
		StockCurrent:  data.Stock.Current,
		StockReserved: data.Stock.Reserved,
		Status:        string(data.Status),
		RatingAverage: data.Rating.Average,
		RatingCount:   data.Rating.Count,
		Images:        data.Images,
		StoreID:       data.StoreID,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     data.Items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	items := data.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	return &model.CartModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		Items:           data.Items,
		Subtotal:        data.Subtotal,
		Tax:             data.Tax,
		ShippingCost:    data.ShippingCost,
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		ShippingMethod:  entity.ShippingMethod(data.ShippingMethod),
		PaymentMethod:   data.PaymentMethod,
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		Status:          entity.OrderStatus(data.Status),
		Timeline:        data.Timeline,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		Items:           data.Items,
		Subtotal:        data.Subtotal,
		Tax:             data.Tax,
		ShippingCost:    data.ShippingCost,
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		ShippingMethod:  string(data.ShippingMethod),
		PaymentMethod:   data.PaymentMethod,
		PaymentStatus:   string(data.PaymentStatus),
		Status:          string(data.Status),
		Timeline:        data.Timeline,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
