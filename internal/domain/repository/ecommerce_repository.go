package repository

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository persists the e-commerce catalogue.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entity.ProductFilter, page entity.PageRequest) ([]*entity.Product, int64, error)

	// ListSimilar returns up to limit active products sharing category, excluding excludeID.
	ListSimilar(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*entity.Product, error)

	// ReserveStock moves quantity from current to reserved, failing with ErrInsufficientStock.
	ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error

	// ReleaseStock moves quantity from reserved back to current.
	ReleaseStock(ctx context.Context, id uuid.UUID, quantity int) error

	// ConsumeReserved drops quantity from reserved once an order is delivered.
	ConsumeReserved(ctx context.Context, id uuid.UUID, quantity int) error

	UpdateRating(ctx context.Context, id uuid.UUID, rating entity.Rating) error
	Count(ctx context.Context, filter entity.ProductFilter) (int64, error)
}

// CartRepository persists one cart per user.
type CartRepository interface {
	// FindByUser returns the user's cart or ErrNotFound.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save creates or replaces the user's cart.
	Save(ctx context.Context, cart *entity.Cart) error
}

// OrderRepository persists e-commerce orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, filter entity.OrderFilter, page entity.PageRequest) ([]*entity.Order, int64, error)
	Count(ctx context.Context, filter entity.OrderFilter) (int64, error)
}

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Exists(ctx context.Context, productID, userID uuid.UUID) (bool, error)
	ListByProduct(ctx context.Context, productID uuid.UUID, page entity.PageRequest) ([]*entity.Review, int64, error)

	// Aggregate computes the average rating and review count of productID.
	Aggregate(ctx context.Context, productID uuid.UUID) (entity.Rating, error)
}
