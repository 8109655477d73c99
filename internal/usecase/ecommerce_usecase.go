package usecase

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProductInput creates or replaces a catalogue product. An empty Status keeps draft for new products.
type ProductInput struct {
	Name         string
	Description  string
	Category     string
	Brand        string
	Price        float64
	ComparePrice float64
	PetTypes     []string
	Stock        int
	Status       entity.ProductStatus
	Images       []string
}

// CheckoutInput turns the cart into an order.
type CheckoutInput struct {
	ShippingAddress *entity.Address
	ShippingMethod  entity.ShippingMethod
	PaymentMethod   string
}

// --- Output DTOs ---

// ProductDetails is a product with related products from the same category.
type ProductDetails struct {
	Product *entity.Product   `json:"product"`
	Similar []*entity.Product `json:"similarProducts"`
}

// EcommerceUsecase covers the storefront, carts, orders and product reviews.
type EcommerceUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDetails, error)

	ListManagedProducts(ctx context.Context, actor *Actor, filter entity.ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error)
	CreateProduct(ctx context.Context, actor *Actor, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, actor *Actor, id uuid.UUID, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor *Actor, id uuid.UUID) error

	GetCart(ctx context.Context, actor *Actor) (*entity.Cart, error)
	AddToCart(ctx context.Context, actor *Actor, productID uuid.UUID, quantity int) (*entity.Cart, error)
	// UpdateCartItem sets the quantity of a line; quantities <= 0 remove it.
	UpdateCartItem(ctx context.Context, actor *Actor, productID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveFromCart(ctx context.Context, actor *Actor, productID uuid.UUID) (*entity.Cart, error)
	ClearCart(ctx context.Context, actor *Actor) (*entity.Cart, error)

	Checkout(ctx context.Context, actor *Actor, input CheckoutInput) (*entity.Order, error)
	ListMyOrders(ctx context.Context, actor *Actor, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	GetMyOrder(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, actor *Actor, filter entity.OrderFilter, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	UpdateOrderStatus(ctx context.Context, actor *Actor, id uuid.UUID, status entity.OrderStatus, notes string) (*entity.Order, error)

	AddReview(ctx context.Context, actor *Actor, productID uuid.UUID, rating int, comment string) (*entity.Review, error)
	ListReviews(ctx context.Context, productID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Review], error)
}
