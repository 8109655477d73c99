package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductDraft        ProductStatus = "draft"
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductOutOfStock   ProductStatus = "out_of_stock"
	ProductDiscontinued ProductStatus = "discontinued"
)

// IsValid reports whether s is a known product status.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductDraft, ProductActive, ProductInactive, ProductOutOfStock, ProductDiscontinued:
		return true
	}

	return false
}

// IsListed reports whether customers can see the product.
func (s ProductStatus) IsListed() bool {
	return s == ProductActive || s == ProductOutOfStock
}

// ProductStock splits inventory into sellable and reserved-by-orders units.
type ProductStock struct {
	Current  int `json:"current"`
	Reserved int `json:"reserved"`
}

// Rating is the aggregate of product reviews.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Product is an e-commerce catalogue entry.
type Product struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Category     string        `json:"category"`
	Brand        string        `json:"brand,omitempty"`
	Price        float64       `json:"price"`
	ComparePrice float64       `json:"comparePrice,omitempty"`
	PetTypes     []string      `json:"petTypes,omitempty"`
	Stock        ProductStock  `json:"stock"`
	Status       ProductStatus `json:"status"`
	Rating       Rating        `json:"rating"`
	Images       []string      `json:"images,omitempty"`
	StoreID      string        `json:"storeId,omitempty"`
	CreatedBy    uuid.UUID     `json:"createdBy"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category string
	PetType  string
	Search   string
	Status   ProductStatus
}

// SimilarProductsLimit caps the related products returned with product details.
const SimilarProductsLimit = 5

// CartItem is a product line in a cart.
type CartItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name,omitempty"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// Cart is a user's pending selection; one per user.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Add merges quantity into an existing line or appends a new one.
func (c *Cart) Add(item CartItem) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == item.ProductID {
			c.Items[idx].Quantity += item.Quantity
			c.Items[idx].Price = item.Price

			return
		}
	}
	c.Items = append(c.Items, item)
}

// QuantityOf returns the quantity of productID already in the cart.
func (c *Cart) QuantityOf(productID uuid.UUID) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}

	return 0
}

// SetQuantity updates a line; quantities <= 0 remove it. It reports whether the line existed.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) bool {
	for idx := range c.Items {
		if c.Items[idx].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		} else {
			c.Items[idx].Quantity = quantity
		}

		return true
	}

	return false
}

// Subtotal sums price times quantity over every line.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// IsFinal reports whether no further status change is allowed.
func (s OrderStatus) IsFinal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}

	return false
}

type ShippingMethod string

const (
	ShippingDelivery ShippingMethod = "delivery"
	ShippingPickup   ShippingMethod = "pickup"
)

// DeliveryShippingCost is charged for home delivery; pickup is free.
const DeliveryShippingCost = 50.0

// ShippingCost returns the flat fee for m.
func (m ShippingMethod) ShippingCost() float64 {
	if m == ShippingPickup {
		return 0
	}

	return DeliveryShippingCost
}

// OrderItem is a product line frozen at checkout.
type OrderItem struct {
	ProductID  uuid.UUID `json:"productId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	TotalPrice float64   `json:"totalPrice"`
}

// Order is an e-commerce purchase.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          uuid.UUID       `json:"userId"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	ShippingCost    float64         `json:"shippingCost"`
	TotalAmount     float64         `json:"totalAmount"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
	ShippingMethod  ShippingMethod  `json:"shippingMethod"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	Status          OrderStatus     `json:"status"`
	Timeline        []TimelineEntry `json:"timeline"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// PriceOrder fills subtotal, tax, shipping and total from the items.
func (o *Order) PriceOrder() {
	var subtotal float64
	for idx := range o.Items {
		o.Items[idx].TotalPrice = roundMoney(o.Items[idx].UnitPrice * float64(o.Items[idx].Quantity))
		subtotal += o.Items[idx].TotalPrice
	}

	o.Subtotal = roundMoney(subtotal)
	o.Tax = roundMoney(Percent(subtotal, TaxPercentage))
	o.ShippingCost = o.ShippingMethod.ShippingCost()
	o.TotalAmount = roundMoney(o.Subtotal + o.Tax + o.ShippingCost)
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	UserID *uuid.UUID
	Status OrderStatus
}

// Review is one user's rating of a product.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
