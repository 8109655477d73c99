package model

import (
	"time"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Sellable and reserved units are separate
// columns so stock moves can be guarded in a single UPDATE.
type ProductModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string                      `gorm:"type:varchar(200);not null"`
	Description   string                      `gorm:"type:text"`
	Category      string                      `gorm:"type:varchar(50);not null;index"`
	Brand         string                      `gorm:"type:varchar(100)"`
	Price         float64                     `gorm:"type:numeric(10,2);not null"`
	ComparePrice  float64                     `gorm:"type:numeric(10,2);not null;default:0"`
	PetTypes      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	StockCurrent  int                         `gorm:"not null;default:0"`
	StockReserved int                         `gorm:"not null;default:0"`
	Status        string                      `gorm:"type:varchar(20);not null;index"`
	RatingAverage float64                     `gorm:"not null;default:0"`
	RatingCount   int                         `gorm:"not null;default:0"`
	Images        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	StoreID       string                      `gorm:"type:varchar(64);index"`
	CreatedBy     uuid.UUID                   `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CartModel mirrors the 'carts' table; one row per user.
type CartModel struct {
	ID        uuid.UUID                            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID                            `gorm:"type:uuid;uniqueIndex;not null"`
	Items     datatypes.JSONSlice[entity.CartItem] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID                                 `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber     string                                    `gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID          uuid.UUID                                 `gorm:"type:uuid;not null;index"`
	Items           datatypes.JSONSlice[entity.OrderItem]     `gorm:"type:jsonb;not null"`
	Subtotal        float64                                   `gorm:"type:numeric(10,2);not null"`
	Tax             float64                                   `gorm:"type:numeric(10,2);not null"`
	ShippingCost    float64                                   `gorm:"type:numeric(10,2);not null"`
	TotalAmount     float64                                   `gorm:"type:numeric(10,2);not null"`
	ShippingAddress *entity.Address                           `gorm:"type:jsonb;serializer:json"`
	ShippingMethod  string                                    `gorm:"type:varchar(20);not null"`
	PaymentMethod   string                                    `gorm:"type:varchar(20);not null"`
	PaymentStatus   string                                    `gorm:"type:varchar(20);not null"`
	Status          string                                    `gorm:"type:varchar(20);not null;index"`
	Timeline        datatypes.JSONSlice[entity.TimelineEntry] `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ReviewModel mirrors the 'product_reviews' table. A user reviews a product at most once.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_product_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_product_user"`
	UserName  string    `gorm:"type:varchar(100)"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "product_reviews"
}
