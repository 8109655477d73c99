package handler

import (
	"log/slog"
	"net/http"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EcommerceHandlerParams holds dependencies for EcommerceHandler, injected by Fx.
type EcommerceHandlerParams struct {
	fx.In

	EcommerceUC usecase.EcommerceUsecase
	Logger      *slog.Logger
}

// EcommerceHandler serves the storefront, carts, orders and reviews.
type EcommerceHandler struct {
	ecommerceUC usecase.EcommerceUsecase
	logger      *slog.Logger
}

// NewEcommerceHandler is the constructor for EcommerceHandler.
func NewEcommerceHandler(params EcommerceHandlerParams) *EcommerceHandler {
	return &EcommerceHandler{
		ecommerceUC: params.EcommerceUC,
		logger:      params.Logger,
	}
}

// ProductRequest creates or replaces a product.
type ProductRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=5000"`
	Category     string   `json:"category" validate:"required"`
	Brand        string   `json:"brand"`
	Price        float64  `json:"price" validate:"gt=0"`
	ComparePrice float64  `json:"comparePrice" validate:"min=0"`
	PetTypes     []string `json:"petTypes"`
	Stock        int      `json:"stock" validate:"min=0"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft active inactive out_of_stock discontinued"`
	Images       []string `json:"images"`
}

func (req ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Brand:        req.Brand,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		PetTypes:     req.PetTypes,
		Stock:        req.Stock,
		Status:       entity.ProductStatus(req.Status),
		Images:       req.Images,
	}
}

// CartItemRequest adds a product to the cart.
type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartQuantityRequest sets a cart line's quantity; zero or less removes it.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest turns the cart into an order.
type CheckoutRequest struct {
	ShippingAddress *entity.Address `json:"shippingAddress"`
	ShippingMethod  string          `json:"shippingMethod" validate:"omitempty,oneof=delivery pickup"`
	PaymentMethod   string          `json:"paymentMethod"`
}

// OrderStatusRequest moves an order along its lifecycle.
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
	Notes  string `json:"notes" validate:"max=1000"`
}

func productFilter(c echo.Context) entity.ProductFilter {
	return entity.ProductFilter{
		Category: c.QueryParam("category"),
		PetType:  c.QueryParam("petType"),
		Search:   c.QueryParam("search"),
		Status:   entity.ProductStatus(c.QueryParam("status")),
	}
}

// ListProducts lists active products.
func (h *EcommerceHandler) ListProducts(c echo.Context) error {
	list, err := h.ecommerceUC.ListProducts(c.Request().Context(), productFilter(c), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetProduct returns a product with similar products.
func (h *EcommerceHandler) GetProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	details, err := h.ecommerceUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}

// ListReviews lists a product's reviews.
func (h *EcommerceHandler) ListReviews(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	list, err := h.ecommerceUC.ListReviews(c.Request().Context(), id, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// AddReview rates a product once per user.
func (h *EcommerceHandler) AddReview(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	review, err := h.ecommerceUC.AddReview(c.Request().Context(), actor, id, req.Rating, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Review added", review)
}

// --- Cart ---

// GetCart returns the caller's cart.
func (h *EcommerceHandler) GetCart(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	cart, err := h.ecommerceUC.GetCart(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddToCart adds a product or increases its quantity.
func (h *EcommerceHandler) AddToCart(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req CartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	cart, err := h.ecommerceUC.AddToCart(c.Request().Context(), actor, mustParseUUID(req.ProductID), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Added to cart", cart)
}

// UpdateCartItem sets a line's quantity.
func (h *EcommerceHandler) UpdateCartItem(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return respond(err)
	}

	var req CartQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	cart, err := h.ecommerceUC.UpdateCartItem(c.Request().Context(), actor, productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveFromCart drops a line.
func (h *EcommerceHandler) RemoveFromCart(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return respond(err)
	}

	cart, err := h.ecommerceUC.RemoveFromCart(c.Request().Context(), actor, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties the cart.
func (h *EcommerceHandler) ClearCart(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	cart, err := h.ecommerceUC.ClearCart(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Cart cleared", cart)
}

// --- Orders ---

// Checkout places an order from the cart.
func (h *EcommerceHandler) Checkout(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	order, err := h.ecommerceUC.Checkout(c.Request().Context(), actor, usecase.CheckoutInput{
		ShippingAddress: req.ShippingAddress,
		ShippingMethod:  entity.ShippingMethod(req.ShippingMethod),
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Order placed", order)
}

// ListMyOrders lists the caller's orders.
func (h *EcommerceHandler) ListMyOrders(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.ecommerceUC.ListMyOrders(c.Request().Context(), actor, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetMyOrder returns one of the caller's orders.
func (h *EcommerceHandler) GetMyOrder(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	order, err := h.ecommerceUC.GetMyOrder(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// --- Manager ---

// ListManagedProducts lists products in every status.
func (h *EcommerceHandler) ListManagedProducts(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.ecommerceUC.ListManagedProducts(c.Request().Context(), actor, productFilter(c), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// CreateProduct adds a product.
func (h *EcommerceHandler) CreateProduct(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	product, err := h.ecommerceUC.CreateProduct(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct replaces a product.
func (h *EcommerceHandler) UpdateProduct(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	product, err := h.ecommerceUC.UpdateProduct(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct removes a product.
func (h *EcommerceHandler) DeleteProduct(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	if err := h.ecommerceUC.DeleteProduct(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Product deleted", nil)
}

// ListOrders lists every order, optionally by ?status.
func (h *EcommerceHandler) ListOrders(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	filter := entity.OrderFilter{Status: entity.OrderStatus(c.QueryParam("status"))}
	if userID, ok := optionalUUIDQuery(c, "userId"); ok {
		filter.UserID = &userID
	}

	list, err := h.ecommerceUC.ListOrders(c.Request().Context(), actor, filter, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// UpdateOrderStatus moves an order to a new status.
func (h *EcommerceHandler) UpdateOrderStatus(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req OrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	order, err := h.ecommerceUC.UpdateOrderStatus(c.Request().Context(), actor, id, entity.OrderStatus(req.Status), req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Order updated", order)
}
