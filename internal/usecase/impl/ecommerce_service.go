package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultPaymentMethod is cash on delivery.
const defaultPaymentMethod = "cod"

var orderTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:    {entity.OrderConfirmed, entity.OrderCancelled},
	entity.OrderConfirmed:  {entity.OrderProcessing, entity.OrderCancelled},
	entity.OrderProcessing: {entity.OrderShipped, entity.OrderCancelled},
	entity.OrderShipped:    {entity.OrderDelivered},
}

type ecommerceService struct {
	txManager repository.TransactionManager
	notifier  notifier
	now       func() time.Time
	logger    *slog.Logger
}

// EcommerceServiceParams holds dependencies for EcommerceService, injected by Fx.
type EcommerceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewEcommerceService is the constructor for ecommerceService.
func NewEcommerceService(params EcommerceServiceParams) usecase.EcommerceUsecase {
	return &ecommerceService{
		txManager: params.TxManager,
		notifier:  newNotifier(params.Publisher, params.Logger),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *ecommerceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the public storefront; only active products are listed.
func (srv *ecommerceService) ListProducts(ctx context.Context, filter entity.ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	filter.Status = entity.ProductActive

	return srv.listProducts(ctx, filter, page)
}

func (srv *ecommerceService) ListManagedProducts(ctx context.Context, _ *usecase.Actor, filter entity.ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(filter.Status))
	}

	return srv.listProducts(ctx, filter, page)
}

func (srv *ecommerceService) listProducts(ctx context.Context, filter entity.ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	page = page.Normalize()
	filter.Search = strings.TrimSpace(filter.Search)

	var result *entity.Page[*entity.Product]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products, total, err := repoFactory.ProductRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list products")
		}
		result = newPage(products, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return result, nil
}

// GetProduct returns a listed product with up to SimilarProductsLimit others from its category.
func (srv *ecommerceService) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductDetails, error) {
	var details *usecase.ProductDetails
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrProductNotFound, "find product")
		}
		if !product.Status.IsListed() {
			return domainerrors.ErrProductNotFound
		}

		similar, err := productRepo.ListSimilar(ctx, product.Category, product.ID, entity.SimilarProductsLimit)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list similar products")
		}
		if similar == nil {
			similar = []*entity.Product{}
		}
		details = &usecase.ProductDetails{Product: product, Similar: similar}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return details, nil
}

func (srv *ecommerceService) CreateProduct(ctx context.Context, actor *usecase.Actor, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := srv.now()
	product := &entity.Product{
		ID:        uuid.New(),
		Status:    entity.ProductDraft,
		StoreID:   actor.StoreID,
		CreatedBy: actor.UserID,
		CreatedAt: now,
	}
	applyProductInput(product, input, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return domainerrors.FromRepository(repoFactory.ProductRepo().Create(ctx, product), nil, "create product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("status", string(product.Status)),
	)

	return product, nil
}

func (srv *ecommerceService) UpdateProduct(ctx context.Context, _ *usecase.Actor, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrProductNotFound, "find product")
		}
		applyProductInput(found, input, srv.now())
		if err := productRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "update product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *ecommerceService) DeleteProduct(ctx context.Context, _ *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrProductNotFound, "find product")
		}
		// Open orders still need the row to release or consume their reservation.
		if product.Stock.Reserved > 0 {
			return domainerrors.ErrProductReserved.WithDetails(strconv.Itoa(product.Stock.Reserved) + " units reserved")
		}

		return domainerrors.FromRepository(productRepo.Delete(ctx, id), domainerrors.ErrProductNotFound, "delete product")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))

	return nil
}

func validateProductInput(input usecase.ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Category) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name and category are required")
	case input.Price <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	case input.ComparePrice < 0:
		return domainerrors.ErrValidationFailed.WithDetails("comparePrice cannot be negative")
	case input.Stock < 0:
		return domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	case input.Status != "" && !input.Status.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(input.Status))
	}

	return nil
}

func applyProductInput(product *entity.Product, input usecase.ProductInput, now time.Time) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Category = strings.ToLower(strings.TrimSpace(input.Category))
	product.Brand = strings.TrimSpace(input.Brand)
	product.Price = input.Price
	product.ComparePrice = input.ComparePrice
	product.PetTypes = compactStrings(input.PetTypes)
	product.Stock.Current = input.Stock
	product.Images = compactStrings(input.Images)
	if input.Status != "" {
		product.Status = input.Status
	}
	product.UpdatedAt = now
}

// GetCart returns the actor's cart, or an empty one when nothing was added yet.
func (srv *ecommerceService) GetCart(ctx context.Context, actor *usecase.Actor) (*entity.Cart, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.loadCart(ctx, repoFactory.CartRepo(), actor.UserID)
		cart = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cart, nil
}

// AddToCart merges quantity into the cart. The combined quantity must be in stock.
func (srv *ecommerceService) AddToCart(ctx context.Context, actor *usecase.Actor, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	return srv.mutateCart(ctx, actor, "add to cart", func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		product, err := findPurchasable(ctx, repoFactory.ProductRepo(), productID)
		if err != nil {
			return err
		}
		if cart.QuantityOf(productID)+quantity > product.Stock.Current {
			return domainerrors.ErrInsufficientStock.WithDetails(product.Name)
		}
		cart.Add(entity.CartItem{ProductID: product.ID, Name: product.Name, Quantity: quantity, Price: product.Price})

		return nil
	})
}

func (srv *ecommerceService) UpdateCartItem(ctx context.Context, actor *usecase.Actor, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	return srv.mutateCart(ctx, actor, "update cart", func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		if quantity > 0 {
			product, err := findPurchasable(ctx, repoFactory.ProductRepo(), productID)
			if err != nil {
				return err
			}
			if quantity > product.Stock.Current {
				return domainerrors.ErrInsufficientStock.WithDetails(product.Name)
			}
		}
		if !cart.SetQuantity(productID, quantity) {
			return domainerrors.ErrCartItemMissing
		}

		return nil
	})
}

func (srv *ecommerceService) RemoveFromCart(ctx context.Context, actor *usecase.Actor, productID uuid.UUID) (*entity.Cart, error) {
	return srv.mutateCart(ctx, actor, "remove from cart", func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		if !cart.SetQuantity(productID, 0) {
			return domainerrors.ErrCartItemMissing
		}

		return nil
	})
}

func (srv *ecommerceService) ClearCart(ctx context.Context, actor *usecase.Actor) (*entity.Cart, error) {
	return srv.mutateCart(ctx, actor, "clear cart", func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.Items = []entity.CartItem{}

		return nil
	})
}

func (srv *ecommerceService) mutateCart(
	ctx context.Context,
	actor *usecase.Actor,
	op string,
	change func(repository.RepositoryFactory, *entity.Cart) error,
) (*entity.Cart, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		found, err := srv.loadCart(ctx, cartRepo, actor.UserID)
		if err != nil {
			return err
		}
		if err := change(repoFactory, found); err != nil {
			return err
		}
		found.UpdatedAt = srv.now()
		if err := cartRepo.Save(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "save cart")
		}
		cart = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return cart, nil
}

func (srv *ecommerceService) loadCart(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		now := srv.now()

		return &entity.Cart{ID: uuid.New(), UserID: userID, Items: []entity.CartItem{}, CreatedAt: now, UpdatedAt: now}, nil
	}
	if err != nil {
		return nil, domainerrors.FromRepository(err, nil, "find cart")
	}

	return cart, nil
}

func findPurchasable(ctx context.Context, productRepo repository.ProductRepository, id uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.FromRepository(err, domainerrors.ErrProductNotFound, "find product")
	}
	if product.Status != entity.ProductActive {
		return nil, domainerrors.ErrProductNotFound.WithDetails(product.Name + " is not available")
	}

	return product, nil
}

// Checkout reserves stock for every cart line at the current catalogue price and empties the cart.
func (srv *ecommerceService) Checkout(ctx context.Context, actor *usecase.Actor, input usecase.CheckoutInput) (*entity.Order, error) {
	method := input.ShippingMethod
	if method == "" {
		method = entity.ShippingDelivery
	}
	if method != entity.ShippingDelivery && method != entity.ShippingPickup {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shippingMethod must be delivery or pickup")
	}
	if method == entity.ShippingDelivery && input.ShippingAddress == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shippingAddress is required for delivery")
	}
	payment := strings.TrimSpace(input.PaymentMethod)
	if payment == "" {
		payment = defaultPaymentMethod
	}

	now := srv.now()
	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          actor.UserID,
		ShippingAddress: input.ShippingAddress,
		ShippingMethod:  method,
		PaymentMethod:   payment,
		PaymentStatus:   entity.PaymentPending,
		Status:          entity.OrderPending,
		Timeline:        []entity.TimelineEntry{{Status: string(entity.OrderPending), Notes: "Order placed", At: now}},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		cart, err := srv.loadCart(ctx, cartRepo, actor.UserID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrCartEmpty
		}

		for _, item := range cart.Items {
			product, err := findPurchasable(ctx, productRepo, item.ProductID)
			if err != nil {
				return err
			}
			if err := productRepo.ReserveStock(ctx, product.ID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(product.Name)
				}

				return domainerrors.FromRepository(err, nil, "reserve stock")
			}
			order.Items = append(order.Items, entity.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			})
		}
		order.PriceOrder()

		number, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixOrder, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate order number")
		}
		order.OrderNumber = number

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return domainerrors.FromRepository(err, nil, "create order")
		}

		cart.Items = []entity.CartItem{}
		cart.UpdatedAt = now

		return domainerrors.FromRepository(cartRepo.Save(ctx, cart), nil, "clear cart")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to checkout")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.TotalAmount),
	)

	return order, nil
}

func (srv *ecommerceService) ListMyOrders(ctx context.Context, actor *usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	return srv.listOrders(ctx, entity.OrderFilter{UserID: &actor.UserID}, page)
}

func (srv *ecommerceService) GetMyOrder(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrOrderNotFound, "find order")
		}
		if found.UserID != actor.UserID {
			return domainerrors.ErrOrderNotFound
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (srv *ecommerceService) ListOrders(ctx context.Context, _ *usecase.Actor, filter entity.OrderFilter, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(filter.Status))
	}

	return srv.listOrders(ctx, filter, page)
}

func (srv *ecommerceService) listOrders(ctx context.Context, filter entity.OrderFilter, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.Order]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders, total, err := repoFactory.OrderRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list orders")
		}
		result = newPage(orders, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return result, nil
}

// UpdateOrderStatus appends to the timeline. Cancelling releases reserved stock and delivery consumes it.
func (srv *ecommerceService) UpdateOrderStatus(ctx context.Context, actor *usecase.Actor, id uuid.UUID, status entity.OrderStatus, notes string) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrOrderNotFound, "find order")
		}
		if !canMoveOrder(found.Status, status) {
			return domainerrors.ErrInvalidStatus.WithDetails("cannot move from " + string(found.Status) + " to " + string(status))
		}

		for _, item := range found.Items {
			switch status {
			case entity.OrderCancelled:
				err = productRepo.ReleaseStock(ctx, item.ProductID, item.Quantity)
			case entity.OrderDelivered:
				err = productRepo.ConsumeReserved(ctx, item.ProductID, item.Quantity)
			}
			if err != nil {
				return domainerrors.FromRepository(err, nil, "adjust stock of "+item.Name)
			}
		}

		now := srv.now()
		found.Status = status
		if status == entity.OrderDelivered && found.PaymentMethod == defaultPaymentMethod {
			found.PaymentStatus = entity.PaymentCompleted
		}
		found.Timeline = append(found.Timeline, entity.TimelineEntry{
			Status:    string(status),
			Notes:     strings.TrimSpace(notes),
			UpdatedBy: actor.UserID.String(),
			At:        now,
		})
		found.UpdatedAt = now
		if err := orderRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("status", string(order.Status)),
	)
	srv.notifier.notify(ctx, entity.NotificationOrderStatus, []uuid.UUID{order.UserID},
		"Order "+order.OrderNumber, "Your order is now "+string(order.Status),
		map[string]string{"orderId": order.ID.String(), "status": string(order.Status)},
	)

	return order, nil
}

func canMoveOrder(from, to entity.OrderStatus) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// AddReview stores one review per user and product and refreshes the product's rating.
func (srv *ecommerceService) AddReview(ctx context.Context, actor *usecase.Actor, productID uuid.UUID, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	now := srv.now()
	review := &entity.Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    actor.UserID,
		UserName:  actor.Name,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := productRepo.FindByID(ctx, productID); err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrProductNotFound, "find product")
		}

		exists, err := reviewRepo.Exists(ctx, productID, actor.UserID)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "check review")
		}
		if exists {
			return domainerrors.ErrReviewExists
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrReviewExists
			}

			return domainerrors.FromRepository(err, nil, "create review")
		}

		aggregate, err := reviewRepo.Aggregate(ctx, productID)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "aggregate ratings")
		}

		return domainerrors.FromRepository(productRepo.UpdateRating(ctx, productID, aggregate), nil, "update rating")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add review")
	}

	return review, nil
}

func (srv *ecommerceService) ListReviews(ctx context.Context, productID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Review], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.Review]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviews, total, err := repoFactory.ReviewRepo().ListByProduct(ctx, productID, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list reviews")
		}
		result = newPage(reviews, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return result, nil
}
