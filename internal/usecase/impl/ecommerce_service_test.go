package impl

import (
	"context"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	mockRepo "petwelfare/internal/mocks/repository"
	mockSvc "petwelfare/internal/mocks/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ecommerceServiceFixtures struct {
	service     *ecommerceService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	cartRepo    *mockRepo.MockCartRepository
	orderRepo   *mockRepo.MockOrderRepository
	reviewRepo  *mockRepo.MockReviewRepository
	seqRepo     *mockRepo.MockSequenceRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestEcommerceService(t *testing.T) ecommerceServiceFixtures {
	fx := ecommerceServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		seqRepo:     mockRepo.NewMockSequenceRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewEcommerceService(EcommerceServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	}).(*ecommerceService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo).Maybe()
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo).Maybe()
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func activeProduct(name string, price float64, stock int) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: "food",
		Price:    price,
		Stock:    entity.ProductStock{Current: stock},
		Status:   entity.ProductActive,
	}
}

func TestEcommerceService_CreateProduct(t *testing.T) {
	t.Run("new products start as draft", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("ecommerce_manager")

		fx.productRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := fx.service.CreateProduct(context.Background(), actor, usecase.ProductInput{
			Name:     "Kibble",
			Category: " Food ",
			Price:    20,
			Stock:    5,
			PetTypes: []string{"dog", " "},
		})

		require.NoError(t, err)
		assert.Equal(t, entity.ProductDraft, product.Status)
		assert.Equal(t, "food", product.Category)
		assert.Equal(t, []string{"dog"}, product.PetTypes)
		assert.Equal(t, actor.UserID, product.CreatedBy)
	})

	tests := []struct {
		name  string
		input usecase.ProductInput
	}{
		{"missing name", usecase.ProductInput{Category: "food", Price: 1}},
		{"free product", usecase.ProductInput{Name: "x", Category: "food"}},
		{"negative stock", usecase.ProductInput{Name: "x", Category: "food", Price: 1, Stock: -1}},
		{"unknown status", usecase.ProductInput{Name: "x", Category: "food", Price: 1, Status: "sold"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEcommerceService(t)

			_, err := fx.service.CreateProduct(context.Background(), testActor("ecommerce_manager"), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestEcommerceService_GetProduct(t *testing.T) {
	t.Run("with similar products", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		product := activeProduct("Kibble", 20, 5)
		similar := []*entity.Product{activeProduct("Treats", 5, 10)}

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.productRepo.EXPECT().ListSimilar(mock.Anything, "food", product.ID, entity.SimilarProductsLimit).Return(similar, nil)

		details, err := fx.service.GetProduct(context.Background(), product.ID)

		require.NoError(t, err)
		assert.Equal(t, product, details.Product)
		assert.Len(t, details.Similar, 1)
	})

	t.Run("draft is hidden", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		product := activeProduct("Kibble", 20, 5)
		product.Status = entity.ProductDraft

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		_, err := fx.service.GetProduct(context.Background(), product.ID)

		require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestEcommerceService_DeleteProduct(t *testing.T) {
	t.Run("refused while orders hold stock", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		product := activeProduct("Kibble", 20, 5)
		product.Stock.Reserved = 2

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		err := fx.service.DeleteProduct(context.Background(), testActor("ecommerce_manager"), product.ID)

		require.ErrorIs(t, err, domainerrors.ErrProductReserved)
		fx.productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes without reservations", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		product := activeProduct("Kibble", 20, 5)

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.productRepo.EXPECT().Delete(mock.Anything, product.ID).Return(nil)

		require.NoError(t, fx.service.DeleteProduct(context.Background(), testActor("ecommerce_manager"), product.ID))
	})

	t.Run("missing product", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		id := uuid.New()

		fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNotFound)

		err := fx.service.DeleteProduct(context.Background(), testActor("ecommerce_manager"), id)

		require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestEcommerceService_AddToCart(t *testing.T) {
	t.Run("merges quantities", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")
		product := activeProduct("Kibble", 20, 5)
		cart := &entity.Cart{ID: uuid.New(), UserID: actor.UserID, Items: []entity.CartItem{{ProductID: product.ID, Quantity: 2, Price: 18}}}

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(cart, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.cartRepo.EXPECT().Save(mock.Anything, cart).Return(nil)

		updated, err := fx.service.AddToCart(context.Background(), actor, product.ID, 3)

		require.NoError(t, err)
		require.Len(t, updated.Items, 1)
		assert.Equal(t, 5, updated.Items[0].Quantity)
		assert.InDelta(t, 20, updated.Items[0].Price, 0.001)
	})

	t.Run("creates cart on first add", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")
		product := activeProduct("Kibble", 20, 5)

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(nil, repository.ErrNotFound)
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.cartRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Cart")).Return(nil)

		cart, err := fx.service.AddToCart(context.Background(), actor, product.ID, 1)

		require.NoError(t, err)
		assert.Equal(t, actor.UserID, cart.UserID)
		assert.Len(t, cart.Items, 1)
	})

	t.Run("beyond stock", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")
		product := activeProduct("Kibble", 20, 5)
		cart := &entity.Cart{UserID: actor.UserID, Items: []entity.CartItem{{ProductID: product.ID, Quantity: 4}}}

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(cart, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		_, err := fx.service.AddToCart(context.Background(), actor, product.ID, 2)

		require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	})
}

func TestEcommerceService_UpdateCartItem_ZeroRemoves(t *testing.T) {
	fx := createTestEcommerceService(t)
	actor := testActor("public_user")
	productID := uuid.New()
	cart := &entity.Cart{UserID: actor.UserID, Items: []entity.CartItem{{ProductID: productID, Quantity: 2}}}

	fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(cart, nil)
	fx.cartRepo.EXPECT().Save(mock.Anything, cart).Return(nil)

	updated, err := fx.service.UpdateCartItem(context.Background(), actor, productID, 0)

	require.NoError(t, err)
	assert.Empty(t, updated.Items)
}

func TestEcommerceService_RemoveFromCart_Missing(t *testing.T) {
	fx := createTestEcommerceService(t)
	actor := testActor("public_user")

	fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(&entity.Cart{UserID: actor.UserID}, nil)

	_, err := fx.service.RemoveFromCart(context.Background(), actor, uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrCartItemMissing)
}

func TestEcommerceService_Checkout(t *testing.T) {
	address := &entity.Address{Street: "1 Main St", City: "Pune"}

	t.Run("reserves stock and clears cart", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")
		kibble := activeProduct("Kibble", 20, 5)
		toy := activeProduct("Toy", 7.5, 3)
		cart := &entity.Cart{UserID: actor.UserID, Items: []entity.CartItem{
			{ProductID: kibble.ID, Quantity: 2, Price: 18},
			{ProductID: toy.ID, Quantity: 1, Price: 7.5},
		}}

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(cart, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, kibble.ID).Return(kibble, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, toy.ID).Return(toy, nil)
		fx.productRepo.EXPECT().ReserveStock(mock.Anything, kibble.ID, 2).Return(nil)
		fx.productRepo.EXPECT().ReserveStock(mock.Anything, toy.ID, 1).Return(nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, "ORD-20250310").Return(int64(42), nil)
		fx.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
		fx.cartRepo.EXPECT().Save(mock.Anything, cart).Return(nil)

		order, err := fx.service.Checkout(context.Background(), actor, usecase.CheckoutInput{ShippingAddress: address})

		require.NoError(t, err)
		assert.Equal(t, "ORD-20250310-0042", order.OrderNumber)
		assert.InDelta(t, 47.5, order.Subtotal, 0.001)
		assert.InDelta(t, 8.55, order.Tax, 0.001)
		assert.InDelta(t, 50, order.ShippingCost, 0.001)
		assert.InDelta(t, 106.05, order.TotalAmount, 0.001)
		assert.Equal(t, "cod", order.PaymentMethod)
		require.Len(t, order.Timeline, 1)
		assert.Empty(t, cart.Items)
	})

	t.Run("pickup ships free", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")
		kibble := activeProduct("Kibble", 100, 5)
		cart := &entity.Cart{UserID: actor.UserID, Items: []entity.CartItem{{ProductID: kibble.ID, Quantity: 1}}}

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(cart, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, kibble.ID).Return(kibble, nil)
		fx.productRepo.EXPECT().ReserveStock(mock.Anything, kibble.ID, 1).Return(nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, mock.Anything).Return(int64(1), nil)
		fx.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		fx.cartRepo.EXPECT().Save(mock.Anything, cart).Return(nil)

		order, err := fx.service.Checkout(context.Background(), actor, usecase.CheckoutInput{ShippingMethod: entity.ShippingPickup})

		require.NoError(t, err)
		assert.InDelta(t, 0, order.ShippingCost, 0.001)
		assert.InDelta(t, 118, order.TotalAmount, 0.001)
	})

	t.Run("empty cart", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(nil, repository.ErrNotFound)

		_, err := fx.service.Checkout(context.Background(), actor, usecase.CheckoutInput{ShippingAddress: address})

		require.ErrorIs(t, err, domainerrors.ErrCartEmpty)
		assert.Equal(t, 400, mustAppError(t, err).HTTPCode())
	})

	t.Run("stock ran out", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")
		kibble := activeProduct("Kibble", 20, 5)
		cart := &entity.Cart{UserID: actor.UserID, Items: []entity.CartItem{{ProductID: kibble.ID, Quantity: 2}}}

		fx.cartRepo.EXPECT().FindByUser(mock.Anything, actor.UserID).Return(cart, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, kibble.ID).Return(kibble, nil)
		fx.productRepo.EXPECT().ReserveStock(mock.Anything, kibble.ID, 2).Return(repository.ErrInsufficientStock)

		_, err := fx.service.Checkout(context.Background(), actor, usecase.CheckoutInput{ShippingAddress: address})

		require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
		assert.Len(t, cart.Items, 1)
	})

	t.Run("delivery needs address", func(t *testing.T) {
		fx := createTestEcommerceService(t)

		_, err := fx.service.Checkout(context.Background(), testActor("public_user"), usecase.CheckoutInput{})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestEcommerceService_GetMyOrder_OwnerOnly(t *testing.T) {
	fx := createTestEcommerceService(t)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.GetMyOrder(context.Background(), testActor("public_user"), order.ID)

	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestEcommerceService_UpdateOrderStatus(t *testing.T) {
	manager := testActor("ecommerce_manager")

	t.Run("cancel releases stock", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		productID := uuid.New()
		order := &entity.Order{
			ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderConfirmed,
			Items: []entity.OrderItem{{ProductID: productID, Name: "Kibble", Quantity: 3}},
		}

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		fx.productRepo.EXPECT().ReleaseStock(mock.Anything, productID, 3).Return(nil)
		fx.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil)
		fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)

		updated, err := fx.service.UpdateOrderStatus(context.Background(), manager, order.ID, entity.OrderCancelled, "customer request")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, updated.Status)
		require.Len(t, updated.Timeline, 1)
		assert.Equal(t, "customer request", updated.Timeline[0].Notes)
		assert.Equal(t, manager.UserID.String(), updated.Timeline[0].UpdatedBy)
	})

	t.Run("delivered consumes reservation", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		productID := uuid.New()
		order := &entity.Order{
			ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderShipped, PaymentMethod: "cod",
			Items: []entity.OrderItem{{ProductID: productID, Quantity: 2}},
		}

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		fx.productRepo.EXPECT().ConsumeReserved(mock.Anything, productID, 2).Return(nil)
		fx.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil)
		fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)

		updated, err := fx.service.UpdateOrderStatus(context.Background(), manager, order.ID, entity.OrderDelivered, "")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCompleted, updated.PaymentStatus)
	})

	t.Run("cannot skip shipping", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		order := &entity.Order{ID: uuid.New(), Status: entity.OrderPending}

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(context.Background(), manager, order.ID, entity.OrderDelivered, "")

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestEcommerceService_AddReview(t *testing.T) {
	t.Run("recomputes rating", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")
		product := activeProduct("Kibble", 20, 5)
		aggregate := entity.Rating{Average: 4.5, Count: 2}

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.reviewRepo.EXPECT().Exists(mock.Anything, product.ID, actor.UserID).Return(false, nil)
		fx.reviewRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)
		fx.reviewRepo.EXPECT().Aggregate(mock.Anything, product.ID).Return(aggregate, nil)
		fx.productRepo.EXPECT().UpdateRating(mock.Anything, product.ID, aggregate).Return(nil)

		review, err := fx.service.AddReview(context.Background(), actor, product.ID, 4, " tasty ")

		require.NoError(t, err)
		assert.Equal(t, "tasty", review.Comment)
	})

	t.Run("second review", func(t *testing.T) {
		fx := createTestEcommerceService(t)
		actor := testActor("public_user")
		product := activeProduct("Kibble", 20, 5)

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.reviewRepo.EXPECT().Exists(mock.Anything, product.ID, actor.UserID).Return(true, nil)

		_, err := fx.service.AddReview(context.Background(), actor, product.ID, 4, "")

		require.ErrorIs(t, err, domainerrors.ErrReviewExists)
	})

	t.Run("rating out of range", func(t *testing.T) {
		fx := createTestEcommerceService(t)

		_, err := fx.service.AddReview(context.Background(), testActor("public_user"), uuid.New(), 0, "")

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
