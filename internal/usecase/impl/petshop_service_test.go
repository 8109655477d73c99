package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	mockRepo "petwelfare/internal/mocks/repository"
	mockSvc "petwelfare/internal/mocks/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type petShopServiceFixtures struct {
	service         *petShopService
	txManager       *mockRepo.MockTransactionManager
	factory         *mockRepo.MockRepositoryFactory
	itemRepo        *mockRepo.MockInventoryRepository
	reservationRepo *mockRepo.MockReservationRepository
	seqRepo         *mockRepo.MockSequenceRepository
	registry        *mockRepo.MockPetRepository
	qrCode          *mockSvc.MockQRCodeService
	publisher       *mockSvc.MockEventPublisher
}

func createTestPetShopService(t *testing.T) petShopServiceFixtures {
	fx := petShopServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		factory:         mockRepo.NewMockRepositoryFactory(t),
		itemRepo:        mockRepo.NewMockInventoryRepository(t),
		reservationRepo: mockRepo.NewMockReservationRepository(t),
		seqRepo:         mockRepo.NewMockSequenceRepository(t),
		registry:        mockRepo.NewMockPetRepository(t),
		qrCode:          mockSvc.NewMockQRCodeService(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewPetShopService(PetShopServiceParams{
		TxManager: fx.txManager,
		QRCode:    fx.qrCode,
		Publisher: fx.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*petShopService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().InventoryRepo().Return(fx.itemRepo).Maybe()
	fx.factory.EXPECT().ReservationRepo().Return(fx.reservationRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	fx.factory.EXPECT().PetRepo().Return(fx.registry).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func shopManager(storeID string) *usecase.Actor {
	actor := testActor("petshop_manager")
	actor.Module = entity.ModulePetShop
	actor.StoreID = storeID

	return actor
}

func readyReservation(storeID string) (*entity.PetReservation, *entity.ShopInventoryItem) {
	item := &entity.ShopInventoryItem{
		ID: uuid.New(), PetCode: "PET-20250301-0004", Name: "Coco", Species: "Cat", AgeMonths: 3,
		StoreID: storeID, Status: entity.InventoryReserved, Price: 500,
	}
	r := &entity.PetReservation{
		ID:              uuid.New(),
		ReservationCode: "RES-20250310-0001",
		ItemID:          item.ID,
		UserID:          uuid.New(),
		StoreID:         storeID,
		Status:          entity.ReservationReadyPickup,
		Handover: entity.Handover{OTPHistory: []entity.HandoverOTP{
			{OTP: "111111", GeneratedAt: fixedNow.Add(-2 * time.Hour), ExpiresAt: fixedNow.Add(22 * time.Hour)},
			{OTP: "222222", GeneratedAt: fixedNow.Add(-time.Hour), ExpiresAt: fixedNow.Add(23 * time.Hour)},
		}},
	}

	return r, item
}

func (fx petShopServiceFixtures) expectLoad(r *entity.PetReservation, item *entity.ShopInventoryItem) {
	fx.reservationRepo.EXPECT().FindByID(mock.Anything, r.ID).Return(r, nil)
	fx.itemRepo.EXPECT().FindByID(mock.Anything, item.ID).Return(item, nil)
}

func TestPetShopService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("manager lists under own store with pet code", func(t *testing.T) {
		fx := createTestPetShopService(t)
		fx.seqRepo.EXPECT().Next(ctx, entity.SequenceKey(entity.PrefixPetCode, fixedNow)).Return(int64(7), nil)
		fx.itemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ShopInventoryItem")).Return(nil)

		item, err := fx.service.CreateItem(ctx, shopManager("S1"), usecase.InventoryItemInput{
			Name: "Luna", Species: "cat", Price: 300, StoreID: "OTHER",
		})
		require.NoError(t, err)
		assert.Equal(t, "S1", item.StoreID)
		assert.Equal(t, "PET-20250310-0007", item.PetCode)
		assert.Equal(t, entity.InventoryInStock, item.Status)
	})

	t.Run("manager without store", func(t *testing.T) {
		fx := createTestPetShopService(t)

		_, err := fx.service.CreateItem(ctx, shopManager(""), usecase.InventoryItemInput{Name: "Luna", Species: "cat", Price: 300})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("discount above price", func(t *testing.T) {
		fx := createTestPetShopService(t)

		_, err := fx.service.CreateItem(ctx, shopManager("S1"), usecase.InventoryItemInput{Name: "Luna", Species: "cat", Price: 300, DiscountPrice: 400})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPetShopService_GetStoreItem_OtherStore(t *testing.T) {
	fx := createTestPetShopService(t)
	ctx := context.Background()
	item := &entity.ShopInventoryItem{ID: uuid.New(), StoreID: "S2"}
	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

	_, err := fx.service.GetStoreItem(ctx, shopManager("S1"), item.ID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestPetShopService_CreateReservation(t *testing.T) {
	ctx := context.Background()
	buyer := testActor(entity.RolePublicUser)
	buyer.Email = "buyer@example.com"

	t.Run("reserves in-stock item", func(t *testing.T) {
		fx := createTestPetShopService(t)
		item := &entity.ShopInventoryItem{ID: uuid.New(), StoreID: "S1", Status: entity.InventoryInStock}
		fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
		fx.seqRepo.EXPECT().Next(ctx, entity.SequenceKey(entity.PrefixReservation, fixedNow)).Return(int64(1), nil)
		fx.itemRepo.EXPECT().Update(ctx, item).Return(nil)
		fx.reservationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PetReservation")).Return(nil)

		r, err := fx.service.CreateReservation(ctx, buyer, usecase.ReservationInput{ItemID: item.ID})
		require.NoError(t, err)
		assert.Equal(t, "RES-20250310-0001", r.ReservationCode)
		assert.Equal(t, "S1", r.StoreID)
		assert.Equal(t, "buyer@example.com", r.ContactInfo.Email)
		assert.Equal(t, entity.InventoryReserved, item.Status)
	})

	t.Run("item already reserved", func(t *testing.T) {
		fx := createTestPetShopService(t)
		item := &entity.ShopInventoryItem{ID: uuid.New(), Status: entity.InventoryReserved}
		fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

		_, err := fx.service.CreateReservation(ctx, buyer, usecase.ReservationInput{ItemID: item.ID})
		assert.ErrorIs(t, err, domainerrors.ErrItemNotAvailable)
	})
}

func TestPetShopService_CancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("approved reservation restocks item", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		r.Status = entity.ReservationApproved
		fx.expectLoad(r, item)
		fx.reservationRepo.EXPECT().Update(ctx, r).Return(nil)
		fx.itemRepo.EXPECT().Update(ctx, item).Return(nil)

		cancelled, err := fx.service.CancelReservation(ctx, &usecase.Actor{UserID: r.UserID}, r.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ReservationCancelled, cancelled.Status)
		assert.Equal(t, entity.InventoryInStock, item.Status)
	})

	t.Run("paid reservation cannot be cancelled", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		r.Status = entity.ReservationPaid
		fx.expectLoad(r, item)

		_, err := fx.service.CancelReservation(ctx, &usecase.Actor{UserID: r.UserID}, r.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestPetShopService_RecordPayment_DefaultsToEffectivePrice(t *testing.T) {
	fx := createTestPetShopService(t)
	ctx := context.Background()
	r, item := readyReservation("S1")
	r.Status = entity.ReservationApproved
	item.DiscountPrice = 450
	fx.expectLoad(r, item)
	fx.reservationRepo.EXPECT().Update(ctx, r).Return(nil)

	paid, err := fx.service.RecordPayment(ctx, shopManager("S1"), r.ID, usecase.PaymentInput{Method: "upi", Reference: "UPI-9"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationPaid, paid.Status)
	assert.Equal(t, 450.0, paid.Payment.Amount)
}

func TestPetShopService_ScheduleHandover(t *testing.T) {
	ctx := context.Background()

	t.Run("appends otp and trims history", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		r.Status = entity.ReservationPaid
		r.Handover.OTPHistory = nil
		for i := range 10 {
			r.Handover.OTPHistory = append(r.Handover.OTPHistory, entity.HandoverOTP{OTP: fmt.Sprintf("%06d", i), Used: true})
		}
		fx.expectLoad(r, item)
		fx.reservationRepo.EXPECT().Update(ctx, r).Return(nil)
		fx.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
				return e.Kind == entity.NotificationHandoverOTP && len(e.Data["otp"]) == 6
			})).
			Return(nil)

		scheduled, err := fx.service.ScheduleHandover(ctx, shopManager("S1"), r.ID, usecase.HandoverInput{
			ScheduledAt: fixedNow.Add(48 * time.Hour),
			Location:    "Main store",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.ReservationReadyPickup, scheduled.Status)
		require.Len(t, scheduled.Handover.OTPHistory, 10)
		latest := scheduled.Handover.LatestUnusedOTP()
		require.NotNil(t, latest)
		assert.Equal(t, fixedNow.Add(24*time.Hour), latest.ExpiresAt)
		assert.Equal(t, "000001", scheduled.Handover.OTPHistory[0].OTP)
	})

	t.Run("pending reservation", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		r.Status = entity.ReservationPending
		fx.expectLoad(r, item)

		_, err := fx.service.ScheduleHandover(ctx, shopManager("S1"), r.ID, usecase.HandoverInput{ScheduledAt: fixedNow, Location: "Main"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("other store", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S2")
		fx.expectLoad(r, item)

		_, err := fx.service.ScheduleHandover(ctx, shopManager("S1"), r.ID, usecase.HandoverInput{ScheduledAt: fixedNow, Location: "Main"})
		assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
	})
}

func TestPetShopService_CompleteHandover(t *testing.T) {
	ctx := context.Background()

	t.Run("latest otp completes sale", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		fx.expectLoad(r, item)
		fx.registry.EXPECT().FindByCode(ctx, item.PetCode).Return(nil, repository.ErrNotFound)
		var registered *entity.Pet
		fx.registry.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Pet")).
			Run(func(_ context.Context, p *entity.Pet) { registered = p }).
			Return(nil)
		fx.reservationRepo.EXPECT().Update(ctx, r).Return(nil)
		fx.itemRepo.EXPECT().Update(ctx, item).Return(nil)
		fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)

		done, err := fx.service.CompleteHandover(ctx, shopManager("S1"), r.ID, " 222222 ")
		require.NoError(t, err)
		assert.Equal(t, entity.ReservationAtOwner, done.Status)
		assert.True(t, done.Handover.OTPHistory[1].Used)
		assert.Equal(t, entity.InventorySold, item.Status)
		assert.Equal(t, r.UserID, *item.BuyerID)

		require.NotNil(t, registered)
		assert.Equal(t, item.PetCode, registered.PetCode)
		assert.Equal(t, r.UserID, registered.OwnerID)
		assert.Equal(t, "cat", registered.Species)
		assert.Equal(t, entity.PetSourcePetShop, registered.Source)
		assert.Equal(t, fixedNow.AddDate(0, -3, 0), *registered.DateOfBirth)
		require.Len(t, registered.OwnershipHistory, 1)
		assert.InDelta(t, 500, registered.OwnershipHistory[0].TransferPrice, 0.001)
	})

	t.Run("resold pet keeps its registry entry", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		previousOwner := uuid.New()
		existing := &entity.Pet{ID: uuid.New(), PetCode: item.PetCode, Name: "Coco", Species: "cat", OwnerID: previousOwner}
		existing.TransferTo(previousOwner, entity.PetSourcePetShop, 450, "first sale", fixedNow.AddDate(0, -1, 0))
		fx.expectLoad(r, item)
		fx.registry.EXPECT().FindByCode(ctx, item.PetCode).Return(existing, nil)
		fx.registry.EXPECT().Update(ctx, existing).Return(nil)
		fx.reservationRepo.EXPECT().Update(ctx, r).Return(nil)
		fx.itemRepo.EXPECT().Update(ctx, item).Return(nil)
		fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)

		_, err := fx.service.CompleteHandover(ctx, shopManager("S1"), r.ID, "222222")
		require.NoError(t, err)
		assert.Equal(t, r.UserID, existing.OwnerID)
		require.Len(t, existing.OwnershipHistory, 2)
		assert.Equal(t, fixedNow, *existing.OwnershipHistory[0].EndedAt)
		assert.Equal(t, &previousOwner, existing.OwnershipHistory[1].PreviousOwnerID)
	})

	t.Run("older otp rejected", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		fx.expectLoad(r, item)

		_, err := fx.service.CompleteHandover(ctx, shopManager("S1"), r.ID, "111111")
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})

	t.Run("expired otp", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		r.Handover.OTPHistory[1].ExpiresAt = fixedNow
		fx.expectLoad(r, item)

		_, err := fx.service.CompleteHandover(ctx, shopManager("S1"), r.ID, "222222")
		assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
	})

	t.Run("no unused otp", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		for idx := range r.Handover.OTPHistory {
			r.Handover.OTPHistory[idx].Used = true
		}
		fx.expectLoad(r, item)

		_, err := fx.service.CompleteHandover(ctx, shopManager("S1"), r.ID, "222222")
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})
}

func TestPetShopService_HandoverQR(t *testing.T) {
	ctx := context.Background()

	t.Run("buyer", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		fx.expectLoad(r, item)
		fx.qrCode.EXPECT().Encode(r.ReservationCode).Return([]byte("png"), nil)

		png, err := fx.service.HandoverQR(ctx, &usecase.Actor{UserID: r.UserID, Role: entity.RolePublicUser}, r.ID)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("stranger", func(t *testing.T) {
		fx := createTestPetShopService(t)
		r, item := readyReservation("S1")
		fx.expectLoad(r, item)

		_, err := fx.service.HandoverQR(ctx, testActor(entity.RolePublicUser), r.ID)
		assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
	})
}
