package impl

import (
	"context"
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

type careServiceFixtures struct {
	service     *careService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	serviceRepo *mockRepo.MockCareServiceRepository
	bookingRepo *mockRepo.MockCareBookingRepository
	userRepo    *mockRepo.MockUserRepository
	petRepo     *mockRepo.MockPetRepository
	seqRepo     *mockRepo.MockSequenceRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestCareService(t *testing.T) careServiceFixtures {
	fx := careServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		serviceRepo: mockRepo.NewMockCareServiceRepository(t),
		bookingRepo: mockRepo.NewMockCareBookingRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		petRepo:     mockRepo.NewMockPetRepository(t),
		seqRepo:     mockRepo.NewMockSequenceRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewCareService(CareServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*careService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().CareServiceRepo().Return(fx.serviceRepo).Maybe()
	fx.factory.EXPECT().CareBookingRepo().Return(fx.bookingRepo).Maybe()
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().PetRepo().Return(fx.petRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func careManager(storeID string) *usecase.Actor {
	actor := testActor("temporary-care_manager")
	actor.Module = entity.ModuleTemporaryCare
	actor.StoreID = storeID

	return actor
}

func TestCareService_CreateBooking(t *testing.T) {
	start := fixedNow.AddDate(0, 0, 5)
	end := start.AddDate(0, 0, 3)

	t.Run("priced from catalogue service", func(t *testing.T) {
		fx := createTestCareService(t)
		owner := testActor("public_user")
		svc := &entity.CareService{
			ID: uuid.New(), Category: entity.CareBoarding, BasePrice: 500, PriceUnit: entity.PricePerDay,
			AdvancePercentage: 50, StoreID: "store-1", IsActive: true,
			AdditionalCharges: []entity.AdditionalCharge{
				{Name: "grooming", Amount: 10, IsPercentage: true},
				{Name: "transport", Amount: 100},
			},
		}

		pet := ownedPet(fx.petRepo, owner)

		fx.serviceRepo.EXPECT().FindByID(mock.Anything, svc.ID).Return(svc, nil)
		fx.bookingRepo.EXPECT().FindOverlapping(mock.Anything, pet.ID, start, end, entity.CareConflictStatuses).Return(nil, nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, "TCB-20250310").Return(int64(3), nil)
		fx.bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.CareBooking")).Return(nil)

		booking, err := fx.service.CreateBooking(context.Background(), owner, usecase.CareBookingInput{
			PetID:     pet.ID,
			ServiceID: &svc.ID,
			StartDate: start,
			EndDate:   end,
		})

		require.NoError(t, err)
		assert.Equal(t, "TCB-20250310-0003", booking.BookingNumber)
		assert.Equal(t, "Milo", booking.PetName)
		assert.Equal(t, entity.CarePendingPayment, booking.Status)
		assert.Equal(t, entity.CareBoarding, booking.ServiceCategory)
		assert.Equal(t, "store-1", booking.StoreID)
		assert.Equal(t, 3, booking.DurationInDays())
		assert.Equal(t, entity.LocationFacility, booking.Location.Type)
		assert.InDelta(t, 1500, booking.Pricing.BaseAmount, 0.001)
		assert.InDelta(t, 250, booking.Pricing.AdditionalAmount, 0.001)
		assert.InDelta(t, 315, booking.Pricing.Tax, 0.001)
		assert.InDelta(t, 2065, booking.Pricing.TotalAmount, 0.001)
		assert.InDelta(t, 1032.5, booking.Pricing.AdvanceAmount, 0.001)
		assert.InDelta(t, 1032.5, booking.Pricing.RemainingAmount, 0.001)
	})

	t.Run("caller supplied base amount", func(t *testing.T) {
		fx := createTestCareService(t)
		owner := testActor("public_user")
		pet := ownedPet(fx.petRepo, owner)

		fx.bookingRepo.EXPECT().FindOverlapping(mock.Anything, mock.Anything, start, end, mock.Anything).Return(nil, nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, mock.Anything).Return(int64(1), nil)
		fx.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		booking, err := fx.service.CreateBooking(context.Background(), owner, usecase.CareBookingInput{
			PetID:           pet.ID,
			ServiceCategory: entity.CareDaycare,
			StartDate:       start,
			EndDate:         end,
			BaseAmount:      1000,
		})

		require.NoError(t, err)
		assert.InDelta(t, 1180, booking.Pricing.TotalAmount, 0.001)
		assert.InDelta(t, 590, booking.Pricing.AdvanceAmount, 0.001)
	})

	t.Run("pet already booked", func(t *testing.T) {
		fx := createTestCareService(t)
		owner := testActor("public_user")
		pet := ownedPet(fx.petRepo, owner)
		other := &entity.CareBooking{ID: uuid.New(), BookingNumber: "TCB-20250301-0001", StartDate: start.AddDate(0, 0, 1), EndDate: end.AddDate(0, 0, 2)}

		fx.bookingRepo.EXPECT().FindOverlapping(mock.Anything, mock.Anything, start, end, mock.Anything).Return([]*entity.CareBooking{other}, nil)

		_, err := fx.service.CreateBooking(context.Background(), owner, usecase.CareBookingInput{
			PetID:           pet.ID,
			ServiceCategory: entity.CareBoarding,
			StartDate:       start,
			EndDate:         end,
			BaseAmount:      1000,
		})

		require.ErrorIs(t, err, domainerrors.ErrBookingConflict)
	})

	t.Run("in-home needs an address", func(t *testing.T) {
		fx := createTestCareService(t)
		owner := testActor("public_user")
		pet := ownedPet(fx.petRepo, owner)

		_, err := fx.service.CreateBooking(context.Background(), owner, usecase.CareBookingInput{
			PetID:           pet.ID,
			ServiceCategory: entity.CareInHome,
			StartDate:       start,
			EndDate:         end,
			BaseAmount:      1000,
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("pet of another owner", func(t *testing.T) {
		fx := createTestCareService(t)
		pet := ownedPet(fx.petRepo, testActor("public_user"))

		_, err := fx.service.CreateBooking(context.Background(), testActor("public_user"), usecase.CareBookingInput{
			PetID:           pet.ID,
			ServiceCategory: entity.CareBoarding,
			StartDate:       start,
			EndDate:         end,
			BaseAmount:      1000,
		})

		require.ErrorIs(t, err, domainerrors.ErrOwnedPetNotFound)
	})

	t.Run("unregistered pet", func(t *testing.T) {
		fx := createTestCareService(t)
		petID := uuid.New()

		fx.petRepo.EXPECT().FindByID(mock.Anything, petID).Return(nil, repository.ErrNotFound)

		_, err := fx.service.CreateBooking(context.Background(), testActor("public_user"), usecase.CareBookingInput{
			PetID:           petID,
			ServiceCategory: entity.CareBoarding,
			StartDate:       start,
			EndDate:         end,
			BaseAmount:      1000,
		})

		require.ErrorIs(t, err, domainerrors.ErrOwnedPetNotFound)
	})

	t.Run("end before start", func(t *testing.T) {
		fx := createTestCareService(t)

		_, err := fx.service.CreateBooking(context.Background(), testActor("public_user"), usecase.CareBookingInput{
			PetID: uuid.New(), StartDate: end, EndDate: start,
		})

		require.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	})
}

func TestCareService_CancelBooking(t *testing.T) {
	owner := testActor("public_user")

	tests := []struct {
		name       string
		status     entity.CareBookingStatus
		advance    entity.PaymentStatus
		startIn    time.Duration
		wantErr    error
		wantStatus entity.CareBookingStatus
		wantRefund float64
	}{
		{
			name: "paid, more than 48 hours ahead", status: entity.CareConfirmed, advance: entity.PaymentCompleted,
			startIn: 72 * time.Hour, wantStatus: entity.CareRefunded, wantRefund: 500,
		},
		{
			name: "paid, between 24 and 48 hours", status: entity.CareConfirmed, advance: entity.PaymentCompleted,
			startIn: 30 * time.Hour, wantStatus: entity.CareRefunded, wantRefund: 250,
		},
		{
			name: "unpaid", status: entity.CarePendingPayment, advance: entity.PaymentPending,
			startIn: 72 * time.Hour, wantStatus: entity.CareCancelled,
		},
		{
			name: "inside 24 hours", status: entity.CareConfirmed, advance: entity.PaymentCompleted,
			startIn: 10 * time.Hour, wantErr: domainerrors.ErrCancelWindow,
		},
		{
			name: "already started", status: entity.CareInProgress, advance: entity.PaymentCompleted,
			startIn: 72 * time.Hour, wantErr: domainerrors.ErrInvalidStatus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCareService(t)
			booking := &entity.CareBooking{
				ID:            uuid.New(),
				UserID:        owner.UserID,
				Status:        tt.status,
				StartDate:     fixedNow.Add(tt.startIn),
				Pricing:       entity.CarePricing{AdvanceAmount: 500},
				PaymentStatus: entity.CarePaymentStatus{Advance: tt.advance},
			}

			fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)
			if tt.wantErr == nil {
				fx.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)
			}

			cancelled, err := fx.service.CancelBooking(context.Background(), owner, booking.ID, "plans changed")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, cancelled.Status)
			assert.InDelta(t, tt.wantRefund, cancelled.Cancellation.RefundAmount, 0.001)
		})
	}
}

func TestCareService_PayAdvance(t *testing.T) {
	fx := createTestCareService(t)
	owner := testActor("public_user")
	booking := &entity.CareBooking{ID: uuid.New(), UserID: owner.UserID, PetID: uuid.New(), Status: entity.CarePendingPayment}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)
	fx.bookingRepo.EXPECT().FindOverlapping(mock.Anything, booking.PetID, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	fx.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)

	paid, err := fx.service.PayAdvance(context.Background(), owner, booking.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CareConfirmed, paid.Status)
	assert.Equal(t, entity.PaymentCompleted, paid.PaymentStatus.Advance)
}

func TestCareService_DropOffHandover(t *testing.T) {
	t.Run("generate then verify", func(t *testing.T) {
		fx := createTestCareService(t)
		manager := careManager("store-1")
		booking := &entity.CareBooking{ID: uuid.New(), UserID: uuid.New(), StoreID: "store-1", Status: entity.CareConfirmed}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)
		fx.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)
		fx.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(ev *service.NotificationEvent) bool {
				return ev.Kind == entity.NotificationHandoverOTP && ev.Data["otp"] == booking.Handover.DropOff.OTP
			})).
			Return(nil).Once()

		_, err := fx.service.GenerateDropOffOTP(context.Background(), manager, booking.ID)
		require.NoError(t, err)
		require.Len(t, booking.Handover.DropOff.OTP, 6)
		assert.Equal(t, fixedNow.Add(24*time.Hour), *booking.Handover.DropOff.ExpiresAt)

		fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil).Once()

		verified, err := fx.service.VerifyDropOff(context.Background(), manager, booking.ID, booking.Handover.DropOff.OTP)

		require.NoError(t, err)
		assert.Equal(t, entity.CareInProgress, verified.Status)
		assert.True(t, verified.Handover.DropOff.Verified)
	})

	t.Run("wrong code", func(t *testing.T) {
		fx := createTestCareService(t)
		expires := fixedNow.Add(time.Hour)
		booking := &entity.CareBooking{
			ID: uuid.New(), Status: entity.CareConfirmed,
			Handover: entity.CareHandover{DropOff: entity.CareOTP{OTP: "123456", ExpiresAt: &expires}},
		}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)

		_, err := fx.service.VerifyDropOff(context.Background(), careManager(""), booking.ID, "654321")

		require.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})

	t.Run("expired code", func(t *testing.T) {
		fx := createTestCareService(t)
		expires := fixedNow.Add(-time.Minute)
		booking := &entity.CareBooking{
			ID: uuid.New(), Status: entity.CareConfirmed,
			Handover: entity.CareHandover{DropOff: entity.CareOTP{OTP: "123456", ExpiresAt: &expires}},
		}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)

		_, err := fx.service.VerifyDropOff(context.Background(), careManager(""), booking.ID, "123456")

		require.ErrorIs(t, err, domainerrors.ErrOTPExpired)
	})

	t.Run("other store", func(t *testing.T) {
		fx := createTestCareService(t)
		booking := &entity.CareBooking{ID: uuid.New(), StoreID: "store-2", Status: entity.CareConfirmed}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)

		_, err := fx.service.GenerateDropOffOTP(context.Background(), careManager("store-1"), booking.ID)

		require.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	})
}

func TestCareService_VerifyPickup_CompletesBooking(t *testing.T) {
	fx := createTestCareService(t)
	expires := fixedNow.Add(time.Hour)
	booking := &entity.CareBooking{
		ID: uuid.New(), UserID: uuid.New(), Status: entity.CareInProgress,
		PaymentStatus: entity.CarePaymentStatus{Advance: entity.PaymentCompleted, Final: entity.PaymentPending},
		Handover:      entity.CareHandover{Pickup: entity.CareOTP{OTP: "424242", ExpiresAt: &expires}},
	}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)
	fx.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)

	done, err := fx.service.VerifyPickup(context.Background(), careManager(""), booking.ID, "424242")

	require.NoError(t, err)
	assert.Equal(t, entity.CareCompleted, done.Status)
	assert.Equal(t, entity.PaymentCompleted, done.PaymentStatus.Final)
}

func TestCareService_LogActivity(t *testing.T) {
	caregiver := testActor("temporary-care_worker")

	t.Run("assigned caregiver", func(t *testing.T) {
		fx := createTestCareService(t)
		booking := &entity.CareBooking{ID: uuid.New(), Status: entity.CareInProgress, AssignedCaregivers: []uuid.UUID{caregiver.UserID}}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)
		fx.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)

		updated, err := fx.service.LogActivity(context.Background(), caregiver, booking.ID, usecase.ActivityInput{Type: "walk", Description: "30 minutes in the park"})

		require.NoError(t, err)
		require.Len(t, updated.ActivityLog, 1)
		assert.Equal(t, caregiver.UserID, updated.ActivityLog[0].LoggedBy)
	})

	t.Run("caregiver not on the booking", func(t *testing.T) {
		fx := createTestCareService(t)
		booking := &entity.CareBooking{ID: uuid.New(), Status: entity.CareInProgress}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)

		_, err := fx.service.LogActivity(context.Background(), caregiver, booking.ID, usecase.ActivityInput{Type: "walk", Description: "x"})

		require.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	})
}

func TestCareService_ReviewBooking(t *testing.T) {
	owner := testActor("public_user")

	t.Run("completed", func(t *testing.T) {
		fx := createTestCareService(t)
		booking := &entity.CareBooking{ID: uuid.New(), UserID: owner.UserID, Status: entity.CareCompleted}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)
		fx.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)

		reviewed, err := fx.service.ReviewBooking(context.Background(), owner, booking.ID, 5, "lovely")

		require.NoError(t, err)
		assert.Equal(t, 5, reviewed.Review.Rating)
	})

	t.Run("not completed", func(t *testing.T) {
		fx := createTestCareService(t)
		booking := &entity.CareBooking{ID: uuid.New(), UserID: owner.UserID, Status: entity.CareInProgress}

		fx.bookingRepo.EXPECT().FindByID(mock.Anything, booking.ID).Return(booking, nil)

		_, err := fx.service.ReviewBooking(context.Background(), owner, booking.ID, 4, "")

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("rating out of range", func(t *testing.T) {
		fx := createTestCareService(t)

		_, err := fx.service.ReviewBooking(context.Background(), owner, uuid.New(), 6, "")

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
