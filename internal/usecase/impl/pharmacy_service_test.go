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

type pharmacyServiceFixtures struct {
	service          *pharmacyService
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	medicineRepo     *mockRepo.MockMedicineRepository
	prescriptionRepo *mockRepo.MockPrescriptionRepository
	orderRepo        *mockRepo.MockPharmacyOrderRepository
	userRepo         *mockRepo.MockUserRepository
	seqRepo          *mockRepo.MockSequenceRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestPharmacyService(t *testing.T) pharmacyServiceFixtures {
	fx := pharmacyServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		medicineRepo:     mockRepo.NewMockMedicineRepository(t),
		prescriptionRepo: mockRepo.NewMockPrescriptionRepository(t),
		orderRepo:        mockRepo.NewMockPharmacyOrderRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		seqRepo:          mockRepo.NewMockSequenceRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewPharmacyService(PharmacyServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	}).(*pharmacyService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().MedicineRepo().Return(fx.medicineRepo).Maybe()
	fx.factory.EXPECT().PrescriptionRepo().Return(fx.prescriptionRepo).Maybe()
	fx.factory.EXPECT().PharmacyOrderRepo().Return(fx.orderRepo).Maybe()
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func TestPharmacyService_SaveMedicine(t *testing.T) {
	input := usecase.MedicineInput{
		Name:        "Amoxicillin",
		Category:    "antibiotic",
		Price:       12.5,
		BatchNumber: "B-1",
		PetTypes:    []string{"dog", " ", "cat"},
		Stock:       entity.Stock{Current: 40, ReorderLevel: 5},
	}

	t.Run("creates new entry", func(t *testing.T) {
		fx := createTestPharmacyService(t)

		fx.medicineRepo.EXPECT().FindByNameAndBatch(mock.Anything, "Amoxicillin", "B-1").Return(nil, repository.ErrNotFound)
		fx.medicineRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Medicine")).Return(nil)

		medicine, created, err := fx.service.SaveMedicine(context.Background(), testActor("pharmacy_manager"), input)

		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, medicine.IsActive)
		assert.Equal(t, []string{"dog", "cat"}, medicine.PetTypes)
	})

	t.Run("updates existing batch", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		existing := &entity.Medicine{ID: uuid.New(), Name: "Amoxicillin", BatchNumber: "B-1", Stock: entity.Stock{Current: 2}}

		fx.medicineRepo.EXPECT().FindByNameAndBatch(mock.Anything, "Amoxicillin", "B-1").Return(existing, nil)
		fx.medicineRepo.EXPECT().Update(mock.Anything, existing).Return(nil)

		medicine, created, err := fx.service.SaveMedicine(context.Background(), testActor("pharmacy_manager"), input)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing.ID, medicine.ID)
		assert.Equal(t, 40, medicine.Stock.Current)
	})

	t.Run("negative stock", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		bad := input
		bad.Stock.Current = -1

		_, _, err := fx.service.SaveMedicine(context.Background(), testActor("pharmacy_manager"), bad)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPharmacyService_DeleteMedicine_IsSoft(t *testing.T) {
	fx := createTestPharmacyService(t)
	medicine := &entity.Medicine{ID: uuid.New(), IsActive: true}

	fx.medicineRepo.EXPECT().FindByID(mock.Anything, medicine.ID).Return(medicine, nil)
	fx.medicineRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(m *entity.Medicine) bool { return !m.IsActive })).
		Return(nil)

	require.NoError(t, fx.service.DeleteMedicine(context.Background(), testActor("pharmacy_manager"), medicine.ID))
}

func TestPharmacyService_ReviewPrescription(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		reviewer := testActor("pharmacy_manager")
		p := &entity.Prescription{ID: uuid.New(), UserID: uuid.New(), Status: entity.PrescriptionPending}

		fx.prescriptionRepo.EXPECT().FindByID(mock.Anything, p.ID).Return(p, nil)
		fx.prescriptionRepo.EXPECT().Update(mock.Anything, p).Return(nil)
		fx.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(ev *service.NotificationEvent) bool {
				return ev.Kind == entity.NotificationPrescriptionStatus && ev.UserIDs[0] == p.UserID.String()
			})).
			Return(nil)

		reviewed, err := fx.service.ReviewPrescription(context.Background(), reviewer, p.ID, true, "")

		require.NoError(t, err)
		assert.Equal(t, entity.PrescriptionApproved, reviewed.Status)
		assert.Equal(t, reviewer.UserID, *reviewed.ReviewedBy)
	})

	t.Run("reject needs notes", func(t *testing.T) {
		fx := createTestPharmacyService(t)

		_, err := fx.service.ReviewPrescription(context.Background(), testActor("pharmacy_manager"), uuid.New(), false, " ")

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("already reviewed", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		p := &entity.Prescription{ID: uuid.New(), Status: entity.PrescriptionRejected}

		fx.prescriptionRepo.EXPECT().FindByID(mock.Anything, p.ID).Return(p, nil)

		_, err := fx.service.ReviewPrescription(context.Background(), testActor("pharmacy_manager"), p.ID, true, "")

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestPharmacyService_PlaceOrder(t *testing.T) {
	t.Run("prices lines and takes stock", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		buyer := testActor("public_user")
		tablets := &entity.Medicine{ID: uuid.New(), Name: "Dewormer", Price: 7.25, IsActive: true, Stock: entity.Stock{Current: 50, ReorderLevel: 5}}

		fx.medicineRepo.EXPECT().FindByID(mock.Anything, tablets.ID).Return(tablets, nil)
		fx.medicineRepo.EXPECT().DecrementStock(mock.Anything, tablets.ID, 3).Return(nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, "PHO-20250310").Return(int64(12), nil)
		fx.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.PharmacyOrder")).Return(nil)

		order, err := fx.service.PlaceOrder(context.Background(), buyer, usecase.PharmacyOrderInput{
			Items: []usecase.PharmacyOrderLine{{MedicineID: tablets.ID, Quantity: 3}},
		})

		require.NoError(t, err)
		assert.Equal(t, "PHO-20250310-0012", order.OrderNumber)
		assert.InDelta(t, 21.75, order.Total, 0.001)
		assert.Equal(t, entity.PharmacyOrderPending, order.Status)
		assert.Nil(t, order.PrescriptionID)
	})

	t.Run("prescription required", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		buyer := testActor("public_user")
		rx := &entity.Medicine{ID: uuid.New(), Name: "Prednisolone", IsActive: true, RequiresPrescription: true}

		fx.medicineRepo.EXPECT().FindByID(mock.Anything, rx.ID).Return(rx, nil)
		fx.prescriptionRepo.EXPECT().FindApproved(mock.Anything, buyer.UserID, rx.ID).Return(nil, repository.ErrNotFound)

		_, err := fx.service.PlaceOrder(context.Background(), buyer, usecase.PharmacyOrderInput{
			Items: []usecase.PharmacyOrderLine{{MedicineID: rx.ID, Quantity: 1}},
		})

		require.ErrorIs(t, err, domainerrors.ErrPrescriptionRequired)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		med := &entity.Medicine{ID: uuid.New(), Name: "Dewormer", IsActive: true}

		fx.medicineRepo.EXPECT().FindByID(mock.Anything, med.ID).Return(med, nil)
		fx.medicineRepo.EXPECT().DecrementStock(mock.Anything, med.ID, 9).Return(repository.ErrInsufficientStock)

		_, err := fx.service.PlaceOrder(context.Background(), testActor("public_user"), usecase.PharmacyOrderInput{
			Items: []usecase.PharmacyOrderLine{{MedicineID: med.ID, Quantity: 9}},
		})

		require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
		assert.Equal(t, 400, mustAppError(t, err).HTTPCode())
	})

	t.Run("low stock alerts pharmacy staff", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		staff := &entity.User{ID: uuid.New()}
		med := &entity.Medicine{ID: uuid.New(), Name: "Dewormer", Price: 1, IsActive: true, Stock: entity.Stock{Current: 6, ReorderLevel: 5}}

		fx.medicineRepo.EXPECT().FindByID(mock.Anything, med.ID).Return(med, nil)
		fx.medicineRepo.EXPECT().DecrementStock(mock.Anything, med.ID, 2).Return(nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, mock.Anything).Return(int64(1), nil)
		fx.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		fx.userRepo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f entity.UserFilter) bool { return f.Module == entity.ModulePharmacy }), mock.Anything).
			Return([]*entity.User{staff}, int64(1), nil)
		fx.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(ev *service.NotificationEvent) bool {
				return ev.Kind == entity.NotificationLowStock && ev.UserIDs[0] == staff.ID.String()
			})).
			Return(nil)

		_, err := fx.service.PlaceOrder(context.Background(), testActor("public_user"), usecase.PharmacyOrderInput{
			Items: []usecase.PharmacyOrderLine{{MedicineID: med.ID, Quantity: 2}},
		})

		require.NoError(t, err)
	})

	t.Run("empty order", func(t *testing.T) {
		fx := createTestPharmacyService(t)

		_, err := fx.service.PlaceOrder(context.Background(), testActor("public_user"), usecase.PharmacyOrderInput{})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPharmacyService_UpdateOrderStatus(t *testing.T) {
	t.Run("cancel restocks", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		med := &entity.Medicine{ID: uuid.New(), Stock: entity.Stock{Current: 1}}
		order := &entity.PharmacyOrder{
			ID: uuid.New(), UserID: uuid.New(), Status: entity.PharmacyOrderConfirmed,
			Items: []entity.PharmacyOrderItem{{MedicineID: med.ID, Quantity: 4}},
		}

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		fx.medicineRepo.EXPECT().FindByID(mock.Anything, med.ID).Return(med, nil)
		fx.medicineRepo.EXPECT().Update(mock.Anything, med).Return(nil)
		fx.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil)
		fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)

		updated, err := fx.service.UpdateOrderStatus(context.Background(), testActor("pharmacy_manager"), order.ID, entity.PharmacyOrderCancelled)

		require.NoError(t, err)
		assert.Equal(t, entity.PharmacyOrderCancelled, updated.Status)
		assert.Equal(t, 5, med.Stock.Current)
	})

	t.Run("cannot skip dispatch", func(t *testing.T) {
		fx := createTestPharmacyService(t)
		order := &entity.PharmacyOrder{ID: uuid.New(), Status: entity.PharmacyOrderPending}

		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(context.Background(), testActor("pharmacy_manager"), order.ID, entity.PharmacyOrderDelivered)

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}
