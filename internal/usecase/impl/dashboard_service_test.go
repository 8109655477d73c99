package impl

import (
	"context"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	mockRepo "petwelfare/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardFixtures struct {
	service     *dashboardService
	userRepo    *mockRepo.MockUserRepository
	petRepo     *mockRepo.MockAdoptionPetRepository
	invRepo     *mockRepo.MockInventoryRepository
	apptRepo    *mockRepo.MockAppointmentRepository
	medRepo     *mockRepo.MockMedicineRepository
	phOrderRepo *mockRepo.MockPharmacyOrderRepository
	rescueRepo  *mockRepo.MockRescueRepository
	shelterRepo *mockRepo.MockShelterRepository
	careRepo    *mockRepo.MockCareBookingRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestDashboardService(t *testing.T) dashboardFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	fx := dashboardFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		petRepo:     mockRepo.NewMockAdoptionPetRepository(t),
		invRepo:     mockRepo.NewMockInventoryRepository(t),
		apptRepo:    mockRepo.NewMockAppointmentRepository(t),
		medRepo:     mockRepo.NewMockMedicineRepository(t),
		phOrderRepo: mockRepo.NewMockPharmacyOrderRepository(t),
		rescueRepo:  mockRepo.NewMockRescueRepository(t),
		shelterRepo: mockRepo.NewMockShelterRepository(t),
		careRepo:    mockRepo.NewMockCareBookingRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
	}
	fx.service = NewDashboardService(DashboardServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	}).(*dashboardService)
	fx.service.now = func() time.Time { return fixedNow }

	factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	factory.EXPECT().AdoptionPetRepo().Return(fx.petRepo).Maybe()
	factory.EXPECT().InventoryRepo().Return(fx.invRepo).Maybe()
	factory.EXPECT().AppointmentRepo().Return(fx.apptRepo).Maybe()
	factory.EXPECT().MedicineRepo().Return(fx.medRepo).Maybe()
	factory.EXPECT().PharmacyOrderRepo().Return(fx.phOrderRepo).Maybe()
	factory.EXPECT().RescueRepo().Return(fx.rescueRepo).Maybe()
	factory.EXPECT().ShelterRepo().Return(fx.shelterRepo).Maybe()
	factory.EXPECT().CareBookingRepo().Return(fx.careRepo).Maybe()
	factory.EXPECT().ProductRepo().Return(fx.productRepo).Maybe()
	factory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()
	expectTx(txManager, factory)

	return fx
}

func (fx dashboardFixtures) expectCounts() {
	fx.userRepo.EXPECT().List(mock.Anything, entity.UserFilter{}, mock.Anything).Return(nil, 42, nil).Maybe()
	fx.petRepo.EXPECT().Count(mock.Anything, entity.AdoptionPetFilter{OnlyActive: true}).Return(10, nil).Maybe()
	fx.petRepo.EXPECT().Count(mock.Anything, entity.AdoptionPetFilter{OnlyActive: true, Status: entity.PetAvailable}).Return(7, nil).Maybe()
	fx.invRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(3, nil).Maybe()
	fx.apptRepo.EXPECT().Count(mock.Anything, entity.AppointmentFilter{}).Return(20, nil).Maybe()
	fx.apptRepo.EXPECT().Count(mock.Anything, entity.AppointmentFilter{Status: entity.AppointmentPendingApproval}).Return(2, nil).Maybe()
	fx.medRepo.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, 15, nil).Maybe()
	fx.medRepo.EXPECT().ListLowStock(mock.Anything).Return([]*entity.Medicine{{}, {}}, nil).Maybe()
	fx.phOrderRepo.EXPECT().List(mock.Anything, entity.PharmacyOrderPending, mock.Anything).Return(nil, 4, nil).Maybe()
	fx.rescueRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(5, nil).Maybe()
	fx.shelterRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(6, nil).Maybe()
	fx.careRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(8, nil).Maybe()
	fx.productRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(30, nil).Maybe()
	fx.orderRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(9, nil).Maybe()
}

func TestDashboardService_Stats(t *testing.T) {
	fx := createTestDashboardService(t)
	fx.expectCounts()

	stats, err := fx.service.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, "2025-03-10T10:00:00Z", stats.GeneratedAt)
	assert.Len(t, stats.Modules, len(entity.ServiceModules))
	assert.Equal(t, map[string]int64{"pets": 10, "available": 7}, stats.Modules["adoption"])
	assert.Equal(t, map[string]int64{"medicines": 15, "lowStock": 2, "pendingOrders": 4}, stats.Modules["pharmacy"])
	assert.Equal(t, int64(2), stats.Modules["veterinary"]["pendingApproval"])
	assert.Equal(t, int64(30), stats.Modules["ecommerce"]["products"])
}

func TestDashboardService_Stats_FailureAbortsDashboard(t *testing.T) {
	fx := createTestDashboardService(t)
	fx.rescueRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(0, assert.AnError).Maybe()
	fx.expectCounts()

	_, err := fx.service.Stats(context.Background())

	require.Error(t, err)
	assert.True(t, domainerrors.IsAppError(err))
}
