package impl

import (
	"context"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/service"
	mockRepo "petwelfare/internal/mocks/repository"
	mockSvc "petwelfare/internal/mocks/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rescueServiceFixtures struct {
	service    *rescueService
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	rescueRepo *mockRepo.MockRescueRepository
	userRepo   *mockRepo.MockUserRepository
	seqRepo    *mockRepo.MockSequenceRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestRescueService(t *testing.T) rescueServiceFixtures {
	fx := rescueServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		rescueRepo: mockRepo.NewMockRescueRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		seqRepo:    mockRepo.NewMockSequenceRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewRescueService(RescueServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	}).(*rescueService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().RescueRepo().Return(fx.rescueRepo).Maybe()
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func TestRescueService_CreateReport(t *testing.T) {
	t.Run("defaults urgency", func(t *testing.T) {
		fx := createTestRescueService(t)
		reporter := testActor("public_user")

		fx.seqRepo.EXPECT().Next(mock.Anything, "RSC-20250310").Return(int64(2), nil)
		fx.rescueRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.RescueReport")).Return(nil)

		report, err := fx.service.CreateReport(context.Background(), reporter, usecase.RescueReportInput{
			Species:     "dog",
			Description: "limping near the bus stop",
			Location:    entity.GeoPoint{Latitude: 12.97, Longitude: 77.59},
		})

		require.NoError(t, err)
		assert.Equal(t, "RSC-20250310-0002", report.ReportNumber)
		assert.Equal(t, entity.UrgencyMedium, report.Urgency)
		assert.Equal(t, entity.RescueReported, report.Status)
		assert.Equal(t, reporter.UserID, report.ReporterID)
	})

	tests := []struct {
		name  string
		input usecase.RescueReportInput
	}{
		{name: "missing species", input: usecase.RescueReportInput{Description: "x"}},
		{name: "unknown urgency", input: usecase.RescueReportInput{Species: "cat", Description: "x", Urgency: "extreme"}},
		{name: "latitude out of range", input: usecase.RescueReportInput{Species: "cat", Description: "x", Location: entity.GeoPoint{Latitude: 91}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRescueService(t)

			_, err := fx.service.CreateReport(context.Background(), testActor("public_user"), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRescueService_Nearby(t *testing.T) {
	fx := createTestRescueService(t)
	// roughly 1.1 km, 3.3 km and 22 km north of the search point
	near := &entity.RescueReport{ID: uuid.New(), Location: entity.GeoPoint{Latitude: 12.98, Longitude: 77.59}}
	mid := &entity.RescueReport{ID: uuid.New(), Location: entity.GeoPoint{Latitude: 13.00, Longitude: 77.59}}
	far := &entity.RescueReport{ID: uuid.New(), Location: entity.GeoPoint{Latitude: 13.17, Longitude: 77.59}}

	fx.rescueRepo.EXPECT().
		ListWithin(mock.Anything, mock.MatchedBy(func(box entity.BoundingBox) bool {
			return box.MinLat < 12.97 && box.MaxLat > 12.97 && box.MaxLat-box.MinLat < 0.1
		})).
		Return([]*entity.RescueReport{mid, far, near}, nil)

	reports, err := fx.service.Nearby(context.Background(), usecase.NearbyQuery{Latitude: 12.97, Longitude: 77.59})

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, near.ID, reports[0].ID)
	assert.Equal(t, mid.ID, reports[1].ID)
	assert.InDelta(t, 1.11, *reports[0].DistanceKm, 0.05)
}

func TestRescueService_Nearby_ClampsRadius(t *testing.T) {
	fx := createTestRescueService(t)

	fx.rescueRepo.EXPECT().
		ListWithin(mock.Anything, mock.MatchedBy(func(box entity.BoundingBox) bool {
			// 50 km either side is about 0.9 degrees of latitude
			return box.MaxLat-box.MinLat < 1.0
		})).
		Return(nil, nil)

	reports, err := fx.service.Nearby(context.Background(), usecase.NearbyQuery{Latitude: 12.97, Longitude: 77.59, RadiusKm: 500})

	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestRescueService_AssignReport(t *testing.T) {
	t.Run("assigns rescue staff", func(t *testing.T) {
		fx := createTestRescueService(t)
		rescuer := &entity.User{ID: uuid.New(), Name: "Ravi", Module: entity.ModuleRescue, IsActive: true}
		report := &entity.RescueReport{ID: uuid.New(), Status: entity.RescueReported, Urgency: entity.UrgencyHigh}

		fx.rescueRepo.EXPECT().FindByID(mock.Anything, report.ID).Return(report, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, rescuer.ID).Return(rescuer, nil)
		fx.rescueRepo.EXPECT().Update(mock.Anything, report).Return(nil)
		fx.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(ev *service.NotificationEvent) bool {
				return ev.Kind == entity.NotificationRescueAssigned && ev.UserIDs[0] == rescuer.ID.String()
			})).
			Return(nil)

		assigned, err := fx.service.AssignReport(context.Background(), testActor("rescue_manager"), report.ID, rescuer.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.RescueAssigned, assigned.Status)
		assert.Equal(t, rescuer.ID, *assigned.AssignedTo)
		require.Len(t, assigned.Notes, 1)
	})

	t.Run("assignee outside rescue", func(t *testing.T) {
		fx := createTestRescueService(t)
		vet := &entity.User{ID: uuid.New(), Module: entity.ModuleVeterinary, IsActive: true}
		report := &entity.RescueReport{ID: uuid.New(), Status: entity.RescueReported}

		fx.rescueRepo.EXPECT().FindByID(mock.Anything, report.ID).Return(report, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, vet.ID).Return(vet, nil)

		_, err := fx.service.AssignReport(context.Background(), testActor("rescue_manager"), report.ID, vet.ID)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("closed report", func(t *testing.T) {
		fx := createTestRescueService(t)
		rescuer := &entity.User{ID: uuid.New(), Module: entity.ModuleRescue, IsActive: true}
		report := &entity.RescueReport{ID: uuid.New(), Status: entity.RescueClosed}

		fx.rescueRepo.EXPECT().FindByID(mock.Anything, report.ID).Return(report, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, rescuer.ID).Return(rescuer, nil)

		_, err := fx.service.AssignReport(context.Background(), testActor("rescue_manager"), report.ID, rescuer.ID)

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestRescueService_UpdateStatus(t *testing.T) {
	worker := testActor("rescue_worker")

	t.Run("rescued sets timestamp and note", func(t *testing.T) {
		fx := createTestRescueService(t)
		report := &entity.RescueReport{ID: uuid.New(), Status: entity.RescueInProgress, AssignedTo: &worker.UserID}

		fx.rescueRepo.EXPECT().FindByID(mock.Anything, report.ID).Return(report, nil)
		fx.rescueRepo.EXPECT().Update(mock.Anything, report).Return(nil)

		updated, err := fx.service.UpdateStatus(context.Background(), worker, report.ID, entity.RescueRescued, "taken to clinic")

		require.NoError(t, err)
		assert.Equal(t, entity.RescueRescued, updated.Status)
		require.NotNil(t, updated.RescuedAt)
		require.Len(t, updated.Notes, 1)
		assert.Equal(t, "taken to clinic", updated.Notes[0].Text)
	})

	t.Run("worker on someone else's report", func(t *testing.T) {
		fx := createTestRescueService(t)
		other := uuid.New()
		report := &entity.RescueReport{ID: uuid.New(), Status: entity.RescueAssigned, AssignedTo: &other}

		fx.rescueRepo.EXPECT().FindByID(mock.Anything, report.ID).Return(report, nil)

		_, err := fx.service.UpdateStatus(context.Background(), worker, report.ID, entity.RescueInProgress, "")

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("invalid transition", func(t *testing.T) {
		fx := createTestRescueService(t)
		report := &entity.RescueReport{ID: uuid.New(), Status: entity.RescueReported}

		fx.rescueRepo.EXPECT().FindByID(mock.Anything, report.ID).Return(report, nil)

		_, err := fx.service.UpdateStatus(context.Background(), testActor("rescue_manager"), report.ID, entity.RescueRescued, "")

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestRescueService_AddNote_RequiresText(t *testing.T) {
	fx := createTestRescueService(t)

	_, err := fx.service.AddNote(context.Background(), testActor("rescue_manager"), uuid.New(), "  ")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
