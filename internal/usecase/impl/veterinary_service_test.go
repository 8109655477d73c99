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

type veterinaryServiceFixtures struct {
	service   *veterinaryService
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	apptRepo  *mockRepo.MockAppointmentRepository
	petRepo   *mockRepo.MockPetRepository
	seqRepo   *mockRepo.MockSequenceRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestVeterinaryService(t *testing.T) veterinaryServiceFixtures {
	fx := veterinaryServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		apptRepo:  mockRepo.NewMockAppointmentRepository(t),
		petRepo:   mockRepo.NewMockPetRepository(t),
		seqRepo:   mockRepo.NewMockSequenceRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewVeterinaryService(VeterinaryServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	}).(*veterinaryService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().AppointmentRepo().Return(fx.apptRepo).Maybe()
	fx.factory.EXPECT().PetRepo().Return(fx.petRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func vetManager(storeID string) *usecase.Actor {
	actor := testActor("veterinary_manager")
	actor.Module = entity.ModuleVeterinary
	actor.StoreID = storeID

	return actor
}

func dayOffset(days int) time.Time {
	return entity.TruncateToDay(fixedNow).AddDate(0, 0, days)
}

func TestVeterinaryService_BookAppointment(t *testing.T) {
	t.Run("routine three days ahead", func(t *testing.T) {
		fx := createTestVeterinaryService(t)
		actor := testActor("user")
		day := dayOffset(3)

		fx.apptRepo.EXPECT().SlotTaken(mock.Anything, "store-1", day, "10:30").Return(false, nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, "VET-20250310").Return(int64(4), nil)
		fx.apptRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.VetAppointment")).Return(nil)

		appt, err := fx.service.BookAppointment(context.Background(), actor, usecase.BookAppointmentInput{
			StoreID:         "store-1",
			PetName:         "Milo",
			AppointmentDate: day,
			TimeSlot:        "10:30",
			BookingType:     entity.BookingRoutine,
		})

		require.NoError(t, err)
		assert.Equal(t, "VET-20250310-0004", appt.AppointmentNumber)
		assert.Equal(t, entity.AppointmentScheduled, appt.Status)
		assert.Equal(t, actor.UserID, appt.OwnerID)
	})

	t.Run("emergency waits for approval without a slot", func(t *testing.T) {
		fx := createTestVeterinaryService(t)

		fx.seqRepo.EXPECT().Next(mock.Anything, mock.Anything).Return(int64(1), nil)
		fx.apptRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		appt, err := fx.service.BookAppointment(context.Background(), testActor("user"), usecase.BookAppointmentInput{
			StoreID:         "store-1",
			PetName:         "Milo",
			AppointmentDate: dayOffset(0),
			BookingType:     entity.BookingEmergency,
			Reason:          "swallowed a sock this morning",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.AppointmentPendingApproval, appt.Status)
		fx.apptRepo.AssertNotCalled(t, "SlotTaken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("walk-in tomorrow", func(t *testing.T) {
		fx := createTestVeterinaryService(t)

		fx.apptRepo.EXPECT().SlotTaken(mock.Anything, "store-1", dayOffset(1), "09:00").Return(false, nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, mock.Anything).Return(int64(1), nil)
		fx.apptRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		_, err := fx.service.BookAppointment(context.Background(), testActor("user"), usecase.BookAppointmentInput{
			StoreID:         "store-1",
			PetName:         "Milo",
			AppointmentDate: dayOffset(1),
			TimeSlot:        "09:00",
			BookingType:     entity.BookingWalkIn,
		})

		require.NoError(t, err)
	})

	t.Run("registered pet fills in the name", func(t *testing.T) {
		fx := createTestVeterinaryService(t)
		owner := testActor("user")
		pet := ownedPet(fx.petRepo, owner)

		fx.apptRepo.EXPECT().SlotTaken(mock.Anything, "store-1", dayOffset(2), "14:00").Return(false, nil)
		fx.seqRepo.EXPECT().Next(mock.Anything, mock.Anything).Return(int64(1), nil)
		fx.apptRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		appt, err := fx.service.BookAppointment(context.Background(), owner, usecase.BookAppointmentInput{
			StoreID:         "store-1",
			PetID:           &pet.ID,
			AppointmentDate: dayOffset(2),
			TimeSlot:        "14:00",
			BookingType:     entity.BookingRoutine,
		})

		require.NoError(t, err)
		assert.Equal(t, "Milo", appt.PetName)
		assert.Equal(t, &pet.ID, appt.PetID)
	})

	t.Run("pet registered to someone else", func(t *testing.T) {
		fx := createTestVeterinaryService(t)
		pet := ownedPet(fx.petRepo, testActor("user"))

		_, err := fx.service.BookAppointment(context.Background(), testActor("user"), usecase.BookAppointmentInput{
			StoreID:         "store-1",
			PetID:           &pet.ID,
			AppointmentDate: dayOffset(2),
			TimeSlot:        "14:00",
			BookingType:     entity.BookingRoutine,
		})

		require.ErrorIs(t, err, domainerrors.ErrOwnedPetNotFound)
		fx.apptRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("slot taken", func(t *testing.T) {
		fx := createTestVeterinaryService(t)

		fx.apptRepo.EXPECT().SlotTaken(mock.Anything, "store-1", dayOffset(2), "11:00").Return(true, nil)

		_, err := fx.service.BookAppointment(context.Background(), testActor("user"), usecase.BookAppointmentInput{
			StoreID:         "store-1",
			PetName:         "Milo",
			AppointmentDate: dayOffset(2),
			TimeSlot:        "11:00",
			BookingType:     entity.BookingRoutine,
		})

		require.ErrorIs(t, err, domainerrors.ErrSlotTaken)
	})

	invalid := []struct {
		name  string
		input usecase.BookAppointmentInput
		want  error
	}{
		{
			name:  "routine today",
			input: usecase.BookAppointmentInput{AppointmentDate: dayOffset(0), TimeSlot: "15:00", BookingType: entity.BookingRoutine},
			want:  domainerrors.ErrInvalidBookingDate,
		},
		{
			name:  "routine too far ahead",
			input: usecase.BookAppointmentInput{AppointmentDate: dayOffset(8), TimeSlot: "15:00", BookingType: entity.BookingRoutine},
			want:  domainerrors.ErrInvalidBookingDate,
		},
		{
			name:  "walk-in in two days",
			input: usecase.BookAppointmentInput{AppointmentDate: dayOffset(2), TimeSlot: "15:00", BookingType: entity.BookingWalkIn},
			want:  domainerrors.ErrInvalidBookingDate,
		},
		{
			name:  "walk-in slot already started",
			input: usecase.BookAppointmentInput{AppointmentDate: dayOffset(0), TimeSlot: "09:30", BookingType: entity.BookingWalkIn},
			want:  domainerrors.ErrInvalidBookingDate,
		},
		{
			name:  "short emergency reason",
			input: usecase.BookAppointmentInput{AppointmentDate: dayOffset(0), BookingType: entity.BookingEmergency, Reason: "sick"},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "slot outside opening hours",
			input: usecase.BookAppointmentInput{AppointmentDate: dayOffset(2), TimeSlot: "17:00", BookingType: entity.BookingRoutine},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown booking type",
			input: usecase.BookAppointmentInput{AppointmentDate: dayOffset(2), TimeSlot: "10:00", BookingType: "surgery"},
			want:  domainerrors.ErrValidationFailed,
		},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVeterinaryService(t)
			tt.input.StoreID = "store-1"
			tt.input.PetName = "Milo"

			_, err := fx.service.BookAppointment(context.Background(), testActor("user"), tt.input)

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVeterinaryService_AvailableSlots(t *testing.T) {
	t.Run("today skips started slots", func(t *testing.T) {
		fx := createTestVeterinaryService(t)
		day := dayOffset(0)

		fx.apptRepo.EXPECT().
			BookedSlots(mock.Anything, "store-1", day, entity.SlotBlockingStatuses).
			Return([]string{"11:00", "09:00"}, nil)

		slots, err := fx.service.AvailableSlots(context.Background(), "store-1", day)

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", slots.Date)
		assert.Equal(t, []string{"11:00"}, slots.Booked)
		assert.NotContains(t, slots.Available, "10:00")
		assert.Equal(t, "10:30", slots.Available[0])
		assert.Len(t, slots.Available, 12)
	})

	t.Run("future day", func(t *testing.T) {
		fx := createTestVeterinaryService(t)

		fx.apptRepo.EXPECT().BookedSlots(mock.Anything, "store-1", dayOffset(1), mock.Anything).Return(nil, nil)

		slots, err := fx.service.AvailableSlots(context.Background(), "store-1", dayOffset(1))

		require.NoError(t, err)
		assert.Len(t, slots.Available, 16)
		assert.Empty(t, slots.Booked)
	})

	t.Run("store required", func(t *testing.T) {
		fx := createTestVeterinaryService(t)

		_, err := fx.service.AvailableSlots(context.Background(), " ", dayOffset(1))

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestVeterinaryService_UpdateStatus(t *testing.T) {
	t.Run("approve emergency into free slot", func(t *testing.T) {
		fx := createTestVeterinaryService(t)
		appt := &entity.VetAppointment{
			ID: uuid.New(), OwnerID: uuid.New(), StoreID: "store-1", AppointmentDate: dayOffset(1),
			TimeSlot: "14:00", BookingType: entity.BookingEmergency, Status: entity.AppointmentPendingApproval,
		}

		fx.apptRepo.EXPECT().FindByID(mock.Anything, appt.ID).Return(appt, nil)
		fx.apptRepo.EXPECT().SlotTaken(mock.Anything, "store-1", appt.AppointmentDate, "14:00").Return(false, nil)
		fx.apptRepo.EXPECT().Update(mock.Anything, appt).Return(nil)
		fx.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(ev *service.NotificationEvent) bool {
				return ev.Kind == entity.NotificationAppointmentStatus && ev.Data["status"] == "scheduled"
			})).
			Return(nil)

		updated, err := fx.service.UpdateStatus(context.Background(), vetManager("store-1"), appt.ID, entity.AppointmentScheduled, "")

		require.NoError(t, err)
		assert.Equal(t, entity.AppointmentScheduled, updated.Status)
	})

	t.Run("invalid transition", func(t *testing.T) {
		fx := createTestVeterinaryService(t)
		appt := &entity.VetAppointment{ID: uuid.New(), StoreID: "store-1", Status: entity.AppointmentCompleted}

		fx.apptRepo.EXPECT().FindByID(mock.Anything, appt.ID).Return(appt, nil)

		_, err := fx.service.UpdateStatus(context.Background(), vetManager("store-1"), appt.ID, entity.AppointmentInProgress, "")

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("other store", func(t *testing.T) {
		fx := createTestVeterinaryService(t)
		appt := &entity.VetAppointment{ID: uuid.New(), StoreID: "store-2", Status: entity.AppointmentScheduled}

		fx.apptRepo.EXPECT().FindByID(mock.Anything, appt.ID).Return(appt, nil)

		_, err := fx.service.UpdateStatus(context.Background(), vetManager("store-1"), appt.ID, entity.AppointmentConfirmed, "")

		require.ErrorIs(t, err, domainerrors.ErrAppointmentNotFound)
	})
}

func TestVeterinaryService_CancelAppointment(t *testing.T) {
	owner := testActor("user")

	tests := []struct {
		name   string
		actor  *usecase.Actor
		status entity.AppointmentStatus
		want   error
	}{
		{name: "owner cancels scheduled", actor: owner, status: entity.AppointmentScheduled},
		{name: "owner cannot cancel confirmed", actor: owner, status: entity.AppointmentConfirmed, want: domainerrors.ErrInvalidStatus},
		{name: "stranger", actor: testActor("user"), status: entity.AppointmentScheduled, want: domainerrors.ErrAppointmentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVeterinaryService(t)
			appt := &entity.VetAppointment{ID: uuid.New(), OwnerID: owner.UserID, Status: tt.status}

			fx.apptRepo.EXPECT().FindByID(mock.Anything, appt.ID).Return(appt, nil)
			if tt.want == nil {
				fx.apptRepo.EXPECT().Update(mock.Anything, appt).Return(nil)
			}

			updated, err := fx.service.CancelAppointment(context.Background(), tt.actor, appt.ID, "travelling")

			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.AppointmentCancelled, updated.Status)
			assert.Equal(t, "travelling", updated.CancellationReason)
			require.NotNil(t, updated.CancelledAt)
		})
	}
}

func TestVeterinaryService_RecordConsultation(t *testing.T) {
	fx := createTestVeterinaryService(t)
	appt := &entity.VetAppointment{ID: uuid.New(), StoreID: "store-1", Status: entity.AppointmentInProgress}

	fx.apptRepo.EXPECT().FindByID(mock.Anything, appt.ID).Return(appt, nil)
	fx.apptRepo.EXPECT().Update(mock.Anything, appt).Return(nil)

	updated, err := fx.service.RecordConsultation(context.Background(), vetManager("store-1"), appt.ID, usecase.ConsultationInput{
		Diagnosis: "mild gastritis",
		Treatment: "bland diet",
		Amount:    45,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentCompleted, updated.Status)
	assert.InDelta(t, 45.0, updated.Amount, 0.001)
}
