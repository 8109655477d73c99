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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adoptionServiceFixtures struct {
	service   *adoptionService
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	petRepo   *mockRepo.MockAdoptionPetRepository
	appRepo   *mockRepo.MockAdoptionApplicationRepository
	seqRepo   *mockRepo.MockSequenceRepository
	registry  *mockRepo.MockPetRepository
	qrCode    *mockSvc.MockQRCodeService
	storage   *mockSvc.MockFileStorage
	publisher *mockSvc.MockEventPublisher
}

func createTestAdoptionService(t *testing.T) adoptionServiceFixtures {
	fx := adoptionServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		petRepo:   mockRepo.NewMockAdoptionPetRepository(t),
		appRepo:   mockRepo.NewMockAdoptionApplicationRepository(t),
		seqRepo:   mockRepo.NewMockSequenceRepository(t),
		registry:  mockRepo.NewMockPetRepository(t),
		qrCode:    mockSvc.NewMockQRCodeService(t),
		storage:   mockSvc.NewMockFileStorage(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewAdoptionService(AdoptionServiceParams{
		TxManager: fx.txManager,
		QRCode:    fx.qrCode,
		Storage:   fx.storage,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	}).(*adoptionService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().AdoptionPetRepo().Return(fx.petRepo).Maybe()
	fx.factory.EXPECT().AdoptionApplicationRepo().Return(fx.appRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	fx.factory.EXPECT().PetRepo().Return(fx.registry).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func (fx adoptionServiceFixtures) expectOTPNotification(capture *string) {
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.Kind == entity.NotificationHandoverOTP
		})).
		Run(func(_ context.Context, e *service.NotificationEvent) {
			if capture != nil {
				*capture = e.Data["otp"]
			}
		}).
		Return(nil).
		Once()
}

// scheduledApplication is an approved, paid application with one live handover code.
func scheduledApplication(applicant uuid.UUID, pet *entity.AdoptionPet, otp string) *entity.AdoptionApplication {
	at := fixedNow.Add(48 * time.Hour)

	return &entity.AdoptionApplication{
		ID:            uuid.New(),
		UserID:        applicant,
		PetID:         pet.ID,
		Status:        entity.ApplicationApproved,
		PaymentStatus: entity.PaymentCompleted,
		Handover: entity.Handover{
			Status:      entity.HandoverScheduled,
			ScheduledAt: &at,
			Location:    entity.AdoptionHandoverLocation,
			OTPHistory: []entity.HandoverOTP{
				{OTP: otp, GeneratedAt: fixedNow.Add(-time.Hour), ExpiresAt: fixedNow.Add(entity.AdoptionHandoverOTPTTL - time.Hour)},
			},
		},
	}
}

func (fx adoptionServiceFixtures) expectNotification() {
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.Kind == entity.NotificationApplicationStatus
		})).
		Return(nil).
		Once()
}

func availablePet(fee float64) *entity.AdoptionPet {
	return &entity.AdoptionPet{ID: uuid.New(), Name: "Biscuit", Species: "dog", Status: entity.PetAvailable, IsActive: true, AdoptionFee: fee}
}

func TestAdoptionService_GetAvailablePet(t *testing.T) {
	ctx := context.Background()

	t.Run("reserved pet is not available", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		pet.Status = entity.PetReserved
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.GetAvailablePet(ctx, pet.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPetNotAvailable)
		assert.Equal(t, 400, mustAppError(t, err).HTTPCode())
	})

	t.Run("inactive pet is hidden", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		pet.IsActive = false
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.GetAvailablePet(ctx, pet.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
	})
}

func TestAdoptionService_ListAvailablePets_ForcesFilter(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()

	fx.petRepo.EXPECT().
		List(ctx, entity.AdoptionPetFilter{Species: "cat", Status: entity.PetAvailable, OnlyActive: true}, entity.PageRequest{Page: 2, Limit: 12}).
		Return(nil, int64(13), nil)

	page, err := fx.service.ListAvailablePets(ctx, entity.AdoptionPetFilter{Species: "cat", Status: entity.PetAdopted}, entity.PageRequest{Page: 2, Limit: 12})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Pagination.Pages)
}

func TestAdoptionService_CreatePet(t *testing.T) {
	ctx := context.Background()
	actor := testActor("adoption_manager")

	t.Run("defaults", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		fx.petRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdoptionPet")).Return(nil)

		pet, err := fx.service.CreatePet(ctx, actor, usecase.AdoptionPetInput{Name: " Biscuit ", Species: "dog", Images: []string{"", "/uploads/a.png"}})
		require.NoError(t, err)
		assert.Equal(t, "Biscuit", pet.Name)
		assert.Equal(t, entity.PetAvailable, pet.Status)
		assert.Equal(t, "Unknown", pet.Gender)
		assert.Equal(t, "months", pet.AgeUnit)
		assert.Equal(t, []string{"/uploads/a.png"}, pet.Images)
		assert.Equal(t, actor.UserID, pet.CreatedBy)
	})

	t.Run("bad gender", func(t *testing.T) {
		fx := createTestAdoptionService(t)

		_, err := fx.service.CreatePet(ctx, actor, usecase.AdoptionPetInput{Name: "B", Species: "dog", Gender: "male"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAdoptionService_SubmitApplication(t *testing.T) {
	ctx := context.Background()
	actor := testActor(entity.RolePublicUser)

	t.Run("free pet skips payment", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.appRepo.EXPECT().ExistsActive(ctx, entity.ApplicationFilter{PetID: &pet.ID}, []entity.ApplicationStatus{entity.ApplicationPending}).Return(false, nil)
		fx.appRepo.EXPECT().ExistsActive(ctx, entity.ApplicationFilter{PetID: &pet.ID, UserID: &actor.UserID}, entity.ActiveApplicationStatuses).Return(false, nil)
		fx.appRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdoptionApplication")).Return(nil)

		app, err := fx.service.SubmitApplication(ctx, actor, usecase.ApplicationInput{PetID: pet.ID, Documents: []string{" /uploads/id.pdf "}})
		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationPending, app.Status)
		assert.Equal(t, entity.PaymentNotRequired, app.PaymentStatus)
		assert.Equal(t, []string{"/uploads/id.pdf"}, app.Documents)
	})

	t.Run("pet already has a pending application", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(50)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.appRepo.EXPECT().ExistsActive(ctx, mock.Anything, []entity.ApplicationStatus{entity.ApplicationPending}).Return(true, nil)

		_, err := fx.service.SubmitApplication(ctx, actor, usecase.ApplicationInput{PetID: pet.ID})
		assert.ErrorIs(t, err, domainerrors.ErrApplicationExists)
	})

	t.Run("same user already applied", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(50)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.appRepo.EXPECT().ExistsActive(ctx, mock.Anything, []entity.ApplicationStatus{entity.ApplicationPending}).Return(false, nil)
		fx.appRepo.EXPECT().ExistsActive(ctx, mock.Anything, entity.ActiveApplicationStatuses).Return(true, nil)

		_, err := fx.service.SubmitApplication(ctx, actor, usecase.ApplicationInput{PetID: pet.ID})
		assert.ErrorIs(t, err, domainerrors.ErrApplicationExists)
	})

	t.Run("pet not available", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		pet.Status = entity.PetAdopted
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.SubmitApplication(ctx, actor, usecase.ApplicationInput{PetID: pet.ID})
		assert.ErrorIs(t, err, domainerrors.ErrPetNotAvailable)
	})

	t.Run("pet missing", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		petID := uuid.New()
		fx.petRepo.EXPECT().FindByID(ctx, petID).Return(nil, repository.ErrNotFound)

		_, err := fx.service.SubmitApplication(ctx, actor, usecase.ApplicationInput{PetID: petID})
		assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
	})
}

func TestAdoptionService_ApproveApplication(t *testing.T) {
	ctx := context.Background()
	manager := testActor("adoption_manager")

	tests := []struct {
		name        string
		fee         float64
		wantStatus  entity.ApplicationStatus
		wantPayment entity.PaymentStatus
	}{
		{"with fee", 150, entity.ApplicationPaymentPending, entity.PaymentPending},
		{"free", 0, entity.ApplicationApproved, entity.PaymentNotRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdoptionService(t)
			pet := availablePet(tt.fee)
			app := &entity.AdoptionApplication{ID: uuid.New(), UserID: uuid.New(), PetID: pet.ID, Status: entity.ApplicationPending}
			fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
			fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
			fx.appRepo.EXPECT().Update(ctx, app).Return(nil)
			fx.petRepo.EXPECT().Update(ctx, pet).Return(nil)
			fx.expectNotification()

			approved, err := fx.service.ApproveApplication(ctx, manager, app.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, approved.Status)
			assert.Equal(t, tt.wantPayment, approved.PaymentStatus)
			assert.Equal(t, manager.UserID, *approved.ReviewedBy)
			assert.Equal(t, entity.PetReserved, pet.Status)
			assert.Equal(t, app.UserID, *pet.AdopterUserID)
		})
	}

	t.Run("not pending", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := &entity.AdoptionApplication{ID: uuid.New(), PetID: pet.ID, Status: entity.ApplicationRejected}
		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.ApproveApplication(ctx, manager, app.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestAdoptionService_RejectApplication(t *testing.T) {
	ctx := context.Background()
	manager := testActor("adoption_manager")

	t.Run("reason required", func(t *testing.T) {
		fx := createTestAdoptionService(t)

		_, err := fx.service.RejectApplication(ctx, manager, uuid.New(), "  ")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("releases reserved pet", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		applicant := uuid.New()
		pet := availablePet(100)
		pet.Status = entity.PetReserved
		pet.AdopterUserID = &applicant
		app := &entity.AdoptionApplication{ID: uuid.New(), UserID: applicant, PetID: pet.ID, Status: entity.ApplicationPaymentPending}
		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.appRepo.EXPECT().Update(ctx, app).Return(nil)
		fx.petRepo.EXPECT().Update(ctx, pet).Return(nil)
		fx.expectNotification()

		rejected, err := fx.service.RejectApplication(ctx, manager, app.ID, "Home visit failed")
		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationRejected, rejected.Status)
		assert.Equal(t, "Home visit failed", rejected.RejectionReason)
		assert.Equal(t, entity.PetAvailable, pet.Status)
		assert.Nil(t, pet.AdopterUserID)
	})
}

func TestAdoptionService_CancelApplication(t *testing.T) {
	ctx := context.Background()
	actor := testActor(entity.RolePublicUser)

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		app := &entity.AdoptionApplication{ID: uuid.New(), UserID: actor.UserID, PetID: uuid.New(), Status: entity.ApplicationCompleted}
		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, app.PetID).Return(nil, repository.ErrNotFound)

		_, err := fx.service.CancelApplication(ctx, actor, app.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("other user's application", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		app := &entity.AdoptionApplication{ID: uuid.New(), UserID: uuid.New(), PetID: uuid.New(), Status: entity.ApplicationPending}
		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, app.PetID).Return(availablePet(0), nil)

		_, err := fx.service.CancelApplication(ctx, actor, app.ID)
		assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
	})

	t.Run("pending cancel leaves available pet untouched", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := &entity.AdoptionApplication{ID: uuid.New(), UserID: actor.UserID, PetID: pet.ID, Status: entity.ApplicationPending}
		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.appRepo.EXPECT().Update(ctx, app).Return(nil)

		cancelled, err := fx.service.CancelApplication(ctx, actor, app.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationCancelled, cancelled.Status)
	})
}

func TestAdoptionService_MarkPaymentReceived(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()
	app := &entity.AdoptionApplication{ID: uuid.New(), PetID: uuid.New(), Status: entity.ApplicationPaymentPending, PaymentStatus: entity.PaymentPending}
	fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
	fx.petRepo.EXPECT().FindByID(ctx, app.PetID).Return(nil, repository.ErrNotFound)
	fx.appRepo.EXPECT().Update(ctx, app).Return(nil)

	paid, err := fx.service.MarkPaymentReceived(ctx, testActor("adoption_manager"), app.ID, " TXN-42 ")
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationApproved, paid.Status)
	assert.Equal(t, entity.PaymentCompleted, paid.PaymentStatus)
	assert.Equal(t, "TXN-42", paid.PaymentReference)
	assert.Equal(t, fixedNow, *paid.PaidAt)
}

func TestAdoptionService_ScheduleHandover(t *testing.T) {
	ctx := context.Background()
	manager := testActor("adoption_manager")

	t.Run("books pickup and sends a code", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		pet.Status = entity.PetReserved
		app := &entity.AdoptionApplication{ID: uuid.New(), UserID: uuid.New(), PetID: pet.ID, Status: entity.ApplicationApproved, PaymentStatus: entity.PaymentNotRequired}
		at := fixedNow.Add(72 * time.Hour)

		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.appRepo.EXPECT().Update(ctx, app).Return(nil)
		var sent string
		fx.expectOTPNotification(&sent)

		scheduled, err := fx.service.ScheduleHandover(ctx, manager, app.ID, usecase.HandoverInput{ScheduledAt: at})
		require.NoError(t, err)
		assert.Equal(t, entity.HandoverScheduled, scheduled.Handover.Status)
		assert.Equal(t, at, *scheduled.Handover.ScheduledAt)
		assert.Equal(t, entity.AdoptionHandoverLocation, scheduled.Handover.Location)
		require.Len(t, scheduled.Handover.OTPHistory, 1)
		code := scheduled.Handover.OTPHistory[0]
		assert.Len(t, code.OTP, 6)
		assert.Equal(t, code.OTP, sent)
		assert.Equal(t, fixedNow.Add(7*24*time.Hour), code.ExpiresAt)
	})

	t.Run("payment outstanding", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(100)
		app := &entity.AdoptionApplication{ID: uuid.New(), PetID: pet.ID, Status: entity.ApplicationPaymentPending, PaymentStatus: entity.PaymentPending}

		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.ScheduleHandover(ctx, manager, app.ID, usecase.HandoverInput{ScheduledAt: fixedNow.Add(24 * time.Hour)})
		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	dates := []struct {
		name string
		at   time.Time
	}{
		{name: "missing date"},
		{name: "in the past", at: fixedNow.Add(-time.Minute)},
		{name: "right now", at: fixedNow},
		{name: "beyond 30 days", at: fixedNow.Add(entity.AdoptionHandoverWindow + time.Hour)},
	}
	for _, tt := range dates {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdoptionService(t)

			_, err := fx.service.ScheduleHandover(ctx, manager, uuid.New(), usecase.HandoverInput{ScheduledAt: tt.at})
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			fx.appRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		})
	}
}

func TestAdoptionService_RegenerateHandoverOTP(t *testing.T) {
	ctx := context.Background()
	manager := testActor("adoption_manager")

	t.Run("new code supersedes the old one", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := scheduledApplication(uuid.New(), pet, "111111")

		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.appRepo.EXPECT().Update(ctx, app).Return(nil)
		var sent string
		fx.expectOTPNotification(&sent)

		updated, err := fx.service.RegenerateHandoverOTP(ctx, manager, app.ID)
		require.NoError(t, err)
		require.Len(t, updated.Handover.OTPHistory, 2)
		assert.Equal(t, sent, updated.Handover.LatestUnusedOTP().OTP)
	})

	t.Run("history keeps the last ten codes", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := scheduledApplication(uuid.New(), pet, "111111")
		for range 9 {
			app.Handover.AppendOTP(entity.HandoverOTP{OTP: "222222", GeneratedAt: fixedNow, ExpiresAt: fixedNow.Add(time.Hour)}, 0)
		}

		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.appRepo.EXPECT().Update(ctx, app).Return(nil)
		fx.expectOTPNotification(nil)

		updated, err := fx.service.RegenerateHandoverOTP(ctx, manager, app.ID)
		require.NoError(t, err)
		assert.Len(t, updated.Handover.OTPHistory, entity.AdoptionHandoverOTPHistory)
		assert.Equal(t, "222222", updated.Handover.OTPHistory[0].OTP)
	})

	t.Run("nothing scheduled", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := &entity.AdoptionApplication{ID: uuid.New(), PetID: pet.ID, Status: entity.ApplicationApproved, PaymentStatus: entity.PaymentNotRequired}

		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.RegenerateHandoverOTP(ctx, manager, app.ID)
		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestAdoptionService_CompleteHandover(t *testing.T) {
	ctx := context.Background()
	manager := testActor("adoption_manager")

	t.Run("issues certificate and registers the pet", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		applicant := uuid.New()
		pet := availablePet(100)
		pet.Status = entity.PetReserved
		pet.AdopterUserID = &applicant
		pet.Age = 2
		pet.AgeUnit = "years"
		app := scheduledApplication(applicant, pet, "482913")

		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.seqRepo.EXPECT().Next(ctx, entity.SequenceKey(entity.PrefixPetCode, fixedNow)).Return(int64(7), nil)
		var registered *entity.Pet
		fx.registry.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Pet")).
			Run(func(_ context.Context, p *entity.Pet) { registered = p }).
			Return(nil)
		fx.seqRepo.EXPECT().Next(ctx, entity.SequenceKey(entity.PrefixCertificate, fixedNow)).Return(int64(3), nil)
		number := entity.FormatNumber(entity.PrefixCertificate, fixedNow, 3)
		link := "https://petwelfare.example/api/adoption/certificates/" + number + "/verify"
		fx.qrCode.EXPECT().Link("/api/adoption/certificates/" + number + "/verify").Return(link)
		fx.qrCode.EXPECT().Encode(link).Return([]byte("png"), nil)
		fx.storage.EXPECT().Save(ctx, "adoption/certificates/"+number+".png", "image/png", mock.Anything).
			Return(&service.StoredFile{URL: "/uploads/adoption/certificates/" + number + ".png"}, nil)
		fx.appRepo.EXPECT().Update(ctx, app).Return(nil)
		fx.petRepo.EXPECT().Update(ctx, pet).Return(nil)
		fx.expectNotification()

		done, err := fx.service.CompleteHandover(ctx, manager, app.ID, " 482913 ")
		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationCompleted, done.Status)
		assert.Equal(t, entity.HandoverCompleted, done.Handover.Status)
		assert.True(t, done.Handover.OTPHistory[0].Used)
		assert.Equal(t, entity.PetAdopted, pet.Status)
		require.NotNil(t, done.Certificate)
		assert.Equal(t, number, done.Certificate.Number)
		assert.Equal(t, link, done.Certificate.URL)
		assert.Equal(t, fixedNow, done.Certificate.IssuedAt)

		require.NotNil(t, registered)
		assert.Equal(t, "PET-20250310-0007", registered.PetCode)
		assert.Equal(t, applicant, registered.OwnerID)
		assert.Equal(t, entity.PetSourceAdoption, registered.Source)
		assert.Equal(t, &pet.ID, registered.SourceRef)
		assert.Equal(t, fixedNow.AddDate(-2, 0, 0), *registered.DateOfBirth)
		require.Len(t, registered.OwnershipHistory, 1)
		assert.InDelta(t, 100, registered.OwnershipHistory[0].TransferPrice, 0.001)
	})

	t.Run("wrong code changes nothing", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := scheduledApplication(uuid.New(), pet, "482913")

		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.CompleteHandover(ctx, manager, app.ID, "000000")
		require.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
		fx.appRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		fx.registry.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("expired code", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := scheduledApplication(uuid.New(), pet, "482913")
		app.Handover.OTPHistory[0].ExpiresAt = fixedNow.Add(-time.Minute)

		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.CompleteHandover(ctx, manager, app.ID, "482913")
		require.ErrorIs(t, err, domainerrors.ErrOTPExpired)
	})

	t.Run("missing code", func(t *testing.T) {
		fx := createTestAdoptionService(t)

		_, err := fx.service.CompleteHandover(ctx, manager, uuid.New(), "  ")
		require.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})

	t.Run("handover not scheduled", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := &entity.AdoptionApplication{ID: uuid.New(), PetID: pet.ID, Status: entity.ApplicationApproved, PaymentStatus: entity.PaymentNotRequired}
		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

		_, err := fx.service.CompleteHandover(ctx, manager, app.ID, "482913")
		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("payment outstanding", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		app := &entity.AdoptionApplication{ID: uuid.New(), PetID: uuid.New(), Status: entity.ApplicationPaymentPending}
		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, app.PetID).Return(availablePet(100), nil)

		_, err := fx.service.CompleteHandover(ctx, manager, app.ID, "482913")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("storage failure rolls back", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		pet := availablePet(0)
		app := scheduledApplication(uuid.New(), pet, "482913")
		fx.appRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)
		fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
		fx.seqRepo.EXPECT().Next(ctx, mock.Anything).Return(int64(1), nil)
		fx.registry.EXPECT().Create(ctx, mock.Anything).Return(nil)
		fx.qrCode.EXPECT().Link(mock.Anything).Return("link")
		fx.qrCode.EXPECT().Encode("link").Return([]byte("png"), nil)
		fx.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).Return(nil, errors.New("disk full"))

		_, err := fx.service.CompleteHandover(ctx, manager, app.ID, "482913")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestAdoptionService_VerifyCertificate(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()
	older := &entity.AdoptionApplication{ID: uuid.New(), Certificate: &entity.AdoptionCertificate{Number: "ADC-20250101-0001", IssuedAt: fixedNow.AddDate(0, -2, 0)}}
	newer := &entity.AdoptionApplication{ID: uuid.New(), PetID: uuid.New(), Certificate: &entity.AdoptionCertificate{Number: "ADC-20250310-0001", IssuedAt: fixedNow}}

	fx.appRepo.EXPECT().ListWithCertificates(ctx).Return([]*entity.AdoptionApplication{older, newer}, nil)
	fx.appRepo.EXPECT().FindByID(ctx, newer.ID).Return(newer, nil)
	fx.petRepo.EXPECT().FindByID(ctx, newer.PetID).Return(availablePet(0), nil)

	view, err := fx.service.VerifyCertificate(ctx, "adc-20250310-0001")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, view.ID)
	assert.NotNil(t, view.Pet)
}
