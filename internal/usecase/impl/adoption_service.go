package impl

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
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

type adoptionService struct {
	txManager repository.TransactionManager
	qrCode    service.QRCodeService
	storage   service.FileStorage
	notifier  notifier
	now       func() time.Time
	logger    *slog.Logger
}

// AdoptionServiceParams holds dependencies for AdoptionService, injected by Fx.
type AdoptionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRCode    service.QRCodeService
	Storage   service.FileStorage
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAdoptionService is the constructor for adoptionService.
func NewAdoptionService(params AdoptionServiceParams) usecase.AdoptionUsecase {
	return &adoptionService{
		txManager: params.TxManager,
		qrCode:    params.QRCode,
		storage:   params.Storage,
		notifier:  newNotifier(params.Publisher, params.Logger),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *adoptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adoptionService) ListAvailablePets(ctx context.Context, filter entity.AdoptionPetFilter, page entity.PageRequest) (*entity.Page[*entity.AdoptionPet], error) {
	filter.Status = entity.PetAvailable
	filter.OnlyActive = true

	return srv.ListPets(ctx, filter, page)
}

func (srv *adoptionService) GetAvailablePet(ctx context.Context, id uuid.UUID) (*entity.AdoptionPet, error) {
	pet, err := srv.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}
	if !pet.IsActive {
		return nil, domainerrors.ErrPetNotFound
	}
	if pet.Status != entity.PetAvailable {
		return nil, domainerrors.ErrPetNotAvailable.WithDetails("current status: " + string(pet.Status))
	}

	return pet, nil
}

func (srv *adoptionService) ListPets(ctx context.Context, filter entity.AdoptionPetFilter, page entity.PageRequest) (*entity.Page[*entity.AdoptionPet], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.AdoptionPet]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pets, total, err := repoFactory.AdoptionPetRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list adoption pets")
		}
		result = newPage(pets, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return result, nil
}

func (srv *adoptionService) GetPet(ctx context.Context, id uuid.UUID) (*entity.AdoptionPet, error) {
	var pet *entity.AdoptionPet
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AdoptionPetRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPetNotFound, "find adoption pet")
		}
		pet = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pet")
	}

	return pet, nil
}

func (srv *adoptionService) CreatePet(ctx context.Context, actor *usecase.Actor, input usecase.AdoptionPetInput) (*entity.AdoptionPet, error) {
	if err := validatePetInput(input); err != nil {
		return nil, err
	}

	now := srv.now()
	pet := &entity.AdoptionPet{
		ID:        uuid.New(),
		Status:    entity.PetAvailable,
		CreatedBy: actor.UserID,
		IsActive:  true,
		CreatedAt: now,
	}
	applyPetInput(pet, input, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return domainerrors.FromRepository(repoFactory.AdoptionPetRepo().Create(ctx, pet), nil, "create adoption pet")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pet")
	}

	srv.log(ctx).Info("Adoption pet listed", slog.String("petID", pet.ID.String()), slog.String("name", pet.Name))

	return pet, nil
}

func (srv *adoptionService) UpdatePet(ctx context.Context, id uuid.UUID, input usecase.AdoptionPetInput) (*entity.AdoptionPet, error) {
	if err := validatePetInput(input); err != nil {
		return nil, err
	}

	return srv.updatePet(ctx, id, "update pet", func(pet *entity.AdoptionPet) error {
		applyPetInput(pet, input, srv.now())

		return nil
	})
}

// SetPetStatus lets managers take a pet off the catalogue or put it back.
// Reserved and adopted are driven by applications and cannot be set by hand.
func (srv *adoptionService) SetPetStatus(ctx context.Context, id uuid.UUID, status entity.AdoptionPetStatus) (*entity.AdoptionPet, error) {
	if status != entity.PetAvailable && status != entity.PetUnavailable {
		return nil, domainerrors.ErrInvalidStatus.WithDetails("status must be available or unavailable")
	}

	return srv.updatePet(ctx, id, "set pet status", func(pet *entity.AdoptionPet) error {
		if pet.Status == entity.PetAdopted || pet.Status == entity.PetReserved {
			return domainerrors.ErrInvalidStatus.WithDetails("pet is " + string(pet.Status))
		}
		pet.Status = status
		pet.UpdatedAt = srv.now()

		return nil
	})
}

func (srv *adoptionService) DeletePet(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		petRepo := repoFactory.AdoptionPetRepo()

		pet, err := petRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPetNotFound, "find adoption pet")
		}
		if pet.Status == entity.PetReserved {
			return domainerrors.ErrInvalidStatus.WithDetails("pet is reserved by an applicant")
		}

		return domainerrors.FromRepository(petRepo.Delete(ctx, id), domainerrors.ErrPetNotFound, "delete adoption pet")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete pet")
	}

	return nil
}

func (srv *adoptionService) SubmitApplication(ctx context.Context, actor *usecase.Actor, input usecase.ApplicationInput) (*entity.AdoptionApplication, error) {
	now := srv.now()
	app := &entity.AdoptionApplication{
		ID:              uuid.New(),
		UserID:          actor.UserID,
		PetID:           input.PetID,
		ApplicationData: input.ApplicationData,
		Documents:       compactStrings(input.Documents),
		Status:          entity.ApplicationPending,
		PaymentStatus:   entity.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pet, err := repoFactory.AdoptionPetRepo().FindByID(ctx, input.PetID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPetNotFound, "find adoption pet")
		}
		if !pet.IsAdoptable() {
			return domainerrors.ErrPetNotAvailable.WithDetails("current status: " + string(pet.Status))
		}

		appRepo := repoFactory.AdoptionApplicationRepo()

		pending, err := appRepo.ExistsActive(ctx, entity.ApplicationFilter{PetID: &pet.ID}, []entity.ApplicationStatus{entity.ApplicationPending})
		if err != nil {
			return domainerrors.FromRepository(err, nil, "check pending applications")
		}
		if pending {
			return domainerrors.ErrApplicationExists.WithDetails("this pet already has a pending application")
		}

		mine, err := appRepo.ExistsActive(ctx, entity.ApplicationFilter{PetID: &pet.ID, UserID: &actor.UserID}, entity.ActiveApplicationStatuses)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "check own applications")
		}
		if mine {
			return domainerrors.ErrApplicationExists.WithDetails("you already applied for this pet")
		}
		if pet.AdoptionFee <= 0 {
			app.PaymentStatus = entity.PaymentNotRequired
		}

		return domainerrors.FromRepository(appRepo.Create(ctx, app), nil, "create application")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit application")
	}

	srv.log(ctx).Info("Adoption application submitted",
		slog.String("applicationID", app.ID.String()),
		slog.String("petID", app.PetID.String()),
	)

	return app, nil
}

func (srv *adoptionService) ListMyApplications(ctx context.Context, actor *usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.AdoptionApplication], error) {
	return srv.ListApplications(ctx, entity.ApplicationFilter{UserID: &actor.UserID}, page)
}

func (srv *adoptionService) GetMyApplication(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*usecase.ApplicationView, error) {
	view, err := srv.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor.UserID {
		return nil, domainerrors.ErrApplicationNotFound
	}

	return view, nil
}

// CancelApplication withdraws the actor's application. A pet reserved for it becomes available again.
func (srv *adoptionService) CancelApplication(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.AdoptionApplication, error) {
	return srv.transition(ctx, id, "cancel application", func(app *entity.AdoptionApplication, pet *entity.AdoptionPet) error {
		if app.UserID != actor.UserID {
			return domainerrors.ErrApplicationNotFound
		}
		if !app.IsActive() {
			return domainerrors.ErrInvalidStatus.WithDetails("application is " + string(app.Status))
		}

		app.Status = entity.ApplicationCancelled
		releasePet(pet, app)

		return nil
	})
}

func (srv *adoptionService) ListApplications(ctx context.Context, filter entity.ApplicationFilter, page entity.PageRequest) (*entity.Page[*entity.AdoptionApplication], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.AdoptionApplication]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		apps, total, err := repoFactory.AdoptionApplicationRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list applications")
		}
		result = newPage(apps, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return result, nil
}

func (srv *adoptionService) GetApplication(ctx context.Context, id uuid.UUID) (*usecase.ApplicationView, error) {
	var view *usecase.ApplicationView
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		app, err := repoFactory.AdoptionApplicationRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrApplicationNotFound, "find application")
		}
		view = &usecase.ApplicationView{AdoptionApplication: app}

		pet, err := repoFactory.AdoptionPetRepo().FindByID(ctx, app.PetID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return domainerrors.FromRepository(err, nil, "find adoption pet")
		}
		view.Pet = pet

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get application")
	}

	return view, nil
}

// ApproveApplication reserves the pet for the applicant. Pets with a fee wait for payment first.
func (srv *adoptionService) ApproveApplication(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.AdoptionApplication, error) {
	app, err := srv.transition(ctx, id, "approve application", func(app *entity.AdoptionApplication, pet *entity.AdoptionPet) error {
		if app.Status != entity.ApplicationPending {
			return domainerrors.ErrInvalidStatus.WithDetails("application is not pending")
		}
		if pet == nil {
			return domainerrors.ErrPetNotFound
		}
		if !pet.IsAdoptable() {
			return domainerrors.ErrPetNotAvailable.WithDetails("current status: " + string(pet.Status))
		}

		now := srv.now()
		app.ReviewedBy = &actor.UserID
		app.ReviewedAt = &now
		if pet.AdoptionFee > 0 {
			app.Status = entity.ApplicationPaymentPending
			app.PaymentStatus = entity.PaymentPending
		} else {
			app.Status = entity.ApplicationApproved
			app.PaymentStatus = entity.PaymentNotRequired
		}

		pet.Status = entity.PetReserved
		pet.AdopterUserID = &app.UserID

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifyApplicant(ctx, app, "Application approved", "Your adoption application has been approved.")

	return app, nil
}

func (srv *adoptionService) RejectApplication(ctx context.Context, actor *usecase.Actor, id uuid.UUID, reason string) (*entity.AdoptionApplication, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rejection reason is required")
	}

	app, err := srv.transition(ctx, id, "reject application", func(app *entity.AdoptionApplication, pet *entity.AdoptionPet) error {
		if !app.IsActive() {
			return domainerrors.ErrInvalidStatus.WithDetails("application is " + string(app.Status))
		}

		now := srv.now()
		app.Status = entity.ApplicationRejected
		app.RejectionReason = reason
		app.ReviewedBy = &actor.UserID
		app.ReviewedAt = &now
		releasePet(pet, app)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifyApplicant(ctx, app, "Application rejected", reason)

	return app, nil
}

func (srv *adoptionService) MarkPaymentReceived(ctx context.Context, actor *usecase.Actor, id uuid.UUID, reference string) (*entity.AdoptionApplication, error) {
	app, err := srv.transition(ctx, id, "mark payment received", func(app *entity.AdoptionApplication, _ *entity.AdoptionPet) error {
		if app.Status != entity.ApplicationPaymentPending {
			return domainerrors.ErrInvalidStatus.WithDetails("application is not awaiting payment")
		}

		now := srv.now()
		app.Status = entity.ApplicationApproved
		app.PaymentStatus = entity.PaymentCompleted
		app.PaymentReference = strings.TrimSpace(reference)
		app.PaidAt = &now

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Adoption payment recorded",
		slog.String("applicationID", id.String()),
		slog.String("by", actor.UserID.String()),
	)

	return app, nil
}

// ScheduleHandover books the pickup for an approved, paid application and sends the
// applicant the first handover code.
func (srv *adoptionService) ScheduleHandover(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.HandoverInput) (*entity.AdoptionApplication, error) {
	now := srv.now()
	if input.ScheduledAt.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scheduledAt is required")
	}
	if !input.ScheduledAt.After(now) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("handover must be scheduled in the future")
	}
	if input.ScheduledAt.After(now.Add(entity.AdoptionHandoverWindow)) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("handover must be within 30 days")
	}

	var otp string
	app, err := srv.transition(ctx, id, "schedule handover", func(app *entity.AdoptionApplication, pet *entity.AdoptionPet) error {
		if !app.ReadyForHandover() {
			return domainerrors.ErrInvalidStatus.WithDetails("application must be approved and paid")
		}
		if pet == nil {
			return domainerrors.ErrPetNotFound
		}

		scheduledAt := input.ScheduledAt
		app.Handover.ScheduledAt = &scheduledAt
		app.Handover.Location = strings.TrimSpace(input.Location)
		if app.Handover.Location == "" {
			app.Handover.Location = entity.AdoptionHandoverLocation
		}
		app.Handover.Notes = strings.TrimSpace(input.Notes)
		app.Handover.Status = entity.HandoverScheduled

		code, err := srv.issueOTP(app)
		if err != nil {
			return err
		}
		otp = code

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Adoption handover scheduled",
		slog.String("applicationID", app.ID.String()),
		slog.Time("scheduledAt", input.ScheduledAt),
		slog.String("by", actor.UserID.String()),
	)
	srv.notifyHandoverOTP(ctx, app, "Handover scheduled",
		"Meet us at "+app.Handover.Location+" on "+input.ScheduledAt.Format("02 Jan 2006 15:04")+". Your handover code is "+otp, otp)

	return app, nil
}

// RegenerateHandoverOTP issues a new code. Earlier codes stop being accepted.
func (srv *adoptionService) RegenerateHandoverOTP(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.AdoptionApplication, error) {
	var otp string
	app, err := srv.transition(ctx, id, "regenerate handover otp", func(app *entity.AdoptionApplication, _ *entity.AdoptionPet) error {
		if app.Status != entity.ApplicationApproved || !app.Handover.IsScheduled() {
			return domainerrors.ErrInvalidStatus.WithDetails("handover is not scheduled")
		}

		code, err := srv.issueOTP(app)
		if err != nil {
			return err
		}
		otp = code

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Adoption handover code regenerated",
		slog.String("applicationID", app.ID.String()),
		slog.String("by", actor.UserID.String()),
	)
	srv.notifyHandoverOTP(ctx, app, "New handover code", "Your new handover code is "+otp, otp)

	return app, nil
}

// CompleteHandover checks otp against the latest unused code, marks the pet adopted,
// registers it to the adopter and issues the certificate. A wrong code changes nothing.
func (srv *adoptionService) CompleteHandover(ctx context.Context, actor *usecase.Actor, id uuid.UUID, otp string) (*entity.AdoptionApplication, error) {
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return nil, domainerrors.ErrOTPInvalid.WithDetails("otp is required")
	}

	app, err := srv.transitionWith(ctx, id, "complete handover", func(repoFactory repository.RepositoryFactory, app *entity.AdoptionApplication, pet *entity.AdoptionPet) error {
		if !app.ReadyForHandover() {
			return domainerrors.ErrInvalidStatus.WithDetails("application must be approved and paid")
		}
		if !app.Handover.IsScheduled() {
			return domainerrors.ErrInvalidStatus.WithDetails("handover is not scheduled")
		}
		if pet == nil {
			return domainerrors.ErrPetNotFound
		}

		now := srv.now()
		if err := redeemHandoverOTP(&app.Handover, otp, now); err != nil {
			return err
		}

		if _, err := registerTransferredPet(ctx, repoFactory, adoptedPetTransfer(app, pet, now), now); err != nil {
			return err
		}

		number, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixCertificate, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate certificate number")
		}

		certificate, err := srv.issueCertificate(ctx, number, now)
		if err != nil {
			return err
		}

		app.Status = entity.ApplicationCompleted
		app.Certificate = certificate
		app.CompletedAt = &now
		pet.Status = entity.PetAdopted
		pet.AdopterUserID = &app.UserID

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Adoption completed",
		slog.String("applicationID", app.ID.String()),
		slog.String("certificate", app.Certificate.Number),
		slog.String("by", actor.UserID.String()),
	)
	srv.notifyApplicant(ctx, app, "Adoption complete", "Certificate "+app.Certificate.Number+" has been issued.")

	return app, nil
}

func (srv *adoptionService) issueOTP(app *entity.AdoptionApplication) (string, error) {
	return issueHandoverOTP(&app.Handover, srv.now(), entity.AdoptionHandoverOTPTTL, entity.AdoptionHandoverOTPHistory)
}

func (srv *adoptionService) notifyHandoverOTP(ctx context.Context, app *entity.AdoptionApplication, title, body, otp string) {
	srv.notifier.notify(ctx, entity.NotificationHandoverOTP, []uuid.UUID{app.UserID}, title, body, map[string]string{
		"applicationId": app.ID.String(),
		"status":        string(app.Status),
		"otp":           otp,
	})
}

// adoptedPetTransfer carries an adoption listing into the registry. Shelter animals keep
// no registry code, so every adoption opens a new entry.
func adoptedPetTransfer(app *entity.AdoptionApplication, pet *entity.AdoptionPet, now time.Time) petTransfer {
	template := entity.Pet{
		Name:    pet.Name,
		Species: pet.Species,
		Breed:   pet.Breed,
		Gender:  pet.Gender,
		Color:   pet.Color,
		Images:  pet.Images,
	}
	if dob, ok := estimateBirthDate(pet.Age, pet.AgeUnit, now); ok {
		template.DateOfBirth = &dob
	}
	for _, vaccine := range pet.Vaccinations {
		template.Vaccinations = append(template.Vaccinations, entity.VaccinationRecord{Name: vaccine, Date: now})
	}
	ref := pet.ID
	template.SourceRef = &ref

	return petTransfer{
		template: template,
		newOwner: app.UserID,
		kind:     entity.PetSourceAdoption,
		price:    pet.AdoptionFee,
		reason:   "Adopted with application " + app.ID.String(),
	}
}

func estimateBirthDate(age int, unit string, now time.Time) (time.Time, bool) {
	if age <= 0 {
		return time.Time{}, false
	}

	switch unit {
	case "weeks":
		return now.AddDate(0, 0, -7*age), true
	case "years":
		return now.AddDate(-age, 0, 0), true
	default:
		return now.AddDate(0, -age, 0), true
	}
}

func (srv *adoptionService) ListCertificates(ctx context.Context) ([]*entity.AdoptionApplication, error) {
	var apps []*entity.AdoptionApplication
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AdoptionApplicationRepo().ListWithCertificates(ctx)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list certificates")
		}
		apps = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list certificates")
	}

	slices.SortFunc(apps, func(a, b *entity.AdoptionApplication) int {
		return b.Certificate.IssuedAt.Compare(a.Certificate.IssuedAt)
	})

	return apps, nil
}

func (srv *adoptionService) VerifyCertificate(ctx context.Context, number string) (*usecase.ApplicationView, error) {
	apps, err := srv.ListCertificates(ctx)
	if err != nil {
		return nil, err
	}

	for _, app := range apps {
		if strings.EqualFold(app.Certificate.Number, strings.TrimSpace(number)) {
			return srv.GetApplication(ctx, app.ID)
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("certificate " + number + " was not issued")
}

// issueCertificate renders the verification QR code and stores it next to the other certificates.
func (srv *adoptionService) issueCertificate(ctx context.Context, number string, at time.Time) (*entity.AdoptionCertificate, error) {
	verifyURL := srv.qrCode.Link("/api/adoption/certificates/" + number + "/verify")

	png, err := srv.qrCode.Encode(verifyURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render certificate qr code")
	}

	stored, err := srv.storage.Save(ctx, "adoption/certificates/"+number+".png", "image/png", bytes.NewReader(png))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store certificate qr code")
	}

	return &entity.AdoptionCertificate{
		Number:   number,
		URL:      verifyURL,
		QRURL:    stored.URL,
		IssuedAt: at,
	}, nil
}

func (srv *adoptionService) transition(
	ctx context.Context,
	id uuid.UUID,
	op string,
	change func(*entity.AdoptionApplication, *entity.AdoptionPet) error,
) (*entity.AdoptionApplication, error) {
	return srv.transitionWith(ctx, id, op, func(_ repository.RepositoryFactory, app *entity.AdoptionApplication, pet *entity.AdoptionPet) error {
		return change(app, pet)
	})
}

// transitionWith loads an application and its pet, applies change and saves both in one transaction.
// pet is nil when the listing has been deleted.
func (srv *adoptionService) transitionWith(
	ctx context.Context,
	id uuid.UUID,
	op string,
	change func(repository.RepositoryFactory, *entity.AdoptionApplication, *entity.AdoptionPet) error,
) (*entity.AdoptionApplication, error) {
	var updated *entity.AdoptionApplication
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appRepo := repoFactory.AdoptionApplicationRepo()
		petRepo := repoFactory.AdoptionPetRepo()

		app, err := appRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrApplicationNotFound, "find application")
		}

		pet, err := petRepo.FindByID(ctx, app.PetID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return domainerrors.FromRepository(err, nil, "find adoption pet")
		}

		petBefore := petSnapshot(pet)
		if err := change(repoFactory, app, pet); err != nil {
			return err
		}

		now := srv.now()
		app.UpdatedAt = now
		if err := appRepo.Update(ctx, app); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}

		if pet != nil && petSnapshot(pet) != petBefore {
			pet.UpdatedAt = now
			if err := petRepo.Update(ctx, pet); err != nil {
				return domainerrors.FromRepository(err, nil, op)
			}
		}
		updated = app

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return updated, nil
}

func (srv *adoptionService) updatePet(ctx context.Context, id uuid.UUID, op string, change func(*entity.AdoptionPet) error) (*entity.AdoptionPet, error) {
	var updated *entity.AdoptionPet
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		petRepo := repoFactory.AdoptionPetRepo()

		pet, err := petRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPetNotFound, "find adoption pet")
		}
		if err := change(pet); err != nil {
			return err
		}
		if err := petRepo.Update(ctx, pet); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		updated = pet

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return updated, nil
}

func (srv *adoptionService) notifyApplicant(ctx context.Context, app *entity.AdoptionApplication, title, body string) {
	srv.notifier.notify(ctx, entity.NotificationApplicationStatus, []uuid.UUID{app.UserID}, title, body, map[string]string{
		"applicationId": app.ID.String(),
		"status":        string(app.Status),
	})
}

// releasePet returns a pet reserved for app to the catalogue.
func releasePet(pet *entity.AdoptionPet, app *entity.AdoptionApplication) {
	if pet == nil || pet.Status != entity.PetReserved {
		return
	}
	if pet.AdopterUserID != nil && *pet.AdopterUserID != app.UserID {
		return
	}

	pet.Status = entity.PetAvailable
	pet.AdopterUserID = nil
}

type petState struct {
	status  entity.AdoptionPetStatus
	adopter uuid.UUID
}

func petSnapshot(pet *entity.AdoptionPet) petState {
	if pet == nil {
		return petState{}
	}
	state := petState{status: pet.Status}
	if pet.AdopterUserID != nil {
		state.adopter = *pet.AdopterUserID
	}

	return state
}

var (
	petGenders  = []string{"Male", "Female", "Unknown"}
	petAgeUnits = []string{"weeks", "months", "years"}
)

func validatePetInput(input usecase.AdoptionPetInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Species) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and species are required")
	}
	if input.Age < 0 || input.AdoptionFee < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("age and adoptionFee cannot be negative")
	}
	if input.AgeUnit != "" && !slices.Contains(petAgeUnits, input.AgeUnit) {
		return domainerrors.ErrValidationFailed.WithDetails("ageUnit must be weeks, months or years")
	}
	if input.Gender != "" && !slices.Contains(petGenders, input.Gender) {
		return domainerrors.ErrValidationFailed.WithDetails("gender must be Male, Female or Unknown")
	}

	return nil
}

func applyPetInput(pet *entity.AdoptionPet, input usecase.AdoptionPetInput, now time.Time) {
	pet.Name = strings.TrimSpace(input.Name)
	pet.Species = strings.TrimSpace(input.Species)
	pet.Breed = input.Breed
	pet.Age = input.Age
	pet.AgeUnit = input.AgeUnit
	if pet.AgeUnit == "" {
		pet.AgeUnit = "months"
	}
	pet.Gender = input.Gender
	if pet.Gender == "" {
		pet.Gender = "Unknown"
	}
	pet.Color = input.Color
	pet.Size = input.Size
	pet.Description = input.Description
	pet.HealthStatus = input.HealthStatus
	pet.Vaccinations = input.Vaccinations
	pet.Images = compactStrings(input.Images)
	pet.AdoptionFee = input.AdoptionFee
	pet.UpdatedAt = now
}
