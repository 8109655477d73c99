package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shelterService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// ShelterServiceParams holds dependencies for ShelterService, injected by Fx.
type ShelterServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewShelterService is the constructor for shelterService.
func NewShelterService(params ShelterServiceParams) usecase.ShelterUsecase {
	return &shelterService{
		txManager: params.TxManager,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *shelterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Intake admits an animal. When it comes from a rescued report, the report is closed with a note.
func (srv *shelterService) Intake(ctx context.Context, actor *usecase.Actor, input usecase.IntakeInput) (*entity.ShelterAnimal, error) {
	if input.RescueReportID != nil {
		input.IntakeSource = entity.IntakeRescue
	}
	if err := validateIntake(input); err != nil {
		return nil, err
	}

	now := srv.now()
	animal := &entity.ShelterAnimal{
		ID:             uuid.New(),
		IntakeDate:     input.IntakeDate,
		IntakeSource:   input.IntakeSource,
		RescueReportID: input.RescueReportID,
		Kennel:         strings.TrimSpace(input.Kennel),
		Status:         entity.ShelterSheltered,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
	}
	if animal.IntakeDate.IsZero() {
		animal.IntakeDate = now
	}
	applyIntake(animal, input, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shelterRepo := repoFactory.ShelterRepo()

		if animal.Kennel != "" {
			if err := checkKennelFree(ctx, shelterRepo, animal.Kennel, animal.ID); err != nil {
				return err
			}
		}

		number, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixShelterIntake, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate intake number")
		}
		animal.IntakeNumber = number

		if animal.RescueReportID != nil {
			if err := closeRescueReport(ctx, repoFactory.RescueRepo(), *animal.RescueReportID, actor.UserID, number, now); err != nil {
				return err
			}
		}

		return domainerrors.FromRepository(shelterRepo.Create(ctx, animal), nil, "create shelter animal")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to admit animal")
	}

	srv.log(ctx).Info("Animal admitted",
		slog.String("intakeNumber", animal.IntakeNumber),
		slog.String("source", string(animal.IntakeSource)),
		slog.String("kennel", animal.Kennel),
	)

	return animal, nil
}

func closeRescueReport(ctx context.Context, rescueRepo repository.RescueRepository, id, authorID uuid.UUID, intakeNumber string, now time.Time) error {
	report, err := rescueRepo.FindByID(ctx, id)
	if err != nil {
		return domainerrors.FromRepository(err, domainerrors.ErrRescueNotFound, "find rescue report")
	}
	if report.Status != entity.RescueRescued {
		return domainerrors.ErrInvalidStatus.WithDetails("only rescued reports can be admitted, report is " + string(report.Status))
	}

	report.Status = entity.RescueClosed
	report.Notes = append(report.Notes, entity.RescueNote{AuthorID: authorID, Text: "Admitted to shelter as " + intakeNumber, At: now})
	report.UpdatedAt = now

	return domainerrors.FromRepository(rescueRepo.Update(ctx, report), nil, "close rescue report")
}

func checkKennelFree(ctx context.Context, shelterRepo repository.ShelterRepository, kennel string, self uuid.UUID) error {
	resident, err := shelterRepo.FindResidentInKennel(ctx, kennel)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return domainerrors.FromRepository(err, nil, "find kennel resident")
	case resident.ID != self:
		return domainerrors.ErrKennelOccupied.WithDetails("kennel " + kennel + " holds " + resident.IntakeNumber)
	}

	return nil
}

func (srv *shelterService) ListAnimals(ctx context.Context, filter entity.ShelterFilter, page entity.PageRequest) (*entity.Page[*entity.ShelterAnimal], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.ShelterAnimal]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		animals, total, err := repoFactory.ShelterRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list shelter animals")
		}
		result = newPage(animals, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shelter animals")
	}

	return result, nil
}

func (srv *shelterService) GetAnimal(ctx context.Context, id uuid.UUID) (*entity.ShelterAnimal, error) {
	var animal *entity.ShelterAnimal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ShelterRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrAnimalNotFound, "find shelter animal")
		}
		animal = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get shelter animal")
	}

	return animal, nil
}

func (srv *shelterService) UpdateAnimal(ctx context.Context, _ *usecase.Actor, id uuid.UUID, input usecase.IntakeInput) (*entity.ShelterAnimal, error) {
	if strings.TrimSpace(input.Species) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("species is required")
	}
	if input.EstimatedAgeMonths < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("estimatedAgeMonths cannot be negative")
	}

	return srv.mutate(ctx, id, "update shelter animal", func(_ repository.RepositoryFactory, animal *entity.ShelterAnimal) error {
		applyIntake(animal, input, srv.now())

		return nil
	})
}

func (srv *shelterService) AssignKennel(ctx context.Context, _ *usecase.Actor, id uuid.UUID, kennel string) (*entity.ShelterAnimal, error) {
	kennel = strings.TrimSpace(kennel)
	if kennel == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kennel is required")
	}

	return srv.mutate(ctx, id, "assign kennel", func(repoFactory repository.RepositoryFactory, animal *entity.ShelterAnimal) error {
		if !animal.Status.IsResident() {
			return domainerrors.ErrInvalidStatus.WithDetails("animal has left the shelter")
		}
		if err := checkKennelFree(ctx, repoFactory.ShelterRepo(), kennel, animal.ID); err != nil {
			return err
		}
		animal.Kennel = kennel

		return nil
	})
}

// UpdateStatus moves a resident between care states or records a death. Leaving the shelter frees the kennel.
// Transfers go through TransferToAdoption.
func (srv *shelterService) UpdateStatus(ctx context.Context, _ *usecase.Actor, id uuid.UUID, status entity.ShelterStatus, notes string) (*entity.ShelterAnimal, error) {
	switch status {
	case entity.ShelterSheltered, entity.ShelterMedicalCare, entity.ShelterReadyForAdoption, entity.ShelterDeceased:
	case entity.ShelterTransferred:
		return nil, domainerrors.ErrValidationFailed.WithDetails("use transfer-to-adoption to transfer an animal")
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	return srv.mutate(ctx, id, "update shelter status", func(_ repository.RepositoryFactory, animal *entity.ShelterAnimal) error {
		if !animal.Status.IsResident() {
			return domainerrors.ErrInvalidStatus.WithDetails("animal is " + string(animal.Status))
		}
		animal.Status = status
		if !status.IsResident() {
			animal.Kennel = ""
		}
		if notes = strings.TrimSpace(notes); notes != "" {
			animal.Notes = appendLine(animal.Notes, notes)
		}

		return nil
	})
}

func (srv *shelterService) TransferToAdoption(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.TransferInput) (*usecase.TransferResult, error) {
	if input.AdoptionFee < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("adoptionFee cannot be negative")
	}

	var pet *entity.AdoptionPet
	animal, err := srv.mutate(ctx, id, "transfer to adoption", func(repoFactory repository.RepositoryFactory, animal *entity.ShelterAnimal) error {
		if animal.AdoptionPetID != nil {
			return domainerrors.ErrAlreadyAdoption
		}
		if animal.Status != entity.ShelterSheltered && animal.Status != entity.ShelterReadyForAdoption {
			return domainerrors.ErrInvalidStatus.WithDetails("animal is " + string(animal.Status))
		}

		petInput := usecase.AdoptionPetInput{
			Name:         animal.Name,
			Species:      animal.Species,
			Breed:        animal.Breed,
			Age:          animal.EstimatedAgeMonths,
			AgeUnit:      "months",
			Gender:       normalizeGender(animal.Gender),
			Color:        input.Color,
			Size:         input.Size,
			Description:  input.Description,
			HealthStatus: animal.HealthStatus,
			Vaccinations: input.Vaccinations,
			Images:       animal.Images,
			AdoptionFee:  input.AdoptionFee,
		}
		if strings.TrimSpace(petInput.Name) == "" {
			petInput.Name = animal.IntakeNumber
		}
		if err := validatePetInput(petInput); err != nil {
			return err
		}

		now := srv.now()
		pet = &entity.AdoptionPet{
			ID:              uuid.New(),
			Status:          entity.PetAvailable,
			ShelterAnimalID: &animal.ID,
			CreatedBy:       actor.UserID,
			IsActive:        true,
			CreatedAt:       now,
		}
		applyPetInput(pet, petInput, now)
		if err := repoFactory.AdoptionPetRepo().Create(ctx, pet); err != nil {
			return domainerrors.FromRepository(err, nil, "create adoption pet")
		}

		animal.AdoptionPetID = &pet.ID
		animal.Status = entity.ShelterTransferred
		animal.Kennel = ""

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Animal transferred to adoption",
		slog.String("intakeNumber", animal.IntakeNumber),
		slog.String("petID", pet.ID.String()),
	)

	return &usecase.TransferResult{Animal: animal, Pet: pet}, nil
}

func (srv *shelterService) mutate(
	ctx context.Context,
	id uuid.UUID,
	op string,
	change func(repository.RepositoryFactory, *entity.ShelterAnimal) error,
) (*entity.ShelterAnimal, error) {
	var animal *entity.ShelterAnimal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shelterRepo := repoFactory.ShelterRepo()

		found, err := shelterRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrAnimalNotFound, "find shelter animal")
		}
		if err := change(repoFactory, found); err != nil {
			return err
		}

		found.UpdatedAt = srv.now()
		if err := shelterRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		animal = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return animal, nil
}

func validateIntake(input usecase.IntakeInput) error {
	if strings.TrimSpace(input.Species) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("species is required")
	}
	if input.EstimatedAgeMonths < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("estimatedAgeMonths cannot be negative")
	}
	switch input.IntakeSource {
	case entity.IntakeStray, entity.IntakeSurrender, entity.IntakeRescue, entity.IntakeTransfer:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("intakeSource must be stray, surrender, rescue or transfer")
	}

	return nil
}

func applyIntake(animal *entity.ShelterAnimal, input usecase.IntakeInput, now time.Time) {
	animal.Name = strings.TrimSpace(input.Name)
	animal.Species = strings.TrimSpace(input.Species)
	animal.Breed = input.Breed
	animal.Gender = input.Gender
	animal.EstimatedAgeMonths = input.EstimatedAgeMonths
	animal.HealthStatus = input.HealthStatus
	animal.Images = compactStrings(input.Images)
	animal.Notes = input.Notes
	animal.UpdatedAt = now
}

// normalizeGender maps free-form shelter genders onto the adoption listing values.
func normalizeGender(gender string) string {
	for _, known := range petGenders {
		if strings.EqualFold(strings.TrimSpace(gender), known) {
			return known
		}
	}

	return "Unknown"
}

func appendLine(text, line string) string {
	if text == "" {
		return line
	}

	return text + "\n" + line
}
