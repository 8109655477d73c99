package impl

import (
	"context"
	"log/slog"
	"slices"
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

type petService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// PetServiceParams holds dependencies for PetService, injected by Fx.
type PetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		txManager: params.TxManager,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *petService) ListMyPets(ctx context.Context, actor *usecase.Actor, filter entity.PetFilter, page entity.PageRequest) (*entity.Page[*entity.Pet], error) {
	page = page.Normalize()
	filter.OwnerID = &actor.UserID

	var result *entity.Page[*entity.Pet]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pets, total, err := repoFactory.PetRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list pets")
		}
		result = newPage(pets, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return result, nil
}

func (srv *petService) GetMyPet(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Pet, error) {
	var pet *entity.Pet
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOwnedPet(ctx, repoFactory.PetRepo(), actor.UserID, id)
		if err != nil {
			return err
		}
		pet = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pet")
	}

	return pet, nil
}

func (srv *petService) CreatePet(ctx context.Context, actor *usecase.Actor, input usecase.PetInput) (*entity.Pet, error) {
	if err := validateOwnedPetInput(&input, srv.now()); err != nil {
		return nil, err
	}

	now := srv.now()
	pet := &entity.Pet{
		ID:        uuid.New(),
		Source:    entity.PetSourceOwner,
		CreatedAt: now,
	}
	applyOwnedPetInput(pet, input)
	pet.TransferTo(actor.UserID, entity.PetSourceOwner, 0, "Registered by owner", now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		code, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixPetCode, now)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "allocate pet code")
		}
		pet.PetCode = code

		return domainerrors.FromRepository(repoFactory.PetRepo().Create(ctx, pet), nil, "create pet")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pet")
	}

	srv.log(ctx).Info("Pet registered",
		slog.String("petCode", pet.PetCode),
		slog.String("species", pet.Species),
	)

	return pet, nil
}

func (srv *petService) UpdatePet(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.PetInput) (*entity.Pet, error) {
	if err := validateOwnedPetInput(&input, srv.now()); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, actor, id, "update pet", func(pet *entity.Pet) error {
		applyOwnedPetInput(pet, input)

		return nil
	})
}

func (srv *petService) DeletePet(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		petRepo := repoFactory.PetRepo()
		if _, err := findOwnedPet(ctx, petRepo, actor.UserID, id); err != nil {
			return err
		}

		return domainerrors.FromRepository(petRepo.Delete(ctx, id), domainerrors.ErrOwnedPetNotFound, "delete pet")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete pet")
	}

	srv.log(ctx).Info("Pet removed from registry", slog.String("petId", id.String()))

	return nil
}

func (srv *petService) AddMedicalRecord(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.MedicalRecordInput) (*entity.Pet, error) {
	now := srv.now()
	if strings.TrimSpace(input.Condition) == "" || input.Date.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date and condition are required")
	}
	if input.Date.After(now) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("medical record date cannot be in the future")
	}
	if input.FollowUpAt != nil && input.FollowUpAt.Before(input.Date) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("followUpAt must be after the record date")
	}

	return srv.mutate(ctx, actor, id, "add medical record", func(pet *entity.Pet) error {
		pet.MedicalHistory = append(pet.MedicalHistory, entity.MedicalRecord{
			Date:         input.Date,
			Condition:    strings.TrimSpace(input.Condition),
			Diagnosis:    strings.TrimSpace(input.Diagnosis),
			Treatment:    strings.TrimSpace(input.Treatment),
			Veterinarian: strings.TrimSpace(input.Veterinarian),
			Notes:        strings.TrimSpace(input.Notes),
			RecordedBy:   actor.UserID,
			RecordedAt:   now,
			FollowUpAt:   input.FollowUpAt,
		})

		return nil
	})
}

func (srv *petService) AddVaccination(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input usecase.VaccinationInput) (*entity.Pet, error) {
	if strings.TrimSpace(input.Name) == "" || input.Date.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vaccine name and date are required")
	}
	if input.Date.After(srv.now()) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vaccination date cannot be in the future")
	}
	if input.NextDueDate != nil && !input.NextDueDate.After(input.Date) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nextDueDate must be after the vaccination date")
	}

	return srv.mutate(ctx, actor, id, "add vaccination", func(pet *entity.Pet) error {
		pet.Vaccinations = append(pet.Vaccinations, entity.VaccinationRecord{
			Name:         strings.TrimSpace(input.Name),
			Date:         input.Date,
			NextDueDate:  input.NextDueDate,
			Veterinarian: strings.TrimSpace(input.Veterinarian),
			BatchNumber:  strings.TrimSpace(input.BatchNumber),
		})

		return nil
	})
}

func (srv *petService) OwnershipHistory(ctx context.Context, actor *usecase.Actor, id uuid.UUID) ([]entity.OwnershipTransfer, error) {
	pet, err := srv.GetMyPet(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return pet.OwnershipHistory, nil
}

func (srv *petService) ListSpecies(_ context.Context) []entity.Species {
	return entity.SpeciesCatalog()
}

func (srv *petService) ListBreeds(_ context.Context, species string) ([]string, error) {
	found, ok := entity.LookupSpecies(species)
	if !ok {
		return nil, domainerrors.ErrUnknownSpecies.WithDetails(species)
	}

	return found.Breeds, nil
}

func (srv *petService) mutate(ctx context.Context, actor *usecase.Actor, id uuid.UUID, op string, change func(*entity.Pet) error) (*entity.Pet, error) {
	var pet *entity.Pet
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		petRepo := repoFactory.PetRepo()

		found, err := findOwnedPet(ctx, petRepo, actor.UserID, id)
		if err != nil {
			return err
		}
		if err := change(found); err != nil {
			return err
		}

		found.UpdatedAt = srv.now()
		if err := petRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrOwnedPetNotFound, op)
		}
		pet = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return pet, nil
}

// findOwnedPet loads a registry pet and hides pets that belong to someone else.
func findOwnedPet(ctx context.Context, petRepo repository.PetRepository, ownerID, id uuid.UUID) (*entity.Pet, error) {
	pet, err := petRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.FromRepository(err, domainerrors.ErrOwnedPetNotFound, "find pet")
	}
	if pet.OwnerID != ownerID {
		return nil, domainerrors.ErrOwnedPetNotFound
	}

	return pet, nil
}

func validateOwnedPetInput(input *usecase.PetInput, now time.Time) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || strings.TrimSpace(input.Species) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and species are required")
	}
	species, ok := entity.LookupSpecies(input.Species)
	if !ok {
		return domainerrors.ErrUnknownSpecies.WithDetails(input.Species)
	}
	input.Species = species.Key

	if input.Gender == "" {
		input.Gender = "Unknown"
	}
	if !slices.Contains(petGenders, input.Gender) {
		return domainerrors.ErrValidationFailed.WithDetails("gender must be Male, Female or Unknown")
	}
	if input.DateOfBirth != nil && input.DateOfBirth.After(now) {
		return domainerrors.ErrValidationFailed.WithDetails("dateOfBirth cannot be in the future")
	}
	if input.WeightKg < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("weightKg cannot be negative")
	}

	return nil
}

func applyOwnedPetInput(pet *entity.Pet, input usecase.PetInput) {
	pet.Name = input.Name
	pet.Species = input.Species
	pet.Breed = strings.TrimSpace(input.Breed)
	pet.Gender = input.Gender
	pet.DateOfBirth = input.DateOfBirth
	pet.Color = strings.TrimSpace(input.Color)
	pet.WeightKg = round2(input.WeightKg)
	pet.MicrochipID = strings.TrimSpace(input.MicrochipID)
	pet.Images = compactStrings(input.Images)
}

// petTransfer describes a pet changing hands through adoption or a shop sale.
type petTransfer struct {
	code     string
	template entity.Pet
	newOwner uuid.UUID
	kind     entity.PetSource
	price    float64
	reason   string
}

// registerTransferredPet moves an existing registry entry to the new owner, or creates one.
// A blank code always creates a new entry with a fresh PET code.
func registerTransferredPet(ctx context.Context, repoFactory repository.RepositoryFactory, transfer petTransfer, now time.Time) (*entity.Pet, error) {
	petRepo := repoFactory.PetRepo()

	if transfer.code != "" {
		existing, err := petRepo.FindByCode(ctx, transfer.code)
		switch {
		case err == nil:
			existing.TransferTo(transfer.newOwner, transfer.kind, transfer.price, transfer.reason, now)
			if err := petRepo.Update(ctx, existing); err != nil {
				return nil, domainerrors.FromRepository(err, nil, "transfer pet")
			}

			return existing, nil
		case !errors.Is(err, repository.ErrNotFound):
			return nil, domainerrors.FromRepository(err, nil, "find pet by code")
		}
	}

	pet := transfer.template
	pet.ID = uuid.New()
	pet.PetCode = transfer.code
	pet.Species = strings.ToLower(strings.TrimSpace(pet.Species))
	if species, ok := entity.LookupSpecies(pet.Species); ok {
		pet.Species = species.Key
	}
	pet.Gender = normalizeGender(pet.Gender)
	pet.Source = transfer.kind
	pet.CreatedAt = now
	pet.TransferTo(transfer.newOwner, transfer.kind, transfer.price, transfer.reason, now)

	if pet.PetCode == "" {
		code, err := nextNumber(ctx, repoFactory.SequenceRepo(), entity.PrefixPetCode, now)
		if err != nil {
			return nil, domainerrors.FromRepository(err, nil, "allocate pet code")
		}
		pet.PetCode = code
	}
	if err := petRepo.Create(ctx, &pet); err != nil {
		return nil, domainerrors.FromRepository(err, nil, "register pet")
	}

	return &pet, nil
}
