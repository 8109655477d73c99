// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"petwelfare/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic and let the caller's recovery handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) PasswordResetRepo() repository.PasswordResetRepository {
	return NewPasswordResetRepository(f.tx)
}

func (f *gormRepositoryFactory) RoleRepo() repository.RoleRepository {
	return NewRoleRepository(f.tx)
}

func (f *gormRepositoryFactory) PermissionRepo() repository.PermissionRepository {
	return NewPermissionRepository(f.tx)
}

func (f *gormRepositoryFactory) PetRepo() repository.PetRepository {
	return NewPetRepository(f.tx)
}

func (f *gormRepositoryFactory) AdoptionPetRepo() repository.AdoptionPetRepository {
	return NewAdoptionPetRepository(f.tx)
}

func (f *gormRepositoryFactory) AdoptionApplicationRepo() repository.AdoptionApplicationRepository {
	return NewAdoptionApplicationRepository(f.tx)
}

func (f *gormRepositoryFactory) InventoryRepo() repository.InventoryRepository {
	return NewInventoryRepository(f.tx)
}

func (f *gormRepositoryFactory) ReservationRepo() repository.ReservationRepository {
	return NewReservationRepository(f.tx)
}

func (f *gormRepositoryFactory) AppointmentRepo() repository.AppointmentRepository {
	return NewAppointmentRepository(f.tx)
}

func (f *gormRepositoryFactory) MedicineRepo() repository.MedicineRepository {
	return NewMedicineRepository(f.tx)
}

func (f *gormRepositoryFactory) PrescriptionRepo() repository.PrescriptionRepository {
	return NewPrescriptionRepository(f.tx)
}

func (f *gormRepositoryFactory) PharmacyOrderRepo() repository.PharmacyOrderRepository {
	return NewPharmacyOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) RescueRepo() repository.RescueRepository {
	return NewRescueRepository(f.tx)
}

func (f *gormRepositoryFactory) ShelterRepo() repository.ShelterRepository {
	return NewShelterRepository(f.tx)
}

func (f *gormRepositoryFactory) CareServiceRepo() repository.CareServiceRepository {
	return NewCareServiceRepository(f.tx)
}

func (f *gormRepositoryFactory) CareBookingRepo() repository.CareBookingRepository {
	return NewCareBookingRepository(f.tx)
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *gormRepositoryFactory) CartRepo() repository.CartRepository {
	return NewCartRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

func (f *gormRepositoryFactory) SequenceRepo() repository.SequenceRepository {
	return NewSequenceRepository(f.tx)
}
