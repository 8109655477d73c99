package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestSequenceRepository_Next(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSequenceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sequences`)).
		WithArgs("ORD-20260101").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(7)))

	value, err := repo.Next(context.Background(), "ORD-20260101")
	require.NoError(t, err)
	assert.Equal(t, int64(7), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSequenceRepository_NextError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSequenceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sequences`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Next(context.Background(), "RSC-20260101")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RSC-20260101")
}

func TestProductRepository_ReserveStock(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "enough stock", affected: 1},
		{name: "guard rejects", affected: 0, wantErr: repository.ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewProductRepository(db)

			mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET`)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.ReserveStock(context.Background(), uuid.New(), 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_ReleaseStockIgnoresSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$\d+ AND stock_reserved >= \$\d+$`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$\d+ AND stock_reserved >= \$\d+$`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReleaseStock(context.Background(), uuid.New(), 2))
	require.NoError(t, repo.ConsumeReserved(context.Background(), uuid.New(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_SlotTakenUsesBlockingStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "vet_appointments" WHERE (store_id = $1 AND appointment_date = $2 AND time_slot = $3) AND status IN ($4,$5,$6,$7)`)).
		WithArgs("store-1", day, "10:00", "scheduled", "confirmed", "in_progress", "completed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.SlotTaken(context.Background(), "store-1", day, "10:00")
	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_BookedSlotsSkipsSlotless(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "time_slot" FROM "vet_appointments" WHERE (store_id = $1 AND appointment_date = $2 AND time_slot <> '' AND status IN ($3,$4,$5,$6))`)).
		WillReturnRows(sqlmock.NewRows([]string{"time_slot"}).AddRow("09:30"))

	slots, err := repo.BookedSlots(context.Background(), "store-1", day, entity.SlotBlockingStatuses)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30"}, slots)
}

func TestVetSlotIndexStatement(t *testing.T) {
	stmt := vetSlotIndexStatement()

	assert.Contains(t, stmt, "(store_id, appointment_date, time_slot)")
	assert.Contains(t, stmt, "time_slot <> ''")
	assert.Contains(t, stmt, "status IN ('scheduled', 'confirmed', 'in_progress', 'completed')")
	// Emergencies wait in pending_approval, outside the index, so they never collide.
	assert.NotContains(t, stmt, "pending_approval")
	assert.Contains(t, postMigrateStatements, stmt)
	assert.Contains(t, postMigrateStatements, "DROP INDEX IF EXISTS uniq_vet_live_slot")
}

func TestPetRepository_FindByCodeNormalizes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPetRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "pets" WHERE pet_code = $1 AND "pets"."deleted_at" IS NULL`)).
		WithArgs("PET-20250310-0001", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	pet, err := repo.FindByCode(context.Background(), " pet-20250310-0001 ")
	assert.Nil(t, pet)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineRepository_DecrementStockInsufficient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMedicineRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "medicines" SET "stock_current"=stock_current - $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DecrementStock(context.Background(), uuid.New(), 5)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE LOWER(email) = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByEmail(context.Background(), "  Someone@Example.com ")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeviceRepository_EmptyInputsSkipQueries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	tokens, err := repo.FindActiveTokensByUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
	require.NoError(t, repo.DeactivateByTokens(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateWriteError(t *testing.T) {
	assert.NoError(t, translateWriteError(nil, "noop"))
	assert.ErrorIs(t, translateWriteError(gorm.ErrDuplicatedKey, "create"), repository.ErrDuplicate)
	assert.ErrorIs(t, translateWriteError(&pgconn.PgError{Code: pgUniqueViolation}, "create"), repository.ErrDuplicate)
	assert.ErrorIs(t, translateWriteError(&pgconn.PgError{Code: pgForeignKeyViolation}, "create"), repository.ErrNotFound)

	err := translateWriteError(errors.New("boom"), "create thing")
	assert.EqualError(t, err, "create thing: boom")
}

func TestTranslateReadError(t *testing.T) {
	assert.ErrorIs(t, translateReadError(gorm.ErrRecordNotFound, "find"), repository.ErrNotFound)
	assert.NotErrorIs(t, translateReadError(errors.New("timeout"), "find"), repository.ErrNotFound)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%dog%", likePattern(" dog "))
	assert.Equal(t, `%50\% off\_sale%`, likePattern("50% off_sale"))
}

func TestStatusNames(t *testing.T) {
	names := statusNames([]entity.CareBookingStatus{entity.CareConfirmed, entity.CareInProgress})
	assert.Equal(t, []string{"confirmed", "in_progress"}, names)
}
