package postgres

import (
	"context"
	"fmt"
	"strings"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Statements run after AutoMigrate. Partial indexes cannot be expressed in struct tags.
var postMigrateStatements = []string{
	`DROP INDEX IF EXISTS uniq_vet_live_slot`,
	vetSlotIndexStatement(),
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_shelter_kennel_resident ON shelter_animals (kennel)
		WHERE kennel <> '' AND status IN ('sheltered', 'medical_care', 'ready_for_adoption')`,
}

// Migrate creates the uuid_generate_v7 extension and brings every table up to date.
func Migrate(ctx context.Context, db *gorm.DB) error {
	conn := db.WithContext(ctx)

	if err := conn.Exec(`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`).Error; err != nil {
		return errors.Wrap(err, "failed to create pg_uuidv7 extension")
	}

	if err := conn.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto migrate")
	}

	for _, stmt := range postMigrateStatements {
		if err := conn.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to run post migrate statement")
		}
	}

	return nil
}

// vetSlotIndexStatement keeps the database in step with SlotTaken: only appointments
// holding a named slot in a blocking status are unique per store and day.
func vetSlotIndexStatement() string {
	quoted := make([]string, 0, len(entity.SlotBlockingStatuses))
	for _, name := range statusNames(entity.SlotBlockingStatuses) {
		quoted = append(quoted, "'"+name+"'")
	}

	return fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_vet_held_slot ON vet_appointments (store_id, appointment_date, time_slot)
		WHERE time_slot <> '' AND status IN (%s) AND deleted_at IS NULL`, strings.Join(quoted, ", "))
}
