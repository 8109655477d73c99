package postgres

import (
	"context"

	"petwelfare/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const nextSequenceSQL = `INSERT INTO sequences ("key", "value", updated_at) VALUES (?, 1, NOW())
ON CONFLICT ("key") DO UPDATE SET "value" = sequences."value" + 1, updated_at = NOW()
RETURNING "value"`

// sequenceRepository issues per-key counters with a single upsert, so concurrent callers
// never observe the same value.
type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository is the constructor for sequenceRepository.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

func (repo *sequenceRepository) Next(ctx context.Context, key string) (int64, error) {
	var value int64
	// Counters must never be read from a replica.
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Raw(nextSequenceSQL, key).Scan(&value).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to advance sequence %s", key)
	}

	return value, nil
}
