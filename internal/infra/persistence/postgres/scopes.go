package postgres

import (
	"strings"

	"petwelfare/internal/domain/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func paginate(page entity.PageRequest) func(*gorm.DB) *gorm.DB {
	normalized := page.Normalize()

	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(normalized.Offset()).Limit(normalized.Limit)
	}
}

// findPage counts the rows matched by query, then loads one ordered page of them.
func findPage[M any](query *gorm.DB, page entity.PageRequest, order string) ([]*M, int64, error) {
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Model(new(M)).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rows")
	}

	var rows []*M
	if total == 0 {
		return rows, 0, nil
	}

	if err := base.Order(order).Scopes(paginate(page)).Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to load page")
	}

	return rows, total, nil
}

// likePattern escapes LIKE wildcards in term and wraps it for a contains match.
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + replacer.Replace(strings.TrimSpace(term)) + "%"
}

func mapAll[M, E any](rows []*M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}

	return out
}

// updateAll writes every column of value except the immutable ones, keyed by its primary key.
func updateAll(db *gorm.DB, value any, msg string) error {
	return affectedOrNotFound(db.Select("*").Omit("id", "created_at", "deleted_at").Updates(value), msg)
}
