package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/yoockh/workmatch/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SynonymRepository interface {
	All(ctx context.Context) (map[string][]string, error)
	Upsert(ctx context.Context, skill string, synonyms []string) error
}

type synonymRepo struct {
	db *gorm.DB
}

func NewSynonymRepo(db *gorm.DB) SynonymRepository {
	return &synonymRepo{db: db}
}

func (r *synonymRepo) All(ctx context.Context) (map[string][]string, error) {
	var rows []models.SkillSynonym
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(rows))
	for _, row := range rows {
		out[row.Skill] = append(out[row.Skill], row.Synonyms...)
	}
	return out, nil
}

func (r *synonymRepo) Upsert(ctx context.Context, skill string, synonyms []string) error {
	row := &models.SkillSynonym{
		Skill:     skill,
		Synonyms:  pq.StringArray(synonyms),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "skill"}},
			DoUpdates: clause.AssignmentColumns([]string{"synonyms", "updated_at"}),
		}).
		Create(row).Error
}
