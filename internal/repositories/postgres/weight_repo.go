package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
	"gorm.io/gorm"
)

type WeightConfigRepository interface {
	ForCategory(ctx context.Context, categoryID string) (*models.WeightConfig, error)
	Global(ctx context.Context) (*models.WeightConfig, error)
	Upsert(ctx context.Context, cfg *models.WeightConfig) error
}

type weightConfigRepo struct {
	db *gorm.DB
}

func NewWeightConfigRepo(db *gorm.DB) WeightConfigRepository {
	return &weightConfigRepo{db: db}
}

func (r *weightConfigRepo) ForCategory(ctx context.Context, categoryID string) (*models.WeightConfig, error) {
	return takeWeightConfig(r.db.WithContext(ctx).Where("category_id = ?", categoryID))
}

func (r *weightConfigRepo) Global(ctx context.Context) (*models.WeightConfig, error) {
	return takeWeightConfig(r.db.WithContext(ctx).Where("category_id IS NULL"))
}

func takeWeightConfig(q *gorm.DB) (*models.WeightConfig, error) {
	var cfg models.WeightConfig
	err := q.Order("updated_at DESC").Take(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &cfg, err
}

// Upsert keeps one row per category. NULL never conflicts in a unique
// index, so the global row is matched by hand inside a transaction.
func (r *weightConfigRepo) Upsert(ctx context.Context, cfg *models.WeightConfig) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.WeightConfig{})
		if cfg.CategoryID == nil {
			q = q.Where("category_id IS NULL")
		} else {
			q = q.Where("category_id = ?", *cfg.CategoryID)
		}

		var existing models.WeightConfig
		err := q.Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if cfg.ID == "" {
				cfg.ID = uuid.NewString()
			}
		case err != nil:
			return err
		default:
			cfg.ID = existing.ID
		}
		cfg.UpdatedAt = time.Now().UTC()
		return tx.Save(cfg).Error
	})
}
