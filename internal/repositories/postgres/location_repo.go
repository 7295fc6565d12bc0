package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationRepository interface {
	FindByName(ctx context.Context, name string) (*models.Location, error)
	GetByID(ctx context.Context, id string) (*models.Location, error)
	Upsert(ctx context.Context, loc *models.Location) error
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) FindByName(ctx context.Context, name string) (*models.Location, error) {
	var loc models.Location
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).Take(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &loc, err
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*models.Location, error) {
	var loc models.Location
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &loc, err
}

func (r *locationRepo) Upsert(ctx context.Context, loc *models.Location) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"parent_id"}),
		}).
		Create(loc).Error
}
