package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/workmatch/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchResultRepository persists ranked (job, worker) rows. Deletes return
// the ids on the other side of the removed pairs.
type MatchResultRepository interface {
	ListByJob(ctx context.Context, jobID string) ([]models.MatchResult, error)
	ListByWorker(ctx context.Context, workerID string) ([]models.MatchResult, error)
	Upsert(ctx context.Context, rows []models.MatchResult) error
	DeleteByJob(ctx context.Context, jobID string) (workerIDs []string, err error)
	DeleteByWorker(ctx context.Context, workerID string) (jobIDs []string, err error)
	DeleteAll(ctx context.Context) (int64, error)
}

type matchResultRepo struct {
	db *gorm.DB
}

func NewMatchResultRepo(db *gorm.DB) MatchResultRepository {
	return &matchResultRepo{db: db}
}

func (r *matchResultRepo) ListByJob(ctx context.Context, jobID string) ([]models.MatchResult, error) {
	var rows []models.MatchResult
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("score DESC").
		Find(&rows).Error
	return rows, err
}

func (r *matchResultRepo) ListByWorker(ctx context.Context, workerID string) ([]models.MatchResult, error) {
	var rows []models.MatchResult
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("score DESC").
		Find(&rows).Error
	return rows, err
}

// Upsert writes rows last-write-wins on the (job_id, worker_id) pair, so two
// requests racing on the same cache miss both succeed.
func (r *matchResultRepo) Upsert(ctx context.Context, rows []models.MatchResult) error {
	if len(rows) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = now
		}
		rows[i].UpdatedAt = now
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "worker_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "criteria", "updated_at"}),
		}).
		Create(&rows).Error
}

func (r *matchResultRepo) DeleteByJob(ctx context.Context, jobID string) ([]string, error) {
	var removed []models.MatchResult
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "worker_id"}}}).
		Where("job_id = ?", jobID).
		Delete(&removed).Error
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(removed))
	for _, m := range removed {
		ids = append(ids, m.WorkerID)
	}
	return ids, nil
}

func (r *matchResultRepo) DeleteByWorker(ctx context.Context, workerID string) ([]string, error) {
	var removed []models.MatchResult
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "job_id"}}}).
		Where("worker_id = ?", workerID).
		Delete(&removed).Error
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(removed))
	for _, m := range removed {
		ids = append(ids, m.JobID)
	}
	return ids, nil
}

func (r *matchResultRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.MatchResult{})
	return res.RowsAffected, res.Error
}
