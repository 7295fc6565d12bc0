package postgres

import (
	"context"

	"github.com/yoockh/workmatch/internal/models"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	RatingMeans(ctx context.Context, workerID string) (workerRole, clientAbout float64, err error)
}

type feedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) RatingMeans(ctx context.Context, workerID string) (float64, float64, error) {
	var rows []struct {
		Kind models.FeedbackKind
		Mean float64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Select("kind, AVG(rating) AS mean").
		Where("worker_id = ? AND rating > 0", workerID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}

	var workerRole, clientAbout float64
	for _, row := range rows {
		switch row.Kind {
		case models.FeedbackWorkerRole:
			workerRole = row.Mean
		case models.FeedbackClientAboutWorker:
			clientAbout = row.Mean
		}
	}
	return workerRole, clientAbout, nil
}
