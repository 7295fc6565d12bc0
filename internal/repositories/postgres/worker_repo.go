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

type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Worker, error)
	GetByUserID(ctx context.Context, userID string) (*models.Worker, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Worker, error)
	CandidateWorkers(ctx context.Context, location string, skills []string) ([]models.Worker, error)

	SaveProfile(ctx context.Context, w *models.Worker, skills []models.Skill) error
	AddEducation(ctx context.Context, e *models.Education) error
	ReplaceTargetJobs(ctx context.Context, workerID string, targets []models.TargetJob) error
}

type workerRepo struct {
	db *gorm.DB
}

func NewWorkerRepo(db *gorm.DB) WorkerRepository {
	return &workerRepo{db: db}
}

// withProfile loads everything the matching engine reads. Educations come
// oldest first so index 0 is the worker's first record.
func withProfile(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Skills").
		Preload("Educations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("TargetJobs")
}

func (r *workerRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	var w models.Worker
	err := withProfile(r.db.WithContext(ctx)).Where("id = ?", id).Take(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &w, err
}

func (r *workerRepo) GetByUserID(ctx context.Context, userID string) (*models.Worker, error) {
	var w models.Worker
	err := withProfile(r.db.WithContext(ctx)).Where("user_id = ?", userID).Take(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &w, err
}

func (r *workerRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Worker, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Worker
	err := withProfile(r.db.WithContext(ctx)).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

// CandidateWorkers is the SQL side of the pre-filter: same location
// (case-insensitive) or at least one skill in skills. Workers without a
// user row are dropped by the join.
func (r *workerRepo) CandidateWorkers(ctx context.Context, location string, skills []string) ([]models.Worker, error) {
	db := r.db.WithContext(ctx)

	cond := db.Session(&gorm.Session{NewDB: true})
	filtered := false
	if location != "" {
		cond = cond.Where("LOWER(TRIM(workers.location)) = LOWER(TRIM(?))", location)
		filtered = true
	}
	if len(skills) > 0 {
		cond = cond.Or("EXISTS (SELECT 1 FROM skills s WHERE s.worker_id = workers.id AND LOWER(s.name) IN ?)", skills)
		filtered = true
	}
	if !filtered {
		return nil, nil
	}

	var rows []models.Worker
	err := withProfile(db).
		Joins("JOIN users ON users.id = workers.user_id").
		Where(cond).
		Find(&rows).Error
	return rows, err
}

// SaveProfile returns utils.ErrConflict when another profile already holds
// w.UserID.
func (r *workerRepo) SaveProfile(ctx context.Context, w *models.Worker, skills []models.Skill) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		if w.CreatedAt.IsZero() {
			w.CreatedAt = now
		}
		w.UpdatedAt = now
		if err := tx.Omit("User", "Skills", "Educations", "TargetJobs").Save(w).Error; err != nil {
			return err
		}
		if skills == nil {
			return nil
		}
		if err := tx.Where("worker_id = ?", w.ID).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		for i := range skills {
			skills[i].WorkerID = w.ID
			if skills[i].ID == "" {
				skills[i].ID = uuid.NewString()
			}
		}
		if len(skills) > 0 {
			if err := tx.Create(&skills).Error; err != nil {
				return err
			}
		}
		w.Skills = skills
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrConflict
	}
	return err
}

func (r *workerRepo) AddEducation(ctx context.Context, e *models.Education) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *workerRepo) ReplaceTargetJobs(ctx context.Context, workerID string, targets []models.TargetJob) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", workerID).Delete(&models.TargetJob{}).Error; err != nil {
			return err
		}
		if len(targets) == 0 {
			return nil
		}
		for i := range targets {
			targets[i].WorkerID = workerID
			if targets[i].ID == "" {
				targets[i].ID = uuid.NewString()
			}
		}
		return tx.Create(&targets).Error
	})
}
