package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
	"gorm.io/gorm"
)

type JobRepository interface {
	GetByID(ctx context.Context, id string) (*models.Job, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Job, error)
	CandidateOpenJobs(ctx context.Context, location string, skills []string) ([]models.Job, error)
	Save(ctx context.Context, j *models.Job) error
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Job
	err := r.db.WithContext(ctx).Preload("Category").Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

// CandidateOpenJobs returns open jobs in location or whose skill text
// mentions one of skills. The LIKE match is loose; callers re-check.
func (r *jobRepo) CandidateOpenJobs(ctx context.Context, location string, skills []string) ([]models.Job, error) {
	db := r.db.WithContext(ctx)

	cond := db.Session(&gorm.Session{NewDB: true})
	filtered := false
	if location != "" {
		cond = cond.Where("LOWER(TRIM(jobs.location)) = LOWER(TRIM(?))", location)
		filtered = true
	}
	for _, s := range skills {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		cond = cond.Or("LOWER(jobs.skills) LIKE ?", "%"+escapeLike(strings.ToLower(s))+"%")
		filtered = true
	}
	if !filtered {
		return nil, nil
	}

	var rows []models.Job
	err := db.Preload("Category").
		Where("jobs.status = ?", models.JobStatusOpen).
		Where(cond).
		Find(&rows).Error
	return rows, err
}

func (r *jobRepo) Save(ctx context.Context, j *models.Job) error {
	now := time.Now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now
	return r.db.WithContext(ctx).Omit("Category").Save(j).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
