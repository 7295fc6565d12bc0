package matching

import (
	"context"
	"strings"
	"time"

	"github.com/yoockh/workmatch/internal/models"
)

// EmbeddingRepository upserts one record per (entity type, entity id).
type EmbeddingRepository interface {
	Upsert(ctx context.Context, e *models.Embedding) error
}

// EmbeddingStore is the write-through keyword store for jobs and workers.
type EmbeddingStore struct {
	repo EmbeddingRepository
	now  func() time.Time
}

func NewEmbeddingStore(repo EmbeddingRepository) *EmbeddingStore {
	return &EmbeddingStore{repo: repo, now: time.Now}
}

// Store replaces the record of the entity with rawText and its keywords.
func (s *EmbeddingStore) Store(ctx context.Context, entityType models.EntityType, entityID, rawText string) error {
	if s == nil || s.repo == nil {
		return nil
	}
	keywords := ExtractKeywords(rawText)
	if keywords == nil {
		keywords = []string{}
	}
	return s.repo.Upsert(ctx, &models.Embedding{
		EntityType: entityType,
		EntityID:   entityID,
		RawText:    rawText,
		Keywords:   keywords,
		UpdatedAt:  s.now().UTC(),
	})
}

// JobText joins title, skills, description and category.
func JobText(job *models.Job) string {
	return joinNonEmpty(job.Title, job.Skills, job.Description, job.CategoryName())
}

// WorkerText joins location, skills, target titles and fields of study.
func WorkerText(w *models.Worker) string {
	parts := []string{w.Location}
	for _, s := range w.Skills {
		parts = append(parts, s.Name)
	}
	for _, t := range w.TargetJobs {
		parts = append(parts, t.JobTitle)
	}
	for _, e := range w.Educations {
		parts = append(parts, e.FieldOfStudy)
	}
	return joinNonEmpty(parts...)
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
