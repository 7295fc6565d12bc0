package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/workmatch/internal/matching"
	"github.com/yoockh/workmatch/internal/models"
	pgrepo "github.com/yoockh/workmatch/internal/repositories/postgres"
	"github.com/yoockh/workmatch/internal/utils"
)

type SkillInput struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ProfileInput struct {
	Location      string       `json:"location"`
	HasExperience bool         `json:"has_experience"`
	JoinedAt      *time.Time   `json:"joined_at,omitempty"`
	Skills        []SkillInput `json:"skills"`
}

type EducationInput struct {
	LevelOfStudy    string `json:"level_of_study"`
	FieldOfStudy    string `json:"field_of_study"`
	Institute       string `json:"institute"`
	GraduationYear  int    `json:"graduation_year"`
	GraduationMonth int    `json:"graduation_month"`
}

type TargetJobInput struct {
	JobTitle   string `json:"job_title"`
	Level      string `json:"level"`
	OpenToWork bool   `json:"open_to_work"`
}

// WorkerService owns the worker write paths. Every successful write
// invalidates the worker's matches.
type WorkerService interface {
	GetMe(ctx context.Context, caller models.Identity) (*models.Worker, error)
	UpdateProfile(ctx context.Context, caller models.Identity, in ProfileInput) (*models.Worker, error)
	AddEducation(ctx context.Context, caller models.Identity, in EducationInput) (*models.Education, error)
	SetTargetJobs(ctx context.Context, caller models.Identity, in []TargetJobInput) ([]models.TargetJob, error)
}

type workerService struct {
	users   pgrepo.UserRepository
	workers pgrepo.WorkerRepository
	inv     Invalidator
	now     func() time.Time
}

func NewWorkerService(users pgrepo.UserRepository, workers pgrepo.WorkerRepository, inv Invalidator) WorkerService {
	return &workerService{users: users, workers: workers, inv: inv, now: time.Now}
}

func (s *workerService) GetMe(ctx context.Context, caller models.Identity) (*models.Worker, error) {
	const op = "WorkerService.GetMe"

	if caller.Role != models.RoleWorker {
		return nil, utils.E(utils.CodeForbidden, op, "worker role required", nil)
	}
	return s.mine(ctx, op, caller.UserID)
}

func (s *workerService) UpdateProfile(ctx context.Context, caller models.Identity, in ProfileInput) (*models.Worker, error) {
	const op = "WorkerService.UpdateProfile"

	if caller.Role != models.RoleWorker {
		return nil, utils.E(utils.CodeForbidden, op, "worker role required", nil)
	}
	if _, err := s.users.GetByID(ctx, caller.UserID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}

	w, err := s.workers.GetByUserID(ctx, caller.UserID)
	switch {
	case errors.Is(err, utils.ErrNotFound):
		w = &models.Worker{ID: uuid.NewString(), UserID: caller.UserID, JoinedAt: s.now().UTC()}
	case err != nil:
		return nil, utils.E(utils.CodeInternal, op, "failed to get worker", err)
	}

	w.Location = strings.TrimSpace(in.Location)
	w.HasExperience = in.HasExperience
	if in.JoinedAt != nil {
		if in.JoinedAt.After(s.now()) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "joined_at cannot be in the future", nil)
		}
		w.JoinedAt = in.JoinedAt.UTC()
	}

	if err := s.workers.SaveProfile(ctx, w, normalizeSkills(in.Skills)); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.E(utils.CodeConflict, op, "worker profile already exists for this user", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to save worker", err)
	}
	if err := s.inv.InvalidateWorker(ctx, w.ID); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workerService) AddEducation(ctx context.Context, caller models.Identity, in EducationInput) (*models.Education, error) {
	const op = "WorkerService.AddEducation"

	if caller.Role != models.RoleWorker {
		return nil, utils.E(utils.CodeForbidden, op, "worker role required", nil)
	}
	if strings.TrimSpace(in.LevelOfStudy) == "" && strings.TrimSpace(in.FieldOfStudy) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "level_of_study or field_of_study is required", nil)
	}
	if in.GraduationMonth < 0 || in.GraduationMonth > 12 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "graduation_month must be between 1 and 12", nil)
	}

	w, err := s.mine(ctx, op, caller.UserID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		WorkerID:        w.ID,
		LevelOfStudy:    strings.TrimSpace(in.LevelOfStudy),
		FieldOfStudy:    strings.TrimSpace(in.FieldOfStudy),
		Institute:       strings.TrimSpace(in.Institute),
		GraduationYear:  in.GraduationYear,
		GraduationMonth: in.GraduationMonth,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.workers.AddEducation(ctx, edu); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to add education", err)
	}
	if err := s.inv.InvalidateWorker(ctx, w.ID); err != nil {
		return nil, err
	}
	return edu, nil
}

func (s *workerService) SetTargetJobs(ctx context.Context, caller models.Identity, in []TargetJobInput) ([]models.TargetJob, error) {
	const op = "WorkerService.SetTargetJobs"

	if caller.Role != models.RoleWorker {
		return nil, utils.E(utils.CodeForbidden, op, "worker role required", nil)
	}
	w, err := s.mine(ctx, op, caller.UserID)
	if err != nil {
		return nil, err
	}

	targets := make([]models.TargetJob, 0, len(in))
	for _, t := range in {
		title := strings.TrimSpace(t.JobTitle)
		if title == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "job_title is required", nil)
		}
		targets = append(targets, models.TargetJob{
			WorkerID:   w.ID,
			JobTitle:   title,
			Level:      strings.TrimSpace(t.Level),
			OpenToWork: t.OpenToWork,
		})
	}

	if err := s.workers.ReplaceTargetJobs(ctx, w.ID, targets); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save target jobs", err)
	}
	if err := s.inv.InvalidateWorker(ctx, w.ID); err != nil {
		return nil, err
	}
	return targets, nil
}

func (s *workerService) mine(ctx context.Context, op, userID string) (*models.Worker, error) {
	w, err := s.workers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "worker profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get worker", err)
	}
	return w, nil
}

// normalizeSkills stores names normalized and drops blanks and duplicates.
func normalizeSkills(in []SkillInput) []models.Skill {
	out := make([]models.Skill, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		name := matching.Normalize(s.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, models.Skill{Name: name, Level: strings.TrimSpace(s.Level)})
	}
	return out
}
