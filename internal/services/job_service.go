package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/yoockh/workmatch/internal/models"
	pgrepo "github.com/yoockh/workmatch/internal/repositories/postgres"
	"github.com/yoockh/workmatch/internal/utils"
)

type JobInput struct {
	CategoryID  *string          `json:"category_id,omitempty"`
	Title       string           `json:"title"`
	Location    string           `json:"location"`
	Skills      string           `json:"skills"`
	Description string           `json:"description"`
	Status      models.JobStatus `json:"status"`
}

type JobService interface {
	Get(ctx context.Context, caller models.Identity, jobID string) (*models.Job, error)
	Create(ctx context.Context, caller models.Identity, in JobInput) (*models.Job, error)
	Update(ctx context.Context, caller models.Identity, jobID string, in JobInput) (*models.Job, error)
}

type jobService struct {
	jobs pgrepo.JobRepository
	inv  Invalidator
}

func NewJobService(jobs pgrepo.JobRepository, inv Invalidator) JobService {
	return &jobService{jobs: jobs, inv: inv}
}

func (s *jobService) Get(ctx context.Context, caller models.Identity, jobID string) (*models.Job, error) {
	const op = "JobService.Get"
	return s.owned(ctx, op, caller, jobID)
}

func (s *jobService) Create(ctx context.Context, caller models.Identity, in JobInput) (*models.Job, error) {
	const op = "JobService.Create"

	if caller.Role != models.RoleClient {
		return nil, utils.E(utils.CodeForbidden, op, "client role required", nil)
	}
	job := &models.Job{ID: uuid.NewString(), ClientID: caller.UserID, Status: models.JobStatusOpen}
	if err := applyJobInput(op, job, in); err != nil {
		return nil, err
	}
	return s.save(ctx, op, job)
}

func (s *jobService) Update(ctx context.Context, caller models.Identity, jobID string, in JobInput) (*models.Job, error) {
	const op = "JobService.Update"

	job, err := s.owned(ctx, op, caller, jobID)
	if err != nil {
		return nil, err
	}
	if err := applyJobInput(op, job, in); err != nil {
		return nil, err
	}
	return s.save(ctx, op, job)
}

// save persists the job and drops every match that referenced it.
func (s *jobService) save(ctx context.Context, op string, job *models.Job) (*models.Job, error) {
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save job", err)
	}
	if err := s.inv.InvalidateJob(ctx, job.ID); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) owned(ctx context.Context, op string, caller models.Identity, jobID string) (*models.Job, error) {
	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_id is required", nil)
	}
	if caller.Role != models.RoleClient {
		return nil, utils.E(utils.CodeForbidden, op, "client role required", nil)
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	if job.ClientID != caller.UserID {
		return nil, utils.E(utils.CodeForbidden, op, "job belongs to another client", nil)
	}
	return job, nil
}

func applyJobInput(op string, job *models.Job, in JobInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title is required", nil)
	}
	switch in.Status {
	case "":
	case models.JobStatusOpen, models.JobStatusInProgress, models.JobStatusCompleted, models.JobStatusCancelled:
		job.Status = in.Status
	default:
		return utils.E(utils.CodeInvalidArgument, op, "unknown job status", nil)
	}

	job.Title = title
	job.Location = strings.TrimSpace(in.Location)
	job.Skills = strings.TrimSpace(in.Skills)
	job.Description = strings.TrimSpace(in.Description)
	if in.CategoryID != nil && *in.CategoryID != "" {
		id := *in.CategoryID
		job.CategoryID = &id
	} else {
		job.CategoryID = nil
	}
	job.Category = nil
	return nil
}
