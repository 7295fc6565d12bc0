package services

import (
	"context"
	"testing"

	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
)

func TestJobServiceCreate(t *testing.T) {
	jobs := newFakeJobs()
	svc := NewJobService(jobs, NewInvalidator(newFakeResults(), nil, testLogger))
	ctx := context.Background()

	job, err := svc.Create(ctx, client, JobInput{Title: " Fix pipes ", Skills: "plumbing, pipefitting", CategoryID: ptr("cat-1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ClientID != "c-1" || job.Status != models.JobStatusOpen || job.Title != "Fix pipes" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.CategoryID == nil || *job.CategoryID != "cat-1" {
		t.Fatalf("expected category to be set")
	}
	if _, ok := jobs.byID[job.ID]; !ok {
		t.Fatalf("expected job to be stored")
	}

	if _, err := svc.Create(ctx, client, JobInput{}); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT without title, got %v", err)
	}
	if _, err := svc.Create(ctx, client, JobInput{Title: "x", Status: "archived"}); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT for unknown status, got %v", err)
	}
	if _, err := svc.Create(ctx, workerCaller, JobInput{Title: "x"}); !utils.IsCode(err, utils.CodeForbidden) {
		t.Fatalf("expected FORBIDDEN for worker, got %v", err)
	}
}

func TestJobServiceUpdateOwnership(t *testing.T) {
	jobs := newFakeJobs(&models.Job{ID: "j-1", ClientID: "c-1", Title: "Fix", Status: models.JobStatusOpen})
	results := newFakeResults()
	results.rows["j-1|w-1"] = models.MatchResult{JobID: "j-1", WorkerID: "w-1"}
	svc := NewJobService(jobs, NewInvalidator(results, nil, testLogger))
	ctx := context.Background()

	other := models.Identity{UserID: "c-2", Role: models.RoleClient}
	if _, err := svc.Update(ctx, other, "j-1", JobInput{Title: "Mine now"}); !utils.IsCode(err, utils.CodeForbidden) {
		t.Fatalf("expected FORBIDDEN for other client, got %v", err)
	}
	if _, err := svc.Update(ctx, client, "j-404", JobInput{Title: "x"}); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}

	job, err := svc.Update(ctx, client, "j-1", JobInput{Title: "Fix", Status: models.JobStatusCompleted})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Status != models.JobStatusCompleted {
		t.Fatalf("expected status change, got %s", job.Status)
	}
	if len(results.rows) != 0 {
		t.Fatalf("expected job matches to be invalidated")
	}
}
