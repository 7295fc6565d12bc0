package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/workmatch/internal/cache"
	"github.com/yoockh/workmatch/internal/matching"
	"github.com/yoockh/workmatch/internal/models"
	pgrepo "github.com/yoockh/workmatch/internal/repositories/postgres"
	"github.com/yoockh/workmatch/internal/utils"
	"gorm.io/datatypes"
)

// Matcher is the scoring engine as seen by the service.
type Matcher interface {
	MatchJobToWorkers(ctx context.Context, job *models.Job) ([]matching.WorkerMatch, error)
	MatchWorkerToJobs(ctx context.Context, w *models.Worker) ([]matching.JobMatch, error)
}

type MatchService interface {
	WorkersForJob(ctx context.Context, jobID string, caller models.Identity) ([]WorkerMatchView, error)
	JobsForWorker(ctx context.Context, caller models.Identity) ([]JobMatchView, error)
	RecomputeJob(ctx context.Context, jobID string) ([]WorkerMatchView, error)
	RecomputeWorker(ctx context.Context, workerID string) ([]JobMatchView, error)
}

type matchService struct {
	jobs     pgrepo.JobRepository
	workers  pgrepo.WorkerRepository
	results  pgrepo.MatchResultRepository
	matcher  Matcher
	inv      Invalidator
	cache    cache.Cache
	cacheTTL time.Duration
	log      *logrus.Logger
	now      func() time.Time
}

func NewMatchService(
	jobs pgrepo.JobRepository,
	workers pgrepo.WorkerRepository,
	results pgrepo.MatchResultRepository,
	matcher Matcher,
	inv Invalidator,
	c cache.Cache,
	cacheTTL time.Duration,
	log *logrus.Logger,
) MatchService {
	return &matchService{
		jobs:     jobs,
		workers:  workers,
		results:  results,
		matcher:  matcher,
		inv:      inv,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
		now:      time.Now,
	}
}

func (s *matchService) WorkersForJob(ctx context.Context, jobID string, caller models.Identity) ([]WorkerMatchView, error) {
	const op = "MatchService.WorkersForJob"

	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_id is required", nil)
	}
	if caller.Role != models.RoleClient {
		return nil, utils.E(utils.CodeForbidden, op, "only clients can view matches for a job", nil)
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
	return s.workersForJob(ctx, job)
}

func (s *matchService) JobsForWorker(ctx context.Context, caller models.Identity) ([]JobMatchView, error) {
	const op = "MatchService.JobsForWorker"

	if caller.Role != models.RoleWorker {
		return nil, utils.E(utils.CodeForbidden, op, "only workers can view job matches", nil)
	}
	w, err := s.workers.GetByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "worker profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get worker", err)
	}
	return s.jobsForWorker(ctx, w)
}

// RecomputeJob discards the job's cached matches and ranks it again.
func (s *matchService) RecomputeJob(ctx context.Context, jobID string) ([]WorkerMatchView, error) {
	const op = "MatchService.RecomputeJob"

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	if err := s.inv.InvalidateJob(ctx, job.ID); err != nil {
		return nil, err
	}
	return s.workersForJob(ctx, job)
}

// RecomputeWorker discards the worker's cached matches and ranks it again.
func (s *matchService) RecomputeWorker(ctx context.Context, workerID string) ([]JobMatchView, error) {
	const op = "MatchService.RecomputeWorker"

	w, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "worker not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get worker", err)
	}
	if err := s.inv.InvalidateWorker(ctx, w.ID); err != nil {
		return nil, err
	}
	return s.jobsForWorker(ctx, w)
}

func (s *matchService) workersForJob(ctx context.Context, job *models.Job) ([]WorkerMatchView, error) {
	const op = "MatchService.workersForJob"
	key := cache.JobMatchesKey(job.ID)

	var out []WorkerMatchView
	if s.cacheGet(ctx, key, &out) {
		return out, nil
	}

	rows, err := s.results.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read match results", err)
	}
	if len(rows) > 0 {
		out, err = s.workerViewsFromRows(ctx, rows)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to load matched workers", err)
		}
		s.cacheSet(ctx, key, out)
		return out, nil
	}

	matches, err := s.matcher.MatchJobToWorkers(ctx, job)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to match workers", err)
	}

	now := s.now()
	out = make([]WorkerMatchView, 0, len(matches))
	persist := make([]models.MatchResult, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		out = append(out, WorkerMatchView{
			Worker:   newWorkerProfileView(&m.Worker, now),
			Score:    m.Score,
			Criteria: m.Criteria,
		})
		persist = append(persist, matchRow(job.ID, m.Worker.ID, m.Score, m.Criteria))
	}
	s.cacheComputed(ctx, op, key, out, persist)
	return out, nil
}

func (s *matchService) jobsForWorker(ctx context.Context, w *models.Worker) ([]JobMatchView, error) {
	const op = "MatchService.jobsForWorker"
	key := cache.WorkerMatchesKey(w.ID)

	var out []JobMatchView
	if s.cacheGet(ctx, key, &out) {
		return out, nil
	}

	rows, err := s.results.ListByWorker(ctx, w.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read match results", err)
	}
	if len(rows) > 0 {
		out, err = s.jobViewsFromRows(ctx, rows)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to load matched jobs", err)
		}
		s.cacheSet(ctx, key, out)
		return out, nil
	}

	matches, err := s.matcher.MatchWorkerToJobs(ctx, w)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to match jobs", err)
	}

	out = make([]JobMatchView, 0, len(matches))
	persist := make([]models.MatchResult, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		out = append(out, JobMatchView{
			Job:      newJobSummaryView(&m.Job),
			Score:    m.Score,
			Criteria: m.Criteria,
		})
		persist = append(persist, matchRow(m.Job.ID, w.ID, m.Score, m.Criteria))
	}
	s.cacheComputed(ctx, op, key, out, persist)
	return out, nil
}

// workerViewsFromRows keeps the row order. Rows whose worker has since
// disappeared are skipped.
func (s *matchService) workerViewsFromRows(ctx context.Context, rows []models.MatchResult) ([]WorkerMatchView, error) {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.WorkerID)
	}
	workers, err := s.workers.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Worker, len(workers))
	for i := range workers {
		byID[workers[i].ID] = &workers[i]
	}

	now := s.now()
	out := make([]WorkerMatchView, 0, len(rows))
	for _, r := range rows {
		w, ok := byID[r.WorkerID]
		if !ok {
			continue
		}
		out = append(out, WorkerMatchView{
			Worker:   newWorkerProfileView(w, now),
			Score:    r.Score,
			Criteria: decodeCriteria(r.Criteria),
		})
	}
	return out, nil
}

func (s *matchService) jobViewsFromRows(ctx context.Context, rows []models.MatchResult) ([]JobMatchView, error) {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.JobID)
	}
	jobs, err := s.jobs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Job, len(jobs))
	for i := range jobs {
		byID[jobs[i].ID] = &jobs[i]
	}

	out := make([]JobMatchView, 0, len(rows))
	for _, r := range rows {
		j, ok := byID[r.JobID]
		if !ok {
			continue
		}
		out = append(out, JobMatchView{
			Job:      newJobSummaryView(j),
			Score:    r.Score,
			Criteria: decodeCriteria(r.Criteria),
		})
	}
	return out, nil
}

// cacheComputed stores a fresh ranking. The front cache is only written once
// the rows are persisted: invalidation finds counterpart keys through those
// rows, so an entry without them could outlive the data it was built from.
// Empty rankings are never cached.
func (s *matchService) cacheComputed(ctx context.Context, op, key string, out any, rows []models.MatchResult) {
	if len(rows) == 0 {
		return
	}
	if !s.persist(ctx, op, rows) {
		return
	}
	s.cacheSet(ctx, key, out)
}

// persist reports whether the rows were written. A failure still leaves the
// caller with a fresh ranking; the next request recomputes.
func (s *matchService) persist(ctx context.Context, op string, rows []models.MatchResult) bool {
	if err := s.results.Upsert(ctx, rows); err != nil {
		s.log.WithError(err).WithField("op", op).Warn("persist match results failed")
		return false
	}
	return true
}

func (s *matchService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("match cache read failed")
		return false
	}
	return hit
}

func (s *matchService) cacheSet(ctx context.Context, key string, val any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, val, s.cacheTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("match cache write failed")
	}
}

func matchRow(jobID, workerID string, score float64, c matching.Criteria) models.MatchResult {
	b, _ := json.Marshal(c)
	return models.MatchResult{
		JobID:    jobID,
		WorkerID: workerID,
		Score:    score,
		Criteria: datatypes.JSON(b),
	}
}

func decodeCriteria(raw datatypes.JSON) matching.Criteria {
	var c matching.Criteria
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &c)
	}
	return c
}
