package matching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/workmatch/internal/models"
)

const (
	// MaxResults caps every ranking and the rows written to the result cache.
	MaxResults = 10

	experienceBonus = 0.01
	activityBonus   = 0.01
	activityWindow  = 30 * 24 * time.Hour
)

type SynonymSource interface {
	All(ctx context.Context) (map[string][]string, error)
}

// RatingSource returns the mean worker-role rating and the mean
// client-about-worker rating, 0 when a kind has no feedback.
type RatingSource interface {
	RatingMeans(ctx context.Context, workerID string) (workerRole, clientAbout float64, err error)
}

// WorkerFinder returns workers located in location or holding one of skills,
// with skills, educations (oldest first), target jobs and user loaded.
type WorkerFinder interface {
	CandidateWorkers(ctx context.Context, location string, skills []string) ([]models.Worker, error)
}

// JobFinder returns open jobs that may match location or skills. It may
// return a superset; the engine re-checks every candidate.
type JobFinder interface {
	CandidateOpenJobs(ctx context.Context, location string, skills []string) ([]models.Job, error)
}

type Options struct {
	// GradedLocationFallback scores unresolved locations by fuzzy ratio
	// above 0.8 instead of the flat 0.5.
	GradedLocationFallback bool
}

type Deps struct {
	Synonyms   SynonymSource
	Locations  LocationLookup
	Weights    WeightLookup
	Ratings    RatingSource
	Workers    WorkerFinder
	Jobs       JobFinder
	Embeddings EmbeddingRepository
	Logger     *logrus.Logger
}

type WorkerMatch struct {
	Worker   models.Worker
	Score    float64
	Criteria Criteria
}

type JobMatch struct {
	Job      models.Job
	Score    float64
	Criteria Criteria
}

// Engine ranks workers for a job and jobs for a worker. It holds no mutable
// state; every call reads what it needs from the store.
type Engine struct {
	synonyms   SynonymSource
	locations  *LocationResolver
	weights    *WeightProvider
	ratings    RatingSource
	workers    WorkerFinder
	jobs       JobFinder
	embeddings *EmbeddingStore
	log        *logrus.Logger
	now        func() time.Time
}

func NewEngine(d Deps, opts Options) *Engine {
	log := d.Logger
	if log == nil {
		log = logrus.New()
	}
	return &Engine{
		synonyms:   d.Synonyms,
		locations:  NewLocationResolver(d.Locations, opts.GradedLocationFallback, log),
		weights:    NewWeightProvider(d.Weights),
		ratings:    d.Ratings,
		workers:    d.Workers,
		jobs:       d.Jobs,
		embeddings: NewEmbeddingStore(d.Embeddings),
		log:        log,
		now:        time.Now,
	}
}

// Weights exposes the provider for callers that report the resolved vector.
func (e *Engine) Weights() *WeightProvider { return e.weights }

// MatchJobToWorkers returns up to MaxResults workers for job, best first.
func (e *Engine) MatchJobToWorkers(ctx context.Context, job *models.Job) ([]WorkerMatch, error) {
	weights, _, err := e.weights.Resolve(ctx, job.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("resolve weights: %w", err)
	}
	synonyms, err := e.loadSynonyms(ctx)
	if err != nil {
		return nil, err
	}

	jobSkills := newStringSet(synonyms.Expand(SplitSkills(job.Skills))...)
	candidates, err := e.workers.CandidateWorkers(ctx, job.Location, jobSkills.sorted())
	if err != nil {
		return nil, fmt.Errorf("load candidate workers: %w", err)
	}

	e.storeEmbedding(ctx, models.EntityJob, job.ID, JobText(job))

	now := e.now()
	out := make([]WorkerMatch, 0, len(candidates))
	for i := range candidates {
		w := &candidates[i]
		if w.User == nil || !passesPrefilter(job.Location, jobSkills, w.Location, workerSkillSet(w)) {
			continue
		}

		var score float64
		var criteria Criteria
		err := guard(func() error {
			e.storeEmbedding(ctx, models.EntityWorker, w.ID, WorkerText(w))
			c, err := e.score(ctx, job, w, synonyms, now)
			if err != nil {
				return err
			}
			criteria = c
			score = finalScore(weights, c, w, now)
			return nil
		})
		if err != nil {
			e.log.WithError(err).WithFields(logrus.Fields{
				"op":        "MatchJobToWorkers",
				"job_id":    job.ID,
				"worker_id": w.ID,
			}).Warn("skipping candidate")
			continue
		}
		out = append(out, WorkerMatch{Worker: *w, Score: score, Criteria: criteria})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Worker.ID < out[j].Worker.ID
	})
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out, nil
}

// MatchWorkerToJobs returns up to MaxResults open jobs for w, best first.
// Scoring uses the global weight vector.
func (e *Engine) MatchWorkerToJobs(ctx context.Context, w *models.Worker) ([]JobMatch, error) {
	weights, _, err := e.weights.Resolve(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("resolve weights: %w", err)
	}
	synonyms, err := e.loadSynonyms(ctx)
	if err != nil {
		return nil, err
	}

	workerSkills := workerSkillSet(w)
	expanded := newStringSet(synonyms.Expand(workerSkills.sorted())...)
	candidates, err := e.jobs.CandidateOpenJobs(ctx, w.Location, expanded.sorted())
	if err != nil {
		return nil, fmt.Errorf("load candidate jobs: %w", err)
	}

	e.storeEmbedding(ctx, models.EntityWorker, w.ID, WorkerText(w))

	now := e.now()
	out := make([]JobMatch, 0, len(candidates))
	for i := range candidates {
		job := &candidates[i]
		if job.Status != models.JobStatusOpen {
			continue
		}
		jobSkills := newStringSet(SplitSkills(job.Skills)...)
		if !passesPrefilter(job.Location, jobSkills, w.Location, expanded) {
			continue
		}

		var score float64
		var criteria Criteria
		err := guard(func() error {
			e.storeEmbedding(ctx, models.EntityJob, job.ID, JobText(job))
			c, err := e.score(ctx, job, w, synonyms, now)
			if err != nil {
				return err
			}
			criteria = c
			score = finalScore(weights, c, w, now)
			return nil
		})
		if err != nil {
			e.log.WithError(err).WithFields(logrus.Fields{
				"op":        "MatchWorkerToJobs",
				"job_id":    job.ID,
				"worker_id": w.ID,
			}).Warn("skipping candidate")
			continue
		}
		out = append(out, JobMatch{Job: *job, Score: score, Criteria: criteria})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Job.ID < out[j].Job.ID
	})
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out, nil
}

func (e *Engine) score(ctx context.Context, job *models.Job, w *models.Worker, synonyms SynonymTable, now time.Time) (Criteria, error) {
	var workerRole, clientAbout float64
	if e.ratings != nil {
		var err error
		workerRole, clientAbout, err = e.ratings.RatingMeans(ctx, w.ID)
		if err != nil {
			return Criteria{}, fmt.Errorf("rating means: %w", err)
		}
	}

	return Criteria{
		Skills:     clamp(SkillScore(job, w, synonyms), 0, 1),
		TargetJob:  TargetJobScore(job.CategoryName(), w.TargetJobs),
		Experience: ExperienceScore(w, now),
		Education:  EducationScore(job, w.Educations),
		Location:   clamp(e.locations.Similarity(ctx, job.Location, w.Location), 0, 1),
		Rating:     RatingScore(workerRole, clientAbout),
	}, nil
}

// finalScore adds the tie-breaker bonuses to the weighted sum and clamps.
func finalScore(weights Weights, c Criteria, w *models.Worker, now time.Time) float64 {
	score := weights.Combine(c)
	if w.HasExperience {
		score += experienceBonus
	}
	if w.LastActiveAt != nil && now.Sub(*w.LastActiveAt) <= activityWindow {
		score += activityBonus
	}
	return clamp(score, 0, 1)
}

// passesPrefilter keeps pairs with the same location (case-insensitive) or at
// least one shared skill.
func passesPrefilter(jobLocation string, jobSkills stringSet, workerLocation string, workerSkills stringSet) bool {
	jl, wl := Normalize(jobLocation), Normalize(workerLocation)
	if jl != "" && jl == wl {
		return true
	}
	return jobSkills.intersects(workerSkills)
}

func (e *Engine) loadSynonyms(ctx context.Context) (SynonymTable, error) {
	if e.synonyms == nil {
		return SynonymTable{}, nil
	}
	rows, err := e.synonyms.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load synonyms: %w", err)
	}
	return NewSynonymTable(rows), nil
}

// storeEmbedding refreshes the keyword record. Failures are logged and
// otherwise ignored.
func (e *Engine) storeEmbedding(ctx context.Context, typ models.EntityType, id, text string) {
	if err := e.embeddings.Store(ctx, typ, id, text); err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"entity_type": typ,
			"entity_id":   id,
		}).Warn("embedding refresh failed")
	}
}

// guard converts a panic in fn into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while scoring: %v", r)
		}
	}()
	return fn()
}
