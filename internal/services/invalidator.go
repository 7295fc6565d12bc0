package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/workmatch/internal/cache"
	pgrepo "github.com/yoockh/workmatch/internal/repositories/postgres"
	"github.com/yoockh/workmatch/internal/utils"
)

// Invalidator drops cached matches when a job or worker changes. Removal is
// coarse: every row referencing the entity goes, along with the front-cache
// entries of the entity and of every counterpart it was ranked with.
type Invalidator interface {
	InvalidateJob(ctx context.Context, jobID string) error
	InvalidateWorker(ctx context.Context, workerID string) error
	FlushAll(ctx context.Context) (int64, error)
}

type invalidator struct {
	results pgrepo.MatchResultRepository
	cache   cache.Cache
	log     *logrus.Logger
}

func NewInvalidator(results pgrepo.MatchResultRepository, c cache.Cache, log *logrus.Logger) Invalidator {
	return &invalidator{results: results, cache: c, log: log}
}

func (s *invalidator) InvalidateJob(ctx context.Context, jobID string) error {
	const op = "Invalidator.InvalidateJob"

	if jobID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "job_id is required", nil)
	}
	workerIDs, err := s.results.DeleteByJob(ctx, jobID)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"op": op, "job_id": jobID}).Error("delete match results failed")
		return utils.E(utils.CodeInternal, op, "failed to delete match results", err)
	}

	keys := append([]string{cache.JobMatchesKey(jobID)}, cache.WorkerMatchesKeys(workerIDs)...)
	if err := s.dropKeys(ctx, keys); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"op": op, "job_id": jobID}).Error("drop cache keys failed")
		return utils.E(utils.CodeUnavailable, op, "failed to drop cached matches", err)
	}

	s.log.WithFields(logrus.Fields{"op": op, "job_id": jobID, "counterparts": len(workerIDs)}).Debug("matches invalidated")
	return nil
}

func (s *invalidator) InvalidateWorker(ctx context.Context, workerID string) error {
	const op = "Invalidator.InvalidateWorker"

	if workerID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "worker_id is required", nil)
	}
	jobIDs, err := s.results.DeleteByWorker(ctx, workerID)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"op": op, "worker_id": workerID}).Error("delete match results failed")
		return utils.E(utils.CodeInternal, op, "failed to delete match results", err)
	}

	keys := append([]string{cache.WorkerMatchesKey(workerID)}, cache.JobMatchesKeys(jobIDs)...)
	if err := s.dropKeys(ctx, keys); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"op": op, "worker_id": workerID}).Error("drop cache keys failed")
		return utils.E(utils.CodeUnavailable, op, "failed to drop cached matches", err)
	}

	s.log.WithFields(logrus.Fields{"op": op, "worker_id": workerID, "counterparts": len(jobIDs)}).Debug("matches invalidated")
	return nil
}

// FlushAll removes every persisted and cached match. It returns the number
// of rows deleted.
func (s *invalidator) FlushAll(ctx context.Context) (int64, error) {
	const op = "Invalidator.FlushAll"

	n, err := s.results.DeleteAll(ctx)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to delete match results", err)
	}
	if s.cache != nil {
		if _, err := s.cache.DelPattern(ctx, cache.MatchesPattern); err != nil {
			return n, utils.E(utils.CodeUnavailable, op, "failed to flush cached matches", err)
		}
	}
	s.log.WithFields(logrus.Fields{"op": op, "rows": n}).Info("match cache flushed")
	return n, nil
}

func (s *invalidator) dropKeys(ctx context.Context, keys []string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, keys...)
}
