package matching

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
)

const (
	locationSame       = 1.0
	locationSubArea    = 0.9
	locationNeutral    = 0.5
	fuzzyLocationLimit = 0.8
)

// LocationLookup reads the location hierarchy. Both methods return
// utils.ErrNotFound for unknown entries.
type LocationLookup interface {
	FindByName(ctx context.Context, name string) (*models.Location, error)
	GetByID(ctx context.Context, id string) (*models.Location, error)
}

type LocationResolver struct {
	lookup LocationLookup
	graded bool
	log    *logrus.Logger
}

// NewLocationResolver builds a resolver. When graded is false an unresolved
// pair always scores 0.5, whatever its string similarity.
func NewLocationResolver(lookup LocationLookup, graded bool, log *logrus.Logger) *LocationResolver {
	if log == nil {
		log = logrus.New()
	}
	return &LocationResolver{lookup: lookup, graded: graded, log: log}
}

// Similarity scores how well workerLocation fits jobLocation. It never fails:
// lookup problems degrade to the neutral score.
func (r *LocationResolver) Similarity(ctx context.Context, jobLocation, workerLocation string) float64 {
	jobLoc, workerLoc := Normalize(jobLocation), Normalize(workerLocation)
	if jobLoc == "" || workerLoc == "" {
		return locationNeutral
	}

	jobNode, jobErr := r.find(ctx, jobLoc)
	workerNode, workerErr := r.find(ctx, workerLoc)
	if jobErr != nil || workerErr != nil {
		return r.fallback(jobLoc, workerLoc)
	}

	if jobNode.ID == workerNode.ID {
		return locationSame
	}
	if r.isAncestor(ctx, jobNode.ID, workerNode) {
		return locationSubArea
	}
	return locationNeutral
}

func (r *LocationResolver) find(ctx context.Context, name string) (*models.Location, error) {
	if r.lookup == nil {
		return nil, utils.ErrNotFound
	}
	loc, err := r.lookup.FindByName(ctx, name)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		r.log.WithError(err).WithField("location", name).Warn("location lookup failed")
	}
	if err == nil && loc == nil {
		err = utils.ErrNotFound
	}
	return loc, err
}

// isAncestor walks the parent chain of node looking for ancestorID.
func (r *LocationResolver) isAncestor(ctx context.Context, ancestorID string, node *models.Location) bool {
	seen := map[string]struct{}{node.ID: {}}
	parent := node.ParentID
	for parent != nil {
		if *parent == ancestorID {
			return true
		}
		if _, loop := seen[*parent]; loop {
			r.log.WithField("location_id", *parent).Warn("location hierarchy contains a cycle")
			return false
		}
		seen[*parent] = struct{}{}

		next, err := r.lookup.GetByID(ctx, *parent)
		if err != nil || next == nil {
			if err != nil && !errors.Is(err, utils.ErrNotFound) {
				r.log.WithError(err).WithField("location_id", *parent).Warn("location parent lookup failed")
			}
			return false
		}
		parent = next.ParentID
	}
	return false
}

func (r *LocationResolver) fallback(jobLoc, workerLoc string) float64 {
	ratio := Ratio(jobLoc, workerLoc)
	r.log.WithFields(logrus.Fields{
		"job_location":    jobLoc,
		"worker_location": workerLoc,
		"ratio":           ratio,
	}).Debug("location fallback to fuzzy ratio")

	if r.graded && ratio > fuzzyLocationLimit {
		return ratio
	}
	return locationNeutral
}
