package matching

import (
	"context"
	"errors"
	"math"

	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
)

// WeightTolerance is how far from 1.0 an admin supplied vector may sum.
const WeightTolerance = 0.01

type Weights struct {
	Skill      float64 `json:"skill"`
	TargetJob  float64 `json:"target_job"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
	Rating     float64 `json:"rating"`
}

// DefaultWeights apply when neither a category nor a global config exists.
// They sum to 1.1; the final score is clamped.
func DefaultWeights() Weights {
	return Weights{
		Skill:      0.45,
		TargetJob:  0.2,
		Experience: 0.2,
		Education:  0.05,
		Location:   0.1,
		Rating:     0.1,
	}
}

func WeightsFromConfig(c *models.WeightConfig) Weights {
	return Weights{
		Skill:      c.Skill,
		TargetJob:  c.TargetJob,
		Experience: c.Experience,
		Education:  c.Education,
		Location:   c.Location,
		Rating:     c.Rating,
	}
}

func (w Weights) Sum() float64 {
	return w.Skill + w.TargetJob + w.Experience + w.Education + w.Location + w.Rating
}

// Validate is applied on admin updates only; stored vectors are used as is.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Skill, w.TargetJob, w.Experience, w.Education, w.Location, w.Rating} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return errors.New("each weight must be between 0 and 1")
		}
	}
	if math.Abs(w.Sum()-1) > WeightTolerance {
		return errors.New("weights must sum to 1.0")
	}
	return nil
}

// Combine is the weighted sum of the criteria, without bonuses or clamping.
func (w Weights) Combine(c Criteria) float64 {
	return w.Skill*c.Skills +
		w.TargetJob*c.TargetJob +
		w.Experience*c.Experience +
		w.Education*c.Education +
		w.Location*c.Location +
		w.Rating*c.Rating
}

type WeightSource string

const (
	WeightSourceCategory WeightSource = "category"
	WeightSourceGlobal   WeightSource = "global"
	WeightSourceDefault  WeightSource = "default"
)

// WeightLookup returns utils.ErrNotFound when no row exists.
type WeightLookup interface {
	ForCategory(ctx context.Context, categoryID string) (*models.WeightConfig, error)
	Global(ctx context.Context) (*models.WeightConfig, error)
}

// WeightProvider resolves weights per call from the store, so concurrent
// requests never share mutable weight state.
type WeightProvider struct {
	lookup WeightLookup
}

func NewWeightProvider(lookup WeightLookup) *WeightProvider {
	return &WeightProvider{lookup: lookup}
}

// Resolve picks category config, then global config, then defaults. A nil or
// empty categoryID skips the first step.
func (p *WeightProvider) Resolve(ctx context.Context, categoryID *string) (Weights, WeightSource, error) {
	if p.lookup == nil {
		return DefaultWeights(), WeightSourceDefault, nil
	}

	if categoryID != nil && *categoryID != "" {
		cfg, err := p.lookup.ForCategory(ctx, *categoryID)
		switch {
		case err == nil && cfg != nil:
			return WeightsFromConfig(cfg), WeightSourceCategory, nil
		case err != nil && !errors.Is(err, utils.ErrNotFound):
			return Weights{}, "", err
		}
	}

	cfg, err := p.lookup.Global(ctx)
	switch {
	case err == nil && cfg != nil:
		return WeightsFromConfig(cfg), WeightSourceGlobal, nil
	case err != nil && !errors.Is(err, utils.ErrNotFound):
		return Weights{}, "", err
	}
	return DefaultWeights(), WeightSourceDefault, nil
}
