package services

import (
	"context"

	"github.com/yoockh/workmatch/internal/matching"
	"github.com/yoockh/workmatch/internal/models"
	pgrepo "github.com/yoockh/workmatch/internal/repositories/postgres"
	"github.com/yoockh/workmatch/internal/utils"
)

type WeightsView struct {
	CategoryID *string               `json:"category_id,omitempty"`
	Source     matching.WeightSource `json:"source"`
	Weights    matching.Weights      `json:"weights"`
	Sum        float64               `json:"sum"`
}

// WeightService reads and writes the stored weight vectors. Updates do not
// touch cached matches; operators flush explicitly.
type WeightService interface {
	Get(ctx context.Context, categoryID *string) (*WeightsView, error)
	Update(ctx context.Context, categoryID *string, w matching.Weights) (*WeightsView, error)
}

type weightService struct {
	configs  pgrepo.WeightConfigRepository
	provider *matching.WeightProvider
}

func NewWeightService(configs pgrepo.WeightConfigRepository) WeightService {
	return &weightService{configs: configs, provider: matching.NewWeightProvider(configs)}
}

func (s *weightService) Get(ctx context.Context, categoryID *string) (*WeightsView, error) {
	const op = "WeightService.Get"

	w, source, err := s.provider.Resolve(ctx, categoryID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to resolve weights", err)
	}
	return &WeightsView{CategoryID: categoryID, Source: source, Weights: w, Sum: w.Sum()}, nil
}

func (s *weightService) Update(ctx context.Context, categoryID *string, w matching.Weights) (*WeightsView, error) {
	const op = "WeightService.Update"

	if err := w.Validate(); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if categoryID != nil && *categoryID == "" {
		categoryID = nil
	}

	cfg := &models.WeightConfig{
		CategoryID: categoryID,
		Skill:      w.Skill,
		TargetJob:  w.TargetJob,
		Experience: w.Experience,
		Education:  w.Education,
		Location:   w.Location,
		Rating:     w.Rating,
	}
	if err := s.configs.Upsert(ctx, cfg); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save weights", err)
	}

	source := matching.WeightSourceGlobal
	if categoryID != nil {
		source = matching.WeightSourceCategory
	}
	return &WeightsView{CategoryID: categoryID, Source: source, Weights: w, Sum: w.Sum()}, nil
}
