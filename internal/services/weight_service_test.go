package services

import (
	"context"
	"testing"

	"github.com/yoockh/workmatch/internal/matching"
	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
)

func TestWeightServiceGet(t *testing.T) {
	configs := &fakeWeightConfigs{
		global: &models.WeightConfig{Skill: 0.5, TargetJob: 0.1, Experience: 0.1, Education: 0.1, Location: 0.1, Rating: 0.1},
	}
	svc := NewWeightService(configs)
	ctx := context.Background()

	v, err := svc.Get(ctx, ptr("cat-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Source != matching.WeightSourceGlobal || v.Weights.Skill != 0.5 {
		t.Fatalf("expected global fallback, got %+v", v)
	}

	empty := NewWeightService(&fakeWeightConfigs{})
	v, err = empty.Get(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Source != matching.WeightSourceDefault || v.Weights != matching.DefaultWeights() {
		t.Fatalf("expected defaults, got %+v", v)
	}
}

func TestWeightServiceUpdate(t *testing.T) {
	configs := &fakeWeightConfigs{}
	svc := NewWeightService(configs)
	ctx := context.Background()

	valid := matching.Weights{Skill: 0.4, TargetJob: 0.2, Experience: 0.1, Education: 0.1, Location: 0.1, Rating: 0.1}
	v, err := svc.Update(ctx, ptr("cat-1"), valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Source != matching.WeightSourceCategory || len(configs.saved) != 1 {
		t.Fatalf("expected category upsert, got %+v", v)
	}

	got, _ := svc.Get(ctx, ptr("cat-1"))
	if got.Weights != valid {
		t.Fatalf("expected stored weights to be read back, got %+v", got.Weights)
	}

	if v, err := svc.Update(ctx, ptr(""), valid); err != nil || v.Source != matching.WeightSourceGlobal {
		t.Fatalf("empty category should write the global row, got %+v, %v", v, err)
	}

	_, err = svc.Update(ctx, nil, matching.DefaultWeights())
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT for a vector summing to 1.1, got %v", err)
	}
	if len(configs.saved) != 2 {
		t.Fatalf("rejected vectors must not be stored")
	}
}
