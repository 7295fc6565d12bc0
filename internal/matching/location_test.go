package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/yoockh/workmatch/internal/logger"
	"github.com/yoockh/workmatch/internal/models"
)

func ethiopiaTree() *fakeLocations {
	return newFakeLocations(
		models.Location{ID: "et", Name: "Ethiopia"},
		models.Location{ID: "aa", Name: "Addis Ababa", ParentID: ptr("et")},
		models.Location{ID: "bole", Name: "Bole", ParentID: ptr("aa")},
		models.Location{ID: "dd", Name: "Dire Dawa", ParentID: ptr("et")},
	)
}

func TestLocationSimilarity(t *testing.T) {
	t.Parallel()

	r := NewLocationResolver(ethiopiaTree(), false, logger.Discard())

	tests := []struct {
		name   string
		job    string
		worker string
		expect float64
	}{
		{name: "same record", job: "Addis Ababa", worker: "  addis   ababa ", expect: 1.0},
		{name: "direct child", job: "Addis Ababa", worker: "Bole", expect: 0.9},
		{name: "grandchild", job: "Ethiopia", worker: "Bole", expect: 0.9},
		{name: "job inside worker area is not a sub-location", job: "Bole", worker: "Addis Ababa", expect: 0.5},
		{name: "siblings", job: "Dire Dawa", worker: "Addis Ababa", expect: 0.5},
		{name: "empty job location", job: "", worker: "Bole", expect: 0.5},
		{name: "empty worker location", job: "Bole", worker: " ", expect: 0.5},
		{name: "both unknown and nearly identical", job: "Adama", worker: "Adamaa", expect: 0.5},
		{name: "both unknown and unrelated", job: "Gondar", worker: "Hawassa", expect: 0.5},
		{name: "one unknown", job: "Addis Ababa", worker: "Addis Abeba", expect: 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.Similarity(context.Background(), tt.job, tt.worker); got != tt.expect {
				t.Fatalf("Similarity(%q, %q) = %v, want %v", tt.job, tt.worker, got, tt.expect)
			}
		})
	}
}

func TestLocationSimilarityGradedFallback(t *testing.T) {
	r := NewLocationResolver(ethiopiaTree(), true, logger.Discard())
	ctx := context.Background()

	got := r.Similarity(ctx, "Addis Ababa", "Addis Abeba")
	if got <= 0.8 || got >= 1 {
		t.Fatalf("expected graded score above 0.8, got %v", got)
	}
	if got := r.Similarity(ctx, "Gondar", "Hawassa"); got != 0.5 {
		t.Fatalf("expected 0.5 for dissimilar unknown locations, got %v", got)
	}
}

func TestLocationSimilarityLookupErrorIsNeutral(t *testing.T) {
	lookup := ethiopiaTree()
	lookup.err = errors.New("connection reset")
	r := NewLocationResolver(lookup, false, logger.Discard())

	if got := r.Similarity(context.Background(), "Addis Ababa", "Addis Ababa"); got != 0.5 {
		t.Fatalf("expected neutral score on lookup failure, got %v", got)
	}
}

func TestLocationSimilarityStopsOnCycle(t *testing.T) {
	lookup := newFakeLocations(
		models.Location{ID: "a", Name: "A", ParentID: ptr("b")},
		models.Location{ID: "b", Name: "B", ParentID: ptr("a")},
		models.Location{ID: "c", Name: "C"},
	)
	r := NewLocationResolver(lookup, false, logger.Discard())

	if got := r.Similarity(context.Background(), "C", "A"); got != 0.5 {
		t.Fatalf("expected 0.5 when hierarchy loops, got %v", got)
	}
}
