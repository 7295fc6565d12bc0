package matching

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
)

type fakeLocations struct {
	byID map[string]*models.Location
	err  error
}

func newFakeLocations(nodes ...models.Location) *fakeLocations {
	f := &fakeLocations{byID: map[string]*models.Location{}}
	for i := range nodes {
		n := nodes[i]
		f.byID[n.ID] = &n
	}
	return f
}

func (f *fakeLocations) FindByName(_ context.Context, name string) (*models.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, n := range f.byID {
		if strings.EqualFold(n.Name, name) {
			return n, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeLocations) GetByID(_ context.Context, id string) (*models.Location, error) {
	if n, ok := f.byID[id]; ok {
		return n, nil
	}
	return nil, utils.ErrNotFound
}

type fakeWeights struct {
	category map[string]*models.WeightConfig
	global   *models.WeightConfig
	err      error
}

func (f *fakeWeights) ForCategory(_ context.Context, categoryID string) (*models.WeightConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.category[categoryID]; ok {
		return c, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeWeights) Global(_ context.Context) (*models.WeightConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.global == nil {
		return nil, utils.ErrNotFound
	}
	return f.global, nil
}

type fakeSynonyms map[string][]string

func (f fakeSynonyms) All(context.Context) (map[string][]string, error) { return f, nil }

type ratingPair struct{ workerRole, clientAbout float64 }

type fakeRatings struct {
	means map[string]ratingPair
	fail  map[string]bool
}

func (f *fakeRatings) RatingMeans(_ context.Context, workerID string) (float64, float64, error) {
	if f.fail[workerID] {
		return 0, 0, errors.New("feedback table unavailable")
	}
	p := f.means[workerID]
	return p.workerRole, p.clientAbout, nil
}

type fakeWorkers struct {
	workers []models.Worker
	err     error
}

// CandidateWorkers returns every worker; the engine does the exact filtering.
func (f *fakeWorkers) CandidateWorkers(context.Context, string, []string) ([]models.Worker, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Worker, len(f.workers))
	copy(out, f.workers)
	return out, nil
}

type fakeJobs struct {
	jobs []models.Job
}

func (f *fakeJobs) CandidateOpenJobs(context.Context, string, []string) ([]models.Job, error) {
	out := make([]models.Job, len(f.jobs))
	copy(out, f.jobs)
	return out, nil
}

type fakeEmbeddings struct {
	mu   sync.Mutex
	rows map[string]models.Embedding
	err  error
}

func (f *fakeEmbeddings) Upsert(_ context.Context, e *models.Embedding) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rows == nil {
		f.rows = map[string]models.Embedding{}
	}
	f.rows[string(e.EntityType)+":"+e.EntityID] = *e
	return nil
}

func ptr[T any](v T) *T { return &v }
