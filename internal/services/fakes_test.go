package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yoockh/workmatch/internal/logger"
	"github.com/yoockh/workmatch/internal/matching"
	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
)

var errBoom = errors.New("boom")

type fakeUsers struct {
	users map[string]*models.User
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, utils.ErrNotFound
}

type fakeWorkers struct {
	byID    map[string]*models.Worker
	saveErr error
}

func newFakeWorkers(ws ...*models.Worker) *fakeWorkers {
	f := &fakeWorkers{byID: map[string]*models.Worker{}}
	for _, w := range ws {
		f.byID[w.ID] = w
	}
	return f
}

func (f *fakeWorkers) GetByID(_ context.Context, id string) (*models.Worker, error) {
	if w, ok := f.byID[id]; ok {
		return w, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeWorkers) GetByUserID(_ context.Context, userID string) (*models.Worker, error) {
	for _, w := range f.byID {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeWorkers) GetByIDs(_ context.Context, ids []string) ([]models.Worker, error) {
	var out []models.Worker
	for _, id := range ids {
		if w, ok := f.byID[id]; ok {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorkers) CandidateWorkers(context.Context, string, []string) ([]models.Worker, error) {
	return nil, nil
}

func (f *fakeWorkers) SaveProfile(_ context.Context, w *models.Worker, skills []models.Skill) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if skills != nil {
		w.Skills = skills
	}
	f.byID[w.ID] = w
	return nil
}

func (f *fakeWorkers) AddEducation(_ context.Context, e *models.Education) error {
	w, ok := f.byID[e.WorkerID]
	if !ok {
		return utils.ErrNotFound
	}
	w.Educations = append(w.Educations, *e)
	return nil
}

func (f *fakeWorkers) ReplaceTargetJobs(_ context.Context, workerID string, targets []models.TargetJob) error {
	w, ok := f.byID[workerID]
	if !ok {
		return utils.ErrNotFound
	}
	w.TargetJobs = targets
	return nil
}

type fakeJobs struct {
	byID map[string]*models.Job
}

func newFakeJobs(js ...*models.Job) *fakeJobs {
	f := &fakeJobs{byID: map[string]*models.Job{}}
	for _, j := range js {
		f.byID[j.ID] = j
	}
	return f
}

func (f *fakeJobs) GetByID(_ context.Context, id string) (*models.Job, error) {
	if j, ok := f.byID[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeJobs) GetByIDs(_ context.Context, ids []string) ([]models.Job, error) {
	var out []models.Job
	for _, id := range ids {
		if j, ok := f.byID[id]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobs) CandidateOpenJobs(context.Context, string, []string) ([]models.Job, error) {
	return nil, nil
}

func (f *fakeJobs) Save(_ context.Context, j *models.Job) error {
	cp := *j
	f.byID[j.ID] = &cp
	return nil
}

// fakeResults is keyed by "job|worker".
type fakeResults struct {
	rows      map[string]models.MatchResult
	upsertErr error
	deleteErr error
}

func newFakeResults() *fakeResults {
	return &fakeResults{rows: map[string]models.MatchResult{}}
}

func (f *fakeResults) list(match func(models.MatchResult) bool) []models.MatchResult {
	var out []models.MatchResult
	for _, r := range f.rows {
		if match(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func (f *fakeResults) ListByJob(_ context.Context, jobID string) ([]models.MatchResult, error) {
	return f.list(func(r models.MatchResult) bool { return r.JobID == jobID }), nil
}

func (f *fakeResults) ListByWorker(_ context.Context, workerID string) ([]models.MatchResult, error) {
	return f.list(func(r models.MatchResult) bool { return r.WorkerID == workerID }), nil
}

func (f *fakeResults) Upsert(_ context.Context, rows []models.MatchResult) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, r := range rows {
		f.rows[r.JobID+"|"+r.WorkerID] = r
	}
	return nil
}

func (f *fakeResults) DeleteByJob(_ context.Context, jobID string) ([]string, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	var ids []string
	for k, r := range f.rows {
		if r.JobID == jobID {
			ids = append(ids, r.WorkerID)
			delete(f.rows, k)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeResults) DeleteByWorker(_ context.Context, workerID string) ([]string, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	var ids []string
	for k, r := range f.rows {
		if r.WorkerID == workerID {
			ids = append(ids, r.JobID)
			delete(f.rows, k)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeResults) DeleteAll(context.Context) (int64, error) {
	n := int64(len(f.rows))
	f.rows = map[string]models.MatchResult{}
	return n, nil
}

// memCache stores JSON bytes so reads decode exactly as they would from redis.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = b
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *memCache) DelPattern(_ context.Context, pattern string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	var n int64
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			n++
		}
	}
	return n, nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

type fakeMatcher struct {
	workers    []matching.WorkerMatch
	jobs       []matching.JobMatch
	err        error
	jobCalls   int
	workerCall int
}

func (m *fakeMatcher) MatchJobToWorkers(context.Context, *models.Job) ([]matching.WorkerMatch, error) {
	m.jobCalls++
	return m.workers, m.err
}

func (m *fakeMatcher) MatchWorkerToJobs(context.Context, *models.Worker) ([]matching.JobMatch, error) {
	m.workerCall++
	return m.jobs, m.err
}

type fakeWeightConfigs struct {
	global   *models.WeightConfig
	category map[string]*models.WeightConfig
	saved    []models.WeightConfig
}

func (f *fakeWeightConfigs) ForCategory(_ context.Context, id string) (*models.WeightConfig, error) {
	if c, ok := f.category[id]; ok {
		return c, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeWeightConfigs) Global(context.Context) (*models.WeightConfig, error) {
	if f.global == nil {
		return nil, utils.ErrNotFound
	}
	return f.global, nil
}

func (f *fakeWeightConfigs) Upsert(_ context.Context, cfg *models.WeightConfig) error {
	f.saved = append(f.saved, *cfg)
	if cfg.CategoryID == nil {
		f.global = cfg
		return nil
	}
	if f.category == nil {
		f.category = map[string]*models.WeightConfig{}
	}
	f.category[*cfg.CategoryID] = cfg
	return nil
}

type fakeSynonyms struct {
	rows map[string][]string
}

func (f *fakeSynonyms) All(context.Context) (map[string][]string, error) { return f.rows, nil }

func (f *fakeSynonyms) Upsert(_ context.Context, skill string, synonyms []string) error {
	if f.rows == nil {
		f.rows = map[string][]string{}
	}
	f.rows[skill] = synonyms
	return nil
}

type fakeLocations struct {
	byName map[string]*models.Location
}

func (f *fakeLocations) FindByName(_ context.Context, name string) (*models.Location, error) {
	if l, ok := f.byName[strings.ToLower(name)]; ok {
		return l, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeLocations) GetByID(_ context.Context, id string) (*models.Location, error) {
	for _, l := range f.byName {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeLocations) Upsert(_ context.Context, loc *models.Location) error {
	if f.byName == nil {
		f.byName = map[string]*models.Location{}
	}
	f.byName[strings.ToLower(loc.Name)] = loc
	return nil
}

func ptr[T any](v T) *T { return &v }

var testLogger = logger.Discard()
