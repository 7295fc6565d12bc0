// Package bootstrap connects the stores and assembles the services shared by
// the HTTP server and matchctl.
package bootstrap

import (
	"github.com/sirupsen/logrus"
	"github.com/yoockh/workmatch/config"
	"github.com/yoockh/workmatch/internal/cache"
	"github.com/yoockh/workmatch/internal/matching"
	mongorepo "github.com/yoockh/workmatch/internal/repositories/mongo"
	pgrepo "github.com/yoockh/workmatch/internal/repositories/postgres"
	"github.com/yoockh/workmatch/internal/services"
	"gorm.io/gorm"
)

type Repos struct {
	Users     pgrepo.UserRepository
	Workers   pgrepo.WorkerRepository
	Jobs      pgrepo.JobRepository
	Feedback  pgrepo.FeedbackRepository
	Synonyms  pgrepo.SynonymRepository
	Locations pgrepo.LocationRepository
	Weights   pgrepo.WeightConfigRepository
	Results   pgrepo.MatchResultRepository

	// Embeddings is nil when mongo is not configured.
	Embeddings mongorepo.EmbeddingRepository
}

type Services struct {
	Engine  *matching.Engine
	Match   services.MatchService
	Inv     services.Invalidator
	Worker  services.WorkerService
	Job     services.JobService
	Weight  services.WeightService
	Catalog services.CatalogService
	Metrics services.MetricsService
}

// Connect opens postgres (required), then mongo and redis. The last two are
// optional: without mongo embeddings are not written, without redis only the
// persisted match rows serve as cache.
func Connect(log *logrus.Logger, migrate bool) error {
	if err := config.InitPostgres(); err != nil {
		return err
	}
	log.Info("PostgreSQL connected")
	if migrate {
		if err := config.MigratePostgres(); err != nil {
			return err
		}
	}

	if err := config.InitMongo(); err != nil {
		log.WithError(err).Warn("MongoDB unavailable, embeddings disabled")
	} else {
		log.Info("MongoDB connected")
		if err := config.EnsureMongoIndexes(); err != nil {
			log.WithError(err).Warn("ensure mongo indexes failed")
		}
	}

	if err := config.InitRedis(); err != nil {
		log.WithError(err).Warn("Redis unavailable, match front cache disabled")
	} else {
		log.Info("Redis connected")
	}
	return nil
}

func NewRepos(db *gorm.DB) Repos {
	r := Repos{
		Users:     pgrepo.NewUserRepo(db),
		Workers:   pgrepo.NewWorkerRepo(db),
		Jobs:      pgrepo.NewJobRepo(db),
		Feedback:  pgrepo.NewFeedbackRepo(db),
		Synonyms:  pgrepo.NewSynonymRepo(db),
		Locations: pgrepo.NewLocationRepo(db),
		Weights:   pgrepo.NewWeightConfigRepo(db),
		Results:   pgrepo.NewMatchResultRepo(db),
	}
	if mdb := config.MongoDatabase(); mdb != nil {
		r.Embeddings = mongorepo.NewEmbeddingRepo(mdb)
	}
	return r
}

// NewServices wires the engine and every service on top of repos. c may be
// nil.
func NewServices(r Repos, c cache.Cache, cfg *config.AppConfig, log *logrus.Logger) Services {
	deps := matching.Deps{
		Synonyms:  r.Synonyms,
		Locations: r.Locations,
		Weights:   r.Weights,
		Ratings:   r.Feedback,
		Workers:   r.Workers,
		Jobs:      r.Jobs,
		Logger:    log,
	}
	if r.Embeddings != nil {
		deps.Embeddings = r.Embeddings
	}
	engine := matching.NewEngine(deps, matching.Options{GradedLocationFallback: cfg.GradedLocationFallback})

	inv := services.NewInvalidator(r.Results, c, log)
	return Services{
		Engine:  engine,
		Match:   services.NewMatchService(r.Jobs, r.Workers, r.Results, engine, inv, c, cfg.MatchCacheTTL, log),
		Inv:     inv,
		Worker:  services.NewWorkerService(r.Users, r.Workers, inv),
		Job:     services.NewJobService(r.Jobs, inv),
		Weight:  services.NewWeightService(r.Weights),
		Catalog: services.NewCatalogService(r.Synonyms, r.Locations),
		Metrics: services.NewMetricsService(),
	}
}

// FrontCache returns the redis cache, or nil when redis is not connected.
func FrontCache() cache.Cache {
	if config.RedisClient == nil {
		return nil
	}
	return cache.NewRedisCache(config.RedisClient)
}

// Build connects everything and returns the wired services.
func Build(log *logrus.Logger, migrate bool) (Services, error) {
	if err := Connect(log, migrate); err != nil {
		return Services{}, err
	}
	cfg := config.LoadAppConfig()
	return NewServices(NewRepos(config.PostgresDB), FrontCache(), cfg, log), nil
}
