package app

import (
	"context"
	"log"
	"time"

	"sponsor-scout/internal/config"
	"sponsor-scout/internal/database"
	"sponsor-scout/internal/database/migration"
	dbpostgres "sponsor-scout/internal/database/postgres"
	"sponsor-scout/internal/infrastructure/cache"
	"sponsor-scout/internal/ingest"
	"sponsor-scout/internal/pkg/jwt"
	"sponsor-scout/internal/repository"
	"sponsor-scout/internal/usecase"
	"sponsor-scout/internal/visaintel"
	"sponsor-scout/internal/ws"
)

// Container owns every long-lived dependency. Construction order runs
// infrastructure, repositories, providers, then usecases.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Redis *cache.Redis
	Hub   *ws.Hub

	JWT jwt.Service

	Postings repository.PostingRepository
	Profiles repository.ProfileRepository
	Users    repository.UserRepository
	Scores   repository.ScoreRepository

	Intel visaintel.Provider

	IngestRunner *ingest.Runner

	AuthUC      usecase.AuthUsecase
	ProfileUC   usecase.ProfileUsecase
	IngestUC    usecase.IngestUsecase
	ScoreUC     usecase.ScoreUsecase
	BatchUC     usecase.BatchScoreUsecase
	CommunityUC usecase.CommunitySignalUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := migration.Run(migCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)
	jwtSvc := jwt.NewHMACService(cfg.JWT)

	postings := repository.NewPostgresPostingRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	users := repository.NewPostgresUserRepository(db)
	scores := repository.NewPostgresScoreRepository(db)
	registry := repository.NewPostgresSponsorRegistryRepository(db)
	community := repository.NewPostgresCommunitySignalRepository(db)

	intel := visaintel.NewCachedProvider(
		visaintel.NewCompositeProvider(registry, community),
		redis,
		cfg.Redis.TTL,
	)

	runner := ingest.NewRunner(db, postings, cfg.Ingest, logger)
	notifier := ws.NewNotifier(hub)

	scoreUC := usecase.NewScoreUsecase(postings, profiles, scores, intel, redis, cfg.Scoring, logger, notifier)

	c := &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Redis: redis,
		Hub:   hub,

		JWT: jwtSvc,

		Postings: postings,
		Profiles: profiles,
		Users:    users,
		Scores:   scores,

		Intel: intel,

		IngestRunner: runner,

		AuthUC:      usecase.NewAuthUsecase(users, jwtSvc),
		ProfileUC:   usecase.NewProfileUsecase(profiles, redis),
		IngestUC:    usecase.NewIngestUsecase(runner, postings),
		ScoreUC:     scoreUC,
		BatchUC:     usecase.NewBatchScoreUsecase(scoreUC, cfg.Ingest, logger),
		CommunityUC: usecase.NewCommunitySignalUsecase(community, intel, logger),
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
