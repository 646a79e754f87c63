package main

import (
	"context"

	"github.com/genius-ayush/voiceHire/internal/cache"
	"github.com/genius-ayush/voiceHire/internal/config"
	"github.com/genius-ayush/voiceHire/internal/database"
	"github.com/genius-ayush/voiceHire/internal/handler"
	"github.com/genius-ayush/voiceHire/internal/logger"
	"github.com/genius-ayush/voiceHire/internal/oration"
	"github.com/genius-ayush/voiceHire/internal/repository"
	"github.com/genius-ayush/voiceHire/internal/scoring"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB      *pgxpool.Pool
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	var statusCache handler.StatusCache
	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, redisClient); err != nil {
		// status polling falls through to the vendor on every request
		sugar.Warnw("redis unavailable, snapshot caching disabled", "err", err)
	} else {
		statusCache = cache.NewStatusStore(redisClient, cfg.Redis.StatusTTL)
	}

	orationClient := oration.NewClient(
		cfg.Oration.APIKey,
		cfg.Oration.WorkspaceID,
		cfg.Oration.AgentID,
		cfg.Oration.BaseURL,
		cfg.Oration.Timeout,
	)

	repo := repository.NewRepository(pool)

	// no Scorer yet: scoring waits on the vendor exposing transcripts
	scoringSvc := scoring.NewService(nil, repo.Interviews, repo.Responses, log)

	h := &handler.Handler{
		Logger:     log,
		Recruiters: repo.Recruiters,
		Jobs:       repo.Jobs,
		Candidates: repo.Candidates,
		Questions:  repo.Questions,
		Interviews: repo.Interviews,
		Responses:  repo.Responses,
		Oration:    orationClient,
		Cache:      statusCache,
		Scoring:    scoringSvc,
		JwtSecret:  cfg.JWT.Secret,
		JwtTTL:     cfg.JWT.TTL,
	}

	app := &application{
		DB:      pool,
		Logger:  log,
		Config:  cfg,
		Handler: h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
