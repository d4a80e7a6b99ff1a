package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/shukatsu-shoji/mentore/internal/config"
	"github.com/shukatsu-shoji/mentore/internal/database"
	"github.com/shukatsu-shoji/mentore/internal/gemini"
	"github.com/shukatsu-shoji/mentore/internal/handler"
	"github.com/shukatsu-shoji/mentore/internal/interview"
	"github.com/shukatsu-shoji/mentore/internal/logger"
	"github.com/shukatsu-shoji/mentore/internal/ratelimit"
	"github.com/shukatsu-shoji/mentore/internal/repository"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
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
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	geminiClient, err := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		sugar.Fatal(err)
	}

	repo := repository.NewRepository(pool)

	limiter := ratelimit.New(cfg.Limiter.MaxRequests, cfg.Limiter.Window)
	gen := interview.NewGenerator(geminiClient, limiter, log)
	gen.SetMaxRetries(cfg.Gemini.MaxRetries)
	store := interview.NewStore(gen, repo.Usage, log)

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler: &handler.Handler{
			Logger:    log,
			Store:     store,
			UsageRepo: repo.Usage,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
