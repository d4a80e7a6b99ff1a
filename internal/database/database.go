package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shukatsu-shoji/mentore/internal/config"
)

func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	pc.MaxConns = int32(cfg.MaxConns)
	pc.MaxConnLifetime = cfg.MaxConnLife
	return pgxpool.NewWithConfig(ctx, pc)
}
