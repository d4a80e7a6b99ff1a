package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	Usage UsageRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Usage: UsageRepository{db: db},
	}
}
