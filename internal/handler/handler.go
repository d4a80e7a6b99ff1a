package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/shukatsu-shoji/mentore/internal/interview"
	"github.com/shukatsu-shoji/mentore/internal/repository"
)

// UsageStatsProvider serves the per-user usage counters.
type UsageStatsProvider interface {
	Stats(ctx context.Context, userID string) (repository.UsageStats, error)
}

type Handler struct {
	Logger    *zap.Logger
	Store     *interview.Store
	UsageRepo UsageStatsProvider
}
