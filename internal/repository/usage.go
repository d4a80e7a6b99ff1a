package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shukatsu-shoji/mentore/internal/interview"
)

// UsageRepository persists the anonymized usage events and serves the
// simple per-user counters the dashboard reads.
type UsageRepository struct {
	db *pgxpool.Pool
}

// RecordUsage inserts one usage event. Called once per session, when
// the first question is shown.
func (r UsageRepository) RecordUsage(ctx context.Context, ev interview.UsageEvent) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interview_usage_logs (user_id, industry, duration, interview_type, question_count, started_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ev.UserID, ev.Industry, ev.Duration, ev.InterviewType, ev.QuestionCount, ev.StartedAt,
	)
	return err
}

type UsageStats struct {
	TotalUsage int `json:"total_usage"`
	TodayUsage int `json:"today_usage"`
}

// Stats returns total and same-day usage counts for one user.
func (r UsageRepository) Stats(ctx context.Context, userID string) (UsageStats, error) {
	var stats UsageStats

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM interview_usage_logs WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalUsage)
	if err != nil {
		return UsageStats{}, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM interview_usage_logs WHERE user_id = $1 AND started_at >= $2`,
		userID, today,
	).Scan(&stats.TodayUsage)
	if err != nil {
		return UsageStats{}, err
	}

	return stats, nil
}
