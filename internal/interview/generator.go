package interview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/shukatsu-shoji/mentore/internal/gemini"
	"github.com/shukatsu-shoji/mentore/internal/ratelimit"
	"github.com/shukatsu-shoji/mentore/internal/retry"
)

// RateLimitError is the local pre-flight rejection raised before any
// network call when the sliding window is full. It is not retried
// automatically; the caller should re-invoke after the hint elapses.
type RateLimitError struct {
	RetryAfter int // seconds
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %d seconds", e.RetryAfter)
}

// Generator drives one question-generation call: rate-limit gate,
// prompt construction, the retried model call, and bookkeeping.
type Generator struct {
	client  *gemini.Client
	limiter *ratelimit.Limiter
	logger  *zap.Logger
	policy  retry.Policy
}

func NewGenerator(client *gemini.Client, limiter *ratelimit.Limiter, logger *zap.Logger) *Generator {
	return &Generator{
		client:  client,
		limiter: limiter,
		logger:  logger,
		policy:  retry.Default,
	}
}

// SetMaxRetries overrides the default retry budget of 3.
func (g *Generator) SetMaxRetries(n int) {
	if n >= 0 {
		g.policy.MaxRetries = n
	}
}

// GenerateQuestion produces the next interviewer question for the given
// conversation. Calls for one session are strictly sequential; the
// limiter window is shared across all sessions in the process.
func (g *Generator) GenerateQuestion(ctx context.Context, industry string, interviewType InterviewType, questionCount int, history []QA) (string, error) {
	if !g.limiter.CanMakeRequest() {
		wait := g.limiter.WaitTime()
		e := &RateLimitError{RetryAfter: int(math.Ceil(wait.Seconds()))}
		g.logger.Warn("generation rejected by local rate limiter",
			zap.Int("retry_after_seconds", e.RetryAfter),
		)
		return "", e
	}

	prompt := BuildPrompt(industry, interviewType, questionCount, history)

	// The response parse runs inside the retry scope: a malformed body
	// is retried the same way a network failure is.
	text, err := retry.Do(ctx, g.policy, func() (string, error) {
		return g.client.GenerateContent(ctx, prompt)
	})
	if err != nil {
		g.logger.Error("question generation failed",
			zap.String("industry", industry),
			zap.Int("turn", len(history)+1),
			zap.Error(err),
		)
		return "", err
	}

	g.limiter.Record()
	return strings.TrimSpace(text), nil
}

// UserMessage converts any generation failure into plain language for
// the candidate. Local rate-limit rejections carry their wait hint;
// everything else is classified by kind.
func UserMessage(err error) string {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return fmt.Sprintf("The rate limit has been reached. Please try again in %d seconds.", rl.RetryAfter)
	}

	switch gemini.Classify(err) {
	case gemini.KindRateLimited:
		return "The API usage limit has been reached. Please wait a moment and try again."
	case gemini.KindAuth:
		return "There is a problem with API authentication. Please contact the administrator."
	case gemini.KindForbidden:
		return "API access is restricted. Please contact the administrator."
	case gemini.KindNetwork:
		return "There is a network connection problem. Please check your internet connection."
	case gemini.KindConfig:
		return "There is a problem with the service configuration. Please contact the administrator."
	default:
		return "Sorry, a temporary problem occurred. Please wait a moment and try again."
	}
}
