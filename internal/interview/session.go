package interview

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Abandoned sessions are reclaimed after two hours of inactivity.
const sessionTTL = 2 * time.Hour

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionCompleted = errors.New("session already completed")
	ErrEmptyAnswer      = errors.New("answer must not be empty")
)

// Session is one interview in progress. The question history is
// append-only and held in memory only; nothing but the usage event is
// persisted.
type Session struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id,omitempty"`
	Settings    Settings   `json:"settings"`
	Questions   []Question `json:"questions"`
	Metrics     Metrics    `json:"metrics"`
	StartTime   time.Time  `json:"start_time"`
	LastUpdated time.Time  `json:"last_updated"`
	Completed   bool       `json:"completed"`
}

// CurrentQuestion returns the open question, if any.
func (s Session) CurrentQuestion() (Question, bool) {
	if len(s.Questions) == 0 {
		return Question{}, false
	}
	last := s.Questions[len(s.Questions)-1]
	if last.Answer != "" || s.Completed {
		return Question{}, false
	}
	return last, true
}

type session struct {
	mu sync.Mutex
	Session
}

// UsageRecorder persists the anonymized usage event emitted when a
// session shows its first question.
type UsageRecorder interface {
	RecordUsage(ctx context.Context, ev UsageEvent) error
}

// Store owns all in-memory sessions and drives the per-turn loop.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	gen      *Generator
	usage    UsageRecorder
	logger   *zap.Logger
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(gen *Generator, usage UsageRecorder, logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[string]*session),
		gen:      gen,
		usage:    usage,
		logger:   logger,
		ttl:      sessionTTL,
		now:      time.Now,
	}
}

// StartSession generates the opening question and registers a new
// session. The usage event is best-effort: a failed insert never blocks
// the interview.
func (st *Store) StartSession(ctx context.Context, userID string, settings Settings) (Session, error) {
	question, err := st.gen.GenerateQuestion(ctx, settings.Industry, settings.InterviewType, settings.QuestionCount, nil)
	if err != nil {
		return Session{}, err
	}

	now := st.now()
	s := &session{
		Session: Session{
			ID:          uuid.NewString(),
			UserID:      userID,
			Settings:    settings,
			StartTime:   now,
			LastUpdated: now,
			Questions: []Question{{
				ID:            1,
				Question:      question,
				Timestamp:     now,
				QuestionType:  TopicIntroduction,
				DeepDiveLevel: 1,
			}},
			Metrics: Metrics{ConversationFlow: "linear"},
		},
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	if st.usage != nil {
		ev := UsageEvent{
			UserID:        userID,
			Industry:      settings.Industry,
			Duration:      settings.Duration,
			InterviewType: string(settings.InterviewType),
			QuestionCount: settings.QuestionCount,
			StartedAt:     now,
		}
		if err := st.usage.RecordUsage(ctx, ev); err != nil {
			st.logger.Warn("failed to record usage event", zap.String("session_id", s.ID), zap.Error(err))
		}
	}

	st.logger.Info("interview session started",
		zap.String("session_id", s.ID),
		zap.String("industry", settings.Industry),
		zap.Int("question_count", settings.QuestionCount),
	)

	return s.snapshot(), nil
}

// SubmitResult reports the outcome of one answered turn.
type SubmitResult struct {
	Session   Session `json:"session"`
	Completed bool    `json:"completed"`
}

// SubmitAnswer records the answer to the open question and either
// completes the interview or appends the next generated question. If
// generation fails the session is left exactly as it was, so
// resubmitting the same answer re-issues generation without altering
// already-recorded history.
func (st *Store) SubmitAnswer(ctx context.Context, id, answer string) (SubmitResult, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return SubmitResult{}, ErrEmptyAnswer
	}

	s, err := st.lookup(id)
	if err != nil {
		return SubmitResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Completed {
		return SubmitResult{}, ErrSessionCompleted
	}

	now := st.now()
	cur := &s.Questions[len(s.Questions)-1]
	responseTime := int(now.Sub(cur.Timestamp).Seconds())
	topic := ClassifyQuestionTopic(cur.Question)

	if len(s.Questions) >= s.Settings.QuestionCount {
		cur.Answer = answer
		cur.ResponseTime = responseTime
		cur.QuestionType = topic
		s.updateMetrics(responseTime, len(answer), topic)
		s.Completed = true
		s.LastUpdated = now
		st.logger.Info("interview session completed", zap.String("session_id", s.ID))
		return SubmitResult{Session: s.snapshotLocked(), Completed: true}, nil
	}

	// Build the prospective history without touching session state, so
	// a generation failure leaves nothing to roll back.
	history := make([]QA, 0, len(s.Questions))
	for _, q := range s.Questions[:len(s.Questions)-1] {
		history = append(history, QA{Question: q.Question, Answer: q.Answer})
	}
	history = append(history, QA{Question: cur.Question, Answer: answer})

	next, err := st.gen.GenerateQuestion(ctx, s.Settings.Industry, s.Settings.InterviewType, s.Settings.QuestionCount, history)
	if err != nil {
		return SubmitResult{}, err
	}

	cur.Answer = answer
	cur.ResponseTime = responseTime
	cur.QuestionType = topic
	s.updateMetrics(responseTime, len(answer), topic)

	s.Questions = append(s.Questions, Question{
		ID:            len(s.Questions) + 1,
		Question:      next,
		Timestamp:     st.now(),
		QuestionType:  ClassifyQuestionTopic(next),
		DeepDiveLevel: DeepDiveLevel(next, history),
	})
	s.LastUpdated = st.now()

	return SubmitResult{Session: s.snapshotLocked()}, nil
}

// End finishes a session early. Answered turns are kept; a still-open
// question is dropped from the final history.
func (st *Store) End(id string) (Session, error) {
	s, err := st.lookup(id)
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.Questions); n > 0 && s.Questions[n-1].Answer == "" {
		s.Questions = s.Questions[:n-1]
	}
	s.Completed = true
	s.LastUpdated = st.now()

	st.logger.Info("interview session ended early",
		zap.String("session_id", s.ID),
		zap.Int("answered_questions", len(s.Questions)),
	)

	return s.snapshotLocked(), nil
}

// Get returns a point-in-time copy of a session.
func (st *Store) Get(id string) (Session, error) {
	s, err := st.lookup(id)
	if err != nil {
		return Session{}, err
	}
	return s.snapshot(), nil
}

func (st *Store) lookup(id string) (*session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if st.now().Sub(s.LastUpdated) > st.ttl {
		delete(st.sessions, id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// updateMetrics folds one answered turn into the aggregates. Must be
// called with the session lock held, after the answer is committed.
func (s *session) updateMetrics(responseTime, answerLen int, topic Topic) {
	answered := 0
	for _, q := range s.Questions {
		if q.Answer != "" {
			answered++
		}
	}

	m := &s.Metrics
	m.TotalResponseTime += responseTime
	m.AverageResponseLength = (m.AverageResponseLength*float64(answered-1) + float64(answerLen)) / float64(answered)
	if topic != TopicIntroduction {
		m.DeepDiveCount++
	}

	found := false
	for _, t := range m.TopicCoverage {
		if t == topic {
			found = true
			break
		}
	}
	if !found {
		m.TopicCoverage = append(m.TopicCoverage, topic)
	}

	if float64(m.DeepDiveCount) > float64(answered)*0.6 {
		m.ConversationFlow = "exploratory"
	} else {
		m.ConversationFlow = "linear"
	}
}

func (s *session) snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *session) snapshotLocked() Session {
	out := s.Session
	out.Questions = append([]Question(nil), s.Questions...)
	out.Metrics.TopicCoverage = append([]Topic(nil), s.Metrics.TopicCoverage...)
	return out
}
