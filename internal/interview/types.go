package interview

import (
	"fmt"
	"time"
)

// InterviewType is the round the candidate is practicing for.
type InterviewType string

const (
	FirstRound  InterviewType = "first_round"
	SecondRound InterviewType = "second_round"
	FinalRound  InterviewType = "final_round"
)

func (t InterviewType) Valid() bool {
	switch t {
	case FirstRound, SecondRound, FinalRound:
		return true
	}
	return false
}

// Label is the human-facing name used inside prompts.
func (t InterviewType) Label() string {
	switch t {
	case SecondRound:
		return "second-round interview"
	case FinalRound:
		return "final interview"
	default:
		return "first-round interview"
	}
}

// Topic labels a question by what it probes.
type Topic string

const (
	TopicIntroduction Topic = "introduction"
	TopicMotivation   Topic = "motivation"
	TopicExperience   Topic = "experience"
	TopicPersonality  Topic = "personality"
	TopicChallenge    Topic = "challenge"
	TopicOther        Topic = "other"
)

// Settings are fixed at setup and immutable for the session.
type Settings struct {
	Industry      string        `json:"industry"`
	Duration      int           `json:"duration"` // minutes
	QuestionCount int           `json:"question_count"`
	InterviewType InterviewType `json:"interview_type"`
}

// questionCounts maps the supported durations to how many questions the
// interview asks.
var questionCounts = map[int]int{
	5:  5,
	15: 10,
	30: 25,
}

// NewSettings validates the setup choices and derives the question
// count from the duration.
func NewSettings(industry string, duration int, interviewType InterviewType) (Settings, error) {
	count, ok := questionCounts[duration]
	if !ok {
		return Settings{}, fmt.Errorf("unsupported duration %d: must be 5, 15 or 30 minutes", duration)
	}
	if !interviewType.Valid() {
		return Settings{}, fmt.Errorf("unknown interview type %q", interviewType)
	}
	return Settings{
		Industry:      industry,
		Duration:      duration,
		QuestionCount: count,
		InterviewType: interviewType,
	}, nil
}

// Question is one turn of the interview. Answer stays empty until the
// candidate submits; exactly one question per session is open at a time.
type Question struct {
	ID            int       `json:"id"`
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	Timestamp     time.Time `json:"timestamp"`
	ResponseTime  int       `json:"response_time,omitempty"` // seconds
	QuestionType  Topic     `json:"question_type,omitempty"`
	DeepDiveLevel int       `json:"deep_dive_level,omitempty"`
}

// QA is the question/answer pair shape the prompt builder and analyzer
// consume.
type QA struct {
	Question string
	Answer   string
}

// Metrics aggregate over the answered turns of one session.
type Metrics struct {
	TotalResponseTime     int      `json:"total_response_time"`
	AverageResponseLength float64  `json:"average_response_length"`
	DeepDiveCount         int      `json:"deep_dive_count"`
	TopicCoverage         []Topic  `json:"topic_coverage"`
	ConversationFlow      string   `json:"conversation_flow"` // linear | exploratory
}

// Quality grades how substantive the conversation has been so far.
type Quality string

const (
	QualityShallow  Quality = "shallow"
	QualityModerate Quality = "moderate"
	QualityDeep     Quality = "deep"
)

// NextAction steers the next question.
type NextAction string

const (
	ActionNewTopic NextAction = "new_topic"
	ActionDeepDive NextAction = "deep_dive"
	ActionWrapUp   NextAction = "wrap_up"
)

// FlowAnalysis is recomputed each turn from the full history; it is
// never persisted.
type FlowAnalysis struct {
	CoveredTopics         []string
	MissingTopics         []string
	DeepDiveOpportunities int
	ConversationQuality   Quality
	RecommendedNextAction NextAction
}

// UsageEvent is the one anonymized record persisted when a session
// shows its first question.
type UsageEvent struct {
	UserID        string
	Industry      string
	Duration      int
	InterviewType string
	QuestionCount int
	StartedAt     time.Time
}
