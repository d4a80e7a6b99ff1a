package interview

import "strings"

// Required topics every interview must touch before anything else.
const (
	topicSelfIntroduction  = "self-introduction"
	topicMotivationLabel   = "motivation"
	topicStudentExperience = "student experience"
)

var requiredTopics = []string{topicSelfIntroduction, topicMotivationLabel, topicStudentExperience}

// Keyword sets for classifying what a completed turn was really about.
// The order below is a deliberate tie-break: motivation language wins
// over challenge language, which wins over personality, which wins over
// generic experience language.
var (
	motivationKeywords  = []string{"motivation", "why", "goal", "career", "future", "aspire", "interested in"}
	challengeKeywords   = []string{"challenge", "difficult", "overcome", "struggle", "setback", "persever", "effort"}
	personalityKeywords = []string{"personality", "strength", "weakness", "character", "values", "kind of person"}
	experienceKeywords  = []string{"experience", "student", "club", "part-time", "internship", "activity", "episode"}
)

// Phrases that mark a question as already probing for depth.
var (
	deepDivePhrases   = []string{"specifically", "how", "why"}
	detailPhrases     = []string{"specifically", "in detail"}
	deepDiveKeywords  = []string{"specifically", "how", "why", "in detail", "a bit more", "tell me more"}
	continuityPhrases = []string{"earlier", "previously"}
)

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// ClassifyResponseType labels a completed turn by scanning the combined
// question and answer text. Never fails: unmatched text defaults to
// experience.
func ClassifyResponseType(question, answer string) Topic {
	text := strings.ToLower(question + " " + answer)

	switch {
	case containsAny(text, motivationKeywords):
		return TopicMotivation
	case containsAny(text, challengeKeywords):
		return TopicChallenge
	case containsAny(text, personalityKeywords):
		return TopicPersonality
	default:
		return TopicExperience
	}
}

// ClassifyQuestionTopic labels a question from its text alone, for
// display and metrics. Unmatched text maps to other.
func ClassifyQuestionTopic(question string) Topic {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, []string{"introduce", "your name"}):
		return TopicIntroduction
	case containsAny(q, []string{"motivation", "why"}):
		return TopicMotivation
	case containsAny(q, []string{"student", "worked hard"}):
		return TopicExperience
	case containsAny(q, []string{"personality", "strength", "weakness"}):
		return TopicPersonality
	case containsAny(q, []string{"challenge", "difficult"}):
		return TopicChallenge
	default:
		return TopicOther
	}
}

// wrapUpThreshold is the turn count after which the interview should
// steer toward closing. questionCount-2 preserves the flagship
// 10-question format's behavior (wrap up from turn 8) while scaling to
// the other presets.
func wrapUpThreshold(questionCount int) int {
	t := questionCount - 2
	if t < 1 {
		t = 1
	}
	return t
}

// AnalyzeFlow walks the history once and derives topic coverage,
// deep-dive opportunities, conversation quality and the recommended
// next move.
func AnalyzeFlow(history []QA, questionCount int) FlowAnalysis {
	covered := make([]string, 0, len(requiredTopics))
	seen := make(map[string]bool)
	opportunities := 0
	totalAnswerLen := 0
	deepQuestions := 0

	markCovered := func(topic string) {
		if !seen[topic] {
			seen[topic] = true
			covered = append(covered, topic)
		}
	}

	for _, qa := range history {
		q := strings.ToLower(qa.Question)

		if containsAny(q, []string{"introduce", "your name"}) {
			markCovered(topicSelfIntroduction)
		}
		if containsAny(q, []string{"motivation", "why"}) {
			markCovered(topicMotivationLabel)
		}
		if containsAny(q, []string{"student", "worked hard", "devoted"}) {
			markCovered(topicStudentExperience)
		}

		// A long answer to a question that never asked for detail is a
		// deep-dive opportunity.
		if len(qa.Answer) > 100 && !containsAny(q, detailPhrases) {
			opportunities++
		}

		if containsAny(q, deepDivePhrases) {
			deepQuestions++
		}
		totalAnswerLen += len(qa.Answer)
	}

	missing := make([]string, 0, len(requiredTopics))
	for _, topic := range requiredTopics {
		if !seen[topic] {
			missing = append(missing, topic)
		}
	}

	quality := QualityShallow
	if len(history) > 0 {
		avgLen := float64(totalAnswerLen) / float64(len(history))
		if avgLen > 80 && float64(deepQuestions) > float64(len(history))*0.3 {
			quality = QualityDeep
		} else if avgLen > 50 || deepQuestions > 0 {
			quality = QualityModerate
		}
	}

	action := ActionNewTopic
	if len(missing) > 0 {
		action = ActionNewTopic
	} else if opportunities > 0 && quality != QualityDeep {
		action = ActionDeepDive
	} else if len(history) >= wrapUpThreshold(questionCount) {
		action = ActionWrapUp
	}

	return FlowAnalysis{
		CoveredTopics:         covered,
		MissingTopics:         missing,
		DeepDiveOpportunities: opportunities,
		ConversationQuality:   quality,
		RecommendedNextAction: action,
	}
}

// DeepDiveLevel estimates how deep a question digs, from its own
// phrasing plus a continuity bonus when recent turns referenced an
// earlier answer. Always within [1, 3].
func DeepDiveLevel(question string, history []QA) int {
	q := strings.ToLower(question)
	count := 0
	for _, k := range deepDiveKeywords {
		if strings.Contains(q, k) {
			count++
		}
	}

	recent := history
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	for _, qa := range recent {
		if containsAny(strings.ToLower(qa.Question), continuityPhrases) {
			count++
		}
	}

	if count < 1 {
		return 1
	}
	if count > 3 {
		return 3
	}
	return count
}
