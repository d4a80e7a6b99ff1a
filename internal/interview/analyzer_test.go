package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyResponseType_MotivationBeatsChallenge(t *testing.T) {
	// Contains both motivation ("why") and challenge ("difficult") language.
	got := ClassifyResponseType(
		"Why did you keep going when it got difficult?",
		"I wanted to reach my goal.",
	)
	assert.Equal(t, TopicMotivation, got)
}

func TestClassifyResponseType_PriorityOrder(t *testing.T) {
	cases := []struct {
		name     string
		question string
		answer   string
		want     Topic
	}{
		{"challenge beats personality", "Tell me about a setback.", "It revealed my weakness.", TopicChallenge},
		{"personality beats experience", "What are your strengths?", "I led my club.", TopicPersonality},
		{"experience keyword", "Tell me about your part-time job.", "I worked at a cafe.", TopicExperience},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyResponseType(tc.question, tc.answer))
		})
	}
}

func TestClassifyResponseType_DefaultsToExperience(t *testing.T) {
	got := ClassifyResponseType("Do you have anything to add?", "No, thank you.")
	assert.Equal(t, TopicExperience, got)
}

func TestClassifyQuestionTopic(t *testing.T) {
	cases := []struct {
		question string
		want     Topic
	}{
		{"To begin, please introduce yourself.", TopicIntroduction},
		{"What is your motivation for applying to us?", TopicMotivation},
		{"What did you devote yourself to in your student days?", TopicExperience},
		{"What would you say is your biggest weakness?", TopicPersonality},
		{"Tell me about a time you faced something difficult.", TopicChallenge},
		{"Do you have anything to ask us?", TopicOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyQuestionTopic(tc.question), tc.question)
	}
}

func TestAnalyzeFlow_AllRequiredTopicsCovered(t *testing.T) {
	history := []QA{
		{Question: "Please introduce yourself.", Answer: "I am a senior at Aoyama University."},
		{Question: "What is your motivation for this industry?", Answer: "I like building things."},
		{Question: "What did you focus on in your student days?", Answer: strings.Repeat("I ran the debate club and organized tournaments. ", 3)},
	}

	fa := AnalyzeFlow(history, 10)
	assert.Empty(t, fa.MissingTopics)
	assert.ElementsMatch(t,
		[]string{topicSelfIntroduction, topicMotivationLabel, topicStudentExperience},
		fa.CoveredTopics)
	assert.NotEqual(t, ActionNewTopic, fa.RecommendedNextAction)
}

func TestAnalyzeFlow_MissingTopicForcesNewTopic(t *testing.T) {
	history := []QA{
		{Question: "Please introduce yourself.", Answer: "Sure."},
	}

	fa := AnalyzeFlow(history, 10)
	assert.Contains(t, fa.MissingTopics, topicMotivationLabel)
	assert.Contains(t, fa.MissingTopics, topicStudentExperience)
	assert.Equal(t, ActionNewTopic, fa.RecommendedNextAction)
}

func TestAnalyzeFlow_DeepDiveOpportunity(t *testing.T) {
	longAnswer := strings.Repeat("I organized the annual festival. ", 5) // >100 chars

	history := []QA{
		{Question: "Please introduce yourself.", Answer: "Hello."},
		{Question: "What is your motivation for applying?", Answer: "Growth."},
		{Question: "What did you do in your student days?", Answer: longAnswer},
	}

	fa := AnalyzeFlow(history, 10)
	assert.Equal(t, 1, fa.DeepDiveOpportunities)
	assert.Equal(t, ActionDeepDive, fa.RecommendedNextAction)
}

func TestAnalyzeFlow_WrapUpAtThreshold(t *testing.T) {
	// 10-question preset, 8 answered turns, all required topics covered,
	// no pending deep-dive opportunity (short answers only).
	history := []QA{
		{Question: "Please introduce yourself.", Answer: "Short."},
		{Question: "What is your motivation for applying?", Answer: "Short."},
		{Question: "What did you do in your student days?", Answer: "Short."},
		{Question: "Tell me about that club.", Answer: "Short."},
		{Question: "What was your role there?", Answer: "Short."},
		{Question: "What did the team think?", Answer: "Short."},
		{Question: "What came next?", Answer: "Short."},
		{Question: "And after that?", Answer: "Short."},
	}

	fa := AnalyzeFlow(history, 10)
	assert.Empty(t, fa.MissingTopics)
	assert.Zero(t, fa.DeepDiveOpportunities)
	assert.Equal(t, ActionWrapUp, fa.RecommendedNextAction)
}

func TestAnalyzeFlow_WrapUpThresholdScalesWithQuestionCount(t *testing.T) {
	assert.Equal(t, 8, wrapUpThreshold(10))
	assert.Equal(t, 3, wrapUpThreshold(5))
	assert.Equal(t, 23, wrapUpThreshold(25))
	assert.Equal(t, 1, wrapUpThreshold(2))
}

func TestAnalyzeFlow_QualityGrades(t *testing.T) {
	long := strings.Repeat("a", 90)

	shallow := AnalyzeFlow([]QA{
		{Question: "Please introduce yourself.", Answer: "Hi."},
	}, 10)
	assert.Equal(t, QualityShallow, shallow.ConversationQuality)

	moderate := AnalyzeFlow([]QA{
		{Question: "Please introduce yourself.", Answer: strings.Repeat("a", 60)},
	}, 10)
	assert.Equal(t, QualityModerate, moderate.ConversationQuality)

	deep := AnalyzeFlow([]QA{
		{Question: "Specifically, what was your role?", Answer: long},
		{Question: "Why did you choose that approach?", Answer: long},
		{Question: "Please introduce yourself.", Answer: long},
	}, 10)
	assert.Equal(t, QualityDeep, deep.ConversationQuality)
}

func TestDeepDiveLevel_AlwaysWithinBounds(t *testing.T) {
	// No deep-dive phrasing at all.
	assert.Equal(t, 1, DeepDiveLevel("Please introduce yourself.", nil))

	// Stacked keywords plus continuity bonuses must still clamp at 3.
	history := []QA{
		{Question: "Earlier you mentioned the festival."},
		{Question: "Previously you said you led the team."},
		{Question: "Earlier you spoke about your role."},
	}
	level := DeepDiveLevel(
		"Specifically, how and why did you do that? Tell me more in detail.",
		history,
	)
	assert.Equal(t, 3, level)
}

func TestDeepDiveLevel_CountsKeywordsAndContinuity(t *testing.T) {
	history := []QA{
		{Question: "Earlier you mentioned the debate club."},
	}
	assert.Equal(t, 2, DeepDiveLevel("Why did you join?", history))
}
