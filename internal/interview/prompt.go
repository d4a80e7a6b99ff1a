package interview

import (
	"fmt"
	"strings"
)

// openingQuestion is the literal first question every interview starts
// with.
const openingQuestion = "To begin, could you briefly introduce yourself? Please tell me your name, your university and major, and a little about what kind of person you are."

// deepDivePatterns are follow-up phrasings the model is nudged toward,
// keyed by the previous answer's classified topic.
var deepDivePatterns = map[Topic][]string{
	TopicExperience: {
		"What role did you take on there, specifically?",
		"What was the hardest part of that experience, and how did you get through it?",
		"What did you change or improve, and what came of it?",
		"How did you work with your teammates, and what was your part?",
		"What did you learn from it, and how did you grow?",
		"If you faced the same situation again, what would you do differently?",
		"How did the people around you rate what you did?",
		"Is there one moment from it that stands out the most?",
	},
	TopicMotivation: {
		"Why did this industry catch your interest in the first place?",
		"How does it compare with other industries or companies you considered?",
		"What kind of work do you want to be doing in the future?",
		"What are you doing now to move toward that goal?",
		"What value do you think you could bring to us?",
		"Do you have a concrete career plan for after you join?",
		"How do you see the industry's challenges and outlook?",
		"How much do you know about what our company actually does?",
	},
	TopicPersonality: {
		"When did you first become aware of that side of yourself?",
		"In what situations does it show, specifically?",
		"Has it ever caused you trouble, and how did you handle that?",
		"How does it affect your teamwork?",
		"How do you think you could use that trait at work?",
		"Is there anything you want to improve, and what are you doing about it?",
		"How do you think the people around you see you?",
		"What situations stress you, and how do you cope?",
	},
	TopicChallenge: {
		"Why did you decide to take on that challenge?",
		"How did you prepare for it?",
		"Did you ever want to give up, and what kept you going?",
		"How did you get past the difficulties?",
		"How did the people around you react, and did anyone support you?",
		"How did that challenge change you?",
		"What did you learn from failure or setback along the way?",
		"Looking back, was there a different approach you could have taken?",
	},
}

// DeepDivePatternsFor returns the follow-up phrasings for a topic,
// falling back to the experience set.
func DeepDivePatternsFor(topic Topic) []string {
	if p, ok := deepDivePatterns[topic]; ok {
		return p
	}
	return deepDivePatterns[TopicExperience]
}

// BuildPrompt composes the full instruction prompt for the next
// question. Pure: all variability comes from the caller-supplied
// history.
func BuildPrompt(industry string, interviewType InterviewType, questionCount int, history []QA) string {
	if len(history) == 0 {
		return buildOpeningPrompt(industry, interviewType, questionCount)
	}
	return buildContinuationPrompt(industry, interviewType, questionCount, history)
}

func buildOpeningPrompt(industry string, interviewType InterviewType, questionCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an experienced interviewer in the %s industry's HR department, conducting a %s.\n\n", industry, interviewType.Label())
	b.WriteString(PersonaFor(industry).PromptBlock())
	b.WriteString("\n\n[Interview policy]\n")
	fmt.Fprintf(&b, "- A full interview of %d questions in total\n", questionCount)
	b.WriteString("- Built around the three required topics: self-introduction, motivation, student experience\n")
	b.WriteString("- Probe each answer with 2-3 follow-up questions to reach its substance\n")
	b.WriteString("- Evaluate from a viewpoint that fits the industry's character\n")
	if questionCount == 10 {
		b.WriteString("- 15-minute interview (10 questions): 3 required questions plus 7 deep dives\n")
	}

	b.WriteString("\n[First question]\n")
	b.WriteString(openingQuestion)
	b.WriteString("\n\n[Ground rules]\n")
	b.WriteString("- Ask exactly one question at a time\n")
	b.WriteString("- Keep a friendly, natural conversational tone\n")
	b.WriteString("- Never show question numbers\n")
	b.WriteString("- Maintain the measured tension of a real interview")

	return b.String()
}

func buildContinuationPrompt(industry string, interviewType InterviewType, questionCount int, history []QA) string {
	last := history[len(history)-1]
	questionNumber := len(history) + 1
	flow := AnalyzeFlow(history, questionCount)
	responseType := ClassifyResponseType(last.Question, last.Answer)

	var b strings.Builder

	fmt.Fprintf(&b, "You are an experienced interviewer in the %s industry's HR department, conducting a %s.\n\n", industry, interviewType.Label())
	b.WriteString(PersonaFor(industry).PromptBlock())

	b.WriteString("\n\n[Current state of the interview]\n")
	fmt.Fprintf(&b, "- Progress: question %d of %d\n", questionNumber, questionCount)
	fmt.Fprintf(&b, "- Previous question: %q\n", last.Question)
	fmt.Fprintf(&b, "- Previous answer: %q\n", last.Answer)
	fmt.Fprintf(&b, "- Answer quality so far: %s\n", flow.ConversationQuality)
	fmt.Fprintf(&b, "- Topics covered: %s\n", joinOrNone(flow.CoveredTopics))
	fmt.Fprintf(&b, "- Topics still missing: %s\n", joinOrNone(flow.MissingTopics))
	fmt.Fprintf(&b, "- Recommended action: %s\n", flow.RecommendedNextAction)

	b.WriteString("\n[Next question strategy]\n")
	switch {
	case len(flow.MissingTopics) > 0:
		fmt.Fprintf(&b, "Priority: ask about the uncovered required topic %q\n", flow.MissingTopics[0])
	case flow.RecommendedNextAction == ActionDeepDive:
		fmt.Fprintf(&b, "Dig deeper into the previous answer (%q...)\n", truncate(last.Answer, 50))
	default:
		b.WriteString("Move toward wrapping up the interview\n")
	}

	fmt.Fprintf(&b, "\n[Deep-dive patterns for the previous answer type: %s]\n", responseType)
	for _, pattern := range firstN(DeepDivePatternsFor(responseType), 3) {
		fmt.Fprintf(&b, "- %s\n", pattern)
	}

	b.WriteString("\n[Emphasis for this interview round]\n")
	switch interviewType {
	case SecondRound:
		b.WriteString("- Student experience: 50% (focus on leadership and overcoming difficulty)\n- Motivation: 50% (industry understanding, career vision)\n")
	case FinalRound:
		b.WriteString("- Motivation: 70% (future vision and company understanding in depth)\n- Student experience: 30% (how it transfers to the job)\n")
	default:
		b.WriteString("- Student experience: 70% (concrete episodes, roles and results in detail)\n- Motivation: 30% (confirm the basic motivation)\n")
	}

	if questionCount == 10 {
		b.WriteString("\n[Phase map for the 15-minute interview (10 questions)]\n")
		b.WriteString("- Questions 1-3: the required topics (self-introduction, motivation, student experience)\n")
		b.WriteString("- Questions 4-9: deep dives, 2-3 per topic\n")
		b.WriteString("- Question 10: closing question or the candidate's own questions\n")
	}

	b.WriteString("\n[Question generation rules]\n")
	b.WriteString("1. Always refer to the previous answer (\"You mentioned earlier that...\")\n")
	b.WriteString("2. Keep the natural flow of the conversation\n")
	if questionNumber >= questionCount {
		b.WriteString("3. As the final question, ask \"Finally, do you have any questions for us?\"\n")
	} else {
		b.WriteString("3. Either dig deeper or move to a new topic\n")
	}
	b.WriteString("4. Reflect the industry's character in your viewpoint\n")
	b.WriteString("5. Never show question numbers\n")

	b.WriteString("\n[Important] Based on the previous answer, generate exactly one natural, meaningful next question as the interviewer.")

	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
