package interview

import (
	"fmt"
	"strings"
)

// Persona is the fixed set of tone/value/question-focus attributes for
// one industry, used to shape generated prompts.
type Persona struct {
	Characteristics string
	Values          string
	KeyQuestions    []string
	Tone            string
}

const (
	IndustryIT            = "IT"
	IndustryFinance       = "finance"
	IndustryTrading       = "trading"
	IndustryConsulting    = "consulting"
	IndustryManufacturing = "manufacturing"
	IndustryOther         = "other"
)

var personas = map[string]Persona{
	IndustryIT: {
		Characteristics: "technical curiosity, logical thinking, innovation, problem solving, continuous learning, agile mindset",
		Values:          "speed, efficiency, creativity, data-driven thinking, user-centered design",
		KeyQuestions: []string{
			"programming experience, interest in technology and how you learn it",
			"episodes that show logical thinking and your problem-solving approach",
			"how you keep up with new technologies",
			"understanding of or experience with team and agile development",
			"thinking from the user's perspective and interest in UX/UI",
		},
		Tone: "an approachable, modern and innovative interviewer who is happy to go into technical topics",
	},
	IndustryFinance: {
		Characteristics: "risk awareness, numerical analysis, reliability, compliance mindset, sense of responsibility, long-term perspective",
		Values:          "stability, accuracy, trust, long-term perspective, social responsibility",
		KeyQuestions: []string{
			"interest in numbers and data, analytical experience",
			"episodes that show responsibility and reliability",
			"understanding of the finance industry and its social role",
			"experience with risk management and careful judgment",
			"planning and goal setting with a long-term view",
		},
		Tone: "a polite, composed interviewer who values trust and social responsibility",
	},
	IndustryTrading: {
		Characteristics: "global perspective, negotiation, relationship building, appetite for challenge, adaptability, cultural understanding",
		Values:          "diversity, speed, relationships, challenge, global thinking",
		KeyQuestions: []string{
			"overseas experience, language skills and cross-cultural understanding",
			"communication and negotiation experience, persuasiveness",
			"episodes that show a challenging spirit and overcoming difficulty",
			"building relationships with diverse people, teamwork",
			"global outlook and interest in world affairs",
		},
		Tone: "an energetic interviewer with an international outlook who values taking on challenges",
	},
	IndustryConsulting: {
		Characteristics: "logical analysis, problem solving, proposal skills, client orientation, structured thinking, hypothesis-driven thinking",
		Values:          "logic, efficiency, value creation, client first, results focus",
		KeyQuestions: []string{
			"episodes that show logical thinking and use of frameworks",
			"your concrete problem-solving process and approach",
			"proposals or improvements made in a team, leadership",
			"thinking from the client's standpoint and understanding others' positions",
			"experience forming and testing hypotheses, running improvement cycles",
		},
		Tone: "a sharp, intellectual and results-oriented interviewer who asks logical questions",
	},
	IndustryManufacturing: {
		Characteristics: "quality mindset, continuous improvement, teamwork, craftsmanship, safety awareness, respect for engineering",
		Values:          "quality, safety, teamwork, continuous improvement, technical innovation",
		KeyQuestions: []string{
			"interest in making things and attention to quality",
			"episodes of teamwork and cooperation, how roles were shared",
			"experience with continuous improvement and small refinements",
			"awareness of safety and quality, sense of responsibility",
			"interest in engineering and manufacturing processes",
		},
		Tone: "a warm, steady interviewer who values teamwork and quality",
	},
	IndustryOther: {
		Characteristics: "basic business skills, communication, willingness to learn, adaptability, integrity",
		Values:          "communication, willingness to learn, adaptability, basic business manners, integrity",
		KeyQuestions: []string{
			"basic communication skills and interpersonal relationships",
			"willingness to learn and attitude toward growth",
			"episodes of adaptability and flexibility in the face of change",
			"business manners and the basics of working life, responsibility",
			"integrity and experience building trust",
		},
		Tone: "a balanced, approachable interviewer who values the fundamentals",
	},
}

// PersonaFor returns the persona for an industry. Unknown industries
// silently map to the generic one.
func PersonaFor(industry string) Persona {
	if p, ok := personas[industry]; ok {
		return p
	}
	return personas[IndustryOther]
}

// PromptBlock renders the persona as the block embedded in every
// interviewer prompt.
func (p Persona) PromptBlock() string {
	return fmt.Sprintf(`[Industry character] %s
[Valued qualities] %s
[Key question areas] %s
[Interviewer profile] %s`,
		p.Characteristics, p.Values, strings.Join(p.KeyQuestions, "; "), p.Tone)
}
