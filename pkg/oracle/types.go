package oracle

// Wire types mirror the generation bridge's JSON contract. They are raw,
// untrusted payloads: the survey normalizer turns them into canonical domain
// records before the state machine relies on them.

// Symptom is one catalog entry the bridge proposes at intake.
type Symptom struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Clarifications []string `json:"clarifications"`
}

// Question is one generated question as the bridge emits it. Type and ID may
// be missing or unrecognized; Options may be absent even for choice questions.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// RecommendedTest is one entry of the generated report's test list.
type RecommendedTest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Report is the final generated document set.
type Report struct {
	PersonalPlan     string            `json:"personalPlan"`
	PsychPrep        string            `json:"psychPrep"`
	SpecialistDoc    string            `json:"specialistDoc"`
	RecommendedTests []RecommendedTest `json:"recommendedTests"`
}

// SymptomSelection carries the user's picks for one symptom into a prompt.
type SymptomSelection struct {
	Clarifications []string `json:"clarifications,omitempty"`
	Details        string   `json:"details,omitempty"`
}

// PromptContext is the accumulated assessment context sent with each
// generation request: the intake plus every prior stage's answers. Field
// names follow the bridge's wire contract.
type PromptContext struct {
	Complaint     string                      `json:"generalDescription,omitempty"`
	Symptoms      map[string]SymptomSelection `json:"symptoms,omitempty"`
	Stage1Answers map[string]any              `json:"answersPart1,omitempty"`
	Stage2Answers map[string]any              `json:"answersPart2,omitempty"`
	Stage3Answers map[string]any              `json:"answersPart3,omitempty"`
}
