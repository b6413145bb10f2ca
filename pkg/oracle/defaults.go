package oracle

// DefaultSymptomCatalog is the built-in catalog used when the generation
// service cannot supply one. Starting an assessment must never be blocked on
// the oracle, so callers fall back to this list.
func DefaultSymptomCatalog() []Symptom {
	return []Symptom{
		{ID: "s1", Name: "Anxiety", Clarifications: []string{"Constant worry", "Panic attacks", "Restlessness without a clear cause", "Fear of the future"}},
		{ID: "s2", Name: "Low mood", Clarifications: []string{"Persistent sadness", "Loss of interest", "Feelings of hopelessness"}},
		{ID: "s3", Name: "Sleep problems", Clarifications: []string{"Trouble falling asleep", "Frequent waking", "Sleeping too much"}},
		{ID: "s4", Name: "Fatigue", Clarifications: []string{"Constant tiredness", "No energy", "Hard to get up in the morning"}},
		{ID: "s5", Name: "Concentration difficulties", Clarifications: []string{"Hard to focus", "Forgetfulness", "Mind wandering"}},
		{ID: "s6", Name: "Appetite changes", Clarifications: []string{"Loss of appetite", "Overeating", "Weight changes"}},
		{ID: "s7", Name: "Irritability", Clarifications: []string{"Angry outbursts", "Impatience", "Aggressiveness"}},
		{ID: "s8", Name: "Social withdrawal", Clarifications: []string{"Avoiding contact", "Loneliness", "Relationship difficulties"}},
	}
}

// DefaultVariants is the generic fallback when complaint-specific variants
// cannot be generated. The user can always restate the complaint verbatim.
func DefaultVariants(complaint string) []string {
	v := []string{
		"I have been feeling overwhelmed and it is affecting my daily life",
		"I struggle with my mood more days than not",
		"I am not sleeping well and it is wearing me down",
	}
	if complaint != "" {
		v = append([]string{complaint}, v...)
	}
	return v
}
