package domain

import "strings"

const emptyDreamSummary = "No dream content to analyze."

type DreamAnalysisResult struct {
	Summary            string   `json:"summary"`
	Themes             []string `json:"themes"`
	Emotions           []string `json:"emotions"`
	LucidityIndicators []string `json:"lucidityIndicators"`
	Insights           []string `json:"insights"`
}

// IsLucid reports whether any lucidity phrase was found.
func (r DreamAnalysisResult) IsLucid() bool {
	return len(r.LucidityIndicators) > 0
}

// Tags returns themes followed by emotions.
func (r DreamAnalysisResult) Tags() []string {
	tags := make([]string, 0, len(r.Themes)+len(r.Emotions))
	tags = append(tags, r.Themes...)
	tags = append(tags, r.Emotions...)
	return tags
}

// AnalyzeDream classifies free dream text by case-insensitive substring
// matching. It has no side effects and accepts any input, including blank
// text.
func AnalyzeDream(text string, taxonomy DreamTaxonomy) DreamAnalysisResult {
	if strings.TrimSpace(text) == "" {
		return DreamAnalysisResult{
			Summary:            emptyDreamSummary,
			Themes:             []string{},
			Emotions:           []string{},
			LucidityIndicators: []string{},
			Insights:           []string{emptyDreamInsight},
		}
	}

	lowered := strings.ToLower(text)
	themes := taxonomy.Themes.Categorize(lowered)
	emotions := taxonomy.Emotions.Categorize(lowered)
	indicators := MatchPhrases(lowered, taxonomy.LucidityPhrases)

	return DreamAnalysisResult{
		Summary:            summarize(themes, emotions, indicators),
		Themes:             themes,
		Emotions:           emotions,
		LucidityIndicators: indicators,
		Insights:           GenerateInsights(themes, emotions, indicators),
	}
}

func summarize(themes, emotions, indicators []string) string {
	var b strings.Builder
	b.WriteString("This dream ")

	if len(themes) > 0 {
		b.WriteString("features themes of ")
		b.WriteString(strings.Join(themes, ", "))
	} else {
		b.WriteString("contains unique personal symbolism")
	}

	if len(emotions) > 0 {
		b.WriteString(" with emotional undertones of ")
		b.WriteString(strings.Join(emotions, ", "))
	}

	if len(indicators) > 0 {
		b.WriteString(". Notably, this was a lucid dream experience!")
	} else {
		b.WriteString(".")
	}

	return b.String()
}
