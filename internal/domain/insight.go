package domain

import "slices"

const (
	fallbackInsight   = "Every dream offers unique insights into your subconscious mind."
	emptyDreamInsight = "Record your dreams in more detail for better analysis."
	lucidityInsight   = "Great job achieving lucidity! This shows growing dream awareness."
)

type insightRule struct {
	label   string
	insight string
}

var themeInsightRules = []insightRule{
	{label: "flying", insight: "Flying dreams often represent a desire for freedom or escape from limitations."},
	{label: "falling", insight: "Falling dreams may indicate feelings of losing control in waking life."},
	{label: "water", insight: "Water in dreams often relates to emotions and the unconscious mind."},
	{label: "chase", insight: "Being chased in dreams might reflect avoidance of a situation or feeling in waking life."},
}

var emotionInsightRules = []insightRule{
	{label: "fear", insight: "Fear in dreams can help process anxieties from your waking life."},
	{label: "joy", insight: "Positive emotions in dreams may reflect contentment or hopes for the future."},
}

// GenerateInsights applies theme rules, then emotion rules, then the
// lucidity rule. The result is never empty.
func GenerateInsights(themes, emotions, lucidityIndicators []string) []string {
	insights := make([]string, 0, len(themeInsightRules)+len(emotionInsightRules)+1)

	for _, rule := range themeInsightRules {
		if slices.Contains(themes, rule.label) {
			insights = append(insights, rule.insight)
		}
	}
	for _, rule := range emotionInsightRules {
		if slices.Contains(emotions, rule.label) {
			insights = append(insights, rule.insight)
		}
	}
	if len(lucidityIndicators) > 0 {
		insights = append(insights, lucidityInsight)
	}

	if len(insights) == 0 {
		insights = append(insights, fallbackInsight)
	}

	return insights
}
