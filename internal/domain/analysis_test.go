package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDreamFlyingOverOcean(t *testing.T) {
	t.Parallel()

	got := AnalyzeDream("I was flying over the ocean and felt calm", DefaultDreamTaxonomy())

	assert.Equal(t, []string{"flying", "water"}, got.Themes)
	assert.Equal(t, []string{"peace"}, got.Emotions)
	assert.Empty(t, got.LucidityIndicators)
	assert.Equal(t, []string{
		"Flying dreams often represent a desire for freedom or escape from limitations.",
		"Water in dreams often relates to emotions and the unconscious mind.",
	}, got.Insights)
	assert.Equal(t, "This dream features themes of flying, water with emotional undertones of peace.", got.Summary)
}

func TestAnalyzeDreamLucidFlying(t *testing.T) {
	t.Parallel()

	got := AnalyzeDream("realized i was dreaming and started flying", DefaultDreamTaxonomy())

	assert.Equal(t, []string{"realized i was dreaming"}, got.LucidityIndicators)
	assert.NotContains(t, got.LucidityIndicators, "lucid")
	assert.Equal(t, []string{"flying"}, got.Themes)
	assert.Contains(t, got.Insights, lucidityInsight)
	assert.True(t, got.IsLucid())
	assert.Equal(t, "This dream features themes of flying. Notably, this was a lucid dream experience!", got.Summary)
}

func TestAnalyzeDreamEmptyInput(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t"} {
		got := AnalyzeDream(text, DefaultDreamTaxonomy())

		assert.Equal(t, DreamAnalysisResult{
			Summary:            "No dream content to analyze.",
			Themes:             []string{},
			Emotions:           []string{},
			LucidityIndicators: []string{},
			Insights:           []string{"Record your dreams in more detail for better analysis."},
		}, got)
	}
}

func TestAnalyzeDreamWithoutKeywordsUsesFallbackInsight(t *testing.T) {
	t.Parallel()

	got := AnalyzeDream("A quiet evening in the garden", DefaultDreamTaxonomy())

	assert.Empty(t, got.Themes)
	assert.Empty(t, got.Emotions)
	assert.Empty(t, got.LucidityIndicators)
	assert.Equal(t, []string{"Every dream offers unique insights into your subconscious mind."}, got.Insights)
	assert.Equal(t, "This dream contains unique personal symbolism.", got.Summary)
}

func TestAnalyzeDreamRecordsEveryMatchedLucidityPhrase(t *testing.T) {
	t.Parallel()

	got := AnalyzeDream("I became aware and went lucid", DefaultDreamTaxonomy())

	assert.Equal(t, []string{"lucid", "became aware"}, got.LucidityIndicators)
	assert.Equal(t, []string{lucidityInsight}, got.Insights)
	assert.Equal(t, "This dream contains unique personal symbolism. Notably, this was a lucid dream experience!", got.Summary)
}

func TestAnalyzeDreamIsCaseInsensitiveAndDeduplicatesCategories(t *testing.T) {
	t.Parallel()

	got := AnalyzeDream("FLYING, I would fly and SOAR while floating", DefaultDreamTaxonomy())

	assert.Equal(t, []string{"flying"}, got.Themes)
}

func TestAnalyzeDreamIsIdempotent(t *testing.T) {
	t.Parallel()

	text := "I was chased by a dog and felt scared, then I was happy"
	first := AnalyzeDream(text, DefaultDreamTaxonomy())
	second := AnalyzeDream(text, DefaultDreamTaxonomy())

	require.Equal(t, first, second)
	assert.Equal(t, []string{
		"Being chased in dreams might reflect avoidance of a situation or feeling in waking life.",
		"Fear in dreams can help process anxieties from your waking life.",
		"Positive emotions in dreams may reflect contentment or hopes for the future.",
	}, first.Insights)
}

func TestAnalyzeDreamTagsAreThemesThenEmotions(t *testing.T) {
	t.Parallel()

	got := AnalyzeDream("falling into the river, terrified", DefaultDreamTaxonomy())

	assert.Equal(t, []string{"falling", "water", "fear"}, got.Tags())
}
