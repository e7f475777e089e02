package domain

import "strings"

// Category maps a label to the literal substrings that select it.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is an ordered category table. Declaration order is the order in
// which matched categories are reported.
type Taxonomy []Category

// Categorize returns the name of every category with at least one keyword
// contained in text. text is expected to be lowercased already.
func (t Taxonomy) Categorize(text string) []string {
	matched := make([]string, 0, len(t))
	for _, category := range t {
		for _, keyword := range category.Keywords {
			if strings.Contains(text, keyword) {
				matched = append(matched, category.Name)
				break
			}
		}
	}

	return matched
}

// Names lists the category labels in declaration order.
func (t Taxonomy) Names() []string {
	names := make([]string, 0, len(t))
	for _, category := range t {
		names = append(names, category.Name)
	}
	return names
}

// MatchPhrases returns every phrase contained in text, in phrase order.
// Overlapping phrases are all reported.
func MatchPhrases(text string, phrases []string) []string {
	matched := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			matched = append(matched, phrase)
		}
	}

	return matched
}

// DreamTaxonomy bundles the tables used by AnalyzeDream.
type DreamTaxonomy struct {
	Themes          Taxonomy
	Emotions        Taxonomy
	LucidityPhrases []string
}

var themeTaxonomy = Taxonomy{
	{Name: "flying", Keywords: []string{"fly", "flying", "soar", "floating", "airborne"}},
	{Name: "falling", Keywords: []string{"fall", "falling", "drop", "plummet"}},
	{Name: "water", Keywords: []string{"water", "ocean", "river", "swimming", "drowning", "rain"}},
	{Name: "animals", Keywords: []string{"dog", "cat", "bird", "snake", "spider", "animal"}},
	{Name: "people", Keywords: []string{"person", "people", "friend", "family", "stranger"}},
	{Name: "chase", Keywords: []string{"chase", "chased", "running", "escape", "pursued"}},
	{Name: "school", Keywords: []string{"school", "classroom", "teacher", "exam", "test"}},
	{Name: "work", Keywords: []string{"work", "job", "office", "boss", "meeting"}},
	{Name: "death", Keywords: []string{"death", "die", "dead", "funeral", "grave"}},
	{Name: "lost", Keywords: []string{"lost", "missing", "can't find", "searching"}},
}

var emotionTaxonomy = Taxonomy{
	{Name: "fear", Keywords: []string{"afraid", "scared", "terrified", "fear", "frightened", "panic"}},
	{Name: "joy", Keywords: []string{"happy", "joy", "excited", "elated", "cheerful", "delighted"}},
	{Name: "sadness", Keywords: []string{"sad", "crying", "tears", "grief", "sorrow", "depressed"}},
	{Name: "anger", Keywords: []string{"angry", "mad", "furious", "rage", "irritated", "annoyed"}},
	{Name: "confusion", Keywords: []string{"confused", "lost", "puzzled", "bewildered", "unclear"}},
	{Name: "peace", Keywords: []string{"calm", "peaceful", "serene", "tranquil", "relaxed"}},
}

var lucidityPhrases = []string{
	"realized i was dreaming",
	"knew i was dreaming",
	"lucid",
	"aware it was a dream",
	"controlled the dream",
	"reality check",
	"dream sign",
	"became aware",
}

// DefaultDreamTaxonomy returns the built-in tables. Each call returns fresh
// slices so callers cannot mutate the shared tables.
func DefaultDreamTaxonomy() DreamTaxonomy {
	return DreamTaxonomy{
		Themes:          cloneTaxonomy(themeTaxonomy),
		Emotions:        cloneTaxonomy(emotionTaxonomy),
		LucidityPhrases: append([]string(nil), lucidityPhrases...),
	}
}

func cloneTaxonomy(t Taxonomy) Taxonomy {
	out := make(Taxonomy, 0, len(t))
	for _, category := range t {
		out = append(out, Category{
			Name:     category.Name,
			Keywords: append([]string(nil), category.Keywords...),
		})
	}
	return out
}
