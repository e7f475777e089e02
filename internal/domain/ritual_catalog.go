package domain

var predefinedRituals = []Ritual{
	{
		ID:          "reality-check-hands",
		Name:        "Hand Reality Check",
		Description: "Look at your hands and count your fingers to check if you're dreaming.",
		Instructions: []string{
			"Hold your hands up in front of your face",
			"Look at your palms and count your fingers",
			"Look away and look back again",
			"Ask yourself: \"Am I dreaming right now?\"",
			"In dreams, hands often appear distorted or have extra/missing fingers",
		},
		Duration:   1,
		Category:   RitualCategoryRealityCheck,
		Difficulty: DifficultyBeginner,
	},
	{
		ID:          "reality-check-digital",
		Name:        "Digital Clock Reality Check",
		Description: "Check digital clocks or text to see if they remain consistent.",
		Instructions: []string{
			"Look at a digital clock, phone, or any text",
			"Note the time or what the text says",
			"Look away briefly",
			"Look back at the same display",
			"In dreams, text and numbers often change when you look away and back",
		},
		Duration:   1,
		Category:   RitualCategoryRealityCheck,
		Difficulty: DifficultyBeginner,
	},
	{
		ID:          "mild-technique",
		Name:        "Mnemonic Induction (MILD)",
		Description: "Set the intention to remember you're dreaming as you fall asleep.",
		Instructions: []string{
			"As you're falling asleep, repeat: \"Next time I'm dreaming, I will remember I'm dreaming\"",
			"Visualize yourself becoming lucid in a recent dream",
			"Imagine recognizing dream signs and realizing you're dreaming",
			"Feel confident that you will remember to do reality checks in your dreams",
			"Continue until you fall asleep",
		},
		Duration:   10,
		Category:   RitualCategoryLucidDreaming,
		Difficulty: DifficultyIntermediate,
	},
	{
		ID:          "wake-back-bed",
		Name:        "Wake-Back-to-Bed (WBTB)",
		Description: "Wake up early, stay awake briefly, then return to sleep for lucid dreams.",
		Instructions: []string{
			"Set an alarm for 4-6 hours after falling asleep",
			"When the alarm goes off, get out of bed",
			"Stay awake for 15-60 minutes thinking about lucid dreaming",
			"Read about lucid dreaming or visualize becoming lucid",
			"Go back to sleep with the intention to have a lucid dream",
			"Practice MILD technique as you fall back asleep",
		},
		Duration:   30,
		Category:   RitualCategoryLucidDreaming,
		Difficulty: DifficultyIntermediate,
	},
	{
		ID:          "dream-recall-meditation",
		Name:        "Dream Recall Meditation",
		Description: "A meditation to improve your ability to remember dreams.",
		Instructions: []string{
			"Lie down comfortably in a quiet space",
			"Close your eyes and take several deep breaths",
			"Set the intention: \"I will remember my dreams clearly\"",
			"Visualize yourself waking up and immediately writing in your dream journal",
			"Imagine remembering vivid details from your dreams",
			"Feel grateful for the dreams you will remember",
		},
		Duration:   15,
		Category:   RitualCategoryDreamRecall,
		Difficulty: DifficultyBeginner,
	},
	{
		ID:          "mindfulness-meditation",
		Name:        "Awareness Meditation",
		Description: "Practice mindfulness to increase awareness in dreams.",
		Instructions: []string{
			"Find a comfortable seated position",
			"Close your eyes and focus on your breathing",
			"Notice thoughts, sensations, and sounds without judgment",
			"Practice asking: \"What am I experiencing right now?\"",
			"Cultivate a habit of questioning reality",
			"This awareness practice will carry into your dreams",
		},
		Duration:   20,
		Category:   RitualCategoryMeditation,
		Difficulty: DifficultyBeginner,
	},
}

// PredefinedRituals returns a copy of the built-in catalog in catalog order.
func PredefinedRituals() []Ritual {
	out := make([]Ritual, 0, len(predefinedRituals))
	for _, ritual := range predefinedRituals {
		ritual.Instructions = append([]string(nil), ritual.Instructions...)
		out = append(out, ritual)
	}
	return out
}
