package emotion

// Common mood phrases mapped to the canonical emotion we query verses for.
// Built once, read-only after init, so concurrent lookups are fine.
// Keeps synonym clusters together on purpose (cheated/deceived -> betrayed etc).
var commonEmotions = map[string]string{
	"cheated":      "betrayed",
	"betrayed":     "betrayed",
	"deceived":     "betrayed",
	"lied to":      "betrayed",
	"anxious":      "anxious",
	"worried":      "anxious",
	"nervous":      "anxious",
	"sad":          "sad",
	"depressed":    "sad",
	"unhappy":      "sad",
	"melancholy":   "sad",
	"angry":        "angry",
	"frustrated":   "angry",
	"irritated":    "angry",
	"happy":        "happy",
	"joyful":       "happy",
	"content":      "happy",
	"grateful":     "grateful",
	"thankful":     "grateful",
	"appreciative": "grateful",
	"confused":     "confused",
	"uncertain":    "confused",
	"doubtful":     "confused",
	"lonely":       "lonely",
	"isolated":     "lonely",
	"abandoned":    "lonely",
	"hopeful":      "hopeful",
	"optimistic":   "hopeful",
	"inspired":     "hopeful",
	"fearful":      "fearful",
	"scared":       "fearful",
	"terrified":    "fearful",
	"guilty":       "guilty",
	"ashamed":      "guilty",
	"peaceful":     "peaceful",
	"calm":         "peaceful",
	"serene":       "peaceful",
	"stressed":     "stressed",
	"overwhelmed":  "stressed",
	"pressured":    "stressed",
	"jealous":      "jealous",
	"envious":      "jealous",
	"resentful":    "jealous",
	"disappointed": "disappointed",
	"let down":     "disappointed",
	"disheartened": "disappointed",
	"proud":        "proud",
	"accomplished": "proud",
	"confident":    "proud",
	"embarrassed":  "embarrassed",
	"humiliated":   "embarrassed",
	"mortified":    "embarrassed",
	"bored":        "bored",
	"uninterested": "bored",
	"apathetic":    "bored",
	"excited":      "excited",
	"enthusiastic": "excited",
	"eager":        "excited",
	"hurt":         "hurt",
	"wounded":      "hurt",
	"pained":       "hurt",
	"loved":        "loved",
	"cherished":    "loved",
	"adored":       "loved",
	"regretful":    "regretful",
	"remorseful":   "regretful",
	"sorry":        "regretful",
	"nostalgic":    "nostalgic",
	"reminiscent":  "nostalgic",
	"homesick":     "nostalgic",
	"curious":      "curious",
	"inquisitive":  "curious",
	"interested":   "curious",
}

// Lookup - Canonical label for an already-lowercased phrase
func Lookup(phrase string) (string, bool) {
	canonical, ok := commonEmotions[phrase]
	return canonical, ok
}
