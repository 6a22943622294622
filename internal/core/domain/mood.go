package domain

// Mood indicates the user's emotional state for a journal entry.
type Mood string

const (
	MoodVeryHappy Mood = "very_happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very_sad"
)

// AllMoods lists every mood, happiest first.
var AllMoods = []Mood{MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad}

// IsValid reports whether m is one of the known moods.
func (m Mood) IsValid() bool {
	switch m {
	case MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad:
		return true
	}
	return false
}

// Emoji returns the symbol shown next to the mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodVeryHappy:
		return "😄"
	case MoodHappy:
		return "🙂"
	case MoodNeutral:
		return "😐"
	case MoodSad:
		return "😔"
	case MoodVerySad:
		return "😢"
	}
	return ""
}

// DisplayName returns the human-readable mood label.
func (m Mood) DisplayName() string {
	switch m {
	case MoodVeryHappy:
		return "Very Happy"
	case MoodHappy:
		return "Happy"
	case MoodNeutral:
		return "Neutral"
	case MoodSad:
		return "Sad"
	case MoodVerySad:
		return "Very Sad"
	}
	return ""
}

// Score returns the ordinal value of the mood, 1 (very sad) to 5 (very happy).
func (m Mood) Score() int {
	switch m {
	case MoodVeryHappy:
		return 5
	case MoodHappy:
		return 4
	case MoodNeutral:
		return 3
	case MoodSad:
		return 2
	case MoodVerySad:
		return 1
	}
	return 0
}
