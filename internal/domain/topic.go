package domain

// Topic is an immutable curriculum entry. OriginalIndex is its position in
// the catalog it came from and is the stable key for preferences and
// completion tracking.
type Topic struct {
	Subject       string `json:"subject"`
	Front         string `json:"front"`
	Name          string `json:"name"`
	OriginalIndex int    `json:"original_index"`
}

const (
	MinDifficulty     = 0
	MaxDifficulty     = 4
	DefaultDifficulty = 2
)

// TopicPreference is the user's choice for a single topic.
type TopicPreference struct {
	Included   bool `json:"included"`
	Difficulty int  `json:"difficulty"`
}

// DefaultTopicPreference applies to topics the user never touched.
func DefaultTopicPreference() TopicPreference {
	return TopicPreference{Included: true, Difficulty: DefaultDifficulty}
}

// TopicPrefs maps OriginalIndex to preference.
type TopicPrefs map[int]TopicPreference

// For returns the stored preference or the default one.
func (p TopicPrefs) For(originalIndex int) TopicPreference {
	if pref, ok := p[originalIndex]; ok {
		return pref
	}
	return DefaultTopicPreference()
}

// CompletedTopics is the set of OriginalIndex values excluded from generation.
type CompletedTopics map[int]bool

// Clone returns an independent copy of the set.
func (c CompletedTopics) Clone() CompletedTopics {
	out := make(CompletedTopics, len(c))
	for k, v := range c {
		if v {
			out[k] = true
		}
	}
	return out
}
