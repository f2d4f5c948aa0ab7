package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByTopic(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Topic
	}{
		{"food", "what's the best late-night food on campus", TopicFood},
		{"greek", "when is rush week", TopicGreek},
		{"weekend", "anything fun tonight?", TopicWeekend},
		{"basketball", "are we watching hoops", TopicBasketball},
		{"study", "where should I cram for finals", TopicStudy},
		{"library", "is hannon open late", TopicLibrary},
		{"events", "is there a party coming up", TopicEvents},
		{"points", "how does the leaderboard work", TopicPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestClassifyCaseFolding(t *testing.T) {
	assert.Equal(t, TopicFood, Classify("PIZZA TIME"))
	assert.Equal(t, TopicGreek, Classify("Tell me about Greek life"))
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Both topics match; the earlier topic in the canonical order wins.
	assert.Equal(t, TopicFood, Classify("pizza at the library"))
	assert.Equal(t, TopicBasketball, Classify("basketball game"))
	assert.Equal(t, TopicWeekend, Classify("study session on sunday"))
}

func TestClassifyDefault(t *testing.T) {
	assert.Equal(t, TopicDefault, Classify("tell me about parking permits"))
	assert.Equal(t, TopicDefault, Classify(""))
}

func TestTopicsOrderStable(t *testing.T) {
	want := []Topic{
		TopicFood, TopicGreek, TopicWeekend, TopicBasketball,
		TopicStudy, TopicLibrary, TopicEvents, TopicPoints, TopicDefault,
	}
	assert.Equal(t, want, Topics())
}
