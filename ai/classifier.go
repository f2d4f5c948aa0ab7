package ai

import "strings"

// Topic is the bucket a chatbot message is classified into.
type Topic string

const (
	TopicFood       Topic = "food"
	TopicGreek      Topic = "greek"
	TopicWeekend    Topic = "weekend"
	TopicBasketball Topic = "basketball"
	TopicStudy      Topic = "study"
	TopicLibrary    Topic = "library"
	TopicEvents     Topic = "events"
	TopicPoints     Topic = "points"
	TopicDefault    Topic = "default"
)

// topicRule pairs a topic with the substrings that trigger it.
type topicRule struct {
	Topic    Topic
	Triggers []string
}

// topicOrder is the canonical priority order for classification. The
// first topic whose trigger set matches wins, so more specific topics
// (basketball, library) sit ahead of the broader buckets (events, study)
// that would otherwise swallow their keywords. Changing this order
// changes classification results for ambiguous messages.
var topicOrder = []topicRule{
	{TopicFood, []string{"food", "eat", "hungry", "lair", "den", "pizza"}},
	{TopicGreek, []string{"greek", "sorority", "fraternity", "rush", "mixer"}},
	{TopicWeekend, []string{"weekend", "friday", "saturday", "sunday", "tonight"}},
	{TopicBasketball, []string{"basketball", "game day", "gersten", "tipoff", "hoops"}},
	{TopicStudy, []string{"study", "homework", "exam", "quiet", "finals"}},
	{TopicLibrary, []string{"library", "books", "hannon"}},
	{TopicEvents, []string{"event", "party", "game", "happening"}},
	{TopicPoints, []string{"point", "score", "rank", "leaderboard", "streak"}},
}

// Classify maps a free-text message to a Topic. Matching is substring
// containment against the lowercased message; TopicDefault is returned
// when nothing matches. Pure function, no side effects.
func Classify(message string) Topic {
	lowered := strings.ToLower(message)
	for _, rule := range topicOrder {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lowered, trigger) {
				return rule.Topic
			}
		}
	}
	return TopicDefault
}

// Topics returns the canonical topic list in priority order, with
// TopicDefault appended last.
func Topics() []Topic {
	topics := make([]Topic, 0, len(topicOrder)+1)
	for _, rule := range topicOrder {
		topics = append(topics, rule.Topic)
	}
	return append(topics, TopicDefault)
}
