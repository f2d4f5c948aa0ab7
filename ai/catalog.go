package ai

// replyCatalog holds one canned GenZ Buddy reply per topic. Every topic
// in topicOrder has an entry, and TopicDefault is always present, so a
// lookup can never come back empty.
var replyCatalog = map[Topic]string{
	TopicFood: "Omg the Lair is literally the GOAT for late night munchies! 🍕 Their pizza hits different at 2am, and the fries are *chef's kiss*. Also, the Den has some fire chicken tenders if you're feeling that vibe. Pro tip: bring your student ID for the discount! 💅✨",

	TopicGreek: "Yasss Greek life is where it's at! 🏛️ First, go to the Greek Life mixer this Friday (I'll send you the deets). Then check out rush week in the spring - it's like a whole vibe! Each house has their own personality, so go to as many events as you can. My friend Sarah just joined Alpha Phi and she's living her best life! DM me if you want the tea on specific houses 👀",

	TopicWeekend: "This weekend is gonna be LIT! 🔥 Friday we have the basketball game vs USC (wear your LMU gear!), Saturday is the Greek mixer in the Sunken Garden, and Sunday there's a study session at the library for finals prep. Plus, there's a campus spirit challenge going on - you can earn points and prizes! Are you going to any of these? I can give you the full tea ☕",

	TopicBasketball: "LET'S GO LIONS! 🦁🏀 Gersten Pavilion gets absolutely unhinged on game day - the student section is a whole experience. Show up early to snag a spot, wear crimson and navy, and check in through the app for game day points! The USC game this Friday is THE one to be at, trust me 🔥",

	TopicStudy: "The library is obviously the classic choice, but here's the real tea: 🫖 The 3rd floor of the library has the best views and is usually quieter. The Den has great vibes if you want background noise, and the new student center has these amazing pods that are perfect for group study sessions. My secret spot? The rooftop of the business building - it's so aesthetic and peaceful! 📚✨",

	TopicLibrary: "Hannon Library is lowkey elite! 📚 Floors get quieter the higher you go - 3rd floor is the sweet spot with the views. You can reserve study rooms online (do it early during finals, they go FAST), and the 24-hour zone is clutch for late-night grinds. Bring a jacket tho, the AC does not play 🥶✨",

	TopicEvents: "Check out the Events tab in the app! There's always something going on - from basketball games to Greek mixers to study sessions. Plus, you can earn points for attending events and climb the leaderboard! What kind of vibe are you looking for? 🎉",

	TopicPoints: "You can earn points by attending events, completing daily challenges, checking in at game days, and participating in campus activities! The more you engage, the more points you get. Use them to claim prizes like LMU merch and game tickets! 🏆",

	TopicDefault: "That's a great question! 🤔 Let me think... Honestly, I'm still learning about everything on campus, but I'd recommend checking out the student activities page or asking around! The LMU community is super helpful. What else can I help you with? 💫",
}

// Reply returns the canned reply for a topic, falling back to the
// default reply for any topic without an entry.
func Reply(topic Topic) string {
	if reply, ok := replyCatalog[topic]; ok {
		return reply
	}
	return replyCatalog[TopicDefault]
}
