package store

import (
	"time"

	"campus-llm/backend/internal/models"
)

// Development seed records. The collections are created once at process
// start and mutated in place for the process lifetime.

func seedUsers() []models.User {
	return []models.User{
		{
			ID:     1,
			Name:   "Alex Johnson",
			Email:  "alex.johnson@lmu.edu",
			Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			Points: 1250,
			Rank:   4,
			Streak: 7,
			Orgs:   []string{"Greek Life", "Student Government", "Basketball Club"},
			Badges: []models.Badge{
				{ID: 1, Name: "First Event", Icon: "🎉", Description: "Attended your first event"},
				{ID: 2, Name: "Week Warrior", Icon: "🔥", Description: "7-day streak"},
				{ID: 3, Name: "Social Butterfly", Icon: "🦋", Description: "Joined 3+ organizations"},
			},
		},
		{
			ID:     2,
			Name:   "Sarah Chen",
			Email:  "sarah.chen@lmu.edu",
			Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=50&h=50&fit=crop&crop=face",
			Points: 2500,
			Rank:   1,
			Streak: 12,
		},
		{
			ID:     3,
			Name:   "Mike Rodriguez",
			Email:  "mike.rodriguez@lmu.edu",
			Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=50&h=50&fit=crop&crop=face",
			Points: 2200,
			Rank:   2,
			Streak: 9,
		},
		{
			ID:     4,
			Name:   "Emma Wilson",
			Email:  "emma.wilson@lmu.edu",
			Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=50&h=50&fit=crop&crop=face",
			Points: 2000,
			Rank:   3,
			Streak: 5,
		},
		{
			ID:     5,
			Name:   "David Kim",
			Email:  "david.kim@lmu.edu",
			Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=50&h=50&fit=crop&crop=face",
			Points: 1100,
			Rank:   5,
			Streak: 3,
		},
	}
}

func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:          1,
			Title:       "LMU vs USC Basketball Game",
			Type:        "game",
			Date:        time.Date(2024, 2, 15, 19, 0, 0, 0, time.UTC),
			Location:    "Gersten Pavilion",
			Image:       "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=400&h=250&fit=crop",
			Host:        "LMU Athletics",
			Description: "Come support the Lions as they take on USC! Wear your LMU gear and show your school spirit!",
			Attendees:   []int{1, 2, 3, 4, 5},
			MaxCapacity: 500,
			CheckedIn:   []int{1, 2},
			Points:      100,
			Tags:        []string{"basketball", "game-day", "spirit"},
		},
		{
			ID:          2,
			Title:       "Greek Life Mixer",
			Type:        "greek",
			Date:        time.Date(2024, 2, 16, 20, 0, 0, 0, time.UTC),
			Location:    "Sunken Garden",
			Image:       "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=400&h=250&fit=crop",
			Host:        "Greek Council",
			Description: "Join us for an evening of networking and fun with all Greek organizations!",
			Attendees:   []int{1, 3},
			MaxCapacity: 200,
			CheckedIn:   []int{},
			Points:      75,
			Tags:        []string{"greek", "social", "networking"},
		},
	}
}

func seedPrizes() []models.Prize {
	return []models.Prize{
		{
			ID:          1,
			Name:        "LMU Hoodie",
			Description: "Official LMU branded hoodie",
			Image:       "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=300&h=300&fit=crop",
			PointCost:   500,
			Status:      models.PrizeAvailable,
		},
		{
			ID:          2,
			Name:        "Game Day Tickets",
			Description: "VIP tickets to next basketball game",
			Image:       "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=300&h=300&fit=crop",
			PointCost:   1000,
			Status:      models.PrizeAvailable,
		},
	}
}
