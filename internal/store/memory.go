package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"campus-llm/backend/internal/models"
)

// MemoryStore is the seeded in-memory record store. One mutex guards
// every compound mutation; claims touch both a prize and a user, so a
// single lock keeps the whole sequence atomic without any ordering
// concerns between per-collection locks.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[int]*models.User
	events   map[int]*models.Event
	prizes   map[int]*models.Prize
	waitlist []models.WaitlistEntry
	nextWait int
}

// NewMemoryStore creates a store populated with the development seed
// records.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:    make(map[int]*models.User),
		events:   make(map[int]*models.Event),
		prizes:   make(map[int]*models.Prize),
		nextWait: 1,
	}
	for _, u := range seedUsers() {
		user := u
		s.users[user.ID] = &user
	}
	for _, e := range seedEvents() {
		event := e
		s.events[event.ID] = &event
	}
	for _, p := range seedPrizes() {
		prize := p
		s.prizes[prize.ID] = &prize
	}
	return s
}

// GetUser returns a copy of the user record.
func (s *MemoryStore) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return copyUser(user), nil
}

// ListUsers returns copies of all user records.
func (s *MemoryStore) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, copyUser(user))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// AddPoints applies a point delta and returns the new balance.
func (s *MemoryStore) AddPoints(id, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return 0, ErrUserNotFound
	}
	user.Points += delta
	return user.Points, nil
}

// ListEvents returns copies of all event records ordered by id.
func (s *MemoryStore) ListEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, copyEvent(event))
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events
}

// GetEvent returns a copy of the event record.
func (s *MemoryStore) GetEvent(id int) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return models.Event{}, ErrEventNotFound
	}
	return copyEvent(event), nil
}

// ToggleRSVP flips attendee membership for the user.
func (s *MemoryStore) ToggleRSVP(eventID, userID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return "", ErrEventNotFound
	}

	for i, id := range event.Attendees {
		if id == userID {
			event.Attendees = append(event.Attendees[:i], event.Attendees[i+1:]...)
			return RSVPRemoved, nil
		}
	}
	event.Attendees = append(event.Attendees, userID)
	return RSVPAdded, nil
}

// CheckIn records attendance and credits the event's points exactly
// once per (event, user) pair.
func (s *MemoryStore) CheckIn(eventID, userID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return 0, ErrEventNotFound
	}
	for _, id := range event.CheckedIn {
		if id == userID {
			return 0, ErrAlreadyCheckedIn
		}
	}

	event.CheckedIn = append(event.CheckedIn, userID)
	if user, ok := s.users[userID]; ok {
		user.Points += event.Points
	}
	return event.Points, nil
}

// ListPrizes returns copies of all prize records ordered by id.
func (s *MemoryStore) ListPrizes() []models.Prize {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prizes := make([]models.Prize, 0, len(s.prizes))
	for _, prize := range s.prizes {
		prizes = append(prizes, copyPrize(prize))
	}
	sort.Slice(prizes, func(i, j int) bool { return prizes[i].ID < prizes[j].ID })
	return prizes
}

// ClaimPrize validates and mutates in one critical section: the claimed
// check, the balance check, the claimed-by assignment and the point
// deduction cannot interleave with a concurrent claim.
func (s *MemoryStore) ClaimPrize(prizeID, userID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prize, ok := s.prizes[prizeID]
	if !ok {
		return 0, ErrPrizeNotFound
	}
	user, ok := s.users[userID]
	if !ok {
		return 0, ErrUserNotFound
	}
	if prize.ClaimedBy != nil {
		return 0, ErrPrizeClaimed
	}
	if user.Points < prize.PointCost {
		return 0, ErrInsufficientPoints
	}

	claimant := userID
	prize.ClaimedBy = &claimant
	prize.Status = models.PrizeClaimed
	user.Points -= prize.PointCost
	return user.Points, nil
}

// Add appends a waitlist entry, rejecting duplicate emails and student
// ids.
func (s *MemoryStore) Add(ctx context.Context, entry *models.WaitlistEntry) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.waitlist {
		if existing.Email == entry.Email || existing.StudentID == entry.StudentID {
			return ErrDuplicateSignup
		}
	}

	entry.ID = s.nextWait
	s.nextWait++
	entry.CreatedAt = time.Now()
	if entry.Status == "" {
		entry.Status = "pending"
	}
	s.waitlist = append(s.waitlist, *entry)
	return nil
}

// Count returns the number of waitlist signups.
func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.waitlist)), nil
}

func copyUser(u *models.User) models.User {
	out := *u
	out.Orgs = append([]string(nil), u.Orgs...)
	out.Badges = append([]models.Badge(nil), u.Badges...)
	return out
}

func copyEvent(e *models.Event) models.Event {
	out := *e
	out.Attendees = append([]int(nil), e.Attendees...)
	out.CheckedIn = append([]int(nil), e.CheckedIn...)
	out.Tags = append([]string(nil), e.Tags...)
	return out
}

func copyPrize(p *models.Prize) models.Prize {
	out := *p
	if p.ClaimedBy != nil {
		claimant := *p.ClaimedBy
		out.ClaimedBy = &claimant
	}
	return out
}
