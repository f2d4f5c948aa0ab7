package service

import (
	"context"
	"errors"
	"regexp"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/internal/store"
)

// ErrInvalidStudentID is returned for student ids that are not exactly
// eight digits.
var ErrInvalidStudentID = errors.New("student id must be exactly 8 digits")

var studentIDPattern = regexp.MustCompile(`^\d{8}$`)

// WaitlistService handles pre-launch signups.
type WaitlistService struct {
	waitlist store.WaitlistStore
}

// NewWaitlistService creates a new waitlist service.
func NewWaitlistService(waitlist store.WaitlistStore) *WaitlistService {
	return &WaitlistService{waitlist: waitlist}
}

// Join validates and records a signup. Duplicate emails or student ids
// surface store.ErrDuplicateSignup.
func (s *WaitlistService) Join(ctx context.Context, req *models.WaitlistSignupRequest) (*models.WaitlistEntry, error) {
	if !studentIDPattern.MatchString(req.StudentID) {
		return nil, ErrInvalidStudentID
	}

	entry := &models.WaitlistEntry{
		Name:           req.Name,
		Email:          req.Email,
		StudentID:      req.StudentID,
		Phone:          req.Phone,
		GraduationYear: req.GraduationYear,
		Major:          req.Major,
		ReferralSource: req.ReferralSource,
	}
	if err := s.waitlist.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Count returns the number of signups.
func (s *WaitlistService) Count(ctx context.Context) (int64, error) {
	return s.waitlist.Count(ctx)
}
