// Package licensing lists the licenses a user holds. The backing data is a
// demo fixture scoped to the requesting user; the dashboard renders whatever
// this service returns.
package licensing

import (
	"context"
	"time"

	"github.com/psalmos/web/internal/domain"
)

// Stats summarizes account activity for the dashboard header cards.
type Stats struct {
	TotalDownloads int
	ActivePlan     string
	CreditsUsed    int
	CreditsTotal   int
	NewThisMonth   int
}

// Service exposes per-user license data.
type Service struct{}

// NewService creates a licensing service.
func NewService() *Service {
	return &Service{}
}

// ForUser returns the licenses owned by the given user, newest first.
func (s *Service) ForUser(ctx context.Context, user *domain.User) ([]domain.License, error) {
	userID := ""
	if user.ID != nil {
		userID = user.ID.String()
	}

	days := func(n int) time.Time { return time.Now().Add(-time.Duration(n) * 24 * time.Hour) }

	return []domain.License{
		{
			ID:          "lic_001",
			UserID:      userID,
			TrackID:     "track_001",
			TrackTitle:  "Symphony No. 9 in D minor, Op. 125",
			Composer:    "Ludwig van Beethoven",
			Performer:   "Berlin Philharmonic",
			Label:       "Deutsche Grammophon",
			Type:        domain.LicenseStandard,
			DownloadURL: "https://example.com/download/beethoven-9th.mp3",
			CreatedAt:   days(2),
			UsageRights: []string{"YouTube", "Podcast", "Social Media"},
		},
		{
			ID:          "lic_002",
			UserID:      userID,
			TrackID:     "track_002",
			TrackTitle:  "The Four Seasons: Spring",
			Composer:    "Antonio Vivaldi",
			Performer:   "Academy of St Martin in the Fields",
			Label:       "EMI Classics",
			Type:        domain.LicenseExtended,
			DownloadURL: "https://example.com/download/vivaldi-spring.mp3",
			CreatedAt:   days(5),
			UsageRights: []string{"YouTube", "Podcast", "Social Media", "Commercial Use"},
		},
		{
			ID:          "lic_003",
			UserID:      userID,
			TrackID:     "track_003",
			TrackTitle:  "Clair de Lune",
			Composer:    "Claude Debussy",
			Performer:   "Martha Argerich",
			Label:       "Warner Classics",
			Type:        domain.LicenseCommercial,
			DownloadURL: "https://example.com/download/debussy-clair.mp3",
			CreatedAt:   days(7),
			UsageRights: []string{"YouTube", "Podcast", "Social Media", "Commercial Use", "Broadcast"},
		},
	}, nil
}

// StatsForUser returns the dashboard summary numbers.
func (s *Service) StatsForUser(ctx context.Context, user *domain.User) (Stats, error) {
	licenses, err := s.ForUser(ctx, user)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalDownloads: len(licenses),
		ActivePlan:     "Pro",
		CreditsUsed:    45,
		CreditsTotal:   100,
		NewThisMonth:   12,
	}, nil
}
