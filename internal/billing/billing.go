// Package billing serves subscription, invoice and usage data for the
// billing page. The data is a demo fixture; cancel/reactivate flip the
// period-end flag in memory the way the real billing API would.
package billing

import (
	"context"
	"sync"
	"time"

	"github.com/psalmos/web/internal/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a whole-dollar amount as a localized currency string.
func FormatUSD(amount int) string {
	return usdPrinter.Sprint(currency.Symbol(currency.USD.Amount(amount)))
}

// Service exposes per-user billing data.
type Service struct {
	mu                sync.Mutex
	cancelAtPeriodEnd map[string]bool
}

// NewService creates a billing service.
func NewService() *Service {
	return &Service{cancelAtPeriodEnd: make(map[string]bool)}
}

func userKey(user *domain.User) string {
	if user.ID != nil {
		return user.ID.String()
	}
	return user.Email
}

// Subscription returns the user's current plan.
func (s *Service) Subscription(ctx context.Context, user *domain.User) (*domain.Subscription, error) {
	s.mu.Lock()
	cancelled := s.cancelAtPeriodEnd[userKey(user)]
	s.mu.Unlock()

	return &domain.Subscription{
		ID:                 "sub_1234567890",
		Plan:               "Pro",
		Status:             domain.SubscriptionActive,
		CurrentPeriodStart: time.Now().Add(-15 * 24 * time.Hour),
		CurrentPeriodEnd:   time.Now().Add(15 * 24 * time.Hour),
		CancelAtPeriodEnd:  cancelled,
		PriceUSD:           49,
	}, nil
}

// Invoices returns the user's billing history, newest first.
func (s *Service) Invoices(ctx context.Context, user *domain.User) ([]domain.Invoice, error) {
	days := func(n int) time.Time { return time.Now().Add(-time.Duration(n) * 24 * time.Hour) }

	return []domain.Invoice{
		{ID: "inv_001", Date: days(15), AmountUSD: 49, Status: domain.InvoicePaid, Plan: "Pro Plan", DownloadURL: "https://example.com/invoice/inv_001.pdf"},
		{ID: "inv_002", Date: days(45), AmountUSD: 49, Status: domain.InvoicePaid, Plan: "Pro Plan", DownloadURL: "https://example.com/invoice/inv_002.pdf"},
		{ID: "inv_003", Date: days(75), AmountUSD: 29, Status: domain.InvoicePaid, Plan: "Starter Plan", DownloadURL: "https://example.com/invoice/inv_003.pdf"},
	}, nil
}

// Usage returns the user's consumption for the current period.
func (s *Service) Usage(ctx context.Context, user *domain.User) (domain.Usage, error) {
	return domain.Usage{
		DownloadsUsed:  45,
		DownloadsLimit: 100,
		StorageUsedGB:  2.3,
		StorageLimitGB: 10,
	}, nil
}

// Cancel marks the subscription to end at the close of the current period.
func (s *Service) Cancel(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAtPeriodEnd[userKey(user)] = true
	return nil
}

// Reactivate clears a pending cancellation.
func (s *Service) Reactivate(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cancelAtPeriodEnd, userKey(user))
	return nil
}
