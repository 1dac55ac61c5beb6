// Package auth is the session provider: it owns login, logout, token
// authentication and profile updates, and notifies subscribers whenever the
// session state of a user changes.
package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/pubsub"
)

// EventType classifies a session change notification.
type EventType string

const (
	EventSignedIn       EventType = "signed_in"
	EventSignedOut      EventType = "signed_out"
	EventProfileUpdated EventType = "profile_updated"
)

// Event is delivered to subscribers on every session change.
type Event struct {
	Type EventType
	User *domain.User
}

// SessionProvider is the capability surface handlers consume. The concrete
// Provider implements it; tests substitute mocks.
type SessionProvider interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, user *domain.User)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User, update domain.ProfileUpdate) (*domain.User, error)
	Subscribe(fn func(Event)) (unsubscribe func())
}

// Provider implements SessionProvider on top of the user repository.
// Subscribe is the one notification primitive; anything that needs to observe
// session changes (the bus bridge included) registers a callback.
type Provider struct {
	users domain.UserRepository

	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(Event)
}

// NewProvider creates a session provider.
func NewProvider(users domain.UserRepository) *Provider {
	return &Provider{
		users:       users,
		subscribers: make(map[int]func(Event)),
	}
}

// Register creates a new account and returns its session token.
func (p *Provider) Register(ctx context.Context, email, password string) (string, error) {
	user := &domain.User{Email: email}
	token, err := p.users.SignUp(ctx, user, password)
	if err != nil {
		return "", err
	}
	p.notify(Event{Type: EventSignedIn, User: user})
	return token, nil
}

// Login authenticates an email/password pair and returns a session token.
func (p *Provider) Login(ctx context.Context, email, password string) (string, error) {
	token, err := p.users.SignIn(ctx, email, password)
	if err != nil {
		return "", err
	}
	user, err := p.users.FindUserByEmail(ctx, email)
	if err != nil {
		// The sign-in already succeeded; a lookup failure only costs us the
		// populated event payload.
		slog.Warn("Could not load user after sign-in", "email", email, "error", err)
		user = &domain.User{Email: email}
	}
	p.notify(Event{Type: EventSignedIn, User: user})
	return token, nil
}

// Logout records the end of a session. Token invalidation is cookie-side;
// this exists so subscribers observe the sign-out.
func (p *Provider) Logout(ctx context.Context, user *domain.User) {
	p.notify(Event{Type: EventSignedOut, User: user})
}

// Authenticate resolves a session token to its user. Invalid or expired
// tokens yield domain.ErrInvalidCredentials; any other error is a session
// bootstrap failure.
func (p *Provider) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return p.users.Authenticate(ctx, token)
}

// UpdateProfile applies a profile update for the given user and notifies
// subscribers with the refreshed record.
func (p *Provider) UpdateProfile(ctx context.Context, user *domain.User, update domain.ProfileUpdate) (*domain.User, error) {
	updated, err := p.users.UpdateProfile(ctx, user.ID, update)
	if err != nil {
		return nil, err
	}
	p.notify(Event{Type: EventProfileUpdated, User: updated})
	return updated, nil
}

// Subscribe registers a session change callback and returns its unsubscribe
// handle. Unsubscribing twice is harmless.
func (p *Provider) Subscribe(fn func(Event)) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

func (p *Provider) notify(event Event) {
	p.mu.Lock()
	fns := make([]func(Event), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

// PublishSessionEvents forwards every session change to the event bus so
// out-of-process style consumers (audit logging today) observe them without
// holding a provider reference. It is itself an ordinary subscriber; the
// returned handle detaches it.
func PublishSessionEvents(provider SessionProvider, publisher pubsub.Publisher) (unsubscribe func()) {
	return provider.Subscribe(func(event Event) {
		msg := pubsub.Message{Topic: topicFor(event.Type)}
		if event.User != nil {
			if event.User.ID != nil {
				msg.UserID = event.User.ID.String()
			}
			msg.Metadata = map[string]string{"email": event.User.Email}
		}
		if err := publisher.Publish(context.Background(), msg); err != nil {
			slog.Error("Failed to publish session event", "topic", msg.Topic, "error", err)
		}
	})
}

func topicFor(t EventType) string {
	switch t {
	case EventSignedOut:
		return pubsub.TopicSessionSignedOut
	case EventProfileUpdated:
		return pubsub.TopicProfileUpdated
	default:
		return pubsub.TopicSessionSignedIn
	}
}
