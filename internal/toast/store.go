package toast

import (
	"sync"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/pkg/i18n"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// Store is the in-memory queue of transient notifications for one session.
// Toasts are never persisted; the UI schedules removal after each toast's
// duration, the store itself runs no timers.
type Store struct {
	mu     sync.Mutex
	toasts []model.Toast
	newID  func() string
}

func NewStore() *Store {
	gen, err := nanoid.Standard(8)
	if err != nil {
		gen = func() string { return uuid.NewString()[:8] }
	}
	return &Store{newID: gen}
}

// Add enqueues a toast, generating its id and defaulting the duration.
func (s *Store) Add(t model.Toast) model.Toast {
	t.ID = s.newID()
	if t.Duration <= 0 {
		t.Duration = model.DefaultToastDuration
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, t)
	s.mu.Unlock()
	return t
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.toasts = nil
	s.mu.Unlock()
}

// List returns a copy of the queue in insertion order.
func (s *Store) List() []model.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Notification is the event shape store mutations hand to the notifier.
// Title and message are i18n message ids, resolved here so the core stores
// never touch localization.
type Notification struct {
	Type      model.ToastType
	TitleID   string
	MessageID string
	Data      map[string]interface{}
}

// Notify localizes a notification for the given language preferences and
// enqueues it.
func (s *Store) Notify(n Notification, langs ...string) model.Toast {
	return s.Add(model.Toast{
		Type:    n.Type,
		Title:   i18n.Localize(n.TitleID, nil, langs...),
		Message: i18n.Localize(n.MessageID, n.Data, langs...),
	})
}
