package toast_test

import (
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/toast"
)

func TestAddGeneratesIDAndDefaults(t *testing.T) {
	s := toast.NewStore()

	added := s.Add(model.Toast{Type: model.ToastSuccess, Title: "Added to cart"})
	if added.ID == "" {
		t.Error("expected a generated id")
	}
	if added.Duration != model.DefaultToastDuration {
		t.Errorf("duration = %d, want %d", added.Duration, model.DefaultToastDuration)
	}

	// An explicit duration survives.
	long := s.Add(model.Toast{Type: model.ToastError, Duration: 10000})
	if long.Duration != 10000 {
		t.Errorf("duration = %d, want 10000", long.Duration)
	}
	if long.ID == added.ID {
		t.Error("ids should be unique per toast")
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := toast.NewStore()
	a := s.Add(model.Toast{Type: model.ToastInfo})
	b := s.Add(model.Toast{Type: model.ToastInfo})

	s.Remove(a.ID)
	list := s.List()
	if len(list) != 1 || list[0].ID != b.ID {
		t.Fatalf("list = %+v, want only %s", list, b.ID)
	}

	// Removing an unknown id is a no-op.
	s.Remove("nope")
	if got := len(s.List()); got != 1 {
		t.Errorf("list = %d, want 1", got)
	}

	s.Clear()
	if got := len(s.List()); got != 0 {
		t.Errorf("list = %d after clear, want 0", got)
	}
}

func TestListIsOrderedCopy(t *testing.T) {
	s := toast.NewStore()
	a := s.Add(model.Toast{Type: model.ToastSuccess})
	b := s.Add(model.Toast{Type: model.ToastError})

	list := s.List()
	if list[0].ID != a.ID || list[1].ID != b.ID {
		t.Fatalf("insertion order broken: %+v", list)
	}

	list[0].Title = "mutated"
	if s.List()[0].Title == "mutated" {
		t.Error("List must return a copy")
	}
}

func TestNotifyFallsBackToMessageIDs(t *testing.T) {
	// Without a loaded bundle the localizer returns the message ids
	// themselves, which keeps notification plumbing testable offline.
	s := toast.NewStore()
	got := s.Notify(toast.Notification{
		Type:      model.ToastSuccess,
		TitleID:   "toast.cart.added.title",
		MessageID: "toast.cart.added.message",
		Data:      map[string]interface{}{"Product": "Phone"},
	})
	if got.Type != model.ToastSuccess {
		t.Errorf("type = %q, want success", got.Type)
	}
	if got.Title != "toast.cart.added.title" {
		t.Errorf("title = %q, want the message id fallback", got.Title)
	}
	if got.Duration != model.DefaultToastDuration {
		t.Errorf("duration = %d, want %d", got.Duration, model.DefaultToastDuration)
	}
}
