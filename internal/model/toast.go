package model

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

// DefaultToastDuration is applied when a toast is enqueued without an
// explicit duration, in milliseconds.
const DefaultToastDuration = 3000

// Toast is a transient user-facing notification. Toasts are never persisted;
// the UI schedules their removal after Duration milliseconds.
type Toast struct {
	ID       string    `json:"id"`
	Type     ToastType `json:"type"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Duration int       `json:"duration"`
}
