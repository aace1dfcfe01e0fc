package models

// Notification is a transient toast shown to the user. Toasts expire on
// their own after a configured TTL.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// Notification kinds.
const (
	NotificationSuccess = "success"
	NotificationInfo    = "info"
)
