package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

// NotificationService manages the transient toasts a session sees. Every
// toast schedules its own removal; a toast that was already dismissed by a
// later event is simply gone when the timer fires.
type NotificationService struct {
	ttl time.Duration
}

func NewNotificationService(ttl time.Duration) *NotificationService {
	return &NotificationService{ttl: ttl}
}

// Push adds a toast to the session and arms its auto-dismiss timer. Caller
// holds the session lock.
func (s *NotificationService) Push(sess *session.Session, message, kind string) models.Notification {
	n := models.Notification{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
	}
	sess.Notifications = append(sess.Notifications, n)

	time.AfterFunc(s.ttl, func() {
		sess.Lock()
		defer sess.Unlock()
		s.remove(sess, n.ID)
	})
	return n
}

// Dismiss removes a toast early. Dismissing an expired toast is a no-op.
func (s *NotificationService) Dismiss(sess *session.Session, id string) {
	sess.Lock()
	defer sess.Unlock()
	s.remove(sess, id)
}

// List returns the live toasts for the session.
func (s *NotificationService) List(sess *session.Session) []models.Notification {
	sess.Lock()
	defer sess.Unlock()
	out := make([]models.Notification, len(sess.Notifications))
	copy(out, sess.Notifications)
	return out
}

func (s *NotificationService) remove(sess *session.Session, id string) {
	for i, n := range sess.Notifications {
		if n.ID == id {
			sess.Notifications = append(sess.Notifications[:i], sess.Notifications[i+1:]...)
			return
		}
	}
}
