package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DELMUS1M/SPARKLY-STORE/models"
)

func TestNotification_AutoDismiss(t *testing.T) {
	svc := NewNotificationService(20 * time.Millisecond)
	sess := newTestSession()

	sess.Lock()
	svc.Push(sess, "hello", models.NotificationInfo)
	sess.Unlock()
	require.Len(t, svc.List(sess), 1)

	assert.Eventually(t, func() bool {
		return len(svc.List(sess)) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNotification_DismissTwiceIsNoop(t *testing.T) {
	svc := NewNotificationService(time.Hour)
	sess := newTestSession()

	sess.Lock()
	n := svc.Push(sess, "hello", models.NotificationSuccess)
	sess.Unlock()

	svc.Dismiss(sess, n.ID)
	assert.Empty(t, svc.List(sess))

	// A second dismissal (or the late timer) finds nothing to remove
	svc.Dismiss(sess, n.ID)
	assert.Empty(t, svc.List(sess))
}
