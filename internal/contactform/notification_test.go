package contactform

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_AutoDismiss(t *testing.T) {
	clock := &manualClock{}
	ns := NewNotifications(clock)

	id := ns.Show("Message sent successfully!", KindSuccess)
	require.Len(t, ns.Visible(), 1)

	clock.Advance(AutoDismissAfter - time.Millisecond)
	require.Len(t, ns.Visible(), 1)
	assert.False(t, ns.Visible()[0].Closing)

	clock.Advance(time.Millisecond)
	visible := ns.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, id, visible[0].ID)
	assert.True(t, visible[0].Closing)

	clock.Advance(RemoveAfter)
	assert.Empty(t, ns.Visible())
}

func TestNotifications_ManualDismiss(t *testing.T) {
	clock := &manualClock{}
	ns := NewNotifications(clock)

	id := ns.Show("Error: boom", KindError)
	clock.Advance(time.Second)

	assert.True(t, ns.Dismiss(id))
	assert.False(t, ns.Dismiss(id), "second dismiss is a no-op")

	clock.Advance(RemoveAfter)
	assert.Empty(t, ns.Visible())

	// the cancelled auto-dismiss must not resurrect anything
	clock.Advance(AutoDismissAfter)
	assert.Empty(t, ns.Visible())
	assert.False(t, ns.Dismiss(id))
}

func TestNotifications_Coexist(t *testing.T) {
	clock := &manualClock{}
	ns := NewNotifications(clock)

	first := ns.Show("first", KindInfo)
	clock.Advance(2 * time.Second)
	second := ns.Show("second", KindError)

	visible := ns.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, first, visible[0].ID)
	assert.Equal(t, second, visible[1].ID)

	clock.Advance(3*time.Second + RemoveAfter)
	visible = ns.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, second, visible[0].ID)

	clock.Advance(2 * time.Second)
	assert.Empty(t, ns.Visible())
}

func TestNotifications_Events(t *testing.T) {
	clock := &manualClock{}
	ns := NewNotifications(clock)

	var mu sync.Mutex
	var types []EventType
	ns.OnEvent(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		types = append(types, e.Type)
		assert.Equal(t, "hello", e.Notification.Message)
	})

	ns.Show("hello", KindInfo)
	clock.Advance(AutoDismissAfter + RemoveAfter)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventType{EventShown, EventClosing, EventRemoved}, types)
}
