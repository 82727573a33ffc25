package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyOverwritesExisting(t *testing.T) {
	ui := NewUIState()

	ui.Notify(NotifySuccess, "tenancy created", 0)
	ui.Notify(NotifyError, "unit is not available", 0)

	n := ui.Notification()
	require.NotNil(t, n)
	assert.Equal(t, NotifyError, n.Kind)
	assert.Equal(t, "unit is not available", n.Message)
}

func TestNotifyAutoClearsAfterDuration(t *testing.T) {
	ui := NewUIState()

	ui.Notify(NotifyInfo, "saved", 10*time.Millisecond)
	require.NotNil(t, ui.Notification())

	assert.Eventually(t, func() bool {
		return ui.Notification() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestStaleTimerDoesNotClearNewerNotification(t *testing.T) {
	ui := NewUIState()

	ui.Notify(NotifyInfo, "first", 10*time.Millisecond)
	ui.Notify(NotifyError, "second", 0)

	// The first notification's timer fires but must not clear the
	// replacement.
	time.Sleep(30 * time.Millisecond)
	n := ui.Notification()
	require.NotNil(t, n)
	assert.Equal(t, "second", n.Message)
}

func TestDismissClearsImmediately(t *testing.T) {
	ui := NewUIState()

	ui.Notify(NotifyWarning, "lease ending soon", time.Minute)
	ui.Dismiss()

	assert.Nil(t, ui.Notification())
}

func TestModalReplaceAndClose(t *testing.T) {
	ui := NewUIState()

	ui.OpenModal("confirm-delete", "unit-1")
	ui.OpenModal("edit-user", map[string]string{"id": "u1"})

	m := ui.Modal()
	require.NotNil(t, m)
	assert.Equal(t, "edit-user", m.Kind)

	ui.CloseModal()
	assert.Nil(t, ui.Modal())
}

func TestSidebarToggle(t *testing.T) {
	ui := NewUIState()

	assert.False(t, ui.SidebarOpen())
	ui.ToggleSidebar()
	assert.True(t, ui.SidebarOpen())
	ui.SetSidebarOpen(false)
	assert.False(t, ui.SidebarOpen())
}
