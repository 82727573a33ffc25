package client

import (
	"sync"
	"time"
)

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyWarning NotificationKind = "warning"
	NotifyInfo    NotificationKind = "info"
)

// Notification is the single transient banner shown to the user.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Modal describes the currently open dialog. Kind tags which dialog it
// is; Payload carries whatever that dialog needs (typically the record
// being edited or confirmed).
type Modal struct {
	Kind    string
	Payload any
}

// UIState holds the cross-cutting interface state: the one-slot
// notification, the active modal, and the sidebar toggle. A single
// instance is shared by all screens.
type UIState struct {
	mu           sync.Mutex
	notification *Notification
	notifySeq    uint64
	modal        *Modal
	sidebarOpen  bool
}

func NewUIState() *UIState {
	return &UIState{}
}

func (u *UIState) Notification() *Notification {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.notification
}

// Notify replaces any visible notification; there is no queue. After
// duration the notification clears itself, unless another Notify or
// Dismiss happened first. A duration of zero means sticky.
func (u *UIState) Notify(kind NotificationKind, message string, duration time.Duration) {
	u.mu.Lock()
	u.notification = &Notification{Kind: kind, Message: message}
	u.notifySeq++
	seq := u.notifySeq
	u.mu.Unlock()

	if duration <= 0 {
		return
	}
	time.AfterFunc(duration, func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		// A newer notification owns the slot now; leave it alone.
		if u.notifySeq == seq {
			u.notification = nil
		}
	})
}

// Dismiss clears the notification immediately and invalidates any
// pending auto-clear timer.
func (u *UIState) Dismiss() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.notification = nil
	u.notifySeq++
}

func (u *UIState) Modal() *Modal {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.modal
}

// OpenModal replaces any open modal; dialogs don't stack.
func (u *UIState) OpenModal(kind string, payload any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.modal = &Modal{Kind: kind, Payload: payload}
}

func (u *UIState) CloseModal() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.modal = nil
}

func (u *UIState) SidebarOpen() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sidebarOpen
}

func (u *UIState) SetSidebarOpen(open bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sidebarOpen = open
}

func (u *UIState) ToggleSidebar() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sidebarOpen = !u.sidebarOpen
}
