// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/rvalero/agenda-cli/internal/config"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if n.cfg.Sound {
		return beeep.Alert(title, message, "")
	}
	return beeep.Notify(title, message, "")
}

// NotifyUpcomingTask announces the next scheduled task and its start time.
func (n *Notifier) NotifyUpcomingTask(title, startTime string) error {
	return n.Notify("Upcoming task", fmt.Sprintf("%s at %s", title, startTime))
}

// NotifyFreeSlot announces a free interval found in the work window.
func (n *Notifier) NotifyFreeSlot(start, end string) error {
	return n.Notify("Free slot", fmt.Sprintf("You are free from %s to %s", start, end))
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
