// Package notify provides cross-platform desktop notification support.
// The launcher is often started without a visible terminal (desktop
// shortcuts, kiosk setups), so a notification is the only way to tell the
// user that opening a URL failed entirely. Delivery is best-effort.
package notify

import (
	"context"
	"time"
)

// Notification represents a notification to be displayed.
type Notification struct {
	// Title is the notification title (typically the tool name)
	Title string

	// Message is the notification body
	Message string
}

// Notifier is the interface for platform notification systems.
type Notifier interface {
	// Send sends a notification to the OS notification system.
	Send(ctx context.Context, notification Notification) error

	// IsAvailable returns true if OS notifications are available.
	IsAvailable() bool

	// Close cleans up notification system resources.
	Close() error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the application name shown in notifications
	AppName string

	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "oxrr",
		Timeout: 5 * time.Second,
	}
}

// New creates a new notifier.
func New(config Config) (Notifier, error) {
	return newBeeepNotifier(config)
}
