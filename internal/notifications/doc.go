// Package notifications delivers ntfy push notifications for study events:
// milestone crossings, streaks, and course completion. When no ntfy topic is
// configured the service is a noop, so callers never branch on configuration.
package notifications
