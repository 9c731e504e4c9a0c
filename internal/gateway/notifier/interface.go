package notifier

// Sender delivers one text message over a single channel.
// It is intentionally small so the notification service can depend on it
// without importing concrete implementations.
type Sender interface {
	Send(message string) error
}
