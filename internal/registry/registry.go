package registry

import (
	"errors"
	"fmt"
	"io"

	"herald/internal/channel"
	"herald/internal/gateway/notifier"
	"herald/internal/i18n"
	"herald/internal/logger"
)

// ErrNotRegistered is returned for a valid channel that has no factory.
var ErrNotRegistered = errors.New("channel not registered")

// Factory constructs a fresh sender for one channel.
type Factory func() notifier.Sender

// Registry maps channels to sender factories. It is built once at startup and
// only read afterwards.
type Registry struct {
	factories map[channel.Channel]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[channel.Channel]Factory),
	}
}

// Register adds a factory to the registry.
// If a factory for the same channel already exists, it will be replaced.
func (r *Registry) Register(ch channel.Channel, f Factory) {
	if f == nil {
		return
	}
	if !ch.Valid() {
		logger.Warnf("Registry: ignoring factory for unknown channel %d", int(ch))
		return
	}
	r.factories[ch] = f
}

// Resolve constructs the sender registered for ch.
func (r *Registry) Resolve(ch channel.Channel) (notifier.Sender, error) {
	if !ch.Valid() {
		return nil, &channel.SelectionError{Value: int(ch)}
	}
	f, ok := r.factories[ch]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, ch.Key())
	}
	sender := f()
	if sender == nil {
		return nil, fmt.Errorf("factory for %s returned nil sender", ch.Key())
	}
	return sender, nil
}

// Channels returns the registered channels in menu order.
func (r *Registry) Channels() []channel.Channel {
	out := make([]channel.Channel, 0, len(r.factories))
	for _, ch := range channel.All() {
		if _, ok := r.factories[ch]; ok {
			out = append(out, ch)
		}
	}
	return out
}

// RegisterDefaults registers the console senders for every channel, labelled
// from cat and writing to out.
func (r *Registry) RegisterDefaults(out io.Writer, cat i18n.Catalog) {
	emailLabel := cat.SentLabel(channel.Email)
	smsLabel := cat.SentLabel(channel.SMS)
	telegramLabel := cat.SentLabel(channel.Telegram)

	r.Register(channel.Email, func() notifier.Sender { return notifier.NewEmailSender(out, emailLabel) })
	r.Register(channel.SMS, func() notifier.Sender { return notifier.NewSMSSender(out, smsLabel) })
	r.Register(channel.Telegram, func() notifier.Sender { return notifier.NewTelegramSender(out, telegramLabel) })
	logger.Debugf("Registry: registered %d senders", len(r.factories))
}
