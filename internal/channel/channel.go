// Package channel defines the closed set of notification channels and the
// parsing of the interactive menu choice into one of them.
package channel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Channel identifies a notification delivery mechanism. The numeric value is
// the menu choice.
type Channel int

const (
	Email Channel = iota + 1
	SMS
	Telegram
)

// ErrInvalidSelection is matched by every error returned for a choice outside
// the menu.
var ErrInvalidSelection = errors.New("invalid selection")

// SelectionError carries the rejected menu choice.
type SelectionError struct {
	Value int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidSelection, e.Value)
}

func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// All returns the channels in menu order.
func All() []Channel {
	return []Channel{Email, SMS, Telegram}
}

func (c Channel) Valid() bool {
	return c >= Email && c <= Telegram
}

// Key is the registry key of the channel.
func (c Channel) Key() string {
	switch c {
	case Email:
		return "email"
	case SMS:
		return "sms"
	case Telegram:
		return "telegram"
	default:
		return ""
	}
}

func (c Channel) String() string {
	switch c {
	case Email:
		return "Email"
	case SMS:
		return "SMS"
	case Telegram:
		return "Telegram"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// FromChoice maps a numeric menu choice to its channel.
func FromChoice(choice int) (Channel, error) {
	ch := Channel(choice)
	if !ch.Valid() {
		return 0, &SelectionError{Value: choice}
	}
	return ch, nil
}

// ParseSelection turns one line of menu input into a channel. Input that is
// empty or not an integer selects Email; only an integer outside the menu is
// rejected.
func ParseSelection(line string) (Channel, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		// Anything unparsable selects Email; only parsed integers are range-checked.
		choice = int(Email)
	}
	return FromChoice(choice)
}
