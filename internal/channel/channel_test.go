package channel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	cases := []struct {
		in   string
		want Channel
	}{
		{in: "1", want: Email},
		{in: "2", want: SMS},
		{in: "3", want: Telegram},
		{in: " 2 ", want: SMS},
		{in: "3\r", want: Telegram},
		{in: "", want: Email},
		{in: "   ", want: Email},
		{in: "sms", want: Email},
		{in: "2.5", want: Email},
		{in: "99999999999999999999999", want: Email},
	}
	for _, tc := range cases {
		got, err := ParseSelection(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseSelectionOutOfRange(t *testing.T) {
	for _, in := range []string{"0", "4", "9", "-1"} {
		_, err := ParseSelection(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrInvalidSelection))

		var selErr *SelectionError
		require.True(t, errors.As(err, &selErr))
	}

	_, err := ParseSelection("9")
	assert.EqualError(t, err, "invalid selection: 9")
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, []Channel{Email, SMS, Telegram}, All())
	assert.Equal(t, "email", Email.Key())
	assert.Equal(t, "sms", SMS.Key())
	assert.Equal(t, "telegram", Telegram.Key())
	assert.Equal(t, "SMS", SMS.String())
	assert.Equal(t, "", Channel(7).Key())
	assert.Equal(t, "Channel(7)", Channel(7).String())
	assert.False(t, Channel(0).Valid())
}
