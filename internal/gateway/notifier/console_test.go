package notifier

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleSenders(t *testing.T) {
	cases := []struct {
		name  string
		build func(*bytes.Buffer) Sender
		want  string
	}{
		{
			name:  "email",
			build: func(b *bytes.Buffer) Sender { return NewEmailSender(b, "Sent via Email") },
			want:  "Sent via Email: hi  there\n",
		},
		{
			name:  "sms",
			build: func(b *bytes.Buffer) Sender { return NewSMSSender(b, "Sent via SMS") },
			want:  "Sent via SMS: hi  there\n",
		},
		{
			name:  "telegram",
			build: func(b *bytes.Buffer) Sender { return NewTelegramSender(b, "Отправлено через Telegram") },
			want:  "Отправлено через Telegram: hi  there\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.build(&buf).Send("hi  there"))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestConsoleSenderEmptyMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSMSSender(&buf, "Sent via SMS").Send(""))
	assert.Equal(t, "Sent via SMS: \n", buf.String())
}
