package i18n

import (
	"testing"

	"herald/internal/channel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	en := b.Lookup("en")
	assert.Equal(t, "Choose notification method: 1. Email, 2. SMS, 3. Telegram", en.Menu)
	assert.Equal(t, "Enter your message:", en.Prompt)
	assert.Equal(t, "Invalid selection", en.InvalidSelection)
	assert.Equal(t, "Sent via Email", en.SentLabel(channel.Email))
	assert.Equal(t, "Sent via SMS", en.SentLabel(channel.SMS))
	assert.Equal(t, "Sent via Telegram", en.SentLabel(channel.Telegram))

	ru := b.Lookup("ru-RU")
	assert.Equal(t, "Введите ваше сообщение:", ru.Prompt)
	assert.Equal(t, "Отправлено через Telegram", ru.SentLabel(channel.Telegram))
	assert.Equal(t, "Неверный выбор", ru.InvalidSelection)
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	for _, lang := range []string{"", "ja", "!!"} {
		assert.Equal(t, "Enter your message:", b.Lookup(lang).Prompt, "lang %q", lang)
	}
}

func TestParseRejectsIncompleteCatalog(t *testing.T) {
	_, err := parse([]byte("en:\n  menu: m\n  prompt: p\n  invalid_selection: x\n  sent:\n    email: e\n"))
	require.Error(t, err)

	_, err = parse([]byte("en:\n  menu: m\n  colour: red\n"))
	require.Error(t, err)
}
