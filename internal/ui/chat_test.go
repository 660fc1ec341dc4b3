package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajivgeraev/skillswap-client/internal/models"
)

func TestChatAppendsLocalMessageOnSend(t *testing.T) {
	m := newChatModel(nil, testSession(t))
	m.chatID = "c1"
	m.messages = []models.Message{
		{SenderID: "u2", Text: "Hi", Timestamp: time.Now().Add(-time.Minute)},
	}
	m.sending = true

	sent := models.Message{SenderID: "u1", Text: "Hello!", Timestamp: time.Now()}
	m, _ = m.Update(messageSentMsg{message: &sent})

	require.Len(t, m.messages, 2)
	assert.Equal(t, sent, m.messages[1])
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.sendErr)
	assert.False(t, m.sending)
}

func TestChatKeepsInputOnSendFailure(t *testing.T) {
	m := newChatModel(nil, testSession(t))
	m.chatID = "c1"
	m.input.SetValue("draft text")
	m.sending = true

	m, _ = m.Update(messageSentMsg{err: fmt.Errorf("network down")})

	// Сообщение не добавлено, черновик сохранен, ошибка видна
	assert.Empty(t, m.messages)
	assert.Equal(t, "draft text", m.input.Value())
	assert.Equal(t, "Message not sent. Try again.", m.sendErr)
	assert.False(t, m.sending)
}

func TestChatLoadedKeepsServerOrder(t *testing.T) {
	m := newChatModel(nil, testSession(t))
	m.loading = true

	history := []models.Message{
		{SenderID: "u2", Text: "first"},
		{SenderID: "u1", Text: "second"},
	}
	m, _ = m.Update(messagesLoadedMsg{messages: history})

	assert.False(t, m.loading)
	assert.Equal(t, history, m.messages)
}
