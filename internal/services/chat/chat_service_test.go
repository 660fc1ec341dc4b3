package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajivgeraev/skillswap-client/internal/api"
	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

func newTestService(t *testing.T, handler http.Handler) *ChatService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.New(session.NewTokenStore(filepath.Join(t.TempDir(), "token")))
	require.NoError(t, err)
	require.NoError(t, sess.Login("test-token", &models.User{ID: "u1"}))

	cfg := &config.Config{APIBaseURL: srv.URL}
	return NewChatService(cfg, api.NewClient(cfg, sess))
}

func TestGetChats(t *testing.T) {
	var gotPath string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"chats": []map[string]any{
				{
					"_id": "c1",
					"participants": []map[string]string{
						{"_id": "u1", "name": "Alice"},
						{"_id": "u2", "name": "Bob"},
					},
				},
			},
		})
	}))

	chats, err := svc.GetChats()
	require.NoError(t, err)
	assert.Equal(t, "GET /api/chats", gotPath)

	require.Len(t, chats, 1)
	other := chats[0].OtherParticipant("u1")
	require.NotNil(t, other)
	assert.Equal(t, "Bob", other.Name)
}

func TestGetMessages(t *testing.T) {
	var gotPath string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"messages": []map[string]any{
				{"senderId": "u2", "text": "Hi", "timestamp": "2026-08-01T10:00:00Z"},
				{"senderId": "u1", "text": "Hello", "timestamp": "2026-08-01T10:01:00Z"},
			},
		})
	}))

	messages, err := svc.GetMessages("c1")
	require.NoError(t, err)
	assert.Equal(t, "GET /api/chats/c1/messages", gotPath)

	// Порядок — как вернул сервер
	require.Len(t, messages, 2)
	assert.Equal(t, "Hi", messages[0].Text)
	assert.Equal(t, "Hello", messages[1].Text)
}

func TestSendMessageReturnsLocalRecord(t *testing.T) {
	var gotPath string
	var gotBody models.Message
	var decodeErr error
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		decodeErr = json.NewDecoder(r.Body).Decode(&gotBody)

		// Серверное эхо с другим временем — клиент его не использует
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"senderId": "u1", "text": "server copy", "timestamp": "2020-01-01T00:00:00Z",
		})
	}))

	before := time.Now()
	msg, err := svc.SendMessage("c1", "u1", "  Hello!  ")
	require.NoError(t, err)
	require.NoError(t, decodeErr)

	assert.Equal(t, "POST /api/chats/c1/messages", gotPath)
	assert.Equal(t, "Hello!", gotBody.Text, "текст уходит на сервер без крайних пробелов")
	assert.Equal(t, "u1", gotBody.SenderID)

	// Возвращается локальная запись с клиентской меткой времени
	assert.Equal(t, "Hello!", msg.Text)
	assert.Equal(t, "u1", msg.SenderID)
	assert.False(t, msg.Timestamp.Before(before))
	assert.False(t, msg.Timestamp.After(time.Now()))
}

func TestSendMessageBlankText(t *testing.T) {
	var hits int
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	_, err := svc.SendMessage("c1", "u1", "   ")
	require.Error(t, err)
	assert.Zero(t, hits, "пустое сообщение не отправляется на сервер")
}

func TestSendMessageServerError(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": "upstream down"})
	}))

	_, err := svc.SendMessage("c1", "u1", "Hello")

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream down", apiErr.Message)
}
