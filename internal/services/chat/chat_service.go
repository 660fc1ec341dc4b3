package chat

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rajivgeraev/skillswap-client/internal/api"
	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/models"
)

// ChatService представляет сервис для работы с чатами
type ChatService struct {
	cfg *config.Config
	api *api.Client
}

// NewChatService создает новый экземпляр ChatService
func NewChatService(cfg *config.Config, apiClient *api.Client) *ChatService {
	return &ChatService{
		cfg: cfg,
		api: apiClient,
	}
}

// GetChats возвращает список чатов пользователя
func (s *ChatService) GetChats() ([]models.Chat, error) {
	var resp struct {
		Chats []models.Chat `json:"chats"`
	}
	if err := s.api.Get("/api/chats", &resp); err != nil {
		return nil, err
	}
	return resp.Chats, nil
}

// GetMessages возвращает полную историю сообщений чата.
// История запрашивается целиком при открытии чата, без пагинации;
// порядок — как вернул сервер.
func (s *ChatService) GetMessages(chatID string) ([]models.Message, error) {
	if chatID == "" {
		return nil, fmt.Errorf("ID чата не указан")
	}

	var resp struct {
		Messages []models.Message `json:"messages"`
	}
	if err := s.api.Get("/api/chats/"+url.PathEscape(chatID)+"/messages", &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// SendMessage отправляет сообщение и возвращает локально собранную
// запись с клиентской меткой времени. Именно эта запись добавляется
// в список на экране — серверное эхо не используется, поэтому до
// следующей полной загрузки истории отображаемое время это время
// отправки на клиенте.
func (s *ChatService) SendMessage(chatID, senderID, text string) (*models.Message, error) {
	if chatID == "" {
		return nil, fmt.Errorf("ID чата не указан")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("текст сообщения не может быть пустым")
	}

	msg := models.Message{
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now(),
	}

	if err := s.api.Post("/api/chats/"+url.PathEscape(chatID)+"/messages", msg, nil); err != nil {
		return nil, err
	}
	return &msg, nil
}
