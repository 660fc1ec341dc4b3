package swap

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rajivgeraev/skillswap-client/internal/api"
	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/models"
)

// SwapService представляет сервис для работы с предложениями обмена.
// Жизненный цикл предложения: pending → accepted, принятие создает чат.
type SwapService struct {
	cfg *config.Config
	api *api.Client
}

// NewSwapService создает новый экземпляр SwapService
func NewSwapService(cfg *config.Config, apiClient *api.Client) *SwapService {
	return &SwapService{
		cfg: cfg,
		api: apiClient,
	}
}

// SwapForm — данные формы предложения обмена
type SwapForm struct {
	RecipientID    string
	RequesterSkill string
	DesiredSkill   string
	Message        string
}

// ValidationError содержит ошибки валидации формы по полям.
// Возвращается до любого сетевого вызова.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("форма заполнена с ошибками: %d", len(e.Fields))
}

// Validate проверяет обязательные поля формы.
// Пустая карта означает, что форма корректна.
func (f SwapForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.RequesterSkill) == "" {
		errs["requesterSkill"] = "Your skill is required"
	}
	if strings.TrimSpace(f.DesiredSkill) == "" {
		errs["desiredSkill"] = "Desired skill is required"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

// Propose создает предложение обмена в статусе pending.
// При ошибках валидации запрос к серверу не выполняется.
func (s *SwapService) Propose(requesterID string, form SwapForm) (*models.SwapRequest, error) {
	if requesterID == "" {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	if form.RecipientID == "" {
		return nil, fmt.Errorf("получатель не выбран")
	}
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	body := struct {
		RequesterID    string `json:"requesterId"`
		RecipientID    string `json:"recipientId"`
		RequesterSkill string `json:"requesterSkill"`
		DesiredSkill   string `json:"desiredSkill"`
		Message        string `json:"message"`
	}{
		RequesterID:    requesterID,
		RecipientID:    form.RecipientID,
		RequesterSkill: form.RequesterSkill,
		DesiredSkill:   form.DesiredSkill,
		Message:        form.Message,
	}

	var created models.SwapRequest
	if err := s.api.Post("/api/swapRequests/request", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Accept принимает входящее предложение обмена и возвращает ID
// созданного сервером чата. Переход pending → accepted отражается
// только после подтверждения сервером, оптимистичных изменений нет.
func (s *SwapService) Accept(requestID string) (string, error) {
	if requestID == "" {
		return "", fmt.Errorf("ID предложения не указан")
	}

	var resp struct {
		ChatID string `json:"chatId"`
	}
	if err := s.api.Patch("/api/swapRequests/"+url.PathEscape(requestID)+"/accept", nil, &resp); err != nil {
		return "", err
	}
	return resp.ChatID, nil
}

// Incoming возвращает входящие предложения обмена для пользователя
func (s *SwapService) Incoming(userID string) ([]models.SwapRequest, error) {
	if userID == "" {
		return nil, fmt.Errorf("пользователь не авторизован")
	}

	var resp struct {
		Swaps []models.SwapRequest `json:"swaps"`
	}
	if err := s.api.Get("/api/swapRequests/incoming/"+url.PathEscape(userID), &resp); err != nil {
		return nil, err
	}
	return resp.Swaps, nil
}
