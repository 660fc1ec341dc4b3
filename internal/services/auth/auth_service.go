package auth

import (
	"fmt"

	"github.com/rajivgeraev/skillswap-client/internal/api"
	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

// AuthService — структура для обработки авторизации
type AuthService struct {
	cfg  *config.Config
	api  *api.Client
	sess *session.Session
}

// NewAuthService — конструктор AuthService
func NewAuthService(cfg *config.Config, apiClient *api.Client, sess *session.Session) *AuthService {
	return &AuthService{
		cfg:  cfg,
		api:  apiClient,
		sess: sess,
	}
}

// Login выполняет вход по email и паролю. Полученный токен и
// пользователь сохраняются в сессию.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email и пароль обязательны")
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := s.api.Post("/auth/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("сервер не вернул токен")
	}

	if err := s.sess.Login(resp.Token, &resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register регистрирует нового пользователя
func (s *AuthService) Register(name, phone, email, password string) error {
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("имя, email и пароль обязательны")
	}

	body := struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Phone: phone, Email: email, Password: password}

	return s.api.Post("/auth/register", body, nil)
}

// Logout завершает сессию и очищает сохраненный токен
func (s *AuthService) Logout() error {
	return s.sess.Logout()
}
