package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rajivgeraev/skillswap-client/internal/models"
)

// Session держит текущую идентичность пользователя и bearer-токен.
// Создается один раз при старте и передается в сервисы явно —
// глобального разделяемого состояния нет.
type Session struct {
	store *TokenStore
	token string
	user  *models.User
}

// New создает сессию поверх хранилища токена и пытается
// восстановить прошлую авторизацию
func New(store *TokenStore) (*Session, error) {
	s := &Session{store: store}

	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	if token != "" {
		// Токен есть, но профиль пользователя еще не загружен.
		// ID восстанавливаем из самого токена.
		s.token = token
		if id, err := UserIDFromToken(token); err == nil {
			s.user = &models.User{ID: id}
		}
	}

	return s, nil
}

// Token возвращает bearer-токен или пустую строку, если сессии нет
func (s *Session) Token() string {
	return s.token
}

// User возвращает текущего пользователя или nil
func (s *Session) User() *models.User {
	return s.user
}

// UserID возвращает ID текущего пользователя или пустую строку
func (s *Session) UserID() string {
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// IsAuthenticated сообщает, есть ли активная сессия
func (s *Session) IsAuthenticated() bool {
	return s.token != ""
}

// SetUser обновляет профиль пользователя после загрузки с сервера
func (s *Session) SetUser(user *models.User) {
	s.user = user
}

// Login сохраняет токен и пользователя после успешного входа
func (s *Session) Login(token string, user *models.User) error {
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	s.user = user
	return nil
}

// Logout очищает сессию и хранилище
func (s *Session) Logout() error {
	s.token = ""
	s.user = nil
	return s.store.Clear()
}

// UserIDFromToken извлекает ID пользователя из payload-сегмента JWT.
// Подпись НЕ проверяется: это только удобство отображения на клиенте,
// авторизацию сервер перепроверяет на каждом запросе.
func UserIDFromToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("ошибка разбора токена: %w", err)
	}

	for _, key := range []string{"_id", "user_id", "id"} {
		if id, ok := claims[key].(string); ok && id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("в токене нет ID пользователя")
}
