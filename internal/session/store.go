package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore хранит bearer-токен в одном файле.
// Это единственное клиентское состояние, переживающее перезапуск
// (аналог одного ключа в localStorage браузерного клиента).
type TokenStore struct {
	path string
}

// NewTokenStore создает хранилище токена по указанному пути
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Load читает сохраненный токен. Отсутствие файла — не ошибка,
// просто нет активной сессии.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save записывает токен, создавая каталог при необходимости
func (s *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("ошибка создания каталога для токена: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}
	return nil
}

// Clear удаляет сохраненный токен
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	return nil
}
