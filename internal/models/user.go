package models

import (
	"encoding/json"
	"time"
)

// User представляет пользователя платформы
type User struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	JoinedAt time.Time `json:"createdAt,omitempty"`
}

// UserRef — ссылка на пользователя в ответах API.
// Сервер возвращает либо ID строкой, либо развернутый объект пользователя,
// поэтому разбираем оба варианта.
type UserRef struct {
	ID    string
	Name  string
	Email string
}

// UnmarshalJSON разбирает строковый ID или вложенный объект пользователя
func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var user struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return err
	}

	r.ID = user.ID
	r.Name = user.Name
	r.Email = user.Email
	return nil
}

// MarshalJSON сериализует ссылку обратно в строковый ID
func (r UserRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}
