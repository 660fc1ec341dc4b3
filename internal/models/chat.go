package models

import "time"

// Chat представляет чат между двумя участниками обмена.
// Чат создается сервером при принятии предложения обмена,
// клиент напрямую чаты не создает.
type Chat struct {
	ID           string `json:"_id"`
	Participants []User `json:"participants"`
}

// OtherParticipant возвращает собеседника — участника чата,
// не являющегося текущим пользователем
func (c *Chat) OtherParticipant(currentUserID string) *User {
	for i := range c.Participants {
		if c.Participants[i].ID != currentUserID {
			return &c.Participants[i]
		}
	}
	return nil
}

// Message представляет сообщение в чате. Порядок сообщений —
// порядок вставки, как его вернул сервер; клиент не пересортировывает.
type Message struct {
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
