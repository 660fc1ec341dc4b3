package models

import (
	"encoding/json"
	"strings"
)

// Course представляет курс — предложение научить навыку с вводным видео
type Course struct {
	ID                 string     `json:"_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Skills             string     `json:"skills"`     // Навыки одной строкой через запятую
	LookingFor         string     `json:"lookingFor,omitempty"`
	CategoryOffered    Categories `json:"categoryOffered,omitempty"`
	CategoryLookingFor Categories `json:"categoryLookingFor,omitempty"`
	VideoURL           string     `json:"videoURL,omitempty"`

	// Дополнительные поля для API
	User *User `json:"user,omitempty"`
}

// SkillList разбивает строку навыков по запятым с обрезкой пробелов.
// Нормализация регистра не выполняется — она происходит только при фильтрации.
func (c *Course) SkillList() []string {
	if c.Skills == "" {
		return nil
	}

	parts := strings.Split(c.Skills, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}

// Categories — категория курса. Старые записи хранят категорию строкой,
// новые — списком строк, поэтому разбираем оба варианта.
type Categories []string

// UnmarshalJSON разбирает строку или массив строк
func (c *Categories) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*c = nil
		} else {
			*c = Categories{single}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*c = Categories(list)
	return nil
}

// MarshalJSON сериализует одиночную категорию обратно в строку
func (c Categories) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

// String возвращает категории одной строкой для отображения
func (c Categories) String() string {
	return strings.Join(c, ", ")
}
