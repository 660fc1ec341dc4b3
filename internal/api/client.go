package api

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"

	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

// Client — общий HTTP-слой для всех сервисов: базовый URL,
// bearer-заголовок из сессии, JSON-тела. Таймауты и ретраи
// намеренно не настраиваются: каждое действие пользователя —
// один запрос, ошибка показывается сразу.
type Client struct {
	http *client.Client
	sess *session.Session
}

// NewClient создает HTTP-клиент поверх конфигурации и сессии
func NewClient(cfg *config.Config, sess *session.Session) *Client {
	c := client.New()
	c.SetBaseURL(cfg.APIBaseURL)

	return &Client{
		http: c,
		sess: sess,
	}
}

// APIError представляет неуспешный HTTP-статус от сервера
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("сервер вернул %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("сервер вернул %d", e.Status)
}

// Get выполняет GET-запрос и декодирует ответ в out
func (c *Client) Get(path string, out any) error {
	return c.do(fiber.MethodGet, path, nil, out)
}

// Post выполняет POST-запрос с JSON-телом
func (c *Client) Post(path string, body any, out any) error {
	return c.do(fiber.MethodPost, path, body, out)
}

// Patch выполняет PATCH-запрос
func (c *Client) Patch(path string, body any, out any) error {
	return c.do(fiber.MethodPatch, path, body, out)
}

// Delete выполняет DELETE-запрос
func (c *Client) Delete(path string) error {
	return c.do(fiber.MethodDelete, path, nil, nil)
}

// do выполняет запрос и разбирает ответ.
// Неуспешный статус превращается в *APIError с текстом от сервера.
func (c *Client) do(method, path string, body any, out any) error {
	cfg := client.Config{
		Header: map[string]string{},
	}

	if token := c.sess.Token(); token != "" {
		cfg.Header["Authorization"] = "Bearer " + token
	}

	if body != nil {
		cfg.Header["Content-Type"] = "application/json"
		cfg.Body = body
	}

	var (
		resp *client.Response
		err  error
	)

	switch method {
	case fiber.MethodGet:
		resp, err = c.http.Get(path, cfg)
	case fiber.MethodPost:
		resp, err = c.http.Post(path, cfg)
	case fiber.MethodPatch:
		resp, err = c.http.Patch(path, cfg)
	case fiber.MethodDelete:
		resp, err = c.http.Delete(path, cfg)
	default:
		return fmt.Errorf("неподдерживаемый метод %s", method)
	}

	if err != nil {
		return fmt.Errorf("ошибка запроса %s %s: %w", method, path, err)
	}
	defer resp.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &APIError{
			Status:  resp.StatusCode(),
			Message: errorMessage(resp.Body()),
		}
	}

	if out != nil {
		if err := resp.JSON(out); err != nil {
			return fmt.Errorf("ошибка разбора ответа %s %s: %w", method, path, err)
		}
	}

	return nil
}

// errorMessage достает текст ошибки из тела ответа.
// Сервер отдает поле message либо error.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
