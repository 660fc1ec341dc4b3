package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/services/chat"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

// Сообщения экрана чата
type (
	messagesLoadedMsg struct {
		messages []models.Message
		err      error
	}

	messageSentMsg struct {
		message *models.Message
		err     error
	}
)

// chatModel — окно чата. История загружается целиком при открытии;
// отправленное сообщение добавляется в список локально, с клиентской
// меткой времени, без перезагрузки истории.
type chatModel struct {
	svc  *chat.ChatService
	sess *session.Session

	chatID   string
	messages []models.Message
	loading  bool
	sending  bool
	sendErr  string

	input textinput.Model
	vp    viewport.Model
	ready bool
}

func newChatModel(svc *chat.ChatService, sess *session.Session) chatModel {
	input := textinput.New()
	input.Placeholder = "Type your message..."
	input.Focus()

	return chatModel{
		svc:   svc,
		sess:  sess,
		input: input,
		vp:    viewport.New(78, 16),
	}
}

// open переключает модель на чат и загружает его историю
func (m *chatModel) open(chatID string) tea.Cmd {
	m.chatID = chatID
	m.messages = nil
	m.loading = true
	m.sendErr = ""
	m.input.SetValue("")

	svc := m.svc
	return func() tea.Msg {
		messages, err := svc.GetMessages(chatID)
		return messagesLoadedMsg{messages: messages, err: err}
	}
}

// resize подгоняет окно переписки под размер терминала
func (m *chatModel) resize(width, height int) {
	if width > 4 {
		m.vp.Width = width - 4
	}
	if height > 10 {
		m.vp.Height = height - 8
	}
	m.ready = true
	m.vp.SetContent(m.renderMessages())
	m.vp.GotoBottom()
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case messagesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			log.Printf("Ошибка загрузки сообщений: %v", msg.err)
			return m, notify("Failed to load messages")
		}
		// Порядок сообщений — как вернул сервер
		m.messages = msg.messages
		m.vp.SetContent(m.renderMessages())
		m.vp.GotoBottom()
		return m, nil

	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			// Текст в поле ввода сохраняется, сообщение не добавляется.
			// Ошибку и логируем, и показываем пользователю.
			log.Printf("Ошибка отправки сообщения: %v", msg.err)
			m.sendErr = "Message not sent. Try again."
			return m, nil
		}
		// Добавляем именно локально собранную запись, не серверное эхо
		m.messages = append(m.messages, *msg.message)
		m.input.SetValue("")
		m.sendErr = ""
		m.vp.SetContent(m.renderMessages())
		m.vp.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateMsg{screen: ScreenProfile} }

		case "enter":
			if m.sending || strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			m.sending = true
			chatID, senderID, text := m.chatID, m.sess.UserID(), m.input.Value()
			svc := m.svc
			return m, func() tea.Msg {
				message, err := svc.SendMessage(chatID, senderID, text)
				return messageSentMsg{message: message, err: err}
			}

		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// renderMessages собирает переписку для вьюпорта
func (m *chatModel) renderMessages() string {
	if len(m.messages) == 0 {
		return mutedStyle.Render("No messages yet.")
	}

	var b strings.Builder
	for _, msg := range m.messages {
		bubble := bubbleOtherStyle
		if msg.SenderID == m.sess.UserID() {
			bubble = bubbleOwnStyle
		}
		b.WriteString(bubble.Render(msg.Text))
		b.WriteString(" " + mutedStyle.Render(msg.Timestamp.Format("15:04")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m chatModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chat Room - "+m.chatID) + "\n")

	if m.loading {
		b.WriteString(mutedStyle.Render("Loading messages..."))
		return b.String()
	}

	b.WriteString(m.vp.View() + "\n")
	if m.sendErr != "" {
		b.WriteString(errorStyle.Render(m.sendErr) + "\n")
	}
	b.WriteString(m.input.View() + "\n")

	if m.sending {
		b.WriteString(mutedStyle.Render("Sending..."))
	} else {
		b.WriteString(helpStyle.Render("enter — отправить · esc — назад"))
	}
	return b.String()
}
