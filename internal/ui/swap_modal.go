package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/services/swap"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

// swapSubmittedMsg — результат отправки предложения обмена
type swapSubmittedMsg struct {
	request *models.SwapRequest
	err     error
}

// swapModal — модальная форма предложения обмена. Собирает два навыка
// и сообщение; пустые поля отклоняются локально до сетевого вызова
// с ошибкой под каждым полем.
type swapModal struct {
	svc         *swap.SwapService
	sess        *session.Session
	recipientID string

	requesterSkill textinput.Model
	desiredSkill   textinput.Model
	message        textinput.Model
	focus          int
	errors         map[string]string
	submitting     bool
}

func newSwapModal(svc *swap.SwapService, sess *session.Session, recipientID string) *swapModal {
	requesterSkill := textinput.New()
	requesterSkill.Placeholder = "Your Skill"
	requesterSkill.Focus()

	desiredSkill := textinput.New()
	desiredSkill.Placeholder = "Desired Skill"

	message := textinput.New()
	message.Placeholder = "Swap Reason or Message"

	return &swapModal{
		svc:            svc,
		sess:           sess,
		recipientID:    recipientID,
		requesterSkill: requesterSkill,
		desiredSkill:   desiredSkill,
		message:        message,
		errors:         map[string]string{},
	}
}

// Update обрабатывает ввод в модальном окне.
// Возвращаемый флаг сообщает, что окно пора закрыть.
func (m *swapModal) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case swapSubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			var vErr *swap.ValidationError
			if errors.As(msg.err, &vErr) {
				m.errors = vErr.Fields
				return nil, false
			}
			// Состояние не меняется, окно остается открытым
			return notify("Failed to send swap request."), false
		}
		return notify("Swap request sent successfully!"), true

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if !m.submitting {
				return nil, true
			}
			return nil, false

		case "tab", "down":
			m.setFocus((m.focus + 1) % 3)
			return nil, false

		case "shift+tab", "up":
			m.setFocus((m.focus + 2) % 3)
			return nil, false

		case "enter":
			if m.submitting {
				return nil, false
			}

			form := swap.SwapForm{
				RecipientID:    m.recipientID,
				RequesterSkill: m.requesterSkill.Value(),
				DesiredSkill:   m.desiredSkill.Value(),
				Message:        m.message.Value(),
			}

			// Валидация до любого сетевого вызова
			if errs := form.Validate(); len(errs) > 0 {
				m.errors = errs
				return nil, false
			}

			m.errors = map[string]string{}
			m.submitting = true
			requesterID := m.sess.UserID()
			return func() tea.Msg {
				request, err := m.svc.Propose(requesterID, form)
				return swapSubmittedMsg{request: request, err: err}
			}, false
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.requesterSkill, cmd = m.requesterSkill.Update(msg)
	case 1:
		m.desiredSkill, cmd = m.desiredSkill.Update(msg)
	case 2:
		m.message, cmd = m.message.Update(msg)
	}
	return cmd, false
}

func (m *swapModal) setFocus(focus int) {
	m.requesterSkill.Blur()
	m.desiredSkill.Blur()
	m.message.Blur()

	m.focus = focus
	switch focus {
	case 0:
		m.requesterSkill.Focus()
	case 1:
		m.desiredSkill.Focus()
	case 2:
		m.message.Focus()
	}
}

func (m *swapModal) View() string {
	body := headingStyle.Render("Propose a Swap") + "\n\n"

	body += m.requesterSkill.View() + "\n"
	if e, ok := m.errors["requesterSkill"]; ok {
		body += errorStyle.Render(e) + "\n"
	}

	body += m.desiredSkill.View() + "\n"
	if e, ok := m.errors["desiredSkill"]; ok {
		body += errorStyle.Render(e) + "\n"
	}

	body += m.message.View() + "\n"
	if e, ok := m.errors["message"]; ok {
		body += errorStyle.Render(e) + "\n"
	}

	body += "\n"
	if m.submitting {
		body += mutedStyle.Render("Submitting...")
	} else {
		body += helpStyle.Render("enter — отправить · esc — закрыть")
	}

	return modalStyle.Render(body)
}
