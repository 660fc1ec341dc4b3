package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/services/auth"
)

// loginResultMsg — результат попытки входа
type loginResultMsg struct {
	user *models.User
	err  error
}

// loginModel — форма входа по email и паролю
type loginModel struct {
	svc        *auth.AuthService
	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
}

func newLoginModel(svc *auth.AuthService) loginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "••••••••"
	password.EchoMode = textinput.EchoPassword

	return loginModel{
		svc:      svc,
		email:    email,
		password: password,
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			return m, notify("Invalid email or password")
		}
		return m, func() tea.Msg { return loggedInMsg{user: msg.user} }

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.email.Blur()
				m.password.Focus()
			}
			return m, nil

		case "ctrl+s":
			// Переключение на регистрацию
			return m, func() tea.Msg { return navigateMsg{screen: ScreenSignUp} }

		case "enter":
			if m.submitting {
				return m, nil
			}
			email, password := m.email.Value(), m.password.Value()
			m.submitting = true
			return m, func() tea.Msg {
				user, err := m.svc.Login(email, password)
				return loginResultMsg{user: user, err: err}
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) View() string {
	body := headingStyle.Render("Login") + "\n\n" +
		labelStyle.Render("Email") + "\n" + m.email.View() + "\n" +
		labelStyle.Render("Password") + "\n" + m.password.View() + "\n\n"

	if m.submitting {
		body += mutedStyle.Render("Logging in...")
	} else {
		body += helpStyle.Render("enter — войти · ctrl+s — регистрация · tab — следующее поле")
	}

	return modalStyle.Render(body)
}
