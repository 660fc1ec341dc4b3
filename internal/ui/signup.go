package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajivgeraev/skillswap-client/internal/services/auth"
)

// signUpResultMsg — результат регистрации
type signUpResultMsg struct {
	err error
}

// signUpModel — форма регистрации нового пользователя
type signUpModel struct {
	svc        *auth.AuthService
	inputs     []textinput.Model // name, phone, email, password
	focus      int
	submitting bool
}

func newSignUpModel(svc *auth.AuthService) signUpModel {
	placeholders := []string{"Name", "Phone Number", "Email", "Password"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		inputs[i] = ti
	}
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[0].Focus()

	return signUpModel{svc: svc, inputs: inputs}
}

func (m signUpModel) Update(msg tea.Msg) (signUpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signUpResultMsg:
		m.submitting = false
		if msg.err != nil {
			return m, notify("Sign up failed: " + msg.err.Error())
		}
		// После регистрации — на экран входа
		return m, tea.Batch(
			notify("Sign up successful!"),
			func() tea.Msg { return navigateMsg{screen: ScreenLogin} },
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case "esc":
			return m, func() tea.Msg { return navigateMsg{screen: ScreenLogin} }
		case "enter":
			if m.submitting {
				return m, nil
			}
			name := m.inputs[0].Value()
			phone := m.inputs[1].Value()
			email := m.inputs[2].Value()
			password := m.inputs[3].Value()
			m.submitting = true
			return m, func() tea.Msg {
				return signUpResultMsg{err: m.svc.Register(name, phone, email, password)}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *signUpModel) setFocus(focus int) {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
}

func (m signUpModel) View() string {
	body := headingStyle.Render("Sign Up") + "\n\n"
	labels := []string{"Name", "Phone", "Email", "Password"}
	for i, input := range m.inputs {
		body += labelStyle.Render(labels[i]) + "\n" + input.View() + "\n"
	}
	body += "\n"

	if m.submitting {
		body += mutedStyle.Render("Signing up...")
	} else {
		body += helpStyle.Render("enter — зарегистрироваться · esc — назад к входу")
	}

	return modalStyle.Render(body)
}
