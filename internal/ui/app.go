package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/services/auth"
	"github.com/rajivgeraev/skillswap-client/internal/services/chat"
	"github.com/rajivgeraev/skillswap-client/internal/services/cloudinary"
	"github.com/rajivgeraev/skillswap-client/internal/services/course"
	"github.com/rajivgeraev/skillswap-client/internal/services/swap"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

// Screen определяет активный экран приложения
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenBrowse
	ScreenProfile
	ScreenChat
	ScreenCreateCourse
	ScreenLogin
	ScreenSignUp
)

// Сообщения верхнего уровня
type (
	// noticeMsg показывает блокирующее уведомление (аналог alert).
	// Пока оно на экране, ввод обрабатывает только Enter/Esc.
	noticeMsg struct{ text string }

	// navigateMsg переключает активный экран
	navigateMsg struct{ screen Screen }

	// openChatMsg открывает чат по ID
	openChatMsg struct{ chatID string }

	// loggedInMsg приходит после успешного входа
	loggedInMsg struct{ user *models.User }
)

// App — корневая bubbletea-модель: маршрутизация экранов,
// глобальные клавиши и блокирующие уведомления
type App struct {
	cfg  *config.Config
	sess *session.Session

	screen Screen
	width  int
	height int
	notice string

	authSvc *auth.AuthService

	login     loginModel
	signup    signUpModel
	dashboard dashboardModel
	browse    browseModel
	profile   profileModel
	chatView  chatModel
	create    createCourseModel
}

// NewApp собирает приложение из сервисов
func NewApp(
	cfg *config.Config,
	sess *session.Session,
	authSvc *auth.AuthService,
	courseSvc *course.CourseService,
	swapSvc *swap.SwapService,
	chatSvc *chat.ChatService,
	uploadSvc *cloudinary.CloudinaryService,
) *App {
	app := &App{
		cfg:       cfg,
		sess:      sess,
		authSvc:   authSvc,
		login:     newLoginModel(authSvc),
		signup:    newSignUpModel(authSvc),
		dashboard: newDashboardModel(courseSvc, swapSvc, sess),
		browse:    newBrowseModel(courseSvc, swapSvc, sess),
		profile:   newProfileModel(courseSvc, swapSvc, chatSvc, sess),
		chatView:  newChatModel(chatSvc, sess),
		create:    newCreateCourseModel(courseSvc, uploadSvc),
	}

	app.screen = ScreenDashboard
	if !sess.IsAuthenticated() {
		app.screen = ScreenLogin
	}
	return app
}

// Init запускает загрузку стартового экрана
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenDashboard {
		return a.dashboard.load()
	}
	return nil
}

// Update обрабатывает сообщения и делегирует их активному экрану
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chatView.resize(msg.Width, msg.Height)
		return a, nil

	case noticeMsg:
		a.notice = msg.text
		return a, nil

	case navigateMsg:
		return a, a.navigate(msg.screen)

	case openChatMsg:
		a.screen = ScreenChat
		return a, a.chatView.open(msg.chatID)

	case loggedInMsg:
		// После входа показываем каталог
		a.screen = ScreenDashboard
		return a, tea.Batch(a.dashboard.load(), notify("Login successful!"))

	case tea.KeyMsg:
		// Блокирующее уведомление: сначала закрыть его
		if a.notice != "" {
			switch msg.String() {
			case "enter", "esc":
				a.notice = ""
			}
			return a, nil
		}

		if cmd, handled := a.handleGlobalKey(msg); handled {
			return a, cmd
		}
	}

	var cmd tea.Cmd
	switch a.screen {
	case ScreenLogin:
		a.login, cmd = a.login.Update(msg)
	case ScreenSignUp:
		a.signup, cmd = a.signup.Update(msg)
	case ScreenDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case ScreenBrowse:
		a.browse, cmd = a.browse.Update(msg)
	case ScreenProfile:
		a.profile, cmd = a.profile.Update(msg)
	case ScreenChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case ScreenCreateCourse:
		a.create, cmd = a.create.Update(msg)
	}
	return a, cmd
}

// handleGlobalKey обрабатывает навигацию, доступную с любого экрана
func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	case "ctrl+h":
		return a.navigate(ScreenDashboard), true
	case "ctrl+b":
		return a.navigate(ScreenBrowse), true
	case "ctrl+p":
		return a.navigate(ScreenProfile), true
	case "ctrl+n":
		return a.navigate(ScreenCreateCourse), true
	case "ctrl+x":
		if !a.sess.IsAuthenticated() {
			return nil, false
		}
		if err := a.authSvc.Logout(); err != nil {
			return notify("Logout failed: " + err.Error()), true
		}
		a.screen = ScreenLogin
		a.login = newLoginModel(a.authSvc)
		return nil, true
	}
	return nil, false
}

// navigate переключает экран и запускает его загрузку.
// Экраны профиля и создания курса требуют авторизации.
func (a *App) navigate(screen Screen) tea.Cmd {
	switch screen {
	case ScreenProfile, ScreenCreateCourse:
		if !a.sess.IsAuthenticated() {
			a.screen = ScreenLogin
			return notify("Please log in first.")
		}
	}

	a.screen = screen
	switch screen {
	case ScreenDashboard:
		return a.dashboard.load()
	case ScreenBrowse:
		return a.browse.load()
	case ScreenProfile:
		return a.profile.load()
	}
	return nil
}

// View рисует активный экран, панель вкладок и уведомление
func (a *App) View() string {
	var body string
	switch a.screen {
	case ScreenLogin:
		body = a.login.View()
	case ScreenSignUp:
		body = a.signup.View()
	case ScreenDashboard:
		body = a.dashboard.View()
	case ScreenBrowse:
		body = a.browse.View()
	case ScreenProfile:
		body = a.profile.View()
	case ScreenChat:
		body = a.chatView.View()
	case ScreenCreateCourse:
		body = a.create.View()
	}

	view := a.renderTabs() + "\n" + body

	if a.notice != "" {
		box := noticeStyle.Render(a.notice + "\n\n" + mutedStyle.Render("Enter — закрыть"))
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	return view
}

// renderTabs рисует навигационную панель
func (a *App) renderTabs() string {
	type tab struct {
		name   string
		screen Screen
	}

	tabs := []tab{
		{"SkillSwap", ScreenDashboard},
		{"Browse ^B", ScreenBrowse},
	}
	if a.sess.IsAuthenticated() {
		tabs = append(tabs,
			tab{"Profile ^P", ScreenProfile},
			tab{"New Course ^N", ScreenCreateCourse},
			tab{"Logout ^X", ScreenLogin},
		)
	} else {
		tabs = append(tabs, tab{"Login", ScreenLogin})
	}

	var rendered []string
	for _, t := range tabs {
		if t.screen == a.screen {
			rendered = append(rendered, activeTabStyle.Render(t.name))
		} else {
			rendered = append(rendered, tabStyle.Render(t.name))
		}
	}
	return strings.Join(rendered, " ")
}

// notify возвращает команду показа блокирующего уведомления
func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{text: text}
	}
}
