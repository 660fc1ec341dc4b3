package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajivgeraev/skillswap-client/internal/catalog"
	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/services/chat"
	"github.com/rajivgeraev/skillswap-client/internal/services/course"
	"github.com/rajivgeraev/skillswap-client/internal/services/swap"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

// Сообщения экрана профиля
type (
	profileLoadedMsg struct {
		user     *models.User
		courses  []models.Course
		requests []models.SwapRequest
		err      error
	}

	chatsLoadedMsg struct {
		chats []models.Chat
		err   error
	}

	// courseDeletedMsg несет индекс, зафиксированный при подтверждении:
	// пока запрос в полете, карусель можно листать, и текущий индекс
	// может указывать уже на другой курс
	courseDeletedMsg struct {
		index int
		err   error
	}

	swapAcceptedMsg struct {
		chatID string
		err    error
	}
)

// Панели экрана профиля
const (
	paneCourses = iota
	paneRequests
	paneChats
)

// profileModel — профиль: свои курсы в карусели, входящие предложения
// обмена и список чатов
type profileModel struct {
	courseSvc *course.CourseService
	swapSvc   *swap.SwapService
	chatSvc   *chat.ChatService
	sess      *session.Session

	loading  bool
	user     *models.User
	courses  []models.Course
	car      catalog.Carousel
	requests []models.SwapRequest
	chats    []models.Chat

	pane       int
	reqCursor  int
	chatCursor int

	confirmingDelete bool
	deleting         bool
	accepting        bool // Пока запрос в полете, кнопка принятия отключена
}

func newProfileModel(courseSvc *course.CourseService, swapSvc *swap.SwapService, chatSvc *chat.ChatService, sess *session.Session) profileModel {
	return profileModel{
		courseSvc: courseSvc,
		swapSvc:   swapSvc,
		chatSvc:   chatSvc,
		sess:      sess,
	}
}

// load загружает профиль, свои курсы и входящие предложения
func (m *profileModel) load() tea.Cmd {
	m.loading = true
	courseSvc, swapSvc := m.courseSvc, m.swapSvc
	return func() tea.Msg {
		user, err := courseSvc.Profile()
		if err != nil {
			return profileLoadedMsg{err: err}
		}

		courses, err := courseSvc.MyCourses()
		if err != nil {
			return profileLoadedMsg{err: err}
		}

		requests, err := swapSvc.Incoming(user.ID)
		if err != nil {
			return profileLoadedMsg{err: err}
		}

		return profileLoadedMsg{user: user, courses: courses, requests: requests}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.user = nil
			m.courses = nil
			m.requests = nil
			m.car.Reset(0)
			return m, notify("Could not load profile. Please log in.")
		}
		m.user = msg.user
		m.courses = msg.courses
		m.requests = msg.requests
		m.car.Reset(len(m.courses))
		m.sess.SetUser(msg.user)
		return m, nil

	case chatsLoadedMsg:
		if msg.err != nil {
			m.chats = nil
			return m, notify("Error fetching chats")
		}
		m.chats = msg.chats
		if m.chatCursor >= len(m.chats) {
			m.chatCursor = 0
		}
		return m, nil

	case courseDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			return m, notify("Error deleting course: " + msg.err.Error())
		}
		// Убираем именно подтвержденный курс. Если за время запроса
		// пользователь пролистал дальше, сдвигаем индекс, чтобы на
		// экране остался тот же курс.
		idx := msg.index
		m.courses = append(m.courses[:idx], m.courses[idx+1:]...)
		if m.car.Index > idx {
			m.car.Index--
		}
		m.car.Remove()
		return m, nil

	case swapAcceptedMsg:
		m.accepting = false
		if msg.err != nil {
			return m, notify("Error accepting request.")
		}
		// Принятое предложение породило чат — переходим в него
		chatID := msg.chatID
		return m, func() tea.Msg { return openChatMsg{chatID: chatID} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m profileModel) handleKey(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	// Подтверждение удаления перехватывает ввод целиком
	if m.confirmingDelete {
		switch msg.String() {
		case "y":
			m.confirmingDelete = false
			m.deleting = true
			idx := m.car.Index
			courseID := m.courses[idx].ID
			svc := m.courseSvc
			return m, func() tea.Msg {
				return courseDeletedMsg{index: idx, err: svc.DeleteCourse(courseID)}
			}
		case "n", "esc":
			m.confirmingDelete = false
		}
		return m, nil
	}

	switch msg.String() {
	case "r":
		m.pane = paneRequests
		return m, nil
	case "c":
		m.pane = paneChats
		svc := m.chatSvc
		return m, func() tea.Msg {
			chats, err := svc.GetChats()
			return chatsLoadedMsg{chats: chats, err: err}
		}
	case "esc":
		m.pane = paneCourses
		return m, nil
	}

	switch m.pane {
	case paneCourses:
		switch msg.String() {
		case "right", "l":
			m.car.Next()
		case "left", "h":
			m.car.Prev()
		case "d":
			if !m.car.Empty() && !m.deleting {
				m.confirmingDelete = true
			}
		}

	case paneRequests:
		switch msg.String() {
		case "up", "k":
			if m.reqCursor > 0 {
				m.reqCursor--
			}
		case "down", "j":
			if m.reqCursor < len(m.requests)-1 {
				m.reqCursor++
			}
		case "enter":
			// Принятие отключено, пока предыдущее в полете
			if m.accepting || len(m.requests) == 0 {
				return m, nil
			}
			m.accepting = true
			requestID := m.requests[m.reqCursor].ID
			svc := m.swapSvc
			return m, func() tea.Msg {
				chatID, err := svc.Accept(requestID)
				return swapAcceptedMsg{chatID: chatID, err: err}
			}
		}

	case paneChats:
		switch msg.String() {
		case "up", "k":
			if m.chatCursor > 0 {
				m.chatCursor--
			}
		case "down", "j":
			if m.chatCursor < len(m.chats)-1 {
				m.chatCursor++
			}
		case "enter":
			if len(m.chats) == 0 {
				return m, nil
			}
			chatID := m.chats[m.chatCursor].ID
			return m, func() tea.Msg { return openChatMsg{chatID: chatID} }
		}
	}

	return m, nil
}

func (m profileModel) View() string {
	if m.loading {
		return mutedStyle.Render("Loading profile...")
	}
	if m.user == nil {
		return errorStyle.Render("Could not load profile. Please log in.")
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("👤 "+m.user.Name) + "\n")
	b.WriteString(m.user.Email + "\n")
	if !m.user.JoinedAt.IsZero() {
		b.WriteString(mutedStyle.Render("Joined on "+m.user.JoinedAt.Format("02.01.2006")) + "\n")
	}
	b.WriteString("\n")

	switch m.pane {
	case paneRequests:
		b.WriteString(m.viewRequests())
	case paneChats:
		b.WriteString(m.viewChats())
	default:
		b.WriteString(m.viewCourses())
	}

	b.WriteString("\n" + helpStyle.Render("r — заявки · c — чаты · esc — курсы"))
	return b.String()
}

func (m profileModel) viewCourses() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("🎓 Your Courses") + "\n")

	if m.car.Empty() {
		b.WriteString(mutedStyle.Render("No courses yet. Start by creating one!"))
		return b.String()
	}

	b.WriteString(renderCourseCard(m.courses[m.car.Index], m.car.Index, m.car.Length))
	b.WriteString("\n")

	if m.confirmingDelete {
		b.WriteString(errorStyle.Render("Are you sure you want to delete this course? (y/n)"))
	} else if m.deleting {
		b.WriteString(mutedStyle.Render("Deleting..."))
	} else {
		b.WriteString(helpStyle.Render("←/→ — курсы · d — удалить"))
	}
	return b.String()
}

func (m profileModel) viewRequests() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Incoming Requests") + "\n")

	if len(m.requests) == 0 {
		b.WriteString(mutedStyle.Render("No requests yet."))
		return b.String()
	}

	for i, req := range m.requests {
		cursor := "  "
		if i == m.reqCursor {
			cursor = "▸ "
		}
		name := req.Requester.Name
		if name == "" {
			name = "Unknown"
		}
		b.WriteString(fmt.Sprintf("%sFrom: %s\n", cursor, name))
		b.WriteString(fmt.Sprintf("   Skill Offered: %s · Looking For: %s\n", req.RequesterSkill, req.DesiredSkill))
		b.WriteString("   " + mutedStyle.Render(req.Message) + "\n")
	}

	if m.accepting {
		b.WriteString(mutedStyle.Render("Accepting..."))
	} else {
		b.WriteString(helpStyle.Render("enter — принять предложение"))
	}
	return b.String()
}

func (m profileModel) viewChats() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Your Chats") + "\n")

	if len(m.chats) == 0 {
		b.WriteString(mutedStyle.Render("No active chats"))
		return b.String()
	}

	for i, c := range m.chats {
		cursor := "  "
		if i == m.chatCursor {
			cursor = "▸ "
		}
		name := "Unknown"
		if other := c.OtherParticipant(m.sess.UserID()); other != nil {
			name = other.Name
		}
		b.WriteString(cursor + "💬 Chat with " + name + "\n")
	}

	b.WriteString(helpStyle.Render("enter — открыть чат"))
	return b.String()
}
