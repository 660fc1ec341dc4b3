package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rajivgeraev/skillswap-client/internal/catalog"
	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/services/course"
	"github.com/rajivgeraev/skillswap-client/internal/services/swap"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

// dashboardLoadedMsg — результат загрузки каталога
type dashboardLoadedMsg struct {
	courses []models.Course
	err     error
}

// dashEntry — позиция (категория, навык) в плоском списке навигации
type dashEntry struct {
	category int
	skill    int
}

// dashboardModel — каталог курсов: индекс навыков слева и группы
// категория → навык с каруселью курсов в каждой группе
type dashboardModel struct {
	courseSvc *course.CourseService
	swapSvc   *swap.SwapService
	sess      *session.Session

	loading   bool
	skills    []string
	groups    []catalog.CategoryGroup
	entries   []dashEntry
	cursor    int
	carousels []catalog.Carousel

	modal *swapModal
}

func newDashboardModel(courseSvc *course.CourseService, swapSvc *swap.SwapService, sess *session.Session) dashboardModel {
	return dashboardModel{
		courseSvc: courseSvc,
		swapSvc:   swapSvc,
		sess:      sess,
	}
}

// load запускает загрузку полного списка курсов
func (m *dashboardModel) load() tea.Cmd {
	m.loading = true
	svc := m.courseSvc
	return func() tea.Msg {
		courses, err := svc.ListCourses()
		return dashboardLoadedMsg{courses: courses, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// Пустое состояние плюс блокирующее уведомление, без ретраев
			m.rebuild(nil)
			return m, notify("Failed to load courses: " + msg.err.Error())
		}
		m.rebuild(msg.courses)
		return m, nil
	}

	if m.modal != nil {
		cmd, closed := m.modal.Update(msg)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "right", "l":
			if len(m.entries) > 0 {
				m.carousels[m.cursor].Next()
			}
		case "left", "h":
			if len(m.entries) > 0 {
				m.carousels[m.cursor].Prev()
			}
		case "s":
			if c := m.currentCourse(); c != nil && c.User != nil {
				if !m.sess.IsAuthenticated() {
					return m, notify("Please log in first.")
				}
				m.modal = newSwapModal(m.swapSvc, m.sess, c.User.ID)
			}
		}
	}

	return m, nil
}

// rebuild полностью пересобирает индекс навыков и группировку.
// Вызывается на каждом обновлении списка курсов.
func (m *dashboardModel) rebuild(courses []models.Course) {
	m.skills = catalog.SkillIndex(courses)
	m.groups = catalog.GroupByCategory(courses)

	m.entries = nil
	m.carousels = nil
	for ci := range m.groups {
		for si := range m.groups[ci].Skills {
			m.entries = append(m.entries, dashEntry{category: ci, skill: si})
			m.carousels = append(m.carousels, catalog.NewCarousel(len(m.groups[ci].Skills[si].Courses)))
		}
	}
	if m.cursor >= len(m.entries) {
		m.cursor = 0
	}
}

// currentCourse возвращает курс под курсором или nil
func (m *dashboardModel) currentCourse() *models.Course {
	if len(m.entries) == 0 {
		return nil
	}
	entry := m.entries[m.cursor]
	group := m.groups[entry.category].Skills[entry.skill]
	car := m.carousels[m.cursor]
	if car.Empty() {
		return nil
	}
	return &group.Courses[car.Index]
}

func (m dashboardModel) View() string {
	if m.modal != nil {
		return m.modal.View()
	}

	if m.loading {
		return mutedStyle.Render("Loading courses...")
	}

	// Индекс навыков
	var sidebar strings.Builder
	sidebar.WriteString(headingStyle.Render("Available Skills") + "\n")
	if len(m.skills) == 0 {
		sidebar.WriteString(mutedStyle.Render("No skills found"))
	}
	for _, skill := range m.skills {
		sidebar.WriteString(skill + "\n")
	}

	// Текущая группа
	var main strings.Builder
	if len(m.entries) == 0 {
		main.WriteString(mutedStyle.Render("No courses yet."))
	} else {
		entry := m.entries[m.cursor]
		group := m.groups[entry.category]
		skillGroup := group.Skills[entry.skill]
		car := m.carousels[m.cursor]

		main.WriteString(headingStyle.Render("Category: "+group.Category) + "\n")
		main.WriteString(labelStyle.Render(skillGroup.Skill) + "\n\n")
		main.WriteString(renderCourseCard(skillGroup.Courses[car.Index], car.Index, car.Length))
		main.WriteString("\n" + helpStyle.Render("↑/↓ — группы · ←/→ — курсы · s — предложить обмен"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(sidebar.String()), " ", main.String())
}
