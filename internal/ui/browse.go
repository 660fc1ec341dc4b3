package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajivgeraev/skillswap-client/internal/catalog"
	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/services/course"
	"github.com/rajivgeraev/skillswap-client/internal/services/swap"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

// browseLoadedMsg — результат загрузки курсов для браузинга
type browseLoadedMsg struct {
	courses []models.Course
	err     error
}

// Зоны фокуса экрана браузинга: три фильтра и карусель
const (
	browseFocusCategory = iota
	browseFocusSkill
	browseFocusUser
	browseFocusCarousel
)

// browseModel — просмотр каталога с тремя независимыми фильтрами.
// Фильтры пересчитываются от полного списка на каждое изменение,
// очистка поля возвращает ранее исключенные курсы.
type browseModel struct {
	courseSvc *course.CourseService
	swapSvc   *swap.SwapService
	sess      *session.Session

	loading  bool
	courses  []models.Course
	filtered []models.Course
	car      catalog.Carousel

	category textinput.Model
	skill    textinput.Model
	user     textinput.Model
	focus    int

	modal *swapModal
}

func newBrowseModel(courseSvc *course.CourseService, swapSvc *swap.SwapService, sess *session.Session) browseModel {
	category := textinput.New()
	category.Placeholder = "Filter by Category"
	category.Focus()

	skill := textinput.New()
	skill.Placeholder = "Filter by Skill"

	user := textinput.New()
	user.Placeholder = "Filter by User"

	return browseModel{
		courseSvc: courseSvc,
		swapSvc:   swapSvc,
		sess:      sess,
		category:  category,
		skill:     skill,
		user:      user,
	}
}

// load запускает загрузку полного списка курсов
func (m *browseModel) load() tea.Cmd {
	m.loading = true
	svc := m.courseSvc
	return func() tea.Msg {
		courses, err := svc.ListCourses()
		return browseLoadedMsg{courses: courses, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (browseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case browseLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.courses = nil
			m.applyFilters()
			return m, notify("Failed to fetch courses")
		}
		m.courses = msg.courses
		m.applyFilters()
		return m, nil
	}

	if m.modal != nil {
		cmd, closed := m.modal.Update(msg)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			m.setFocus((m.focus + 1) % 4)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + 3) % 4)
			return m, nil
		}

		if m.focus == browseFocusCarousel {
			switch key.String() {
			case "right", "l":
				m.car.Next()
			case "left", "h":
				m.car.Prev()
			case "s":
				if !m.car.Empty() {
					selected := m.filtered[m.car.Index]
					if selected.User == nil || !m.sess.IsAuthenticated() {
						return m, notify("User not logged in or course not selected")
					}
					m.modal = newSwapModal(m.swapSvc, m.sess, selected.User.ID)
				}
			}
			return m, nil
		}
	}

	// Ввод в активный фильтр и пересчет от полного списка
	var cmd tea.Cmd
	switch m.focus {
	case browseFocusCategory:
		m.category, cmd = m.category.Update(msg)
	case browseFocusSkill:
		m.skill, cmd = m.skill.Update(msg)
	case browseFocusUser:
		m.user, cmd = m.user.Update(msg)
	}
	m.applyFilters()
	return m, cmd
}

// applyFilters пересчитывает выборку от полного списка курсов
func (m *browseModel) applyFilters() {
	filters := catalog.Filters{
		Category: m.category.Value(),
		Skill:    m.skill.Value(),
		User:     m.user.Value(),
	}
	m.filtered = filters.Apply(m.courses)
	m.car.Reset(len(m.filtered))
}

func (m *browseModel) setFocus(focus int) {
	m.category.Blur()
	m.skill.Blur()
	m.user.Blur()

	m.focus = focus
	switch focus {
	case browseFocusCategory:
		m.category.Focus()
	case browseFocusSkill:
		m.skill.Focus()
	case browseFocusUser:
		m.user.Focus()
	}
}

func (m browseModel) View() string {
	if m.modal != nil {
		return m.modal.View()
	}

	if m.loading {
		return mutedStyle.Render("Loading courses...")
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Browse Courses") + "\n\n")
	b.WriteString(m.category.View() + "  " + m.skill.View() + "  " + m.user.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(mutedStyle.Render("No courses found matching your filters."))
	} else {
		b.WriteString(renderCourseCard(m.filtered[m.car.Index], m.car.Index, m.car.Length))
	}

	b.WriteString("\n" + helpStyle.Render("tab — фильтры/карусель · ←/→ — курсы · s — предложить обмен"))
	return b.String()
}
