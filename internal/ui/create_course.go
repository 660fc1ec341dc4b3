package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/services/cloudinary"
	"github.com/rajivgeraev/skillswap-client/internal/services/course"
)

// courseCreatedMsg — результат создания курса
type courseCreatedMsg struct {
	course *models.Course
	err    error
}

// Поля формы создания курса
const (
	createFieldTitle = iota
	createFieldDescription
	createFieldSkills
	createFieldLookingFor
	createFieldCategoryOffered
	createFieldCategoryLooking
	createFieldVideoPath
	createFieldCount
)

// createCourseModel — форма создания курса. Сначала вводное видео
// загружается в Cloudinary, затем курс с полученным secure_url
// отправляется на сервер.
type createCourseModel struct {
	courseSvc  *course.CourseService
	uploadSvc  *cloudinary.CloudinaryService
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newCreateCourseModel(courseSvc *course.CourseService, uploadSvc *cloudinary.CloudinaryService) createCourseModel {
	placeholders := []string{
		"Title",
		"Description",
		"Skill You Can Teach",
		"Skill You Want to Learn",
		"Offered Category",
		"Looking For Category",
		"Path to intro video file",
	}

	inputs := make([]textinput.Model, createFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		inputs[i] = ti
	}
	inputs[createFieldTitle].Focus()

	return createCourseModel{
		courseSvc: courseSvc,
		uploadSvc: uploadSvc,
		inputs:    inputs,
	}
}

func (m createCourseModel) Update(msg tea.Msg) (createCourseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case courseCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			return m, notify("Error creating course: " + msg.err.Error())
		}
		// Успех: очищаем форму
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.setFocus(createFieldTitle)
		return m, notify("Course created!")

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % createFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + createFieldCount) % createFieldCount)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			if m.inputs[createFieldVideoPath].Value() == "" {
				return m, notify("Please select an intro video.")
			}

			input := course.CreateCourseInput{
				Title:              m.inputs[createFieldTitle].Value(),
				Description:        m.inputs[createFieldDescription].Value(),
				Skills:             m.inputs[createFieldSkills].Value(),
				LookingFor:         m.inputs[createFieldLookingFor].Value(),
				CategoryOffered:    m.inputs[createFieldCategoryOffered].Value(),
				CategoryLookingFor: m.inputs[createFieldCategoryLooking].Value(),
			}
			videoPath := m.inputs[createFieldVideoPath].Value()

			m.submitting = true
			courseSvc, uploadSvc := m.courseSvc, m.uploadSvc
			return m, func() tea.Msg {
				videoURL, err := uploadSvc.UploadVideo(context.Background(), videoPath)
				if err != nil {
					return courseCreatedMsg{err: err}
				}
				input.VideoURL = videoURL

				created, err := courseSvc.CreateCourse(input)
				return courseCreatedMsg{course: created, err: err}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *createCourseModel) setFocus(focus int) {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
}

func (m createCourseModel) View() string {
	body := headingStyle.Render("Create Course") + "\n\n"
	for i := range m.inputs {
		body += m.inputs[i].View() + "\n"
	}
	body += "\n"

	if m.submitting {
		body += mutedStyle.Render("Submitting...")
	} else {
		body += helpStyle.Render("enter — создать курс · tab — следующее поле")
	}

	return modalStyle.Render(body)
}
