package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rajivgeraev/skillswap-client/internal/models"
)

// Стили интерфейса
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("27")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("33")).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(24)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 2).
			Width(60)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(1, 3)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			Width(56)

	bubbleOwnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("27")).
			Padding(0, 1)

	bubbleOtherStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("236")).
				Background(lipgloss.Color("252")).
				Padding(0, 1)
)

// renderCourseCard рисует карточку курса с позицией в карусели
func renderCourseCard(course models.Course, index, total int) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(course.Title))
	b.WriteString("\n")
	if course.Description != "" {
		b.WriteString(course.Description)
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Skills: "))
	b.WriteString(course.Skills)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Offering: "))
	b.WriteString(course.CategoryOffered.String())
	b.WriteString(labelStyle.Render("  Looking for: "))
	if course.LookingFor != "" {
		b.WriteString(course.LookingFor)
	} else {
		b.WriteString(course.CategoryLookingFor.String())
	}
	b.WriteString("\n")
	if course.User != nil {
		b.WriteString(labelStyle.Render("By: "))
		b.WriteString(course.User.Name)
		b.WriteString("\n")
	}
	if course.VideoURL != "" {
		b.WriteString(mutedStyle.Render("🎥 " + course.VideoURL))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d / %d", index+1, total)))

	return cardStyle.Render(b.String())
}
