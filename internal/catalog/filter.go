package catalog

import (
	"strings"

	"github.com/rajivgeraev/skillswap-client/internal/models"
)

// Filters — три независимых текстовых фильтра каталога.
// Непустые фильтры применяются конъюнктивно, каждый — проверка
// подстроки без учета регистра. Значение из одних пробелов
// считается отсутствующим.
type Filters struct {
	Category string
	Skill    string
	User     string
}

// IsEmpty сообщает, задан ли хотя бы один фильтр
func (f Filters) IsEmpty() bool {
	return strings.TrimSpace(f.Category) == "" &&
		strings.TrimSpace(f.Skill) == "" &&
		strings.TrimSpace(f.User) == ""
}

// Apply возвращает подпоследовательность курсов, проходящих все
// непустые фильтры. Фильтрация всегда выполняется по полному списку,
// исходный срез не изменяется — ослабление фильтра возвращает ранее
// исключенные курсы.
func (f Filters) Apply(courses []models.Course) []models.Course {
	category := strings.ToLower(strings.TrimSpace(f.Category))
	skill := strings.ToLower(strings.TrimSpace(f.Skill))
	user := strings.ToLower(strings.TrimSpace(f.User))

	filtered := make([]models.Course, 0, len(courses))
	for i := range courses {
		course := courses[i]

		if category != "" && !matchCategory(course.CategoryOffered, category) {
			continue
		}
		if skill != "" && !strings.Contains(strings.ToLower(course.Skills), skill) {
			continue
		}
		if user != "" && !matchUser(course.User, user) {
			continue
		}

		filtered = append(filtered, course)
	}
	return filtered
}

// matchCategory проверяет вхождение подстроки в любой из элементов
// категории. Курс без категории не проходит фильтр по категории.
func matchCategory(categories models.Categories, needle string) bool {
	for _, cat := range categories {
		if strings.Contains(strings.ToLower(cat), needle) {
			return true
		}
	}
	return false
}

// matchUser проверяет имя владельца курса.
// Курс без владельца не проходит фильтр по пользователю.
func matchUser(user *models.User, needle string) bool {
	if user == nil {
		return false
	}
	return strings.Contains(strings.ToLower(user.Name), needle)
}
