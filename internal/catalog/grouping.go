package catalog

import (
	"sort"

	"github.com/rajivgeraev/skillswap-client/internal/models"
)

// Категория и навык по умолчанию для курсов без заполненных полей
const (
	NoSkill       = "No Skill"
	Uncategorized = "Uncategorized"
)

// SkillGroup — курсы, предлагающие один навык внутри категории.
// Порядок курсов повторяет порядок исходной выборки.
type SkillGroup struct {
	Skill   string
	Courses []models.Course
}

// CategoryGroup — группа навыков одной категории
type CategoryGroup struct {
	Category string
	Skills   []SkillGroup
}

// SkillIndex возвращает отсортированный список уникальных навыков
// по всем курсам. Токены чувствительны к регистру: "guitar" и
// "Guitar" считаются разными навыками, как они и хранятся.
func SkillIndex(courses []models.Course) []string {
	seen := make(map[string]struct{})
	var skills []string

	for i := range courses {
		for _, token := range courses[i].SkillList() {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			skills = append(skills, token)
		}
	}

	sort.Strings(skills)
	return skills
}

// GroupByCategory строит двухуровневую группировку
// категория → навык → курсы. Курс без навыков попадает под токен
// "No Skill", без категории — в "Uncategorized". Курс появляется по
// одному разу на каждую пару (категория, навык), которую порождает.
//
// Группировка всегда пересобирается целиком по свежему списку курсов,
// инкрементальных обновлений нет.
func GroupByCategory(courses []models.Course) []CategoryGroup {
	var groups []CategoryGroup
	categoryIndex := make(map[string]int)
	skillIndex := make(map[string]map[string]int) // категория → навык → позиция

	for i := range courses {
		course := courses[i]

		category := course.CategoryOffered.String()
		if category == "" {
			category = Uncategorized
		}

		ci, ok := categoryIndex[category]
		if !ok {
			ci = len(groups)
			categoryIndex[category] = ci
			skillIndex[category] = make(map[string]int)
			groups = append(groups, CategoryGroup{Category: category})
		}

		tokens := course.SkillList()
		if len(tokens) == 0 {
			tokens = []string{NoSkill}
		}

		for _, token := range tokens {
			si, ok := skillIndex[category][token]
			if !ok {
				si = len(groups[ci].Skills)
				skillIndex[category][token] = si
				groups[ci].Skills = append(groups[ci].Skills, SkillGroup{Skill: token})
			}
			groups[ci].Skills[si].Courses = append(groups[ci].Skills[si].Courses, course)
		}
	}

	return groups
}
