package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rajivgeraev/skillswap-client/internal/models"
)

func sampleCourses() []models.Course {
	return []models.Course{
		{
			ID:              "c1",
			CategoryOffered: models.Categories{"Music"},
			Skills:          "Guitar, Piano",
			User:            &models.User{ID: "u1", Name: "Alice"},
		},
		{
			ID:              "c2",
			CategoryOffered: models.Categories{"Music"},
			Skills:          "Guitar",
			User:            &models.User{ID: "u2", Name: "Bob"},
		},
		{
			ID:              "c3",
			CategoryOffered: models.Categories{"Games", "Board Games"},
			Skills:          "Chess",
			User:            &models.User{ID: "u3", Name: "Carol"},
		},
	}
}

func courseIDs(courses []models.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilters_Empty(t *testing.T) {
	courses := sampleCourses()

	// Пустые и состоящие из пробелов фильтры не сужают выборку
	assert.Equal(t, courses, Filters{}.Apply(courses))
	assert.Equal(t, courses, Filters{Category: "   ", Skill: "\t", User: " "}.Apply(courses))
}

func TestFilters_CaseInsensitiveSubstring(t *testing.T) {
	courses := sampleCourses()

	assert.Equal(t, []string{"c1", "c2"}, courseIDs(Filters{Skill: "guit"}.Apply(courses)))
	assert.Equal(t, []string{"c1", "c2"}, courseIDs(Filters{Category: "MUSIC"}.Apply(courses)))
	assert.Equal(t, []string{"c2"}, courseIDs(Filters{User: "bob"}.Apply(courses)))
}

func TestFilters_Conjunctive(t *testing.T) {
	courses := sampleCourses()

	got := Filters{Category: "music", Skill: "piano"}.Apply(courses)
	assert.Equal(t, []string{"c1"}, courseIDs(got))

	got = Filters{Category: "music", Skill: "chess"}.Apply(courses)
	assert.Empty(t, got)
}

func TestFilters_CategoryMatchesAnyElement(t *testing.T) {
	courses := sampleCourses()

	assert.Equal(t, []string{"c3"}, courseIDs(Filters{Category: "board"}.Apply(courses)))
}

func TestFilters_MissingFieldsFail(t *testing.T) {
	courses := []models.Course{
		{ID: "c1", Skills: "Guitar"}, // без категории и пользователя
	}

	assert.Empty(t, Filters{Category: "music"}.Apply(courses))
	assert.Empty(t, Filters{User: "alice"}.Apply(courses))
	assert.Equal(t, []string{"c1"}, courseIDs(Filters{Skill: "guitar"}.Apply(courses)))
}

func TestFilters_OrderIndependent(t *testing.T) {
	courses := sampleCourses()

	// Порядок применения условий не влияет на результат: сужение
	// по категории, затем по навыку, эквивалентно совместному фильтру
	byCategory := Filters{Category: "music"}.Apply(courses)
	narrowed := Filters{Skill: "guitar"}.Apply(byCategory)
	combined := Filters{Category: "music", Skill: "guitar"}.Apply(courses)

	assert.Equal(t, combined, narrowed)
}

func TestFilters_ClearRestoresFullList(t *testing.T) {
	courses := sampleCourses()

	narrowed := Filters{Skill: "chess"}.Apply(courses)
	assert.Len(t, narrowed, 1)

	// Фильтр всегда применяется к полной выборке, поэтому
	// очистка возвращает все курсы
	restored := Filters{}.Apply(courses)
	assert.Equal(t, courses, restored)
}

func TestFilters_DoesNotMutateInput(t *testing.T) {
	courses := sampleCourses()
	Filters{Skill: "chess"}.Apply(courses)

	assert.Equal(t, sampleCourses(), courses)
}
