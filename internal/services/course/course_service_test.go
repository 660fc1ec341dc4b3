package course

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajivgeraev/skillswap-client/internal/api"
	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/models"
	"github.com/rajivgeraev/skillswap-client/internal/session"
)

func newTestService(t *testing.T, handler http.Handler) *CourseService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.New(session.NewTokenStore(filepath.Join(t.TempDir(), "token")))
	require.NoError(t, err)
	require.NoError(t, sess.Login("test-token", &models.User{ID: "u1"}))

	cfg := &config.Config{APIBaseURL: srv.URL}
	return NewCourseService(cfg, api.NewClient(cfg, sess))
}

func TestListCourses(t *testing.T) {
	var gotPath string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"_id":             "c1",
				"title":           "Guitar Basics",
				"skills":          "Guitar, Music Theory",
				"categoryOffered": "Music", // старый формат — строка
				"user":            map[string]string{"_id": "u2", "name": "Bob"},
			},
			{
				"_id":             "c2",
				"title":           "Chess Openings",
				"skills":          "Chess",
				"categoryOffered": []string{"Games", "Board Games"},
			},
		})
	}))

	courses, err := svc.ListCourses()
	require.NoError(t, err)
	assert.Equal(t, "GET /api/courses", gotPath)

	require.Len(t, courses, 2)
	assert.Equal(t, models.Categories{"Music"}, courses[0].CategoryOffered)
	assert.Equal(t, []string{"Guitar", "Music Theory"}, courses[0].SkillList())
	assert.Equal(t, "Bob", courses[0].User.Name)
	assert.Equal(t, models.Categories{"Games", "Board Games"}, courses[1].CategoryOffered)
	assert.Nil(t, courses[1].User)
}

func TestCreateCourse(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	var decodeErr error
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		decodeErr = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"_id": "c1", "title": "Guitar Basics"})
	}))

	created, err := svc.CreateCourse(CreateCourseInput{
		Title:           "Guitar Basics",
		Skills:          "Guitar",
		CategoryOffered: "Music",
		VideoURL:        "https://res.cloudinary.com/demo/video/upload/intro.mp4",
	})
	require.NoError(t, err)
	require.NoError(t, decodeErr)

	assert.Equal(t, "POST /api/courses/create-course", gotPath)
	assert.Equal(t, "Guitar Basics", gotBody["title"])
	assert.Equal(t, "https://res.cloudinary.com/demo/video/upload/intro.mp4", gotBody["videoURL"])
	assert.Equal(t, "c1", created.ID)
}

func TestCreateCourseRequiresVideo(t *testing.T) {
	var hits int
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	_, err := svc.CreateCourse(CreateCourseInput{Title: "No video"})
	require.Error(t, err)
	assert.Zero(t, hits)
}

func TestDeleteCourse(t *testing.T) {
	var gotPath string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, svc.DeleteCourse("c1"))
	assert.Equal(t, "DELETE /api/courses/c1", gotPath)
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Course not found"})
	}))

	err := svc.DeleteCourse("missing")

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Course not found", apiErr.Message)
}

func TestProfileAndMyCourses(t *testing.T) {
	var paths []string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/profile":
			json.NewEncoder(w).Encode(map[string]string{"_id": "u1", "name": "Alice", "email": "alice@example.com"})
		case "/profile/courses":
			json.NewEncoder(w).Encode([]map[string]string{{"_id": "c1", "title": "Guitar Basics"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	user, err := svc.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	courses, err := svc.MyCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c1", courses[0].ID)

	assert.Equal(t, []string{"GET /profile", "GET /profile/courses"}, paths)
}
