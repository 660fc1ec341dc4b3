package course

import (
	"fmt"
	"net/url"

	"github.com/rajivgeraev/skillswap-client/internal/api"
	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/models"
)

// CourseService представляет сервис для работы с курсами
type CourseService struct {
	cfg *config.Config
	api *api.Client
}

// NewCourseService создает новый экземпляр CourseService
func NewCourseService(cfg *config.Config, apiClient *api.Client) *CourseService {
	return &CourseService{
		cfg: cfg,
		api: apiClient,
	}
}

// CreateCourseInput — поля нового курса. VideoURL заполняется
// после загрузки вводного видео в Cloudinary.
type CreateCourseInput struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Skills             string `json:"skills"`
	LookingFor         string `json:"lookingFor"`
	CategoryOffered    string `json:"categoryOffered"`
	CategoryLookingFor string `json:"categoryLookingFor"`
	VideoURL           string `json:"videoURL"`
}

// ListCourses возвращает полный список курсов каталога
func (s *CourseService) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.api.Get("/api/courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse создает новый курс
func (s *CourseService) CreateCourse(input CreateCourseInput) (*models.Course, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("название курса обязательно")
	}
	if input.VideoURL == "" {
		return nil, fmt.Errorf("вводное видео обязательно")
	}

	var created models.Course
	if err := s.api.Post("/api/courses/create-course", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteCourse удаляет курс по ID
func (s *CourseService) DeleteCourse(courseID string) error {
	if courseID == "" {
		return fmt.Errorf("ID курса не указан")
	}
	return s.api.Delete("/api/courses/" + url.PathEscape(courseID))
}

// Profile возвращает профиль текущего пользователя
func (s *CourseService) Profile() (*models.User, error) {
	var user models.User
	if err := s.api.Get("/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// MyCourses возвращает курсы текущего пользователя
func (s *CourseService) MyCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.api.Get("/profile/courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
