package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajivgeraev/skillswap-client/internal/api"
	"github.com/rajivgeraev/skillswap-client/internal/config"
	"github.com/rajivgeraev/skillswap-client/internal/services/auth"
	"github.com/rajivgeraev/skillswap-client/internal/services/chat"
	"github.com/rajivgeraev/skillswap-client/internal/services/cloudinary"
	"github.com/rajivgeraev/skillswap-client/internal/services/course"
	"github.com/rajivgeraev/skillswap-client/internal/services/swap"
	"github.com/rajivgeraev/skillswap-client/internal/session"
	"github.com/rajivgeraev/skillswap-client/internal/ui"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	// Восстанавливаем сессию из хранилища токена
	sess, err := session.New(session.NewTokenStore(cfg.TokenPath))
	if err != nil {
		log.Fatalf("❌ Ошибка при восстановлении сессии: %v", err)
	}

	// Создаём HTTP-клиент и сервисы
	apiClient := api.NewClient(cfg, sess)
	authService := auth.NewAuthService(cfg, apiClient, sess)
	courseService := course.NewCourseService(cfg, apiClient)
	swapService := swap.NewSwapService(cfg, apiClient)
	chatService := chat.NewChatService(cfg, apiClient)
	cloudinaryService := cloudinary.NewCloudinaryService(cfg)

	app := ui.NewApp(cfg, sess, authService, courseService, swapService, chatService, cloudinaryService)

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("❌ Ошибка интерфейса: %v", err)
	}
}
