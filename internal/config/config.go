package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config структура конфигурации клиента
type Config struct {
	APIBaseURL       string
	CloudinaryConfig CloudinaryConfig
	TokenPath        string // Путь к файлу с сохраненным токеном
	AppEnv           string
}

// CloudinaryConfig содержит конфигурацию для загрузки видео в Cloudinary
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// LoadConfig загружает переменные из .env
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	cloudinaryConfig := CloudinaryConfig{
		CloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:       getEnv("CLOUDINARY_API_KEY", ""),
		APISecret:    getEnv("CLOUDINARY_API_SECRET", ""),
		UploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", "skillswap_intro"),
	}

	cfg := &Config{
		APIBaseURL:       getEnv("SKILLSWAP_API_URL", ""),
		CloudinaryConfig: cloudinaryConfig,
		TokenPath:        getEnv("SKILLSWAP_TOKEN_PATH", defaultTokenPath()),
		AppEnv:           getEnv("APP_ENV", "production"), // По умолчанию production
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("❌ Ошибка: Не задан SKILLSWAP_API_URL")
	}

	return cfg
}

// defaultTokenPath возвращает путь к файлу токена в каталоге конфигурации пользователя
func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".skillswap_token")
	}
	return filepath.Join(dir, "skillswap", "token")
}

// getEnv получает переменную окружения или использует дефолтное значение
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
