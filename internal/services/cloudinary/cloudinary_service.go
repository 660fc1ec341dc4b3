package cloudinary

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/rajivgeraev/skillswap-client/internal/config"
)

// CloudinaryService предоставляет методы для загрузки вводных видео
type CloudinaryService struct {
	cfg          *config.Config
	uploadPreset string
}

// NewCloudinaryService создает новый экземпляр CloudinaryService
func NewCloudinaryService(cfg *config.Config) *CloudinaryService {
	return &CloudinaryService{
		cfg:          cfg,
		uploadPreset: cfg.CloudinaryConfig.UploadPreset,
	}
}

// UploadVideo загружает видеофайл в Cloudinary с пресетом загрузки
// и возвращает secure_url для сохранения в курсе
func (s *CloudinaryService) UploadVideo(ctx context.Context, filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("файл видео не выбран")
	}
	if s.cfg.CloudinaryConfig.CloudName == "" {
		return "", fmt.Errorf("Cloudinary не настроен: не задан CLOUDINARY_CLOUD_NAME")
	}

	cld, err := cloudinary.NewFromParams(
		s.cfg.CloudinaryConfig.CloudName,
		s.cfg.CloudinaryConfig.APIKey,
		s.cfg.CloudinaryConfig.APISecret,
	)
	if err != nil {
		return "", fmt.Errorf("ошибка инициализации Cloudinary: %w", err)
	}

	resp, err := cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
		UploadPreset: s.uploadPreset,
		ResourceType: "video",
	})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки видео: %w", err)
	}

	if resp.SecureURL == "" {
		return "", fmt.Errorf("Cloudinary не вернул secure_url")
	}
	return resp.SecureURL, nil
}
