package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Разрешение сенсора IMX219 по умолчанию.
const (
	defaultCameraWidth  = 3280
	defaultCameraHeight = 2464
)

type Config struct {
	TelegramToken string // токен бота; нужен только в режиме --bot
	CameraIndex   int    // индекс устройства захвата
	CameraWidth   int    // ширина кадра в пикселях
	CameraHeight  int    // высота кадра в пикселях
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cameraIndex, err := intEnv("CAMERA_INDEX", 0)
	if err != nil {
		return nil, err
	}
	cameraWidth, err := intEnv("CAMERA_WIDTH", defaultCameraWidth)
	if err != nil {
		return nil, err
	}
	cameraHeight, err := intEnv("CAMERA_HEIGHT", defaultCameraHeight)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		CameraIndex:   cameraIndex,
		CameraWidth:   cameraWidth,
		CameraHeight:  cameraHeight,
	}

	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return value, nil
}
