package camera

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"tile-analyzer/internal/domain/port"
)

// FileSource отдаёт сохранённый кадр из файла вместо камеры.
// Удобно для анализа заранее снятых изображений и для отладки без устройства.
type FileSource struct {
	path string
}

// NewFileSource создаёт источник кадров из файла.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// CaptureFrame загружает изображение из файла.
func (s *FileSource) CaptureFrame(ctx context.Context) (image.Image, error) {
	_ = ctx
	img, err := imaging.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", s.path, err)
	}
	return img, nil
}

// Close ничего не освобождает: файл читается целиком при захвате.
func (s *FileSource) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*FileSource)(nil)
