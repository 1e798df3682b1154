package port

import (
	"context"
	"image"
)

// FrameSource интерфейс источника кадров
type FrameSource interface {
	// CaptureFrame возвращает один кадр с поверхностью плитки.
	// Пустой кадр — ошибка источника, в ядро анализа он не попадает.
	CaptureFrame(ctx context.Context) (image.Image, error)

	// Close освобождает устройство захвата
	Close() error
}
