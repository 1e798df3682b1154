//go:build !gocv
// +build !gocv

package camera

import (
	"context"
	"errors"
	"image"

	"tile-analyzer/internal/domain/port"
)

// Camera — заглушка камеры для сборки без OpenCV.
type Camera struct {
	index  int
	width  int
	height int
}

// New создаёт камеру-заглушку (без OpenCV).
func New(index, width, height int) *Camera {
	return &Camera{
		index:  index,
		width:  width,
		height: height,
	}
}

// Open возвращает ошибку, если сборка без тега gocv.
func (c *Camera) Open() error {
	return errors.New("gocv build tag is not enabled")
}

// CaptureFrame возвращает ошибку, если сборка без тега gocv.
func (c *Camera) CaptureFrame(ctx context.Context) (image.Image, error) {
	_ = ctx
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не освобождает в заглушке.
func (c *Camera) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*Camera)(nil)
