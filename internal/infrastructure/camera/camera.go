//go:build gocv
// +build gocv

package camera

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"tile-analyzer/internal/domain/port"
)

// Camera управляет доступом к сенсору IMX219 через gocv.VideoCapture.
type Camera struct {
	index   int
	width   int
	height  int
	capture *gocv.VideoCapture
}

// New создаёт камеру с заданным индексом устройства и разрешением.
func New(index, width, height int) *Camera {
	return &Camera{
		index:  index,
		width:  width,
		height: height,
	}
}

// Open открывает устройство, если оно ещё не открыто, и выставляет разрешение.
func (c *Camera) Open() error {
	if c.capture != nil {
		return nil
	}

	capture, err := gocv.VideoCaptureDevice(c.index)
	if err != nil {
		return fmt.Errorf("open camera at index %d: %w", c.index, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return fmt.Errorf("camera at index %d is not opened", c.index)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(c.width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(c.height))

	c.capture = capture
	return nil
}

// CaptureFrame возвращает один кадр с камеры.
func (c *Camera) CaptureFrame(ctx context.Context) (image.Image, error) {
	_ = ctx
	if err := c.Open(); err != nil {
		return nil, err
	}

	mat := gocv.NewMat()
	defer mat.Close()

	if ok := c.capture.Read(&mat); !ok || mat.Empty() {
		return nil, errors.New("failed to read frame from camera")
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return img, nil
}

// Close освобождает устройство захвата.
func (c *Camera) Close() error {
	if c.capture == nil {
		return nil
	}
	err := c.capture.Close()
	c.capture = nil
	return err
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*Camera)(nil)
