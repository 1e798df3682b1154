//go:build !gocv
// +build !gocv

package vision

import (
	"errors"
	"image"

	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/domain/port"
)

// GoCVAnnotator — заглушка аннотатора для сборки без OpenCV.
type GoCVAnnotator struct {
	Thickness int
}

// NewGoCVAnnotator создаёт аннотатор-заглушку (без OpenCV).
func NewGoCVAnnotator() *GoCVAnnotator {
	return &GoCVAnnotator{Thickness: 2}
}

// AnnotatePolyline возвращает ошибку, если сборка без тега gocv.
func (a *GoCVAnnotator) AnnotatePolyline(frame image.Image, report entity.PolylineReport, minDensity float64) ([]byte, error) {
	_ = frame
	_ = report
	_ = minDensity
	return nil, errors.New("gocv build tag is not enabled")
}

// Проверка реализации интерфейса
var _ port.Annotator = (*GoCVAnnotator)(nil)
