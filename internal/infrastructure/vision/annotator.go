//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/domain/port"
)

// GoCVAnnotator рисует эталонную полилинию поверх кадра.
type GoCVAnnotator struct {
	Thickness int
}

// NewGoCVAnnotator создаёт аннотатор с толщиной линии по умолчанию.
func NewGoCVAnnotator() *GoCVAnnotator {
	return &GoCVAnnotator{Thickness: 2}
}

// AnnotatePolyline отрисовывает сегменты на кадре и возвращает JPEG.
// Сегменты с достаточной плотностью — зелёные, остальные — красные;
// сегменты нулевой длины в оценке не участвуют и рисуются зелёными.
func (a *GoCVAnnotator) AnnotatePolyline(frame image.Image, report entity.PolylineReport, minDensity float64) ([]byte, error) {
	if frame == nil {
		return nil, errors.New("empty image")
	}

	mat, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	defer mat.Close()

	green := color.RGBA{G: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	for _, segment := range report.Segments {
		col := green
		if segment.FiniteDensity() && segment.Density < minDensity {
			col = red
		}
		gocv.Line(&mat,
			image.Pt(segment.StartPX.X, segment.StartPX.Y),
			image.Pt(segment.EndPX.X, segment.EndPX.Y),
			col, a.Thickness)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Проверка реализации интерфейса
var _ port.Annotator = (*GoCVAnnotator)(nil)
