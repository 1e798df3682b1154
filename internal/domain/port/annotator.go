package port

import (
	"image"

	"tile-analyzer/internal/domain/entity"
)

// Annotator интерфейс отрисовки результата поверх кадра
type Annotator interface {
	// AnnotatePolyline рисует эталонную полилинию на кадре
	// (зелёным — сегменты с достаточной плотностью, красным — остальные)
	// и возвращает JPEG
	AnnotatePolyline(frame image.Image, report entity.PolylineReport, minDensity float64) ([]byte, error)
}
