package port

import (
	"image"

	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/raster"
)

// Binarizer интерфейс выделения линии из кадра
type Binarizer interface {
	// BinarizeLine возвращает маску чернил того же размера, что и кадр,
	// и метаданные порога (значение, полярность, доля белого)
	BinarizeLine(frame image.Image) (*raster.Mask, entity.ThresholdResult, error)
}
