// Package geometry переводит координаты плитки из миллиметров в пиксели кадра.
package geometry

import (
	"fmt"
	"math"

	"tile-analyzer/internal/domain/entity"
)

// ComputePxPerMM возвращает масштаб px/mm, выведенный из ширины плитки.
func ComputePxPerMM(pxTileWidth, mmTileWidth float64) (float64, error) {
	if mmTileWidth <= 0 {
		return 0, fmt.Errorf("tile width in millimetres must be positive, got %g: %w", mmTileWidth, entity.ErrInvalidInput)
	}
	return pxTileWidth / mmTileWidth, nil
}

// MMToPx переводит точки из миллиметров в пиксели изображения.
//
// Начало координат — левый нижний угол плитки в пикселях кадра.
// Миллиметровая ось Y растёт вверх, пиксельная — вниз, поэтому
// вертикальное смещение вычитается. Координаты округляются до
// ближайшего целого пикселя.
func MMToPx(pointsMM []entity.PointMM, pxPerMM float64, originPX entity.PointPX) []entity.PointPX {
	result := make([]entity.PointPX, 0, len(pointsMM))
	for _, p := range pointsMM {
		result = append(result, entity.PointPX{
			X: int(math.Round(float64(originPX.X) + p.X*pxPerMM)),
			Y: int(math.Round(float64(originPX.Y) - p.Y*pxPerMM)),
		})
	}
	return result
}

// SegmentLengthsMM возвращает евклидову длину каждого сегмента полилинии.
// Для менее чем двух точек возвращает пустой срез: вырожденная полилиния —
// корректный результат, а не ошибка.
func SegmentLengthsMM(pointsMM []entity.PointMM) []float64 {
	if len(pointsMM) < 2 {
		return nil
	}

	lengths := make([]float64, 0, len(pointsMM)-1)
	for i := 1; i < len(pointsMM); i++ {
		dx := pointsMM[i].X - pointsMM[i-1].X
		dy := pointsMM[i].Y - pointsMM[i-1].Y
		lengths = append(lengths, math.Hypot(dx, dy))
	}
	return lengths
}
