package vision

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/domain/port"
	"tile-analyzer/internal/raster"
)

// MedianBinarizer отделяет нарисованную линию от фона порогом по медиане
// яркости: порог подстраивается под освещение без ручной настройки.
type MedianBinarizer struct{}

// NewMedianBinarizer создаёт бинаризатор с адаптивным порогом.
func NewMedianBinarizer() *MedianBinarizer {
	return &MedianBinarizer{}
}

// BinarizeLine возвращает маску, где линия — 255, фон — 0.
//
// Полярность определяется эвристикой: фон занимает большую часть кадра.
// Если белых пикселей не меньше половины, фон светлый, а линия тёмная —
// маска инвертируется. Эвристика ошибается на линиях толще полукадра
// и на почти равных долях; это известное ограничение, не дефект.
func (b *MedianBinarizer) BinarizeLine(frame image.Image) (*raster.Mask, entity.ThresholdResult, error) {
	if frame == nil {
		return nil, entity.ThresholdResult{}, fmt.Errorf("frame is nil: %w", entity.ErrInvalidInput)
	}

	gray := imaging.Grayscale(frame)
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()

	mask, err := raster.NewMask(width, height)
	if err != nil {
		return nil, entity.ThresholdResult{}, fmt.Errorf("frame %dx%d: %w", width, height, err)
	}

	median := medianIntensity(gray)

	// Строго выше медианы — передний план, как THRESH_BINARY.
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width*4]
		for x := 0; x < width; x++ {
			if float64(row[x*4]) > median {
				mask.Set(x, y)
			}
		}
	}

	whiteRatio := mask.ForegroundRatio()
	lineColor := entity.LineColorLight
	if whiteRatio >= 0.5 {
		// Белый класс оказался фоном: линия тёмная, маску переворачиваем.
		mask.Invert()
		lineColor = entity.LineColorDark
	}

	result := entity.ThresholdResult{
		ThresholdValue: median,
		LineColor:      lineColor,
		WhiteRatio:     whiteRatio,
	}
	return mask, result, nil
}

// medianIntensity считает медиану яркости по гистограмме.
// Для чётного числа пикселей берётся среднее двух центральных значений.
func medianIntensity(gray *image.NRGBA) float64 {
	var hist [256]int
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width*4]
		for x := 0; x < width; x++ {
			hist[row[x*4]]++
		}
	}

	total := width * height
	if total == 0 {
		return 0
	}

	lo := valueAtRank(hist[:], (total-1)/2)
	hi := valueAtRank(hist[:], total/2)
	return float64(lo+hi) / 2
}

// valueAtRank возвращает значение яркости на заданной позиции
// в отсортированном по возрастанию ряду пикселей.
func valueAtRank(hist []int, rank int) int {
	seen := 0
	for v, n := range hist {
		seen += n
		if seen > rank {
			return v
		}
	}
	return len(hist) - 1
}

// Проверка реализации интерфейса
var _ port.Binarizer = (*MedianBinarizer)(nil)
