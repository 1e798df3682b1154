package entity

// LineColor — полярность линии относительно фона.
type LineColor string

const (
	LineColorDark  LineColor = "dark"  // тёмная линия на светлом фоне
	LineColorLight LineColor = "light" // светлая линия на тёмном фоне
)

// ThresholdResult описывает, как изображение было разделено на линию и фон.
type ThresholdResult struct {
	ThresholdValue float64   // порог бинаризации (медиана яркости)
	LineColor      LineColor // определённая полярность линии
	WhiteRatio     float64   // доля белых пикселей после порога, [0, 1]
}
