package entity

import "math"

// Verdict — итог проверки покрытия полилинии.
type Verdict string

const (
	VerdictPass Verdict = "pass" // все сегменты покрыты достаточно плотно
	VerdictFail Verdict = "fail" // хотя бы один сегмент покрыт хуже порога
)

// SegmentReport хранит результат измерения одного сегмента полилинии.
// После создания не изменяется.
type SegmentReport struct {
	Index        int     // номер сегмента в полилинии, с нуля
	StartPX      PointPX // начало сегмента в пикселях
	EndPX        PointPX // конец сегмента в пикселях
	LengthMM     float64 // физическая длина сегмента в миллиметрах
	PixelsOnLine int     // пиксели чернил, попавшие на идеальную линию
	Density      float64 // плотность покрытия, px/mm; +Inf для нулевой длины
}

// FiniteDensity сообщает, участвует ли сегмент в оценке.
// Сегменты нулевой длины несут бесконечную плотность и исключаются
// из среднего и из вердикта.
func (r SegmentReport) FiniteDensity() bool {
	return !math.IsInf(r.Density, 0) && !math.IsNaN(r.Density)
}

// PolylineReport — итог анализа всей полилинии.
type PolylineReport struct {
	Segments       []SegmentReport // отчёты по сегментам в порядке полилинии
	AverageDensity float64         // средняя плотность, взвешенная по длине
	Verdict        Verdict         // итоговый вердикт
}
