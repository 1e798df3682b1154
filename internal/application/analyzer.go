package app

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/geometry"
	"tile-analyzer/internal/raster"
)

// DefaultMinDensity — минимально допустимая плотность покрытия, px/mm.
const DefaultMinDensity = 0.5

// AnalyzePolyline измеряет плотность покрытия каждого сегмента эталонной
// полилинии: сколько пикселей чернил легло на идеальную линию сегмента
// на миллиметр его физической длины.
//
// Сегменты нулевой длины не измеряются: их плотность — +Inf, они не
// участвуют ни в среднем, ни в вердикте. Любая ошибка валидации
// прерывает анализ целиком, частичный отчёт не возвращается.
func AnalyzePolyline(inkMask *raster.Mask, pointsMM []entity.PointMM, pointsPX []entity.PointPX, minDensity float64) (entity.PolylineReport, error) {
	if inkMask == nil {
		return entity.PolylineReport{}, fmt.Errorf("ink mask is nil: %w", entity.ErrInvalidInput)
	}
	if len(pointsMM) != len(pointsPX) {
		return entity.PolylineReport{}, fmt.Errorf(
			"points_mm and points_px must contain the same number of points, got %d and %d: %w",
			len(pointsMM), len(pointsPX), entity.ErrInvalidInput)
	}
	if len(pointsPX) < 2 {
		return entity.PolylineReport{}, fmt.Errorf(
			"at least two points are required to describe a polyline, got %d: %w",
			len(pointsPX), entity.ErrInvalidInput)
	}

	lengthsMM := geometry.SegmentLengthsMM(pointsMM)
	if len(lengthsMM) != len(pointsPX)-1 {
		return entity.PolylineReport{}, fmt.Errorf(
			"mismatch between number of segments and computed lengths: %d vs %d: %w",
			len(pointsPX)-1, len(lengthsMM), entity.ErrInvalidInput)
	}

	// Сегменты не зависят друг от друга и читают только общие
	// неизменяемые данные: меряем их параллельно, собираем по индексам.
	segments := make([]entity.SegmentReport, len(lengthsMM))
	errs := make([]error, len(lengthsMM))

	var wg sync.WaitGroup
	for i := range lengthsMM {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			segments[idx], errs[idx] = measureSegment(inkMask, idx, pointsPX[idx], pointsPX[idx+1], lengthsMM[idx])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return entity.PolylineReport{}, err
		}
	}

	// Свёртка: средняя плотность взвешивается длиной сегмента,
	// вердикт проверяет каждый сегмент с конечной плотностью.
	var densities, weights []float64
	verdict := entity.VerdictPass
	for _, segment := range segments {
		if !segment.FiniteDensity() {
			continue
		}
		densities = append(densities, segment.Density)
		weights = append(weights, segment.LengthMM)
		if segment.Density < minDensity {
			verdict = entity.VerdictFail
		}
	}

	average := 0.0
	if len(densities) > 0 {
		average = stat.Mean(densities, weights)
	}

	return entity.PolylineReport{
		Segments:       segments,
		AverageDensity: average,
		Verdict:        verdict,
	}, nil
}

// measureSegment считает плотность покрытия одного сегмента.
func measureSegment(inkMask *raster.Mask, idx int, start, end entity.PointPX, lengthMM float64) (entity.SegmentReport, error) {
	report := entity.SegmentReport{
		Index:    idx,
		StartPX:  start,
		EndPX:    end,
		LengthMM: lengthMM,
	}

	if lengthMM <= 0 {
		report.Density = math.Inf(1)
		return report, nil
	}

	ideal, err := raster.NewMask(inkMask.Width(), inkMask.Height())
	if err != nil {
		return report, err
	}
	ideal.DrawSegment(start, end)

	painted, err := inkMask.Intersect(ideal)
	if err != nil {
		return report, err
	}

	report.PixelsOnLine = painted.CountForeground()
	report.Density = float64(report.PixelsOnLine) / lengthMM
	return report, nil
}
