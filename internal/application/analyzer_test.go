package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/geometry"
	"tile-analyzer/internal/raster"
)

func newMask(t *testing.T, width, height int) *raster.Mask {
	t.Helper()
	m, err := raster.NewMask(width, height)
	require.NoError(t, err)
	return m
}

func TestAnalyzePolyline_RoundTrip(t *testing.T) {
	pointsMM := []entity.PointMM{{X: 0, Y: 0}, {X: 10, Y: 0}}
	origin := entity.PointPX{X: 0, Y: 100}
	pointsPX := geometry.MMToPx(pointsMM, 10, origin)
	require.Equal(t, []entity.PointPX{{X: 0, Y: 100}, {X: 100, Y: 100}}, pointsPX)

	// Чернила лежат на 95 пикселях вдоль сегмента.
	ink := newMask(t, 120, 120)
	for x := 0; x < 95; x++ {
		ink.Set(x, 100)
	}

	report, err := AnalyzePolyline(ink, pointsMM, pointsPX, 0.5)
	require.NoError(t, err)

	require.Len(t, report.Segments, 1)
	require.Equal(t, 95, report.Segments[0].PixelsOnLine)
	require.InDelta(t, 9.5, report.Segments[0].Density, 1e-9)
	require.InDelta(t, 9.5, report.AverageDensity, 1e-9)
	require.Equal(t, entity.VerdictPass, report.Verdict)
}

func TestAnalyzePolyline_EmptyMiddleSegmentFails(t *testing.T) {
	pointsMM := []entity.PointMM{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}}
	origin := entity.PointPX{X: 0, Y: 50}
	pointsPX := geometry.MMToPx(pointsMM, 10, origin)

	// Чернила есть на первом и последнем сегментах, средний пуст.
	ink := newMask(t, 350, 100)
	for x := 0; x < 100; x++ {
		ink.Set(x, 50)
	}
	for x := 201; x <= 300; x++ {
		ink.Set(x, 50)
	}

	report, err := AnalyzePolyline(ink, pointsMM, pointsPX, 0.5)
	require.NoError(t, err)

	require.Len(t, report.Segments, 3)
	require.Equal(t, 0, report.Segments[1].PixelsOnLine)
	require.InDelta(t, 0, report.Segments[1].Density, 1e-9)
	// Плотность ниже порога на одном сегменте проваливает всю проверку.
	require.Equal(t, entity.VerdictFail, report.Verdict)
}

func TestAnalyzePolyline_ZeroLengthSegment(t *testing.T) {
	pointsMM := []entity.PointMM{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}}
	origin := entity.PointPX{X: 0, Y: 50}
	pointsPX := geometry.MMToPx(pointsMM, 10, origin)

	ink := newMask(t, 150, 100)
	ink.Invert() // чернила везде

	report, err := AnalyzePolyline(ink, pointsMM, pointsPX, 0.5)
	require.NoError(t, err)

	require.Len(t, report.Segments, 2)
	require.True(t, math.IsInf(report.Segments[0].Density, 1))
	require.Equal(t, 0, report.Segments[0].PixelsOnLine)
	require.False(t, report.Segments[0].FiniteDensity())

	// Среднее взвешивается только по конечным сегментам.
	require.InDelta(t, report.Segments[1].Density, report.AverageDensity, 1e-9)
	require.Equal(t, entity.VerdictPass, report.Verdict)
}

func TestAnalyzePolyline_AllSegmentsZeroLength(t *testing.T) {
	pointsMM := []entity.PointMM{{X: 5, Y: 5}, {X: 5, Y: 5}}
	origin := entity.PointPX{X: 0, Y: 100}
	pointsPX := geometry.MMToPx(pointsMM, 10, origin)

	ink := newMask(t, 100, 120)
	ink.Invert()

	report, err := AnalyzePolyline(ink, pointsMM, pointsPX, 0.5)
	require.NoError(t, err)

	require.InDelta(t, 0, report.AverageDensity, 1e-9)
	require.Equal(t, entity.VerdictPass, report.Verdict)
}

func TestAnalyzePolyline_WeightedAverage(t *testing.T) {
	pointsMM := []entity.PointMM{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}}
	origin := entity.PointPX{X: 0, Y: 100}
	pointsPX := geometry.MMToPx(pointsMM, 10, origin)

	ink := newMask(t, 150, 150)
	ink.Invert()

	report, err := AnalyzePolyline(ink, pointsMM, pointsPX, 0.5)
	require.NoError(t, err)
	require.Len(t, report.Segments, 2)

	d0 := report.Segments[0].Density
	d1 := report.Segments[1].Density
	want := (d0*10 + d1*5) / 15
	require.InDelta(t, want, report.AverageDensity, 1e-9)
}

func TestAnalyzePolyline_VerdictThreshold(t *testing.T) {
	pointsMM := []entity.PointMM{{X: 0, Y: 0}, {X: 10, Y: 0}}
	origin := entity.PointPX{X: 0, Y: 10}
	pointsPX := geometry.MMToPx(pointsMM, 10, origin)

	ink := newMask(t, 120, 20)
	for x := 0; x < 40; x++ {
		ink.Set(x, 10)
	}

	// density = 40 / 10 mm = 4 px/mm
	report, err := AnalyzePolyline(ink, pointsMM, pointsPX, 4.0)
	require.NoError(t, err)
	require.Equal(t, entity.VerdictPass, report.Verdict)

	report, err = AnalyzePolyline(ink, pointsMM, pointsPX, 4.1)
	require.NoError(t, err)
	require.Equal(t, entity.VerdictFail, report.Verdict)
}

func TestAnalyzePolyline_InvalidInput(t *testing.T) {
	ink := newMask(t, 10, 10)

	// Разное число точек в двух системах координат.
	_, err := AnalyzePolyline(ink,
		[]entity.PointMM{{}, {X: 1}, {X: 2}},
		[]entity.PointPX{{}, {X: 1}},
		0.5)
	require.ErrorIs(t, err, entity.ErrInvalidInput)

	// Меньше двух точек.
	_, err = AnalyzePolyline(ink,
		[]entity.PointMM{{}},
		[]entity.PointPX{{}},
		0.5)
	require.ErrorIs(t, err, entity.ErrInvalidInput)

	// Пустая маска.
	_, err = AnalyzePolyline(nil,
		[]entity.PointMM{{}, {X: 1}},
		[]entity.PointPX{{}, {X: 1}},
		0.5)
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}
