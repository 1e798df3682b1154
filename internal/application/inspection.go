package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/domain/port"
	"tile-analyzer/internal/geometry"
)

// AnalysisParams описывает геометрию одной проверки: привязку плитки
// к кадру и эталонную полилинию в миллиметрах.
type AnalysisParams struct {
	OriginPX    entity.PointPX   // левый нижний угол плитки в пикселях кадра
	TileWidthMM float64          // измеренная ширина плитки в миллиметрах
	TileWidthPX float64          // ширина плитки в пикселях кадра
	PointsMM    []entity.PointMM // точки эталонной полилинии
	MinDensity  float64          // порог плотности для вердикта, px/mm
}

// AnalysisOutput содержит итог одной проверки.
type AnalysisOutput struct {
	Report    entity.PolylineReport  // отчёт по полилинии
	Threshold entity.ThresholdResult // метаданные бинаризации
	PointsPX  []entity.PointPX       // полилиния в пикселях кадра
	PxPerMM   float64                // использованный масштаб
	Annotated []byte                 // JPEG с отрисованной полилинией, если есть
}

// InspectionService прогоняет кадр через конвейер измерения:
// масштаб → привязка точек → бинаризация → анализ покрытия.
type InspectionService struct {
	binarizer port.Binarizer
	annotator port.Annotator
}

// NewInspectionService создаёт сервис, который управляет проверкой плитки.
func NewInspectionService(binarizer port.Binarizer, annotator port.Annotator) *InspectionService {
	return &InspectionService{
		binarizer: binarizer,
		annotator: annotator,
	}
}

// AnalyzeFrame выполняет полную проверку одного кадра.
func (s *InspectionService) AnalyzeFrame(ctx context.Context, frame image.Image, params AnalysisParams) (*AnalysisOutput, error) {
	_ = ctx
	if s.binarizer == nil {
		return nil, errors.New("binarizer is not configured")
	}

	pxPerMM, err := geometry.ComputePxPerMM(params.TileWidthPX, params.TileWidthMM)
	if err != nil {
		return nil, err
	}
	pointsPX := geometry.MMToPx(params.PointsMM, pxPerMM, params.OriginPX)

	inkMask, threshold, err := s.binarizer.BinarizeLine(frame)
	if err != nil {
		return nil, err
	}

	report, err := AnalyzePolyline(inkMask, params.PointsMM, pointsPX, params.MinDensity)
	if err != nil {
		return nil, err
	}

	var annotated []byte
	if s.annotator != nil {
		annotated, _ = s.annotator.AnnotatePolyline(frame, report, params.MinDensity)
	}

	return &AnalysisOutput{
		Report:    report,
		Threshold: threshold,
		PointsPX:  pointsPX,
		PxPerMM:   pxPerMM,
		Annotated: annotated,
	}, nil
}

// CaptureAndAnalyze получает один кадр из источника и проверяет его.
// Ошибка захвата прерывает проверку до запуска анализа.
func (s *InspectionService) CaptureAndAnalyze(ctx context.Context, source port.FrameSource, params AnalysisParams) (*AnalysisOutput, error) {
	frame, err := source.CaptureFrame(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire frame: %w", err)
	}
	return s.AnalyzeFrame(ctx, frame, params)
}
