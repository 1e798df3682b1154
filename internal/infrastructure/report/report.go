// Package report отвечает за текстовое и JSON-представление результатов
// проверки. Ядро определяет только форму отчёта, кодирование живёт здесь.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	app "tile-analyzer/internal/application"
	"tile-analyzer/internal/domain/entity"
)

// ThresholdMeta — метаданные бинаризации в JSON-документе.
type ThresholdMeta struct {
	Value      float64 `json:"value"`
	LineColor  string  `json:"line_color"`
	WhiteRatio float64 `json:"white_ratio"`
}

// SegmentRecord — один сегмент в JSON-документе.
type SegmentRecord struct {
	Index        int      `json:"index"`
	StartPX      [2]int   `json:"start_px"`
	EndPX        [2]int   `json:"end_px"`
	LengthMM     float64  `json:"length_mm"`
	PixelsOnLine int      `json:"pixels_on_line"`
	Density      *float64 `json:"density"` // null для бесконечной плотности
}

// ReportRecord — отчёт по полилинии в JSON-документе.
type ReportRecord struct {
	Segments       []SegmentRecord `json:"segments"`
	AverageDensity float64         `json:"average_density"`
	Verdict        string          `json:"verdict"`
}

// Document — машинно-читаемый итог проверки целиком.
type Document struct {
	Threshold ThresholdMeta `json:"threshold"`
	Report    ReportRecord  `json:"report"`
	OriginPX  [2]int        `json:"origin_px"`
	PxPerMM   float64       `json:"px_per_mm"`
}

// NewDocument собирает JSON-документ из результата проверки.
func NewDocument(out *app.AnalysisOutput, originPX entity.PointPX) Document {
	segments := make([]SegmentRecord, 0, len(out.Report.Segments))
	for _, segment := range out.Report.Segments {
		record := SegmentRecord{
			Index:        segment.Index,
			StartPX:      [2]int{segment.StartPX.X, segment.StartPX.Y},
			EndPX:        [2]int{segment.EndPX.X, segment.EndPX.Y},
			LengthMM:     segment.LengthMM,
			PixelsOnLine: segment.PixelsOnLine,
		}
		if segment.FiniteDensity() {
			density := segment.Density
			record.Density = &density
		}
		segments = append(segments, record)
	}

	return Document{
		Threshold: ThresholdMeta{
			Value:      out.Threshold.ThresholdValue,
			LineColor:  string(out.Threshold.LineColor),
			WhiteRatio: out.Threshold.WhiteRatio,
		},
		Report: ReportRecord{
			Segments:       segments,
			AverageDensity: out.Report.AverageDensity,
			Verdict:        string(out.Report.Verdict),
		},
		OriginPX: [2]int{originPX.X, originPX.Y},
		PxPerMM:  out.PxPerMM,
	}
}

// WriteJSON сохраняет документ в файл с отступами.
func WriteJSON(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Render возвращает человеко-читаемый отчёт: строка порога, строки
// сегментов, средняя плотность и вердикт.
func Render(threshold entity.ThresholdResult, rep entity.PolylineReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Threshold=%.1f, line_color=%s, white_ratio=%.2f\n",
		threshold.ThresholdValue, threshold.LineColor, threshold.WhiteRatio)

	for _, segment := range rep.Segments {
		density := "inf"
		if segment.FiniteDensity() {
			density = fmt.Sprintf("%.2f", segment.Density)
		}
		fmt.Fprintf(&b, "Segment %d: density=%s px/mm, length=%.2f mm, pixels=%d\n",
			segment.Index, density, segment.LengthMM, segment.PixelsOnLine)
	}

	fmt.Fprintf(&b, "Average density: %.2f px/mm\n", rep.AverageDensity)
	fmt.Fprintf(&b, "Verdict: %s", rep.Verdict)
	return b.String()
}
