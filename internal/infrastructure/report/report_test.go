package report

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	app "tile-analyzer/internal/application"
	"tile-analyzer/internal/domain/entity"
)

func sampleOutput() *app.AnalysisOutput {
	return &app.AnalysisOutput{
		Report: entity.PolylineReport{
			Segments: []entity.SegmentReport{
				{
					Index:        0,
					StartPX:      entity.PointPX{X: 0, Y: 100},
					EndPX:        entity.PointPX{X: 100, Y: 100},
					LengthMM:     10,
					PixelsOnLine: 95,
					Density:      9.5,
				},
				{
					Index:    1,
					StartPX:  entity.PointPX{X: 100, Y: 100},
					EndPX:    entity.PointPX{X: 100, Y: 100},
					LengthMM: 0,
					Density:  math.Inf(1),
				},
			},
			AverageDensity: 9.5,
			Verdict:        entity.VerdictPass,
		},
		Threshold: entity.ThresholdResult{
			ThresholdValue: 131.5,
			LineColor:      entity.LineColorDark,
			WhiteRatio:     0.52,
		},
		PxPerMM: 10,
	}
}

func TestRender(t *testing.T) {
	got := Render(sampleOutput().Threshold, sampleOutput().Report)

	want := "Threshold=131.5, line_color=dark, white_ratio=0.52\n" +
		"Segment 0: density=9.50 px/mm, length=10.00 mm, pixels=95\n" +
		"Segment 1: density=inf px/mm, length=0.00 mm, pixels=0\n" +
		"Average density: 9.50 px/mm\n" +
		"Verdict: pass"
	require.Equal(t, want, got)
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(sampleOutput(), entity.PointPX{X: 120, Y: 2340})

	require.Equal(t, [2]int{120, 2340}, doc.OriginPX)
	require.InDelta(t, 10, doc.PxPerMM, 1e-9)
	require.Equal(t, "dark", doc.Threshold.LineColor)
	require.Len(t, doc.Report.Segments, 2)
	require.Equal(t, [2]int{0, 100}, doc.Report.Segments[0].StartPX)
	require.NotNil(t, doc.Report.Segments[0].Density)
	require.InDelta(t, 9.5, *doc.Report.Segments[0].Density, 1e-9)

	// Бесконечная плотность сериализуется как null.
	require.Nil(t, doc.Report.Segments[1].Density)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(data), `"density":null`)
	require.Contains(t, string(data), `"verdict":"pass"`)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	doc := NewDocument(sampleOutput(), entity.PointPX{X: 0, Y: 0})

	require.NoError(t, WriteJSON(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "pass", decoded.Report.Verdict)
	require.Len(t, decoded.Report.Segments, 2)
}
