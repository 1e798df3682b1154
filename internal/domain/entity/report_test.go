package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentReport_FiniteDensity(t *testing.T) {
	finite := SegmentReport{LengthMM: 10, PixelsOnLine: 95, Density: 9.5}
	require.True(t, finite.FiniteDensity())

	degenerate := SegmentReport{LengthMM: 0, Density: math.Inf(1)}
	require.False(t, degenerate.FiniteDensity())
}
