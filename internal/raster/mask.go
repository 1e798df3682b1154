// Package raster реализует бинарную маску с минимальным набором операций:
// рисование сегмента, пересечение и подсчёт переднего плана. Ядро анализа
// работает только с этим типом и не зависит от графической библиотеки.
package raster

import (
	"fmt"

	"tile-analyzer/internal/domain/entity"
)

// Foreground — значение пикселя переднего плана.
const Foreground uint8 = 255

// Mask — бинарный растр: 0 — фон, 255 — передний план.
type Mask struct {
	width  int
	height int
	pix    []uint8
}

// NewMask создаёт пустую маску заданного размера.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mask size must be positive, got %dx%d: %w", width, height, entity.ErrInvalidInput)
	}
	return &Mask{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}, nil
}

// Width возвращает ширину маски в пикселях.
func (m *Mask) Width() int { return m.width }

// Height возвращает высоту маски в пикселях.
func (m *Mask) Height() int { return m.height }

// At возвращает значение пикселя; вне границ — фон.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

// Set помечает пиксель как передний план; точки вне границ отбрасываются.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.pix[y*m.width+x] = Foreground
}

// DrawSegment рисует идеальную линию сегмента толщиной в один пиксель
// по алгоритму Брезенхэма. Части линии вне кадра отсекаются.
func (m *Mask) DrawSegment(start, end entity.PointPX) {
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		m.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Intersect возвращает побитовое пересечение двух масок одинакового размера.
func (m *Mask) Intersect(other *Mask) (*Mask, error) {
	if m.width != other.width || m.height != other.height {
		return nil, fmt.Errorf("mask size mismatch: %dx%d vs %dx%d: %w",
			m.width, m.height, other.width, other.height, entity.ErrInvalidInput)
	}

	out := &Mask{
		width:  m.width,
		height: m.height,
		pix:    make([]uint8, len(m.pix)),
	}
	for i := range m.pix {
		out.pix[i] = m.pix[i] & other.pix[i]
	}
	return out, nil
}

// Invert меняет местами передний план и фон.
func (m *Mask) Invert() {
	for i := range m.pix {
		m.pix[i] = ^m.pix[i]
	}
}

// CountForeground возвращает число пикселей переднего плана.
func (m *Mask) CountForeground() int {
	count := 0
	for _, v := range m.pix {
		if v != 0 {
			count++
		}
	}
	return count
}

// ForegroundRatio возвращает долю переднего плана в маске.
func (m *Mask) ForegroundRatio() float64 {
	total := len(m.pix)
	if total == 0 {
		return 0
	}
	return float64(m.CountForeground()) / float64(total)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
