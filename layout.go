package mosaic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// defaultCols is the automatic layout's preferred row width.
const defaultCols = 3

// Layout selects how the grid is sized. The zero value is automatic.
type Layout struct {
	rows, cols int
	explicit   bool
}

// Auto returns a layout whose grid is derived from the image count alone.
func Auto() Layout {
	return Layout{}
}

// Explicit returns a layout with a fixed number of rows and columns.
// Both must be positive; PlanGrid rejects anything else.
func Explicit(rows, cols int) Layout {
	return Layout{rows: rows, cols: cols, explicit: true}
}

// IsAuto reports whether l is an automatic layout.
func (l Layout) IsAuto() bool {
	return !l.explicit
}

// Dims returns the explicit rows and columns, or zeros for Auto.
func (l Layout) Dims() (rows, cols int) {
	return l.rows, l.cols
}

// String returns "auto" or "ROWSxCOLS".
func (l Layout) String() string {
	if !l.explicit {
		return "auto"
	}
	return fmt.Sprintf("%dx%d", l.rows, l.cols)
}

// ParseLayout parses "auto" (or "") and "ROWSxCOLS", e.g. "2x3".
func ParseLayout(s string) (Layout, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return Auto(), nil
	}

	rs, cs, ok := strings.Cut(s, "x")
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q is not ROWSxCOLS", ErrInvalidLayout, s)
	}
	rows, err := strconv.Atoi(rs)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: rows %q: %v", ErrInvalidLayout, rs, err)
	}
	cols, err := strconv.Atoi(cs)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: cols %q: %v", ErrInvalidLayout, cs, err)
	}
	if rows <= 0 || cols <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d", ErrInvalidLayout, rows, cols)
	}
	return Explicit(rows, cols), nil
}

// Grid is a resolved layout for a specific image count.
type Grid struct {
	Rows  int // number of cell rows
	Cols  int // number of cell columns
	Count int // number of images placed

	// Explicit is true when the dimensions came from an explicit layout.
	Explicit bool
}

// Capacity returns the number of cells in the grid, saturating at
// math.MaxInt.
func (g Grid) Capacity() int {
	if g.Cols > 0 && g.Rows > math.MaxInt/g.Cols {
		return math.MaxInt
	}
	return g.Rows * g.Cols
}

// RowWidth returns how many images row r holds. Every row is full except,
// possibly, the last occupied one; rows past the images hold none.
func (g Grid) RowWidth(r int) int {
	if r < 0 || r >= g.Rows || g.Cols <= 0 {
		return 0
	}
	switch full := g.Count / g.Cols; {
	case r < full:
		return g.Cols
	case r == full:
		return g.Count % g.Cols
	default:
		return 0
	}
}

// Cell returns the row and column of the i-th image in row-major order.
func (g Grid) Cell(i int) (row, col int) {
	return i / g.Cols, i % g.Cols
}

// PlanGrid resolves layout for n images.
//
// An explicit layout is used verbatim; its capacity may exceed n and the
// trailing cells stay empty. The automatic layout starts with three columns
// and ceil(n/3) rows, narrows to n columns when n < 3, and switches to a
// square sqrt(n) x sqrt(n) grid when n is a perfect square greater than 1.
func PlanGrid(n int, layout Layout) (Grid, error) {
	if n < 1 {
		return Grid{}, fmt.Errorf("%w: need at least one image, got %d", ErrInvalidLayout, n)
	}

	if layout.explicit {
		if layout.rows <= 0 || layout.cols <= 0 {
			return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidLayout, layout.rows, layout.cols)
		}
		// rows*cols may overflow; compare rows against the rows n needs.
		if layout.rows < (n+layout.cols-1)/layout.cols {
			return Grid{}, fmt.Errorf("%w: %dx%d grid cannot hold %d images",
				ErrInvalidLayout, layout.rows, layout.cols, n)
		}
		return Grid{Rows: layout.rows, Cols: layout.cols, Count: n, Explicit: true}, nil
	}

	cols := defaultCols
	rows := (n + cols - 1) / cols
	if n < cols {
		cols = n
	}
	if root := isqrt(n); n > 1 && root*root == n {
		rows, cols = root, root
	}
	return Grid{Rows: rows, Cols: cols, Count: n}, nil
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
