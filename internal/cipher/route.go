package cipher

import (
	"fmt"
)

// MaxCols caps the column count. A sanity bound, not a mathematical one.
const MaxCols = 100

// Route is a columnar route transposition: plaintext fills a rows×cols grid
// row-major, cipher text reads the columns back from the last column to the
// first, top to bottom. A single column makes it the identity transform.
type Route struct {
	cols int
}

// NewRoute builds a transposition cipher over cols columns,
// 1 <= cols <= MaxCols.
func NewRoute(cols int) (*Route, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w: column count must be positive, got %d", ErrInvalidKey, cols)
	}

	if cols > MaxCols {
		return nil, fmt.Errorf("%w: column count %d above limit %d", ErrInvalidKey, cols, MaxCols)
	}

	return &Route{cols: cols}, nil
}

// Encrypt normalizes text and reads the conceptual grid out column by
// column, last column first. Cells past the end of the text are empty and
// never emitted, so the output length equals the normalized input length.
func (t *Route) Encrypt(text string) (string, error) {
	idx, err := normalize(text)
	if err != nil {
		return "", err
	}

	n := len(idx)
	rows := (n + t.cols - 1) / t.cols

	// Row-major fill means cell (row, col) is idx[row*cols+col]; the grid
	// itself never needs to materialize for the forward direction.
	out := make([]int, 0, n)

	for col := t.cols - 1; col >= 0; col-- {
		for row := 0; row < rows; row++ {
			if i := row*t.cols + col; i < n {
				out = append(out, idx[i])
			}
		}
	}

	return lettersOf(out), nil
}

// Decrypt refills the grid in Encrypt's read-out order and reads it back
// row-major. The last row holds fullCols letters; every column at or past
// fullCols is one short, which is the explicit bookkeeping that keeps the
// inverse exact for ragged grids.
func (t *Route) Decrypt(text string) (string, error) {
	idx, err := parseCipherText(text)
	if err != nil {
		return "", err
	}

	n := len(idx)
	rows := (n + t.cols - 1) / t.cols

	fullCols := n % t.cols
	if fullCols == 0 {
		fullCols = t.cols
	}

	grid := make([]int, rows*t.cols)
	next := 0

	for col := t.cols - 1; col >= 0; col-- {
		rowsInCol := rows
		if col >= fullCols {
			rowsInCol = rows - 1
		}

		for row := 0; row < rowsInCol; row++ {
			grid[row*t.cols+col] = idx[next]
			next++
		}
	}

	out := make([]int, 0, n)

	for row := 0; row < rows; row++ {
		width := t.cols
		if row == rows-1 {
			width = fullCols
		}

		for col := 0; col < width; col++ {
			out = append(out, grid[row*t.cols+col])
		}
	}

	return lettersOf(out), nil
}
