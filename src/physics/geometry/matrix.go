package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a rectangular grid of float64 values. Every accessor returns a
// copy, so callers can never mutate the grid through a returned slice.
type Matrix struct {
	rows    int
	columns int
	data    [][]float64
}

// NewMatrix returns a zero-filled rows x columns matrix.
func NewMatrix(rows, columns int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if columns < 0 {
		columns = 0
	}
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, columns)
	}
	return &Matrix{rows: rows, columns: columns, data: data}
}

// MatrixFromString parses one row per line, values separated by whitespace.
// Blank lines are skipped.
func MatrixFromString(s string) (*Matrix, error) {
	var data [][]float64
	for n, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: token %q: %w", n+1, f, ErrParse)
			}
			row[i] = v
		}
		if len(data) > 0 && len(row) != len(data[0]) {
			return nil, fmt.Errorf("line %d: got %d values, want %d: %w",
				n+1, len(row), len(data[0]), ErrInconsistentRowLength)
		}
		data = append(data, row)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrParse)
	}
	return &Matrix{rows: len(data), columns: len(data[0]), data: data}, nil
}

// MatrixFromSlice copies rows into a new matrix. Every row must have the
// same length as the first.
func MatrixFromSlice(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrParse)
	}
	columns := len(rows[0])
	data := make([][]float64, len(rows))
	for i, r := range rows {
		if len(r) != columns {
			return nil, fmt.Errorf("row %d: got %d values, want %d: %w",
				i, len(r), columns, ErrInconsistentRowLength)
		}
		data[i] = append([]float64(nil), r...)
	}
	return &Matrix{rows: len(rows), columns: columns, data: data}, nil
}

func (m *Matrix) Clone() *Matrix {
	data := make([][]float64, m.rows)
	for i, r := range m.data {
		data[i] = append([]float64(nil), r...)
	}
	return &Matrix{rows: m.rows, columns: m.columns, data: data}
}

func (m *Matrix) Rows() int    { return m.rows }
func (m *Matrix) Columns() int { return m.columns }

func (m *Matrix) checkRow(row int) error {
	if row < 0 || row >= m.rows {
		return fmt.Errorf("row %d of %d: %w", row, m.rows, ErrIndexOutOfRange)
	}
	return nil
}

func (m *Matrix) checkColumn(column int) error {
	if column < 0 || column >= m.columns {
		return fmt.Errorf("column %d of %d: %w", column, m.columns, ErrIndexOutOfRange)
	}
	return nil
}

func (m *Matrix) Get(row, column int) (float64, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}
	if err := m.checkColumn(column); err != nil {
		return 0, err
	}
	return m.data[row][column], nil
}

func (m *Matrix) Set(row, column int, v float64) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	if err := m.checkColumn(column); err != nil {
		return err
	}
	m.data[row][column] = v
	return nil
}

func (m *Matrix) Row(row int) ([]float64, error) {
	if err := m.checkRow(row); err != nil {
		return nil, err
	}
	return append([]float64(nil), m.data[row]...), nil
}

func (m *Matrix) Column(column int) ([]float64, error) {
	if err := m.checkColumn(column); err != nil {
		return nil, err
	}
	c := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = m.data[i][column]
	}
	return c, nil
}

// Diagonal returns the leading diagonal, min(rows, columns) values long.
func (m *Matrix) Diagonal() []float64 {
	n := m.rows
	if m.columns < n {
		n = m.columns
	}
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i][i]
	}
	return d
}

func (m *Matrix) RowSlices() [][]float64 {
	return m.Clone().data
}

func (m *Matrix) ColumnSlices() [][]float64 {
	columns := make([][]float64, m.columns)
	for i := range columns {
		columns[i], _ = m.Column(i)
	}
	return columns
}

func (m *Matrix) Equals(b *Matrix) bool {
	if m.rows != b.rows || m.columns != b.columns {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.columns; j++ {
			if m.data[i][j] != b.data[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix in the form accepted by MatrixFromString.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i, r := range m.data {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range r {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return sb.String()
}
