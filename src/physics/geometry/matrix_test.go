package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(4, 3)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 3, m.Columns())
	for r := 0; r < 4; r++ {
		for c := 0; c < 3; c++ {
			v, err := m.Get(r, c)
			require.NoError(t, err)
			require.Equal(t, 0.0, v)
		}
	}
}

func TestMatrixFromString(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		rows [][]float64
	}{
		{"1 2\n3 4", [][]float64{{1, 2}, {3, 4}}},
		{"1 2 3\n4 5 6\n7 8 9", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{"-3 5 0\n1 -2 -7\n", [][]float64{{-3, 5, 0}, {1, -2, -7}}},
		{"\n  1.5\t-2.25  \n\n3e2 0.125\r\n", [][]float64{{1.5, -2.25}, {300, 0.125}}},
		{"42", [][]float64{{42}}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			m, err := MatrixFromString(tc.in)
			require.NoError(t, err)
			require.Equal(t, len(tc.rows), m.Rows())
			require.Equal(t, len(tc.rows[0]), m.Columns())
			for r, row := range tc.rows {
				got, err := m.Row(r)
				require.NoError(t, err)
				require.Equal(t, row, got)
				for c, want := range row {
					v, err := m.Get(r, c)
					require.NoError(t, err)
					require.Equal(t, want, v)

					col, err := m.Column(c)
					require.NoError(t, err)
					require.Equal(t, want, col[r])
				}
			}
		})
	}
}

func TestMatrixFromStringErrors(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		err error
	}{
		{"", ErrParse},
		{"  \n\n ", ErrParse},
		{"1 2\n3 x", ErrParse},
		{"1,2\n3,4", ErrParse},
		{"1 2\n3", ErrInconsistentRowLength},
		{"1 2\n3 4 5", ErrInconsistentRowLength},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			m, err := MatrixFromString(tc.in)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, m)
		})
	}
}

func TestMatrixFromSlice(t *testing.T) {
	in := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := MatrixFromSlice(in)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Columns())

	in[0][0] = 100
	v, err := m.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = MatrixFromSlice([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrInconsistentRowLength)
	_, err = MatrixFromSlice([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, ErrInconsistentRowLength)
	_, err = MatrixFromSlice(nil)
	require.ErrorIs(t, err, ErrParse)
}

func TestMatrixOutOfRange(t *testing.T) {
	m := NewMatrix(2, 3)
	for idx, tc := range []struct {
		r, c int
	}{
		{2, 0}, {0, 3}, {5, 5}, {-1, 0}, {0, -1},
	} {
		t.Run(fmt.Sprintf("%d/(%d,%d)", idx, tc.r, tc.c), func(t *testing.T) {
			_, err := m.Get(tc.r, tc.c)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
			require.ErrorIs(t, m.Set(tc.r, tc.c, 1), ErrIndexOutOfRange)
		})
	}
	_, err := m.Row(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.Column(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMatrixDefensiveCopies(t *testing.T) {
	m, err := MatrixFromString("1 2\n3 4")
	require.NoError(t, err)

	row, _ := m.Row(0)
	row[0] = 99
	col, _ := m.Column(1)
	col[0] = 99
	d := m.Diagonal()
	d[1] = 99
	rows := m.RowSlices()
	rows[1][0] = 99
	cols := m.ColumnSlices()
	cols[0][0] = 99

	want, _ := MatrixFromString("1 2\n3 4")
	require.True(t, want.Equals(m))
}

func TestMatrixDiagonal(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		diag []float64
	}{
		{"1 2\n3 4", []float64{1, 4}},
		{"1 2 3\n4 5 6\n7 8 9", []float64{1, 5, 9}},
		{"1 2 3\n4 5 6", []float64{1, 5}},
		{"1\n2\n3", []float64{1}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			m, err := MatrixFromString(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.diag, m.Diagonal())
		})
	}
}

func TestMatrixSlices(t *testing.T) {
	m, err := MatrixFromString("1 2 3\n4 5 6")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.RowSlices())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m.ColumnSlices())
}

func TestMatrixEquals(t *testing.T) {
	a, _ := MatrixFromString("1 2\n3 4")
	b, _ := MatrixFromSlice([][]float64{{1, 2}, {3, 4}})
	c, _ := MatrixFromString("1 2\n3 4.0001")
	d, _ := MatrixFromString("1 2 0\n3 4 0")

	require.True(t, a.Equals(b))
	require.True(t, b.Equals(a))
	require.False(t, a.Equals(c))
	require.False(t, a.Equals(d))
	require.True(t, NewMatrix(2, 2).Equals(NewMatrix(2, 2)))
	require.False(t, NewMatrix(2, 3).Equals(NewMatrix(3, 2)))
}

func TestMatrixSetAndClone(t *testing.T) {
	m := NewMatrix(2, 2)
	require.NoError(t, m.Set(1, 0, 7.5))
	c := m.Clone()
	require.NoError(t, m.Set(1, 0, 1))

	v, err := c.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
}

func TestMatrixStringRoundTrip(t *testing.T) {
	in := "1 -2.5 3\n0.125 5 600000"
	m, err := MatrixFromString(in)
	require.NoError(t, err)
	require.Equal(t, in, m.String())

	back, err := MatrixFromString(m.String())
	require.NoError(t, err)
	require.True(t, m.Equals(back))
}
