package tensor

import (
	"io"
	"strconv"
	"strings"
)

// String renders the elements space-separated on one newline-terminated line.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	writeRow(&sb, v.data, v.DType().bitSize())
	return sb.String()
}

// String renders one newline-terminated line per row, elements space-separated.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	bits := m.DType().bitSize()
	for r := 0; r < m.rows; r++ {
		writeRow(&sb, m.data[r*m.cols:(r+1)*m.cols], bits)
	}
	return sb.String()
}

// WriteTo writes String() to w.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}

// WriteTo writes String() to w.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}

func writeRow[T DType](sb *strings.Builder, row []T, bits int) {
	for i, x := range row {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, bits))
	}
	sb.WriteByte('\n')
}
