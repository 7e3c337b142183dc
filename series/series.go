package series

import (
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

/*
ErrMalformedShape is reported when input rows or columns do not form a rectangular table
*/
var ErrMalformedShape = xerrors.New("malformed input shape")

/*
Series is an ordered table of numeric observations indexed by contiguous time steps.
Univariate series have one column. Data is stored row-major.
*/
type Series struct {
	Rows, Cols int
	Data       []float64
	Names      []string // optional column names
}

/*
New creates a univariate series from values, the values are copied
*/
func New(values []float64) *Series {
	data := make([]float64, len(values))
	copy(data, values)
	return &Series{Rows: len(values), Cols: 1, Data: data}
}

/*
FromRows creates a multivariate series from rows of equal width
*/
func FromRows(rows [][]float64) (*Series, error) {
	if len(rows) == 0 {
		return &Series{}, nil
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, xerrors.Errorf("row 0 has no columns: %w", ErrMalformedShape)
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, xerrors.Errorf("row %d has %d columns, expected %d: %w", i, len(r), cols, ErrMalformedShape)
		}
		data = append(data, r...)
	}
	return &Series{Rows: len(rows), Cols: cols, Data: data}, nil
}

/*
Stack combines parallel sequences of equal length into a multivariate series,
each sequence becomes one column
*/
func Stack(columns ...[]float64) (*Series, error) {
	if len(columns) == 0 {
		return nil, xerrors.Errorf("nothing to stack: %w", ErrMalformedShape)
	}
	rows := len(columns[0])
	for j, c := range columns {
		if len(c) != rows {
			return nil, xerrors.Errorf("column %d has %d rows, expected %d: %w", j, len(c), rows, ErrMalformedShape)
		}
	}
	s := &Series{Rows: rows, Cols: len(columns), Data: make([]float64, rows*len(columns))}
	for j, c := range columns {
		for i, v := range c {
			s.Data[i*s.Cols+j] = v
		}
	}
	return s, nil
}

/*
FromMatrix copies a gonum matrix into a series
*/
func FromMatrix(m mat.Matrix) *Series {
	r, c := m.Dims()
	s := &Series{Rows: r, Cols: c, Data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s.Data[i*c+j] = m.At(i, j)
		}
	}
	return s
}

// Len returns the number of time steps
func (s *Series) Len() int {
	return s.Rows
}

// Width returns the number of columns
func (s *Series) Width() int {
	return s.Cols
}

// At returns value at time step i of column j
func (s *Series) At(i, j int) float64 {
	return s.Data[i*s.Cols+j]
}

// Row returns time step i, the slice shares memory with the series
func (s *Series) Row(i int) []float64 {
	return s.Data[i*s.Cols : (i+1)*s.Cols]
}

/*
Column returns a copy of column j
*/
func (s *Series) Column(j int) []float64 {
	r := make([]float64, s.Rows)
	for i := range r {
		r[i] = s.Data[i*s.Cols+j]
	}
	return r
}

/*
Matrix copies the series into a Rows×Cols dense matrix.
An empty series gives an empty (zero value) matrix.
*/
func (s *Series) Matrix() *mat.Dense {
	if s.Rows == 0 || s.Cols == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(s.Data))
	copy(data, s.Data)
	return mat.NewDense(s.Rows, s.Cols, data)
}

/*
Slice returns time steps from start to end (exclusive) as a new series
*/
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > s.Rows {
		end = s.Rows
	}
	if start >= end {
		return &Series{Cols: s.Cols, Names: s.Names}
	}
	data := make([]float64, (end-start)*s.Cols)
	copy(data, s.Data[start*s.Cols:end*s.Cols])
	return &Series{Rows: end - start, Cols: s.Cols, Data: data, Names: s.Names}
}

// Copy creates a deep copy of the series
func (s *Series) Copy() *Series {
	data := make([]float64, len(s.Data))
	copy(data, s.Data)
	var names []string
	if s.Names != nil {
		names = append(names, s.Names...)
	}
	return &Series{Rows: s.Rows, Cols: s.Cols, Data: data, Names: names}
}

/*
Validate checks that Data holds exactly Rows×Cols values
*/
func (s *Series) Validate() error {
	if s.Rows < 0 || s.Cols < 0 || len(s.Data) != s.Rows*s.Cols {
		return xerrors.Errorf("%d values for %d×%d series: %w", len(s.Data), s.Rows, s.Cols, ErrMalformedShape)
	}
	if s.Rows > 0 && s.Cols == 0 {
		return xerrors.Errorf("series has rows but no columns: %w", ErrMalformedShape)
	}
	if s.Names != nil && len(s.Names) != s.Cols {
		return xerrors.Errorf("%d names for %d columns: %w", len(s.Names), s.Cols, ErrMalformedShape)
	}
	return nil
}
