package model

import (
	"go-ml.dev/pkg/seqwin/fu"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

/*
Naive is a baseline. Persisting naive repeats the last window row as every target step,
otherwise it predicts the mean of training labels.
*/
type Naive struct {
	Columns int  // columns per window step
	Persist bool // repeat the last window row

	width int
	mean  []float64
}

/*
NewNaive creates a baseline fitting the dataset framing
*/
func NewNaive(d *Dataset) *Naive {
	return &Naive{Columns: d.Columns, Persist: d.Autoregressive}
}

func (n *Naive) Fit(features, labels *mat.Dense) error {
	r, c := labels.Dims()
	if r == 0 {
		return ErrEmptyDataset
	}
	if n.Persist && (n.Columns <= 0 || c%n.Columns != 0) {
		return xerrors.Errorf("%d label columns do not repeat %d window columns: %w", c, n.Columns, ErrMalformedShape)
	}
	n.width = c
	n.mean = make([]float64, c)
	col := make([]float64, r)
	for j := range n.mean {
		n.mean[j] = fu.Mean(mat.Col(col, j, labels))
	}
	return nil
}

func (n *Naive) Predict(features *mat.Dense) (*mat.Dense, error) {
	if n.mean == nil {
		return nil, xerrors.New("naive model is not fitted")
	}
	r, c := features.Dims()
	if r == 0 {
		return &mat.Dense{}, nil
	}
	if n.Persist && c < n.Columns {
		return nil, xerrors.Errorf("%d features, window rows have %d: %w", c, n.Columns, ErrMalformedShape)
	}
	p := mat.NewDense(r, n.width, nil)
	for i := 0; i < r; i++ {
		row := p.RawRowView(i)
		if n.Persist {
			last := features.RawRowView(i)[c-n.Columns:]
			for k := 0; k < n.width; k += n.Columns {
				copy(row[k:k+n.Columns], last)
			}
		} else {
			copy(row, n.mean)
		}
	}
	return p, nil
}
