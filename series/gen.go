package series

import (
	"golang.org/x/xerrors"
)

/*
Range generates from, from+step, ... while below to (or above to for a negative step)
*/
func Range(from, to, step float64) []float64 {
	if step == 0 || (step > 0 && from >= to) || (step < 0 && from <= to) {
		return []float64{}
	}
	n := int((to - from) / step)
	if from+float64(n)*step != to {
		n++
	}
	r := make([]float64, n)
	for i := range r {
		r[i] = from + float64(i)*step
	}
	return r
}

/*
Sum adds parallel sequences element-wise, it is used to derive an output sequence from input ones
*/
func Sum(columns ...[]float64) ([]float64, error) {
	if len(columns) == 0 {
		return []float64{}, nil
	}
	r := make([]float64, len(columns[0]))
	for j, c := range columns {
		if len(c) != len(r) {
			return nil, xerrors.Errorf("sequence %d has %d values, expected %d: %w", j, len(c), len(r), ErrMalformedShape)
		}
		for i, v := range c {
			r[i] += v
		}
	}
	return r, nil
}
