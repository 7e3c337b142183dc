package model

import (
	"math"
	"testing"

	"go-ml.dev/pkg/seqwin/series"
	"go-ml.dev/pkg/seqwin/window"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"gotest.tools/assert"
)

func parallel(t *testing.T) *series.Series {
	in1 := series.Range(10, 100, 10)
	in2 := series.Range(15, 100, 10)
	out, err := series.Sum(in1, in2)
	assert.NilError(t, err)
	s, err := series.Stack(in1, in2, out)
	assert.NilError(t, err)
	return s
}

type recorder struct {
	x, y *mat.Dense
	err  error
}

func (r *recorder) Fit(x, y *mat.Dense) error {
	r.x, r.y = x, y
	return r.err
}

func Test_NewDataset(t *testing.T) {
	d := NewDataset(window.LuckySplit(parallel(t), window.Multivariate(3)))
	assert.Assert(t, d.Len() == 7)
	assert.Assert(t, d.Steps == 3 && d.Columns == 2)
	assert.Assert(t, !d.Autoregressive)
	_, c := d.Features.Dims()
	assert.Assert(t, c == 6)

	x, y := d.Float32()
	assert.Assert(t, len(x) == 7 && len(y) == 7)
	assert.DeepEqual(t, x[0], []float32{10, 15, 20, 25, 30, 35})
	assert.DeepEqual(t, y[0], []float32{65})

	u := NewDataset(window.SplitSequence(series.Range(10, 200, 10), 3))
	assert.Assert(t, u.Autoregressive)
}

func Test_Split(t *testing.T) {
	d := NewDataset(window.SplitSequence(series.Range(10, 200, 10), 3))
	train, test := d.Split(0.25)
	assert.Assert(t, train.Len() == 12 && test.Len() == 4)
	assert.Assert(t, test.Features.At(0, 0) == 130)
	assert.Assert(t, test.Labels.At(3, 0) == 190)
	assert.Assert(t, train.Labels.At(11, 0) == 150)

	all, none := d.Split(0)
	assert.Assert(t, all.Len() == 16 && none.Len() == 0)
	none, all = d.Split(2)
	assert.Assert(t, all.Len() == 16 && none.Len() == 0)
}

func Test_Feed(t *testing.T) {
	d := NewDataset(window.LuckySplit(parallel(t), window.Parallel(3)))
	r := &recorder{}
	assert.NilError(t, Feed(r, d))
	assert.Assert(t, mat.Equal(r.x, d.Features) && mat.Equal(r.y, d.Labels))

	r.err = xerrors.New("diverged")
	assert.Assert(t, Feed(r, d) != nil)

	empty := NewDataset(window.SplitSequence([]float64{1, 2}, 5))
	assert.Assert(t, xerrors.Is(Feed(&recorder{}, empty), ErrEmptyDataset))

	bad := &Dataset{Features: mat.NewDense(2, 2, nil), Labels: mat.NewDense(3, 1, nil)}
	assert.Assert(t, xerrors.Is(Feed(&recorder{}, bad), ErrMalformedShape))
	assert.Assert(t, xerrors.Is(Feed(&recorder{}, bad), window.ErrMalformedShape))
	assert.Assert(t, xerrors.Is(Feed(&recorder{}, bad), series.ErrMalformedShape))

	func() {
		defer func() { assert.Assert(t, recover() != nil) }()
		LuckyFeed(&recorder{}, empty)
	}()
}

func Test_NaivePersist(t *testing.T) {
	d := NewDataset(window.SplitSequence(series.Range(10, 200, 10), 3))
	m := NewNaive(d)
	assert.Assert(t, m.Persist && m.Columns == 1)
	LuckyFeed(m, d)
	p, err := m.Predict(d.Features)
	assert.NilError(t, err)
	assert.Assert(t, p.At(0, 0) == 30)
	mse, err := Evaluate(m, d)
	assert.NilError(t, err)
	assert.Assert(t, mse == 100)

	pd := NewDataset(window.LuckySplit(parallel(t), window.ParallelMultiStep(3, 2)))
	pm := NewNaive(pd)
	assert.NilError(t, Feed(pm, pd))
	p, err = pm.Predict(pd.Features)
	assert.NilError(t, err)
	assert.DeepEqual(t, mat.Row(nil, 0, p), []float64{30, 35, 65, 30, 35, 65})
}

func Test_NaiveMean(t *testing.T) {
	d := NewDataset(window.LuckySplit(parallel(t), window.Multivariate(3)))
	m := NewNaive(d)
	assert.Assert(t, !m.Persist)
	_, err := m.Predict(d.Features)
	assert.Assert(t, err != nil)
	assert.NilError(t, Feed(m, d))
	p, err := m.Predict(d.Features)
	assert.NilError(t, err)
	// labels are 65, 85, ..., 185
	assert.Assert(t, math.Abs(p.At(3, 0)-125) < 1e-9)

	bad := &Naive{Columns: 2, Persist: true}
	assert.Assert(t, xerrors.Is(bad.Fit(d.Features, mat.NewDense(7, 3, nil)), ErrMalformedShape))
}
