package model

import (
	"go-ml.dev/pkg/seqwin/fu"
	"go-ml.dev/pkg/seqwin/window"
	"gonum.org/v1/gonum/mat"
)

/*
Dataset is a source of supervised samples to feed hungry models.
Rows of Features and Labels follow the time order of the sample set.
*/
type Dataset struct {
	Features *mat.Dense // samples × flattened window
	Labels   *mat.Dense // samples × target width
	Steps    int        // window length
	Columns  int        // columns per window step

	// Autoregressive datasets have targets that are future rows of the windowed columns
	Autoregressive bool
}

/*
NewDataset flattens windows and targets of a sample set
*/
func NewDataset(ss *window.SampleSet) *Dataset {
	return &Dataset{
		Features: ss.Flatten(),
		Labels:   ss.Targets(),
		Steps:    ss.Steps,
		Columns:  ss.Columns,

		Autoregressive: ss.Framing.Autoregressive(),
	}
}

// Len returns count of samples
func (d *Dataset) Len() int {
	r, _ := d.Features.Dims()
	return r
}

/*
Split divides the dataset chronologically, the last testRatio share of samples goes to test.
Samples are never shuffled, test samples always follow train samples in time.
*/
func (d *Dataset) Split(testRatio float64) (train, test *Dataset) {
	n := d.Len()
	nTest := fu.Mini(n, fu.Maxi(0, int(float64(n)*testRatio)))
	return d.rows(0, n-nTest), d.rows(n-nTest, n)
}

func (d *Dataset) rows(from, to int) *Dataset {
	r := &Dataset{
		Steps:          d.Steps,
		Columns:        d.Columns,
		Autoregressive: d.Autoregressive,
		Features:       &mat.Dense{},
		Labels:         &mat.Dense{},
	}
	if from < to {
		_, fc := d.Features.Dims()
		_, lc := d.Labels.Dims()
		r.Features = mat.DenseCopyOf(d.Features.Slice(from, to, 0, fc))
		r.Labels = mat.DenseCopyOf(d.Labels.Slice(from, to, 0, lc))
	}
	return r
}

/*
Float32 returns features and labels as float32 rows, the element type most network backends consume
*/
func (d *Dataset) Float32() (x, y [][]float32) {
	return float32Rows(d.Features), float32Rows(d.Labels)
}

func float32Rows(m *mat.Dense) [][]float32 {
	r, _ := m.Dims()
	rows := make([][]float32, r)
	for i := range rows {
		rows[i] = fu.Float32(m.RawRowView(i))
	}
	return rows
}
