package window

import (
	"go-ml.dev/pkg/seqwin/fu"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

/*
Sample is a window of lag observations with the target the window is paired with
*/
type Sample struct {
	Window *mat.Dense // Steps×Columns
	Target []float64  // TargetSteps×TargetColumns, row-major
}

/*
SampleSet is an ordered collection of samples sharing one shape
*/
type SampleSet struct {
	Framing                    Framing
	Steps, Columns             int
	TargetSteps, TargetColumns int
	Samples                    []Sample
}

// Len returns count of samples
func (ss *SampleSet) Len() int {
	return len(ss.Samples)
}

/*
Width is the length of a flattened window
*/
func (ss *SampleSet) Width() int {
	return ss.Steps * ss.Columns
}

/*
TargetWidth is the length of a target vector
*/
func (ss *SampleSet) TargetWidth() int {
	return ss.TargetSteps * ss.TargetColumns
}

/*
Windows returns windows of all samples in order
*/
func (ss *SampleSet) Windows() []*mat.Dense {
	r := make([]*mat.Dense, len(ss.Samples))
	for i, s := range ss.Samples {
		r[i] = s.Window
	}
	return r
}

/*
Flatten returns Len×(Steps*Columns) matrix, row i is the row-major flatten of window i.
It is the input feed-forward models expect.
*/
func (ss *SampleSet) Flatten() *mat.Dense {
	w := ss.Width()
	if ss.Len() == 0 || w == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 0, ss.Len()*w)
	for _, s := range ss.Samples {
		data = append(data, s.Window.RawMatrix().Data[:w]...)
	}
	return mat.NewDense(ss.Len(), w, data)
}

/*
Targets returns Len×(TargetSteps*TargetColumns) matrix of targets
*/
func (ss *SampleSet) Targets() *mat.Dense {
	w := ss.TargetWidth()
	if ss.Len() == 0 || w == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 0, ss.Len()*w)
	for _, s := range ss.Samples {
		data = append(data, s.Target...)
	}
	return mat.NewDense(ss.Len(), w, data)
}

/*
Tensor returns windows as [samples][steps][columns], the shape recurrent models consume
*/
func (ss *SampleSet) Tensor() [][][]float64 {
	r := make([][][]float64, len(ss.Samples))
	for i, s := range ss.Samples {
		rows := make([][]float64, ss.Steps)
		for k := range rows {
			rows[k] = mat.Row(nil, k, s.Window)
		}
		r[i] = rows
	}
	return r
}

/*
Heads splits windows by column, head j is a Len×Steps matrix of column j lags.
Each head feeds a separate input of a multi-headed model.
*/
func (ss *SampleSet) Heads() []*mat.Dense {
	if ss.Len() == 0 || ss.Steps <= 0 {
		return []*mat.Dense{}
	}
	r := make([]*mat.Dense, ss.Columns)
	for j := range r {
		h := mat.NewDense(ss.Len(), ss.Steps, nil)
		for i, s := range ss.Samples {
			h.SetRow(i, mat.Col(nil, j, s.Window))
		}
		r[j] = h
	}
	return r
}

/*
Flatten turns equally shaped windows into a matrix of row-major flat vectors, one row per window
*/
func Flatten(windows []*mat.Dense) (*mat.Dense, error) {
	if len(windows) == 0 {
		return &mat.Dense{}, nil
	}
	r, c := windows[0].Dims()
	flat := make([][]float64, len(windows))
	for i, w := range windows {
		if wr, wc := w.Dims(); wr != r || wc != c {
			return nil, xerrors.Errorf("window %d is %d×%d, expected %d×%d: %w", i, wr, wc, r, c, ErrMalformedShape)
		}
		rows := make([][]float64, r)
		for k := range rows {
			rows[k] = w.RawRowView(k)
		}
		flat[i] = fu.Flatnr(rows)
	}
	if r*c == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(len(windows), r*c, fu.Flatnr(flat)), nil
}

func newDense(r, c int, data []float64) *mat.Dense {
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(r, c, data)
}
