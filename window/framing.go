package window

import (
	"go-ml.dev/pkg/seqwin/fu"
	"go-ml.dev/pkg/seqwin/series"
	"golang.org/x/xerrors"
)

var (
	// ErrMalformedShape is shared with the series package
	ErrMalformedShape = series.ErrMalformedShape
	ErrInvalidFraming = xerrors.New("invalid framing")
	ErrRaggedChunk    = xerrors.New("ragged final chunk")
)

/*
Horizon is the offset of the first target row relative to the last window row
*/
type Horizon int

const (
	// SameStep targets start at the last row of the window
	SameStep Horizon = 0
	// NextStep targets start one row after the window
	NextStep Horizon = 1
)

/*
Columns selects which series columns feed windows or targets
*/
type Columns int

const (
	AllColumns Columns = iota
	// ExceptLast keeps every column but the last one, inputs only
	ExceptLast
	// LastColumn keeps only the last column, targets only
	LastColumn
)

/*
Framing configures the windowing primitive.

Sample i takes rows [i, i+Steps) of the Inputs columns as its window and rows
[i+Steps-1+Horizon, i+Steps-1+Horizon+Outputs) of the Targets columns as its target.
*/
type Framing struct {
	Steps   int     // window length
	Horizon Horizon // SameStep or NextStep
	Outputs int     // target rows, 1 if zero
	Inputs  Columns // AllColumns or ExceptLast
	Targets Columns // AllColumns or LastColumn
}

/*
Univariate predicts the next value of a single column series from Steps lag observations
*/
func Univariate(steps int) Framing {
	return Framing{Steps: steps, Horizon: NextStep, Inputs: AllColumns, Targets: AllColumns}
}

/*
MultiStep predicts the next out values of a single column series
*/
func MultiStep(in, out int) Framing {
	f := Univariate(in)
	f.Outputs = out
	return f
}

/*
Multivariate uses every column but the last as input features and predicts the last column
at the final row of the window
*/
func Multivariate(steps int) Framing {
	return Framing{Steps: steps, Horizon: SameStep, Inputs: ExceptLast, Targets: LastColumn}
}

/*
MultivariateMultiStep predicts out values of the last column starting at the final row of the window
*/
func MultivariateMultiStep(in, out int) Framing {
	f := Multivariate(in)
	f.Outputs = out
	return f
}

/*
Parallel predicts the next row of every column from windows over every column
*/
func Parallel(steps int) Framing {
	return Framing{Steps: steps, Horizon: NextStep, Inputs: AllColumns, Targets: AllColumns}
}

/*
ParallelMultiStep predicts the next out rows of every column
*/
func ParallelMultiStep(in, out int) Framing {
	f := Parallel(in)
	f.Outputs = out
	return f
}

/*
Autoregressive reports if targets are future steps of the windowed columns themselves
*/
func (f Framing) Autoregressive() bool {
	return f.Horizon == NextStep && f.Inputs == AllColumns && f.Targets == AllColumns
}

func (f Framing) outputs() int {
	return fu.Fnzi(f.Outputs, 1)
}

func (f Framing) validate() error {
	if f.Outputs < 0 {
		return xerrors.Errorf("outputs %d: %w", f.Outputs, ErrInvalidFraming)
	}
	if f.Horizon != SameStep && f.Horizon != NextStep {
		return xerrors.Errorf("horizon %d: %w", f.Horizon, ErrInvalidFraming)
	}
	if f.Inputs != AllColumns && f.Inputs != ExceptLast {
		return xerrors.Errorf("inputs selection %d: %w", f.Inputs, ErrInvalidFraming)
	}
	if f.Targets != AllColumns && f.Targets != LastColumn {
		return xerrors.Errorf("targets selection %d: %w", f.Targets, ErrInvalidFraming)
	}
	return nil
}

// layout is a framing resolved against a series shape
type layout struct {
	framing                Framing
	steps, offset, outputs int
	inCols                 int // inputs are columns [0, inCols)
	tgtFrom, tgtCols       int // targets are columns [tgtFrom, tgtFrom+tgtCols)
	count                  int
}

func (f Framing) resolve(s *series.Series) (l layout, err error) {
	if err = f.validate(); err != nil {
		return
	}
	if err = s.Validate(); err != nil {
		return
	}
	l.framing = f
	l.steps = f.Steps
	l.offset = int(f.Horizon)
	l.outputs = f.outputs()
	l.inCols = s.Cols
	l.tgtCols = s.Cols
	if f.Inputs == ExceptLast {
		l.inCols = fu.Maxi(0, s.Cols-1)
	}
	if f.Targets == LastColumn && s.Cols > 0 {
		l.tgtFrom = s.Cols - 1
		l.tgtCols = 1
	}
	if s.Rows == 0 {
		return
	}
	if f.Inputs == ExceptLast && s.Cols < 2 {
		err = xerrors.Errorf("%d columns, need a feature column and a target column: %w", s.Cols, ErrMalformedShape)
		return
	}
	if l.steps > 0 && l.steps <= s.Rows && l.outputs <= s.Rows {
		l.count = fu.Maxi(0, s.Rows-l.steps-l.offset-l.outputs+2)
	}
	return
}

func (l layout) sample(s *series.Series, i int) Sample {
	win := make([]float64, l.steps*l.inCols)
	for k := 0; k < l.steps; k++ {
		copy(win[k*l.inCols : (k+1)*l.inCols], s.Row(i + k)[:l.inCols])
	}
	tgt := make([]float64, l.outputs*l.tgtCols)
	first := i + l.steps - 1 + l.offset
	for k := 0; k < l.outputs; k++ {
		copy(tgt[k*l.tgtCols : (k+1)*l.tgtCols], s.Row(first + k)[l.tgtFrom : l.tgtFrom+l.tgtCols])
	}
	return Sample{Window: newDense(l.steps, l.inCols, win), Target: tgt}
}

func (l layout) alloc() *SampleSet {
	return &SampleSet{
		Framing:       l.framing,
		Steps:         l.steps,
		Columns:       l.inCols,
		TargetSteps:   l.outputs,
		TargetColumns: l.tgtCols,
		Samples:       make([]Sample, l.count),
	}
}
