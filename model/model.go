package model

import (
	"go-ml.dev/pkg/seqwin/fu"
	"go-ml.dev/pkg/seqwin/series"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmptyDataset = xerrors.New("empty dataset")
	// ErrMalformedShape is shared with the series and window packages
	ErrMalformedShape = series.ErrMalformedShape
)

/*
Fitter is an ML algorithm grows from a data to predict something.
Features is samples × flattened window, labels is samples × target width.
*/
type Fitter interface {
	Fit(features, labels *mat.Dense) error
}

/*
Predictor maps features to predicted targets, one row per sample
*/
type Predictor interface {
	Predict(features *mat.Dense) (*mat.Dense, error)
}

/*
Model is a fittable predictor
*/
type Model interface {
	Fitter
	Predictor
}

/*
Feed fits the model with the dataset
*/
func Feed(m Fitter, d *Dataset) error {
	if err := check(d); err != nil {
		return err
	}
	if err := m.Fit(d.Features, d.Labels); err != nil {
		return zorros.Trace(err)
	}
	return nil
}

/*
LuckyFeed fits the model and trows any occurred errors as a panic
*/
func LuckyFeed(m Fitter, d *Dataset) {
	if err := Feed(m, d); err != nil {
		panic(zorros.Panic(err))
	}
}

/*
Evaluate predicts dataset features and returns mean squared error against labels
*/
func Evaluate(m Predictor, d *Dataset) (float64, error) {
	if err := check(d); err != nil {
		return 0, err
	}
	p, err := m.Predict(d.Features)
	if err != nil {
		return 0, zorros.Trace(err)
	}
	pr, pc := p.Dims()
	lr, lc := d.Labels.Dims()
	if pr != lr || pc != lc {
		return 0, xerrors.Errorf("prediction is %d×%d, labels are %d×%d: %w", pr, pc, lr, lc, ErrMalformedShape)
	}
	return fu.Mse(mat.DenseCopyOf(p).RawMatrix().Data, mat.DenseCopyOf(d.Labels).RawMatrix().Data), nil
}

func check(d *Dataset) error {
	if d.Len() == 0 {
		return ErrEmptyDataset
	}
	fr, _ := d.Features.Dims()
	lr, _ := d.Labels.Dims()
	if fr != lr {
		return xerrors.Errorf("%d feature rows, %d label rows: %w", fr, lr, ErrMalformedShape)
	}
	return nil
}
