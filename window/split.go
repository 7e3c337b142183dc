package window

import (
	"go-ml.dev/pkg/seqwin/series"
	"go-ml.dev/pkg/zorros/zorros"
)

/*
Split frames a series into a sample set.

Samples follow series order. The sample count is known from the series length
and the framing, so the set is allocated once and filled by index. Steps <= 0
or a series too short for a single sample gives an empty set, not an error.
*/
func Split(s *series.Series, f Framing) (*SampleSet, error) {
	l, err := f.resolve(s)
	if err != nil {
		return nil, err
	}
	ss := l.alloc()
	for i := range ss.Samples {
		ss.Samples[i] = l.sample(s, i)
	}
	return ss, nil
}

/*
LuckySplit splits a series and throws any occurred error as a panic
*/
func LuckySplit(s *series.Series, f Framing) *SampleSet {
	ss, err := Split(s, f)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return ss
}

/*
SplitSequence frames a univariate sequence, window i is values[i:i+steps]
and its target is values[i+steps]
*/
func SplitSequence(values []float64, steps int) *SampleSet {
	return LuckySplit(series.New(values), Univariate(steps))
}

/*
SplitMultiStep frames a univariate sequence predicting out values after each window of in values
*/
func SplitMultiStep(values []float64, in, out int) (*SampleSet, error) {
	return Split(series.New(values), MultiStep(in, out))
}
