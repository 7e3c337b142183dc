package window

import (
	"go-ml.dev/pkg/seqwin/series"
	"go-ml.dev/pkg/zorros/zlog"
)

/*
Stream produces the same samples as Split one at a time.
It is not safe for concurrent use.
*/
type Stream struct {
	s   *series.Series
	l   layout
	i   int
	cur Sample
}

/*
NewStream creates a lazy sample stream over the series
*/
func NewStream(s *series.Series, f Framing) (*Stream, error) {
	l, err := f.resolve(s)
	if err != nil {
		return nil, err
	}
	return &Stream{s: s, l: l, i: -1}, nil
}

// Len returns the total count of samples the stream yields
func (st *Stream) Len() int {
	return st.l.count
}

// Index returns index of the current sample
func (st *Stream) Index() int {
	return st.i
}

/*
Next advances to the next sample and reports if there is one
*/
func (st *Stream) Next() bool {
	if st.i >= st.l.count {
		return false
	}
	st.i++
	if st.i >= st.l.count {
		st.cur = Sample{}
		return false
	}
	st.cur = st.l.sample(st.s, st.i)
	return true
}

/*
Sample returns the current sample
*/
func (st *Stream) Sample() Sample {
	if st.i < 0 || st.i >= st.l.count {
		zlog.Warning("window stream has no current sample")
		return Sample{}
	}
	return st.cur
}

// Reset rewinds the stream to its start
func (st *Stream) Reset() {
	st.i = -1
	st.cur = Sample{}
}

/*
Collect materializes remaining samples into a sample set
*/
func (st *Stream) Collect() *SampleSet {
	ss := st.l.alloc()
	ss.Samples = ss.Samples[:0]
	for st.Next() {
		ss.Samples = append(ss.Samples, st.cur)
	}
	return ss
}
