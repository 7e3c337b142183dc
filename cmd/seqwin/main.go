// Command seqwin frames a time series into supervised learning samples and prints them.
//
// Without -csv it uses the demo sequences 10, 20, ... 190 (univariate) or
// two parallel inputs and their sum (multivariate framings).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go-ml.dev/pkg/seqwin/fu"
	"go-ml.dev/pkg/seqwin/model"
	"go-ml.dev/pkg/seqwin/series"
	"go-ml.dev/pkg/seqwin/window"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

type options struct {
	csv     string
	columns string
	skip    string
	framing string
	steps   int
	out     int
	chunk   int
	policy  string
	show    int
	test    float64
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "seqwin:", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	var o options
	fs := flag.NewFlagSet("seqwin", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&o.csv, "csv", "", "CSV file with the series, .xz compressed files are accepted")
	fs.StringVar(&o.columns, "columns", "", "comma separated columns to load, the last one is the target")
	fs.StringVar(&o.skip, "skip", "", "comma separated columns to ignore")
	fs.StringVar(&o.framing, "framing", "univariate", "univariate, multivariate or parallel")
	fs.IntVar(&o.steps, "steps", 3, "window length")
	fs.IntVar(&o.out, "out", 1, "target steps")
	fs.IntVar(&o.chunk, "chunk", 0, "split the first column into chunks of this length instead of windows")
	fs.StringVar(&o.policy, "policy", "truncate", "ragged chunk policy: truncate, pad or reject")
	fs.IntVar(&o.show, "show", 5, "samples to print")
	fs.Float64Var(&o.test, "test", 0.25, "share of trailing samples used to evaluate the naive baseline")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := load(&o)
	if err != nil {
		return err
	}
	if o.chunk != 0 {
		return chunk(&o, s, w)
	}

	f, err := framing(&o)
	if err != nil {
		return err
	}
	ss, err := window.Split(s, f)
	if err != nil {
		return zorros.Wrapf(err, "failed to split series: %v", err.Error())
	}

	fmt.Fprintf(w, "%d samples, window %d×%d, target %d×%d\n", ss.Len(), ss.Steps, ss.Columns, ss.TargetSteps, ss.TargetColumns)
	for i, x := range ss.Samples {
		if i >= o.show {
			break
		}
		fmt.Fprintf(w, "%v => %v\n", flat(x.Window), x.Target)
	}
	if ss.Len() == 0 {
		return nil
	}

	d := model.NewDataset(ss)
	fr, fc := d.Features.Dims()
	fmt.Fprintf(w, "features %d×%d, labels %d×%d\n", fr, fc, d.Len(), ss.TargetWidth())
	train, test := d.Split(o.test)
	if train.Len() == 0 || test.Len() == 0 {
		return nil
	}
	m := model.NewNaive(train)
	if err = model.Feed(m, train); err != nil {
		return err
	}
	mse, err := model.Evaluate(m, test)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "naive baseline mse on %d test samples: %.5f\n", test.Len(), mse)
	return nil
}

func load(o *options) (*series.Series, error) {
	if o.csv != "" {
		opts := series.DefaultCSVOptions()
		opts.Columns = list(o.columns)
		opts.Skip = list(o.skip)
		return series.LoadCSV(o.csv, opts)
	}
	if o.framing == "univariate" || o.chunk != 0 {
		return series.New(series.Range(10, 200, 10)), nil
	}
	in1 := series.Range(10, 100, 10)
	in2 := series.Range(15, 100, 10)
	out, err := series.Sum(in1, in2)
	if err != nil {
		return nil, err
	}
	return series.Stack(in1, in2, out)
}

func framing(o *options) (window.Framing, error) {
	switch o.framing {
	case "univariate":
		return window.MultiStep(o.steps, o.out), nil
	case "multivariate":
		return window.MultivariateMultiStep(o.steps, o.out), nil
	case "parallel":
		return window.ParallelMultiStep(o.steps, o.out), nil
	}
	return window.Framing{}, xerrors.Errorf("unknown framing `%v`: %w", o.framing, window.ErrInvalidFraming)
}

func chunk(o *options, s *series.Series, w io.Writer) error {
	c := window.Chunker{Length: o.chunk}
	switch o.policy {
	case "truncate":
		c.Policy = window.Truncate
	case "pad":
		c.Policy = window.Pad
	case "reject":
		c.Policy = window.Reject
	default:
		return xerrors.Errorf("unknown chunk policy `%v`: %w", o.policy, window.ErrInvalidFraming)
	}
	values := s.Column(0)
	chunks := c.Chunks(values)
	x, err := c.Tensor(values)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d chunks, tensor [%d, %d, 1]\n", len(chunks), len(x), o.chunk)
	return nil
}

func list(s string) []string {
	if s == "" {
		return nil
	}
	r := strings.Split(s, ",")
	for i := range r {
		r[i] = strings.TrimSpace(r[i])
	}
	return r
}

func flat(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = m.RawRowView(i)
	}
	return fu.Flatnr(rows)
}
