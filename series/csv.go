package series

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/seqwin/fu"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Columns   []string // Columns to load in order (default: every column except Skip)
	Skip      []string // Columns to ignore, e.g. dates or ids
	HasHeader bool     // Whether CSV has header row (default: true)
	Delimiter rune     // Field delimiter (default: ',')
	SkipRows  int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

/*
LoadCSV loads a series from a CSV file, names ending with .xz are decompressed on the fly.
Relative names not found in the working directory are looked up in the go-ml datasets cache.
*/
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	path := fu.DataPath(filename)
	file, err := os.Open(path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".xz") {
		if r, err = xz.NewReader(file); err != nil {
			return nil, zorros.Wrapf(err, "failed to open xz stream %v: %v", path, err.Error())
		}
	}
	return LoadCSVFromReader(r, opts)
}

/*
LoadCSVFromReader loads a series from an io.Reader.
Rows holding an empty or NA value in any selected column are skipped.
*/
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, zorros.Trace(err)
		}
	}

	var names []string
	var index []int
	first, err := reader.Read()
	if err == io.EOF {
		return &Series{}, nil
	}
	if err != nil {
		return nil, zorros.Trace(err)
	}

	if opts.HasHeader {
		header := make([]string, len(first))
		for i, h := range first {
			header[i] = strings.TrimSpace(strings.Trim(h, "\""))
		}
		if names, index, err = selectColumns(header, opts); err != nil {
			return nil, err
		}
		first = nil
	} else {
		for i := range first {
			index = append(index, i)
		}
	}

	if len(index) == 0 {
		return nil, xerrors.Errorf("no columns selected: %w", ErrMalformedShape)
	}

	s := &Series{Cols: len(index), Names: names}
	row := make([]float64, len(index))
	line := opts.SkipRows
	for {
		record := first
		if record == nil {
			if record, err = reader.Read(); err == io.EOF {
				break
			} else if err != nil {
				return nil, zorros.Trace(err)
			}
		}
		first = nil
		line++
		ok, err := parseRow(record, index, row)
		if err != nil {
			return nil, xerrors.Errorf("line %d: %v: %w", line, err, ErrMalformedShape)
		}
		if ok {
			s.Data = append(s.Data, row...)
			s.Rows++
		}
	}
	return s, nil
}

func selectColumns(header []string, opts *CSVOptions) (names []string, index []int, err error) {
	skip := map[string]bool{}
	for _, n := range opts.Skip {
		skip[n] = true
	}
	if len(opts.Columns) == 0 {
		for i, h := range header {
			if !skip[h] {
				names = append(names, h)
				index = append(index, i)
			}
		}
		return
	}
	for _, c := range opts.Columns {
		found := false
		for i, h := range header {
			if h == c {
				names = append(names, h)
				index = append(index, i)
				found = true
				break
			}
		}
		if !found {
			return nil, nil, xerrors.Errorf("column `%v` not found: %w", c, ErrMalformedShape)
		}
	}
	return
}

func parseRow(record []string, index []int, row []float64) (bool, error) {
	for j, i := range index {
		if i >= len(record) {
			return false, xerrors.Errorf("%d fields, column %d missing", len(record), i)
		}
		v := strings.TrimSpace(strings.Trim(record[i], "\""))
		if v == "" || v == "NA" || v == "NaN" || v == "null" {
			return false, nil
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return false, xerrors.Errorf("bad number `%v`", v)
		}
		row[j] = x
	}
	return true, nil
}
