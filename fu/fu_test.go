package fu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func Test_Flatnr(t *testing.T) {
	r := Flatnr([][]float64{{1, 2}, {3}, {}, {4, 5, 6}})
	assert.DeepEqual(t, r, []float64{1, 2, 3, 4, 5, 6})
	assert.Assert(t, len(Flatnr(nil)) == 0)
}

func Test_Float32(t *testing.T) {
	assert.DeepEqual(t, Float32([]float64{0.5, -2, 3}), []float32{0.5, -2, 3})
	assert.Assert(t, len(Float32(nil)) == 0)
}

func Test_MeanMse(t *testing.T) {
	assert.Assert(t, Mean([]float64{1, 2, 3}) == 2)
	assert.Assert(t, Mse([]float64{1, 2}, []float64{1, 4}) == 2)
}

func Test_Ints(t *testing.T) {
	assert.Assert(t, Fnzi(0, 0, 3, 4) == 3)
	assert.Assert(t, Fnzi(0) == 0)
	assert.Assert(t, Mini(5, 2, 7) == 2)
	assert.Assert(t, Maxi(5, 2, 7) == 7)
	assert.Assert(t, Maxi(1) == 1)
}

func Test_DataPath(t *testing.T) {
	abs, err := filepath.Abs("fu_test.go")
	assert.NilError(t, err)
	assert.Assert(t, DataPath(abs) == abs)
	assert.Assert(t, DataPath("fu_test.go") == "fu_test.go")
	_, err = os.Stat("no-such-dataset.csv")
	assert.Assert(t, os.IsNotExist(err))
	p := DataPath("no-such-dataset.csv")
	assert.Assert(t, strings.Contains(p, "Datasets"))
	assert.Assert(t, filepath.Base(p) == "no-such-dataset.csv")
}
