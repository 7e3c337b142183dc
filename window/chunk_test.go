package window

import (
	"math"
	"testing"

	"go-ml.dev/pkg/seqwin/series"
	"golang.org/x/xerrors"
	"gotest.tools/assert"
)

func Test_ChunkExact(t *testing.T) {
	values := series.Range(0, 5000, 1)
	chunks := Chunk(values, 200)
	assert.Assert(t, len(chunks) == 25)
	for i, c := range chunks {
		assert.Assert(t, len(c) == 200)
		assert.Assert(t, c[0] == float64(i*200))
	}

	x := ChunkTensor(values, 200)
	assert.Assert(t, len(x) == 25 && len(x[0]) == 200 && len(x[0][0]) == 1)
	assert.Assert(t, x[24][199][0] == 4999)
}

func Test_ChunkRagged(t *testing.T) {
	values := series.Range(0, 5005, 1)
	chunks := Chunk(values, 200)
	assert.Assert(t, len(chunks) == 26)
	assert.DeepEqual(t, chunks[25], []float64{5000, 5001, 5002, 5003, 5004})

	tests := []struct {
		name    string
		policy  Policy
		chunks  int
		lastVal float64
	}{
		{"truncate", Truncate, 25, 4999},
		{"pad", Pad, 26, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Chunker{Length: 200, Policy: tt.policy, Fill: -1}.Tensor(values)
			assert.NilError(t, err)
			assert.Assert(t, len(x) == tt.chunks)
			last := x[len(x)-1]
			assert.Assert(t, len(last) == 200)
			assert.Assert(t, last[199][0] == tt.lastVal)
		})
	}

	padded, err := Chunker{Length: 200, Policy: Pad}.Tensor(values)
	assert.NilError(t, err)
	assert.Assert(t, padded[25][4][0] == 5004 && padded[25][5][0] == 0)

	_, err = Chunker{Length: 200, Policy: Reject}.Tensor(values)
	assert.Assert(t, xerrors.Is(err, ErrRaggedChunk))

	_, err = Chunker{Length: 200, Policy: Policy(9)}.Tensor(values)
	assert.Assert(t, xerrors.Is(err, ErrInvalidFraming))

	x := ChunkTensor(values, 200)
	assert.Assert(t, len(x) == 25)
}

func Test_ChunkDegenerate(t *testing.T) {
	assert.Assert(t, len(Chunk([]float64{1, 2, 3}, 0)) == 0)
	assert.Assert(t, len(Chunk([]float64{1, 2, 3}, -2)) == 0)
	assert.Assert(t, len(Chunk(nil, 3)) == 0)
	assert.DeepEqual(t, Chunk([]float64{1, 2, 3}, 5), [][]float64{{1, 2, 3}})
	assert.Assert(t, len(ChunkTensor([]float64{1, 2, 3}, 5)) == 0)

	values := []float64{1, 2, 3, 4}
	chunks := Chunk(values, 2)
	chunks[0][0] = 100
	assert.Assert(t, values[0] == 1)
}

func Test_ChunkHugeLength(t *testing.T) {
	chunks := Chunk([]float64{1, 2, 3}, math.MaxInt64)
	assert.DeepEqual(t, chunks, [][]float64{{1, 2, 3}})

	x, err := Chunker{Length: math.MaxInt64, Policy: Truncate}.Tensor([]float64{1, 2, 3})
	assert.NilError(t, err)
	assert.Assert(t, len(x) == 0)
}
