package window

import (
	"fmt"

	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"
)

/*
Policy decides what becomes of a final chunk shorter than the chunk length
when chunks are reshaped into a rectangular tensor
*/
type Policy int

const (
	// Truncate drops the ragged final chunk
	Truncate Policy = iota
	// Pad fills the ragged final chunk with Chunker.Fill
	Pad
	// Reject fails with ErrRaggedChunk
	Reject
)

/*
Chunker partitions a sequence into contiguous non-overlapping subsequences
*/
type Chunker struct {
	Length int     // chunk length
	Policy Policy  // ragged final chunk policy for Tensor
	Fill   float64 // padding value for Pad policy
}

/*
Chunk partitions values into ceil(len/length) chunks, the last one may be shorter.
Chunks are copies. Length <= 0 gives no chunks.
*/
func Chunk(values []float64, length int) [][]float64 {
	return Chunker{Length: length}.Chunks(values)
}

/*
ChunkTensor reshapes values into [chunks][length][1] dropping a ragged final chunk
*/
func ChunkTensor(values []float64, length int) [][][]float64 {
	r, _ := Chunker{Length: length, Policy: Truncate}.Tensor(values)
	return r
}

/*
Chunks partitions values, see Chunk
*/
func (c Chunker) Chunks(values []float64) [][]float64 {
	if c.Length <= 0 || len(values) == 0 {
		return [][]float64{}
	}
	n := len(values) / c.Length
	if len(values)%c.Length != 0 {
		n++
	}
	r := make([][]float64, n)
	for i := range r {
		from := i * c.Length
		to := from + c.Length
		if to > len(values) {
			to = len(values)
		}
		r[i] = make([]float64, to-from)
		copy(r[i], values[from:to])
	}
	return r
}

/*
Tensor exposes chunks as [chunks][length][1], the input shape of recurrent models.
A ragged final chunk is handled according to the policy.
*/
func (c Chunker) Tensor(values []float64) ([][][]float64, error) {
	chunks := c.Chunks(values)
	if n := len(chunks); n > 0 && len(chunks[n-1]) < c.Length {
		last := chunks[n-1]
		switch c.Policy {
		case Truncate:
			zlog.Warning(fmt.Sprintf("dropping ragged final chunk of %d values, chunk length is %d", len(last), c.Length))
			chunks = chunks[:n-1]
		case Pad:
			padded := make([]float64, c.Length)
			copy(padded, last)
			for i := len(last); i < c.Length; i++ {
				padded[i] = c.Fill
			}
			chunks[n-1] = padded
		case Reject:
			return nil, xerrors.Errorf("%d values do not fill chunks of %d: %w", len(values), c.Length, ErrRaggedChunk)
		default:
			return nil, xerrors.Errorf("chunk policy %d: %w", c.Policy, ErrInvalidFraming)
		}
	}
	r := make([][][]float64, len(chunks))
	for i, ch := range chunks {
		steps := make([][]float64, len(ch))
		for k, v := range ch {
			steps[k] = []float64{v}
		}
		r[i] = steps
	}
	return r, nil
}
