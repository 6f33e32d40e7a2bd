package lsh

import (
	"fmt"
	"strconv"
)

// BandVector holds one bucket id per band.
type BandVector []uint32

// Bander splits signatures into equal contiguous bands and hashes each band
// to a bucket id.
type Bander struct {
	signatureSize int
	numBands      int
	rows          int
	hasher        Hasher
}

// NewBander validates the band layout. signatureSize must be a positive
// multiple of numBands. A nil hasher selects MD5.
func NewBander(signatureSize, numBands int, hasher Hasher) (*Bander, error) {
	if signatureSize <= 0 {
		return nil, configError("lsh.signature_size", ErrNonPositive)
	}
	if numBands <= 0 {
		return nil, configError("lsh.num_bands", ErrNonPositive)
	}
	if signatureSize%numBands != 0 {
		return nil, configError("lsh.num_bands",
			fmt.Errorf("%w (signature_size=%d, num_bands=%d)", ErrBandsNotDivisor, signatureSize, numBands))
	}
	if hasher == nil {
		hasher = MD5Hasher{}
	}
	return &Bander{
		signatureSize: signatureSize,
		numBands:      numBands,
		rows:          signatureSize / numBands,
		hasher:        hasher,
	}, nil
}

// NumBands returns the band count.
func (b *Bander) NumBands() int { return b.numBands }

// RowsPerBand returns the number of signature components per band.
func (b *Bander) RowsPerBand() int { return b.rows }

// Bands hashes each band of sig. A band's key is the concatenation of its
// components' decimal strings with no separator.
func (b *Bander) Bands(sig Signature) (BandVector, error) {
	if len(sig) != b.signatureSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSignatureLength, len(sig), b.signatureSize)
	}
	out := make(BandVector, b.numBands)
	buf := make([]byte, 0, b.rows*10)
	for band := range out {
		buf = buf[:0]
		for _, v := range sig[band*b.rows : (band+1)*b.rows] {
			buf = strconv.AppendUint(buf, uint64(v), 10)
		}
		out[band] = b.hasher.Sum32(buf)
	}
	return out, nil
}

// Bands is a one-shot helper using the MD5 hasher.
func Bands(sig Signature, numBands int) (BandVector, error) {
	bander, err := NewBander(len(sig), numBands, nil)
	if err != nil {
		return nil, err
	}
	return bander.Bands(sig)
}

// Candidate reports whether two band vectors share a bucket at the same band index.
func Candidate(a, b BandVector) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			return true
		}
	}
	return false
}
