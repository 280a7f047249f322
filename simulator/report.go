package simulator

import (
	"github.com/harlequix/ecsim/internal/encoding"
	"github.com/jinzhu/copier"
)

// CRCReport follows one word through CRC encoding, the channel and the check.
type CRCReport struct {
	Data      encoding.BitString
	Key       encoding.BitString
	Remainder encoding.BitString
	Codeword  encoding.BitString
	Received  encoding.BitString
	Flipped   []int
	// OutOfBounds is set when the requested flip did not fit the codeword,
	// which is then received unchanged.
	OutOfBounds bool
	Syndrome    encoding.BitString
	Detected    bool
}

// Corrupted reports whether the received word differs from the codeword.
func (r *CRCReport) Corrupted() bool {
	return !r.Received.Equal(r.Codeword)
}

// Missed is true for a corrupted word that still passed the check.
func (r *CRCReport) Missed() bool {
	return r.Corrupted() && !r.Detected
}

type HammingReport struct {
	Data          encoding.BitString
	ParityBits    int
	Codeword      encoding.BitString
	Received      encoding.BitString
	Flipped       []int
	OutOfBounds   bool
	ErrorPosition int
	Correctable   bool
	Corrected     encoding.BitString
	Decoded       encoding.BitString
}

func (r *HammingReport) Corrupted() bool {
	return !r.Received.Equal(r.Codeword)
}

// Recovered is true when decoding gave back the transmitted codeword.
func (r *HammingReport) Recovered() bool {
	return r.Corrected.Equal(r.Codeword)
}

// Report is the outcome of one simulated transmission through both codecs.
type Report struct {
	Channel string
	Text    string
	CRC     CRCReport
	Hamming HammingReport
}

// MaxLen is the longer of the two codewords, the upper bound of a flip
// position that hits at least one of them.
func (r *Report) MaxLen() int {
	if len(r.CRC.Codeword) > len(r.Hamming.Codeword) {
		return len(r.CRC.Codeword)
	}
	return len(r.Hamming.Codeword)
}

// Clone returns a deep copy that shares no slices with r.
func (r *Report) Clone() (*Report, error) {
	out := &Report{}
	if err := copier.CopyWithOption(out, r, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}
