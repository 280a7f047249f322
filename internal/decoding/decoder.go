package decoding

import (
	"github.com/harlequix/ecsim/internal/encoding"
	log "github.com/harlequix/ecsim/log"
)

// CRCVerdict is what the receiving end learns from a CRC codeword.
type CRCVerdict struct {
	Syndrome encoding.BitString
	Detected bool
}

// HammingVerdict is what the receiving end learns from a Hamming codeword.
// Correctable is false when the syndrome points past the end of the word, in
// which case Corrected holds the word as received.
type HammingVerdict struct {
	ErrorPosition int
	Correctable   bool
	Corrected     encoding.BitString
	Data          encoding.BitString
}

type Decoder struct {
	log *log.Logger
}

func NewDecoder() *Decoder {
	return &Decoder{
		log: log.NewLogger("Decoder"),
	}
}

// ReceiveCRC checks a received CRC codeword against key.
func (d *Decoder) ReceiveCRC(received, key encoding.BitString) (CRCVerdict, error) {
	syndrome, err := encoding.CRCRemainder(received, key)
	if err != nil {
		return CRCVerdict{}, err
	}
	verdict := CRCVerdict{
		Syndrome: syndrome,
		Detected: !syndrome.IsZero(),
	}
	if verdict.Detected {
		d.log.WithField("received", received.String()).WithField("remainder", syndrome.String()).Info("CRC error detected")
	} else {
		d.log.WithField("received", received.String()).Debug("CRC check passed")
	}
	return verdict, nil
}

// ReceiveHamming decodes a received Hamming codeword and recovers its data bits.
func (d *Decoder) ReceiveHamming(received encoding.BitString) (HammingVerdict, error) {
	corrected, pos, err := encoding.DecodeHamming(received)
	if err != nil {
		return HammingVerdict{}, err
	}
	verdict := HammingVerdict{
		ErrorPosition: pos,
		Correctable:   pos <= len(received),
		Corrected:     corrected,
		Data:          encoding.ExtractData(corrected),
	}
	switch {
	case pos == 0:
		d.log.WithField("received", received.String()).Debug("Hamming check passed")
	case !verdict.Correctable:
		d.log.WithField("received", received.String()).WithField("syndrome", pos).Warn("Hamming syndrome out of range, word left as received")
	default:
		d.log.WithField("received", received.String()).WithField("position", pos).Info("Hamming error corrected")
	}
	return verdict, nil
}
