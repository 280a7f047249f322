package simulator

import (
	"context"
	"fmt"

	"github.com/harlequix/ecsim/channel"
	"github.com/harlequix/ecsim/internal/encoding"
	"golang.org/x/sync/errgroup"
)

// SweepRow is the outcome of flipping one position in both codewords.
type SweepRow struct {
	Position        int
	CRCHit          bool
	CRCDetected     bool
	HammingHit      bool
	HammingFound    int
	HammingRestored bool
}

type SweepReport struct {
	Data            encoding.BitString
	Key             encoding.BitString
	CRCLen          int
	HammingLen      int
	Rows            []SweepRow
	CRCDetected     int
	HammingRestored int
}

// Sweep flips every position from 1 to the longer codeword length in turn.
// Positions are simulated concurrently, at most config.Workers at a time
// when that is positive.
func (s *Simulator) Sweep(ctx context.Context, data, key string) (*SweepReport, error) {
	bits, err := s.parseData(data)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	polynomial, err := encoding.ParseKey(key)
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	base, err := s.run(bits, polynomial, channel.Noiseless{})
	if err != nil {
		return nil, err
	}

	sweep := &SweepReport{
		Data:       bits,
		Key:        polynomial,
		CRCLen:     len(base.CRC.Codeword),
		HammingLen: len(base.Hamming.Codeword),
		Rows:       make([]SweepRow, base.MaxLen()),
	}
	g, ctx := errgroup.WithContext(ctx)
	if s.config.Workers > 0 {
		g.SetLimit(s.config.Workers)
	}
	for i := range sweep.Rows {
		position := i + 1
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := s.run(bits, polynomial, channel.NewSingle(position))
			if err != nil {
				return err
			}
			// each goroutine owns its row
			sweep.Rows[position-1] = SweepRow{
				Position:        position,
				CRCHit:          !report.CRC.OutOfBounds,
				CRCDetected:     report.CRC.Detected,
				HammingHit:      !report.Hamming.OutOfBounds,
				HammingFound:    report.Hamming.ErrorPosition,
				HammingRestored: report.Hamming.Corrupted() && report.Hamming.Recovered(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, row := range sweep.Rows {
		if row.CRCDetected {
			sweep.CRCDetected++
		}
		if row.HammingRestored {
			sweep.HammingRestored++
		}
	}
	s.logger.WithField("positions", len(sweep.Rows)).
		WithField("crcDetected", sweep.CRCDetected).
		WithField("hammingRestored", sweep.HammingRestored).
		Info("sweep finished")
	return sweep, nil
}
