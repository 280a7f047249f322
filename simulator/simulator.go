// Package simulator runs data through both codecs and a noisy channel, the
// way the CLI walk-through and the dashboard present it: encode, corrupt,
// then verify or correct.
package simulator

import (
	"fmt"

	"github.com/harlequix/ecsim/channel"
	"github.com/harlequix/ecsim/internal/decoding"
	"github.com/harlequix/ecsim/internal/encoding"
	log "github.com/harlequix/ecsim/log"
)

var logger *log.Logger

func init() {
	logger = log.NewLogger("simulator")
}

type Simulator struct {
	config   Config
	channel  channel.Strategy
	receiver *decoding.Decoder
	logger   *log.Logger
}

// New builds a simulator whose channel is chosen by config.
func New(config Config) (*Simulator, error) {
	opts, err := config.ChannelOptions()
	if err != nil {
		return nil, err
	}
	strategy, err := channel.New(opts)
	if err != nil {
		return nil, err
	}
	logger.WithField("channel", strategy.Name()).Debug("Create new simulator ", config)
	return &Simulator{
		config:   config,
		channel:  strategy,
		receiver: decoding.NewDecoder(),
		logger:   logger,
	}, nil
}

func (s *Simulator) Config() Config {
	return s.config
}

func (s *Simulator) Channel() channel.Strategy {
	return s.channel
}

// Run simulates a transmission of data protected by key over the configured
// channel.
func (s *Simulator) Run(data, key string) (*Report, error) {
	return s.RunChannel(data, key, s.channel)
}

// RunChannel is Run with an explicit channel.
func (s *Simulator) RunChannel(data, key string, strategy channel.Strategy) (*Report, error) {
	bits, err := s.parseData(data)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	polynomial, err := encoding.ParseKey(key)
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	return s.run(bits, polynomial, strategy)
}

// RunAt flips a single position in both codewords.
func (s *Simulator) RunAt(data, key string, position int) (*Report, error) {
	return s.RunChannel(data, key, channel.NewSingle(position))
}

func (s *Simulator) parseData(data string) (encoding.BitString, error) {
	if s.config.Text {
		if data == "" {
			return nil, encoding.ErrEmptyBitString
		}
		return encoding.FromText(data), nil
	}
	return encoding.Parse(data)
}

func (s *Simulator) run(data, key encoding.BitString, strategy channel.Strategy) (*Report, error) {
	report := &Report{Channel: strategy.Name()}
	if s.config.Text {
		report.Text = encoding.ToText(data)
	}
	if err := s.runCRC(&report.CRC, data, key, strategy); err != nil {
		return nil, err
	}
	if err := s.runHamming(&report.Hamming, data, strategy); err != nil {
		return nil, err
	}
	s.logger.WithField("channel", report.Channel).
		WithField("crcDetected", report.CRC.Detected).
		WithField("hammingPosition", report.Hamming.ErrorPosition).
		Debug("transmission simulated")
	return report, nil
}

func (s *Simulator) runCRC(report *CRCReport, data, key encoding.BitString, strategy channel.Strategy) error {
	codeword, remainder, err := encoding.EncodeCRC(data, key)
	if err != nil {
		return err
	}
	report.Data = data
	report.Key = key
	report.Remainder = remainder
	report.Codeword = codeword

	report.Received, report.Flipped, report.OutOfBounds, err = s.transmit(codeword, strategy)
	if err != nil {
		return fmt.Errorf("CRC channel: %w", err)
	}
	verdict, err := s.receiver.ReceiveCRC(report.Received, key)
	if err != nil {
		return err
	}
	report.Syndrome = verdict.Syndrome
	report.Detected = verdict.Detected
	if report.Missed() {
		s.logger.WithField("flipped", report.Flipped).Warn("CRC missed a corrupted codeword")
	}
	return nil
}

func (s *Simulator) runHamming(report *HammingReport, data encoding.BitString, strategy channel.Strategy) error {
	codeword, err := encoding.EncodeHamming(data)
	if err != nil {
		return err
	}
	report.Data = data
	report.ParityBits = len(codeword) - len(data)
	report.Codeword = codeword

	report.Received, report.Flipped, report.OutOfBounds, err = s.transmit(codeword, strategy)
	if err != nil {
		return fmt.Errorf("Hamming channel: %w", err)
	}
	verdict, err := s.receiver.ReceiveHamming(report.Received)
	if err != nil {
		return err
	}
	report.ErrorPosition = verdict.ErrorPosition
	report.Correctable = verdict.Correctable
	report.Corrected = verdict.Corrected
	report.Decoded = verdict.Data
	return nil
}

// transmit passes codeword through the channel. A flip position beyond the
// codeword is not an error: the word arrives unchanged and outOfBounds is set.
func (s *Simulator) transmit(codeword encoding.BitString, strategy channel.Strategy) (received encoding.BitString, flipped []int, outOfBounds bool, err error) {
	received, flipped, err = strategy.Corrupt(codeword)
	if channel.IsOutOfRange(err) {
		s.logger.WithField("length", len(codeword)).WithField("error", err).Info("flip position out of bounds")
		return codeword.Clone(), nil, true, nil
	}
	if err != nil {
		return nil, nil, false, err
	}
	return received, flipped, false, nil
}
