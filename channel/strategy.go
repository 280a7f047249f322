// Package channel simulates a noisy link by corrupting codewords on their
// way from the encoder to the receiver.
package channel

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/harlequix/ecsim/internal/encoding"
	log "github.com/harlequix/ecsim/log"
)

const (
	NameNone    string = "none"
	NameSingle  string = "single"
	NameBurst   string = "burst"
	NameRandom  string = "random"
	NamePattern string = "pattern"
)

var ErrMaskTooLong = fmt.Errorf("%w: error pattern longer than the codeword", encoding.ErrInvalidInput)

// Strategy corrupts a transmitted word. Corrupt returns the received word
// and the 1-indexed positions that were flipped; the input is never modified.
type Strategy interface {
	Name() string
	Corrupt(encoding.BitString) (encoding.BitString, []int, error)
}

// Options selects and parameterises a Strategy. The field names follow the
// simulator configuration keys so a config can be copied straight in.
type Options struct {
	Channel      string
	FlipPosition int
	BurstLength  int
	Flips        int
	Mask         string
	Seed         int64
}

var logger = log.NewLogger("channel")

// New builds the strategy named by opts.Channel, falling back to a single
// flip when the name is unknown.
func New(opts Options) (Strategy, error) {
	switch opts.Channel {
	case NameNone:
		return Noiseless{}, nil
	case NameSingle:
		return NewSingle(opts.FlipPosition), nil
	case NameBurst:
		return NewBurst(opts.FlipPosition, opts.BurstLength), nil
	case NameRandom:
		return NewRandom(opts.Flips, opts.Seed), nil
	case NamePattern:
		mask, err := encoding.Parse(opts.Mask)
		if err != nil {
			return nil, fmt.Errorf("error pattern: %w", err)
		}
		return NewPattern(mask), nil
	default:
		logger.WithField("InvalidValue", opts.Channel).Error("Do not know channel. Falling back to single flip")
		return NewSingle(opts.FlipPosition), nil
	}
}

// IsOutOfRange reports whether err came from a flip position outside the
// word, which callers treat as "nothing was corrupted" rather than a failure.
func IsOutOfRange(err error) bool {
	return errors.Is(err, encoding.ErrPositionOutOfRange)
}

type Noiseless struct{}

func (Noiseless) Name() string { return NameNone }

func (Noiseless) Corrupt(word encoding.BitString) (encoding.BitString, []int, error) {
	return word.Clone(), nil, nil
}

// Single flips one chosen position.
type Single struct {
	Position int
}

func NewSingle(position int) *Single {
	return &Single{Position: position}
}

func (s *Single) Name() string { return NameSingle }

func (s *Single) Corrupt(word encoding.BitString) (encoding.BitString, []int, error) {
	received, err := word.Flip(s.Position)
	if err != nil {
		return nil, nil, err
	}
	return received, []int{s.Position}, nil
}

// Burst flips Length consecutive bits starting at Position. A burst running
// past the end of the word is cut short.
type Burst struct {
	Position int
	Length   int
}

func NewBurst(position, length int) *Burst {
	if length < 1 {
		length = 1
	}
	return &Burst{Position: position, Length: length}
}

func (b *Burst) Name() string { return NameBurst }

func (b *Burst) Corrupt(word encoding.BitString) (encoding.BitString, []int, error) {
	if b.Position < 1 || b.Position > len(word) {
		return nil, nil, fmt.Errorf("%w: %d not in [1, %d]", encoding.ErrPositionOutOfRange, b.Position, len(word))
	}
	received := word
	var flipped []int
	for pos := b.Position; pos < b.Position+b.Length && pos <= len(word); pos++ {
		var err error
		if received, err = received.Flip(pos); err != nil {
			return nil, nil, err
		}
		flipped = append(flipped, pos)
	}
	return received, flipped, nil
}

// Pattern XORs a fixed error pattern onto the tail of the word.
type Pattern struct {
	Mask encoding.BitString
}

func NewPattern(mask encoding.BitString) *Pattern {
	return &Pattern{Mask: mask}
}

func (p *Pattern) Name() string { return NamePattern }

func (p *Pattern) Corrupt(word encoding.BitString) (encoding.BitString, []int, error) {
	if len(p.Mask) > len(word) {
		return nil, nil, fmt.Errorf("%w: %d > %d", ErrMaskTooLong, len(p.Mask), len(word))
	}
	received := word.Clone()
	offset := len(word) - len(p.Mask)
	var flipped []int
	for i, bit := range p.Mask {
		if bit != encoding.ONE {
			continue
		}
		var err error
		if received, err = received.Flip(offset + i + 1); err != nil {
			return nil, nil, err
		}
		flipped = append(flipped, offset+i+1)
	}
	return received, flipped, nil
}

// Random flips Flips distinct positions picked from its own source.
type Random struct {
	Flips int
	rand  *rand.Rand
}

func NewRandom(flips int, seed int64) *Random {
	if flips < 1 {
		flips = 1
	}
	return &Random{
		Flips: flips,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Name() string { return NameRandom }

func (r *Random) Corrupt(word encoding.BitString) (encoding.BitString, []int, error) {
	n := r.Flips
	if n > len(word) {
		n = len(word)
	}
	received := word.Clone()
	flipped := make([]int, 0, n)
	for _, index := range r.rand.Perm(len(word))[:n] {
		var err error
		if received, err = received.Flip(index + 1); err != nil {
			return nil, nil, err
		}
		flipped = append(flipped, index+1)
	}
	sort.Ints(flipped)
	logger.WithField("positions", flipped).Debug("random flips")
	return received, flipped, nil
}
