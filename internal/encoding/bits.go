package encoding

import (
	"bytes"
	"fmt"
)

// BitString is an ordered sequence of bits stored as the bytes ONE and ZERO.
// Positions handed to and returned from this package are 1-indexed, bit 1
// being the leftmost.
type BitString []byte

// Parse validates s and returns it as a BitString.
func Parse(s string) (BitString, error) {
	bits := BitString(s)
	if err := bits.validate(); err != nil {
		return nil, err
	}
	return bits, nil
}

// ParseKey parses a CRC generator polynomial. A key must carry at least two
// bits for the remainder to be non-empty. A leading zero is accepted.
func ParseKey(s string) (BitString, error) {
	key, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if err := key.validateKey(); err != nil {
		return nil, err
	}
	return key, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) BitString {
	bits, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return bits
}

// Zeros returns n ZERO bits.
func Zeros(n int) BitString {
	return BitString(bytes.Repeat([]byte{ZERO}, n))
}

func (b BitString) String() string {
	return string(b)
}

func (b BitString) Len() int {
	return len(b)
}

func (b BitString) Clone() BitString {
	out := make(BitString, len(b))
	copy(out, b)
	return out
}

func (b BitString) Equal(other BitString) bool {
	return bytes.Equal(b, other)
}

// IsZero reports whether no bit is set. An empty string is zero.
func (b BitString) IsZero() bool {
	return bytes.IndexByte(b, ONE) < 0
}

// Bit returns the bit at 1-indexed position pos as 0 or 1.
func (b BitString) Bit(pos int) (uint8, error) {
	if pos < 1 || pos > len(b) {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrPositionOutOfRange, pos, len(b))
	}
	if b[pos-1] == ONE {
		return 1, nil
	}
	return 0, nil
}

// Flip returns a copy of b with the bit at 1-indexed position pos inverted.
// The receiver is left untouched.
func (b BitString) Flip(pos int) (BitString, error) {
	if pos < 1 || pos > len(b) {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrPositionOutOfRange, pos, len(b))
	}
	out := b.Clone()
	flip(out, pos-1)
	return out, nil
}

// Diff lists the 1-indexed positions where b and other disagree. Both are
// compared up to the shorter length.
func (b BitString) Diff(other BitString) []int {
	var positions []int
	for i := 0; i < len(b) && i < len(other); i++ {
		if b[i] != other[i] {
			positions = append(positions, i+1)
		}
	}
	return positions
}

func (b BitString) validate() error {
	if len(b) == 0 {
		return ErrEmptyBitString
	}
	for i, c := range b {
		if c != ONE && c != ZERO {
			return fmt.Errorf("%w: found %q at position %d", ErrNonBinary, c, i+1)
		}
	}
	return nil
}

func (b BitString) validateKey() error {
	if err := b.validate(); err != nil {
		return err
	}
	if len(b) < 2 {
		return fmt.Errorf("%w: got %d", ErrKeyTooShort, len(b))
	}
	return nil
}

// flip inverts the bit at 0-indexed offset index in place.
func flip(b BitString, index int) {
	if b[index] == ZERO {
		b[index] = ONE
	} else {
		b[index] = ZERO
	}
}
