package encoding

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the class of every precondition failure raised by the
// codecs. The more specific errors below all wrap it.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrEmptyBitString     = fmt.Errorf("%w: empty bit string", ErrInvalidInput)
	ErrNonBinary          = fmt.Errorf("%w: bit string must only contain 0 and 1", ErrInvalidInput)
	ErrKeyTooShort        = fmt.Errorf("%w: generator polynomial needs at least 2 bits", ErrInvalidInput)
	ErrPositionOutOfRange = fmt.Errorf("%w: bit position out of range", ErrInvalidInput)
)
