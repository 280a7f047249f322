package format

import (
	"strconv"
	"strings"

	"github.com/harlequix/ecsim/internal/encoding"
)

// Block is a row of bit cells used to lay out a codeword for display. A
// cell that was never set renders as '_'.
type Block struct {
	field []byte
}

func NewBlock(length int) *Block {
	return &Block{
		field: make([]byte, length),
	}
}

// FromBits fills a block with a bit string.
func FromBits(bits encoding.BitString) *Block {
	block := NewBlock(len(bits))
	copy(block.field, bits)
	return block
}

// SetBit sets the 1-indexed cell pos.
func (b *Block) SetBit(pos int, value byte) {
	b.field[pos-1] = value
}

func (b *Block) Len() int {
	return len(b.field)
}

func (b *Block) Ready() bool {
	for _, val := range b.field {
		if val == 0 {
			return false
		}
	}
	return true
}

func (b *Block) String() string {
	var out strings.Builder
	for _, val := range b.field {
		if val == encoding.ONE {
			out.WriteByte('1')
		} else if val == encoding.ZERO {
			out.WriteByte('0')
		} else {
			out.WriteByte('_')
		}
	}
	return out.String()
}

// Skeleton shows where the data bits land in a Hamming codeword of length m
// before the parity bits are computed, e.g. __1_011_001.
func Skeleton(data encoding.BitString) *Block {
	m := len(data) + encoding.ParityBits(len(data))
	block := NewBlock(m)
	next := 0
	for pos := 1; pos <= m; pos++ {
		if encoding.IsParityPosition(uint(pos)) {
			continue
		}
		block.SetBit(pos, data[next])
		next++
	}
	return block
}

// Marker returns a line of the given length with '^' under each 1-indexed
// position and spaces elsewhere. Positions outside the line are ignored.
func Marker(length int, positions ...int) string {
	line := []byte(strings.Repeat(" ", length))
	for _, pos := range positions {
		if pos >= 1 && pos <= length {
			line[pos-1] = '^'
		}
	}
	return strings.TrimRight(string(line), " ")
}

// ParityMarker marks the parity positions of a codeword with 'p' and the
// data positions with 'd'.
func ParityMarker(length int) string {
	line := make([]byte, length)
	for pos := 1; pos <= length; pos++ {
		if encoding.IsParityPosition(uint(pos)) {
			line[pos-1] = 'p'
		} else {
			line[pos-1] = 'd'
		}
	}
	return string(line)
}

// Group splits bits into space separated groups of n, counted from the left.
func Group(bits encoding.BitString, n int) string {
	if n <= 0 || len(bits) <= n {
		return bits.String()
	}
	var out strings.Builder
	for i, c := range bits {
		if i > 0 && i%n == 0 {
			out.WriteByte(' ')
		}
		out.WriteByte(c)
	}
	return out.String()
}

// Positions renders a list of positions, "-" when it is empty.
func Positions(positions []int) string {
	if len(positions) == 0 {
		return "-"
	}
	parts := make([]string, len(positions))
	for i, pos := range positions {
		parts[i] = strconv.Itoa(pos)
	}
	return strings.Join(parts, ",")
}
