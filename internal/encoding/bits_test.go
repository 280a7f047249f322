package encoding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"ok", "1011001", nil},
		{"single bit", "0", nil},
		{"empty", "", ErrEmptyBitString},
		{"letter", "10b1", ErrNonBinary},
		{"digit", "1021", ErrNonBinary},
		{"whitespace", "10 1", ErrNonBinary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.want == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got.String())
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Nil(t, got)
		})
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()
	_, err := ParseKey("1")
	assert.True(t, errors.Is(err, ErrKeyTooShort))

	_, err = ParseKey("")
	assert.True(t, errors.Is(err, ErrEmptyBitString))

	key, err := ParseKey("0101")
	require.NoError(t, err, "a leading zero is accepted")
	assert.Equal(t, "0101", key.String())
}

func TestFlip(t *testing.T) {
	t.Parallel()
	bits := MustParse("1011")

	got, err := bits.Flip(1)
	require.NoError(t, err)
	assert.Equal(t, "0011", got.String())

	got, err = bits.Flip(4)
	require.NoError(t, err)
	assert.Equal(t, "1010", got.String())
	assert.Equal(t, "1011", bits.String())

	for _, pos := range []int{0, -1, 5} {
		_, err = bits.Flip(pos)
		assert.True(t, errors.Is(err, ErrPositionOutOfRange), "position %d", pos)
	}
}

func TestBitAndDiff(t *testing.T) {
	t.Parallel()
	bits := MustParse("10")
	one, err := bits.Bit(1)
	require.NoError(t, err)
	zero, err := bits.Bit(2)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), one)
	assert.Equal(t, uint8(0), zero)
	_, err = bits.Bit(3)
	assert.Error(t, err)

	assert.Equal(t, []int{2, 5}, MustParse("10110").Diff(MustParse("11111")))
	assert.Empty(t, MustParse("101").Diff(MustParse("101")))
}

func TestIsZero(t *testing.T) {
	t.Parallel()
	assert.True(t, Zeros(4).IsZero())
	assert.True(t, BitString(nil).IsZero())
	assert.False(t, MustParse("0001").IsZero())
	assert.Equal(t, "000", Zeros(3).String())
}

func TestText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "01000001", ByteToBit('A').String())
	bits := FromText("Hi")
	assert.Equal(t, "0100100001101001", bits.String())
	assert.Equal(t, "Hi", ToText(bits))
	assert.Equal(t, "H", ToText(bits[:12]))
}
