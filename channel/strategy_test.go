package channel

import (
	"errors"
	"testing"

	"github.com/harlequix/ecsim/internal/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{Options{Channel: NameNone}, NameNone},
		{Options{Channel: NameSingle, FlipPosition: 3}, NameSingle},
		{Options{Channel: NameBurst, FlipPosition: 3, BurstLength: 2}, NameBurst},
		{Options{Channel: NameRandom, Flips: 2}, NameRandom},
		{Options{Channel: NamePattern, Mask: "1011"}, NamePattern},
		{Options{Channel: "double", FlipPosition: 3}, NameSingle},
	}
	for _, tt := range tests {
		t.Run(tt.opts.Channel, func(t *testing.T) {
			got, err := New(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name())
		})
	}

	_, err := New(Options{Channel: NamePattern, Mask: "10z"})
	assert.True(t, errors.Is(err, encoding.ErrNonBinary))
}

func TestNoiseless(t *testing.T) {
	word := encoding.MustParse("1011")
	got, flipped, err := Noiseless{}.Corrupt(word)
	require.NoError(t, err)
	assert.Equal(t, word, got)
	assert.Empty(t, flipped)
}

func TestSingle(t *testing.T) {
	word := encoding.MustParse("10100111001")

	got, flipped, err := NewSingle(5).Corrupt(word)
	require.NoError(t, err)
	assert.Equal(t, "10101111001", got.String())
	assert.Equal(t, []int{5}, flipped)
	assert.Equal(t, "10100111001", word.String())

	_, _, err = NewSingle(12).Corrupt(word)
	assert.True(t, IsOutOfRange(err))
}

func TestBurst(t *testing.T) {
	word := encoding.MustParse("0000000")

	got, flipped, err := NewBurst(3, 3).Corrupt(word)
	require.NoError(t, err)
	assert.Equal(t, "0011100", got.String())
	assert.Equal(t, []int{3, 4, 5}, flipped)

	got, flipped, err = NewBurst(6, 4).Corrupt(word)
	require.NoError(t, err)
	assert.Equal(t, "0000011", got.String())
	assert.Equal(t, []int{6, 7}, flipped)

	_, _, err = NewBurst(0, 2).Corrupt(word)
	assert.True(t, IsOutOfRange(err))
	assert.Equal(t, 1, NewBurst(1, 0).Length)
}

func TestPattern(t *testing.T) {
	word := encoding.MustParse("1011001011")

	got, flipped, err := NewPattern(encoding.MustParse("1011")).Corrupt(word)
	require.NoError(t, err)
	assert.Equal(t, "1011000000", got.String())
	assert.Equal(t, []int{7, 9, 10}, flipped)

	_, _, err = NewPattern(encoding.MustParse("10110010111")).Corrupt(word)
	assert.True(t, errors.Is(err, ErrMaskTooLong))
}

func TestRandom(t *testing.T) {
	word := encoding.MustParse("0000000000")

	got, flipped, err := NewRandom(3, 42).Corrupt(word)
	require.NoError(t, err)
	require.Len(t, flipped, 3)
	assert.Equal(t, flipped, got.Diff(word))
	assert.IsIncreasing(t, flipped)

	// same seed, same positions
	_, again, err := NewRandom(3, 42).Corrupt(word)
	require.NoError(t, err)
	assert.Equal(t, flipped, again)

	_, all, err := NewRandom(20, 1).Corrupt(encoding.MustParse("101"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, all)
}
