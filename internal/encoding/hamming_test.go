package encoding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParityBits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want int
	}{
		{1, 2},
		{2, 3},
		{4, 3},
		{5, 4},
		{7, 4},
		{11, 4},
		{12, 5},
		{26, 5},
		{27, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParityBits(tt.n), "data bits %d", tt.n)
	}
}

func TestIsParityPosition(t *testing.T) {
	t.Parallel()
	var got []uint
	for pos := uint(0); pos <= 33; pos++ {
		if IsParityPosition(pos) {
			got = append(got, pos)
		}
	}
	assert.Equal(t, []uint{1, 2, 4, 8, 16, 32}, got)
}

func TestEncodeHamming(t *testing.T) {
	t.Parallel()
	tests := []struct {
		data string
		want string
	}{
		{"1", "111"},
		{"0", "000"},
		{"10", "11100"},
		{"1011", "0110011"},
		{"1011001", "10100111001"},
		{"01000001", "100010010001"},
		{"11111111111", "111111111111111"},
		{"11010011101100", "1011101000111011100"},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := EncodeHamming(MustParse(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Len(t, got, len(tt.data)+ParityBits(len(tt.data)))
			assert.Equal(t, tt.data, ExtractData(got).String())
		})
	}
}

func TestHammingExample(t *testing.T) {
	codeword, err := EncodeHamming(MustParse("1011001"))
	require.NoError(t, err)
	require.Len(t, codeword, 11)

	received, err := codeword.Flip(5)
	require.NoError(t, err)
	assert.Equal(t, "10101111001", received.String())

	corrected, pos, err := DecodeHamming(received)
	require.NoError(t, err)
	assert.Equal(t, 5, pos)
	assert.Equal(t, codeword, corrected)
	assert.Equal(t, "10101111001", received.String(), "input must not be mutated")
}

func TestHammingCleanDecode(t *testing.T) {
	t.Parallel()
	for _, data := range []string{"1", "0", "10", "111", "1011001", "0000000000000000", "1101011100101"} {
		codeword, err := EncodeHamming(MustParse(data))
		require.NoError(t, err)
		corrected, pos, err := DecodeHamming(codeword)
		require.NoError(t, err)
		assert.Zero(t, pos, data)
		assert.Equal(t, codeword, corrected, data)
	}
}

func TestHammingCorrectsEverySingleFlip(t *testing.T) {
	t.Parallel()
	// every data word up to 9 bits, every flip position
	for n := 1; n <= 9; n++ {
		for value := 0; value < 1<<n; value++ {
			data := Zeros(n)
			for i := 0; i < n; i++ {
				if value&(1<<i) != 0 {
					data[i] = ONE
				}
			}
			codeword, err := EncodeHamming(data)
			require.NoError(t, err)
			for pos := 1; pos <= len(codeword); pos++ {
				received, err := codeword.Flip(pos)
				require.NoError(t, err)
				corrected, found, err := DecodeHamming(received)
				require.NoError(t, err)
				if !assert.Equal(t, pos, found, "data %s flip %d", data, pos) {
					return
				}
				assert.Equal(t, codeword, corrected)
			}
		}
	}
}

func TestHammingDoubleFlip(t *testing.T) {
	codeword := MustParse("10100111001")

	t.Run("miscorrected", func(t *testing.T) {
		received, _ := codeword.Flip(1)
		received, _ = received.Flip(2)
		corrected, pos, err := DecodeHamming(received)
		require.NoError(t, err)
		assert.Equal(t, 3, pos)
		assert.Equal(t, "01000111001", corrected.String())
		assert.NotEqual(t, codeword, corrected)
	})

	t.Run("syndrome past the end", func(t *testing.T) {
		received, _ := codeword.Flip(7)
		received, _ = received.Flip(8)
		corrected, pos, err := DecodeHamming(received)
		require.NoError(t, err)
		assert.Equal(t, 15, pos)
		assert.Greater(t, pos, len(received))
		assert.Equal(t, received, corrected)
	})
}

func TestHammingInvalidInput(t *testing.T) {
	t.Parallel()
	_, err := EncodeHamming(nil)
	assert.True(t, errors.Is(err, ErrEmptyBitString))
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, _, err = DecodeHamming(BitString("10a1"))
	assert.True(t, errors.Is(err, ErrNonBinary))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParityPositions(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 8}, ParityPositions(11))
	assert.Equal(t, []int{1, 2}, ParityPositions(3))
	assert.Nil(t, ParityPositions(0))
}
