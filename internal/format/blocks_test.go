package format

import (
	"testing"

	"github.com/harlequix/ecsim/internal/encoding"
	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	block := NewBlock(4)
	assert.False(t, block.Ready())
	assert.Equal(t, "____", block.String())

	block.SetBit(2, encoding.ONE)
	block.SetBit(4, encoding.ZERO)
	assert.Equal(t, "_1_0", block.String())

	full := FromBits(encoding.MustParse("1011"))
	assert.True(t, full.Ready())
	assert.Equal(t, 4, full.Len())
	assert.Equal(t, "1011", full.String())
}

func TestSkeleton(t *testing.T) {
	assert.Equal(t, "__1_011_001", Skeleton(encoding.MustParse("1011001")).String())
	assert.Equal(t, "__1", Skeleton(encoding.MustParse("1")).String())
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "    ^", Marker(11, 5))
	assert.Equal(t, "^ ^", Marker(4, 1, 3, 9, 0))
	assert.Equal(t, "", Marker(3))
}

func TestParityMarker(t *testing.T) {
	assert.Equal(t, "ppdpdddpddd", ParityMarker(11))
}

func TestGroup(t *testing.T) {
	bits := encoding.MustParse("1011001011")
	assert.Equal(t, "1011 0010 11", Group(bits, 4))
	assert.Equal(t, "1011001011", Group(bits, 0))
	assert.Equal(t, "101", Group(encoding.MustParse("101"), 4))
}

func TestPositions(t *testing.T) {
	assert.Equal(t, "-", Positions(nil))
	assert.Equal(t, "3,7,9", Positions([]int{3, 7, 9}))
}
