package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRSGeneratorS6 checks spec.md §8 scenario S6.
func TestRSGeneratorS6(t *testing.T) {
	want := []int{1, 216, 194, 159, 111, 199, 94, 95, 113, 157, 193}
	assert.Equal(t, want, rsGenerator(10))
}

// TestComputeECCodewordsS2 checks spec.md §8 scenario S2's EC codewords for
// the (1,M) data codewords.
func TestComputeECCodewordsS2(t *testing.T) {
	data := []int{0x10, 0x20, 0x0C, 0x56, 0x61, 0x80, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11}
	want := []int{0xA5, 0x24, 0xD4, 0xC1, 0xED, 0x36, 0xC7, 0x87, 0x2C, 0x55}
	got := computeECCodewords(data, 10)
	assert.Equal(t, want, got)
}

func TestComputeECCodewordsLengthMatchesN(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	ec := computeECCodewords(data, 7)
	assert.Len(t, ec, 7)
}
