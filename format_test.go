package qrcode

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatWordHammingDistance checks spec.md §8 property 4: pairwise
// Hamming distance of all 32 (EC, mask) format words is >= 7.
func TestFormatWordHammingDistance(t *testing.T) {
	var words []int
	for ec := 0; ec < 4; ec++ {
		for mask := 0; mask < 8; mask++ {
			words = append(words, formatWord(ECLevel(ec), mask))
		}
	}
	for i := range words {
		for j := i + 1; j < len(words); j++ {
			dist := bits.OnesCount(uint(words[i] ^ words[j]))
			if dist < 7 {
				t.Fatalf("format words %d and %d have Hamming distance %d < 7", i, j, dist)
			}
		}
	}
}

// TestVersionWordV7 checks spec.md §8 scenario S4.
func TestVersionWordV7(t *testing.T) {
	word := versionWord(7)
	// 000111 followed by BCH-12 remainder 110010010100.
	want := 0b000111_110010010100
	assert.Equal(t, want, word)
}

func TestIntToBitsMSB(t *testing.T) {
	bits := intToBitsMSB(0b101, 3)
	assert.Equal(t, []bool{true, false, true}, bits)
}
