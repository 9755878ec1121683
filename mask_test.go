package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMaskPredicateZeroCheckerboard(t *testing.T) {
	assert.True(t, maskPredicate(0, 0, 0))
	assert.True(t, maskPredicate(0, 1, 1))
	assert.False(t, maskPredicate(0, 0, 1))
}

// TestApplyMaskIdempotentOnDataRegion checks spec.md §8 property 7: XORing
// the same mask twice restores the original matrix.
func TestApplyMaskIdempotentOnDataRegion(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(21, 40).Draw(rt, "size")
		maskID := rapid.IntRange(0, 7).Draw(rt, "maskID")

		mat := make([][]bool, size)
		fn := make([][]bool, size)
		for r := 0; r < size; r++ {
			mat[r] = make([]bool, size)
			fn[r] = make([]bool, size)
			for c := 0; c < size; c++ {
				mat[r][c] = rapid.Bool().Draw(rt, "bit")
				fn[r][c] = rapid.Bool().Draw(rt, "function")
			}
		}

		once := applyMask(mat, fn, maskID)
		twice := applyMask(once, fn, maskID)

		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				if twice[r][c] != mat[r][c] {
					rt.Fatalf("mask not idempotent at (%d,%d)", r, c)
				}
			}
		}
	})
}

// TestApplyMaskPreservesFunctionModules checks spec.md §8 property 8:
// masking never touches modules where functionMask is false.
func TestApplyMaskPreservesFunctionModules(t *testing.T) {
	size := 21
	mat := make([][]bool, size)
	fn := make([][]bool, size)
	for r := 0; r < size; r++ {
		mat[r] = make([]bool, size)
		fn[r] = make([]bool, size)
	}
	mat[0][0] = true // a function module, never masked
	fn[0][0] = false
	mat[10][10] = true
	fn[10][10] = true // data, masked by predicate 0 since (10+10)%2==0

	out := applyMask(mat, fn, 0)
	assert.True(t, out[0][0])
	assert.False(t, out[10][10])
}

func TestScorePenaltyPrefersUniformOverRuns(t *testing.T) {
	size := 21
	checker := make([][]bool, size)
	allDark := make([][]bool, size)
	for r := 0; r < size; r++ {
		checker[r] = make([]bool, size)
		allDark[r] = make([]bool, size)
		for c := 0; c < size; c++ {
			checker[r][c] = (r+c)%2 == 0
			allDark[r][c] = true
		}
	}
	assert.Less(t, scorePenalty(checker), scorePenalty(allDark))
}

func TestCountCornerMatches(t *testing.T) {
	assert.Equal(t, 1, countCornerMatches(cornerPenaltyPattern))
	reversed := make([]bool, len(cornerPenaltyPattern))
	for i, b := range cornerPenaltyPattern {
		reversed[len(reversed)-1-i] = b
	}
	assert.GreaterOrEqual(t, countCornerMatches(reversed), 1)
}
