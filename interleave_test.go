package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBlocksTwoGroups(t *testing.T) {
	rec := capacityRecord{
		dataCodewords: 10,
		ecPerBlock:    5,
		groups: []blockGroup{
			{blocks: 2, dataPerLen: 3},
			{blocks: 1, dataPerLen: 4},
		},
	}
	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(i)
	}
	blocks := splitBlocks(data, rec)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8, 9}}, blocks)
}

func TestInterleaveSingleBlock(t *testing.T) {
	data := [][]int{{1, 2, 3}}
	ec := [][]int{{9, 8}}
	got := interleave(data, ec)
	assert.Equal(t, []int{1, 2, 3, 9, 8}, got)
}

func TestInterleaveUnevenBlocks(t *testing.T) {
	// Shorter block first, longer block contributes its trailing codeword
	// only after the shared columns, per spec.md §4.E.
	data := [][]int{{1, 2}, {3, 4, 5}}
	ec := [][]int{{9}, {9}}
	got := interleave(data, ec)
	assert.Equal(t, []int{1, 3, 2, 4, 5, 9, 9}, got)
}

func TestCodewordsToBitsMSBFirst(t *testing.T) {
	bits := codewordsToBits([]int{0b10110000})
	assert.Equal(t, []bool{true, false, true, true, false, false, false, false}, bits)
}
