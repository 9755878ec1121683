package qrcode

// splitBlocks partitions the data codeword stream into blocks per the
// capacity record's groups: group 1's blocks first, then group 2's, per
// spec.md §4.E. Grounded on
// original_source/qrgen/interlacing.py's split_data_in_blocks.
func splitBlocks(data []byte, rec capacityRecord) [][]int {
	lengths := rec.blockLengths()
	blocks := make([][]int, len(lengths))
	idx := 0
	for i, n := range lengths {
		block := make([]int, n)
		for j := 0; j < n; j++ {
			block[j] = int(data[idx])
			idx++
		}
		blocks[i] = block
	}
	return blocks
}

// interleave produces the final codeword order: data columns first (the
// longer group's blocks contribute their extra trailing codeword once the
// shorter blocks are exhausted), then EC columns, per spec.md §4.E.
// Grounded on original_source/qrgen/interlacing.py's interlace_blocks.
func interleave(dataBlocks, ecBlocks [][]int) []int {
	if len(dataBlocks) == 0 {
		return nil
	}
	minDataLen := len(dataBlocks[0])
	maxDataLen := minDataLen
	for _, b := range dataBlocks {
		if len(b) < minDataLen {
			minDataLen = len(b)
		}
		if len(b) > maxDataLen {
			maxDataLen = len(b)
		}
	}
	ecLen := 0
	if len(ecBlocks) > 0 {
		ecLen = len(ecBlocks[0])
	}

	total := 0
	for _, b := range dataBlocks {
		total += len(b)
	}
	for _, b := range ecBlocks {
		total += len(b)
	}
	result := make([]int, 0, total)

	for col := 0; col < minDataLen; col++ {
		for _, block := range dataBlocks {
			result = append(result, block[col])
		}
	}
	// Only the longer blocks contribute the final column, per spec.md §4.E.
	if maxDataLen > minDataLen {
		for _, block := range dataBlocks {
			if len(block) > minDataLen {
				result = append(result, block[minDataLen])
			}
		}
	}

	for col := 0; col < ecLen; col++ {
		for _, block := range ecBlocks {
			result = append(result, block[col])
		}
	}

	return result
}

// codewordsToBits converts a list of codewords into a flat bit slice,
// MSB-first per codeword, per spec.md §4.E.
func codewordsToBits(codewords []int) []bool {
	bits := make([]bool, 0, len(codewords)*8)
	for _, cw := range codewords {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (cw>>uint(i))&1 == 1)
		}
	}
	return bits
}
