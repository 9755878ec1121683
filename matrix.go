package qrcode

import "math"

// cornerSize is the side length of a finder pattern, per spec.md §3.
const cornerSize = 7

// alignmentBlockSize is the side length of an alignment pattern, per
// spec.md §3.
const alignmentBlockSize = 5

// symbolMatrix holds the S×S module grid and its function mask during
// layout, per spec.md §3. mat[r][c] is the module's current value (dark =
// true); functionMask[r][c] is true when the module is ordinary data (may be
// steered/masked), false when it is part of a function pattern.
//
// Grounded on the teacher's addFinderPattern/timing/alignment/reserve-format
// loops in encoder.go, generalized to all versions 2-40 using the alignment
// center formula from original_source/qrgen/QRmatrix.py's
// _compute_alignment_block_centers (the teacher only hardcodes V2-V4).
type symbolMatrix struct {
	size         int
	mat          [][]bool
	functionMask [][]bool
}

func newSymbolMatrix(version int) *symbolMatrix {
	size := 4*version + 17
	m := &symbolMatrix{
		size:         size,
		mat:          make([][]bool, size),
		functionMask: make([][]bool, size),
	}
	for i := range m.mat {
		m.mat[i] = make([]bool, size)
		row := make([]bool, size)
		for j := range row {
			row[j] = true
		}
		m.functionMask[i] = row
	}
	return m
}

func (m *symbolMatrix) markFunction(r, c int) {
	m.functionMask[r][c] = false
}

// addFinderAndTiming places the three finder patterns, the separators
// (implicitly, via the function-mask exclusion below), the dark module, and
// the two timing strips. Returns the number of modules occupied, per
// spec.md §4.F steps 1-3.
func (m *symbolMatrix) addFinderAndTiming() int {
	size := m.size

	placeFinder := func(topRow, topCol int) {
		for i := 0; i < cornerSize; i++ {
			for j := 0; j < cornerSize; j++ {
				dark := i == 0 || i == cornerSize-1 || j == 0 || j == cornerSize-1 ||
					(i >= 2 && i <= cornerSize-3 && j >= 2 && j <= cornerSize-3)
				m.mat[topRow+i][topCol+j] = dark
			}
		}
	}
	placeFinder(0, 0)
	placeFinder(0, size-cornerSize)
	placeFinder(size-cornerSize, 0)

	// Exclude the finders and their separators from the function mask
	// (matches original_source QRmatrix.py's _add_corner_and_timing: a
	// (cornerSize+2)-wide border is excluded, one module wider than the
	// finder itself to cover the separator ring). The three corner regions
	// are not all square: the two edges away from a given finder only need
	// the (cornerSize+1)-wide separator, not the full +2 margin.
	for i := 0; i < cornerSize+2; i++ {
		for j := 0; j < cornerSize+2; j++ {
			m.markFunction(i, j) // top-left: 9x9
		}
	}
	for i := 0; i < cornerSize+2; i++ {
		for j := 0; j < cornerSize+1; j++ {
			m.markFunction(i, size-1-j) // top-right: 9 rows x 8 cols
		}
	}
	for i := 0; i < cornerSize+1; i++ {
		for j := 0; j < cornerSize+2; j++ {
			m.markFunction(size-1-i, j) // bottom-left: 8 rows x 9 cols
		}
	}

	// Dark module, always dark, at (S-8, 8).
	m.mat[size-cornerSize-1][cornerSize+1] = true

	// Timing strips: row 6 and column 6, alternating starting dark,
	// between the two separators.
	for i := cornerSize + 1; i < size-(cornerSize+1); i++ {
		dark := i%2 == 0
		m.mat[cornerSize-1][i] = dark
		m.markFunction(cornerSize-1, i)
		m.mat[i][cornerSize-1] = dark
		m.markFunction(i, cornerSize-1)
	}

	numCornerBits := 3*(cornerSize+1)*(cornerSize+1) + 1
	numTimingBits := 2 * (size - 2*(cornerSize+1))
	return numCornerBits + numTimingBits
}

// alignmentCenters returns the (row, col) centers of every alignment
// pattern for this version, excluding the three that overlap the finders,
// per spec.md §4.F step 4.
func alignmentCenters(version, size int) [][2]int {
	if version < 2 {
		return nil
	}
	numPerSide := 2 + version/7
	dist := math.Ceil(0.5 * math.Ceil(4*float64(version+1)/float64(numPerSide-1)-0.5))

	coords := make([]int, numPerSide)
	coords[0] = cornerSize - 1
	for i := 0; i < numPerSide-1; i++ {
		coords[numPerSide-1-i] = size - cornerSize - 2*int(math.Round(float64(i)*dist))
	}

	var centers [][2]int
	for _, r := range coords {
		for _, c := range coords {
			if (r == cornerSize-1 && c == cornerSize-1) ||
				(r == cornerSize-1 && c == coords[numPerSide-1]) ||
				(r == coords[numPerSide-1] && c == cornerSize-1) {
				continue
			}
			centers = append(centers, [2]int{r, c})
		}
	}
	return centers
}

// addAlignmentPatterns places every alignment pattern and returns the
// number of modules occupied, per spec.md §4.F step 4.
func (m *symbolMatrix) addAlignmentPatterns(version int) int {
	centers := alignmentCenters(version, m.size)
	for _, rc := range centers {
		r, c := rc[0], rc[1]
		for i := -2; i <= 2; i++ {
			for j := -2; j <= 2; j++ {
				dark := i == -2 || i == 2 || j == -2 || j == 2 || (i == 0 && j == 0)
				m.mat[r+i][c+j] = dark
				m.markFunction(r+i, c+j)
			}
		}
	}
	return len(centers) * alignmentBlockSize * alignmentBlockSize
}

// addVersionInfo places the two copies of the 18-bit version word (V>=7),
// per spec.md §4.F step 6 / §4.I. bits is MSB-first (bits[0] is the version
// word's bit 17, bits[17] is its bit 0).
//
// Ported directly from original_source/qrgen/QRmatrix.py's
// _add_version_info, which assigns three 6-tall columns (rows 0..5) their
// bits in strided order (index n-3-3k, n-2-3k, n-1-3k for row k) and mirrors
// the same three values into three 6-wide rows for the second copy.
func (m *symbolMatrix) addVersionInfo(bits []bool) {
	const n = 18
	size := m.size
	colA := make([]bool, 6) // placed in the column nearest the finder
	colB := make([]bool, 6)
	colC := make([]bool, 6) // placed in the column farthest from the finder
	for k := 0; k < 6; k++ {
		colA[k] = bits[n-3-3*k]
		colB[k] = bits[n-2-3*k]
		colC[k] = bits[n-1-3*k]
	}

	colAIdx := size - cornerSize - 2
	colBIdx := size - cornerSize - 3
	colCIdx := size - cornerSize - 4

	for row := 0; row < 6; row++ {
		// Top-right strip: a 6-row x 3-col block left of the top-right finder.
		m.mat[row][colAIdx] = colA[row]
		m.markFunction(row, colAIdx)
		m.mat[row][colBIdx] = colB[row]
		m.markFunction(row, colBIdx)
		m.mat[row][colCIdx] = colC[row]
		m.markFunction(row, colCIdx)

		// Bottom-left strip: the transposed mirror, above the bottom-left finder.
		m.mat[colAIdx][row] = colA[row]
		m.markFunction(colAIdx, row)
		m.mat[colBIdx][row] = colB[row]
		m.markFunction(colBIdx, row)
		m.mat[colCIdx][row] = colC[row]
		m.markFunction(colCIdx, row)
	}
}

// reserveFormatArea marks the two format-info strips as non-modifiable. The
// actual bits are written later (component H/I) once the winning mask is
// known. Per spec.md §4.F step 5.
func (m *symbolMatrix) reserveFormatArea() {
	size := m.size
	for i := 0; i <= cornerSize+1; i++ {
		m.markFunction(cornerSize+1, i)
		m.markFunction(i, cornerSize+1)
	}
	for i := 0; i < cornerSize+1; i++ {
		m.markFunction(cornerSize+1, size-1-i)
		m.markFunction(size-1-i, cornerSize+1)
	}
}

// writeFormatInfo writes the two copies of a 15-bit format word into the
// reserved strips around the top-left finder, per spec.md §4.F step 5 /
// §4.I. word's bit 0 (LSB) sits at (0,8) and (8,size-1); bit 14 (MSB) sits
// at (8,0) and (size-1,8). The dark module at (size-8,8) is left untouched.
// Ported directly from the teacher's format
// placement switch in encoder.go, generalized to any symbol size.
func (m *symbolMatrix) writeFormatInfo(word int) {
	size := m.size
	set := func(r, c int, bit bool) { m.mat[r][c] = bit }

	for i := 0; i < 15; i++ {
		bit := (word>>uint(i))&1 == 1

		switch {
		case i <= 5:
			set(i, cornerSize+1, bit)
		case i == 6:
			set(cornerSize, cornerSize+1, bit) // skip the timing row
		case i == 7:
			set(cornerSize+1, cornerSize+1, bit)
		case i == 8:
			set(cornerSize+1, cornerSize, bit) // skip the timing column
		default: // 9..14
			set(cornerSize+1, 14-i, bit)
		}

		if i < 8 {
			set(cornerSize+1, size-1-i, bit)
		} else {
			set(size-cornerSize+(i-8), cornerSize+1, bit)
		}
	}
}
