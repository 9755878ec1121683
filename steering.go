package qrcode

// steerData writes bits into the matrix's data modules in the zigzag order
// mandated by spec.md §4.G. The cursor starts at the bottom-right corner and
// climbs two columns at a time, alternating horizontal and diagonal steps; on
// reaching an edge it shifts one column left and reverses vertical direction.
// The column-6 timing strip is skipped entirely, since it was already placed
// by addFinderAndTiming.
//
// Ported directly from original_source/qrgen/QRmatrix.py's add_data, which
// the teacher's own zigzag loop in encoder.go approximates only for the
// versions it hardcodes; this generalizes it to every version 1-40.
func (m *symbolMatrix) steerData(bits []bool) {
	vdir := 1 // 1 climbs (row decreases) on the diagonal step, -1 descends
	hflag := true

	row, col := m.size-1, m.size-1
	index := 0
	n := len(bits)

	for index < n {
		if m.functionMask[row][col] {
			m.mat[row][col] = bits[index]
			index++
		}

		if col == cornerSize-1 {
			col--
		}

		var nextRow, nextCol int
		if hflag {
			nextRow, nextCol = row, col-1
		} else {
			nextRow, nextCol = row-vdir, col+1
		}
		hflag = !hflag

		if nextRow < 0 || nextRow >= m.size {
			col--
			vdir *= -1
			hflag = true
		} else {
			row, col = nextRow, nextCol
		}
	}
}
