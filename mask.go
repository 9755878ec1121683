package qrcode

// Mask pattern generation and penalty scoring, per spec.md §4.H. Grounded on
// original_source/qrgen/pattern_mask.py's gen_pmasks and eval_qrmat, which is
// the complete scoring implementation in the pack (the QRcode variant's
// format.go/score_mask is an unfinished stub). The corner-pattern penalty
// here deliberately matches the original's simplified single-window scan
// (an 11-cell straight match/mirror-match of the finder's 1:1:3:1:1 ratio,
// rather than the full ISO N3 rule with light-module lookahead) since
// spec.md defers exact N3 semantics to whatever the reference produces.
const (
	maskPenaltyRun    = 3
	maskPenaltyBlock  = 3
	maskPenaltyCorner = 40
	maskPenaltyHom    = 10
)

var cornerPenaltyPattern = []bool{true, false, true, true, true, false, true, false, false, false, false}

// maskPredicate reports whether mask id should flip module (r, c), per
// spec.md §4.H's eight formulas.
func maskPredicate(id, r, c int) bool {
	switch id {
	case 0:
		return (r+c)%2 == 0
	case 1:
		return r%2 == 0
	case 2:
		return c%3 == 0
	case 3:
		return (r+c)%3 == 0
	case 4:
		return (r/2+c/3)%2 == 0
	case 5:
		return (r*c)%2+(r*c)%3 == 0
	case 6:
		return ((r*c)%2+(r*c)%3)%2 == 0
	case 7:
		return ((r+c)%2+(r*c)%3)%2 == 0
	default:
		return false
	}
}

// applyMask returns a copy of mat with maskID XORed into every module where
// functionMask is true (ordinary data), per spec.md §4.H.
func applyMask(mat, functionMask [][]bool, maskID int) [][]bool {
	size := len(mat)
	out := make([][]bool, size)
	for r := 0; r < size; r++ {
		out[r] = make([]bool, size)
		for c := 0; c < size; c++ {
			v := mat[r][c]
			if functionMask[r][c] && maskPredicate(maskID, r, c) {
				v = !v
			}
			out[r][c] = v
		}
	}
	return out
}

// scorePenalty computes the total penalty for a fully-masked matrix, per
// spec.md §4.H: N1 (runs of >=5 same-colour modules), N2 (2x2 same-colour
// blocks), N3 (finder-like 1:1:3:1:1 patterns), N4 (deviation from a 50/50
// dark/light balance).
func scorePenalty(mat [][]bool) int {
	size := len(mat)
	penalty := 0

	for i := 0; i < size; i++ {
		hrun, vrun := 1, 1
		for j := 1; j < size; j++ {
			if mat[i][j] == mat[i][j-1] {
				hrun++
			} else {
				if hrun >= 5 {
					penalty += maskPenaltyRun + hrun - 5
				}
				hrun = 1
			}
			if mat[j][i] == mat[j-1][i] {
				vrun++
			} else {
				if vrun >= 5 {
					penalty += maskPenaltyRun + vrun - 5
				}
				vrun = 1
			}
		}
		if hrun >= 5 {
			penalty += maskPenaltyRun + hrun - 5
		}
		if vrun >= 5 {
			penalty += maskPenaltyRun + vrun - 5
		}
	}

	for i := 1; i < size; i++ {
		for j := 1; j < size; j++ {
			if mat[i][j] == mat[i-1][j-1] && mat[i-1][j-1] == mat[i-1][j] && mat[i-1][j] == mat[i][j-1] {
				penalty += maskPenaltyBlock
			}
		}
	}

	patLen := len(cornerPenaltyPattern)
	for i := 0; i < size; i++ {
		for j := 0; j <= size-patLen; j++ {
			rowWindow := make([]bool, patLen)
			colWindow := make([]bool, patLen)
			for k := 0; k < patLen; k++ {
				rowWindow[k] = mat[i][j+k]
				colWindow[k] = mat[j+k][i]
			}
			penalty += maskPenaltyCorner * countCornerMatches(rowWindow)
			penalty += maskPenaltyCorner * countCornerMatches(colWindow)
		}
	}

	darkCount := 0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if mat[i][j] {
				darkCount++
			}
		}
	}
	frac := float64(darkCount) / float64(size*size)
	dev := frac - 0.5
	if dev < 0 {
		dev = -dev
	}
	penalty += int(dev*20) * maskPenaltyHom

	return penalty
}

// countCornerMatches reports how many of {forward, reversed} match the
// finder-ratio window exactly, per pattern_mask.py's count_matches (window
// length equals the pattern length, so this is 0 (no match), 1 (one
// orientation matches), or 2 (both match, which needs a palindromic
// pattern; cornerPenaltyPattern is not one)).
func countCornerMatches(window []bool) int {
	count := 0
	if boolSliceEqual(window, cornerPenaltyPattern) {
		count++
	}
	if boolSliceEqualReversed(window, cornerPenaltyPattern) {
		count++
	}
	return count
}

func boolSliceEqual(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func boolSliceEqualReversed(a, b []bool) bool {
	n := len(b)
	for i := range a {
		if a[i] != b[n-1-i] {
			return false
		}
	}
	return true
}

// selectMask tries all 8 mask patterns against mat/functionMask, writes each
// candidate's format word into its reserved strips, scores the result, and
// returns the winning mask id together with its final matrix, per spec.md
// §4.H.
func selectMask(mat, functionMask [][]bool, ec ECLevel) (int, [][]bool) {
	bestID := -1
	var bestMat [][]bool
	bestPenalty := -1

	size := len(mat)

	for id := 0; id < 8; id++ {
		candidateMask := copyMatrix(mat)
		candidateFunc := functionMask // format strip writes don't change functionMask

		trial := &symbolMatrix{size: size, mat: candidateMask, functionMask: candidateFunc}
		trial.writeFormatInfo(formatWord(ec, id))

		masked := applyMask(trial.mat, functionMask, id)
		penalty := scorePenalty(masked)

		pkgLogger.Debugf("mask %d penalty %d", id, penalty)

		if bestPenalty == -1 || penalty < bestPenalty {
			bestPenalty = penalty
			bestID = id
			bestMat = masked
		}
	}
	return bestID, bestMat
}

func copyMatrix(mat [][]bool) [][]bool {
	out := make([][]bool, len(mat))
	for i, row := range mat {
		out[i] = append([]bool(nil), row...)
	}
	return out
}
