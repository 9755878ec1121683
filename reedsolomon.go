package qrcode

// rsGenerator builds the degree-n Reed-Solomon generator polynomial
// ∏_{i=0..n-1} (x - α^i) over GF(2^8), represented highest-degree-coefficient
// first. Grounded on the teacher's GenerateGeneratorPoly, cross-checked
// against original_source/qrgen/error_correction.py's construct_EC_poly and
// spec.md §8 scenario S6 (rs_generator(10)).
func rsGenerator(n int) []int {
	gen := []int{1}
	for i := 0; i < n; i++ {
		gen = polyMul(gen, []int{1, gfAntilog[i]})
	}
	return gen
}

// computeECCodewords returns the n error-correction codewords for a single
// data block, computed as the remainder of (data * x^n) / generator(n) over
// GF(2^8). Grounded on the teacher's CalculateECCodewords, cross-checked
// against original_source/qrgen/error_correction.py's compute_EC_bytes.
func computeECCodewords(data []int, n int) []int {
	generator := rsGenerator(n)
	padded := make([]int, len(data)+n)
	copy(padded, data)
	return polyDivMod(padded, generator)
}
