package uodecode

// lpcSynthesize applies the LPC synthesis filter to a codebook step's
// 4-sample combined excitation, advancing the synthesis buffer in place.
// The summation order below is load-bearing: reordering these sums
// changes the low bits of the float64 result.
func lpcSynthesize(combined [4]float64, s *[synthesisBufferSize]float64, lpc [lpcLength]float64) {
	var o [4]float64

	o[0] = combined[0]
	for k := 1; k <= lsfOrder; k++ {
		o[0] -= lpc[k] * s[10-k]
	}

	o[1] = combined[1] - lpc[1]*o[0]
	for k := 2; k <= lsfOrder; k++ {
		o[1] -= lpc[k] * s[11-k]
	}

	o[2] = combined[2] - lpc[1]*o[1] - lpc[2]*o[0]
	for k := 3; k <= lsfOrder; k++ {
		o[2] -= lpc[k] * s[12-k]
	}

	o[3] = combined[3] - lpc[1]*o[2] - lpc[2]*o[1] - lpc[3]*o[0]
	for k := 4; k <= lsfOrder; k++ {
		o[3] -= lpc[k] * s[13-k]
	}

	for i := 4; i < synthesisBufferSize; i++ {
		s[i-4] = s[i]
	}
	s[6], s[7], s[8], s[9] = o[0], o[1], o[2], o[3]
}
