package uodecode

// lagBufferAt returns lagBuffer[idx], treating out-of-range indices as the
// zero-initialized history a freshly reset decoder would have held there.
// The read offset R = W - lag - 1 can go negative for large raw lag values
// at the early codebook steps of a subframe (small W); the bitstream producer contract is that this does
// not happen in practice, but the decoder must never panic on it, so
// reads outside [0, lagBufferSize) are treated as zero rather than
// indexed unsafely.
func (d *Decoder) lagBufferAt(idx int) float64 {
	if idx < 0 || idx >= lagBufferSize {
		return 0
	}
	return d.lagBuffer[idx]
}

// pitchVector computes the 4-sample long-term-prediction contribution for
// codebook step v of a subframe. coeffs holds the subframe's three halved
// lag coefficients (c0 most recent, c2 oldest) and lag is the subframe's
// 7-bit raw pitch lag.
func (d *Decoder) pitchVector(coeffs [3]float64, lag int, v int) [4]float64 {
	w := lagBufferSize - subframeSamples + 4*v
	r := w - lag - 1

	c0, c1, c2 := coeffs[0], coeffs[1], coeffs[2]

	var pitch [4]float64
	for i := 0; i < 4; i++ {
		pitch[i] = d.lagBufferAt(r+i)*c2 + d.lagBufferAt(r+i+1)*c1 + d.lagBufferAt(r+i+2)*c0
	}
	return pitch
}
