package uodecode

// Frame geometry, fixed by the UO bitstream format.
const (
	numSubframes     = 4
	stepsPerSubframe = 12
	subframeSamples  = 48
	FrameSamples     = numSubframes * subframeSamples // 192
	FrameBytes       = 48

	lagBufferSize       = 169
	synthesisBufferSize = 10
	lsfOrder            = 10
	lpcLength           = lsfOrder + 1 // lpc[0]=1 plus 10 coefficients

	gainLevelMin = -32.0
	gainLevelMax = 28.0
)

// Decoder holds the full persistent state of a UO frame decoder. A zero
// Decoder is not ready to use; construct one with NewDecoder. Instances
// own all of their state exclusively and never share it; multiple
// Decoders may run concurrently without coordination.
type Decoder struct {
	havePrevLSF bool              // false until the first frame has been decoded
	prevLSF     [lsfOrder]float64 // previous frame's LSFs, for interpolation

	synthesisBuffer [synthesisBufferSize]float64 // LPC synthesis filter history
	lagBuffer       [lagBufferSize]float64       // long-term (pitch) predictor history

	currentGainLevel  float64 // gain level after the most recent codebook step
	previousGainLevel float64 // gain level before the most recent codebook step

	currentGainEnergy  [3]float64 // decaying energy accumulator fed by currentGainLevel
	previousGainEnergy [3]float64 // decaying energy accumulator fed by currentGainLevel*previousGainLevel

	codebookGainPower float64 // power applied to currentGainLevel to form the codebook gain
}

// NewDecoder returns a Decoder in its post-reset state, ready to decode
// the first frame of a stream.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset clears all cross-frame state, as required before decoding the
// first frame after a stream (re)start (UO block type 0x0140).
func (d *Decoder) Reset() {
	d.havePrevLSF = false
	d.prevLSF = [lsfOrder]float64{}
	d.synthesisBuffer = [synthesisBufferSize]float64{}
	d.lagBuffer = [lagBufferSize]float64{}
	d.currentGainLevel = gainLevelMin
	d.previousGainLevel = gainLevelMin
	d.currentGainEnergy = [3]float64{}
	d.previousGainEnergy = [3]float64{}
	d.codebookGainPower = 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
