package uodecode

import (
	"math"

	"github.com/HornedViper/uodecode/internal/bits"
	"github.com/HornedViper/uodecode/internal/tables"
)

// subframeParams holds the bit-unpacked lag parameters for one subframe.
type subframeParams struct {
	coeffs [3]float64 // halved (a0, a1, a2) from SubframeLagCoefficients
	lag    int        // 7-bit raw lag, 0..127
}

// DecodeFrame decodes a single 48-byte UO frame starting at offset within
// buf and returns its 192 synthesized samples. It never fails: a
// truncated buf simply yields the bit reader's zero-padded tail. State
// carries across calls; call Reset between streams.
func (d *Decoder) DecodeFrame(buf []byte, offset int) [FrameSamples]float64 {
	end := offset + FrameBytes
	if end > len(buf) {
		end = len(buf)
	}
	var frameBuf []byte
	if offset < end {
		frameBuf = buf[offset:end]
	}
	r := bits.NewReader(frameBuf, 0)

	var subframes [numSubframes]subframeParams
	for s := 0; s < numSubframes; s++ {
		coeffIdx := r.GetBits(6)
		subframes[s].coeffs = tables.SubframeLagCoefficients[coeffIdx]
		subframes[s].lag = int(r.GetBits(7))
	}

	var lsf [lsfOrder]float64
	for i := 0; i < lsfOrder; i++ {
		idx := r.GetBits(tables.LSFIndexBits[i])
		lsf[i] = tables.LSFTable[i][idx]
	}

	var out [FrameSamples]float64
	for s := 0; s < numSubframes; s++ {
		lpc := d.subframeLPC(lsf, s)

		for i := subframeSamples; i < lagBufferSize; i++ {
			d.lagBuffer[i-subframeSamples] = d.lagBuffer[i]
		}

		for v := 0; v < stepsPerSubframe; v++ {
			initialGainEnergy2 := d.currentGainEnergy[2]

			updateGainEnergy(&d.currentGainEnergy, d.currentGainLevel, d.currentGainLevel)
			updateGainEnergy(&d.previousGainEnergy, d.currentGainLevel, d.previousGainLevel)

			if s != 0 && v == 0 {
				d.codebookGainPower = selectCodebookGainPower(
					initialGainEnergy2, d.currentGainEnergy[2], d.previousGainEnergy[2])
			}

			codebookGainLevel := clamp(d.codebookGainPower*d.currentGainLevel, gainLevelMin, gainLevelMax)
			codebookGain := math.Pow(10, (codebookGainLevel+32)/20)

			sign := r.GetBits(1)
			index := r.GetBits(5)

			d.previousGainLevel = d.currentGainLevel
			d.currentGainLevel = codebookGainLevel + tables.CodebookDeltaGain[index]

			if sign == 1 {
				codebookGain = -codebookGain
			}

			pitch := d.pitchVector(subframes[s].coeffs, subframes[s].lag, v)

			vec := tables.CodebookVectorTable[index]
			var combined [4]float64
			for i := 0; i < 4; i++ {
				combined[i] = codebookGain*vec[i] + pitch[i]
			}

			w := lagBufferSize - subframeSamples + 4*v
			for i := 0; i < 4; i++ {
				d.lagBuffer[w+i] = combined[i]
			}

			lpcSynthesize(combined, &d.synthesisBuffer, lpc)

			base := (s*stepsPerSubframe + v) * 4
			for i := 0; i < 4; i++ {
				out[base+i] = d.synthesisBuffer[synthesisBufferSize-5+i]
			}
		}
	}

	d.prevLSF = lsf
	d.havePrevLSF = true

	return out
}
