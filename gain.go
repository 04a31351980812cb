package uodecode

import "github.com/HornedViper/uodecode/internal/tables"

// updateGainEnergy runs the two-input decaying-accumulator filter over
// energy, updating it in place and returning the new top value
// energy[2].
func updateGainEnergy(energy *[3]float64, g1, g2 float64) float64 {
	acc := g1 * g2
	for i := 0; i < 3; i++ {
		acc += tables.GainEnergyFactor * energy[i]
		energy[i] = acc
	}
	return energy[2]
}

// selectCodebookGainPower chooses the codebook gain power for a step,
// given the top energy value captured just before this step's two energy
// updates and the values of
// currentGainEnergy[2]/previousGainEnergy[2] just after those updates, it
// walks the gain-power ratio ladder top to bottom and returns the power
// of the first row whose ratio the scaled energies fall under, or the
// fallback power if no row matches.
func selectCodebookGainPower(initialGainEnergy2, currentGainEnergy2, previousGainEnergy2 float64) float64 {
	currentEnergy := initialGainEnergy2*tables.GainEnergyFactor + currentGainEnergy2
	previousEnergy := previousGainEnergy2 * 1.88

	for i, ratio := range tables.CodebookGainPowerRatio {
		if currentEnergy*ratio < previousEnergy {
			return tables.CodebookGainPowerValue[i]
		}
	}
	return tables.FallbackCodebookGainPower
}
