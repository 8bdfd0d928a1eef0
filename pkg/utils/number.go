package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais. Usada na
// pontuação do ranking, que é apresentada como valor monetário simplificado
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
