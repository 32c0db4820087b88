package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MarginPercent calcula a margem de lucro (lucro / vendas) em percentual,
// arredondada a duas casas. Vendas zero resulta em margem zero.
func MarginPercent(profit, sales float64) float64 {
	if sales == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(profit / sales * 100)
}
