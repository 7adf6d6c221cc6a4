package decimalx

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func MustFromString(s string) decimal.Decimal {
	res, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return res
}

// PctChange returns the percentage change from prev to cur.
// prev must be non-zero.
func PctChange(prev, cur decimal.Decimal) decimal.Decimal {
	return cur.Sub(prev).Div(prev).Mul(hundred)
}
