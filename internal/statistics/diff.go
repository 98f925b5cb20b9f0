package statistics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentDiff is the relative change from previous to current in percent,
// rounded to 2 decimals. A zero baseline yields 100 when current is positive
// and 0 otherwise.
func PercentDiff(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

func percentDiffInt(current, previous int) decimal.Decimal {
	return PercentDiff(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
