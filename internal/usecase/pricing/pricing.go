// Package pricing computes the risk-adjusted monthly rate and the simple-interest
// repayment figures for a loan. Interest is flat over the whole term; it is not
// an amortization schedule.
package pricing

import "github.com/shopspring/decimal"

var (
	BaseRate = decimal.RequireFromString("2.5")
	MinRate  = decimal.RequireFromString("1.5")
	MaxRate  = decimal.RequireFromString("5.0")

	adjustment = decimal.RequireFromString("0.5")

	lowIncomeBelow   = decimal.NewFromInt(5000)
	highIncomeAbove  = decimal.NewFromInt(15000)
	largeAmountAbove = decimal.NewFromInt(10000)

	hundred = decimal.NewFromInt(100)
)

// InterestRate returns the monthly rate in percent. A nil income counts as zero.
func InterestRate(amount decimal.Decimal, monthlyIncome *decimal.Decimal) decimal.Decimal {
	income := decimal.Zero
	if monthlyIncome != nil {
		income = *monthlyIncome
	}

	rate := BaseRate
	switch {
	case income.LessThan(lowIncomeBelow):
		rate = rate.Add(adjustment)
	case income.GreaterThan(highIncomeAbove):
		rate = rate.Sub(adjustment)
	}
	if amount.GreaterThan(largeAmountAbove) {
		rate = rate.Add(adjustment)
	}

	if rate.LessThan(MinRate) {
		return MinRate
	}
	if rate.GreaterThan(MaxRate) {
		return MaxRate
	}
	return rate
}

// TotalAmount is amount * (1 + rate/100 * termMonths).
func TotalAmount(amount decimal.Decimal, termMonths int, ratePercent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(ratePercent.Div(hundred).Mul(decimal.NewFromInt(int64(termMonths))))
	return amount.Mul(factor)
}

// MonthlyPayment is TotalAmount spread evenly over the term.
// A non-positive term has no schedule and yields zero.
func MonthlyPayment(amount decimal.Decimal, termMonths int, ratePercent decimal.Decimal) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	return TotalAmount(amount, termMonths, ratePercent).Div(decimal.NewFromInt(int64(termMonths)))
}

type Quote struct {
	Rate           decimal.Decimal
	MonthlyPayment decimal.Decimal
	TotalAmount    decimal.Decimal
}

// NewQuote prices a loan, rounding money to cents.
func NewQuote(amount decimal.Decimal, termMonths int, monthlyIncome *decimal.Decimal) Quote {
	rate := InterestRate(amount, monthlyIncome)
	return Quote{
		Rate:           rate,
		MonthlyPayment: MonthlyPayment(amount, termMonths, rate).Round(2),
		TotalAmount:    TotalAmount(amount, termMonths, rate).Round(2),
	}
}
