package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var million = decimal.NewFromInt(1_000_000)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundDollars rounds the money amount to whole dollars
func (m Money) RoundDollars() Money {
	return Money{m.Decimal.Round(0)}
}

// Millions returns the amount expressed in millions
func (m Money) Millions() decimal.Decimal {
	return m.Decimal.Div(million)
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders whole dollars with thousands separators, e.g. "$12,345,678".
func (m Money) Format() string {
	d := m.RoundDollars().Decimal
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + printer.Sprintf("%d", d.IntPart())
}

// FormatMillions renders the amount in millions with one decimal, e.g. "$12.3M".
func (m Money) FormatMillions() string {
	return "$" + m.Millions().StringFixed(1) + "M"
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b.Decimal) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b.Decimal) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}
