package output

import (
	"fmt"
	"strconv"

	"github.com/exitsim/exit-value-estimator/pkg/money"
)

// FormatCurrency formats dollars with thousands separators and no cents.
func FormatCurrency(amount float64) string { return money.NewMoney(amount).Format() }

// FormatCurrencyCents formats dollars with two decimals.
func FormatCurrencyCents(amount float64) string { return "$" + money.NewMoney(amount).String() }

// FormatMillions formats dollars as $MM with one decimal.
func FormatMillions(amount float64) string { return money.NewMoney(amount).FormatMillions() }

// FormatPercentage formats a fraction (0.3) as a percentage (30.00%).
func FormatPercentage(rate float64) string { return fmt.Sprintf("%.2f%%", rate*100) }

func formatFloat(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }
