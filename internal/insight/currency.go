package insight

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when a purchase order carries no currency code.
const DefaultCurrency = "USD"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount in the given ISO currency, e.g. "$1,234.50".
// Unknown codes fall back to a plain two-decimal dollar format.
func FormatCurrency(amount decimal.Decimal, code string) (out string) {
	value := amount.InexactFloat64()

	defer func() {
		if r := recover(); r != nil {
			out = fallbackCurrency(value)
		}
	}()

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fallbackCurrency(value)
	}

	scale, _ := currency.Standard.Rounding(unit)
	symbol := printer.Sprint(currency.Symbol(unit))
	digits := printer.Sprint(number.Decimal(abs(value), number.Scale(scale)))

	if value < 0 {
		return "-" + symbol + digits
	}

	return symbol + digits
}

func fallbackCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
