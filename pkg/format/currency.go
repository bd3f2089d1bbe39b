package format

import (
	"fmt"
	"math"
	"strings"
)

// currencySymbols maps ISO currency codes to display symbols. Codes without
// a conventional symbol are rendered with the code as a prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"RUB": "₽",
}

// Currency returns a currency string with the symbol for the given ISO code
// and thousands separators (e.g., "-$1,234.56", "UZS 12,600.00").
func Currency(amount float64, code string) string {
	symbol, ok := currencySymbols[code]
	if !ok {
		if code == "" {
			symbol = "$"
		} else {
			symbol = code + " "
		}
	}

	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
