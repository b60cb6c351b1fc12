package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type currencyFormat struct {
	code   string
	symbol string
	suffix bool
}

var currencies = map[Language]currencyFormat{
	English: {code: "USD", symbol: "$"},
	Turkish: {code: "TRY", symbol: "₺"},
	German:  {code: "EUR", symbol: "€", suffix: true},
}

// CurrencyCode returns the ISO code used for the language.
func CurrencyCode(lang Language) string {
	return currencies[normalize(lang)].code
}

// FormatPrice formats the amount in the currency of lang, with the
// language's digit grouping: en 1,234.50 $ prefix, de 1.234,50 € suffix.
func FormatPrice(lang Language, amount float64) string {
	lang = normalize(lang)
	format := currencies[lang]
	p := message.NewPrinter(lang.Tag())

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	number := p.Sprintf("%.2f", amount)
	if format.suffix {
		return sign + number + " " + format.symbol
	}
	return sign + format.symbol + number
}

func (l Language) Tag() language.Tag {
	switch l {
	case Turkish:
		return language.Turkish
	case German:
		return language.German
	default:
		return language.English
	}
}
