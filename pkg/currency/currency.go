// Package currency maintains the in-memory table of known currencies and
// the lookup, formatting, and refresh machinery around it.
package currency

import (
	"context"

	"golang.org/x/text/language"
)

// Currency is an immutable currency record. Symbol is a 3-letter ISO-like
// code, Name the human readable full name, and Locale the language tag used
// for number formatting (decimal separator, grouping, symbol placement).
// Two records with identical field values are interchangeable.
type Currency struct {
	Symbol string
	Name   string
	Locale language.Tag
}

// Lister fetches the canonical symbol to name currency map from a remote
// source. Implemented by the frankfurter subpackage.
type Lister interface {
	Currencies(ctx context.Context) (map[string]string, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func(ctx context.Context) (map[string]string, error)

func (f ListerFunc) Currencies(ctx context.Context) (map[string]string, error) {
	return f(ctx)
}

// defaultCurrencies returns the built-in currency set. The locale for each
// entry matches a real-world region so formatting comes out right.
func defaultCurrencies() []Currency {
	return []Currency{
		{"AUD", "Australian Dollar", language.MustParse("en-AU")},
		{"BGN", "Bulgarian Lev", language.MustParse("bg-BG")},
		{"BRL", "Brazilian Real", language.MustParse("pt-BR")},
		{"CAD", "Canadian Dollar", language.MustParse("en-CA")},
		{"CHF", "Swiss Franc", language.MustParse("de-CH")},
		{"CNY", "Chinese Renminbi Yuan", language.MustParse("zh-CN")},
		{"CZK", "Czech Koruna", language.MustParse("cs-CZ")},
		{"DKK", "Danish Krone", language.MustParse("da-DK")},
		{"EUR", "Euro", language.MustParse("de-DE")},
		{"GBP", "British Pound", language.MustParse("en-GB")},
		{"HKD", "Hong Kong Dollar", language.MustParse("zh-HK")},
		{"HUF", "Hungarian Forint", language.MustParse("hu-HU")},
		{"IDR", "Indonesian Rupiah", language.MustParse("id-ID")},
		{"ILS", "Israeli New Sheqel", language.MustParse("he-IL")},
		{"INR", "Indian Rupee", language.MustParse("hi-IN")},
		{"ISK", "Icelandic Króna", language.MustParse("is-IS")},
		{"JPY", "Japanese Yen", language.MustParse("ja-JP")},
		{"KRW", "South Korean Won", language.MustParse("ko-KR")},
		{"MXN", "Mexican Peso", language.MustParse("es-MX")},
		{"MYR", "Malaysian Ringgit", language.MustParse("ms-MY")},
		{"NOK", "Norwegian Krone", language.MustParse("no-NO")},
		{"NZD", "New Zealand Dollar", language.MustParse("en-NZ")},
		{"PHP", "Philippine Peso", language.MustParse("fil-PH")},
		{"PLN", "Polish Złoty", language.MustParse("pl-PL")},
		{"RON", "Romanian Leu", language.MustParse("ro-RO")},
		{"SEK", "Swedish Krona", language.MustParse("sv-SE")},
		{"SGD", "Singapore Dollar", language.MustParse("en-SG")},
		{"THB", "Thai Baht", language.MustParse("th-TH")},
		{"TRY", "Turkish Lira", language.MustParse("tr-TR")},
		{"USD", "United States Dollar", language.MustParse("en-US")},
		{"ZAR", "South African Rand", language.MustParse("en-ZA")},
	}
}

// DefaultCurrencyCount is the number of built-in currencies seeded at
// construction and by Reset.
const DefaultCurrencyCount = 31
