package currency

import (
	"github.com/pkg/errors"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits is used when rendering without rounding.
const maxFractionDigits = 15

// FormatAmount renders amount in the given currency using the locale
// registered for that currency. When rounded is true the amount is rounded
// to the currency's customary number of fraction digits; otherwise the full
// precision of the value is preserved.
func (r *Registry) FormatAmount(symbol string, amount float64, rounded bool) (string, error) {
	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return "", err
	}

	record, ok := r.FindBySymbol(normalized)
	if !ok {
		return "", errors.Errorf("unknown currency symbol: %s", normalized)
	}

	unit, err := xcurrency.ParseISO(normalized)
	if err != nil {
		return "", errors.Wrapf(err, "unknown currency symbol: %s", normalized)
	}

	printer := message.NewPrinter(record.Locale)

	scale, _ := xcurrency.Cash.Rounding(unit)
	var dec interface{}
	if rounded {
		dec = number.Decimal(amount, number.Scale(scale))
	} else {
		dec = number.Decimal(amount,
			number.MinFractionDigits(scale),
			number.MaxFractionDigits(maxFractionDigits))
	}

	return printer.Sprint(xcurrency.Symbol(unit)) + printer.Sprint(dec), nil
}

// Format renders amount in the given currency at full precision, using the
// default registry's locale for that currency.
func Format(symbol string, amount float64) (string, error) {
	return Default().FormatAmount(symbol, amount, false)
}

// FormatRounded is like Format but rounds to the currency's customary
// number of fraction digits.
func FormatRounded(symbol string, amount float64) (string, error) {
	return Default().FormatAmount(symbol, amount, true)
}
