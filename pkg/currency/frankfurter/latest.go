package frankfurter

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/ethauvin/frankfurter-go/pkg/currency"
)

// LatestRatesCall builds a latest or historical rates request. Parameters
// are validated as they are set; the first validation failure is reported
// by Fetch. Calls are not safe for concurrent mutation.
type LatestRatesCall struct {
	client  *Client
	amount  float64
	base    string
	date    Date
	symbols *treeset.Set
	err     error
}

// Latest starts a rates request against the latest published reference
// rates. Defaults: amount 1, base EUR, all symbols.
func (c *Client) Latest() *LatestRatesCall {
	return &LatestRatesCall{
		client:  c,
		amount:  1,
		base:    EUR,
		symbols: treeset.NewWithStringComparator(),
	}
}

// Amount sets the amount to convert.
func (l *LatestRatesCall) Amount(amount float64) *LatestRatesCall {
	l.amount = amount
	return l
}

// Base sets the base currency. The symbol must be three ASCII letters.
func (l *LatestRatesCall) Base(symbol string) *LatestRatesCall {
	normalized, err := currency.NormalizeSymbol(symbol)
	if err != nil {
		l.setErr(err)
		return l
	}
	l.base = normalized
	return l
}

// On requests historical rates for the given date instead of the latest
// ones. Dates before MinDate are rejected.
func (l *LatestRatesCall) On(date Date) *LatestRatesCall {
	if err := ValidateDate(date); err != nil {
		l.setErr(err)
		return l
	}
	l.date = date
	return l
}

// Symbols restricts the response to the given target currencies. Symbols
// are normalized and deduplicated; the emitted query lists them sorted.
func (l *LatestRatesCall) Symbols(symbols ...string) *LatestRatesCall {
	for _, symbol := range symbols {
		normalized, err := currency.NormalizeSymbol(symbol)
		if err != nil {
			l.setErr(err)
			return l
		}
		l.symbols.Add(normalized)
	}
	return l
}

// Fetch performs the request.
func (l *LatestRatesCall) Fetch(ctx context.Context) (*ExchangeRates, error) {
	if l.err != nil {
		return nil, l.err
	}

	path := "latest"
	if !l.date.IsZero() {
		path = l.date.String()
	}

	var rates ExchangeRates
	if err := l.client.get(ctx, path, ratesQuery(l.amount, l.base, l.symbols), &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}

func (l *LatestRatesCall) setErr(err error) {
	if l.err == nil {
		l.err = err
	}
}

// ratesQuery assembles the query parameters shared by latest and series
// requests. API defaults (amount 1, base EUR, all symbols) are elided.
func ratesQuery(amount float64, base string, symbols *treeset.Set) url.Values {
	query := url.Values{}

	if amount > 1 {
		query.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	}
	if base != EUR {
		query.Set("base", base)
	}
	if !symbols.Empty() {
		values := symbols.Values()
		joined := make([]string, len(values))
		for i, v := range values {
			joined[i] = v.(string)
		}
		query.Set("symbols", strings.Join(joined, ","))
	}
	return query
}
