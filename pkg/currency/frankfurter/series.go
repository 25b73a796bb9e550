package frankfurter

import (
	"context"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"

	"github.com/ethauvin/frankfurter-go/pkg/currency"
)

// TimeSeriesCall builds a time series rates request over a date range. The
// start date is required; an open end means "up to today".
type TimeSeriesCall struct {
	client  *Client
	amount  float64
	base    string
	start   Date
	end     Date
	symbols *treeset.Set
	err     error
}

// Series starts a time series request. Defaults: amount 1, base EUR, all
// symbols, open-ended range.
func (c *Client) Series() *TimeSeriesCall {
	return &TimeSeriesCall{
		client:  c,
		amount:  1,
		base:    EUR,
		symbols: treeset.NewWithStringComparator(),
	}
}

// Amount sets the amount to convert.
func (s *TimeSeriesCall) Amount(amount float64) *TimeSeriesCall {
	s.amount = amount
	return s
}

// Base sets the base currency.
func (s *TimeSeriesCall) Base(symbol string) *TimeSeriesCall {
	normalized, err := currency.NormalizeSymbol(symbol)
	if err != nil {
		s.setErr(err)
		return s
	}
	s.base = normalized
	return s
}

// Start sets the inclusive start of the range.
func (s *TimeSeriesCall) Start(date Date) *TimeSeriesCall {
	if err := ValidateDate(date); err != nil {
		s.setErr(err)
		return s
	}
	s.start = date
	return s
}

// End sets the inclusive end of the range. Leaving it unset requests rates
// through the present.
func (s *TimeSeriesCall) End(date Date) *TimeSeriesCall {
	if err := ValidateDate(date); err != nil {
		s.setErr(err)
		return s
	}
	s.end = date
	return s
}

// Symbols restricts the response to the given target currencies.
func (s *TimeSeriesCall) Symbols(symbols ...string) *TimeSeriesCall {
	for _, symbol := range symbols {
		normalized, err := currency.NormalizeSymbol(symbol)
		if err != nil {
			s.setErr(err)
			return s
		}
		s.symbols.Add(normalized)
	}
	return s
}

// Fetch performs the request.
func (s *TimeSeriesCall) Fetch(ctx context.Context) (*SeriesRates, error) {
	if s.err != nil {
		return nil, s.err
	}

	if s.start.IsZero() {
		return nil, errors.New("the start date is required")
	}

	path := s.start.String() + ".."
	if !s.end.IsZero() {
		if s.end.Before(s.start.Time) {
			return nil, errors.New("the end date must be on or after the start date")
		}
		path += s.end.String()
	}

	var rates SeriesRates
	if err := s.client.get(ctx, path, ratesQuery(s.amount, s.base, s.symbols), &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}

func (s *TimeSeriesCall) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}
