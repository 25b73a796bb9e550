package frankfurter

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/ethauvin/frankfurter-go/pkg/currency"
)

// dateLayout is the wire format used by the API for all dates.
const dateLayout = "2006-01-02"

// Date is a calendar date as used on the wire (YYYY-MM-DD, no time of day).
// It marshals as JSON text, which also makes it usable as a JSON map key in
// SeriesRates. Dates are pinned to UTC midnight so parsed and constructed
// values compare equal.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Format(dateLayout)), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON and UnmarshalJSON shadow the promoted time.Time methods,
// which would otherwise force the RFC 3339 wire format.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// ExchangeRates is the response for a latest or historical rates request:
// the value of Amount units of Base in each requested currency on Date.
type ExchangeRates struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   Date               `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// RateFor returns the rate for the given symbol. The symbol is normalized
// before lookup; blank or malformed symbols simply report no rate.
func (e *ExchangeRates) RateFor(symbol string) (float64, bool) {
	normalized, err := currency.NormalizeSymbol(symbol)
	if err != nil {
		return 0, false
	}
	rate, ok := e.Rates[normalized]
	return rate, ok
}

// HasRateFor reports whether a rate is present for the given symbol.
func (e *ExchangeRates) HasRateFor(symbol string) bool {
	_, ok := e.RateFor(symbol)
	return ok
}

// Symbols returns the sorted set of symbols present in the response.
func (e *ExchangeRates) Symbols() []string {
	symbols := make([]string, 0, len(e.Rates))
	for symbol := range e.Rates {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// SeriesRates is the response for a time series request: per-day rate maps
// over the requested date range.
type SeriesRates struct {
	Amount    float64                     `json:"amount"`
	Base      string                      `json:"base"`
	StartDate Date                        `json:"start_date"`
	EndDate   Date                        `json:"end_date"`
	Rates     map[Date]map[string]float64 `json:"rates"`
}

// Dates returns the sorted dates present in the series.
func (s *SeriesRates) Dates() []Date {
	dates := make([]Date, 0, len(s.Rates))
	for d := range s.Rates {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j].Time) })
	return dates
}

// HasRatesFor reports whether the series has any rates on the given date.
func (s *SeriesRates) HasRatesFor(date Date) bool {
	_, ok := s.Rates[date]
	return ok
}

// RatesFor returns the rate map for the given date.
func (s *SeriesRates) RatesFor(date Date) (map[string]float64, bool) {
	rates, ok := s.Rates[date]
	return rates, ok
}

// RateFor returns the rate for a symbol on a date. The symbol is normalized
// before lookup.
func (s *SeriesRates) RateFor(date Date, symbol string) (float64, bool) {
	rates, ok := s.Rates[date]
	if !ok {
		return 0, false
	}
	normalized, err := currency.NormalizeSymbol(symbol)
	if err != nil {
		return 0, false
	}
	rate, ok := rates[normalized]
	return rate, ok
}

// HasSymbolFor reports whether a rate exists for a symbol on a date.
func (s *SeriesRates) HasSymbolFor(date Date, symbol string) bool {
	_, ok := s.RateFor(date, symbol)
	return ok
}
