package money

import (
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders a FixedMoney to a display string.
type Formatter func(m FixedMoney) string

// FormatWith renders m using an externally supplied formatter, so callers
// can plug in locale-aware or application-specific formatting without this
// package depending on their formatting library directly.
func (m FixedMoney) FormatWith(f Formatter) string {
	return f(m)
}

// formatterCache holds a single, most-recently-used message.Printer, since
// constructing one re-parses CLDR plural and number-format data for its
// tag. Spec leaves the cache's scope open; a single slot is the smallest
// answer that avoids rebuilding a Printer on every call in the common case
// of formatting many values for one locale in a row, at the cost of a
// rebuild whenever FormatTo alternates between two or more locales.
var formatterCache struct {
	mu      sync.Mutex
	tag     language.Tag
	printer *message.Printer
	valid   bool
}

func printerFor(tag language.Tag) *message.Printer {
	formatterCache.mu.Lock()
	defer formatterCache.mu.Unlock()
	if formatterCache.valid && formatterCache.tag == tag {
		return formatterCache.printer
	}
	p := message.NewPrinter(tag)
	formatterCache.tag = tag
	formatterCache.printer = p
	formatterCache.valid = true
	return p
}

// FormatTo renders m as a locale-formatted string under tag, using
// golang.org/x/text/currency's ISO style (e.g. "USD 1,234.50" under
// English, "USD 1.234,50" under German).
//
// If allowWholeNumber is true and m carries no fractional amount, the
// fractional part is omitted entirely (e.g. "USD 5" rather than "USD 5.00");
// otherwise the currency's standard fraction digits are always shown.
//
// FormatTo returns an [UnknownCurrencyError] if m's currency is not a
// catalogued ISO 4217 code golang.org/x/text/currency recognizes.
func (m FixedMoney) FormatTo(tag language.Tag, allowWholeNumber bool) (string, error) {
	unit, err := currency.ParseISO(m.currency.alpha)
	if err != nil {
		return "", &UnknownCurrencyError{Code: m.currency.alpha}
	}
	p := printerFor(tag)
	if allowWholeNumber && m.amount.Trunc(0).Cmp(m.amount) == 0 {
		if whole, _, ok := m.amount.Int64(); ok {
			return p.Sprintf("%v %d", unit, whole), nil
		}
	}
	f, _ := m.amount.Float64()
	return p.Sprint(currency.ISO(unit.Amount(f))), nil
}

// XTextFormatter returns a [Formatter] usable with [FixedMoney.FormatWith]
// that renders under tag using the same golang.org/x/text machinery as
// FormatTo, falling back to [FixedMoney.String] if the currency cannot be
// resolved by golang.org/x/text/currency.
func XTextFormatter(tag language.Tag) Formatter {
	return func(m FixedMoney) string {
		s, err := m.FormatTo(tag, false)
		if err != nil {
			return m.String()
		}
		return s
	}
}
