package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Currency represents a unit of account in which monetary amounts are
// denominated. The zero value has an empty alpha code and is not a
// catalogued currency; [XXX] is the placeholder for an unknown currency.
//
// Catalogued currencies (those registered in the ISO 4217 table embedded in
// this package) are canonical: [ParseCurr] always returns the same value for
// a given alpha or numeric code. Custom currencies (crypto assets, loyalty
// points, and similar units not present in ISO 4217) can be constructed
// directly with [NewCurrency] and are never added to the catalogue.
//
// Two currencies are equivalent if and only if their alpha codes match; see
// [Currency.Is].
type Currency struct {
	alpha  string
	num    int
	name   string
	digits int
}

// XXX is the unknown/placeholder currency, matching ISO 4217's reserved code.
var XXX = Currency{alpha: "XXX", num: 999, name: "Unknown Currency", digits: 2}

// NewCurrency constructs a currency that need not appear in the ISO 4217
// catalogue (for crypto assets or other custom units). The numeric code may
// be negative or any sentinel value the caller chooses for non-catalogued
// currencies.
//
// NewCurrency returns an [InvalidArgumentError] if digits is negative.
func NewCurrency(alpha string, num int, name string, digits int) (Currency, error) {
	if digits < 0 {
		return Currency{}, &InvalidArgumentError{Op: "NewCurrency", Msg: fmt.Sprintf("default fraction digits must be non-negative, got %d", digits)}
	}
	return Currency{alpha: strings.ToUpper(alpha), num: num, name: name, digits: digits}, nil
}

// ParseCurr resolves a currency by its alpha code (e.g. "USD", "usd") or its
// ISO 4217 numeric code (e.g. "840") against the embedded catalogue.
//
// ParseCurr returns an [UnknownCurrencyError] if the code is not catalogued.
func ParseCurr(code string) (Currency, error) {
	if c, ok := currByAlpha[strings.ToUpper(code)]; ok {
		return c, nil
	}
	if c, ok := currByNumeric[code]; ok {
		return c, nil
	}
	return Currency{}, &UnknownCurrencyError{Code: code}
}

// MustParseCurr is like [ParseCurr] but panics on error. It simplifies safe
// initialization of package-level variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("MustParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// CurrencyOfCountry resolves the currency used by an ISO 3166-1 alpha-2
// country code (e.g. "CH", "ch").
//
// CurrencyOfCountry returns an [UnknownCurrencyError] if the country is not
// indexed, has no active currency, or uses more than one currency.
func CurrencyOfCountry(iso2 string) (Currency, error) {
	codes, ok := countryIndex[strings.ToUpper(iso2)]
	if !ok || len(codes) != 1 {
		return Currency{}, &UnknownCurrencyError{Code: iso2}
	}
	return currByAlpha[codes[0]], nil
}

// AvailableCurrencies returns a copy of the catalogue, keyed by alpha code.
// Custom currencies created with [NewCurrency] are never present here.
func AvailableCurrencies() map[string]Currency {
	out := make(map[string]Currency, len(currByAlpha))
	for k, v := range currByAlpha {
		out[k] = v
	}
	return out
}

// Code returns the currency's alpha code (e.g. "USD").
func (c Currency) Code() string { return c.alpha }

// Num returns the currency's ISO 4217 numeric code.
func (c Currency) Num() int { return c.num }

// Name returns the currency's display name.
func (c Currency) Name() string { return c.name }

// DefaultFractionDigits returns the number of digits after the decimal point
// conventionally used to represent the currency's minor unit.
func (c Currency) DefaultFractionDigits() int { return c.digits }

// Is reports whether c refers to the same currency as other, which may be
// an alpha code, an ISO 4217 numeric code, or another [Currency].
func (c Currency) Is(other any) bool {
	switch v := other.(type) {
	case Currency:
		return c.alpha == v.alpha
	case string:
		if o, err := ParseCurr(v); err == nil {
			return c.alpha == o.alpha
		}
		return strings.EqualFold(c.alpha, v)
	case int:
		return c.num == v
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (c Currency) String() string { return c.alpha }

// MarshalJSON implements [json.Marshaler]. A currency encodes as a plain
// JSON string equal to its alpha code.
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.alpha)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (c *Currency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseCurr(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (c Currency) MarshalText() ([]byte, error) { return []byte(c.alpha), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Currency) UnmarshalText(text []byte) error {
	v, err := ParseCurr(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Scan implements [database/sql.Scanner].
func (c *Currency) Scan(v any) error {
	switch v := v.(type) {
	case string:
		parsed, err := ParseCurr(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case nil:
		*c = XXX
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T into Currency", v)
	}
}

// Value implements [database/sql/driver.Valuer].
func (c Currency) Value() (driver.Value, error) {
	return c.alpha, nil
}
