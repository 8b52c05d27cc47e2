package money

import (
	"fmt"
	"math/big"
)

// Rate represents a unidirectional, exact exchange rate between two
// currencies: how many units of quote are needed to exchange for 1 unit of
// base. Unlike the teacher package's ExchangeRate, which held its value at
// a bounded decimal scale, Rate holds an arbitrary-precision fraction, so it
// never itself forces a rounding decision; that only happens where a Rate
// is applied to a [FixedMoney] through a [Context].
//
// The zero value is not a valid Rate; use [NewRate].
type Rate struct {
	base  Currency
	quote Currency
	value *big.Rat
}

// NewRate returns a new exchange rate between base and quote.
//
// NewRate returns an [InvalidArgumentError] if rate is not positive, or if
// base and quote are the same currency but rate is not exactly 1.
func NewRate(base, quote Currency, rate *big.Rat) (Rate, error) {
	if rate.Sign() <= 0 {
		return Rate{}, &InvalidArgumentError{Op: "NewRate", Msg: "exchange rate must be positive"}
	}
	one := big.NewRat(1, 1)
	if base.alpha == quote.alpha && rate.Cmp(one) != 0 {
		return Rate{}, &InvalidArgumentError{Op: "NewRate", Msg: "exchange rate between a currency and itself must be exactly 1"}
	}
	return Rate{base: base, quote: quote, value: new(big.Rat).Set(rate)}, nil
}

// MustNewRate is like [NewRate] but panics on error.
func MustNewRate(base, quote Currency, rate *big.Rat) Rate {
	r, err := NewRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("MustNewRate(%v, %v, %v) failed: %v", base, quote, rate, err))
	}
	return r
}

// ParseRate converts currency codes and a decimal or fraction rate string
// into a Rate.
func ParseRate(base, quote, rate string) (Rate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return Rate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return Rate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	d, ok := new(big.Rat).SetString(rate)
	if !ok {
		return Rate{}, &NumberFormatError{Op: "ParseRate", Input: rate}
	}
	return NewRate(b, q, d)
}

// Base returns the currency being exchanged.
func (r Rate) Base() Currency { return r.base }

// Quote returns the currency being obtained in exchange for the base
// currency.
func (r Rate) Quote() Currency { return r.quote }

// Rat returns the underlying exact rate. Callers must not mutate it.
func (r Rate) Rat() *big.Rat { return r.value }

// Mul returns a Rate with the same base and quote currencies, scaled by a
// positive factor.
//
// Mul returns an [InvalidArgumentError] if factor is not positive.
func (r Rate) Mul(factor *big.Rat) (Rate, error) {
	if factor.Sign() <= 0 {
		return Rate{}, &InvalidArgumentError{Op: "Rate.Mul", Msg: "factor must be positive"}
	}
	return Rate{base: r.base, quote: r.quote, value: new(big.Rat).Mul(r.value, factor)}, nil
}

// Inv returns the inverse rate, from quote to base.
func (r Rate) Inv() Rate {
	return Rate{base: r.quote, quote: r.base, value: new(big.Rat).Inv(r.value)}
}

// CanConvert reports whether [Rate.Convert] can be applied to m.
func (r Rate) CanConvert(m FixedMoney) bool {
	return m.currency.alpha == r.base.alpha
}

// Convert returns m converted from the base currency to the quote currency,
// exactly, before any rounding; call [RationalMoney.To] on the result to
// round it into a context.
//
// Convert returns a [MoneyMismatchError] if m's currency does not match the
// rate's base currency.
func (r Rate) Convert(m FixedMoney) (RationalMoney, error) {
	if !r.CanConvert(m) {
		return RationalMoney{}, &MoneyMismatchError{Op: "Rate.Convert", Kind: "currency", A: m, B: r}
	}
	product := new(big.Rat).Mul(m.toRationalValue(), r.value)
	return NewRationalMoney(product, r.quote), nil
}

// SameCurr reports whether r and q are denominated in the same base and
// quote currencies.
func (r Rate) SameCurr(q Rate) bool {
	return q.base.alpha == r.base.alpha && q.quote.alpha == r.quote.alpha
}

// String returns "<BASE>/<QUOTE> <rate>", e.g. "USD/EUR 11/10".
func (r Rate) String() string {
	if r.value.IsInt() {
		return fmt.Sprintf("%s/%s %s", r.base, r.quote, r.value.Num().String())
	}
	return fmt.Sprintf("%s/%s %s", r.base, r.quote, r.value.RatString())
}

// AsRatProvider adapts a single Rate into an [ExchangeRateProvider] that
// answers only for that exact base/quote pair (and its exact inverse).
type AsRatProvider struct {
	rate Rate
}

// NewAsRatProvider wraps a single Rate as a provider.
func NewAsRatProvider(r Rate) *AsRatProvider { return &AsRatProvider{rate: r} }

// Rate implements [ExchangeRateProvider].
func (p *AsRatProvider) Rate(base, quote Currency) (*big.Rat, error) {
	if base.alpha == quote.alpha {
		return big.NewRat(1, 1), nil
	}
	if base.alpha == p.rate.base.alpha && quote.alpha == p.rate.quote.alpha {
		return new(big.Rat).Set(p.rate.value), nil
	}
	if base.alpha == p.rate.quote.alpha && quote.alpha == p.rate.base.alpha {
		return new(big.Rat).Inv(p.rate.value), nil
	}
	return nil, &CurrencyConversionError{Source: base.alpha, Target: quote.alpha}
}
