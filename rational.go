package money

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// RationalMoney is an exact monetary value backed by an arbitrary-precision
// fraction. Unlike [FixedMoney], it is never implicitly rounded: every
// arithmetic operation on a RationalMoney is exact, and the only way to
// obtain a rounded, fixed-scale value is [RationalMoney.To].
//
// The fraction is held as a separate numerator and denominator rather than a
// [big.Rat], so that it can carry extra common factors until
// [RationalMoney.Simplified] is explicitly called — e.g. combining a value
// scaled to 4 decimal places with one scaled to 2 decimal places yields a
// fraction over their common denominator, not one pre-reduced to lowest
// terms. den is always positive.
type RationalMoney struct {
	num      *big.Int
	den      *big.Int
	currency Currency
}

// newRationalMoney builds a RationalMoney from a numerator and a
// (possibly-unsimplified) denominator, normalising the sign so den is always
// positive.
func newRationalMoney(num, den *big.Int, curr Currency) RationalMoney {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return RationalMoney{num: n, den: d, currency: curr}
}

// NewRationalMoney constructs a RationalMoney from an exact fraction.
func NewRationalMoney(amount *big.Rat, curr Currency) RationalMoney {
	return newRationalMoney(amount.Num(), amount.Denom(), curr)
}

// ZeroRationalMoney returns a zero-valued RationalMoney in curr.
func ZeroRationalMoney(curr Currency) RationalMoney {
	return RationalMoney{num: big.NewInt(0), den: big.NewInt(1), currency: curr}
}

// ParseRationalMoney constructs a RationalMoney from a decimal string,
// preserving the string's own scale as the fraction's denominator (e.g.
// "3.50" becomes 350/100, not the reduced 7/2) until [RationalMoney.Simplified]
// is called.
func ParseRationalMoney(currCode, amountStr string) (RationalMoney, error) {
	curr, err := ParseCurr(currCode)
	if err != nil {
		return RationalMoney{}, fmt.Errorf("currency parsing: %w", err)
	}
	d, err := decimal.Parse(amountStr)
	if err != nil {
		return RationalMoney{}, &NumberFormatError{Op: "ParseRationalMoney", Input: amountStr, Err: err}
	}
	num, den := decimalToRatParts(d)
	return newRationalMoney(num, den, curr), nil
}

// Currency returns the currency this value is denominated in.
func (m RationalMoney) Currency() Currency { return m.currency }

// Rat returns the exact fraction reduced to a [big.Rat]. Since [big.Rat]
// always normalises to lowest terms, this loses any unsimplified common
// factor that [RationalMoney.String] and [RationalMoney.MarshalJSON] still
// expose; use it for numeric computation, not for round-tripping the wire
// representation.
func (m RationalMoney) Rat() *big.Rat { return new(big.Rat).SetFrac(m.num, m.den) }

// SameCurrency reports whether m and that are denominated in the same
// currency.
func (m RationalMoney) SameCurrency(that RationalMoney) bool {
	return m.currency.alpha == that.currency.alpha
}

// IsZero reports whether the amount is zero.
func (m RationalMoney) IsZero() bool { return m.num.Sign() == 0 }

// Sign returns -1, 0, or +1 according to the sign of the amount.
func (m RationalMoney) Sign() int { return m.num.Sign() }

// Plus returns the exact sum of m and that. The result's denominator is the
// product of both operands' denominators, not pre-reduced: combining
// 1.1234 and 987.65 yields 988773400/1000000, not 9887734/10000 — call
// [RationalMoney.Simplified] to reduce it.
//
// Plus returns a [MoneyMismatchError] if the currencies differ.
func (m RationalMoney) Plus(that RationalMoney) (RationalMoney, error) {
	if !m.SameCurrency(that) {
		return RationalMoney{}, &MoneyMismatchError{Op: "Plus", Kind: "currency", A: m, B: that}
	}
	num := new(big.Int).Add(
		new(big.Int).Mul(m.num, that.den),
		new(big.Int).Mul(that.num, m.den),
	)
	den := new(big.Int).Mul(m.den, that.den)
	return newRationalMoney(num, den, m.currency), nil
}

// Minus returns the exact difference of m and that, unsimplified in the same
// way as [RationalMoney.Plus].
//
// Minus returns a [MoneyMismatchError] if the currencies differ.
func (m RationalMoney) Minus(that RationalMoney) (RationalMoney, error) {
	if !m.SameCurrency(that) {
		return RationalMoney{}, &MoneyMismatchError{Op: "Minus", Kind: "currency", A: m, B: that}
	}
	num := new(big.Int).Sub(
		new(big.Int).Mul(m.num, that.den),
		new(big.Int).Mul(that.num, m.den),
	)
	den := new(big.Int).Mul(m.den, that.den)
	return newRationalMoney(num, den, m.currency), nil
}

// MultipliedBy returns the exact product of m and factor, unsimplified.
func (m RationalMoney) MultipliedBy(factor *big.Rat) RationalMoney {
	num := new(big.Int).Mul(m.num, factor.Num())
	den := new(big.Int).Mul(m.den, factor.Denom())
	return newRationalMoney(num, den, m.currency)
}

// DividedBy returns the exact quotient of m and divisor, unsimplified.
//
// DividedBy returns a [DivisionByZeroError] if divisor is zero.
func (m RationalMoney) DividedBy(divisor *big.Rat) (RationalMoney, error) {
	if divisor.Sign() == 0 {
		return RationalMoney{}, &DivisionByZeroError{Op: "DividedBy"}
	}
	num := new(big.Int).Mul(m.num, divisor.Denom())
	den := new(big.Int).Mul(m.den, divisor.Num())
	return newRationalMoney(num, den, m.currency), nil
}

// Negated returns m with the opposite sign.
func (m RationalMoney) Negated() RationalMoney {
	return RationalMoney{num: new(big.Int).Neg(m.num), den: new(big.Int).Set(m.den), currency: m.currency}
}

// Abs returns the absolute value of m.
func (m RationalMoney) Abs() RationalMoney {
	if m.num.Sign() < 0 {
		return m.Negated()
	}
	return RationalMoney{num: new(big.Int).Set(m.num), den: new(big.Int).Set(m.den), currency: m.currency}
}

// Simplified returns m with its fraction reduced, like [Context]'s Auto
// variant stripping shared trailing decimal zeros from numerator and
// denominator — e.g. 988773400/1000000 becomes 9887734/10000 — rather than
// reducing to lowest terms by an arbitrary common factor.
func (m RationalMoney) Simplified() RationalMoney {
	if m.num.Sign() == 0 {
		return RationalMoney{num: big.NewInt(0), den: big.NewInt(1), currency: m.currency}
	}
	num := new(big.Int).Set(m.num)
	den := new(big.Int).Set(m.den)
	ten := big.NewInt(10)
	for {
		nq, nr := new(big.Int).QuoRem(num, ten, new(big.Int))
		dq, dr := new(big.Int).QuoRem(den, ten, new(big.Int))
		if nr.Sign() != 0 || dr.Sign() != 0 {
			break
		}
		num, den = nq, dq
	}
	return RationalMoney{num: num, den: den, currency: m.currency}
}

// To projects m onto a [FixedMoney] under ctx, rounding under mode.
func (m RationalMoney) To(ctx Context, mode RoundingMode) (FixedMoney, error) {
	return createFromRat(m.Rat(), m.currency, ctx, mode)
}

// CompareTo compares m and that numerically, returning -1, 0, or +1.
//
// CompareTo returns a [MoneyMismatchError] if the currencies differ.
func (m RationalMoney) CompareTo(that RationalMoney) (int, error) {
	if !m.SameCurrency(that) {
		return 0, &MoneyMismatchError{Op: "CompareTo", Kind: "currency", A: m, B: that}
	}
	lhs := new(big.Int).Mul(m.num, that.den)
	rhs := new(big.Int).Mul(that.num, m.den)
	return lhs.Cmp(rhs), nil
}

// String returns "<ALPHA> <numerator>/<denominator>", or just "<ALPHA>
// <numerator>" when the denominator is 1.
func (m RationalMoney) String() string {
	if m.den.Cmp(big.NewInt(1)) == 0 {
		return fmt.Sprintf("%s %s", m.currency.String(), m.num.String())
	}
	return fmt.Sprintf("%s %s/%s", m.currency.String(), m.num.String(), m.den.String())
}

type rationalMoneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON implements [json.Marshaler]. The amount is encoded as
// "<numerator>/<denominator>", preserving any unsimplified common factor.
func (m RationalMoney) MarshalJSON() ([]byte, error) {
	return json.Marshal(rationalMoneyJSON{
		Amount:   m.num.String() + "/" + m.den.String(),
		Currency: m.currency.alpha,
	})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (m *RationalMoney) UnmarshalJSON(data []byte) error {
	var aux rationalMoneyJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	numStr, denStr, ok := strings.Cut(aux.Amount, "/")
	num, numOK := new(big.Int).SetString(numStr, 10)
	if !numOK {
		return &NumberFormatError{Op: "RationalMoney.UnmarshalJSON", Input: aux.Amount}
	}
	den := big.NewInt(1)
	if ok {
		var denOK bool
		den, denOK = new(big.Int).SetString(denStr, 10)
		if !denOK {
			return &NumberFormatError{Op: "RationalMoney.UnmarshalJSON", Input: aux.Amount}
		}
	}
	curr, err := ParseCurr(aux.Currency)
	if err != nil {
		return err
	}
	*m = newRationalMoney(num, den, curr)
	return nil
}
