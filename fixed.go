package money

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

// FixedMoney is an immutable monetary value held at a fixed scale and step
// prescribed by its [Context]. The constructors below go through the create
// gate, which calls the context's applyTo; the arithmetic methods go through
// createFromRat, which applies the context's scale and step to the exact
// result in rational space. Quotient, allocation, Abs and Negated derive
// their results directly from an existing value's coefficient at its scale.
type FixedMoney struct {
	amount   decimal.Decimal
	currency Currency
	ctx      Context
}

// create is the single gate every FixedMoney value is constructed through.
// It recovers from any panic raised deep inside the decimal arithmetic
// (the underlying library is not itself panic-free on overflow, despite its
// own documentation's framing) and reports it as a plain error. Only values
// built through create are covered; createFromRat and the other internal
// construction paths do not recover.
func create(amount decimal.Decimal, curr Currency, ctx Context, mode RoundingMode) (fm FixedMoney, err error) {
	if ctx == nil {
		ctx = DefaultContext()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("money: create: %v", r)
		}
	}()
	applied, aerr := ctx.applyTo(amount, curr, mode)
	if aerr != nil {
		return FixedMoney{}, aerr
	}
	return FixedMoney{amount: applied, currency: curr, ctx: ctx}, nil
}

// createFromRat is the rational-space equivalent of create: every exact
// arithmetic result (sums, products, conversions) passes through here
// before being re-applied to a context.
func createFromRat(r *big.Rat, curr Currency, ctx Context, mode RoundingMode) (FixedMoney, error) {
	if ctx == nil {
		ctx = DefaultContext()
	}
	if !ctx.HasFixedScale() {
		if mode != Unnecessary {
			return FixedMoney{}, &InvalidArgumentError{Op: "create", Msg: "AutoContext requires Unnecessary rounding"}
		}
		d, err := exactRatToDecimal(r)
		if err != nil {
			return FixedMoney{}, err
		}
		return FixedMoney{amount: d.Reduce(), currency: curr, ctx: ctx}, nil
	}

	scale := ctx.scaleFor(curr)
	step := ctx.Step()
	rr := r
	if step > 1 {
		rr = new(big.Rat).Quo(r, new(big.Rat).SetInt64(int64(step)))
	}
	d, err := roundRatToScale(rr, scale, mode)
	if err != nil {
		return FixedMoney{}, err
	}
	if step > 1 {
		d = d.MulExact(decimal.New(int64(step), 0), scale)
	}
	return FixedMoney{amount: d, currency: curr, ctx: ctx}, nil
}

// NewFixedMoney constructs a FixedMoney from a decimal amount.
func NewFixedMoney(amount decimal.Decimal, curr Currency, ctx Context, mode RoundingMode) (FixedMoney, error) {
	return create(amount, curr, ctx, mode)
}

// ParseFixedMoney constructs a FixedMoney by parsing both the currency and
// the amount from strings.
func ParseFixedMoney(currCode, amountStr string, ctx Context, mode RoundingMode) (FixedMoney, error) {
	curr, err := ParseCurr(currCode)
	if err != nil {
		return FixedMoney{}, fmt.Errorf("currency parsing: %w", err)
	}
	d, err := decimal.Parse(amountStr)
	if err != nil {
		return FixedMoney{}, &NumberFormatError{Op: "ParseFixedMoney", Input: amountStr, Err: err}
	}
	return create(d, curr, ctx, mode)
}

// MustParseFixedMoney is like [ParseFixedMoney] but panics on error.
func MustParseFixedMoney(currCode, amountStr string, ctx Context, mode RoundingMode) FixedMoney {
	m, err := ParseFixedMoney(currCode, amountStr, ctx, mode)
	if err != nil {
		panic(err)
	}
	return m
}

// NewFixedMoneyFromInt constructs a FixedMoney from a whole-unit integer
// amount (e.g. 100 means "100.00 USD" under the Default context).
func NewFixedMoneyFromInt(amount int64, curr Currency, ctx Context, mode RoundingMode) (FixedMoney, error) {
	return create(decimal.New(amount, 0), curr, ctx, mode)
}

// NewFixedMoneyFromFloat constructs a FixedMoney from a float64 amount. As
// with any floating-point input, the value may not be exactly representable;
// it is converted via its shortest decimal round-trip representation before
// rounding into the requested context.
func NewFixedMoneyFromFloat(amount float64, curr Currency, ctx Context, mode RoundingMode) (FixedMoney, error) {
	d, err := decimal.Parse(strconv.FormatFloat(amount, 'f', -1, 64))
	if err != nil {
		return FixedMoney{}, &NumberFormatError{Op: "NewFixedMoneyFromFloat", Input: strconv.FormatFloat(amount, 'g', -1, 64), Err: err}
	}
	return create(d, curr, ctx, mode)
}

// NewFixedMoneyFromMinorUnits constructs a FixedMoney from an amount
// expressed in the currency's minor units (e.g. cents for USD).
func NewFixedMoneyFromMinorUnits(minorAmount int64, curr Currency, ctx Context, mode RoundingMode) (FixedMoney, error) {
	return create(decimal.New(minorAmount, curr.DefaultFractionDigits()), curr, ctx, mode)
}

// ZeroFixedMoney returns a zero-valued FixedMoney in the context's
// prescribed form. Zero is always exactly representable, under any context.
func ZeroFixedMoney(curr Currency, ctx Context) FixedMoney {
	m, err := create(decimal.New(0, 0), curr, ctx, Unnecessary)
	if err != nil {
		panic(fmt.Sprintf("money: ZeroFixedMoney(%v) failed unexpectedly: %v", curr, err))
	}
	return m
}

// Currency returns the currency this value is denominated in.
func (m FixedMoney) Currency() Currency { return m.currency }

// Context returns the context this value was created under.
func (m FixedMoney) Context() Context { return m.ctx }

// Decimal returns the underlying fixed-scale decimal amount.
func (m FixedMoney) Decimal() decimal.Decimal { return m.amount }

// Scale returns the number of digits after the decimal point.
func (m FixedMoney) Scale() int { return m.amount.Scale() }

// Sign returns -1, 0, or +1 according to the sign of the amount.
func (m FixedMoney) Sign() int { return m.amount.Sign() }

// IsZero reports whether the amount is zero.
func (m FixedMoney) IsZero() bool { return m.amount.IsZero() }

// IsNeg reports whether the amount is negative.
func (m FixedMoney) IsNeg() bool { return m.amount.IsNeg() }

// IsPos reports whether the amount is positive.
func (m FixedMoney) IsPos() bool { return m.amount.IsPos() }

// SameCurrency reports whether m and that are denominated in the same
// currency.
func (m FixedMoney) SameCurrency(that FixedMoney) bool {
	return m.currency.alpha == that.currency.alpha
}

// SameContext reports whether m and that were created under structurally
// equal contexts (Default == Default; Cash(n) == Cash(n); Custom(s,t) ==
// Custom(s,t); Auto == Auto) — not object identity.
func (m FixedMoney) SameContext(that FixedMoney) bool {
	return m.ctx == that.ctx
}

func (m FixedMoney) toRationalValue() *big.Rat {
	return decimalToRat(m.amount)
}

// ToRational promotes m to an exact [RationalMoney], losing no precision.
// The promoted value keeps m's own scale as its denominator (e.g. "3.50"
// becomes 350/100) rather than a pre-reduced fraction; call
// [RationalMoney.Simplified] to reduce it.
func (m FixedMoney) ToRational() RationalMoney {
	num, den := decimalToRatParts(m.amount)
	return newRationalMoney(num, den, m.currency)
}

// Plus returns the (possibly rounded) sum of m and that.
//
// Plus returns a [MoneyMismatchError] if the currencies differ, or if the
// contexts differ (in which case the error suggests using that.ToRational()).
func (m FixedMoney) Plus(that FixedMoney, mode RoundingMode) (FixedMoney, error) {
	if !m.SameCurrency(that) {
		return FixedMoney{}, &MoneyMismatchError{Op: "Plus", Kind: "currency", A: m, B: that}
	}
	if !m.SameContext(that) {
		return FixedMoney{}, &MoneyMismatchError{Op: "Plus", Kind: "context", A: m, B: that}
	}
	sum := new(big.Rat).Add(m.toRationalValue(), that.toRationalValue())
	return createFromRat(sum, m.currency, m.ctx, mode)
}

// PlusAmount returns the (possibly rounded) sum of m and a bare numeric
// amount denominated in m's currency and context.
func (m FixedMoney) PlusAmount(amount decimal.Decimal, mode RoundingMode) (FixedMoney, error) {
	sum := new(big.Rat).Add(m.toRationalValue(), decimalToRat(amount))
	return createFromRat(sum, m.currency, m.ctx, mode)
}

// Minus returns the (possibly rounded) difference of m and that. See [FixedMoney.Plus]
// for the currency/context mismatch rules.
func (m FixedMoney) Minus(that FixedMoney, mode RoundingMode) (FixedMoney, error) {
	if !m.SameCurrency(that) {
		return FixedMoney{}, &MoneyMismatchError{Op: "Minus", Kind: "currency", A: m, B: that}
	}
	if !m.SameContext(that) {
		return FixedMoney{}, &MoneyMismatchError{Op: "Minus", Kind: "context", A: m, B: that}
	}
	diff := new(big.Rat).Sub(m.toRationalValue(), that.toRationalValue())
	return createFromRat(diff, m.currency, m.ctx, mode)
}

// MinusAmount returns the (possibly rounded) difference of m and a bare
// numeric amount.
func (m FixedMoney) MinusAmount(amount decimal.Decimal, mode RoundingMode) (FixedMoney, error) {
	diff := new(big.Rat).Sub(m.toRationalValue(), decimalToRat(amount))
	return createFromRat(diff, m.currency, m.ctx, mode)
}

// MultipliedBy returns the (possibly rounded) product of m and factor n.
func (m FixedMoney) MultipliedBy(n decimal.Decimal, mode RoundingMode) (FixedMoney, error) {
	prod := new(big.Rat).Mul(m.toRationalValue(), decimalToRat(n))
	return createFromRat(prod, m.currency, m.ctx, mode)
}

// DividedBy returns the (possibly rounded) quotient of m and divisor n.
//
// DividedBy returns a [DivisionByZeroError] if n is zero.
func (m FixedMoney) DividedBy(n decimal.Decimal, mode RoundingMode) (FixedMoney, error) {
	if n.IsZero() {
		return FixedMoney{}, &DivisionByZeroError{Op: "DividedBy"}
	}
	quo := new(big.Rat).Quo(m.toRationalValue(), decimalToRat(n))
	return createFromRat(quo, m.currency, m.ctx, mode)
}

// ConvertedTo converts m to another currency using the given exchange rate
// (quote currency per unit of m's currency), producing the result under ctx
// (m's own context if ctx is nil).
func (m FixedMoney) ConvertedTo(curr Currency, rate decimal.Decimal, ctx Context, mode RoundingMode) (FixedMoney, error) {
	return m.convertedToRat(curr, decimalToRat(rate), ctx, mode)
}

// convertedToRat is the exact-fraction-rate equivalent of ConvertedTo, used
// directly by [CurrencyConverter] so an [ExchangeRateProvider]'s exact rate
// is never narrowed to a decimal before the multiplication.
func (m FixedMoney) convertedToRat(curr Currency, rate *big.Rat, ctx Context, mode RoundingMode) (FixedMoney, error) {
	if ctx == nil {
		ctx = m.ctx
	}
	product := new(big.Rat).Mul(m.toRationalValue(), rate)
	return createFromRat(product, curr, ctx, mode)
}

// Quotient returns self divided by the integer n, rounding toward zero at
// the unscaled (minor-unit) level; see [FixedMoney.QuotientAndRemainder].
func (m FixedMoney) Quotient(n int64) (FixedMoney, error) {
	q, _, err := m.quotientAndRemainder(n)
	return q, err
}

// QuotientAndRemainder divides the unscaled amount (after dividing out the
// context's step, which must evenly divide it) by n, returning an integer
// quotient and a remainder whose magnitude is always less than n*step in
// minor units. Both results share m's currency and context.
//
// QuotientAndRemainder returns a [DivisionByZeroError] if n is zero, or a
// [RoundingNecessaryError] if the context's step does not evenly divide the
// unscaled amount.
func (m FixedMoney) QuotientAndRemainder(n int64) (FixedMoney, FixedMoney, error) {
	return m.quotientAndRemainder(n)
}

func (m FixedMoney) quotientAndRemainder(n int64) (FixedMoney, FixedMoney, error) {
	if n == 0 {
		return FixedMoney{}, FixedMoney{}, &DivisionByZeroError{Op: "QuotientAndRemainder"}
	}
	step := int64(m.ctx.Step())
	neg, coef, scale := decimalParts(m.amount)
	coefInt := new(big.Int).SetUint64(coef)
	if neg {
		coefInt.Neg(coefInt)
	}
	stepBig := big.NewInt(step)
	unscaled, rem0 := new(big.Int).QuoRem(coefInt, stepBig, new(big.Int))
	if rem0.Sign() != 0 {
		return FixedMoney{}, FixedMoney{}, &RoundingNecessaryError{Op: "QuotientAndRemainder"}
	}
	nBig := big.NewInt(n)
	qInt, rInt := new(big.Int).QuoRem(unscaled, nBig, new(big.Int))
	qScaled := new(big.Int).Mul(qInt, stepBig)
	rScaled := new(big.Int).Mul(rInt, stepBig)
	qDec, err := decimalFromBigInt(qScaled.Sign() < 0, new(big.Int).Abs(qScaled), scale)
	if err != nil {
		return FixedMoney{}, FixedMoney{}, err
	}
	rDec, err := decimalFromBigInt(rScaled.Sign() < 0, new(big.Int).Abs(rScaled), scale)
	if err != nil {
		return FixedMoney{}, FixedMoney{}, err
	}
	return FixedMoney{amount: qDec, currency: m.currency, ctx: m.ctx},
		FixedMoney{amount: rDec, currency: m.currency, ctx: m.ctx},
		nil
}

// Abs returns the absolute value of m, under the same context.
func (m FixedMoney) Abs() FixedMoney {
	_, coef, scale := decimalParts(m.amount)
	d, _ := newDecimal(false, coef, scale)
	return FixedMoney{amount: d, currency: m.currency, ctx: m.ctx}
}

// Negated returns m with the opposite sign, under the same context.
func (m FixedMoney) Negated() FixedMoney {
	neg, coef, scale := decimalParts(m.amount)
	d, _ := newDecimal(!neg, coef, scale)
	return FixedMoney{amount: d, currency: m.currency, ctx: m.ctx}
}

// CompareTo compares m and that numerically, returning -1, 0, or +1.
//
// CompareTo returns a [MoneyMismatchError] if the currencies differ.
func (m FixedMoney) CompareTo(that FixedMoney) (int, error) {
	if !m.SameCurrency(that) {
		return 0, &MoneyMismatchError{Op: "CompareTo", Kind: "currency", A: m, B: that}
	}
	return m.amount.Cmp(that.amount), nil
}

// IsEqualTo reports whether m == that numerically.
func (m FixedMoney) IsEqualTo(that FixedMoney) (bool, error) {
	c, err := m.CompareTo(that)
	return err == nil && c == 0, err
}

// IsLessThan reports whether m < that numerically.
func (m FixedMoney) IsLessThan(that FixedMoney) (bool, error) {
	c, err := m.CompareTo(that)
	return err == nil && c < 0, err
}

// IsLessOrEqualTo reports whether m <= that numerically.
func (m FixedMoney) IsLessOrEqualTo(that FixedMoney) (bool, error) {
	c, err := m.CompareTo(that)
	return err == nil && c <= 0, err
}

// IsGreaterThan reports whether m > that numerically.
func (m FixedMoney) IsGreaterThan(that FixedMoney) (bool, error) {
	c, err := m.CompareTo(that)
	return err == nil && c > 0, err
}

// IsGreaterOrEqualTo reports whether m >= that numerically.
func (m FixedMoney) IsGreaterOrEqualTo(that FixedMoney) (bool, error) {
	c, err := m.CompareTo(that)
	return err == nil && c >= 0, err
}

// IsAmountAndCurrencyEqualTo reports whether m and that have the same
// currency and the same numeric amount. Unlike [FixedMoney.IsEqualTo], it
// never returns an error: a currency mismatch simply yields false.
func (m FixedMoney) IsAmountAndCurrencyEqualTo(that FixedMoney) bool {
	return m.SameCurrency(that) && m.amount.Cmp(that.amount) == 0
}

// MinorAmount returns the amount expressed in the currency's minor units
// (amount * 10^DefaultFractionDigits), retaining any extra scale beyond the
// currency's own digits (e.g. a Custom(8) GBP value keeps 6 fractional
// digits after the shift).
func (m FixedMoney) MinorAmount() decimal.Decimal {
	neg, coef, scale := decimalParts(m.amount)
	shift := m.currency.DefaultFractionDigits()
	newScale := scale - shift
	if newScale < 0 {
		coefBig := new(big.Int).SetUint64(coef)
		coefBig.Mul(coefBig, pow10Big(-newScale))
		d, _ := decimalFromBigInt(neg && coefBig.Sign() != 0, coefBig, 0)
		return d
	}
	d, _ := newDecimal(neg, coef, newScale)
	return d
}

// UnscaledAmount returns the amount's unscaled integer coefficient,
// preserving sign.
func (m FixedMoney) UnscaledAmount() *big.Int {
	neg, coef, _ := decimalParts(m.amount)
	v := new(big.Int).SetUint64(coef)
	if neg {
		v.Neg(v)
	}
	return v
}

// String returns "<ALPHA> <decimal>", e.g. "USD 12.34".
func (m FixedMoney) String() string {
	return m.currency.String() + " " + m.amount.String()
}

type fixedMoneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON implements [json.Marshaler]. The amount string preserves the
// context's scale, including trailing zeros.
func (m FixedMoney) MarshalJSON() ([]byte, error) {
	return json.Marshal(fixedMoneyJSON{Amount: m.amount.String(), Currency: m.currency.alpha})
}

// UnmarshalJSON implements [json.Unmarshaler]. The resulting value is always
// constructed under [DefaultContext] with [Unnecessary] rounding, since the
// wire format carries no context; round-tripping a value created under a
// non-default context requires the caller to re-apply that context.
func (m *FixedMoney) UnmarshalJSON(data []byte) error {
	var aux fixedMoneyJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v, err := ParseFixedMoney(aux.Currency, aux.Amount, DefaultContext(), Unnecessary)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MinFixedMoney returns the smallest of the given values.
//
// MinFixedMoney returns a [MoneyMismatchError] if any value's currency
// differs from the first.
func MinFixedMoney(first FixedMoney, rest ...FixedMoney) (FixedMoney, error) {
	best := first
	for _, r := range rest {
		c, err := best.CompareTo(r)
		if err != nil {
			return FixedMoney{}, err
		}
		if c > 0 {
			best = r
		}
	}
	return best, nil
}

// MaxFixedMoney returns the largest of the given values.
//
// MaxFixedMoney returns a [MoneyMismatchError] if any value's currency
// differs from the first.
func MaxFixedMoney(first FixedMoney, rest ...FixedMoney) (FixedMoney, error) {
	best := first
	for _, r := range rest {
		c, err := best.CompareTo(r)
		if err != nil {
			return FixedMoney{}, err
		}
		if c < 0 {
			best = r
		}
	}
	return best, nil
}

// TotalFixedMoney sums the given values, which must share both currency and
// context (the same rule as [FixedMoney.Plus]).
func TotalFixedMoney(first FixedMoney, rest ...FixedMoney) (FixedMoney, error) {
	total := first
	for _, r := range rest {
		var err error
		total, err = total.Plus(r, Unnecessary)
		if err != nil {
			return FixedMoney{}, err
		}
	}
	return total, nil
}
