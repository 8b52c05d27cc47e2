package money

// MoneyComparator orders values across currencies by converting through an
// [ExchangeRateProvider] before comparing. Because a provider's rates need
// not be reciprocal (Rate(A,B) need not equal 1/Rate(B,A)), comparisons are
// directional: Compare(a, b) converts a into b's currency, so swapping the
// arguments can use a different rate than negating the result would.
type MoneyComparator struct {
	rates ExchangeRateProvider
}

// NewMoneyComparator returns a comparator backed by rates.
func NewMoneyComparator(rates ExchangeRateProvider) *MoneyComparator {
	return &MoneyComparator{rates: rates}
}

// Compare returns -1, 0, or +1 according to whether a is less than, equal
// to, or greater than b, converting a into b's currency first when they
// differ.
//
// Compare returns a [CurrencyConversionError] if the currencies differ and
// no rate between them is known.
func (c *MoneyComparator) Compare(a, b RationalMoney) (int, error) {
	if a.SameCurrency(b) {
		return a.CompareTo(b)
	}
	rate, err := c.rates.Rate(a.currency, b.currency)
	if err != nil {
		return 0, err
	}
	converted := a.MultipliedBy(rate)
	return converted.CompareTo(b)
}

// IsEqualTo reports whether a and b are numerically equal once converted
// into a common currency.
func (c *MoneyComparator) IsEqualTo(a, b RationalMoney) (bool, error) {
	cmp, err := c.Compare(a, b)
	return err == nil && cmp == 0, err
}

// IsLessThan reports whether a < b once converted into a common currency.
func (c *MoneyComparator) IsLessThan(a, b RationalMoney) (bool, error) {
	cmp, err := c.Compare(a, b)
	return err == nil && cmp < 0, err
}

// IsLessOrEqualTo reports whether a <= b once converted into a common
// currency.
func (c *MoneyComparator) IsLessOrEqualTo(a, b RationalMoney) (bool, error) {
	cmp, err := c.Compare(a, b)
	return err == nil && cmp <= 0, err
}

// IsGreaterThan reports whether a > b once converted into a common currency.
func (c *MoneyComparator) IsGreaterThan(a, b RationalMoney) (bool, error) {
	cmp, err := c.Compare(a, b)
	return err == nil && cmp > 0, err
}

// IsGreaterOrEqualTo reports whether a >= b once converted into a common
// currency.
func (c *MoneyComparator) IsGreaterOrEqualTo(a, b RationalMoney) (bool, error) {
	cmp, err := c.Compare(a, b)
	return err == nil && cmp >= 0, err
}

// Min returns the smaller of the given values, converting through c's
// provider as needed. The result retains its original currency: Min never
// converts the winner, only the candidates it compares against first.
func (c *MoneyComparator) Min(first RationalMoney, rest ...RationalMoney) (RationalMoney, error) {
	best := first
	for _, r := range rest {
		cmp, err := c.Compare(best, r)
		if err != nil {
			return RationalMoney{}, err
		}
		if cmp > 0 {
			best = r
		}
	}
	return best, nil
}

// Max returns the larger of the given values, converting through c's
// provider as needed.
func (c *MoneyComparator) Max(first RationalMoney, rest ...RationalMoney) (RationalMoney, error) {
	best := first
	for _, r := range rest {
		cmp, err := c.Compare(best, r)
		if err != nil {
			return RationalMoney{}, err
		}
		if cmp < 0 {
			best = r
		}
	}
	return best, nil
}
