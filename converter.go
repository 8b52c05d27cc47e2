package money

// CurrencyConverter converts money between currencies using an
// [ExchangeRateProvider], always computing the exact product in rational
// space before any rounding is applied.
type CurrencyConverter struct {
	rates ExchangeRateProvider
}

// NewCurrencyConverter returns a converter backed by rates.
func NewCurrencyConverter(rates ExchangeRateProvider) *CurrencyConverter {
	return &CurrencyConverter{rates: rates}
}

// ConvertToRational converts m into target, returning the exact (unrounded)
// result.
//
// ConvertToRational returns a [CurrencyConversionError] if no rate from m's
// currency to target is known.
func (c *CurrencyConverter) ConvertToRational(m RationalMoney, target Currency) (RationalMoney, error) {
	rate, err := c.rates.Rate(m.currency, target)
	if err != nil {
		return RationalMoney{}, err
	}
	return m.MultipliedBy(rate), nil
}

// Convert converts m into target under ctx, rounding under mode.
//
// Convert returns a [CurrencyConversionError] if no rate from m's currency
// to target is known.
func (c *CurrencyConverter) Convert(m FixedMoney, target Currency, ctx Context, mode RoundingMode) (FixedMoney, error) {
	rate, err := c.rates.Rate(m.currency, target)
	if err != nil {
		return FixedMoney{}, err
	}
	return m.convertedToRat(target, rate, ctx, mode)
}

// ConvertBagToRational converts every per-currency amount held in bag into
// target, accumulating the exact (unrounded) total.
//
// ConvertBagToRational returns a [CurrencyConversionError] if any held
// currency other than target has no known rate to it.
func (c *CurrencyConverter) ConvertBagToRational(bag *MoneyBag, target Currency) (RationalMoney, error) {
	total := ZeroRationalMoney(target)
	for _, entry := range bag.GetAmounts() {
		converted := entry
		if entry.currency.alpha != target.alpha {
			var err error
			converted, err = c.ConvertToRational(entry, target)
			if err != nil {
				return RationalMoney{}, err
			}
		}
		var err error
		total, err = total.Plus(converted)
		if err != nil {
			return RationalMoney{}, err
		}
	}
	return total, nil
}

// ConvertBag is like [CurrencyConverter.ConvertBagToRational], but rounds
// the accumulated total into a [FixedMoney] under ctx.
func (c *CurrencyConverter) ConvertBag(bag *MoneyBag, target Currency, ctx Context, mode RoundingMode) (FixedMoney, error) {
	total, err := c.ConvertBagToRational(bag, target)
	if err != nil {
		return FixedMoney{}, err
	}
	return total.To(ctx, mode)
}
