/*
Package money implements exact monetary arithmetic across multiple
currencies.

# Money kinds

[FixedMoney] is the value type most callers want: an amount held at a fixed
scale and rounding step prescribed by a [Context]. Arithmetic on FixedMoney
values (via [FixedMoney.Plus], [FixedMoney.MultipliedBy], and so on) always
computes the exact result first and only then rounds it back into the
requested context, so chained operations never compound rounding error.

[RationalMoney] is the value type for intermediate computations that must
never round: an exact fraction, produced by [FixedMoney.ToRational] and
consumed by [RationalMoney.To] once a final, fixed-scale answer is needed.

[MoneyBag] is a mutable, multi-currency running total; unlike the two value
types above it is meant to be accumulated into in place.

# Contexts

A [Context] governs how a raw amount is resolved into a FixedMoney's scale
and step:

  - [DefaultContext] rounds to the currency's own default fraction digits.
  - [CashContext] additionally restricts amounts to multiples of a cash
    step (e.g. Swiss 5-centime rounding).
  - [CustomContext] prescribes an explicit scale and, optionally, step.
  - [AutoContext] performs no scale-forcing rounding at all; it only strips
    trailing zeros, and requires [Unnecessary] rounding.

# Currencies

[Currency] identifies a unit of account. [ParseCurr] resolves a currency
from the embedded ISO 4217 catalogue by alpha or numeric code;
[CurrencyOfCountry] resolves one from an ISO 3166-1 country code, when that
country uses exactly one currency. [NewCurrency] constructs a currency
outside the catalogue entirely, for assets ISO 4217 does not cover.

# Errors

Every fallible operation in this package returns a typed error rather than
panicking: [InvalidArgumentError], [RoundingNecessaryError],
[NumberFormatError], [DivisionByZeroError], [UnknownCurrencyError],
[MoneyMismatchError], and [CurrencyConversionError]. None of them is ever
used for ordinary control flow internally.

# Exchange rates and conversion

[ExchangeRateProvider] abstracts over where a rate between two currencies
comes from: an in-memory table ([ConfigurableRateProvider]), a memoizing
wrapper ([CachedRateProvider]), a fallback chain ([ChainRateProvider]), a
pivot-currency derivation ([BaseCurrencyRateProvider]), or a database table
([SQLRateProvider]). [CurrencyConverter] and [MoneyComparator] both sit on
top of a provider: the converter projects a value into another currency,
and the comparator orders values across currencies, converting through the
provider before comparing (directionally — see [MoneyComparator.Compare]).
*/
package money
