package money

import (
	"math/big"
	"sort"
)

// MoneyBag is a mutable accumulator of exact amounts across any number of
// currencies. Unlike [FixedMoney] and [RationalMoney], which are immutable
// values, MoneyBag is a running total meant to be mutated in place as
// entries of different currencies are added and subtracted.
//
// Keys are currency alpha codes: every value passed to [MoneyBag.Add] or
// [MoneyBag.Subtract] accumulates under its own currency's alpha code, so a
// custom currency created with [NewCurrency] gets a key of its own alongside
// the catalogued ones.
type MoneyBag struct {
	amounts map[string]*big.Rat
}

// NewMoneyBag returns an empty bag.
func NewMoneyBag() *MoneyBag {
	return &MoneyBag{amounts: make(map[string]*big.Rat)}
}

func (b *MoneyBag) keyFor(curr Currency) string {
	return curr.alpha
}

// GetAmount returns the exact running total for curr, or zero if curr has
// never been added to or subtracted from.
func (b *MoneyBag) GetAmount(curr Currency) RationalMoney {
	key := b.keyFor(curr)
	r, ok := b.amounts[key]
	if !ok {
		return ZeroRationalMoney(curr)
	}
	return NewRationalMoney(r, curr)
}

// GetAmounts returns every non-zero entry in the bag, sorted by currency
// code for deterministic iteration.
func (b *MoneyBag) GetAmounts() []RationalMoney {
	keys := make([]string, 0, len(b.amounts))
	for k, v := range b.amounts {
		if v.Sign() != 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]RationalMoney, 0, len(keys))
	for _, k := range keys {
		curr, err := ParseCurr(k)
		if err != nil {
			curr = Currency{alpha: k, num: -1, name: k, digits: 0}
		}
		out = append(out, NewRationalMoney(b.amounts[k], curr))
	}
	return out
}

// Add accumulates m's exact value into the bag, keyed by m's currency.
func (b *MoneyBag) Add(m RationalMoney) {
	key := b.keyFor(m.currency)
	cur, ok := b.amounts[key]
	if !ok {
		cur = new(big.Rat)
		b.amounts[key] = cur
	}
	cur.Add(cur, m.Rat())
}

// AddFixed accumulates a [FixedMoney]'s exact value into the bag.
func (b *MoneyBag) AddFixed(m FixedMoney) {
	b.Add(m.ToRational())
}

// Subtract removes m's exact value from the bag, keyed by m's currency.
func (b *MoneyBag) Subtract(m RationalMoney) {
	key := b.keyFor(m.currency)
	cur, ok := b.amounts[key]
	if !ok {
		cur = new(big.Rat)
		b.amounts[key] = cur
	}
	cur.Sub(cur, m.Rat())
}

// SubtractFixed removes a [FixedMoney]'s exact value from the bag.
func (b *MoneyBag) SubtractFixed(m FixedMoney) {
	b.Subtract(m.ToRational())
}

// IsEmpty reports whether every currency in the bag nets to zero.
func (b *MoneyBag) IsEmpty() bool {
	for _, v := range b.amounts {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}
