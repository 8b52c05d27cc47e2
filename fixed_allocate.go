package money

import (
	"fmt"
	"math/big"
)

// validateRatios checks that ratios is non-empty, contains no negative
// entries, and sums to a positive total, returning that total. fnName is the
// lower-camel-case name used in the error text (e.g. "allocate",
// "splitWithRemainder"); op is the exported method name reported on the
// error.
func validateRatios(op, fnName string, ratios []int64) (*big.Int, error) {
	if len(ratios) == 0 {
		return nil, &InvalidArgumentError{Op: op, Msg: fmt.Sprintf("Cannot %s() an empty list of ratios.", fnName)}
	}
	total := big.NewInt(0)
	for _, r := range ratios {
		if r < 0 {
			return nil, &InvalidArgumentError{Op: op, Msg: fmt.Sprintf("Cannot %s() negative ratios.", fnName)}
		}
		total.Add(total, big.NewInt(r))
	}
	if total.Sign() == 0 {
		return nil, &InvalidArgumentError{Op: op, Msg: fmt.Sprintf("Cannot %s() to zero ratios only.", fnName)}
	}
	return total, nil
}

// gcdInt64 returns the greatest common divisor of a and b, either of which
// may be zero (gcd(0, n) == n).
func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// simplifyRatios divides every ratio by their common GCD, the reduction
// [FixedMoney.AllocateWithRemainder] applies before dividing.
func simplifyRatios(ratios []int64) []int64 {
	g := int64(0)
	for _, r := range ratios {
		g = gcdInt64(g, r)
	}
	out := make([]int64, len(ratios))
	if g <= 1 {
		copy(out, ratios)
		return out
	}
	for i, r := range ratios {
		out[i] = r / g
	}
	return out
}

// Allocate splits m into len(ratios) parts proportional to ratios. Any
// remainder left after proportionally truncating each part is distributed
// one context step at a time (one unscaled unit when the step is 1), with
// m's sign, to the parts from the front (index 0, 1, 2, …) until it is
// exhausted. The parts always sum exactly to m.
//
// Allocate returns an [InvalidArgumentError] if ratios is empty, contains a
// negative entry, or sums to zero.
func (m FixedMoney) Allocate(ratios ...int64) ([]FixedMoney, error) {
	parts, _, err := m.allocate(ratios)
	return parts, err
}

func (m FixedMoney) allocate(ratios []int64) ([]FixedMoney, FixedMoney, error) {
	parts, remainder, err := m.allocateNoDistribute(ratios)
	if err != nil {
		return nil, FixedMoney{}, err
	}
	step := int64(m.ctx.Step())
	remNeg, remCoef, scale := decimalParts(remainder.amount)
	units := new(big.Int).SetUint64(remCoef)
	units.Div(units, big.NewInt(step))
	n := units.Int64()
	delta := big.NewInt(step)
	if remNeg {
		delta.Neg(delta)
	}
	for i := int64(0); i < n; i++ {
		idx := int(i) % len(ratios)
		neg, coef, _ := decimalParts(parts[idx].amount)
		coefBig := new(big.Int).SetUint64(coef)
		if neg {
			coefBig.Neg(coefBig)
		}
		coefBig.Add(coefBig, delta)
		d, derr := decimalFromBigInt(coefBig.Sign() < 0, new(big.Int).Abs(coefBig), scale)
		if derr != nil {
			return nil, FixedMoney{}, derr
		}
		parts[idx] = FixedMoney{amount: d, currency: m.currency, ctx: m.ctx}
	}
	return parts, ZeroFixedMoney(m.currency, m.ctx), nil
}

// allocateNoDistribute computes the proportional parts (each truncated
// toward zero) and the leftover remainder, without distributing it. It backs
// [FixedMoney.Allocate] only; [FixedMoney.AllocateWithRemainder] uses a
// different algorithm (GCD-simplified ratios divided exactly) and does not
// share this helper.
func (m FixedMoney) allocateNoDistribute(ratios []int64) ([]FixedMoney, FixedMoney, error) {
	total, err := validateRatios("Allocate", "allocate", ratios)
	if err != nil {
		return nil, FixedMoney{}, err
	}

	step := int64(m.ctx.Step())
	neg, coef, scale := decimalParts(m.amount)
	coefInt := new(big.Int).SetUint64(coef)
	if neg {
		coefInt.Neg(coefInt)
	}
	units := new(big.Int).Quo(coefInt, big.NewInt(step))
	rem := new(big.Int).Sub(coefInt, new(big.Int).Mul(units, big.NewInt(step)))
	if rem.Sign() != 0 {
		return nil, FixedMoney{}, &RoundingNecessaryError{Op: "Allocate"}
	}

	parts := make([]FixedMoney, len(ratios))
	allocatedUnits := new(big.Int)
	for i, r := range ratios {
		share := new(big.Int).Mul(units, big.NewInt(r))
		share.Quo(share, total)
		allocatedUnits.Add(allocatedUnits, share)
		shareCoef := new(big.Int).Mul(share, big.NewInt(step))
		d, err := decimalFromBigInt(shareCoef.Sign() < 0, new(big.Int).Abs(shareCoef), scale)
		if err != nil {
			return nil, FixedMoney{}, err
		}
		parts[i] = FixedMoney{amount: d, currency: m.currency, ctx: m.ctx}
	}

	leftoverUnits := new(big.Int).Sub(units, allocatedUnits)
	leftoverCoef := new(big.Int).Mul(leftoverUnits, big.NewInt(step))
	remDec, err := decimalFromBigInt(leftoverCoef.Sign() < 0, new(big.Int).Abs(leftoverCoef), scale)
	if err != nil {
		return nil, FixedMoney{}, err
	}
	remainder := FixedMoney{amount: remDec, currency: m.currency, ctx: m.ctx}
	return parts, remainder, nil
}

// AllocateWithRemainder is like [FixedMoney.Allocate], but instead of
// distributing the leftover it is returned separately as a final value.
//
// Ratios are first simplified by their GCD. The unscaled amount (after
// dividing out the context's step) is then divided by the simplified ratios'
// sum, giving an integer quotient q and a remainder r; each part is exactly
// q*simplifiedRatio_i (no rounding, since q*Σsimplified is by construction
// evenly divisible by Σsimplified), and r is returned as the remainder.
//
// AllocateWithRemainder returns an [InvalidArgumentError] if ratios is
// empty, contains a negative entry, or sums to zero.
func (m FixedMoney) AllocateWithRemainder(ratios ...int64) ([]FixedMoney, FixedMoney, error) {
	_, err := validateRatios("AllocateWithRemainder", "allocateWithRemainder", ratios)
	if err != nil {
		return nil, FixedMoney{}, err
	}
	simplified := simplifyRatios(ratios)
	sum := big.NewInt(0)
	for _, r := range simplified {
		sum.Add(sum, big.NewInt(r))
	}

	step := int64(m.ctx.Step())
	neg, coef, scale := decimalParts(m.amount)
	coefInt := new(big.Int).SetUint64(coef)
	if neg {
		coefInt.Neg(coefInt)
	}
	stepBig := big.NewInt(step)
	units, rem0 := new(big.Int).QuoRem(coefInt, stepBig, new(big.Int))
	if rem0.Sign() != 0 {
		return nil, FixedMoney{}, &RoundingNecessaryError{Op: "AllocateWithRemainder"}
	}

	q, r := new(big.Int).QuoRem(units, sum, new(big.Int))

	parts := make([]FixedMoney, len(ratios))
	for i, ratio := range simplified {
		partUnits := new(big.Int).Mul(q, big.NewInt(ratio))
		partCoef := new(big.Int).Mul(partUnits, stepBig)
		d, derr := decimalFromBigInt(partCoef.Sign() < 0, new(big.Int).Abs(partCoef), scale)
		if derr != nil {
			return nil, FixedMoney{}, derr
		}
		parts[i] = FixedMoney{amount: d, currency: m.currency, ctx: m.ctx}
	}

	remCoef := new(big.Int).Mul(r, stepBig)
	remDec, derr := decimalFromBigInt(remCoef.Sign() < 0, new(big.Int).Abs(remCoef), scale)
	if derr != nil {
		return nil, FixedMoney{}, derr
	}
	remainder := FixedMoney{amount: remDec, currency: m.currency, ctx: m.ctx}
	return parts, remainder, nil
}

// Split divides m into n equal parts, distributing any remainder one
// context step at a time to the parts from the front. It is the
// n-equal-ratios special case of [FixedMoney.Allocate].
//
// Split returns an [InvalidArgumentError] if n < 1.
func (m FixedMoney) Split(n int) ([]FixedMoney, error) {
	if n < 1 {
		return nil, &InvalidArgumentError{Op: "Split", Msg: "Cannot split() into less than 1 part."}
	}
	ratios := make([]int64, n)
	for i := range ratios {
		ratios[i] = 1
	}
	return m.Allocate(ratios...)
}

// SplitWithRemainder is like [FixedMoney.Split], but instead of distributing
// the remainder it is returned separately as the final value.
//
// SplitWithRemainder returns an [InvalidArgumentError] if n < 1.
func (m FixedMoney) SplitWithRemainder(n int) ([]FixedMoney, FixedMoney, error) {
	if n < 1 {
		return nil, FixedMoney{}, &InvalidArgumentError{Op: "SplitWithRemainder", Msg: "Cannot splitWithRemainder() into less than 1 part."}
	}
	ratios := make([]int64, n)
	for i := range ratios {
		ratios[i] = 1
	}
	return m.AllocateWithRemainder(ratios...)
}
