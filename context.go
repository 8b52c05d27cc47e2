package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Context governs how a raw numeric amount is resolved into the scale and
// step of a [FixedMoney] value. Context is a closed set of four variants —
// [DefaultContext], [CashContext], [CustomContext], and [AutoContext] — each
// a small value type implementing applyTo itself, per spec's "small
// interface objects" design note.
type Context interface {
	// applyTo resolves amount, denominated in curr, to the fixed-scale
	// decimal this context prescribes, rounding under mode.
	applyTo(amount decimal.Decimal, curr Currency, mode RoundingMode) (decimal.Decimal, error)

	// Step returns the context's cash-rounding step, in minor units. It is
	// 1 for every context except [CashContext] and a [CustomContext]
	// constructed with an explicit step.
	Step() uint64

	// HasFixedScale reports whether the context prescribes a fixed number
	// of fraction digits. Only [AutoContext] does not.
	HasFixedScale() bool

	// scaleFor returns the scale this context prescribes for curr. It
	// panics for AutoContext, which has no fixed scale; callers must check
	// HasFixedScale first.
	scaleFor(curr Currency) int
}

// defaultContext prescribes the currency's own default fraction digits and
// a step of 1.
type defaultContext struct{}

// DefaultContext returns the context that rounds to a currency's default
// fraction digits with a step of 1. It is the context used when none is
// supplied explicitly.
func DefaultContext() Context { return defaultContext{} }

func (defaultContext) Step() uint64          { return 1 }
func (defaultContext) HasFixedScale() bool   { return true }
func (defaultContext) scaleFor(c Currency) int { return c.DefaultFractionDigits() }

func (ctx defaultContext) applyTo(amount decimal.Decimal, curr Currency, mode RoundingMode) (decimal.Decimal, error) {
	return roundDecimal(amount, ctx.scaleFor(curr), mode)
}

// cashContext prescribes the currency's default fraction digits but
// restricts representable amounts to multiples of step minor units (e.g. a
// step of 5 for CHF means amounts land on 0.00, 0.05, 0.10, ...).
type cashContext struct {
	step uint64
}

// CashContext returns a context for cash-drawer rounding: values are
// restricted to multiples of step minor units of the currency. step's prime
// factorisation must consist only of 2s and 5s (so it evenly divides a power
// of ten), or [InvalidArgumentError] is returned.
func CashContext(step uint64) (Context, error) {
	if step == 0 {
		return nil, &InvalidArgumentError{Op: "CashContext", Msg: "step must be positive"}
	}
	if !isPow2And5(step) {
		return nil, &InvalidArgumentError{Op: "CashContext", Msg: fmt.Sprintf("step %d must factor only into 2s and 5s", step)}
	}
	return cashContext{step: step}, nil
}

// MustCashContext is like [CashContext] but panics on error.
func MustCashContext(step uint64) Context {
	c, err := CashContext(step)
	if err != nil {
		panic(err)
	}
	return c
}

func (c cashContext) Step() uint64            { return c.step }
func (cashContext) HasFixedScale() bool       { return true }
func (cashContext) scaleFor(c2 Currency) int  { return c2.DefaultFractionDigits() }

func (ctx cashContext) applyTo(amount decimal.Decimal, curr Currency, mode RoundingMode) (decimal.Decimal, error) {
	return applyStepped(amount, ctx.scaleFor(curr), ctx.step, mode)
}

// customContext prescribes an explicit scale and, optionally, a cash step.
type customContext struct {
	scale int
	step  uint64
}

// CustomContext returns a context with an explicit scale and, optionally, an
// explicit step (default 1 if omitted). Only the first step value is used;
// any further values are ignored.
func CustomContext(scale int, step ...uint64) (Context, error) {
	if scale < 0 {
		return nil, &InvalidArgumentError{Op: "CustomContext", Msg: "scale must be non-negative"}
	}
	s := uint64(1)
	if len(step) > 0 {
		s = step[0]
	}
	if s == 0 {
		return nil, &InvalidArgumentError{Op: "CustomContext", Msg: "step must be positive"}
	}
	if s > 1 && !isPow2And5(s) {
		return nil, &InvalidArgumentError{Op: "CustomContext", Msg: fmt.Sprintf("step %d must factor only into 2s and 5s", s)}
	}
	return customContext{scale: scale, step: s}, nil
}

// MustCustomContext is like [CustomContext] but panics on error.
func MustCustomContext(scale int, step ...uint64) Context {
	c, err := CustomContext(scale, step...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c customContext) Step() uint64         { return c.step }
func (customContext) HasFixedScale() bool    { return true }
func (c customContext) scaleFor(Currency) int { return c.scale }

func (ctx customContext) applyTo(amount decimal.Decimal, curr Currency, mode RoundingMode) (decimal.Decimal, error) {
	return applyStepped(amount, ctx.scale, ctx.step, mode)
}

// autoContext has no fixed scale: it strips trailing zeros and refuses any
// rounding mode other than [Unnecessary].
type autoContext struct{}

// AutoContext returns the context that performs no scale-forcing rounding:
// it only strips trailing zeros, and requires [Unnecessary] rounding.
func AutoContext() Context { return autoContext{} }

func (autoContext) Step() uint64        { return 1 }
func (autoContext) HasFixedScale() bool { return false }
func (autoContext) scaleFor(Currency) int {
	panic("money: AutoContext has no fixed scale")
}

func (autoContext) applyTo(amount decimal.Decimal, curr Currency, mode RoundingMode) (decimal.Decimal, error) {
	if mode != Unnecessary {
		return decimal.Decimal{}, &InvalidArgumentError{Op: "AutoContext.applyTo", Msg: "only Unnecessary rounding is permitted"}
	}
	return amount.Reduce(), nil
}

// applyStepped implements the Cash/Custom rule: if step == 1, round amount
// directly to targetScale; otherwise round (amount / step) to targetScale
// and scale back up by step.
func applyStepped(amount decimal.Decimal, targetScale int, step uint64, mode RoundingMode) (decimal.Decimal, error) {
	if step == 1 {
		return roundDecimal(amount, targetScale, mode)
	}
	stepDec := decimal.New(int64(step), 0)
	divided := amount.Quo(stepDec)
	rounded, err := roundDecimal(divided, targetScale, mode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return rounded.MulExact(stepDec, targetScale), nil
}

// isPow2And5 reports whether n's prime factorisation consists only of 2s
// and 5s, the condition spec.md requires of a cash step so that it evenly
// divides some power of ten.
func isPow2And5(n uint64) bool {
	for n%2 == 0 {
		n /= 2
	}
	for n%5 == 0 {
		n /= 5
	}
	return n == 1
}
