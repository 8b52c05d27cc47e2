package money

import "fmt"

// RoundingMode controls how a value that cannot be represented exactly at a
// given scale or step is rounded. Unnecessary fails instead of rounding.
type RoundingMode uint8

const (
	Unnecessary RoundingMode = iota
	Up
	Down
	Ceiling
	Floor
	HalfUp
	HalfDown
	HalfEven
)

func (m RoundingMode) String() string {
	switch m {
	case Unnecessary:
		return "Unnecessary"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case HalfEven:
		return "HalfEven"
	default:
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
}

// InvalidArgumentError reports a caller-supplied argument that is
// structurally invalid: a bad ratio list, an invalid context parameter, a
// malformed exchange-rate-provider configuration, or negative currency
// fraction digits.
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("money/%s: %s", e.Op, e.Msg)
}

// RoundingNecessaryError reports that [Unnecessary] rounding was requested
// but the operation cannot produce an exact result, or that the context's
// step does not evenly divide the unscaled amount in [FixedMoney.Quotient],
// [FixedMoney.QuotientAndRemainder] or the allocation methods.
type RoundingNecessaryError struct {
	Op string
}

func (e *RoundingNecessaryError) Error() string {
	return fmt.Sprintf("money/%s: rounding necessary", e.Op)
}

// NumberFormatError reports a malformed string amount.
type NumberFormatError struct {
	Op    string
	Input string
	Err   error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("money/%s: invalid number %q: %v", e.Op, e.Input, e.Err)
}

func (e *NumberFormatError) Unwrap() error { return e.Err }

// DivisionByZeroError reports an attempt to divide by zero.
type DivisionByZeroError struct {
	Op string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("money/%s: division by zero", e.Op)
}

// UnknownCurrencyError reports that an alpha code, numeric code, or country
// code could not be resolved against the currency catalogue.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("money: unknown currency %q", e.Code)
}

// MoneyMismatchError reports that an operation was attempted between two
// incompatible [FixedMoney] or [RationalMoney] values. Kind is either
// "currency" or "context".
type MoneyMismatchError struct {
	Op   string
	Kind string // "currency" or "context"
	A, B fmt.Stringer
}

func (e *MoneyMismatchError) Error() string {
	switch e.Kind {
	case "context":
		return fmt.Sprintf("money/%s: context mismatch between %v and %v; consider %s(%v.ToRational())", e.Op, e.A, e.B, e.Op, e.A)
	default:
		return fmt.Sprintf("money/%s: currency mismatch between %v and %v", e.Op, e.A, e.B)
	}
}

// CurrencyConversionError reports that no exchange rate could be found
// between two currencies.
type CurrencyConversionError struct {
	Source, Target string
	Detail         string
}

func (e *CurrencyConversionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("money: no exchange rate from %s to %s: %s", e.Source, e.Target, e.Detail)
	}
	return fmt.Sprintf("money: no exchange rate from %s to %s", e.Source, e.Target)
}
