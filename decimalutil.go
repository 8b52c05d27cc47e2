package money

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// pow10 returns 10^n for 0 <= n <= 19, the range of scales the underlying
// 19-digit decimal representation can hold.
func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// decimalParts decomposes a decimal into sign, unsigned coefficient, and
// scale, the same triple [decimal.Decimal] is documented to be built from.
func decimalParts(d decimal.Decimal) (neg bool, coef uint64, scale int) {
	return d.IsNeg(), d.Coef(), d.Scale()
}

// newDecimal reconstructs a decimal from sign, coefficient, and scale by
// formatting the exact digit string and parsing it back, which keeps this
// package from depending on any decimal constructor beyond what the
// teacher's own code already exercises ([decimal.ParseExact]).
func newDecimal(neg bool, coef uint64, scale int) (decimal.Decimal, error) {
	digits := strconv.FormatUint(coef, 10)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	var s string
	if scale == 0 {
		s = digits
	} else {
		cut := len(digits) - scale
		s = digits[:cut] + "." + digits[cut:]
	}
	if neg && coef != 0 {
		s = "-" + s
	}
	return decimal.ParseExact(s, scale)
}

// roundMagnitude rounds the unsigned coefficient coef (at fromScale digits
// after the point) to toScale digits after the point, applying mode to the
// dropped digits. neg indicates the original sign, which Ceiling and Floor
// need in order to know whether rounding the magnitude up moves toward or
// away from positive infinity.
func roundMagnitude(neg bool, coef uint64, fromScale, toScale int, mode RoundingMode) (uint64, error) {
	if toScale >= fromScale {
		return coef * pow10(toScale-fromScale), nil
	}
	drop := fromScale - toScale
	divisor := pow10(drop)
	q, r := coef/divisor, coef%divisor
	if r == 0 {
		return q, nil
	}
	switch mode {
	case Unnecessary:
		return 0, &RoundingNecessaryError{}
	case Down:
		return q, nil
	case Up:
		return q + 1, nil
	case Ceiling:
		if neg {
			return q, nil
		}
		return q + 1, nil
	case Floor:
		if neg {
			return q + 1, nil
		}
		return q, nil
	case HalfUp:
		if 2*r >= divisor {
			return q + 1, nil
		}
		return q, nil
	case HalfDown:
		if 2*r > divisor {
			return q + 1, nil
		}
		return q, nil
	case HalfEven:
		switch {
		case 2*r > divisor:
			return q + 1, nil
		case 2*r < divisor:
			return q, nil
		case q%2 == 1:
			return q + 1, nil
		default:
			return q, nil
		}
	default:
		return 0, &InvalidArgumentError{Msg: "unknown rounding mode"}
	}
}

// roundDecimal rounds d to toScale digits after the decimal point using
// mode, reporting [RoundingNecessaryError] if mode is [Unnecessary] and
// rounding would be required.
func roundDecimal(d decimal.Decimal, toScale int, mode RoundingMode) (decimal.Decimal, error) {
	neg, coef, scale := decimalParts(d)
	newCoef, err := roundMagnitude(neg, coef, scale, toScale, mode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return newDecimal(neg, newCoef, toScale)
}

// decimalToRat converts a decimal to the exact fraction it denotes.
func decimalToRat(d decimal.Decimal) *big.Rat {
	num, den := decimalToRatParts(d)
	return new(big.Rat).SetFrac(num, den)
}

// decimalToRatParts decomposes a decimal into a numerator and denominator
// without reducing them, so a value like 3.50 yields (350, 100) rather than
// the [big.Rat]-normalised (7, 2).
func decimalToRatParts(d decimal.Decimal) (num, den *big.Int) {
	neg, coef, scale := decimalParts(d)
	num = new(big.Int).SetUint64(coef)
	if neg {
		num.Neg(num)
	}
	den = pow10Big(scale)
	return num, den
}

// pow10Big returns 10^n as a big.Int, for n that may exceed a decimal's
// native 19-digit range (transient rational-space computations can).
func pow10Big(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// decimalFromBigInt builds a decimal.Decimal from an arbitrary-precision
// coefficient, by the same format-then-parse trick as newDecimal. It is used
// where the coefficient may transiently exceed uint64 (rational-space
// rounding); decimal.ParseExact itself rejects values beyond the library's
// own range, which surfaces as a genuine overflow error to the caller.
func decimalFromBigInt(neg bool, coef *big.Int, scale int) (decimal.Decimal, error) {
	digits := coef.String()
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	var s string
	if scale == 0 {
		s = digits
	} else {
		cut := len(digits) - scale
		s = digits[:cut] + "." + digits[cut:]
	}
	if neg && coef.Sign() != 0 {
		s = "-" + s
	}
	return decimal.ParseExact(s, scale)
}

// roundRatToScale rounds the exact fraction r to scale digits after the
// decimal point using mode, the big.Rat analogue of roundDecimal for values
// that may not originate from a fixed-scale decimal at all (sums of
// differently-scaled legs, exchange-rate products, MoneyBag totals).
func roundRatToScale(r *big.Rat, scale int, mode RoundingMode) (decimal.Decimal, error) {
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := new(big.Int).Abs(r.Denom())
	num = new(big.Int).Mul(num, pow10Big(scale))
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		switch mode {
		case Unnecessary:
			return decimal.Decimal{}, &RoundingNecessaryError{}
		case Down:
		case Up:
			q.Add(q, big.NewInt(1))
		case Ceiling:
			if !neg {
				q.Add(q, big.NewInt(1))
			}
		case Floor:
			if neg {
				q.Add(q, big.NewInt(1))
			}
		case HalfUp, HalfDown, HalfEven:
			twice := new(big.Int).Lsh(rem, 1)
			cmp := twice.Cmp(den)
			switch mode {
			case HalfUp:
				if cmp >= 0 {
					q.Add(q, big.NewInt(1))
				}
			case HalfDown:
				if cmp > 0 {
					q.Add(q, big.NewInt(1))
				}
			case HalfEven:
				if cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
					q.Add(q, big.NewInt(1))
				}
			}
		default:
			return decimal.Decimal{}, &InvalidArgumentError{Msg: "unknown rounding mode"}
		}
	}
	return decimalFromBigInt(neg && q.Sign() != 0, q, scale)
}

// exactRatToDecimal finds the smallest scale (0..decimal.MaxPrec) at which r
// is exactly representable and returns it at that scale, or a
// [RoundingNecessaryError] if no such scale exists within the decimal's
// range (e.g. r's denominator has a prime factor other than 2 or 5).
func exactRatToDecimal(r *big.Rat) (decimal.Decimal, error) {
	num := r.Num()
	den := new(big.Int).Abs(r.Denom())
	neg := r.Sign() < 0
	absNum := new(big.Int).Abs(num)
	for s := 0; s <= decimal.MaxPrec; s++ {
		scaled := new(big.Int).Mul(absNum, pow10Big(s))
		q, rem := new(big.Int).QuoRem(scaled, den, new(big.Int))
		if rem.Sign() == 0 {
			return decimalFromBigInt(neg && q.Sign() != 0, q, s)
		}
	}
	return decimal.Decimal{}, &RoundingNecessaryError{Op: "create"}
}
