package money

import (
	"math/big"
	"sync"
)

// ExchangeRateProvider resolves an exact exchange rate between two
// currencies: the value of one unit of base, expressed in quote.
type ExchangeRateProvider interface {
	// Rate returns the exchange rate from base to quote.
	//
	// Rate returns a [CurrencyConversionError] if no rate is known.
	Rate(base, quote Currency) (*big.Rat, error)
}

// ConfigurableRateProvider is an in-memory table of exchange rates, keyed by
// base and quote alpha code.
type ConfigurableRateProvider struct {
	mu    sync.RWMutex
	rates map[string]map[string]*big.Rat
}

// NewConfigurableRateProvider returns an empty table-backed provider.
func NewConfigurableRateProvider() *ConfigurableRateProvider {
	return &ConfigurableRateProvider{rates: make(map[string]map[string]*big.Rat)}
}

// SetRate records the exact rate from base to quote.
func (p *ConfigurableRateProvider) SetRate(base, quote Currency, rate *big.Rat) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, q := base.alpha, quote.alpha
	if p.rates[b] == nil {
		p.rates[b] = make(map[string]*big.Rat)
	}
	p.rates[b][q] = new(big.Rat).Set(rate)
}

// SetExchangeRate is like SetRate but takes a [Rate] value object, which
// additionally validates positivity and same-currency-implies-one at
// construction time.
func (p *ConfigurableRateProvider) SetExchangeRate(r Rate) {
	p.SetRate(r.base, r.quote, r.value)
}

// Rate implements [ExchangeRateProvider].
func (p *ConfigurableRateProvider) Rate(base, quote Currency) (*big.Rat, error) {
	if base.alpha == quote.alpha {
		return big.NewRat(1, 1), nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if m, ok := p.rates[base.alpha]; ok {
		if r, ok := m[quote.alpha]; ok {
			return new(big.Rat).Set(r), nil
		}
	}
	return nil, &CurrencyConversionError{Source: base.alpha, Target: quote.alpha}
}

// CachedRateProvider memoizes an underlying provider's successful lookups.
// Failures are never cached, so a transient provider error does not get
// latched in permanently.
type CachedRateProvider struct {
	underlying ExchangeRateProvider
	mu         sync.RWMutex
	cache      map[string]map[string]*big.Rat
}

// NewCachedRateProvider wraps underlying with a memoizing cache.
func NewCachedRateProvider(underlying ExchangeRateProvider) *CachedRateProvider {
	return &CachedRateProvider{underlying: underlying, cache: make(map[string]map[string]*big.Rat)}
}

// Rate implements [ExchangeRateProvider].
func (p *CachedRateProvider) Rate(base, quote Currency) (*big.Rat, error) {
	p.mu.RLock()
	if m, ok := p.cache[base.alpha]; ok {
		if r, ok := m[quote.alpha]; ok {
			p.mu.RUnlock()
			return new(big.Rat).Set(r), nil
		}
	}
	p.mu.RUnlock()

	r, err := p.underlying.Rate(base, quote)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	if p.cache[base.alpha] == nil {
		p.cache[base.alpha] = make(map[string]*big.Rat)
	}
	p.cache[base.alpha][quote.alpha] = new(big.Rat).Set(r)
	p.mu.Unlock()
	return new(big.Rat).Set(r), nil
}

// ChainRateProvider tries each underlying provider in order, returning the
// first successful rate. If every provider fails, it returns the last
// provider's error.
type ChainRateProvider struct {
	providers []ExchangeRateProvider
}

// NewChainRateProvider returns a provider that tries providers in order.
func NewChainRateProvider(providers ...ExchangeRateProvider) *ChainRateProvider {
	return &ChainRateProvider{providers: providers}
}

// Rate implements [ExchangeRateProvider].
func (p *ChainRateProvider) Rate(base, quote Currency) (*big.Rat, error) {
	var lastErr error
	for _, prov := range p.providers {
		r, err := prov.Rate(base, quote)
		if err == nil {
			return r, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = &CurrencyConversionError{Source: base.alpha, Target: quote.alpha, Detail: "no providers configured"}
	}
	return nil, lastErr
}

// BaseCurrencyRateProvider derives cross rates through a pivot currency: the
// rate from base to quote is computed as (pivot-per-base) / (pivot-per-quote),
// using each leg's own exact reciprocal when the direct pivot rate isn't
// already expressed that way.
type BaseCurrencyRateProvider struct {
	underlying ExchangeRateProvider
	pivot      Currency
}

// NewBaseCurrencyRateProvider returns a provider that derives cross rates
// through pivot, using underlying for rates to and from pivot.
func NewBaseCurrencyRateProvider(underlying ExchangeRateProvider, pivot Currency) *BaseCurrencyRateProvider {
	return &BaseCurrencyRateProvider{underlying: underlying, pivot: pivot}
}

// Rate implements [ExchangeRateProvider].
func (p *BaseCurrencyRateProvider) Rate(base, quote Currency) (*big.Rat, error) {
	if base.alpha == quote.alpha {
		return big.NewRat(1, 1), nil
	}
	baseToPivot := big.NewRat(1, 1)
	if base.alpha != p.pivot.alpha {
		r, err := p.rateVia(base, p.pivot)
		if err != nil {
			return nil, err
		}
		baseToPivot = r
	}
	pivotToQuote := big.NewRat(1, 1)
	if quote.alpha != p.pivot.alpha {
		r, err := p.rateVia(p.pivot, quote)
		if err != nil {
			return nil, err
		}
		pivotToQuote = r
	}
	return new(big.Rat).Mul(baseToPivot, pivotToQuote), nil
}

// rateVia resolves the rate from a to b, falling back to the exact
// reciprocal of the rate from b to a when the direct rate isn't known.
func (p *BaseCurrencyRateProvider) rateVia(a, b Currency) (*big.Rat, error) {
	r, err := p.underlying.Rate(a, b)
	if err == nil {
		return r, nil
	}
	inv, invErr := p.underlying.Rate(b, a)
	if invErr != nil {
		return nil, err
	}
	if inv.Sign() == 0 {
		return nil, &CurrencyConversionError{Source: a.alpha, Target: b.alpha, Detail: "reciprocal rate is zero"}
	}
	return new(big.Rat).Inv(inv), nil
}
