package money

import (
	"math/big"
	"testing"
)

func TestNewRate(t *testing.T) {
	usd, eur := MustParseCurr("USD"), MustParseCurr("EUR")
	if _, err := NewRate(usd, eur, big.NewRat(0, 1)); err == nil {
		t.Fatal("expected error for non-positive rate")
	}
	if _, err := NewRate(usd, eur, big.NewRat(-1, 2)); err == nil {
		t.Fatal("expected error for negative rate")
	}
	if _, err := NewRate(usd, usd, big.NewRat(11, 10)); err == nil {
		t.Fatal("expected error: same-currency rate must be exactly 1")
	}
	if _, err := NewRate(usd, usd, big.NewRat(1, 1)); err != nil {
		t.Fatalf("NewRate(USD, USD, 1) failed: %v", err)
	}
	r, err := NewRate(usd, eur, big.NewRat(92, 100))
	if err != nil {
		t.Fatal(err)
	}
	if r.Base() != usd || r.Quote() != eur || r.Rat().Cmp(big.NewRat(92, 100)) != 0 {
		t.Fatalf("NewRate() = %v, fields not as constructed", r)
	}
}

func TestParseRate(t *testing.T) {
	r, err := ParseRate("USD", "EUR", "11/10")
	if err != nil {
		t.Fatal(err)
	}
	if r.Rat().Cmp(big.NewRat(11, 10)) != 0 {
		t.Fatalf("ParseRate() rate = %v, want 11/10", r.Rat())
	}
	if _, err := ParseRate("ZZZ", "EUR", "1"); err == nil {
		t.Fatal("expected error for unknown base currency")
	}
	if _, err := ParseRate("USD", "EUR", "not-a-number"); err == nil {
		t.Fatal("expected NumberFormatError for unparseable rate")
	}
}

func TestRate_Mul(t *testing.T) {
	r := MustNewRate(MustParseCurr("USD"), MustParseCurr("EUR"), big.NewRat(9, 10))
	scaled, err := r.Mul(big.NewRat(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	if scaled.Base() != r.Base() || scaled.Quote() != r.Quote() {
		t.Fatalf("Mul() changed base/quote: %v", scaled)
	}
	if scaled.Rat().Cmp(big.NewRat(9, 5)) != 0 {
		t.Fatalf("Mul(2) rate = %v, want 9/5", scaled.Rat())
	}
	if _, err := r.Mul(big.NewRat(0, 1)); err == nil {
		t.Fatal("expected error for non-positive factor")
	}
}

func TestRate_Inv(t *testing.T) {
	r := MustNewRate(MustParseCurr("USD"), MustParseCurr("EUR"), big.NewRat(4, 5))
	inv := r.Inv()
	if inv.Base() != r.Quote() || inv.Quote() != r.Base() {
		t.Fatalf("Inv() base/quote = %v/%v, want swapped", inv.Base(), inv.Quote())
	}
	if inv.Rat().Cmp(big.NewRat(5, 4)) != 0 {
		t.Fatalf("Inv() rate = %v, want 5/4", inv.Rat())
	}
}

func TestRate_Convert(t *testing.T) {
	usd, eur := MustParseCurr("USD"), MustParseCurr("EUR")
	r := MustNewRate(usd, eur, big.NewRat(9, 10))
	m := mustFixed(t, "USD", "10.00")

	if !r.CanConvert(m) {
		t.Fatal("CanConvert() = false, want true")
	}
	got, err := r.Convert(m)
	if err != nil {
		t.Fatal(err)
	}
	if got.Currency() != eur || got.Rat().Cmp(big.NewRat(9, 1)) != 0 {
		t.Fatalf("Convert() = %v, want EUR 9", got)
	}

	wrong := mustFixed(t, "GBP", "10.00")
	if r.CanConvert(wrong) {
		t.Fatal("CanConvert() = true for mismatched base currency")
	}
	if _, err := r.Convert(wrong); err == nil {
		t.Fatal("expected MoneyMismatchError for mismatched base currency")
	}
}

func TestRate_SameCurr(t *testing.T) {
	usd, eur := MustParseCurr("USD"), MustParseCurr("EUR")
	a := MustNewRate(usd, eur, big.NewRat(9, 10))
	b := MustNewRate(usd, eur, big.NewRat(11, 10))
	c := MustNewRate(eur, usd, big.NewRat(10, 9))
	if !a.SameCurr(b) {
		t.Fatal("SameCurr() = false, want true for same base/quote pair")
	}
	if a.SameCurr(c) {
		t.Fatal("SameCurr() = true, want false for swapped base/quote")
	}
}

func TestRate_String(t *testing.T) {
	usd, eur := MustParseCurr("USD"), MustParseCurr("EUR")
	if got := MustNewRate(usd, eur, big.NewRat(11, 10)).String(); got != "USD/EUR 11/10" {
		t.Fatalf("String() = %q, want %q", got, "USD/EUR 11/10")
	}
	if got := MustNewRate(usd, eur, big.NewRat(2, 1)).String(); got != "USD/EUR 2" {
		t.Fatalf("String() = %q, want %q", got, "USD/EUR 2")
	}
}

func TestAsRatProvider(t *testing.T) {
	usd, eur, gbp := MustParseCurr("USD"), MustParseCurr("EUR"), MustParseCurr("GBP")
	r := MustNewRate(usd, eur, big.NewRat(9, 10))
	p := NewAsRatProvider(r)

	got, err := p.Rate(usd, eur)
	if err != nil || got.Cmp(big.NewRat(9, 10)) != 0 {
		t.Fatalf("Rate(USD, EUR) = (%v, %v), want 9/10", got, err)
	}
	inv, err := p.Rate(eur, usd)
	if err != nil || inv.Cmp(big.NewRat(10, 9)) != 0 {
		t.Fatalf("Rate(EUR, USD) = (%v, %v), want exact inverse 10/9", inv, err)
	}
	if same, err := p.Rate(usd, usd); err != nil || same.Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatalf("Rate(USD, USD) = (%v, %v), want 1", same, err)
	}
	if _, err := p.Rate(usd, gbp); err == nil {
		t.Fatal("expected CurrencyConversionError for an unrelated pair")
	}
}
