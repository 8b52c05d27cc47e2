package money

import (
	"math/big"
	"testing"
)

func TestRationalMoney_ArithmeticIsExact(t *testing.T) {
	usd := MustParseCurr("USD")
	a := NewRationalMoney(big.NewRat(1, 3), usd)
	b := NewRationalMoney(big.NewRat(1, 3), usd)
	c := NewRationalMoney(big.NewRat(1, 3), usd)

	sum, err := a.Plus(b)
	if err != nil {
		t.Fatal(err)
	}
	sum, err = sum.Plus(c)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Rat().Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatalf("1/3 + 1/3 + 1/3 = %v, want 1", sum)
	}
}

func TestRationalMoney_currencyMismatch(t *testing.T) {
	usd := NewRationalMoney(big.NewRat(1, 1), MustParseCurr("USD"))
	eur := NewRationalMoney(big.NewRat(1, 1), MustParseCurr("EUR"))
	if _, err := usd.Plus(eur); err == nil {
		t.Fatal("expected MoneyMismatchError")
	}
}

func TestRationalMoney_To(t *testing.T) {
	usd := MustParseCurr("USD")
	third := NewRationalMoney(big.NewRat(1, 3), usd)
	if _, err := third.To(DefaultContext(), Unnecessary); err == nil {
		t.Fatal("1/3 cannot be represented exactly as a decimal; expected RoundingNecessaryError")
	}
	got, err := third.To(DefaultContext(), HalfUp)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "USD 0.33" {
		t.Fatalf("To(HalfUp) = %v, want USD 0.33", got)
	}
}

func TestRationalMoney_DividedBy_byZero(t *testing.T) {
	usd := NewRationalMoney(big.NewRat(1, 1), MustParseCurr("USD"))
	if _, err := usd.DividedBy(big.NewRat(0, 1)); err == nil {
		t.Fatal("expected DivisionByZeroError")
	}
}

func TestRationalMoney_String(t *testing.T) {
	usd := MustParseCurr("USD")
	if got := NewRationalMoney(big.NewRat(3, 2), usd).String(); got != "USD 3/2" {
		t.Fatalf("String() = %q, want %q", got, "USD 3/2")
	}
	if got := NewRationalMoney(big.NewRat(4, 2), usd).String(); got != "USD 2" {
		t.Fatalf("String() = %q, want %q", got, "USD 2")
	}
}

func TestRationalMoney_JSONRoundTrip(t *testing.T) {
	usd := MustParseCurr("USD")
	m := NewRationalMoney(big.NewRat(7, 3), usd)
	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got RationalMoney
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got.Rat().Cmp(m.Rat()) != 0 || got.Currency() != m.Currency() {
		t.Fatalf("round trip mismatch: got %v, want %v", got, m)
	}
}

func TestRationalMoney_JSONShape(t *testing.T) {
	m, err := ParseRationalMoney("EUR", "3.5")
	if err != nil {
		t.Fatal(err)
	}
	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"amount":"35/10","currency":"EUR"}`
	if string(data) != want {
		t.Fatalf("MarshalJSON() = %s, want %s", data, want)
	}
}

func TestRationalMoney_Plus_unsimplifiedUntilSimplified(t *testing.T) {
	a, err := ParseRationalMoney("USD", "1.1234")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseRationalMoney("USD", "987.65")
	if err != nil {
		t.Fatal(err)
	}
	sum, err := a.Plus(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.String() != "USD 988773400/1000000" {
		t.Fatalf("Plus() = %v, want USD 988773400/1000000", sum)
	}
	if got := sum.Simplified().String(); got != "USD 9887734/10000" {
		t.Fatalf("Simplified() = %v, want USD 9887734/10000", got)
	}
	// Simplified does not mutate the receiver.
	if sum.String() != "USD 988773400/1000000" {
		t.Fatalf("Plus() result mutated by Simplified(): %v", sum)
	}
}
