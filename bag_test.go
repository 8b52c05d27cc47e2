package money

import "testing"

func TestMoneyBag_AddSubtract(t *testing.T) {
	bag := NewMoneyBag()
	usd := mustFixed(t, "USD", "10.00")
	eur := mustFixed(t, "EUR", "5.00")

	bag.AddFixed(usd)
	bag.AddFixed(eur)
	bag.SubtractFixed(mustFixed(t, "USD", "3.00"))

	got := bag.GetAmount(MustParseCurr("USD"))
	want := mustFixed(t, "USD", "7.00").ToRational()
	if cmp, err := got.CompareTo(want); err != nil || cmp != 0 {
		t.Fatalf("GetAmount(USD) = %v, want %v", got, want)
	}
}

func TestMoneyBag_GetAmount_unseenCurrencyIsZero(t *testing.T) {
	bag := NewMoneyBag()
	got := bag.GetAmount(MustParseCurr("JPY"))
	if !got.IsZero() {
		t.Fatalf("GetAmount on an untouched currency = %v, want zero", got)
	}
}

func TestMoneyBag_IsEmpty(t *testing.T) {
	bag := NewMoneyBag()
	if !bag.IsEmpty() {
		t.Fatal("a fresh bag must be empty")
	}
	bag.AddFixed(mustFixed(t, "USD", "5.00"))
	if bag.IsEmpty() {
		t.Fatal("bag with a non-zero entry must not be empty")
	}
	bag.SubtractFixed(mustFixed(t, "USD", "5.00"))
	if !bag.IsEmpty() {
		t.Fatal("bag netting to zero across every currency must be empty")
	}
}

func TestMoneyBag_GetAmounts_sortedAndNonZeroOnly(t *testing.T) {
	bag := NewMoneyBag()
	bag.AddFixed(mustFixed(t, "USD", "1.00"))
	bag.AddFixed(mustFixed(t, "EUR", "2.00"))
	bag.AddFixed(mustFixed(t, "GBP", "3.00"))
	bag.SubtractFixed(mustFixed(t, "GBP", "3.00"))

	amounts := bag.GetAmounts()
	if len(amounts) != 2 {
		t.Fatalf("GetAmounts() returned %d entries, want 2 (GBP nets to zero)", len(amounts))
	}
	if amounts[0].Currency().Code() != "EUR" || amounts[1].Currency().Code() != "USD" {
		t.Fatalf("GetAmounts() not sorted by code: %v", amounts)
	}
}
