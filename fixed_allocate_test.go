package money

import "testing"

func sumFixed(t *testing.T, parts []FixedMoney) FixedMoney {
	t.Helper()
	total := parts[0]
	for _, p := range parts[1:] {
		var err error
		total, err = total.Plus(p, Unnecessary)
		if err != nil {
			t.Fatal(err)
		}
	}
	return total
}

func TestFixedMoney_Allocate(t *testing.T) {
	m := mustFixed(t, "USD", "99.99")
	parts, err := m.Allocate(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 2 || parts[0].String() != "USD 50.00" || parts[1].String() != "USD 49.99" {
		t.Fatalf("Allocate(100, 100) = %v, want [USD 50.00 USD 49.99]", parts)
	}
	if !sumFixed(t, parts).IsAmountAndCurrencyEqualTo(m) {
		t.Fatalf("allocated parts %v do not sum to %v", parts, m)
	}
}

func TestFixedMoney_Allocate_threeWay(t *testing.T) {
	m := mustFixed(t, "USD", "100.00")
	parts, err := m.Allocate(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !sumFixed(t, parts).IsAmountAndCurrencyEqualTo(m) {
		t.Fatalf("allocated parts %v do not sum to %v", parts, m)
	}
	// The remainder (1 cent) goes to the first part: leftovers are handed
	// out from the front.
	if parts[0].String() != "USD 33.34" {
		t.Fatalf("parts[0] = %v, want USD 33.34", parts[0])
	}
}

func TestFixedMoney_Allocate_gcdInvariant(t *testing.T) {
	m := mustFixed(t, "USD", "100.00")
	a, err := m.Allocate(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Allocate(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if !a[i].IsAmountAndCurrencyEqualTo(b[i]) {
			t.Fatalf("Allocate(1,2) != Allocate(10,20) at index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestFixedMoney_Allocate_unequalRatios(t *testing.T) {
	m := mustFixed(t, "USD", "100.00")
	parts, err := m.Allocate(30, 20, 40, 40)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"USD 23.08", "USD 15.39", "USD 30.77", "USD 30.76"}
	for i, w := range want {
		if parts[i].String() != w {
			t.Fatalf("Allocate(30,20,40,40)[%d] = %v, want %v", i, parts[i], w)
		}
	}
	if !sumFixed(t, parts).IsAmountAndCurrencyEqualTo(m) {
		t.Fatalf("allocated parts %v do not sum to %v", parts, m)
	}
}

func TestFixedMoney_Allocate_errors(t *testing.T) {
	m := mustFixed(t, "USD", "10.00")
	if _, err := m.Allocate(); err == nil {
		t.Fatal("expected error for empty ratios")
	}
	if _, err := m.Allocate(1, -1); err == nil {
		t.Fatal("expected error for negative ratio")
	}
	if _, err := m.Allocate(0, 0); err == nil {
		t.Fatal("expected error for all-zero ratios")
	}
}

func TestFixedMoney_AllocateWithRemainder(t *testing.T) {
	m := mustFixed(t, "USD", "100.00")
	parts, remainder, err := m.AllocateWithRemainder(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	total := sumFixed(t, parts)
	total, err = total.Plus(remainder, Unnecessary)
	if err != nil {
		t.Fatal(err)
	}
	if !total.IsAmountAndCurrencyEqualTo(m) {
		t.Fatalf("parts + remainder = %v, want %v", total, m)
	}
	if remainder.String() != "USD 0.01" {
		t.Fatalf("remainder = %v, want USD 0.01", remainder)
	}
}

func TestFixedMoney_AllocateWithRemainder_unequalRatios(t *testing.T) {
	m := mustFixed(t, "USD", "0.54")
	parts, remainder, err := m.AllocateWithRemainder(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if parts[0].String() != "USD 0.20" || parts[1].String() != "USD 0.30" {
		t.Fatalf("AllocateWithRemainder(2,3) parts = %v, want [USD 0.20 USD 0.30]", parts)
	}
	if remainder.String() != "USD 0.04" {
		t.Fatalf("AllocateWithRemainder(2,3) remainder = %v, want USD 0.04", remainder)
	}
	total := sumFixed(t, parts)
	total, err = total.Plus(remainder, Unnecessary)
	if err != nil {
		t.Fatal(err)
	}
	if !total.IsAmountAndCurrencyEqualTo(m) {
		t.Fatalf("parts + remainder = %v, want %v", total, m)
	}
}

func TestFixedMoney_AllocateWithRemainder_ratioInvariance(t *testing.T) {
	m := mustFixed(t, "USD", "0.54")
	parts1, rem1, err := m.AllocateWithRemainder(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	parts2, rem2, err := m.AllocateWithRemainder(20, 30)
	if err != nil {
		t.Fatal(err)
	}
	for i := range parts1 {
		if !parts1[i].IsAmountAndCurrencyEqualTo(parts2[i]) {
			t.Fatalf("AllocateWithRemainder(2,3) != AllocateWithRemainder(20,30) at index %d: %v != %v", i, parts1[i], parts2[i])
		}
	}
	if !rem1.IsAmountAndCurrencyEqualTo(rem2) {
		t.Fatalf("remainders differ: %v != %v", rem1, rem2)
	}
}

func TestFixedMoney_Split(t *testing.T) {
	m := mustFixed(t, "USD", "10.00")
	parts, err := m.Split(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 3 {
		t.Fatalf("Split(3) returned %d parts, want 3", len(parts))
	}
	if !sumFixed(t, parts).IsAmountAndCurrencyEqualTo(m) {
		t.Fatalf("split parts %v do not sum to %v", parts, m)
	}
}

func TestFixedMoney_Split_invalidN(t *testing.T) {
	m := mustFixed(t, "USD", "10.00")
	if _, err := m.Split(0); err == nil {
		t.Fatal("expected error for n < 1")
	}
}

func TestFixedMoney_SplitWithRemainder(t *testing.T) {
	m := mustFixed(t, "USD", "10.01")
	parts, remainder, err := m.SplitWithRemainder(2)
	if err != nil {
		t.Fatal(err)
	}
	total := sumFixed(t, parts)
	total, err = total.Plus(remainder, Unnecessary)
	if err != nil {
		t.Fatal(err)
	}
	if !total.IsAmountAndCurrencyEqualTo(m) {
		t.Fatalf("parts + remainder = %v, want %v", total, m)
	}
}
