package money

import "testing"

func TestParseCurr(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"USD", false},
		{"usd", false},
		{"840", false},
		{"XXX", false},
		{"ZZZ", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := ParseCurr(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCurr(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if err == nil && c.Code() == "" {
				t.Fatalf("ParseCurr(%q) returned empty code", tt.code)
			}
		})
	}
}

func TestParseCurr_caseInsensitive(t *testing.T) {
	upper, err := ParseCurr("EUR")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := ParseCurr("eur")
	if err != nil {
		t.Fatal(err)
	}
	if upper != lower {
		t.Fatalf("ParseCurr case mismatch: %v != %v", upper, lower)
	}
}

func TestNewCurrency_negativeDigits(t *testing.T) {
	_, err := NewCurrency("XBT", -1, "Bitcoin", -2)
	if err == nil {
		t.Fatal("expected error for negative digits")
	}
}

func TestNewCurrency_custom(t *testing.T) {
	xbt, err := NewCurrency("XBT", -1, "Bitcoin", 8)
	if err != nil {
		t.Fatal(err)
	}
	if xbt.Code() != "XBT" || xbt.DefaultFractionDigits() != 8 {
		t.Fatalf("unexpected currency: %+v", xbt)
	}
	if _, err := ParseCurr("XBT"); err == nil {
		t.Fatal("custom currency must not be added to the catalogue")
	}
}

func TestCurrencyOfCountry(t *testing.T) {
	tests := []struct {
		iso2    string
		want    string
		wantErr bool
	}{
		{"CH", "CHF", false},
		{"ch", "CHF", false},
		{"AQ", "", true}, // no currency
		{"PA", "", true}, // ambiguous
		{"ZZ", "", true}, // unknown
	}
	for _, tt := range tests {
		t.Run(tt.iso2, func(t *testing.T) {
			c, err := CurrencyOfCountry(tt.iso2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CurrencyOfCountry(%q) error = %v, wantErr %v", tt.iso2, err, tt.wantErr)
			}
			if err == nil && c.Code() != tt.want {
				t.Fatalf("CurrencyOfCountry(%q) = %v, want %v", tt.iso2, c.Code(), tt.want)
			}
		})
	}
}

func TestCurrency_Is(t *testing.T) {
	usd := MustParseCurr("USD")
	if !usd.Is("USD") || !usd.Is("usd") || !usd.Is(840) || !usd.Is(usd) {
		t.Fatal("Is should match alpha code, numeric code, and itself")
	}
	if usd.Is("EUR") || usd.Is(978) {
		t.Fatal("Is should not match a different currency")
	}
}

func TestCurrency_JSONRoundTrip(t *testing.T) {
	usd := MustParseCurr("USD")
	data, err := usd.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"USD"` {
		t.Fatalf("MarshalJSON = %s, want %q", data, `"USD"`)
	}
	var got Currency
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got != usd {
		t.Fatalf("round trip mismatch: got %v, want %v", got, usd)
	}
}

func TestCurrency_ScanValue(t *testing.T) {
	var c Currency
	if err := c.Scan("GBP"); err != nil {
		t.Fatal(err)
	}
	if c.Code() != "GBP" {
		t.Fatalf("Scan: got %v", c)
	}
	if err := c.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if c != XXX {
		t.Fatalf("Scan(nil) should reset to XXX, got %v", c)
	}
	v, err := MustParseCurr("JPY").Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "JPY" {
		t.Fatalf("Value() = %v, want JPY", v)
	}
}

func TestAvailableCurrencies_defensiveCopy(t *testing.T) {
	m := AvailableCurrencies()
	delete(m, "USD")
	if _, err := ParseCurr("USD"); err != nil {
		t.Fatal("mutating the returned map must not affect the catalogue")
	}
}
