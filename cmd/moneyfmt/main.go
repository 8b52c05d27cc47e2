// Command moneyfmt formats a monetary amount for a given locale, exercising
// FixedMoney.FormatTo end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring-ledger/money"
	"golang.org/x/text/language"
)

func main() {
	curr := flag.String("curr", "USD", "ISO 4217 currency code")
	amount := flag.String("amount", "0", "decimal amount")
	locale := flag.String("locale", "en", "BCP 47 locale tag")
	wholeOK := flag.Bool("allow-whole", false, "omit the fractional part for whole-number amounts")
	flag.Parse()

	tag, err := language.Parse(*locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "moneyfmt: invalid locale %q: %v\n", *locale, err)
		os.Exit(1)
	}

	m, err := money.ParseFixedMoney(*curr, *amount, money.DefaultContext(), money.HalfUp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "moneyfmt: %v\n", err)
		os.Exit(1)
	}

	out, err := m.FormatTo(tag, *wholeOK)
	if err != nil {
		fmt.Fprintf(os.Stderr, "moneyfmt: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
