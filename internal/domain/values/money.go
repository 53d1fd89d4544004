package values

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in the currency's minor unit (integer
// cents). All auction arithmetic happens on minor units to avoid
// floating-point error.
type Money struct {
	cents    int64
	currency string
}

// Common currency codes (ISO 4217)
const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
)

// NewMoneyFromCents creates a Money value from integer minor units.
func NewMoneyFromCents(cents int64, currency string) (Money, error) {
	if err := validateCurrency(currency); err != nil {
		return Money{}, err
	}
	return Money{cents: cents, currency: strings.ToUpper(currency)}, nil
}

// MustMoneyFromCents creates Money and panics on error (for constants/tests).
func MustMoneyFromCents(cents int64, currency string) Money {
	m, err := NewMoneyFromCents(cents, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// Decimal returns the amount in major units as a decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.cents).Div(decimal.NewFromInt(100))
}

// String returns the amount with currency code (e.g., "12.50 USD").
func (m Money) String() string {
	return m.Decimal().StringFixed(2) + " " + m.currency
}

// IsZero checks if the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive checks if the amount is positive.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// Equal checks if two Money values are equal (same amount and currency).
func (m Money) Equal(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// Cmp returns -1, 0, or 1 comparing this amount with other.
// Panics if currencies don't match.
func (m Money) Cmp(other Money) int {
	if m.currency != other.currency {
		panic(fmt.Sprintf("cannot compare different currencies: %s vs %s", m.currency, other.currency))
	}
	switch {
	case m.cents < other.cents:
		return -1
	case m.cents > other.cents:
		return 1
	default:
		return 0
	}
}

// AddCents returns a new Money with the step added, same currency.
func (m Money) AddCents(step int64) Money {
	return Money{cents: m.cents + step, currency: m.currency}
}

// MarshalJSON emits {"amount_cents": n, "currency": "USD"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AmountCents int64  `json:"amount_cents"`
		Currency    string `json:"currency"`
	}{
		AmountCents: m.cents,
		Currency:    m.currency,
	})
}

// UnmarshalJSON parses the wire form produced by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var temp struct {
		AmountCents int64  `json:"amount_cents"`
		Currency    string `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	money, err := NewMoneyFromCents(temp.AmountCents, temp.Currency)
	if err != nil {
		return err
	}
	*m = money
	return nil
}

func validateCurrency(currency string) error {
	if currency == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters")
	}
	for _, r := range currency {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return fmt.Errorf("invalid currency code: %s", currency)
		}
	}
	return nil
}
