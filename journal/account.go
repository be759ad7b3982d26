package journal

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	AccountLive = "live"
	AccountDemo = "demo"
)

// Currencies lists the supported account denominations.
var Currencies = []string{"USD", "EUR", "GBP", "JPY", "CHF"}

// Account is a trading account the journal records trades against. ID is a
// millisecond-timestamp-derived identifier assigned at creation and never
// reused; trades reference it as their foreign key.
type Account struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Broker          string          `json:"broker"`
	BrokerAccountID string          `json:"brokerAccountId"`
	Balance         decimal.Decimal `json:"balance"`
	Currency        string          `json:"currency"`
	Leverage        int             `json:"leverage"`
	AccountType     string          `json:"accountType"`
	Description     string          `json:"description,omitempty"`
}

// Normalize fills defaults the same way the entry form did: USD, 1:1
// leverage, live account.
func (a *Account) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Broker = strings.TrimSpace(a.Broker)
	a.BrokerAccountID = strings.TrimSpace(a.BrokerAccountID)
	if a.Currency == "" {
		a.Currency = "USD"
	}
	if a.Leverage < 1 {
		a.Leverage = 1
	}
	if a.AccountType == "" {
		a.AccountType = AccountLive
	}
}

// Validate checks the mandatory fields and enumerations. Callers normalize
// first.
func (a Account) Validate() error {
	if a.Name == "" {
		return required("name")
	}
	if a.Broker == "" {
		return required("broker")
	}
	if a.BrokerAccountID == "" {
		return required("broker account id")
	}
	if !validCurrency(a.Currency) {
		return &ValidationError{Field: "currency", Reason: fmt.Sprintf("must be one of %s", strings.Join(Currencies, ", "))}
	}
	if a.AccountType != AccountLive && a.AccountType != AccountDemo {
		return &ValidationError{Field: "account type", Reason: "must be live or demo"}
	}
	return nil
}

func validCurrency(code string) bool {
	if money.GetCurrency(code) == nil {
		return false
	}
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}
