package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Account)
		wantErr string
	}{
		{"valid", func(a *Account) {}, ""},
		{"missing name", func(a *Account) { a.Name = "" }, "name"},
		{"missing broker", func(a *Account) { a.Broker = "" }, "broker"},
		{"missing broker account id", func(a *Account) { a.BrokerAccountID = "" }, "broker account id"},
		{"unsupported currency", func(a *Account) { a.Currency = "AUD" }, "currency"},
		{"bogus currency", func(a *Account) { a.Currency = "XXX" }, "currency"},
		{"bad account type", func(a *Account) { a.AccountType = "paper" }, "account type"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := Account{
				Name:            "Main",
				Broker:          "FTMO",
				BrokerAccountID: "510044",
				Balance:         decimal.NewFromInt(10000),
				Currency:        "USD",
				Leverage:        100,
				AccountType:     AccountLive,
			}
			tt.mutate(&a)

			err := a.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAccountNormalize(t *testing.T) {
	t.Parallel()

	a := Account{Name: "  Main  ", Leverage: -5}
	a.Normalize()

	assert.Equal(t, "Main", a.Name)
	assert.Equal(t, "USD", a.Currency)
	assert.Equal(t, 1, a.Leverage)
	assert.Equal(t, AccountLive, a.AccountType)
}

func TestZeroBalanceIsValid(t *testing.T) {
	t.Parallel()

	a := Account{
		Name:            "Blown",
		Broker:          "FTMO",
		BrokerAccountID: "1",
		Currency:        "USD",
		Leverage:        1,
		AccountType:     AccountLive,
	}
	assert.NoError(t, a.Validate())
}
