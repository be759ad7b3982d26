package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTrade() Trade {
	return Trade{
		Ticket:    "12345",
		OpenTime:  "2023-01-15T10:30:00",
		Type:      TypeBuy,
		Size:      decimal.NewFromFloat(1.5),
		Item:      "EURUSD",
		Price:     decimal.NewFromFloat(1.095),
		AccountID: 1,
	}
}

func TestTradeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Trade)
		wantErr string
	}{
		{"valid", func(tr *Trade) {}, ""},
		{"missing ticket", func(tr *Trade) { tr.Ticket = "" }, "ticket"},
		{"missing open time", func(tr *Trade) { tr.OpenTime = "" }, "open time"},
		{"bad type", func(tr *Trade) { tr.Type = "hold" }, "type"},
		{"zero size", func(tr *Trade) { tr.Size = decimal.Zero }, "size"},
		{"missing item", func(tr *Trade) { tr.Item = "" }, "item"},
		{"zero price", func(tr *Trade) { tr.Price = decimal.Zero }, "price"},
		{"missing account", func(tr *Trade) { tr.AccountID = 0 }, "account"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := validTrade()
			tt.mutate(&tr)

			err := tr.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTradeNormalize(t *testing.T) {
	t.Parallel()

	tr := Trade{Ticket: " 12345 ", Item: " eurusd ", Type: "SELL"}
	tr.Normalize()

	assert.Equal(t, "12345", tr.Ticket)
	assert.Equal(t, "EURUSD", tr.Item)
	assert.Equal(t, TypeSell, tr.Type)

	tr = Trade{}
	tr.Normalize()
	assert.Equal(t, TypeBuy, tr.Type)
}

func TestTradeOptionalFields(t *testing.T) {
	t.Parallel()

	// Stop loss, take profit and the close leg are optional.
	tr := validTrade()
	assert.NoError(t, tr.Validate())
	assert.True(t, tr.StopLoss.IsZero())
	assert.True(t, tr.TakeProfit.IsZero())
	assert.Empty(t, tr.CloseTime)
}
