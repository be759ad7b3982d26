package journal

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	TypeBuy  = "buy"
	TypeSell = "sell"
)

// Trade is one broker-reported execution. Ticket is the broker-assigned
// identity. AccountID references the owning Account; Account carries the
// display name and is resolved at render time, never trusted for linkage.
// Timestamps are kept as the local ISO-like strings statements carry
// (2023-01-15T10:30:00).
type Trade struct {
	Ticket     string          `json:"ticket"`
	OpenTime   string          `json:"openTime"`
	Type       string          `json:"type"`
	Size       decimal.Decimal `json:"size"`
	Item       string          `json:"item"`
	Price      decimal.Decimal `json:"price"`
	StopLoss   decimal.Decimal `json:"sl"`
	TakeProfit decimal.Decimal `json:"tp"`
	CloseTime  string          `json:"closeTime,omitempty"`
	ClosePrice decimal.Decimal `json:"closePrice"`
	Commission decimal.Decimal `json:"commission"`
	Taxes      decimal.Decimal `json:"taxes"`
	Swap       decimal.Decimal `json:"swap"`
	Profit     decimal.Decimal `json:"profit"`
	AccountID  int64           `json:"accountId"`
	Account    string          `json:"account,omitempty"`
}

// Normalize uppercases the instrument and lowercases the direction, the same
// coercion the save path has always applied.
func (t *Trade) Normalize() {
	t.Ticket = strings.TrimSpace(t.Ticket)
	t.Item = strings.ToUpper(strings.TrimSpace(t.Item))
	t.Type = strings.ToLower(strings.TrimSpace(t.Type))
	if t.Type == "" {
		t.Type = TypeBuy
	}
}

// Validate checks the mandatory fields: ticket, open time, direction, size,
// instrument, entry price and account reference. Stop loss, take profit and
// the close leg stay optional.
func (t Trade) Validate() error {
	if t.Ticket == "" {
		return required("ticket")
	}
	if t.OpenTime == "" {
		return required("open time")
	}
	if t.Type != TypeBuy && t.Type != TypeSell {
		return &ValidationError{Field: "type", Reason: "must be buy or sell"}
	}
	if t.Size.IsZero() {
		return required("size")
	}
	if t.Item == "" {
		return required("item")
	}
	if t.Price.IsZero() {
		return required("price")
	}
	if t.AccountID == 0 {
		return required("account")
	}
	return nil
}
