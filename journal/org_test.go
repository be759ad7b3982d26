package journal

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	usd := FormatMoney(decimal.RequireFromString("1234.50"), "USD")
	assert.Equal(t, "$1,234.50", usd)

	jpy := FormatMoney(decimal.NewFromInt(1234), "JPY")
	assert.Contains(t, jpy, "1,234")
	assert.NotContains(t, jpy, ".")

	unknown := FormatMoney(decimal.NewFromInt(5), "ZZZ")
	assert.Equal(t, "5 ZZZ", unknown)
}

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	tr := validTrade()
	tr.Account = "Main"
	tr.StopLoss = decimal.RequireFromString("1.09")

	out := FormatTradeOrg(tr)
	assert.True(t, strings.HasPrefix(out, "** Trade: EURUSD buy (#12345)"))
	assert.Contains(t, out, ":TICKET: 12345")
	assert.Contains(t, out, ":ACCOUNT: Main")
	assert.Contains(t, out, ":SL: 1.09")
	// No close leg recorded, so none rendered.
	assert.NotContains(t, out, ":CLOSE_TIME:")
	assert.NotContains(t, out, ":TP:")
}

func TestFormatAccountOrg(t *testing.T) {
	t.Parallel()

	a := Account{
		ID:              42,
		Name:            "Main",
		Broker:          "FTMO",
		BrokerAccountID: "510044",
		Balance:         decimal.NewFromInt(10000),
		Currency:        "USD",
		Leverage:        100,
		AccountType:     AccountLive,
		Description:     "evaluation account",
	}

	out := FormatAccountOrg(a)
	assert.Contains(t, out, "** Account: Main (42)")
	assert.Contains(t, out, ":BROKER: FTMO (510044)")
	assert.Contains(t, out, ":BALANCE: $10,000.00")
	assert.Contains(t, out, ":LEVERAGE: 1:100")
	assert.Contains(t, out, "evaluation account")
}

func TestFormatTradesOrgSeparation(t *testing.T) {
	t.Parallel()

	a := validTrade()
	b := validTrade()
	b.Ticket = "12346"

	out := FormatTradesOrg([]Trade{a, b})
	assert.Contains(t, out, "#12345")
	assert.Contains(t, out, "#12346")
	assert.Equal(t, 2, strings.Count(out, "** Trade:"))
}
