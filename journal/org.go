package journal

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatTradeOrg renders a Trade as an Org-mode block suitable for pasting
// into a journal, with all structured facts in a PROPERTIES drawer for easy
// search.
func FormatTradeOrg(t Trade) string {
	account := t.Account
	if account == "" {
		account = fmt.Sprintf("(account %d)", t.AccountID)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Trade: %s %s (#%s)\n", t.Item, t.Type, t.Ticket))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TICKET: %s\n", t.Ticket))
	b.WriteString(fmt.Sprintf(":ACCOUNT: %s\n", account))
	b.WriteString(fmt.Sprintf(":ITEM: %s\n", t.Item))
	b.WriteString(fmt.Sprintf(":TYPE: %s\n", t.Type))
	b.WriteString(fmt.Sprintf(":SIZE: %s\n", t.Size))
	b.WriteString(fmt.Sprintf(":OPEN_TIME: %s\n", t.OpenTime))
	b.WriteString(fmt.Sprintf(":PRICE: %s\n", t.Price))
	if !t.StopLoss.IsZero() {
		b.WriteString(fmt.Sprintf(":SL: %s\n", t.StopLoss))
	}
	if !t.TakeProfit.IsZero() {
		b.WriteString(fmt.Sprintf(":TP: %s\n", t.TakeProfit))
	}
	if t.CloseTime != "" {
		b.WriteString(fmt.Sprintf(":CLOSE_TIME: %s\n", t.CloseTime))
		b.WriteString(fmt.Sprintf(":CLOSE_PRICE: %s\n", t.ClosePrice))
	}
	b.WriteString(fmt.Sprintf(":COMMISSION: %s\n", t.Commission))
	b.WriteString(fmt.Sprintf(":TAXES: %s\n", t.Taxes))
	b.WriteString(fmt.Sprintf(":SWAP: %s\n", t.Swap))
	b.WriteString(fmt.Sprintf(":PROFIT: %s\n", t.Profit))
	b.WriteString(":END:\n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

// FormatAccountOrg renders an Account as an Org-mode block.
func FormatAccountOrg(a Account) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Account: %s (%d)\n", a.Name, a.ID))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %d\n", a.ID))
	b.WriteString(fmt.Sprintf(":BROKER: %s (%s)\n", a.Broker, a.BrokerAccountID))
	b.WriteString(fmt.Sprintf(":TYPE: %s\n", a.AccountType))
	b.WriteString(fmt.Sprintf(":BALANCE: %s\n", FormatMoney(a.Balance, a.Currency)))
	b.WriteString(fmt.Sprintf(":LEVERAGE: 1:%d\n", a.Leverage))
	b.WriteString(":END:\n")
	if a.Description != "" {
		b.WriteString(a.Description)
		b.WriteString("\n")
	}

	return b.String()
}

// FormatAccountsOrg renders multiple accounts separated by blank lines.
func FormatAccountsOrg(accounts []Account) string {
	var b strings.Builder
	for i, a := range accounts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatAccountOrg(a))
	}
	return b.String()
}

// FormatMoney renders an amount with its currency's symbol and fraction
// rules, e.g. $1,234.50 for USD or ¥1,234 for JPY.
func FormatMoney(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.String() + " " + code
	}
	return cur.Formatter().Format(amount.Shift(int32(cur.Fraction)).IntPart())
}
