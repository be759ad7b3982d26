package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Manage journal trades",
	Long: `Record, update, list and delete trades.

Examples:
  tradelog trade add --ticket 12345 --open-time 2023-01-15T10:30:00 --type buy \
      --size 1.5 --item EURUSD --price 1.0950 --account 1693526400123
  tradelog trade update 12345 --profit 45.00
  tradelog trade list
  tradelog trade rm 12345`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeUpdateCmd = &cobra.Command{
	Use:   "update <ticket>",
	Short: "Update an existing trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeUpdate,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trades",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeRmCmd = &cobra.Command{
	Use:   "rm <ticket>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeRm,
}

var (
	trTicket     string
	trOpenTime   string
	trType       string
	trSize       string
	trItem       string
	trPrice      string
	trSL         string
	trTP         string
	trCloseTime  string
	trClosePrice string
	trCommission string
	trTaxes      string
	trSwap       string
	trProfit     string
	trAccountID  int64
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeUpdateCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeRmCmd)

	for _, c := range []*cobra.Command{tradeAddCmd, tradeUpdateCmd} {
		c.Flags().StringVar(&trTicket, "ticket", "", "broker ticket number")
		c.Flags().StringVar(&trOpenTime, "open-time", "", "open time (2023-01-15T10:30:00)")
		c.Flags().StringVar(&trType, "type", journal.TypeBuy, "trade direction (buy or sell)")
		c.Flags().StringVar(&trSize, "size", "", "size in lots")
		c.Flags().StringVar(&trItem, "item", "", "instrument symbol")
		c.Flags().StringVar(&trPrice, "price", "", "entry price")
		c.Flags().StringVar(&trSL, "sl", "0", "stop loss price")
		c.Flags().StringVar(&trTP, "tp", "0", "take profit price")
		c.Flags().StringVar(&trCloseTime, "close-time", "", "close time")
		c.Flags().StringVar(&trClosePrice, "close-price", "0", "close price")
		c.Flags().StringVar(&trCommission, "commission", "0", "commission")
		c.Flags().StringVar(&trTaxes, "taxes", "0", "taxes")
		c.Flags().StringVar(&trSwap, "swap", "0", "swap")
		c.Flags().StringVar(&trProfit, "profit", "0", "realized profit")
		c.Flags().Int64Var(&trAccountID, "account", 0, "account id the trade belongs to")
	}

	tradeAddCmd.MarkFlagRequired("ticket")
	tradeAddCmd.MarkFlagRequired("open-time")
	tradeAddCmd.MarkFlagRequired("size")
	tradeAddCmd.MarkFlagRequired("item")
	tradeAddCmd.MarkFlagRequired("price")
	tradeAddCmd.MarkFlagRequired("account")
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q", name, value)
	}
	return d, nil
}

func tradeFromFlags() (journal.Trade, error) {
	t := journal.Trade{
		Ticket:    trTicket,
		OpenTime:  trOpenTime,
		Type:      trType,
		Item:      trItem,
		CloseTime: trCloseTime,
		AccountID: trAccountID,
	}

	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"size", trSize, &t.Size},
		{"price", trPrice, &t.Price},
		{"sl", trSL, &t.StopLoss},
		{"tp", trTP, &t.TakeProfit},
		{"close-price", trClosePrice, &t.ClosePrice},
		{"commission", trCommission, &t.Commission},
		{"taxes", trTaxes, &t.Taxes},
		{"swap", trSwap, &t.Swap},
		{"profit", trProfit, &t.Profit},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		d, err := parseAmount(f.name, f.value)
		if err != nil {
			return journal.Trade{}, err
		}
		*f.dst = d
	}
	return t, nil
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	t, err := tradeFromFlags()
	if err != nil {
		return err
	}

	j, _, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	t, err = j.SaveTrade(t, "")
	if err != nil {
		return err
	}

	fmt.Printf("✓ Recorded trade #%s (%s %s)\n", t.Ticket, t.Item, t.Type)
	return nil
}

func runTradeUpdate(cmd *cobra.Command, args []string) error {
	j, _, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	ticket := args[0]
	t, ok := j.TradeByTicket(ticket)
	if !ok {
		return fmt.Errorf("trade %q not found", ticket)
	}

	flags := cmd.Flags()
	if flags.Changed("ticket") {
		t.Ticket = trTicket
	}
	if flags.Changed("open-time") {
		t.OpenTime = trOpenTime
	}
	if flags.Changed("type") {
		t.Type = trType
	}
	if flags.Changed("item") {
		t.Item = trItem
	}
	if flags.Changed("close-time") {
		t.CloseTime = trCloseTime
	}
	if flags.Changed("account") {
		t.AccountID = trAccountID
	}

	amounts := []struct {
		flag  string
		value string
		dst   *decimal.Decimal
	}{
		{"size", trSize, &t.Size},
		{"price", trPrice, &t.Price},
		{"sl", trSL, &t.StopLoss},
		{"tp", trTP, &t.TakeProfit},
		{"close-price", trClosePrice, &t.ClosePrice},
		{"commission", trCommission, &t.Commission},
		{"taxes", trTaxes, &t.Taxes},
		{"swap", trSwap, &t.Swap},
		{"profit", trProfit, &t.Profit},
	}
	for _, a := range amounts {
		if !flags.Changed(a.flag) {
			continue
		}
		d, err := parseAmount(a.flag, a.value)
		if err != nil {
			return err
		}
		*a.dst = d
	}

	t, err = j.SaveTrade(t, ticket)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Updated trade #%s\n", t.Ticket)
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	j, _, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	trades := j.Trades()
	if len(trades) == 0 {
		fmt.Println("No trades recorded.")
		return nil
	}

	fmt.Println(journal.FormatTradesOrg(trades))
	return nil
}

func runTradeRm(cmd *cobra.Command, args []string) error {
	j, _, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := j.DeleteTrade(args[0]); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted trade #%s\n", args[0])
	return nil
}
