package cmd

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage trading accounts",
	Long: `Create, update, list and delete trading accounts.

Examples:
  tradelog account add --name "FTMO Live" --broker FTMO --account-id 510044 --balance 10000
  tradelog account update 1693526400123 --balance 10500
  tradelog account list
  tradelog account rm 1693526400123`,
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new account",
	Args:  cobra.NoArgs,
	RunE:  runAccountAdd,
}

var accountUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountUpdate,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Args:  cobra.NoArgs,
	RunE:  runAccountList,
}

var accountRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountRm,
}

var (
	accName        string
	accBroker      string
	accBrokerID    string
	accBalance     string
	accCurrency    string
	accLeverage    int
	accType        string
	accDescription string
)

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountAddCmd)
	accountCmd.AddCommand(accountUpdateCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountRmCmd)

	for _, c := range []*cobra.Command{accountAddCmd, accountUpdateCmd} {
		c.Flags().StringVar(&accName, "name", "", "display name")
		c.Flags().StringVar(&accBroker, "broker", "", "broker name")
		c.Flags().StringVar(&accBrokerID, "account-id", "", "broker-assigned account id")
		c.Flags().StringVar(&accBalance, "balance", "", "starting balance")
		c.Flags().StringVar(&accCurrency, "currency", "USD", "currency code (USD, EUR, GBP, JPY, CHF)")
		c.Flags().IntVar(&accLeverage, "leverage", 1, "leverage, e.g. 100 for 1:100")
		c.Flags().StringVar(&accType, "type", journal.AccountLive, "account type (live or demo)")
		c.Flags().StringVar(&accDescription, "description", "", "free-text description")
	}

	accountAddCmd.MarkFlagRequired("name")
	accountAddCmd.MarkFlagRequired("broker")
	accountAddCmd.MarkFlagRequired("account-id")
	accountAddCmd.MarkFlagRequired("balance")
}

func runAccountAdd(cmd *cobra.Command, args []string) error {
	balance, err := decimal.NewFromString(accBalance)
	if err != nil {
		return fmt.Errorf("invalid balance %q", accBalance)
	}

	j, _, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	acc, err := j.SaveAccount(journal.Account{
		Name:            accName,
		Broker:          accBroker,
		BrokerAccountID: accBrokerID,
		Balance:         balance,
		Currency:        accCurrency,
		Leverage:        accLeverage,
		AccountType:     accType,
		Description:     accDescription,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Created account %q (id %d)\n", acc.Name, acc.ID)
	return nil
}

func runAccountUpdate(cmd *cobra.Command, args []string) error {
	accountID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id %q", args[0])
	}

	j, _, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	acc, ok := j.AccountByID(accountID)
	if !ok {
		return fmt.Errorf("account %d not found", accountID)
	}

	// Only flags that were set override the stored record.
	flags := cmd.Flags()
	if flags.Changed("name") {
		acc.Name = accName
	}
	if flags.Changed("broker") {
		acc.Broker = accBroker
	}
	if flags.Changed("account-id") {
		acc.BrokerAccountID = accBrokerID
	}
	if flags.Changed("balance") {
		balance, err := decimal.NewFromString(accBalance)
		if err != nil {
			return fmt.Errorf("invalid balance %q", accBalance)
		}
		acc.Balance = balance
	}
	if flags.Changed("currency") {
		acc.Currency = accCurrency
	}
	if flags.Changed("leverage") {
		acc.Leverage = accLeverage
	}
	if flags.Changed("type") {
		acc.AccountType = accType
	}
	if flags.Changed("description") {
		acc.Description = accDescription
	}

	acc, err = j.SaveAccount(acc)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Updated account %q (id %d)\n", acc.Name, acc.ID)
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
	j, _, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	accounts := j.Accounts()
	if len(accounts) == 0 {
		fmt.Println("No accounts recorded.")
		return nil
	}

	fmt.Println(journal.FormatAccountsOrg(accounts))
	return nil
}

func runAccountRm(cmd *cobra.Command, args []string) error {
	accountID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id %q", args[0])
	}

	j, _, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := j.DeleteAccount(accountID); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted account %d\n", accountID)
	return nil
}
