package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/pkg/id"
	"github.com/rustyeddy/tradelog/statement"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import broker statement lines",
	Long: `Parse pasted broker statement text (14 tab-separated fields per line)
and record the trades. Reads the given file, or stdin when no file is given.

By default only the first statement line is imported, so a single pasted
trade can be reviewed and corrected afterwards. Use --all to import every
line (one bad line fails the whole batch), or --best-effort to import the
good lines and report the bad ones.

Examples:
  pbpaste | tradelog import
  tradelog import statement.txt --all
  tradelog import statement.txt --best-effort --account 1693526400123`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

var (
	importAll        bool
	importBestEffort bool
	importDryRun     bool
	importAccountID  int64
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importAll, "all", false, "import every line, failing the batch on the first bad line")
	importCmd.Flags().BoolVar(&importBestEffort, "best-effort", false, "import every parseable line, reporting the rest")
	importCmd.Flags().Int64Var(&importAccountID, "account", 0, "account id to book trades under (default: first account)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and print without saving")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importAll && importBestEffort {
		return fmt.Errorf("--all and --best-effort are mutually exclusive")
	}

	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read statement: %w", err)
	}

	j, log, cleanup, err := openJournal()
	if err != nil {
		return err
	}
	defer cleanup()

	accountID, accountName := importTarget(j)

	// Files almost always end in a newline; the statement format has no
	// blank-line semantics, so one trailing newline is not a 15th line.
	text := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	results := statement.ParseAll(text, accountName)

	batch := id.NewBatchID()
	log.Info("statement batch parsed",
		zap.String("batch", batch),
		zap.Int("lines", len(results)))

	if importDryRun {
		return printResults(results)
	}

	if accountID == 0 {
		return fmt.Errorf("no account to book trades under; create one first or pass --account")
	}

	switch {
	case importAll:
		trades, err := statement.Records(results)
		if err != nil {
			return fmt.Errorf("import batch failed, no trades recorded: %w", err)
		}
		for _, t := range trades {
			t.AccountID = accountID
			if _, err := j.SaveTrade(t, ""); err != nil {
				return fmt.Errorf("trade #%s: %w", t.Ticket, err)
			}
		}
		fmt.Printf("✓ Imported %d trades (batch %s)\n", len(trades), batch)

	case importBestEffort:
		var saved, failed int
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "skipped %v\n", r.Err)
				failed++
				continue
			}
			t := r.Trade
			t.AccountID = accountID
			if _, err := j.SaveTrade(t, ""); err != nil {
				fmt.Fprintf(os.Stderr, "skipped line %d: %v\n", r.Line, err)
				failed++
				continue
			}
			saved++
		}
		fmt.Printf("✓ Imported %d trades, skipped %d (batch %s)\n", saved, failed, batch)

	default:
		t, err := statement.First(results)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		t.AccountID = accountID
		t, err = j.SaveTrade(t, "")
		if err != nil {
			return err
		}
		fmt.Printf("✓ Imported trade #%s (%s %s)\n", t.Ticket, t.Item, t.Type)
		if len(results) > 1 {
			fmt.Printf("  %d more lines in the statement; rerun with --all to import them\n", len(results)-1)
		}
	}

	return nil
}

// importTarget picks the account trades are booked under: the --account flag
// when given, otherwise the first recorded account. The name seeds the parsed
// records' display field, "Default" when no account exists yet.
func importTarget(j *journal.Journal) (int64, string) {
	if importAccountID != 0 {
		if acc, ok := j.AccountByID(importAccountID); ok {
			return acc.ID, acc.Name
		}
		return importAccountID, "Default"
	}
	if accounts := j.Accounts(); len(accounts) > 0 {
		return accounts[0].ID, accounts[0].Name
	}
	return 0, "Default"
}

func printResults(results []statement.LineResult) error {
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("✗ %v\n", r.Err)
			continue
		}
		fmt.Print(journal.FormatTradeOrg(r.Trade))
	}
	return nil
}
