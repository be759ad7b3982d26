// Package statement decodes pasted broker statement text into trade records.
//
// A statement line is 14 tab-separated positional fields:
//
//	ticket, openTime, type, size, item, price, sl, tp,
//	closeTime, closePrice, commission, taxes, swap, profit
//
// Position is the only contract; there is no header row and no quoting.
package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/tradelog/journal"
)

const fieldCount = 14

// ParseError reports one undecodable statement line.
type ParseError struct {
	Line   int // 1-based line number within the pasted block
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// LineResult is the outcome of parsing one line: either a trade or a
// *ParseError, never both.
type LineResult struct {
	Line  int
	Trade journal.Trade
	Err   error
}

// ParseLine decodes a single statement line. The account display name
// defaults to defaultAccount so the record can be reviewed before the real
// foreign key is resolved at save time.
func ParseLine(line, defaultAccount string) (journal.Trade, error) {
	parts := strings.Split(line, "\t")
	if len(parts) < fieldCount {
		return journal.Trade{}, fmt.Errorf("expected %d tab-separated fields, got %d", fieldCount, len(parts))
	}

	t := journal.Trade{
		Ticket:   strings.TrimSpace(parts[0]),
		OpenTime: normalizeTime(parts[1]),
		Type:     strings.ToLower(strings.TrimSpace(parts[2])),
		Item:     strings.ToUpper(strings.TrimSpace(parts[4])),
		Account:  defaultAccount,
	}

	numeric := []struct {
		name string
		pos  int
		dst  *decimal.Decimal
	}{
		{"size", 3, &t.Size},
		{"price", 5, &t.Price},
		{"sl", 6, &t.StopLoss},
		{"tp", 7, &t.TakeProfit},
		{"closePrice", 9, &t.ClosePrice},
		{"commission", 10, &t.Commission},
		{"taxes", 11, &t.Taxes},
		{"swap", 12, &t.Swap},
		{"profit", 13, &t.Profit},
	}
	for _, f := range numeric {
		d, err := decimal.NewFromString(strings.TrimSpace(parts[f.pos]))
		if err != nil {
			return journal.Trade{}, fmt.Errorf("field %s: %q is not a number", f.name, parts[f.pos])
		}
		*f.dst = d
	}

	t.CloseTime = normalizeTime(parts[8])
	return t, nil
}

// ParseAll splits a pasted block on newlines and parses every line
// independently, returning one result per line in order. No line aborts its
// neighbours; the caller picks the batch policy.
func ParseAll(text, defaultAccount string) []LineResult {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	results := make([]LineResult, 0, len(lines))
	for i, line := range lines {
		n := i + 1
		trade, err := ParseLine(strings.TrimSpace(line), defaultAccount)
		if err != nil {
			results = append(results, LineResult{Line: n, Err: &ParseError{Line: n, Reason: err.Error()}})
			continue
		}
		results = append(results, LineResult{Line: n, Trade: trade})
	}
	return results
}

// First returns the first parsed record, reproducing the single-record review
// workflow: the rest of the batch is deliberately left to the caller.
func First(results []LineResult) (journal.Trade, error) {
	if len(results) == 0 {
		return journal.Trade{}, fmt.Errorf("empty statement")
	}
	if results[0].Err != nil {
		return journal.Trade{}, results[0].Err
	}
	return results[0].Trade, nil
}

// Records applies the all-or-nothing batch policy: the first failed line
// fails the whole batch and no trades are returned.
func Records(results []LineResult) ([]journal.Trade, error) {
	trades := make([]journal.Trade, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		trades = append(trades, r.Trade)
	}
	return trades, nil
}

// normalizeTime rewrites the broker's "2023.01.15 10:30:00" into the
// ISO-like local form "2023-01-15T10:30:00": every dot becomes a dash and the
// first space becomes a T.
func normalizeTime(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "-")
	return strings.Replace(s, " ", "T", 1)
}
