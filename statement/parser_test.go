package statement

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const sampleLine = "12345\t2023.01.15 10:30:00\tBUY\t1.50\teurusd\t1.0950\t1.0900\t1.1000\t2023.01.15 14:00:00\t1.0980\t-7.00\t0.00\t-1.20\t45.00"

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tr, err := ParseLine(sampleLine, "Main")
	assert.NoError(t, err)

	assert.Equal(t, "12345", tr.Ticket)
	assert.Equal(t, "2023-01-15T10:30:00", tr.OpenTime)
	assert.Equal(t, "buy", tr.Type)
	assert.True(t, tr.Size.Equal(dec(t, "1.5")))
	assert.Equal(t, "EURUSD", tr.Item)
	assert.True(t, tr.Price.Equal(dec(t, "1.0950")))
	assert.True(t, tr.StopLoss.Equal(dec(t, "1.0900")))
	assert.True(t, tr.TakeProfit.Equal(dec(t, "1.1000")))
	assert.Equal(t, "2023-01-15T14:00:00", tr.CloseTime)
	assert.True(t, tr.ClosePrice.Equal(dec(t, "1.0980")))
	assert.True(t, tr.Commission.Equal(dec(t, "-7.00")))
	assert.True(t, tr.Taxes.Equal(dec(t, "0.00")))
	assert.True(t, tr.Swap.Equal(dec(t, "-1.20")))
	assert.True(t, tr.Profit.Equal(dec(t, "45.00")))
	assert.Equal(t, "Main", tr.Account)
	assert.Zero(t, tr.AccountID)
}

func TestParseLineDefaultAccount(t *testing.T) {
	t.Parallel()

	tr, err := ParseLine(sampleLine, "Default")
	assert.NoError(t, err)
	assert.Equal(t, "Default", tr.Account)
}

func TestParseLineShortLine(t *testing.T) {
	t.Parallel()

	_, err := ParseLine("12345\t2023.01.15 10:30:00\tBUY", "Default")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 14")
}

func TestParseLineNonNumericField(t *testing.T) {
	t.Parallel()

	bad := strings.Replace(sampleLine, "1.50", "one-point-five", 1)
	_, err := ParseLine(bad, "Default")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "size")
}

func TestParseLineIgnoresExtraFields(t *testing.T) {
	t.Parallel()

	tr, err := ParseLine(sampleLine+"\textra\tfields", "Default")
	assert.NoError(t, err)
	assert.Equal(t, "12345", tr.Ticket)
}

func TestParseAllPerLineIsolation(t *testing.T) {
	t.Parallel()

	text := sampleLine + "\nnot a statement line\n" +
		strings.Replace(sampleLine, "12345", "12346", 1)

	results := ParseAll(text, "Default")
	assert.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "12345", results[0].Trade.Ticket)

	assert.Error(t, results[1].Err)
	var pe *ParseError
	assert.True(t, errors.As(results[1].Err, &pe))
	assert.Equal(t, 2, pe.Line)

	assert.NoError(t, results[2].Err)
	assert.Equal(t, "12346", results[2].Trade.Ticket)
}

func TestParseAllCRLF(t *testing.T) {
	t.Parallel()

	text := sampleLine + "\r\n" + strings.Replace(sampleLine, "12345", "12346", 1)
	results := ParseAll(text, "Default")
	assert.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
}

func TestFirst(t *testing.T) {
	t.Parallel()

	results := ParseAll(sampleLine+"\n"+sampleLine, "Default")
	tr, err := First(results)
	assert.NoError(t, err)
	assert.Equal(t, "12345", tr.Ticket)

	_, err = First(ParseAll("bad line", "Default"))
	assert.Error(t, err)

	_, err = First(nil)
	assert.Error(t, err)
}

func TestRecordsAllOrNothing(t *testing.T) {
	t.Parallel()

	good := ParseAll(sampleLine+"\n"+strings.Replace(sampleLine, "12345", "12346", 1), "Default")
	trades, err := Records(good)
	assert.NoError(t, err)
	assert.Len(t, trades, 2)

	// One short line fails the entire batch: zero trades come back.
	mixed := ParseAll(sampleLine+"\ntoo\tshort", "Default")
	trades, err = Records(mixed)
	assert.Error(t, err)
	assert.Nil(t, trades)
}
