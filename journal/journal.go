// Package journal keeps the account and trade collections in memory and
// mirrors every mutation into a key-value store as a whole-collection write.
package journal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/pkg/id"
	"github.com/rustyeddy/tradelog/storage"
)

// SchemaVersion is the envelope version this build reads and writes. Older
// payloads are migrated forward at open.
const SchemaVersion = 1

type Journal struct {
	kv  storage.KV
	log *zap.Logger

	accounts []Account
	trades   []Trade
}

// Open hydrates both collections from kv, migrating legacy payloads forward
// and writing the upgraded envelopes back. The store is read exactly once;
// everything after serves from memory.
func Open(kv storage.KV, log *zap.Logger) (*Journal, error) {
	if log == nil {
		log = zap.NewNop()
	}
	j := &Journal{kv: kv, log: log}

	if err := j.hydrate(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Journal) hydrate() error {
	value, accStored, err := j.kv.Get(storage.KeyAccounts)
	if err != nil {
		return fmt.Errorf("read accounts: %w", err)
	}
	accounts, accVer, err := decodeAccounts(value)
	if err != nil {
		return fmt.Errorf("hydrate accounts: %w", err)
	}
	j.accounts = accounts

	value, tradesStored, err := j.kv.Get(storage.KeyTrades)
	if err != nil {
		return fmt.Errorf("read trades: %w", err)
	}
	trades, tradeVer, unresolved, err := decodeTrades(value, accounts)
	if err != nil {
		return fmt.Errorf("hydrate trades: %w", err)
	}
	j.trades = trades

	for _, name := range unresolved {
		j.log.Warn("trade references unknown account", zap.String("account", name))
	}

	// Persist the migrated shape so the upgrade runs once. Keys that were
	// never written stay unwritten until the first mutation.
	if accStored && accVer < SchemaVersion {
		if err := j.persistAccounts(j.accounts); err != nil {
			return fmt.Errorf("migrate accounts: %w", err)
		}
		j.log.Info("migrated accounts", zap.Int("from", accVer), zap.Int("to", SchemaVersion))
	}
	if tradesStored && tradeVer < SchemaVersion {
		if err := j.persistTrades(j.trades); err != nil {
			return fmt.Errorf("migrate trades: %w", err)
		}
		j.log.Info("migrated trades", zap.Int("from", tradeVer), zap.Int("to", SchemaVersion))
	}

	return nil
}

// Accounts returns the account collection in insertion order.
func (j *Journal) Accounts() []Account {
	out := make([]Account, len(j.accounts))
	copy(out, j.accounts)
	return out
}

// Trades returns the trade collection in insertion order, with each trade's
// display account name resolved from its account ID.
func (j *Journal) Trades() []Trade {
	out := make([]Trade, len(j.trades))
	copy(out, j.trades)
	for i := range out {
		if acc, ok := j.AccountByID(out[i].AccountID); ok {
			out[i].Account = acc.Name
		}
	}
	return out
}

// AccountByID looks an account up by its numeric identifier.
func (j *Journal) AccountByID(accountID int64) (Account, bool) {
	for _, a := range j.accounts {
		if a.ID == accountID {
			return a, true
		}
	}
	return Account{}, false
}

// TradeByTicket looks a trade up by its broker ticket.
func (j *Journal) TradeByTicket(ticket string) (Trade, bool) {
	for _, t := range j.trades {
		if t.Ticket == ticket {
			return t, true
		}
	}
	return Trade{}, false
}

// SaveAccount validates and upserts an account. A zero ID means create: a
// fresh identifier is assigned and the account appended. A non-zero ID
// replaces the matching account in place and fails with NotFoundError when no
// account carries it. The full collection is written through before the
// in-memory state changes, so a storage failure discards the mutation.
func (j *Journal) SaveAccount(a Account) (Account, error) {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return Account{}, err
	}

	next := make([]Account, len(j.accounts))
	copy(next, j.accounts)

	if a.ID == 0 {
		a.ID = id.NewAccountID()
		next = append(next, a)
	} else {
		idx := -1
		for i := range next {
			if next[i].ID == a.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Account{}, &NotFoundError{Kind: "account", ID: fmt.Sprint(a.ID)}
		}
		next[idx] = a
	}

	if err := j.persistAccounts(next); err != nil {
		return Account{}, err
	}
	j.accounts = next

	j.log.Info("account saved", zap.Int64("id", a.ID), zap.String("name", a.Name))
	return a, nil
}

// DeleteAccount removes an account by ID and persists the collection. It is a
// no-op when the ID is absent; deleting twice equals deleting once. Trades
// still referencing the account keep their ID and render without a name.
func (j *Journal) DeleteAccount(accountID int64) error {
	next := j.accounts[:0:0]
	for _, a := range j.accounts {
		if a.ID != accountID {
			next = append(next, a)
		}
	}
	if len(next) == len(j.accounts) {
		return nil
	}

	if err := j.persistAccounts(next); err != nil {
		return err
	}
	j.accounts = next

	var dangling int
	for _, t := range j.trades {
		if t.AccountID == accountID {
			dangling++
		}
	}
	if dangling > 0 {
		j.log.Warn("deleted account still referenced by trades",
			zap.Int64("id", accountID), zap.Int("trades", dangling))
	}

	j.log.Info("account deleted", zap.Int64("id", accountID))
	return nil
}

// SaveTrade validates and upserts a trade. With editTicket empty the trade is
// appended; otherwise it replaces the trade whose ticket matches editTicket,
// failing with NotFoundError when none does. The referenced account must
// exist or the save is rejected outright.
func (j *Journal) SaveTrade(t Trade, editTicket string) (Trade, error) {
	t.Normalize()
	if err := t.Validate(); err != nil {
		return Trade{}, err
	}
	acc, ok := j.AccountByID(t.AccountID)
	if !ok {
		return Trade{}, &ValidationError{Field: "account", Reason: fmt.Sprintf("no account with id %d", t.AccountID)}
	}
	t.Account = acc.Name

	next := make([]Trade, len(j.trades))
	copy(next, j.trades)

	if editTicket == "" {
		next = append(next, t)
	} else {
		idx := -1
		for i := range next {
			if next[i].Ticket == editTicket {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Trade{}, &NotFoundError{Kind: "trade", ID: editTicket}
		}
		next[idx] = t
	}

	if err := j.persistTrades(next); err != nil {
		return Trade{}, err
	}
	j.trades = next

	j.log.Info("trade saved",
		zap.String("ticket", t.Ticket),
		zap.String("item", t.Item),
		zap.Int64("account", t.AccountID))
	return t, nil
}

// DeleteTrade removes a trade by ticket and persists the collection. Like
// DeleteAccount it is idempotent.
func (j *Journal) DeleteTrade(ticket string) error {
	next := j.trades[:0:0]
	for _, t := range j.trades {
		if t.Ticket != ticket {
			next = append(next, t)
		}
	}
	if len(next) == len(j.trades) {
		return nil
	}

	if err := j.persistTrades(next); err != nil {
		return err
	}
	j.trades = next

	j.log.Info("trade deleted", zap.String("ticket", ticket))
	return nil
}

func (j *Journal) persistAccounts(accounts []Account) error {
	value, err := storage.EncodeEnvelope(SchemaVersion, accounts)
	if err != nil {
		return err
	}
	if err := j.kv.Put(storage.KeyAccounts, value); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}
	return nil
}

func (j *Journal) persistTrades(trades []Trade) error {
	value, err := storage.EncodeEnvelope(SchemaVersion, trades)
	if err != nil {
		return err
	}
	if err := j.kv.Put(storage.KeyTrades, value); err != nil {
		return fmt.Errorf("write trades: %w", err)
	}
	return nil
}
