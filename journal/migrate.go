package journal

import (
	"encoding/json"
	"fmt"

	"github.com/rustyeddy/tradelog/storage"
)

// Envelope history:
//
//	v0 — bare JSON array, the shape the original browser build wrote: no
//	     envelope, trades linked to accounts by display name, leverage
//	     sometimes absent.
//	v1 — {version, records}; trades carry an accountId foreign key.
//
// Decoding always accepts every older version and upgrades in place.

func decodeAccounts(value string) ([]Account, int, error) {
	env, err := storage.DecodeEnvelope(value)
	if err != nil {
		return nil, 0, err
	}
	if env.Version > SchemaVersion {
		return nil, 0, fmt.Errorf("accounts schema version %d is newer than this build supports (%d)", env.Version, SchemaVersion)
	}

	var accounts []Account
	if err := json.Unmarshal(env.Records, &accounts); err != nil {
		return nil, 0, fmt.Errorf("decode account records: %w", err)
	}

	// Coercions the entry form used to apply; legacy rows may miss them.
	for i := range accounts {
		accounts[i].Normalize()
	}
	return accounts, env.Version, nil
}

// decodeTrades decodes the trade collection and, for v0 payloads, rewrites
// the name-based account reference into the numeric foreign key. Names that
// no longer match an account are returned in unresolved; those trades keep
// AccountID 0 and fail validation on their next save, which is the point:
// the dangling reference becomes visible instead of silent.
func decodeTrades(value string, accounts []Account) ([]Trade, int, []string, error) {
	env, err := storage.DecodeEnvelope(value)
	if err != nil {
		return nil, 0, nil, err
	}
	if env.Version > SchemaVersion {
		return nil, 0, nil, fmt.Errorf("trades schema version %d is newer than this build supports (%d)", env.Version, SchemaVersion)
	}

	var trades []Trade
	if err := json.Unmarshal(env.Records, &trades); err != nil {
		return nil, 0, nil, fmt.Errorf("decode trade records: %w", err)
	}

	var unresolved []string
	if env.Version == 0 {
		byName := make(map[string]int64, len(accounts))
		for _, a := range accounts {
			byName[a.Name] = a.ID
		}
		for i := range trades {
			if trades[i].AccountID != 0 || trades[i].Account == "" {
				continue
			}
			if accountID, ok := byName[trades[i].Account]; ok {
				trades[i].AccountID = accountID
			} else {
				unresolved = append(unresolved, trades[i].Account)
			}
		}
	}
	return trades, env.Version, unresolved, nil
}
