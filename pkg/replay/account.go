// Package replay implements the deterministic per-instruction replay engine:
// the account map, the environment builder, the dispatch table, and the
// slot driver that folds instruction results back into a running world.
package replay

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
)

// Account is the opaque on-ledger record the account map carries. The core
// never parses Data; only per-variant handlers that need a specific
// Whirlpool field borrow it via pkg/whirlpool.
type Account struct {
	Owner      solana.PublicKey
	Lamports   uint64
	Data       []byte
	Executable bool
	RentEpoch  uint64
}

// Clone returns a deep copy so snapshots taken before and after execution
// never alias the same backing array.
func (a Account) Clone() Account {
	data := make([]byte, len(a.Data))
	copy(data, a.Data)
	return Account{
		Owner:      a.Owner,
		Lamports:   a.Lamports,
		Data:       data,
		Executable: a.Executable,
		RentEpoch:  a.RentEpoch,
	}
}

// AccountMap is a key -> account store. The zero value is not usable; use
// NewAccountMap. Not safe for concurrent use: it is exclusively owned by
// the slot driver and only ever borrowed immutably by dispatch handlers
// during staging.
type AccountMap struct {
	accounts map[solana.PublicKey]Account
}

func NewAccountMap() *AccountMap {
	return &AccountMap{accounts: make(map[solana.PublicKey]Account)}
}

// Get returns the current account and true, or the zero Account and false
// if key is absent.
func (m *AccountMap) Get(key solana.PublicKey) (Account, bool) {
	acc, ok := m.accounts[key]
	return acc, ok
}

// Upsert unconditionally replaces key's account.
func (m *AccountMap) Upsert(key solana.PublicKey, acc Account) {
	m.accounts[key] = acc
}

// Remove deletes key, used after account-closure instructions.
func (m *AccountMap) Remove(key solana.PublicKey) {
	delete(m.accounts, key)
}

// Len reports how many accounts the map currently holds.
func (m *AccountMap) Len() int {
	return len(m.accounts)
}

// SnapshotSubset copies out exactly the requested keys, preserving absence:
// a key with no entry in m simply has no entry in the result either, which
// pre/post snapshot diffing uses to detect creation and deletion.
func (m *AccountMap) SnapshotSubset(keys []solana.PublicKey) *AccountMap {
	out := NewAccountMap()
	for _, k := range keys {
		if acc, ok := m.accounts[k]; ok {
			out.accounts[k] = acc.Clone()
		}
	}
	return out
}

// Equal reports whether m and other hold exactly the same keys with
// byte-identical data. Used by the oracle cross-check and the round-trip
// tests.
func (m *AccountMap) Equal(other *AccountMap) bool {
	if len(m.accounts) != len(other.accounts) {
		return false
	}
	for k, acc := range m.accounts {
		o, ok := other.accounts[k]
		if !ok || acc.Owner != o.Owner || acc.Lamports != o.Lamports || !bytes.Equal(acc.Data, o.Data) {
			return false
		}
	}
	return true
}

// Keys returns every key currently present, in no particular order.
func (m *AccountMap) Keys() []solana.PublicKey {
	keys := make([]solana.PublicKey, 0, len(m.accounts))
	for k := range m.accounts {
		keys = append(keys, k)
	}
	return keys
}

// Fold applies post's entries onto m: present entries are upserted, and
// any key in keySet absent from post is removed. This is the slot driver's
// single mutation point into the world state.
func (m *AccountMap) Fold(keySet []solana.PublicKey, post *AccountMap) {
	for _, k := range keySet {
		if acc, ok := post.Get(k); ok {
			m.Upsert(k, acc.Clone())
		} else {
			m.Remove(k)
		}
	}
}
