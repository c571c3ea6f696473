package replay

import "github.com/gagliardetto/solana-go"

// WritableSnapshot is the before/after pair over a variant's declared
// writable key set. Absence vs presence in pre/post expresses
// creation (absent -> present) and deletion (present -> absent).
type WritableSnapshot struct {
	Pre  *AccountMap
	Post *AccountMap
}

// TakeSnapshot reads each key in keys from env, recording bytes when
// present and omitting the entry entirely when absent, matching
// AccountMap.SnapshotSubset's absence-preserving contract.
func TakeSnapshot(env *Env, keys []solana.PublicKey) *AccountMap {
	out := NewAccountMap()
	for _, k := range keys {
		acc, ok := env.accounts[k]
		if !ok {
			continue
		}
		out.Upsert(k, acc.Clone())
	}
	return out
}

// ReplayResult is the per-instruction outcome dispatch hands back to the
// slot driver: the executor's status plus the writable pre/post snapshot.
type ReplayResult struct {
	TransactionStatus TransactionStatus
	Snapshot          WritableSnapshot
	// VaultCheckOK reports, for collectReward and collectProtocolFees,
	// whether post(vault) == pre(vault) - transfer_amount held.
	// Non-fatal; the slot driver does not act on it.
	VaultCheckOK bool
	// WritableKeys is the declared writable set for this variant,
	// independent of which keys actually changed. Every key in the
	// pre/post snapshots is drawn from this set.
	WritableKeys []solana.PublicKey
}
