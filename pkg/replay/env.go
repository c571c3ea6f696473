package replay

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/whirlpool"
	"github.com/gagliardetto/solana-go"
)

// ClockSysvarID is the well-known Clock sysvar address under which Build
// stages the pinned block time.
var ClockSysvarID = solana.SysVarClockPubkey

// sysvarOwnerID owns every synthesized sysvar account.
var sysvarOwnerID = solana.MustPublicKeyFromBase58("Sysvar1111111111111111111111111111111111111")

// EnvBuilder stages exactly the accounts and programs one instruction
// needs. A fresh builder is produced per instruction by
// Host.NewEnvBuilder; it is never reused.
type EnvBuilder struct {
	host         *Host
	accounts     map[solana.PublicKey]Account
	payer        solana.PrivateKey
	blockhash    solana.Hash
	creationTime *int64
}

// installProgram seeds an executable account under id carrying bytecode as
// its data, matching the on-chain shape of an upgradable program account.
func (b *EnvBuilder) installProgram(id solana.PublicKey, bytecode []byte) {
	b.accounts[id] = Account{
		Owner:      solana.BPFLoaderUpgradeableProgramID,
		Data:       bytecode,
		Executable: true,
	}
}

// AddProgram installs an additional upgradable program beyond the three the
// host always stages.
func (b *EnvBuilder) AddProgram(id solana.PublicKey, bytecode []byte) *EnvBuilder {
	b.installProgram(id, bytecode)
	return b
}

// SetCreationTime pins the synthesized Clock sysvar to ts, the slot's
// block_time. A builder that reaches Build without a creation time is a
// caller bug (every handler must set it) and fails loudly rather than
// silently defaulting to zero.
func (b *EnvBuilder) SetCreationTime(ts int64) *EnvBuilder {
	b.creationTime = &ts
	return b
}

// AddAccountWithData pre-populates an account exactly as read from the
// account map, under the given owner.
func (b *EnvBuilder) AddAccountWithData(key, owner solana.PublicKey, data []byte) *EnvBuilder {
	b.accounts[key] = Account{Owner: owner, Data: append([]byte(nil), data...)}
	return b
}

// AddTokenMint seeds a freshly constructed SPL-Token mint account.
func (b *EnvBuilder) AddTokenMint(mint, authority solana.PublicKey, supply uint64, decimals uint8, freezeAuthority *solana.PublicKey) *EnvBuilder {
	m := whirlpool.NewMint(authority, supply, decimals)
	if freezeAuthority != nil {
		m.FreezeAuthOption = 1
		m.FreezeAuthority = *freezeAuthority
	}
	b.accounts[mint] = Account{Owner: TokenProgramID, Data: m.Encode()}
	return b
}

// AddAccountWithTokens seeds a token holding account at the chosen balance,
// used to pre-seed vault/owner token accounts from observed
// transfer_amount* fields.
func (b *EnvBuilder) AddAccountWithTokens(tokenAccount, mint, owner solana.PublicKey, amount uint64) *EnvBuilder {
	ta := whirlpool.NewTokenAccount(mint, owner, amount)
	b.accounts[tokenAccount] = Account{Owner: TokenProgramID, Data: ta.Encode()}
	return b
}

// AddFunderAccount seeds key with abundant lamports so it can pay rent for
// accounts the instruction creates.
func (b *EnvBuilder) AddFunderAccount(key solana.PublicKey) *EnvBuilder {
	acc := b.accounts[key]
	acc.Lamports = 1_000_000_000_000
	b.accounts[key] = acc
	return b
}

// Build finalises the builder into an Env. It fails if the creation time
// was never set: a handler that forgot to pin the clock is a bug that must
// surface before anything executes.
func (b *EnvBuilder) Build() (*Env, error) {
	if b.creationTime == nil {
		return nil, ErrMissingCreationTime
	}
	clock := Clock{UnixTimestamp: *b.creationTime}
	b.accounts[ClockSysvarID] = Account{Owner: sysvarOwnerID, Data: clock.Encode()}

	b.payer = solana.NewWallet().PrivateKey
	payerAcc := b.accounts[b.payer.PublicKey()]
	payerAcc.Lamports += 1_000_000_000_000
	b.accounts[b.payer.PublicKey()] = payerAcc

	var bh solana.Hash
	copy(bh[:], b.accounts[ClockSysvarID].Data[:32])
	b.blockhash = bh

	return &Env{
		host:      b.host,
		accounts:  b.accounts,
		payer:     b.payer,
		blockhash: b.blockhash,
	}, nil
}

// Env is the ephemeral, per-instruction execution environment. It lives
// exactly one instruction and owns its accounts exclusively: handlers
// mutate through Env methods, never through aliased references.
type Env struct {
	host      *Host
	accounts  map[solana.PublicKey]Account
	payer     solana.PrivateKey
	blockhash solana.Hash
}

// Payer returns the env's fee-payer public key; it always carries abundant
// lamports for fees.
func (e *Env) Payer() solana.PublicKey { return e.payer.PublicKey() }

// GetLatestBlockhash returns the env's synthesized recent blockhash, used
// to build a well-formed (if never verified) transaction.
func (e *Env) GetLatestBlockhash() solana.Hash { return e.blockhash }

// GetAccount returns the current bytes for key within this env, or false
// if the account was never staged.
func (e *Env) GetAccount(key solana.PublicKey) ([]byte, bool) {
	acc, ok := e.accounts[key]
	if !ok {
		return nil, false
	}
	return acc.Data, true
}

// mustGet panics-free lookup with an infrastructure error, used by
// processors that require an account the handler was supposed to stage.
func (e *Env) mustGet(key solana.PublicKey) (Account, error) {
	acc, ok := e.accounts[key]
	if !ok {
		return Account{}, fmt.Errorf("%w: %s", ErrAccountMissing, key)
	}
	return acc, nil
}

// setData replaces key's data payload, creating the account if absent
// (used for instructions that create new accounts).
func (e *Env) setData(key, owner solana.PublicKey, data []byte) {
	acc := e.accounts[key]
	acc.Owner = owner
	acc.Data = data
	e.accounts[key] = acc
}

// closeAccount removes key entirely, modelling an on-chain account-closure
// instruction (lamports swept to the receiver, data zeroed, key vacated).
func (e *Env) closeAccount(key solana.PublicKey) {
	delete(e.accounts, key)
}

// addLamports adds (or subtracts, if negative) delta lamports from key's
// balance. Used by token-transfer emulation in processors.
func (e *Env) addLamports(key solana.PublicKey, delta int64) {
	acc := e.accounts[key]
	acc.Lamports = uint64(int64(acc.Lamports) + delta)
	e.accounts[key] = acc
}

// ExecuteTransaction runs tx against this env as one synchronous,
// deterministic single-transaction execution. ix is the typed decoded
// record the synthetic processor consumes alongside the wire form.
func (e *Env) ExecuteTransaction(tx *solana.Transaction, ix any) (TransactionStatus, error) {
	return e.host.ExecuteTransaction(e, tx, ix)
}

// stagedKeys returns every non-program, non-sysvar account staged into the
// env, sorted so transaction assembly is deterministic across runs.
func (e *Env) stagedKeys() []solana.PublicKey {
	keys := make([]solana.PublicKey, 0, len(e.accounts))
	for k, acc := range e.accounts {
		if acc.Executable || k == ClockSysvarID || k == e.payer.PublicKey() {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
	return keys
}
