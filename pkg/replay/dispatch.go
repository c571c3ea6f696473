package replay

import (
	"fmt"
	"time"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/gagliardetto/solana-go"
)

// ErrUnsupportedVariant (errors.go) is returned by Dispatch and
// Host.ExecuteTransaction for a variant with no registered
// handler/processor, distinct from ErrUnknownInstruction
// (pkg/instructions), which covers a name that never decoded to any
// known variant in the first place.

// handlerFunc is the contract every per-variant handler in the
// handlers_*.go files implements: stage the builder, assemble and execute
// the canonical transaction for ix, and capture the writable snapshot.
type handlerFunc func(host *Host, accountMap *AccountMap, creationTime int64, ix instructions.Decoded) (*ReplayResult, error)

// handlers is populated by init() in each handlers_*.go file; keyed by
// variant name so Dispatch never needs a giant switch statement to grow
// whenever a new file adds instructions.
var handlers = map[string]handlerFunc{}

func registerHandler(variant string, h handlerFunc) {
	handlers[variant] = h
}

// Dispatch matches ix's variant to its replay handler and runs the
// stage/assemble/execute/snapshot sequence. An instruction variant with no
// registered handler fails with ErrUnsupportedVariant rather than being
// silently skipped.
func Dispatch(host *Host, accountMap *AccountMap, creationTime int64, ix instructions.Decoded) (*ReplayResult, error) {
	h, ok := handlers[ix.Variant()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, ix.Variant())
	}
	return h(host, accountMap, creationTime, ix)
}

// stageExisting pulls key's current bytes from the account map into the
// builder, preserving its recorded owner. required keys missing from the
// account map are an ErrAccountMissing infrastructure error (snapshot or
// ingest drift); non-required keys (accounts the instruction creates) are
// silently skipped when absent.
func stageExisting(b *EnvBuilder, am *AccountMap, key solana.PublicKey, required bool) error {
	acc, ok := am.Get(key)
	if !ok {
		if required {
			return fmt.Errorf("%w: %s", ErrAccountMissing, key)
		}
		return nil
	}
	b.AddAccountWithData(key, acc.Owner, acc.Data)
	// AddAccountWithData carries owner and payload; the recorded balance
	// rides along so lamport-sensitive instructions see the map's value.
	staged := b.accounts[key]
	staged.Lamports = acc.Lamports
	b.accounts[key] = staged
	return nil
}

// stageAll is a convenience wrapper for the common case of several
// required reads in a row.
func stageAll(b *EnvBuilder, am *AccountMap, required ...solana.PublicKey) error {
	for _, k := range required {
		if err := stageExisting(b, am, k, true); err != nil {
			return err
		}
	}
	return nil
}

// nonZero reports whether key is not the all-zero default PublicKey, used
// to skip optional account fields a variant may leave unset.
func nonZero(key solana.PublicKey) bool {
	return key != solana.PublicKey{}
}

// DefaultTxTimeout is the per-transaction wall-clock budget.
const DefaultTxTimeout = 10 * time.Second

// dispatchWithBudget runs Dispatch under a wall-clock budget. A
// transaction that overruns is abandoned as ErrExecutorTimeout: the
// partial env is discarded with its goroutine (the executor is atomic per
// transaction, so there is nothing to interrupt mid-flight) and the
// account map is never advanced, since the error propagates before any
// fold.
func dispatchWithBudget(host *Host, accountMap *AccountMap, creationTime int64, ix instructions.Decoded, budget time.Duration) (*ReplayResult, error) {
	if budget <= 0 {
		budget = DefaultTxTimeout
	}
	type outcome struct {
		result *ReplayResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		r, err := Dispatch(host, accountMap, creationTime, ix)
		done <- outcome{r, err}
	}()
	timer := time.NewTimer(budget)
	defer timer.Stop()
	select {
	case o := <-done:
		return o.result, o.err
	case <-timer.C:
		return nil, fmt.Errorf("%w: %s after %s", ErrExecutorTimeout, ix.Variant(), budget)
	}
}

// assembleTransaction builds the canonical single-instruction transaction
// for ix: the env's staged accounts as the meta list with
// the declared writable set flagged writable, the Anchor-encoded data
// record, signed by the env's payer against its latest blockhash.
func assembleTransaction(env *Env, ix instructions.Decoded, writable []solana.PublicKey) (*solana.Transaction, error) {
	isWritable := make(map[solana.PublicKey]bool, len(writable))
	for _, k := range writable {
		isWritable[k] = true
	}
	payer := env.Payer()
	metas := solana.AccountMetaSlice{solana.NewAccountMeta(payer, true, true)}
	listed := map[solana.PublicKey]bool{payer: true}
	for _, k := range env.stagedKeys() {
		if listed[k] {
			continue
		}
		listed[k] = true
		metas = append(metas, solana.NewAccountMeta(k, isWritable[k], false))
	}
	// Accounts the instruction creates are part of the meta list even
	// though nothing was staged for them.
	for _, k := range writable {
		if listed[k] {
			continue
		}
		listed[k] = true
		metas = append(metas, solana.NewAccountMeta(k, true, false))
	}

	inst := &whirlpoolInstruction{decoded: ix, AccountMetaSlice: metas}
	tx, err := solana.NewTransaction(
		[]solana.Instruction{inst},
		env.GetLatestBlockhash(),
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	_, err = tx.Sign(
		func(key solana.PublicKey) *solana.PrivateKey {
			if key.Equals(payer) {
				return &env.payer
			}
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return tx, nil
}

// runReplay finishes the four-phase contract once a handler has staged its
// builder: set the clock, build the env, assemble and sign the canonical
// transaction, snapshot before, execute, snapshot after. Shared by every
// handlers_*.go file so the phase-2..4 boilerplate is written once.
func runReplay(host *Host, b *EnvBuilder, creationTime int64, ix instructions.Decoded, writable []solana.PublicKey) (*ReplayResult, error) {
	b.SetCreationTime(creationTime)
	env, err := b.Build()
	if err != nil {
		return nil, err
	}
	tx, err := assembleTransaction(env, ix, writable)
	if err != nil {
		return nil, err
	}
	pre := TakeSnapshot(env, writable)
	status, err := env.ExecuteTransaction(tx, ix)
	if err != nil {
		return nil, err
	}
	post := TakeSnapshot(env, writable)
	return &ReplayResult{
		TransactionStatus: status,
		Snapshot:          WritableSnapshot{Pre: pre, Post: post},
		WritableKeys:      writable,
		VaultCheckOK:      status.VaultCheckOK,
	}, nil
}
