package replay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
)

// SlotRecord is one row of the ingest contract's slots table: the
// block_time carried here is fed verbatim as the execution clock for every
// instruction belonging to this slot.
type SlotRecord struct {
	SlotNumber  uint64
	BlockHeight uint64
	BlockTime   int64
}

// InstructionRecord is one row of the ingest contract's instruction table,
// keyed by Txid = (slot << 24) | intra-slot index. Payload is the raw JSON
// object instructions.FromJSON decodes against InstructionName.
type InstructionRecord struct {
	Slot            uint64
	Txid            uint64
	InstructionName string
	Payload         []byte
}

// ReplayRecord is the per-instruction output the driver emits to the
// sink: variant, structured status, and the writable pre/post snapshot.
type ReplayRecord struct {
	Slot              uint64
	Txid              uint64
	Variant           string
	TransactionStatus TransactionStatus
	Pre               *AccountMap
	Post              *AccountMap
	VaultCheckOK      bool
}

// Sink receives one ReplayRecord per processed instruction, in the same
// order the driver processes them.
type Sink interface {
	Emit(ReplayRecord) error
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(ReplayRecord) error

func (f SinkFunc) Emit(r ReplayRecord) error { return f(r) }

// InstructionSource supplies a slot's instructions in ascending intra-slot
// (txid) order; it is the ingestor's responsibility to guarantee that
// order, not the driver's.
type InstructionSource interface {
	InstructionsForSlot(slot uint64) ([]InstructionRecord, error)
}

// Oracle supplies an externally recorded post-snapshot per txid, used to
// cross-check the replayed writable set. A txid the oracle has no record
// for is simply not checked.
type Oracle interface {
	ExpectedPost(txid uint64) (*AccountMap, bool)
}

// Driver is the slot driver: it holds the host and the account map it
// folds diffs into. The map is owned exclusively by whatever constructs
// and holds the Driver; nothing else mutates it.
type Driver struct {
	Host     *Host
	Accounts *AccountMap

	// Strict makes decode failures and unknown/unsupported variants halt
	// the driver; when unset they are logged and skipped. Infrastructure
	// errors (AccountMissing, ExecutorTimeout) halt it either way.
	Strict bool

	// TxTimeout bounds each instruction's wall-clock execution; zero means
	// DefaultTxTimeout.
	TxTimeout time.Duration

	// Oracle, when non-nil, cross-checks every post-snapshot. A divergence
	// is ErrSnapshotMismatch in strict mode and a logged warning otherwise.
	Oracle Oracle
}

// NewDriver builds a slot driver over host and an already-initialized
// account map (typically loaded from a baseline snapshot via
// pkg/snapshotio).
func NewDriver(host *Host, accounts *AccountMap) *Driver {
	return &Driver{Host: host, Accounts: accounts}
}

// skippable reports whether err is one of the kinds a non-strict driver
// logs and moves past: decode failures and unknown/unsupported variants.
// Everything else (missing accounts, timeouts) indicates snapshot or
// ingest drift and halts the driver regardless of mode.
func skippable(err error) bool {
	return errors.Is(err, instructions.ErrUnknownInstruction) ||
		errors.Is(err, instructions.ErrDecode) ||
		errors.Is(err, ErrUnsupportedVariant)
}

// RunSlot replays every instruction belonging to one slot record, in
// ascending intra-slot order, folding each instruction's post-snapshot into
// the driver's account map before moving to the next. The context is
// checked between instructions only; an in-flight execution is never
// interrupted.
func (d *Driver) RunSlot(ctx context.Context, slot SlotRecord, src InstructionSource, sink Sink) error {
	instrs, err := src.InstructionsForSlot(slot.SlotNumber)
	if err != nil {
		return fmt.Errorf("replay: loading instructions for slot %d: %w", slot.SlotNumber, err)
	}
	for _, rec := range instrs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("replay: slot %d: %w", slot.SlotNumber, err)
		}
		ix, err := instructions.FromJSON(rec.InstructionName, rec.Payload)
		if err != nil {
			if !d.Strict && skippable(err) {
				log.Printf("skipping slot %d txid %d: %v", slot.SlotNumber, rec.Txid, err)
				continue
			}
			return fmt.Errorf("replay: slot %d txid %d: %w", slot.SlotNumber, rec.Txid, err)
		}
		result, err := dispatchWithBudget(d.Host, d.Accounts, slot.BlockTime, ix, d.TxTimeout)
		if err != nil {
			if !d.Strict && skippable(err) {
				log.Printf("skipping slot %d txid %d variant %q: %v", slot.SlotNumber, rec.Txid, ix.Variant(), err)
				continue
			}
			return fmt.Errorf("replay: slot %d txid %d variant %q: %w", slot.SlotNumber, rec.Txid, ix.Variant(), err)
		}
		if d.Oracle != nil {
			if expected, ok := d.Oracle.ExpectedPost(rec.Txid); ok && !result.Snapshot.Post.Equal(expected) {
				if d.Strict {
					return fmt.Errorf("%w: slot %d txid %d variant %q", ErrSnapshotMismatch, slot.SlotNumber, rec.Txid, ix.Variant())
				}
				log.Printf("post-snapshot divergence at slot %d txid %d variant %q", slot.SlotNumber, rec.Txid, ix.Variant())
			}
		}
		// A failed execution leaves the world untouched: the snapshot is
		// still emitted so auditors see the attempted state, but only a
		// successful instruction's post-state advances the map.
		if result.TransactionStatus.Success {
			d.Accounts.Fold(result.WritableKeys, result.Snapshot.Post)
		}
		if sink != nil {
			out := ReplayRecord{
				Slot:              slot.SlotNumber,
				Txid:              rec.Txid,
				Variant:           ix.Variant(),
				TransactionStatus: result.TransactionStatus,
				Pre:               result.Snapshot.Pre,
				Post:              result.Snapshot.Post,
				VaultCheckOK:      result.VaultCheckOK,
			}
			if err := sink.Emit(out); err != nil {
				return fmt.Errorf("replay: emitting slot %d txid %d: %w", slot.SlotNumber, rec.Txid, err)
			}
		}
	}
	return nil
}

// Run replays every slot in slots, which must already be in ascending
// slot order; checkpoint, if non-nil, is invoked after each slot completes
// and may flush the account map to a new snapshot file.
func (d *Driver) Run(ctx context.Context, slots []SlotRecord, src InstructionSource, sink Sink, checkpoint func(slot SlotRecord, accounts *AccountMap) error) error {
	for _, slot := range slots {
		if err := d.RunSlot(ctx, slot, src, sink); err != nil {
			return err
		}
		if checkpoint != nil {
			if err := checkpoint(slot, d.Accounts); err != nil {
				return fmt.Errorf("replay: checkpoint at slot %d: %w", slot.SlotNumber, err)
			}
		}
	}
	return nil
}
