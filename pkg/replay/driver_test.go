package replay

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/whirlpool"
	"github.com/gagliardetto/solana-go"
)

type memSource map[uint64][]InstructionRecord

func (s memSource) InstructionsForSlot(slot uint64) ([]InstructionRecord, error) {
	return s[slot], nil
}

type collectSink struct {
	records []ReplayRecord
}

func (c *collectSink) Emit(r ReplayRecord) error {
	c.records = append(c.records, r)
	return nil
}

type oracleFunc func(txid uint64) (*AccountMap, bool)

func (f oracleFunc) ExpectedPost(txid uint64) (*AccountMap, bool) { return f(txid) }

func record(t *testing.T, slot uint64, idx uint64, ix instructions.Decoded) InstructionRecord {
	t.Helper()
	payload, err := json.Marshal(ix)
	if err != nil {
		t.Fatalf("marshaling %s payload: %v", ix.Variant(), err)
	}
	return InstructionRecord{
		Slot:            slot,
		Txid:            slot<<24 | idx,
		InstructionName: ix.Variant(),
		Payload:         payload,
	}
}

func TestEmptySlot(t *testing.T) {
	host := newTestHost()
	am, _ := swapWorld()
	pre := am.Len()

	driver := NewDriver(host, am)
	sink := &collectSink{}
	slot := SlotRecord{SlotNumber: 100, BlockTime: 1_700_000_000}
	if err := driver.RunSlot(context.Background(), slot, memSource{}, sink); err != nil {
		t.Fatal(err)
	}
	if am.Len() != pre {
		t.Errorf("account map changed across an empty slot: %d -> %d", pre, am.Len())
	}
	if len(sink.records) != 0 {
		t.Errorf("empty slot emitted %d records", len(sink.records))
	}
}

func TestRunSlotFoldsSequentially(t *testing.T) {
	host := newTestHost()

	var (
		config    = pkey(0x60)
		feeTier   = pkey(0x61)
		pool      = pkey(0x62)
		tickArray = pkey(0x63)
		funder    = pkey(0x64)
	)

	am := NewAccountMap()
	put(am, config, WhirlpoolProgramID, (&whirlpool.WhirlpoolsConfig{}).Encode())
	put(am, feeTier, WhirlpoolProgramID, (&whirlpool.FeeTier{WhirlpoolsConfig: config, TickSpacing: 64, DefaultFeeRate: 3000}).Encode())

	initPool := instructions.DecodedInitializePool{
		DataTickSpacing:      64,
		DataInitialSqrtPrice: instructions.U128{Hi: 1},
		KeyWhirlpoolsConfig:  config,
		KeyTokenMintA:        pkey(0x65),
		KeyTokenMintB:        pkey(0x66),
		KeyFunder:            funder,
		KeyWhirlpool:         pool,
		KeyTokenVaultA:       pkey(0x67),
		KeyTokenVaultB:       pkey(0x68),
		KeyFeeTier:           feeTier,
		KeyTokenProgram:      TokenProgramID,
	}
	// The tick array's handler stages the whirlpool from the account map:
	// it only succeeds if the pool created one instruction earlier was
	// folded in before this instruction ran.
	initTicks := instructions.DecodedInitializeTickArray{
		DataStartTickIndex: -5632,
		KeyWhirlpool:       pool,
		KeyFunder:          funder,
		KeyTickArray:       tickArray,
	}

	slot := SlotRecord{SlotNumber: 200, BlockTime: 1_700_000_000}
	src := memSource{200: {record(t, 200, 0, initPool), record(t, 200, 1, initTicks)}}
	sink := &collectSink{}

	driver := NewDriver(host, am)
	if err := driver.RunSlot(context.Background(), slot, src, sink); err != nil {
		t.Fatal(err)
	}
	if len(sink.records) != 2 {
		t.Fatalf("want 2 records, got %d", len(sink.records))
	}
	for _, r := range sink.records {
		if !r.TransactionStatus.Success {
			t.Errorf("txid %d (%s) failed: %+v", r.Txid, r.Variant, r.TransactionStatus)
		}
	}
	if _, ok := am.Get(pool); !ok {
		t.Error("whirlpool missing from account map after fold")
	}
	acc, ok := am.Get(tickArray)
	if !ok {
		t.Fatal("tick array missing from account map after fold")
	}
	ta, err := whirlpool.DecodeTickArray(acc.Data)
	if err != nil {
		t.Fatal(err)
	}
	if ta.StartTickIndex != -5632 {
		t.Errorf("start tick index: want -5632, got %d", ta.StartTickIndex)
	}
}

func TestFailedInstructionLeavesMapUntouched(t *testing.T) {
	host := newTestHost()
	am, swap := swapWorld()

	// Clip the vault B balance below the observed output so the second
	// transfer leg underflows and the execution fails on-chain-style.
	put(am, swap.KeyVaultB, TokenProgramID,
		whirlpool.NewTokenAccount(pkey(0x1a), swap.KeyWhirlpool, 10).Encode())
	vaultBefore, _ := am.Get(swap.KeyVaultB)
	poolBefore, _ := am.Get(swap.KeyWhirlpool)

	slot := SlotRecord{SlotNumber: 300, BlockTime: 1_700_000_000}
	src := memSource{300: {record(t, 300, 0, swap)}}
	sink := &collectSink{}

	driver := NewDriver(host, am)
	if err := driver.RunSlot(context.Background(), slot, src, sink); err != nil {
		t.Fatal(err)
	}
	if len(sink.records) != 1 {
		t.Fatalf("want 1 record, got %d", len(sink.records))
	}
	if sink.records[0].TransactionStatus.Success {
		t.Fatal("underfunded swap should fail")
	}
	if sink.records[0].TransactionStatus.ErrCode == "" {
		t.Error("failed status carries no error code")
	}

	vaultAfter, _ := am.Get(swap.KeyVaultB)
	poolAfter, _ := am.Get(swap.KeyWhirlpool)
	if string(vaultAfter.Data) != string(vaultBefore.Data) {
		t.Error("failed instruction advanced the vault in the account map")
	}
	if string(poolAfter.Data) != string(poolBefore.Data) {
		t.Error("failed instruction advanced the whirlpool in the account map")
	}
}

func TestUnknownInstructionStrictness(t *testing.T) {
	host := newTestHost()
	am, _ := swapWorld()
	slot := SlotRecord{SlotNumber: 400, BlockTime: 1_700_000_000}
	src := memSource{400: {{
		Slot: 400, Txid: 400 << 24, InstructionName: "rebalancePool", Payload: []byte(`{}`),
	}}}

	driver := NewDriver(host, am)
	sink := &collectSink{}
	if err := driver.RunSlot(context.Background(), slot, src, sink); err != nil {
		t.Fatalf("non-strict driver should skip an unknown instruction, got %v", err)
	}
	if len(sink.records) != 0 {
		t.Error("skipped instruction still emitted a record")
	}

	driver.Strict = true
	err := driver.RunSlot(context.Background(), slot, src, sink)
	if !errors.Is(err, instructions.ErrUnknownInstruction) {
		t.Fatalf("want ErrUnknownInstruction in strict mode, got %v", err)
	}
}

func TestUnsupportedVariantStrictness(t *testing.T) {
	bare := NewHost(nil, nil, nil) // nothing registered
	am, swap := swapWorld()
	pre := am.Len()
	slot := SlotRecord{SlotNumber: 500, BlockTime: 1_700_000_000}
	src := memSource{500: {record(t, 500, 0, swap)}}

	driver := NewDriver(bare, am)
	driver.Strict = true
	err := driver.RunSlot(context.Background(), slot, src, nil)
	if !errors.Is(err, ErrUnsupportedVariant) {
		t.Fatalf("want ErrUnsupportedVariant, got %v", err)
	}
	if am.Len() != pre {
		t.Error("account map advanced past an unsupported instruction")
	}

	driver.Strict = false
	if err := driver.RunSlot(context.Background(), slot, src, nil); err != nil {
		t.Fatalf("non-strict driver should skip an unsupported variant, got %v", err)
	}
}

func TestRunSlotCancellation(t *testing.T) {
	host := newTestHost()
	am, swap := swapWorld()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slot := SlotRecord{SlotNumber: 600, BlockTime: 1_700_000_000}
	src := memSource{600: {record(t, 600, 0, swap)}}
	sink := &collectSink{}

	driver := NewDriver(host, am)
	err := driver.RunSlot(ctx, slot, src, sink)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if len(sink.records) != 0 {
		t.Error("cancelled slot still emitted records")
	}
}

func TestOracleMismatchStrict(t *testing.T) {
	host := newTestHost()
	am, swap := swapWorld()
	slot := SlotRecord{SlotNumber: 700, BlockTime: 1_700_000_000}
	src := memSource{700: {record(t, 700, 0, swap)}}

	driver := NewDriver(host, am)
	driver.Strict = true
	driver.Oracle = oracleFunc(func(txid uint64) (*AccountMap, bool) {
		// An oracle that recorded a different world: always diverges.
		return NewAccountMap(), true
	})

	err := driver.RunSlot(context.Background(), slot, src, nil)
	if !errors.Is(err, ErrSnapshotMismatch) {
		t.Fatalf("want ErrSnapshotMismatch, got %v", err)
	}
}

func TestRunInSlotOrder(t *testing.T) {
	host := newTestHost()
	am, swap := swapWorld()

	src := memSource{
		800: {record(t, 800, 0, swap)},
		801: {record(t, 801, 0, swap)},
	}
	slots := []SlotRecord{
		{SlotNumber: 800, BlockTime: 1_700_000_000},
		{SlotNumber: 801, BlockTime: 1_700_000_400},
	}
	sink := &collectSink{}
	var checkpoints []uint64

	driver := NewDriver(host, am)
	err := driver.Run(context.Background(), slots, src, sink, func(slot SlotRecord, accounts *AccountMap) error {
		checkpoints = append(checkpoints, slot.SlotNumber)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.records) != 2 {
		t.Fatalf("want 2 records, got %d", len(sink.records))
	}
	if sink.records[0].Slot != 800 || sink.records[1].Slot != 801 {
		t.Errorf("records out of slot order: %d, %d", sink.records[0].Slot, sink.records[1].Slot)
	}
	if len(checkpoints) != 2 || checkpoints[0] != 800 || checkpoints[1] != 801 {
		t.Errorf("checkpoints out of order: %v", checkpoints)
	}
}

func TestSnapshotSubsetPreservesAbsence(t *testing.T) {
	am := NewAccountMap()
	present := pkey(0x70)
	absent := pkey(0x71)
	put(am, present, WhirlpoolProgramID, []byte("data"))

	sub := am.SnapshotSubset([]solana.PublicKey{present, absent})
	if _, ok := sub.Get(present); !ok {
		t.Error("present key missing from subset")
	}
	if _, ok := sub.Get(absent); ok {
		t.Error("absent key materialized in subset")
	}
}
