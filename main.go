package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/replay"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/snapshotio"
)

var (
	snapshotIn  = "data/whirlpool-snapshot-215135999.csv.gz"
	snapshotOut = "data/whirlpool-snapshot-215135999.csv.2.gz"

	// instructionStream, if set via WHIRLPOOL_INSTRUCTION_STREAM_PATH, is a
	// newline-delimited JSON file where each line is
	// {"slot":u64,"txid":u64,"blockTime":i64,"instructionName":string,"payload":{...}}, a
	// flat-file stand-in for the relational ingest contract.
	instructionStream = ""
)

// streamRecord mirrors one row of the instruction ingest contract as it
// would arrive flattened into a single newline-delimited JSON file for
// this demonstration; a real deployment reads this from the
// slots/instructions tables instead.
type streamRecord struct {
	Slot            uint64          `json:"slot"`
	Txid            uint64          `json:"txid"`
	BlockTime       int64           `json:"blockTime"`
	InstructionName string          `json:"instructionName"`
	Payload         json.RawMessage `json:"payload"`
}

// exitCode maps a replay failure onto the documented process exit codes:
// 2 unsupported instruction, 3 execution divergence, 4 I/O error,
// 5 decode error.
func exitCode(err error) int {
	switch {
	case errors.Is(err, replay.ErrUnsupportedVariant), errors.Is(err, instructions.ErrUnknownInstruction):
		return 2
	case errors.Is(err, replay.ErrSnapshotMismatch):
		return 3
	case errors.Is(err, instructions.ErrDecode):
		return 5
	default:
		return 4
	}
}

func fatal(msg string, err error) {
	log.Printf("%s: %v", msg, err)
	os.Exit(exitCode(err))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("🚀 loading baseline snapshot from %s", snapshotIn)

	accounts, err := snapshotio.Load(snapshotIn)
	if err != nil {
		fatal("Failed to load snapshot", err)
	}
	log.Printf("😈 loaded %d accounts", accounts.Len())

	whirlpoolSO := mustReadOptional(os.Getenv("WHIRLPOOL_PROGRAM_SO_PATH"))
	tokenSO := mustReadOptional(os.Getenv("SPL_TOKEN_PROGRAM_SO_PATH"))
	metadataSO := mustReadOptional(os.Getenv("TOKEN_METADATA_PROGRAM_SO_PATH"))

	host := replay.NewHost(whirlpoolSO, tokenSO, metadataSO)
	replay.RegisterDefaultProcessors(host)
	driver := replay.NewDriver(host, accounts)
	driver.Strict = os.Getenv("WHIRLPOOL_REPLAY_STRICT") == "1"

	if instructionStream == "" {
		instructionStream = os.Getenv("WHIRLPOOL_INSTRUCTION_STREAM_PATH")
	}
	if instructionStream != "" {
		log.Printf("⌛️ replaying instruction stream from %s", instructionStream)
		bySlot, order, err := loadStream(instructionStream)
		if err != nil {
			fatal("Failed to load instruction stream", err)
		}
		replayed := 0
		for _, slot := range order {
			if err := driver.RunSlot(ctx, slot.record, slot.src, loggingSink{}); err != nil {
				fatal("Failed to replay slot", err)
			}
			replayed += len(bySlot[slot.record.SlotNumber])
		}
		log.Printf("👌 replayed %d instructions across %d slots", replayed, len(order))
	} else {
		log.Printf("🧐 no WHIRLPOOL_INSTRUCTION_STREAM_PATH set, skipping replay step")
	}

	log.Printf("⌛️ writing resulting snapshot to %s", snapshotOut)
	if err := snapshotio.Write(snapshotOut, accounts); err != nil {
		fatal("Failed to write snapshot", err)
	}
	log.Printf("👌 wrote %d accounts", accounts.Len())
}

// mustReadOptional reads path if non-empty, returning nil bytecode when
// no path was configured. The demo still runs against a host whose
// programs carry no real bytecode, since the processors never interpret
// it anyway.
func mustReadOptional(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read program binary %s: %v", path, err)
	}
	return data
}

type slotRun struct {
	record replay.SlotRecord
	src    replay.InstructionSource
}

type sliceSource []replay.InstructionRecord

func (s sliceSource) InstructionsForSlot(slot uint64) ([]replay.InstructionRecord, error) {
	return []replay.InstructionRecord(s), nil
}

// loadStream reads the newline-delimited JSON instruction stream file and
// groups it by slot, preserving first-seen slot order.
func loadStream(path string) (map[uint64][]replay.InstructionRecord, []slotRun, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	bySlot := make(map[uint64][]replay.InstructionRecord)
	blockTimes := make(map[uint64]int64)
	var order []uint64
	seen := make(map[uint64]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec streamRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, nil, err
		}
		bySlot[rec.Slot] = append(bySlot[rec.Slot], replay.InstructionRecord{
			Slot:            rec.Slot,
			Txid:            rec.Txid,
			InstructionName: rec.InstructionName,
			Payload:         rec.Payload,
		})
		blockTimes[rec.Slot] = rec.BlockTime
		if !seen[rec.Slot] {
			seen[rec.Slot] = true
			order = append(order, rec.Slot)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	runs := make([]slotRun, 0, len(order))
	for _, slot := range order {
		runs = append(runs, slotRun{
			record: replay.SlotRecord{SlotNumber: slot, BlockTime: blockTimes[slot]},
			src:    sliceSource(bySlot[slot]),
		})
	}
	return bySlot, runs, nil
}

// loggingSink prints one terse line per replayed instruction.
type loggingSink struct{}

func (loggingSink) Emit(r replay.ReplayRecord) error {
	log.Printf("slot=%d txid=%d variant=%s success=%v", r.Slot, r.Txid, r.Variant, r.TransactionStatus.Success)
	return nil
}
