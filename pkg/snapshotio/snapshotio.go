// Package snapshotio loads and writes the gzip-CSV snapshot file format
// into and out of a replay.AccountMap. The replay engine never touches a
// filesystem; this package is the thing that hands it a baseline world and
// later persists the world it produced.
package snapshotio

import (
	"bufio"
	"encoding/base64"
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/replay"
	"github.com/gagliardetto/solana-go"
	"github.com/klauspost/compress/gzip"
	"github.com/mr-tron/base58"
)

// recordHeaderLen is the fixed owner-prefix layout the on-disk
// data_base64 payload carries ahead of the raw account bytes:
// owner pubkey (32), executable flag (1), lamports (8 LE), rent epoch (8 LE).
const recordHeaderLen = 32 + 1 + 8 + 8

// encodeAccount serialises acc into the owner-prefix layout the executor
// expects on disk.
func encodeAccount(acc replay.Account) []byte {
	out := make([]byte, recordHeaderLen+len(acc.Data))
	copy(out[0:32], acc.Owner[:])
	if acc.Executable {
		out[32] = 1
	}
	binary.LittleEndian.PutUint64(out[33:41], acc.Lamports)
	binary.LittleEndian.PutUint64(out[41:49], acc.RentEpoch)
	copy(out[recordHeaderLen:], acc.Data)
	return out
}

// decodeAccount is encodeAccount's inverse.
func decodeAccount(raw []byte) (replay.Account, error) {
	if len(raw) < recordHeaderLen {
		return replay.Account{}, fmt.Errorf("snapshotio: account record too short: %d bytes", len(raw))
	}
	var owner solana.PublicKey
	copy(owner[:], raw[0:32])
	data := make([]byte, len(raw)-recordHeaderLen)
	copy(data, raw[recordHeaderLen:])
	return replay.Account{
		Owner:      owner,
		Executable: raw[32] != 0,
		Lamports:   binary.LittleEndian.Uint64(raw[33:41]),
		RentEpoch:  binary.LittleEndian.Uint64(raw[41:49]),
		Data:       data,
	}, nil
}

// Load reads one gzip-CSV snapshot file (no header, pubkey/data_base64
// columns) into a fresh AccountMap.
func Load(path string) (*replay.AccountMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshotio: opening %s: %w", path, err)
	}
	defer f.Close()
	return LoadFrom(f)
}

// LoadFrom reads the same format as Load from an arbitrary reader, for
// callers that already have the file open or are reading from a pipe.
func LoadFrom(r io.Reader) (*replay.AccountMap, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snapshotio: opening gzip stream: %w", err)
	}
	defer gz.Close()

	cr := csv.NewReader(gz)
	cr.FieldsPerRecord = 2

	am := replay.NewAccountMap()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("snapshotio: reading csv row: %w", err)
		}
		pubkey, dataB64 := row[0], row[1]

		keyBytes, err := base58.Decode(pubkey)
		if err != nil {
			return nil, fmt.Errorf("snapshotio: decoding pubkey %q: %w", pubkey, err)
		}
		if len(keyBytes) != 32 {
			return nil, fmt.Errorf("snapshotio: pubkey %q decodes to %d bytes, want 32", pubkey, len(keyBytes))
		}
		key := solana.PublicKeyFromBytes(keyBytes)

		raw, err := base64.StdEncoding.DecodeString(dataB64)
		if err != nil {
			return nil, fmt.Errorf("snapshotio: decoding data_base64 for %s: %w", pubkey, err)
		}
		acc, err := decodeAccount(raw)
		if err != nil {
			return nil, fmt.Errorf("snapshotio: %s: %w", pubkey, err)
		}
		am.Upsert(key, acc)
	}
	return am, nil
}

// Write flushes every account in am to a gzip-CSV snapshot file at path.
// Loading the written file back yields a map equal to am.
func Write(path string, am *replay.AccountMap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshotio: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteTo(f, am); err != nil {
		return err
	}
	return nil
}

// WriteTo is Write's writer-agnostic counterpart.
func WriteTo(w io.Writer, am *replay.AccountMap) error {
	bw := bufio.NewWriter(w)
	gz := gzip.NewWriter(bw)
	cw := csv.NewWriter(gz)

	for _, key := range am.Keys() {
		acc, _ := am.Get(key)
		row := []string{
			base58.Encode(key[:]),
			base64.StdEncoding.EncodeToString(encodeAccount(acc)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("snapshotio: writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("snapshotio: flushing csv: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("snapshotio: closing gzip writer: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("snapshotio: flushing output: %w", err)
	}
	return nil
}
