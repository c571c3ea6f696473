package snapshotio

import (
	"bytes"
	"testing"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/replay"
	"github.com/gagliardetto/solana-go"
)

func TestRoundTrip(t *testing.T) {
	am := replay.NewAccountMap()
	owner := solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	key := solana.NewWallet().PublicKey()
	am.Upsert(key, replay.Account{
		Owner:     owner,
		Lamports:  12345,
		RentEpoch: 6,
		Data:      []byte{1, 2, 3, 4, 5},
	})

	var buf bytes.Buffer
	if err := WriteTo(&buf, am); err != nil {
		t.Fatalf("WriteTo failed: %s", err.Error())
	}

	got, err := LoadFrom(&buf)
	if err != nil {
		t.Fatalf("LoadFrom failed: %s", err.Error())
	}

	acc, ok := got.Get(key)
	if !ok {
		t.Fatalf("round-tripped map missing key %s", key)
	}
	if acc.Owner != owner {
		t.Errorf("owner mismatch: want %s, got %s", owner, acc.Owner)
	}
	if acc.Lamports != 12345 {
		t.Errorf("lamports mismatch: want 12345, got %d", acc.Lamports)
	}
	if acc.RentEpoch != 6 {
		t.Errorf("rent epoch mismatch: want 6, got %d", acc.RentEpoch)
	}
	if !bytes.Equal(acc.Data, []byte{1, 2, 3, 4, 5}) {
		t.Errorf("data mismatch: want %v, got %v", []byte{1, 2, 3, 4, 5}, acc.Data)
	}
}

func TestLoadEmptySnapshot(t *testing.T) {
	am := replay.NewAccountMap()
	var buf bytes.Buffer
	if err := WriteTo(&buf, am); err != nil {
		t.Fatalf("WriteTo failed: %s", err.Error())
	}
	got, err := LoadFrom(&buf)
	if err != nil {
		t.Fatalf("LoadFrom failed: %s", err.Error())
	}
	if got.Len() != 0 {
		t.Errorf("expected empty map, got %d entries", got.Len())
	}
}
