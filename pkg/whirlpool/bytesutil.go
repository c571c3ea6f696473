// Package whirlpool models the on-chain account layouts of the Orca
// Whirlpool concentrated-liquidity program: the pool itself, its tick
// arrays, positions, position bundles, fee tiers, the global config, and
// the SPL Token accounts it moves balances through. The replay core treats
// account bytes as opaque; only the pieces in this package peek inside,
// and only where a handler needs a specific field.
package whirlpool

import (
	"encoding/binary"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

func readPubkey(data []byte, offset int) solana.PublicKey {
	return solana.PublicKeyFromBytes(data[offset : offset+32])
}

func writePubkey(data []byte, offset int, key solana.PublicKey) {
	copy(data[offset:offset+32], key[:])
}

func readU128(data []byte, offset int) uint128.Uint128 {
	lo := binary.LittleEndian.Uint64(data[offset : offset+8])
	hi := binary.LittleEndian.Uint64(data[offset+8 : offset+16])
	return uint128.Uint128{Lo: lo, Hi: hi}
}

func writeU128(data []byte, offset int, v uint128.Uint128) {
	binary.LittleEndian.PutUint64(data[offset:offset+8], v.Lo)
	binary.LittleEndian.PutUint64(data[offset+8:offset+16], v.Hi)
}

// readI128 reads a two's-complement 128-bit signed integer (used for
// Tick.LiquidityNet, which can go negative crossing a tick boundary).
func readI128(data []byte, offset int) *big.Int {
	raw := make([]byte, 16)
	for i := 0; i < 16; i++ {
		raw[i] = data[offset+15-i]
	}
	v := new(big.Int).SetBytes(raw)
	if raw[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return v
}

func writeI128(data []byte, offset int, v *big.Int) {
	var u big.Int
	if v.Sign() < 0 {
		u.Lsh(big.NewInt(1), 128)
		u.Add(&u, v)
	} else {
		u.Set(v)
	}
	b := u.Bytes()
	var be [16]byte
	copy(be[16-len(b):], b)
	for i := 0; i < 16; i++ {
		data[offset+i] = be[15-i]
	}
}
