package whirlpool

import (
	"encoding/binary"
	"fmt"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/anchor"
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

// WhirlpoolAccountSize is the on-chain size of a Whirlpool pool account.
const WhirlpoolAccountSize = 653

// Anchor account discriminators are sha256("account:<TypeName>")[:8].
var whirlpoolDiscriminator = anchor.GetDiscriminator("account", "Whirlpool")

// RewardInfo is one of a Whirlpool's three reward-emission slots.
type RewardInfo struct {
	Mint                  solana.PublicKey
	Vault                 solana.PublicKey
	Authority             solana.PublicKey
	EmissionsPerSecondX64 uint128.Uint128
	GrowthGlobalX64       uint128.Uint128
}

const rewardInfoSize = 32 + 32 + 32 + 16 + 16

func decodeRewardInfo(data []byte) RewardInfo {
	return RewardInfo{
		Mint:                  readPubkey(data, 0),
		Vault:                 readPubkey(data, 32),
		Authority:             readPubkey(data, 64),
		EmissionsPerSecondX64: readU128(data, 96),
		GrowthGlobalX64:       readU128(data, 112),
	}
}

func (r RewardInfo) encodeInto(data []byte) {
	writePubkey(data, 0, r.Mint)
	writePubkey(data, 32, r.Vault)
	writePubkey(data, 64, r.Authority)
	writeU128(data, 96, r.EmissionsPerSecondX64)
	writeU128(data, 112, r.GrowthGlobalX64)
}

// Whirlpool is a single AMM pool account. Field offsets are taken from the
// on-chain layout as observed in the retrieved pack; fields are laid out
// in declaration order (mint A, vault A, fee growth A, then the same three
// for token B).
type Whirlpool struct {
	WhirlpoolsConfig solana.PublicKey
	WhirlpoolBump    uint8
	TickSpacing      uint16
	TickSpacingSeed  [2]uint8
	FeeRate          uint16
	ProtocolFeeRate  uint16
	Liquidity        uint128.Uint128
	SqrtPrice        uint128.Uint128
	TickCurrentIndex int32
	ProtocolFeeOwedA uint64
	ProtocolFeeOwedB uint64

	TokenMintA       solana.PublicKey
	TokenVaultA      solana.PublicKey
	FeeGrowthGlobalA uint128.Uint128

	TokenMintB       solana.PublicKey
	TokenVaultB      solana.PublicKey
	FeeGrowthGlobalB uint128.Uint128

	RewardLastUpdatedTimestamp uint64
	RewardInfos                [3]RewardInfo
}

// DecodeWhirlpool parses a raw Whirlpool account's data bytes.
func DecodeWhirlpool(data []byte) (*Whirlpool, error) {
	if len(data) < WhirlpoolAccountSize {
		return nil, fmt.Errorf("whirlpool: short account data: want %d bytes, got %d", WhirlpoolAccountSize, len(data))
	}
	w := &Whirlpool{
		WhirlpoolsConfig: readPubkey(data, 8),
		WhirlpoolBump:    data[40],
		TickSpacing:      binary.LittleEndian.Uint16(data[41:43]),
		TickSpacingSeed:  [2]uint8{data[43], data[44]},
		FeeRate:          binary.LittleEndian.Uint16(data[45:47]),
		ProtocolFeeRate:  binary.LittleEndian.Uint16(data[47:49]),
		Liquidity:        readU128(data, 49),
		SqrtPrice:        readU128(data, 65),
		TickCurrentIndex: int32(binary.LittleEndian.Uint32(data[81:85])),
		ProtocolFeeOwedA: binary.LittleEndian.Uint64(data[85:93]),
		ProtocolFeeOwedB: binary.LittleEndian.Uint64(data[93:101]),

		TokenMintA:       readPubkey(data, 101),
		TokenVaultA:      readPubkey(data, 133),
		FeeGrowthGlobalA: readU128(data, 165),

		TokenMintB:       readPubkey(data, 181),
		TokenVaultB:      readPubkey(data, 213),
		FeeGrowthGlobalB: readU128(data, 245),

		RewardLastUpdatedTimestamp: binary.LittleEndian.Uint64(data[261:269]),
	}
	for i := 0; i < 3; i++ {
		off := 269 + i*rewardInfoSize
		w.RewardInfos[i] = decodeRewardInfo(data[off : off+rewardInfoSize])
	}
	return w, nil
}

// Encode serializes the Whirlpool back to its on-chain byte layout.
func (w *Whirlpool) Encode() []byte {
	data := make([]byte, WhirlpoolAccountSize)
	copy(data[0:8], whirlpoolDiscriminator)
	writePubkey(data, 8, w.WhirlpoolsConfig)
	data[40] = w.WhirlpoolBump
	binary.LittleEndian.PutUint16(data[41:43], w.TickSpacing)
	data[43], data[44] = w.TickSpacingSeed[0], w.TickSpacingSeed[1]
	binary.LittleEndian.PutUint16(data[45:47], w.FeeRate)
	binary.LittleEndian.PutUint16(data[47:49], w.ProtocolFeeRate)
	writeU128(data, 49, w.Liquidity)
	writeU128(data, 65, w.SqrtPrice)
	binary.LittleEndian.PutUint32(data[81:85], uint32(w.TickCurrentIndex))
	binary.LittleEndian.PutUint64(data[85:93], w.ProtocolFeeOwedA)
	binary.LittleEndian.PutUint64(data[93:101], w.ProtocolFeeOwedB)

	writePubkey(data, 101, w.TokenMintA)
	writePubkey(data, 133, w.TokenVaultA)
	writeU128(data, 165, w.FeeGrowthGlobalA)

	writePubkey(data, 181, w.TokenMintB)
	writePubkey(data, 213, w.TokenVaultB)
	writeU128(data, 245, w.FeeGrowthGlobalB)

	binary.LittleEndian.PutUint64(data[261:269], w.RewardLastUpdatedTimestamp)
	for i := 0; i < 3; i++ {
		off := 269 + i*rewardInfoSize
		w.RewardInfos[i].encodeInto(data[off : off+rewardInfoSize])
	}
	return data
}
