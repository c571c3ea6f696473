package whirlpool

import (
	"encoding/binary"
	"fmt"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/anchor"
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

const PositionAccountSize = 216

var positionDiscriminator = anchor.GetDiscriminator("account", "Position")

// PositionRewardInfo tracks one reward slot's accrued-but-unclaimed amount
// for a single position.
type PositionRewardInfo struct {
	GrowthInsideCheckpoint uint128.Uint128
	AmountOwed             uint64
}

// Position records a user's liquidity contribution between two ticks.
type Position struct {
	Whirlpool             solana.PublicKey
	PositionMint          solana.PublicKey
	Liquidity             uint128.Uint128
	TickLowerIndex        int32
	TickUpperIndex        int32
	FeeGrowthCheckpointA  uint128.Uint128
	FeeOwedA              uint64
	FeeGrowthCheckpointB  uint128.Uint128
	FeeOwedB              uint64
	RewardInfos           [3]PositionRewardInfo
}

func DecodePosition(data []byte) (*Position, error) {
	if len(data) < PositionAccountSize {
		return nil, fmt.Errorf("whirlpool: short position data: want %d bytes, got %d", PositionAccountSize, len(data))
	}
	p := &Position{
		Whirlpool:            readPubkey(data, 8),
		PositionMint:         readPubkey(data, 40),
		Liquidity:            readU128(data, 72),
		TickLowerIndex:       int32(binary.LittleEndian.Uint32(data[88:92])),
		TickUpperIndex:       int32(binary.LittleEndian.Uint32(data[92:96])),
		FeeGrowthCheckpointA: readU128(data, 96),
		FeeOwedA:             binary.LittleEndian.Uint64(data[112:120]),
		FeeGrowthCheckpointB: readU128(data, 120),
		FeeOwedB:             binary.LittleEndian.Uint64(data[136:144]),
	}
	for i := 0; i < 3; i++ {
		off := 144 + i*24
		p.RewardInfos[i] = PositionRewardInfo{
			GrowthInsideCheckpoint: readU128(data, off),
			AmountOwed:             binary.LittleEndian.Uint64(data[off+16 : off+24]),
		}
	}
	return p, nil
}

func (p *Position) Encode() []byte {
	data := make([]byte, PositionAccountSize)
	copy(data[0:8], positionDiscriminator)
	writePubkey(data, 8, p.Whirlpool)
	writePubkey(data, 40, p.PositionMint)
	writeU128(data, 72, p.Liquidity)
	binary.LittleEndian.PutUint32(data[88:92], uint32(p.TickLowerIndex))
	binary.LittleEndian.PutUint32(data[92:96], uint32(p.TickUpperIndex))
	writeU128(data, 96, p.FeeGrowthCheckpointA)
	binary.LittleEndian.PutUint64(data[112:120], p.FeeOwedA)
	writeU128(data, 120, p.FeeGrowthCheckpointB)
	binary.LittleEndian.PutUint64(data[136:144], p.FeeOwedB)
	for i := 0; i < 3; i++ {
		off := 144 + i*24
		writeU128(data, off, p.RewardInfos[i].GrowthInsideCheckpoint)
		binary.LittleEndian.PutUint64(data[off+16:off+24], p.RewardInfos[i].AmountOwed)
	}
	return data
}

const PositionBundleAccountSize = 8 + 32 + 32

var positionBundleDiscriminator = anchor.GetDiscriminator("account", "PositionBundle")

// PositionBundle groups up to 256 bundled positions under one NFT mint,
// tracked as a bitmap of occupied bundle indexes.
type PositionBundle struct {
	PositionBundleMint solana.PublicKey
	PositionBitmap     [32]byte
}

func DecodePositionBundle(data []byte) (*PositionBundle, error) {
	if len(data) < PositionBundleAccountSize {
		return nil, fmt.Errorf("whirlpool: short position bundle data: want %d bytes, got %d", PositionBundleAccountSize, len(data))
	}
	pb := &PositionBundle{
		PositionBundleMint: readPubkey(data, 8),
	}
	copy(pb.PositionBitmap[:], data[40:72])
	return pb, nil
}

func (pb *PositionBundle) Encode() []byte {
	data := make([]byte, PositionBundleAccountSize)
	copy(data[0:8], positionBundleDiscriminator)
	writePubkey(data, 8, pb.PositionBundleMint)
	copy(data[40:72], pb.PositionBitmap[:])
	return data
}

// IsOccupied reports whether bundleIndex already has a bundled position open.
func (pb *PositionBundle) IsOccupied(bundleIndex uint16) bool {
	byteIdx, bit := bundleIndex/8, bundleIndex%8
	return pb.PositionBitmap[byteIdx]&(1<<bit) != 0
}

// SetOccupied marks or clears bundleIndex's occupancy bit.
func (pb *PositionBundle) SetOccupied(bundleIndex uint16, occupied bool) {
	byteIdx, bit := bundleIndex/8, bundleIndex%8
	if occupied {
		pb.PositionBitmap[byteIdx] |= 1 << bit
	} else {
		pb.PositionBitmap[byteIdx] &^= 1 << bit
	}
}
