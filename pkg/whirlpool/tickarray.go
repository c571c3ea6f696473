package whirlpool

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/anchor"
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

const (
	ticksPerArray  = 88
	tickSize       = 113
	TickArraySize  = 8 + 4 + ticksPerArray*tickSize + 32
)

var tickArrayDiscriminator = anchor.GetDiscriminator("account", "TickArray")

// Tick holds the liquidity and fee-growth state pinned at one price tick.
type Tick struct {
	Initialized          bool
	LiquidityNet         *big.Int // i128, signed
	LiquidityGross       uint128.Uint128
	FeeGrowthOutsideA    uint128.Uint128
	FeeGrowthOutsideB    uint128.Uint128
	RewardGrowthsOutside [3]uint128.Uint128
}

func decodeTick(data []byte) Tick {
	t := Tick{
		Initialized:       data[0] != 0,
		LiquidityNet:      readI128(data, 1),
		LiquidityGross:    readU128(data, 17),
		FeeGrowthOutsideA: readU128(data, 33),
		FeeGrowthOutsideB: readU128(data, 49),
	}
	for i := 0; i < 3; i++ {
		t.RewardGrowthsOutside[i] = readU128(data, 65+i*16)
	}
	return t
}

func (t Tick) encodeInto(data []byte) {
	if t.Initialized {
		data[0] = 1
	}
	net := t.LiquidityNet
	if net == nil {
		net = big.NewInt(0)
	}
	writeI128(data, 1, net)
	writeU128(data, 17, t.LiquidityGross)
	writeU128(data, 33, t.FeeGrowthOutsideA)
	writeU128(data, 49, t.FeeGrowthOutsideB)
	for i := 0; i < 3; i++ {
		writeU128(data, 65+i*16, t.RewardGrowthsOutside[i])
	}
}

// TickArray covers a contiguous range of 88 ticks for one Whirlpool.
type TickArray struct {
	StartTickIndex int32
	Ticks          [ticksPerArray]Tick
	Whirlpool      solana.PublicKey
}

func DecodeTickArray(data []byte) (*TickArray, error) {
	if len(data) < TickArraySize {
		return nil, fmt.Errorf("whirlpool: short tick array data: want %d bytes, got %d", TickArraySize, len(data))
	}
	ta := &TickArray{
		StartTickIndex: int32(binary.LittleEndian.Uint32(data[8:12])),
	}
	for i := 0; i < ticksPerArray; i++ {
		off := 12 + i*tickSize
		ta.Ticks[i] = decodeTick(data[off : off+tickSize])
	}
	ta.Whirlpool = readPubkey(data, 12+ticksPerArray*tickSize)
	return ta, nil
}

func (ta *TickArray) Encode() []byte {
	data := make([]byte, TickArraySize)
	copy(data[0:8], tickArrayDiscriminator)
	binary.LittleEndian.PutUint32(data[8:12], uint32(ta.StartTickIndex))
	for i := 0; i < ticksPerArray; i++ {
		off := 12 + i*tickSize
		ta.Ticks[i].encodeInto(data[off : off+tickSize])
	}
	writePubkey(data, 12+ticksPerArray*tickSize, ta.Whirlpool)
	return data
}

// TickIndexInArray returns the slot index of tickIndex within this array,
// or -1 if it falls outside the array's covered range.
func (ta *TickArray) TickIndexInArray(tickIndex int32, tickSpacing uint16) int {
	diff := int(tickIndex) - int(ta.StartTickIndex)
	if diff < 0 {
		return -1
	}
	offset := diff / int(tickSpacing)
	if offset >= ticksPerArray {
		return -1
	}
	return offset
}
