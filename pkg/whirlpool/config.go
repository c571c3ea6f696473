package whirlpool

import (
	"encoding/binary"
	"fmt"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/anchor"
	"github.com/gagliardetto/solana-go"
)

const WhirlpoolsConfigAccountSize = 8 + 32 + 32 + 32 + 2

var whirlpoolsConfigDiscriminator = anchor.GetDiscriminator("account", "WhirlpoolsConfig")

// WhirlpoolsConfig is the single global authority object every Whirlpool
// and FeeTier account is parented to.
type WhirlpoolsConfig struct {
	FeeAuthority                    solana.PublicKey
	CollectProtocolFeesAuthority    solana.PublicKey
	RewardEmissionsSuperAuthority   solana.PublicKey
	DefaultProtocolFeeRate          uint16
}

func DecodeWhirlpoolsConfig(data []byte) (*WhirlpoolsConfig, error) {
	if len(data) < WhirlpoolsConfigAccountSize {
		return nil, fmt.Errorf("whirlpool: short config data: want %d bytes, got %d", WhirlpoolsConfigAccountSize, len(data))
	}
	return &WhirlpoolsConfig{
		FeeAuthority:                  readPubkey(data, 8),
		CollectProtocolFeesAuthority:  readPubkey(data, 40),
		RewardEmissionsSuperAuthority: readPubkey(data, 72),
		DefaultProtocolFeeRate:        binary.LittleEndian.Uint16(data[104:106]),
	}, nil
}

func (c *WhirlpoolsConfig) Encode() []byte {
	data := make([]byte, WhirlpoolsConfigAccountSize)
	copy(data[0:8], whirlpoolsConfigDiscriminator)
	writePubkey(data, 8, c.FeeAuthority)
	writePubkey(data, 40, c.CollectProtocolFeesAuthority)
	writePubkey(data, 72, c.RewardEmissionsSuperAuthority)
	binary.LittleEndian.PutUint16(data[104:106], c.DefaultProtocolFeeRate)
	return data
}

const FeeTierAccountSize = 8 + 32 + 2 + 2

var feeTierDiscriminator = anchor.GetDiscriminator("account", "FeeTier")

// FeeTier binds a tick spacing to a default fee rate within a config.
type FeeTier struct {
	WhirlpoolsConfig solana.PublicKey
	TickSpacing      uint16
	DefaultFeeRate   uint16
}

func DecodeFeeTier(data []byte) (*FeeTier, error) {
	if len(data) < FeeTierAccountSize {
		return nil, fmt.Errorf("whirlpool: short fee tier data: want %d bytes, got %d", FeeTierAccountSize, len(data))
	}
	return &FeeTier{
		WhirlpoolsConfig: readPubkey(data, 8),
		TickSpacing:      binary.LittleEndian.Uint16(data[40:42]),
		DefaultFeeRate:   binary.LittleEndian.Uint16(data[42:44]),
	}, nil
}

func (f *FeeTier) Encode() []byte {
	data := make([]byte, FeeTierAccountSize)
	copy(data[0:8], feeTierDiscriminator)
	writePubkey(data, 8, f.WhirlpoolsConfig)
	binary.LittleEndian.PutUint16(data[40:42], f.TickSpacing)
	binary.LittleEndian.PutUint16(data[42:44], f.DefaultFeeRate)
	return data
}
