package whirlpool

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

func TestWhirlpoolRoundTrip(t *testing.T) {
	w := &Whirlpool{
		WhirlpoolsConfig: solana.NewWallet().PublicKey(),
		WhirlpoolBump:    254,
		TickSpacing:      64,
		TickSpacingSeed:  [2]uint8{0, 64},
		FeeRate:          300,
		ProtocolFeeRate:  100,
		Liquidity:        uint128.From64(123456789),
		SqrtPrice:        uint128.From64(987654321),
		TickCurrentIndex: -5000,
		ProtocolFeeOwedA: 10,
		ProtocolFeeOwedB: 20,
		TokenMintA:       solana.NewWallet().PublicKey(),
		TokenVaultA:      solana.NewWallet().PublicKey(),
		FeeGrowthGlobalA: uint128.From64(1),
		TokenMintB:       solana.NewWallet().PublicKey(),
		TokenVaultB:      solana.NewWallet().PublicKey(),
		FeeGrowthGlobalB: uint128.From64(2),
		RewardLastUpdatedTimestamp: 1700000000,
		RewardInfos: [3]RewardInfo{
			{Mint: solana.NewWallet().PublicKey(), EmissionsPerSecondX64: uint128.From64(7)},
		},
	}

	got, err := DecodeWhirlpool(w.Encode())
	if err != nil {
		t.Fatalf("DecodeWhirlpool failed: %s", err.Error())
	}
	if got.WhirlpoolsConfig != w.WhirlpoolsConfig {
		t.Errorf("config mismatch: want %s, got %s", w.WhirlpoolsConfig, got.WhirlpoolsConfig)
	}
	if got.TickCurrentIndex != w.TickCurrentIndex {
		t.Errorf("tick current index mismatch: want %d, got %d", w.TickCurrentIndex, got.TickCurrentIndex)
	}
	if got.SqrtPrice != w.SqrtPrice {
		t.Errorf("sqrt price mismatch: want %s, got %s", w.SqrtPrice, got.SqrtPrice)
	}
	if got.RewardInfos[0].Mint != w.RewardInfos[0].Mint {
		t.Errorf("reward info 0 mint mismatch: want %s, got %s", w.RewardInfos[0].Mint, got.RewardInfos[0].Mint)
	}
	if got.RewardInfos[0].EmissionsPerSecondX64 != w.RewardInfos[0].EmissionsPerSecondX64 {
		t.Errorf("reward info 0 emissions mismatch: want %s, got %s", w.RewardInfos[0].EmissionsPerSecondX64, got.RewardInfos[0].EmissionsPerSecondX64)
	}
}

func TestWhirlpoolDecodeShort(t *testing.T) {
	if _, err := DecodeWhirlpool(make([]byte, 10)); err == nil {
		t.Errorf("expected error decoding short whirlpool data, got nil")
	}
}

func TestWhirlpoolsConfigRoundTrip(t *testing.T) {
	c := &WhirlpoolsConfig{
		FeeAuthority:                  solana.NewWallet().PublicKey(),
		CollectProtocolFeesAuthority:  solana.NewWallet().PublicKey(),
		RewardEmissionsSuperAuthority: solana.NewWallet().PublicKey(),
		DefaultProtocolFeeRate:        150,
	}
	got, err := DecodeWhirlpoolsConfig(c.Encode())
	if err != nil {
		t.Fatalf("DecodeWhirlpoolsConfig failed: %s", err.Error())
	}
	if got.FeeAuthority != c.FeeAuthority {
		t.Errorf("fee authority mismatch: want %s, got %s", c.FeeAuthority, got.FeeAuthority)
	}
	if got.DefaultProtocolFeeRate != c.DefaultProtocolFeeRate {
		t.Errorf("default protocol fee rate mismatch: want %d, got %d", c.DefaultProtocolFeeRate, got.DefaultProtocolFeeRate)
	}
}

func TestFeeTierRoundTrip(t *testing.T) {
	f := &FeeTier{
		WhirlpoolsConfig: solana.NewWallet().PublicKey(),
		TickSpacing:      128,
		DefaultFeeRate:   500,
	}
	got, err := DecodeFeeTier(f.Encode())
	if err != nil {
		t.Fatalf("DecodeFeeTier failed: %s", err.Error())
	}
	if got.TickSpacing != f.TickSpacing || got.DefaultFeeRate != f.DefaultFeeRate {
		t.Errorf("fee tier mismatch: want %+v, got %+v", f, got)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	p := &Position{
		Whirlpool:            solana.NewWallet().PublicKey(),
		PositionMint:         solana.NewWallet().PublicKey(),
		Liquidity:            uint128.From64(42),
		TickLowerIndex:       -128,
		TickUpperIndex:       128,
		FeeGrowthCheckpointA: uint128.From64(1),
		FeeOwedA:             5,
		FeeGrowthCheckpointB: uint128.From64(2),
		FeeOwedB:             6,
	}
	p.RewardInfos[1] = PositionRewardInfo{GrowthInsideCheckpoint: uint128.From64(9), AmountOwed: 3}

	got, err := DecodePosition(p.Encode())
	if err != nil {
		t.Fatalf("DecodePosition failed: %s", err.Error())
	}
	if got.TickLowerIndex != p.TickLowerIndex || got.TickUpperIndex != p.TickUpperIndex {
		t.Errorf("tick range mismatch: want [%d, %d], got [%d, %d]", p.TickLowerIndex, p.TickUpperIndex, got.TickLowerIndex, got.TickUpperIndex)
	}
	if got.RewardInfos[1].AmountOwed != 3 {
		t.Errorf("reward info 1 amount owed mismatch: want 3, got %d", got.RewardInfos[1].AmountOwed)
	}
}

func TestPositionBundleOccupancy(t *testing.T) {
	pb := &PositionBundle{PositionBundleMint: solana.NewWallet().PublicKey()}
	if pb.IsOccupied(17) {
		t.Errorf("expected index 17 unoccupied before SetOccupied")
	}
	pb.SetOccupied(17, true)
	if !pb.IsOccupied(17) {
		t.Errorf("expected index 17 occupied after SetOccupied(true)")
	}
	if pb.IsOccupied(18) {
		t.Errorf("expected index 18 to remain unoccupied")
	}

	got, err := DecodePositionBundle(pb.Encode())
	if err != nil {
		t.Fatalf("DecodePositionBundle failed: %s", err.Error())
	}
	if !got.IsOccupied(17) {
		t.Errorf("expected index 17 occupied after round trip")
	}
	if !bytes.Equal(got.PositionBitmap[:], pb.PositionBitmap[:]) {
		t.Errorf("bitmap mismatch after round trip")
	}

	pb.SetOccupied(17, false)
	if pb.IsOccupied(17) {
		t.Errorf("expected index 17 unoccupied after SetOccupied(false)")
	}
}

func TestTokenAccountRoundTrip(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()
	acc := NewTokenAccount(mint, owner, 1_000_000)

	got, err := DecodeTokenAccount(acc.Encode())
	if err != nil {
		t.Fatalf("DecodeTokenAccount failed: %s", err.Error())
	}
	if got.Mint != mint {
		t.Errorf("mint mismatch: want %s, got %s", mint, got.Mint)
	}
	if got.Owner != owner {
		t.Errorf("owner mismatch: want %s, got %s", owner, got.Owner)
	}
	if got.Amount != 1_000_000 {
		t.Errorf("amount mismatch: want 1000000, got %d", got.Amount)
	}
	if got.State != 1 {
		t.Errorf("expected initialized state 1, got %d", got.State)
	}
}

func TestMintRoundTrip(t *testing.T) {
	authority := solana.NewWallet().PublicKey()
	m := NewMint(authority, 5_000_000, 6)

	got, err := DecodeMint(m.Encode())
	if err != nil {
		t.Fatalf("DecodeMint failed: %s", err.Error())
	}
	if got.MintAuthority != authority {
		t.Errorf("mint authority mismatch: want %s, got %s", authority, got.MintAuthority)
	}
	if got.Supply != 5_000_000 {
		t.Errorf("supply mismatch: want 5000000, got %d", got.Supply)
	}
	if got.Decimals != 6 {
		t.Errorf("decimals mismatch: want 6, got %d", got.Decimals)
	}
	if !got.IsInitialized {
		t.Errorf("expected mint to be initialized")
	}
}
