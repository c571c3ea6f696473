package replay

import (
	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/whirlpool"
	"github.com/gagliardetto/solana-go"
)

func init() {
	registerHandler(instructions.VariantInitializePool, replayInitializePool)
	registerProcessor(instructions.VariantInitializePool, processInitializePool)
	registerHandler(instructions.VariantInitializeTickArray, replayInitializeTickArray)
	registerProcessor(instructions.VariantInitializeTickArray, processInitializeTickArray)
	registerHandler(instructions.VariantInitializeFeeTier, replayInitializeFeeTier)
	registerProcessor(instructions.VariantInitializeFeeTier, processInitializeFeeTier)
	registerHandler(instructions.VariantInitializeConfig, replayInitializeConfig)
	registerProcessor(instructions.VariantInitializeConfig, processInitializeConfig)
}

func replayInitializePool(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedInitializePool)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig, ix.KeyFeeTier); err != nil {
		return nil, err
	}
	b.AddTokenMint(ix.KeyTokenMintA, solana.PublicKey{}, ^uint64(0), 6, nil)
	b.AddTokenMint(ix.KeyTokenMintB, solana.PublicKey{}, ^uint64(0), 6, nil)
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{ix.KeyWhirlpool, ix.KeyTokenVaultA, ix.KeyTokenVaultB}
	return runReplay(host, b, creationTime, d, writable)
}

func processInitializePool(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedInitializePool)

	feeTier, err := getFeeTier(env, d.KeyFeeTier)
	if err != nil {
		return TransactionStatus{}, err
	}

	w := &whirlpool.Whirlpool{
		WhirlpoolsConfig: d.KeyWhirlpoolsConfig,
		TickSpacing:      d.DataTickSpacing,
		FeeRate:          feeTier.DefaultFeeRate,
		SqrtPrice:        d.DataInitialSqrtPrice.Uint128(),
		TokenMintA:       d.KeyTokenMintA,
		TokenVaultA:      d.KeyTokenVaultA,
		TokenMintB:       d.KeyTokenMintB,
		TokenVaultB:      d.KeyTokenVaultB,
	}
	env.setData(d.KeyWhirlpool, WhirlpoolProgramID, w.Encode())
	createTokenAccount(env, d.KeyTokenVaultA, d.KeyTokenMintA, d.KeyWhirlpool, 0)
	createTokenAccount(env, d.KeyTokenVaultB, d.KeyTokenMintB, d.KeyWhirlpool, 0)

	return Ok("initialize_pool"), nil
}

func replayInitializeTickArray(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedInitializeTickArray)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool); err != nil {
		return nil, err
	}
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{ix.KeyTickArray}
	return runReplay(host, b, creationTime, d, writable)
}

func processInitializeTickArray(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedInitializeTickArray)

	ta := &whirlpool.TickArray{
		StartTickIndex: d.DataStartTickIndex,
		Whirlpool:      d.KeyWhirlpool,
	}
	env.setData(d.KeyTickArray, WhirlpoolProgramID, ta.Encode())

	return Ok("initialize_tick_array"), nil
}

func replayInitializeFeeTier(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedInitializeFeeTier)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig); err != nil {
		return nil, err
	}
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{ix.KeyFeeTier}
	return runReplay(host, b, creationTime, d, writable)
}

func processInitializeFeeTier(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedInitializeFeeTier)

	ft := &whirlpool.FeeTier{
		WhirlpoolsConfig: d.KeyWhirlpoolsConfig,
		TickSpacing:      d.DataTickSpacing,
		DefaultFeeRate:   d.DataDefaultFeeRate,
	}
	env.setData(d.KeyFeeTier, WhirlpoolProgramID, ft.Encode())

	return Ok("initialize_fee_tier"), nil
}

func replayInitializeConfig(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedInitializeConfig)
	b := host.NewEnvBuilder()
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{ix.KeyWhirlpoolsConfig}
	return runReplay(host, b, creationTime, d, writable)
}

func processInitializeConfig(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedInitializeConfig)

	c := &whirlpool.WhirlpoolsConfig{
		FeeAuthority:                  d.DataFeeAuthority,
		CollectProtocolFeesAuthority:  d.DataCollectProtocolFeesAuthority,
		RewardEmissionsSuperAuthority: d.DataRewardEmissionsSuperAuthority,
		DefaultProtocolFeeRate:        d.DataDefaultProtocolFeeRate,
	}
	env.setData(d.KeyWhirlpoolsConfig, WhirlpoolProgramID, c.Encode())

	return Ok("initialize_config"), nil
}
