package replay

import (
	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/gagliardetto/solana-go"
)

func init() {
	registerHandler(instructions.VariantInitializeReward, replayInitializeReward)
	registerProcessor(instructions.VariantInitializeReward, processInitializeReward)
	registerHandler(instructions.VariantSetRewardEmissions, replaySetRewardEmissions)
	registerProcessor(instructions.VariantSetRewardEmissions, processSetRewardEmissions)
	registerHandler(instructions.VariantSetRewardEmissionsSuperAuthority, replaySetRewardEmissionsSuperAuthority)
	registerProcessor(instructions.VariantSetRewardEmissionsSuperAuthority, processSetRewardEmissionsSuperAuthority)
	registerHandler(instructions.VariantSetRewardAuthority, replaySetRewardAuthority)
	registerProcessor(instructions.VariantSetRewardAuthority, processSetRewardAuthority)
	registerHandler(instructions.VariantSetRewardAuthorityBySuperAuthority, replaySetRewardAuthorityBySuperAuthority)
	registerProcessor(instructions.VariantSetRewardAuthorityBySuperAuthority, processSetRewardAuthorityBySuperAuthority)
	registerHandler(instructions.VariantSetCollectProtocolFeesAuthority, replaySetCollectProtocolFeesAuthority)
	registerProcessor(instructions.VariantSetCollectProtocolFeesAuthority, processSetCollectProtocolFeesAuthority)
	registerHandler(instructions.VariantSetFeeAuthority, replaySetFeeAuthority)
	registerProcessor(instructions.VariantSetFeeAuthority, processSetFeeAuthority)
	registerHandler(instructions.VariantSetFeeRate, replaySetFeeRate)
	registerProcessor(instructions.VariantSetFeeRate, processSetFeeRate)
	registerHandler(instructions.VariantSetProtocolFeeRate, replaySetProtocolFeeRate)
	registerProcessor(instructions.VariantSetProtocolFeeRate, processSetProtocolFeeRate)
	registerHandler(instructions.VariantSetDefaultFeeRate, replaySetDefaultFeeRate)
	registerProcessor(instructions.VariantSetDefaultFeeRate, processSetDefaultFeeRate)
	registerHandler(instructions.VariantSetDefaultProtocolFeeRate, replaySetDefaultProtocolFeeRate)
	registerProcessor(instructions.VariantSetDefaultProtocolFeeRate, processSetDefaultProtocolFeeRate)
}

func replayInitializeReward(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedInitializeReward)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool); err != nil {
		return nil, err
	}
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{ix.KeyWhirlpool, ix.KeyRewardVault}
	return runReplay(host, b, creationTime, d, writable)
}

func processInitializeReward(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedInitializeReward)

	w, err := getWhirlpool(env, d.KeyWhirlpool)
	if err != nil {
		return TransactionStatus{}, err
	}
	if int(d.DataRewardIndex) >= len(w.RewardInfos) {
		return TransactionStatus{}, ErrAccountMissing
	}
	w.RewardInfos[d.DataRewardIndex].Mint = d.KeyRewardMint
	w.RewardInfos[d.DataRewardIndex].Vault = d.KeyRewardVault
	w.RewardInfos[d.DataRewardIndex].Authority = d.KeyRewardAuthority
	putWhirlpool(env, d.KeyWhirlpool, w)
	createTokenAccount(env, d.KeyRewardVault, d.KeyRewardMint, d.KeyWhirlpool, 0)

	return Ok("initialize_reward"), nil
}

func replaySetRewardEmissions(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetRewardEmissions)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool, ix.KeyRewardVault); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpool, ix.KeyRewardVault}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetRewardEmissions(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetRewardEmissions)

	w, err := getWhirlpool(env, d.KeyWhirlpool)
	if err != nil {
		return TransactionStatus{}, err
	}
	if int(d.DataRewardIndex) >= len(w.RewardInfos) {
		return TransactionStatus{}, ErrAccountMissing
	}
	w.RewardInfos[d.DataRewardIndex].EmissionsPerSecondX64 = d.DataEmissionsPerSecondX64.Uint128()
	putWhirlpool(env, d.KeyWhirlpool, w)

	return Ok("set_reward_emissions"), nil
}

func replaySetRewardEmissionsSuperAuthority(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetRewardEmissionsSuperAuthority)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpoolsConfig}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetRewardEmissionsSuperAuthority(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetRewardEmissionsSuperAuthority)

	c, err := getConfig(env, d.KeyWhirlpoolsConfig)
	if err != nil {
		return TransactionStatus{}, err
	}
	c.RewardEmissionsSuperAuthority = d.KeyNewRewardEmissionsSuperAuthority
	putConfig(env, d.KeyWhirlpoolsConfig, c)

	return Ok("set_reward_emissions_super_authority"), nil
}

func replaySetRewardAuthority(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetRewardAuthority)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpool}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetRewardAuthority(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetRewardAuthority)

	w, err := getWhirlpool(env, d.KeyWhirlpool)
	if err != nil {
		return TransactionStatus{}, err
	}
	if int(d.DataRewardIndex) >= len(w.RewardInfos) {
		return TransactionStatus{}, ErrAccountMissing
	}
	w.RewardInfos[d.DataRewardIndex].Authority = d.KeyNewRewardAuthority
	putWhirlpool(env, d.KeyWhirlpool, w)

	return Ok("set_reward_authority"), nil
}

func replaySetRewardAuthorityBySuperAuthority(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetRewardAuthorityBySuperAuthority)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig, ix.KeyWhirlpool); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpool}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetRewardAuthorityBySuperAuthority(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetRewardAuthorityBySuperAuthority)

	w, err := getWhirlpool(env, d.KeyWhirlpool)
	if err != nil {
		return TransactionStatus{}, err
	}
	if int(d.DataRewardIndex) >= len(w.RewardInfos) {
		return TransactionStatus{}, ErrAccountMissing
	}
	w.RewardInfos[d.DataRewardIndex].Authority = d.KeyNewRewardAuthority
	putWhirlpool(env, d.KeyWhirlpool, w)

	return Ok("set_reward_authority_by_super_authority"), nil
}

func replaySetCollectProtocolFeesAuthority(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetCollectProtocolFeesAuthority)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpoolsConfig}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetCollectProtocolFeesAuthority(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetCollectProtocolFeesAuthority)

	c, err := getConfig(env, d.KeyWhirlpoolsConfig)
	if err != nil {
		return TransactionStatus{}, err
	}
	c.CollectProtocolFeesAuthority = d.KeyNewCollectProtocolFeesAuthority
	putConfig(env, d.KeyWhirlpoolsConfig, c)

	return Ok("set_collect_protocol_fees_authority"), nil
}

func replaySetFeeAuthority(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetFeeAuthority)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpoolsConfig}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetFeeAuthority(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetFeeAuthority)

	c, err := getConfig(env, d.KeyWhirlpoolsConfig)
	if err != nil {
		return TransactionStatus{}, err
	}
	c.FeeAuthority = d.KeyNewFeeAuthority
	putConfig(env, d.KeyWhirlpoolsConfig, c)

	return Ok("set_fee_authority"), nil
}

func replaySetFeeRate(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetFeeRate)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig, ix.KeyWhirlpool); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpool}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetFeeRate(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetFeeRate)

	w, err := getWhirlpool(env, d.KeyWhirlpool)
	if err != nil {
		return TransactionStatus{}, err
	}
	w.FeeRate = d.DataFeeRate
	putWhirlpool(env, d.KeyWhirlpool, w)

	return Ok("set_fee_rate"), nil
}

func replaySetProtocolFeeRate(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetProtocolFeeRate)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig, ix.KeyWhirlpool); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpool}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetProtocolFeeRate(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetProtocolFeeRate)

	w, err := getWhirlpool(env, d.KeyWhirlpool)
	if err != nil {
		return TransactionStatus{}, err
	}
	w.ProtocolFeeRate = d.DataProtocolFeeRate
	putWhirlpool(env, d.KeyWhirlpool, w)

	return Ok("set_protocol_fee_rate"), nil
}

func replaySetDefaultFeeRate(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetDefaultFeeRate)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig, ix.KeyFeeTier); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyFeeTier}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetDefaultFeeRate(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetDefaultFeeRate)

	ft, err := getFeeTier(env, d.KeyFeeTier)
	if err != nil {
		return TransactionStatus{}, err
	}
	ft.DefaultFeeRate = d.DataDefaultFeeRate
	putFeeTier(env, d.KeyFeeTier, ft)

	return Ok("set_default_fee_rate"), nil
}

func replaySetDefaultProtocolFeeRate(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSetDefaultProtocolFeeRate)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyWhirlpoolsConfig}
	return runReplay(host, b, creationTime, d, writable)
}

func processSetDefaultProtocolFeeRate(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSetDefaultProtocolFeeRate)

	c, err := getConfig(env, d.KeyWhirlpoolsConfig)
	if err != nil {
		return TransactionStatus{}, err
	}
	c.DefaultProtocolFeeRate = d.DataDefaultProtocolFeeRate
	putConfig(env, d.KeyWhirlpoolsConfig, c)

	return Ok("set_default_protocol_fee_rate"), nil
}
