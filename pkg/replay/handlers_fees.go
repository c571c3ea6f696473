package replay

import (
	"fmt"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/gagliardetto/solana-go"
)

func init() {
	registerHandler(instructions.VariantCollectFees, replayCollectFees)
	registerProcessor(instructions.VariantCollectFees, processCollectFees)
	registerHandler(instructions.VariantCollectProtocolFees, replayCollectProtocolFees)
	registerProcessor(instructions.VariantCollectProtocolFees, processCollectProtocolFees)
	registerHandler(instructions.VariantCollectReward, replayCollectReward)
	registerProcessor(instructions.VariantCollectReward, processCollectReward)
}

func replayCollectFees(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedCollectFees)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool, ix.KeyPosition); err != nil {
		return nil, err
	}
	w, err := whirlpoolFromMap(am, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	if err := stageAll(b, am, ix.KeyTokenOwnerAccountA, ix.KeyTokenOwnerAccountB); err != nil {
		return nil, err
	}
	// Vaults hold the fees owed; seed from the observed transfer amounts.
	b.AddAccountWithTokens(ix.KeyTokenVaultA, w.TokenMintA, ix.KeyWhirlpool, ix.TransferAmount0)
	b.AddAccountWithTokens(ix.KeyTokenVaultB, w.TokenMintB, ix.KeyWhirlpool, ix.TransferAmount1)

	writable := []solana.PublicKey{
		ix.KeyPosition, ix.KeyTokenVaultA, ix.KeyTokenVaultB,
		ix.KeyTokenOwnerAccountA, ix.KeyTokenOwnerAccountB,
	}
	return runReplay(host, b, creationTime, d, writable)
}

func processCollectFees(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedCollectFees)

	p, err := getPosition(env, d.KeyPosition)
	if err != nil {
		return TransactionStatus{}, err
	}

	if status, err := transferChecked(env, d.KeyTokenVaultA, d.KeyTokenOwnerAccountA, d.TransferAmount0); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}
	if status, err := transferChecked(env, d.KeyTokenVaultB, d.KeyTokenOwnerAccountB, d.TransferAmount1); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}

	p.FeeOwedA, p.FeeOwedB = 0, 0
	putPosition(env, d.KeyPosition, p)

	return Ok("collect_fees"), nil
}

func replayCollectProtocolFees(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedCollectProtocolFees)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpoolsConfig, ix.KeyWhirlpool); err != nil {
		return nil, err
	}
	w, err := whirlpoolFromMap(am, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	b.AddAccountWithTokens(ix.KeyTokenVaultA, w.TokenMintA, ix.KeyWhirlpool, ix.TransferAmount0)
	b.AddAccountWithTokens(ix.KeyTokenVaultB, w.TokenMintB, ix.KeyWhirlpool, ix.TransferAmount1)
	b.AddAccountWithTokens(ix.KeyTokenDestinationA, w.TokenMintA, ix.KeyCollectProtocolFeesAuthority, 0)
	b.AddAccountWithTokens(ix.KeyTokenDestinationB, w.TokenMintB, ix.KeyCollectProtocolFeesAuthority, 0)

	writable := []solana.PublicKey{
		ix.KeyWhirlpool, ix.KeyTokenVaultA, ix.KeyTokenVaultB,
		ix.KeyTokenDestinationA, ix.KeyTokenDestinationB,
	}
	return runReplay(host, b, creationTime, d, writable)
}

func processCollectProtocolFees(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedCollectProtocolFees)

	w, err := getWhirlpool(env, d.KeyWhirlpool)
	if err != nil {
		return TransactionStatus{}, err
	}

	preVaultA, err := getTokenAccount(env, d.KeyTokenVaultA)
	if err != nil {
		return TransactionStatus{}, err
	}
	preVaultB, err := getTokenAccount(env, d.KeyTokenVaultB)
	if err != nil {
		return TransactionStatus{}, err
	}

	if status, err := transferChecked(env, d.KeyTokenVaultA, d.KeyTokenDestinationA, d.TransferAmount0); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}
	if status, err := transferChecked(env, d.KeyTokenVaultB, d.KeyTokenDestinationB, d.TransferAmount1); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}

	w.ProtocolFeeOwedA, w.ProtocolFeeOwedB = 0, 0
	putWhirlpool(env, d.KeyWhirlpool, w)

	// The vault-subtraction check is a non-fatal consistency signal
	// only; a mismatch marks the result but never fails the replay.
	postVaultA, err := getTokenAccount(env, d.KeyTokenVaultA)
	if err != nil {
		return TransactionStatus{}, err
	}
	postVaultB, err := getTokenAccount(env, d.KeyTokenVaultB)
	if err != nil {
		return TransactionStatus{}, err
	}
	vaultCheckOK := postVaultA.Amount == preVaultA.Amount-d.TransferAmount0 &&
		postVaultB.Amount == preVaultB.Amount-d.TransferAmount1

	status := Ok("collect_protocol_fees")
	status.VaultCheckOK = vaultCheckOK
	if !vaultCheckOK {
		status.Logs = append(status.Logs, "vault subtraction mismatch")
	}
	return status, nil
}

func replayCollectReward(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedCollectReward)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool, ix.KeyPosition); err != nil {
		return nil, err
	}
	w, err := whirlpoolFromMap(am, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	if int(ix.DataRewardIndex) >= len(w.RewardInfos) {
		return nil, fmt.Errorf("replay: reward index %d out of range", ix.DataRewardIndex)
	}
	rewardMint := w.RewardInfos[ix.DataRewardIndex].Mint
	if err := stageAll(b, am, ix.KeyRewardOwnerAccount); err != nil {
		return nil, err
	}
	b.AddAccountWithTokens(ix.KeyRewardVault, rewardMint, ix.KeyWhirlpool, ix.TransferAmount0)

	writable := []solana.PublicKey{ix.KeyPosition, ix.KeyRewardVault, ix.KeyRewardOwnerAccount}
	return runReplay(host, b, creationTime, d, writable)
}

func processCollectReward(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedCollectReward)

	p, err := getPosition(env, d.KeyPosition)
	if err != nil {
		return TransactionStatus{}, err
	}
	if int(d.DataRewardIndex) >= len(p.RewardInfos) {
		return TransactionStatus{}, fmt.Errorf("replay: reward index %d out of range", d.DataRewardIndex)
	}

	preVault, err := getTokenAccount(env, d.KeyRewardVault)
	if err != nil {
		return TransactionStatus{}, err
	}

	if status, err := transferChecked(env, d.KeyRewardVault, d.KeyRewardOwnerAccount, d.TransferAmount0); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}

	p.RewardInfos[d.DataRewardIndex].AmountOwed = 0
	putPosition(env, d.KeyPosition, p)

	// Same vault-subtraction consistency signal as collect_protocol_fees.
	postVault, err := getTokenAccount(env, d.KeyRewardVault)
	if err != nil {
		return TransactionStatus{}, err
	}
	status := Ok("collect_reward")
	status.VaultCheckOK = postVault.Amount == preVault.Amount-d.TransferAmount0
	if !status.VaultCheckOK {
		status.Logs = append(status.Logs, "vault subtraction mismatch")
	}
	return status, nil
}
