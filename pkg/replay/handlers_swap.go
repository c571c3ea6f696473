package replay

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/whirlpool"
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

func init() {
	registerHandler(instructions.VariantSwap, replaySwap)
	registerProcessor(instructions.VariantSwap, processSwap)
	registerHandler(instructions.VariantTwoHopSwap, replayTwoHopSwap)
	registerProcessor(instructions.VariantTwoHopSwap, processTwoHopSwap)
}

func replaySwap(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedSwap)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am,
		ix.KeyWhirlpool, ix.KeyTickArray0, ix.KeyTickArray1, ix.KeyTickArray2,
		ix.KeyOracle, ix.KeyVaultA, ix.KeyVaultB,
		ix.KeyTokenOwnerAccountA, ix.KeyTokenOwnerAccountB,
	); err != nil {
		return nil, err
	}

	// Re-seed the source owner account's balance from the observed
	// transfer amount so the checked-subtract leg of the swap succeeds:
	// the account map's balance reflects the pool's state long after this
	// historical trade, not the balance at trade time.
	w, err := whirlpoolFromMap(am, ix.KeyWhirlpool)
	if err != nil {
		return nil, err
	}
	if bool(ix.DataAToB) {
		b.AddAccountWithTokens(ix.KeyTokenOwnerAccountA, w.TokenMintA, solana.PublicKey{}, ix.TransferAmount0)
	} else {
		b.AddAccountWithTokens(ix.KeyTokenOwnerAccountB, w.TokenMintB, solana.PublicKey{}, ix.TransferAmount1)
	}

	writable := []solana.PublicKey{
		ix.KeyWhirlpool, ix.KeyTickArray0, ix.KeyTickArray1, ix.KeyTickArray2,
		ix.KeyVaultA, ix.KeyVaultB, ix.KeyTokenOwnerAccountA, ix.KeyTokenOwnerAccountB,
	}
	return runReplay(host, b, creationTime, d, writable)
}

// whirlpoolFromMap decodes a Whirlpool directly from the account map (not
// the env), used by handlers that need a pool field to decide how to stage
// before Build() even runs.
func whirlpoolFromMap(am *AccountMap, key solana.PublicKey) (*whirlpool.Whirlpool, error) {
	acc, ok := am.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountMissing, key)
	}
	return whirlpool.DecodeWhirlpool(acc.Data)
}

func processSwap(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedSwap)
	w, err := getWhirlpool(env, d.KeyWhirlpool)
	if err != nil {
		return TransactionStatus{}, err
	}

	var srcA, dstA, srcB, dstB solana.PublicKey
	if bool(d.DataAToB) {
		srcA, dstA = d.KeyTokenOwnerAccountA, d.KeyVaultA
		srcB, dstB = d.KeyVaultB, d.KeyTokenOwnerAccountB
	} else {
		srcA, dstA = d.KeyVaultA, d.KeyTokenOwnerAccountA
		srcB, dstB = d.KeyTokenOwnerAccountB, d.KeyVaultB
	}

	status, err := transferChecked(env, srcA, dstA, d.TransferAmount0)
	if err != nil {
		return TransactionStatus{}, err
	}
	if status.ErrCode != "" {
		return status, nil
	}
	status, err = transferChecked(env, srcB, dstB, d.TransferAmount1)
	if err != nil {
		return TransactionStatus{}, err
	}
	if status.ErrCode != "" {
		return status, nil
	}

	moveSqrtPrice(w, d.DataAmount, bool(d.DataAToB))
	putWhirlpool(env, d.KeyWhirlpool, w)

	return Ok(fmt.Sprintf("swap a_to_b=%v amount=%d", bool(d.DataAToB), d.DataAmount)), nil
}

// moveSqrtPrice nudges w.SqrtPrice toward the direction the trade pushes
// price, proportionally to amount relative to current liquidity. Single
// tick only: the replayer mirrors observed transfers rather than re-running
// the full tick-array-crossing curve, so a directionally correct,
// liquidity-weighted move is all the executor needs.
func moveSqrtPrice(w *whirlpool.Whirlpool, amount uint64, aToB bool) {
	cur := math.NewIntFromBigInt(w.SqrtPrice.Big())
	liq := math.NewIntFromBigInt(w.Liquidity.Big())
	if liq.IsZero() {
		liq = math.NewInt(1)
	}
	amt := math.NewIntFromUint64(amount)
	delta := cur.Mul(amt).Quo(liq.Add(amt).Add(math.NewInt(1)))
	if delta.GTE(cur) {
		delta = cur.QuoRaw(2)
	}
	if aToB {
		w.SqrtPrice = uint128.FromBig(cur.Sub(delta).BigInt())
	} else {
		w.SqrtPrice = uint128.FromBig(cur.Add(delta).BigInt())
	}
}

func replayTwoHopSwap(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedTwoHopSwap)
	b := host.NewEnvBuilder()

	required := []solana.PublicKey{
		ix.KeyWhirlpoolOne, ix.KeyWhirlpoolTwo,
		ix.KeyTickArrayOne0, ix.KeyTickArrayOne1, ix.KeyTickArrayOne2,
		ix.KeyTickArrayTwo0, ix.KeyTickArrayTwo1, ix.KeyTickArrayTwo2,
		ix.KeyOracleOne, ix.KeyOracleTwo,
		ix.KeyVaultOneA, ix.KeyVaultOneB, ix.KeyVaultTwoA, ix.KeyVaultTwoB,
		ix.KeyTokenOwnerAccountOneA, ix.KeyTokenOwnerAccountOneB,
		ix.KeyTokenOwnerAccountTwoA, ix.KeyTokenOwnerAccountTwoB,
	}
	if err := stageAll(b, am, required...); err != nil {
		return nil, err
	}
	wOne, err := whirlpoolFromMap(am, ix.KeyWhirlpoolOne)
	if err != nil {
		return nil, err
	}
	if bool(ix.DataAToBOne) {
		b.AddAccountWithTokens(ix.KeyTokenOwnerAccountOneA, wOne.TokenMintA, solana.PublicKey{}, ix.TransferAmount0)
	} else {
		b.AddAccountWithTokens(ix.KeyTokenOwnerAccountOneB, wOne.TokenMintB, solana.PublicKey{}, ix.TransferAmount0)
	}

	writable := append([]solana.PublicKey{}, required...)
	return runReplay(host, b, creationTime, d, writable)
}

func processTwoHopSwap(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedTwoHopSwap)

	wOne, err := getWhirlpool(env, d.KeyWhirlpoolOne)
	if err != nil {
		return TransactionStatus{}, err
	}
	wTwo, err := getWhirlpool(env, d.KeyWhirlpoolTwo)
	if err != nil {
		return TransactionStatus{}, err
	}

	var srcOneA, dstOneA, srcOneB, dstOneB solana.PublicKey
	if bool(d.DataAToBOne) {
		srcOneA, dstOneA = d.KeyTokenOwnerAccountOneA, d.KeyVaultOneA
		srcOneB, dstOneB = d.KeyVaultOneB, d.KeyTokenOwnerAccountOneB
	} else {
		srcOneA, dstOneA = d.KeyVaultOneA, d.KeyTokenOwnerAccountOneA
		srcOneB, dstOneB = d.KeyTokenOwnerAccountOneB, d.KeyVaultOneB
	}
	if status, err := transferChecked(env, srcOneA, dstOneA, d.TransferAmount0); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}
	if status, err := transferChecked(env, srcOneB, dstOneB, d.TransferAmount1); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}

	var srcTwoA, dstTwoA, srcTwoB, dstTwoB solana.PublicKey
	if bool(d.DataAToBTwo) {
		srcTwoA, dstTwoA = d.KeyTokenOwnerAccountTwoA, d.KeyVaultTwoA
		srcTwoB, dstTwoB = d.KeyVaultTwoB, d.KeyTokenOwnerAccountTwoB
	} else {
		srcTwoA, dstTwoA = d.KeyVaultTwoA, d.KeyTokenOwnerAccountTwoA
		srcTwoB, dstTwoB = d.KeyTokenOwnerAccountTwoB, d.KeyVaultTwoB
	}
	if status, err := transferChecked(env, srcTwoA, dstTwoA, d.TransferAmount2); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}
	if status, err := transferChecked(env, srcTwoB, dstTwoB, d.TransferAmount3); err != nil {
		return TransactionStatus{}, err
	} else if status.ErrCode != "" {
		return status, nil
	}

	moveSqrtPrice(wOne, d.DataAmount, bool(d.DataAToBOne))
	moveSqrtPrice(wTwo, d.DataAmount, bool(d.DataAToBTwo))
	putWhirlpool(env, d.KeyWhirlpoolOne, wOne)
	putWhirlpool(env, d.KeyWhirlpoolTwo, wTwo)

	return Ok("two_hop_swap"), nil
}
