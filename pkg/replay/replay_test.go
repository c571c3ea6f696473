package replay

import (
	"errors"
	"testing"
	"time"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/whirlpool"
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

func pkey(seed byte) solana.PublicKey {
	var b [32]byte
	for i := range b {
		b[i] = seed
	}
	return solana.PublicKeyFromBytes(b[:])
}

func newTestHost() *Host {
	host := NewHost(nil, nil, nil)
	RegisterDefaultProcessors(host)
	return host
}

func put(am *AccountMap, key, owner solana.PublicKey, data []byte) {
	am.Upsert(key, Account{Owner: owner, Lamports: 1_000_000, Data: data})
}

// swapWorld stages a whirlpool with its tick arrays, oracle, vaults and
// two owner token accounts, mirroring the single-swap scenario.
func swapWorld() (*AccountMap, instructions.DecodedSwap) {
	var (
		user   = pkey(0x01)
		pool   = pkey(0x10)
		t0     = pkey(0x11)
		t1     = pkey(0x12)
		t2     = pkey(0x13)
		oracle = pkey(0x14)
		vaultA = pkey(0x15)
		vaultB = pkey(0x16)
		ownerA = pkey(0x17)
		ownerB = pkey(0x18)
		mintA  = pkey(0x19)
		mintB  = pkey(0x1a)
	)

	am := NewAccountMap()
	w := &whirlpool.Whirlpool{
		WhirlpoolsConfig: pkey(0x1b),
		TickSpacing:      64,
		FeeRate:          3000,
		Liquidity:        uint128.From64(1_000_000_000),
		SqrtPrice:        uint128.From64(1).Lsh(64),
		TokenMintA:       mintA,
		TokenVaultA:      vaultA,
		TokenMintB:       mintB,
		TokenVaultB:      vaultB,
	}
	put(am, pool, WhirlpoolProgramID, w.Encode())
	for i, k := range []solana.PublicKey{t0, t1, t2} {
		ta := &whirlpool.TickArray{StartTickIndex: int32(i-1) * 88 * 64, Whirlpool: pool}
		put(am, k, WhirlpoolProgramID, ta.Encode())
	}
	put(am, oracle, WhirlpoolProgramID, []byte("oracle state"))
	put(am, vaultA, TokenProgramID, whirlpool.NewTokenAccount(mintA, pool, 50_000_000).Encode())
	put(am, vaultB, TokenProgramID, whirlpool.NewTokenAccount(mintB, pool, 40_000_000).Encode())
	put(am, ownerA, TokenProgramID, whirlpool.NewTokenAccount(mintA, user, 5_000_000).Encode())
	put(am, ownerB, TokenProgramID, whirlpool.NewTokenAccount(mintB, user, 0).Encode())

	ix := instructions.DecodedSwap{
		DataAmount:                 1_000_000,
		DataOtherAmountThreshold:   0,
		DataAmountSpecifiedIsInput: true,
		DataAToB:                   true,
		KeyTokenProgram:            TokenProgramID,
		KeyTokenAuthority:          user,
		KeyWhirlpool:               pool,
		KeyTokenOwnerAccountA:      ownerA,
		KeyVaultA:                  vaultA,
		KeyTokenOwnerAccountB:      ownerB,
		KeyVaultB:                  vaultB,
		KeyTickArray0:              t0,
		KeyTickArray1:              t1,
		KeyTickArray2:              t2,
		KeyOracle:                  oracle,
		TransferAmount0:            1_000_000,
		TransferAmount1:            997_500,
	}
	return am, ix
}

func mustTokenAmount(t *testing.T, am *AccountMap, key solana.PublicKey) uint64 {
	t.Helper()
	acc, ok := am.Get(key)
	if !ok {
		t.Fatalf("account %s absent", key)
	}
	ta, err := whirlpool.DecodeTokenAccount(acc.Data)
	if err != nil {
		t.Fatalf("decoding token account %s: %v", key, err)
	}
	return ta.Amount
}

func TestSwapReplay(t *testing.T) {
	host := newTestHost()
	am, ix := swapWorld()

	preVaultA := mustTokenAmount(t, am, ix.KeyVaultA)
	preVaultB := mustTokenAmount(t, am, ix.KeyVaultB)
	prePool, _ := am.Get(ix.KeyWhirlpool)
	preW, err := whirlpool.DecodeWhirlpool(prePool.Data)
	if err != nil {
		t.Fatal(err)
	}

	result, err := Dispatch(host, am, 1_700_000_000, ix)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !result.TransactionStatus.Success {
		t.Fatalf("swap failed: %+v", result.TransactionStatus)
	}

	postPool, ok := result.Snapshot.Post.Get(ix.KeyWhirlpool)
	if !ok {
		t.Fatal("whirlpool absent from post-snapshot")
	}
	postW, err := whirlpool.DecodeWhirlpool(postPool.Data)
	if err != nil {
		t.Fatal(err)
	}
	if postW.SqrtPrice.Cmp(preW.SqrtPrice) >= 0 {
		t.Errorf("a-to-b swap did not lower sqrt price: pre %s post %s", preW.SqrtPrice, postW.SqrtPrice)
	}

	if got := mustTokenAmount(t, result.Snapshot.Post, ix.KeyVaultA); got != preVaultA+1_000_000 {
		t.Errorf("vault A: want %d, got %d", preVaultA+1_000_000, got)
	}
	if got := mustTokenAmount(t, result.Snapshot.Post, ix.KeyVaultB); got != preVaultB-997_500 {
		t.Errorf("vault B: want %d, got %d", preVaultB-997_500, got)
	}

	// Dispatch never mutates the account map itself; only the slot
	// driver's fold does.
	if got := mustTokenAmount(t, am, ix.KeyVaultA); got != preVaultA {
		t.Errorf("dispatch mutated the account map: vault A %d", got)
	}
}

func TestPostSnapshotSubsetOfWritableSet(t *testing.T) {
	host := newTestHost()
	am, ix := swapWorld()

	result, err := Dispatch(host, am, 1_700_000_000, ix)
	if err != nil {
		t.Fatal(err)
	}
	declared := make(map[solana.PublicKey]bool)
	for _, k := range result.WritableKeys {
		declared[k] = true
	}
	for _, k := range result.Snapshot.Post.Keys() {
		if !declared[k] {
			t.Errorf("post-snapshot key %s outside declared writable set", k)
		}
	}
	for _, k := range result.Snapshot.Pre.Keys() {
		if !declared[k] {
			t.Errorf("pre-snapshot key %s outside declared writable set", k)
		}
	}
}

func TestInitializePoolCreation(t *testing.T) {
	host := newTestHost()

	var (
		config  = pkey(0x20)
		feeTier = pkey(0x21)
		pool    = pkey(0x22)
		mintA   = pkey(0x23)
		mintB   = pkey(0x24)
		vaultA  = pkey(0x25)
		vaultB  = pkey(0x26)
		funder  = pkey(0x27)
	)

	am := NewAccountMap()
	put(am, config, WhirlpoolProgramID, (&whirlpool.WhirlpoolsConfig{DefaultProtocolFeeRate: 300}).Encode())
	put(am, feeTier, WhirlpoolProgramID, (&whirlpool.FeeTier{WhirlpoolsConfig: config, TickSpacing: 64, DefaultFeeRate: 3000}).Encode())

	ix := instructions.DecodedInitializePool{
		DataTickSpacing:      64,
		DataInitialSqrtPrice: instructions.U128{Hi: 1},
		KeyWhirlpoolsConfig:  config,
		KeyTokenMintA:        mintA,
		KeyTokenMintB:        mintB,
		KeyFunder:            funder,
		KeyWhirlpool:         pool,
		KeyTokenVaultA:       vaultA,
		KeyTokenVaultB:       vaultB,
		KeyFeeTier:           feeTier,
		KeyTokenProgram:      TokenProgramID,
	}

	result, err := Dispatch(host, am, 1_700_000_000, ix)
	if err != nil {
		t.Fatal(err)
	}
	if !result.TransactionStatus.Success {
		t.Fatalf("initialize_pool failed: %+v", result.TransactionStatus)
	}
	if _, ok := result.Snapshot.Pre.Get(pool); ok {
		t.Error("whirlpool present in pre-snapshot of a creation")
	}
	acc, ok := result.Snapshot.Post.Get(pool)
	if !ok {
		t.Fatal("whirlpool absent from post-snapshot")
	}
	w, err := whirlpool.DecodeWhirlpool(acc.Data)
	if err != nil {
		t.Fatal(err)
	}
	if w.TickSpacing != 64 {
		t.Errorf("tick spacing: want 64, got %d", w.TickSpacing)
	}
	if w.SqrtPrice != uint128.From64(1).Lsh(64) {
		t.Errorf("initial sqrt price: got %s", w.SqrtPrice)
	}

	am.Fold(result.WritableKeys, result.Snapshot.Post)
	if _, ok := am.Get(pool); !ok {
		t.Error("fold did not add the created whirlpool to the account map")
	}
}

func TestClosePositionRemoval(t *testing.T) {
	host := newTestHost()

	var (
		position     = pkey(0x30)
		positionMint = pkey(0x31)
		tokenAccount = pkey(0x32)
		user         = pkey(0x33)
	)

	am := NewAccountMap()
	p := &whirlpool.Position{Whirlpool: pkey(0x34), PositionMint: positionMint}
	put(am, position, WhirlpoolProgramID, p.Encode())
	put(am, tokenAccount, TokenProgramID, whirlpool.NewTokenAccount(positionMint, user, 1).Encode())

	ix := instructions.DecodedClosePosition{
		KeyPositionAuthority:    user,
		KeyReceiver:             user,
		KeyPosition:             position,
		KeyPositionMint:         positionMint,
		KeyPositionTokenAccount: tokenAccount,
		KeyTokenProgram:         TokenProgramID,
	}

	result, err := Dispatch(host, am, 1_700_000_000, ix)
	if err != nil {
		t.Fatal(err)
	}
	if !result.TransactionStatus.Success {
		t.Fatalf("close_position failed: %+v", result.TransactionStatus)
	}
	if _, ok := result.Snapshot.Pre.Get(position); !ok {
		t.Error("position absent from pre-snapshot")
	}
	if _, ok := result.Snapshot.Post.Get(position); ok {
		t.Error("position still present in post-snapshot after close")
	}

	am.Fold(result.WritableKeys, result.Snapshot.Post)
	if _, ok := am.Get(position); ok {
		t.Error("fold did not remove the closed position from the account map")
	}
}

func TestIncreaseLiquiditySlippageFailure(t *testing.T) {
	host := newTestHost()

	var (
		user   = pkey(0x40)
		pool   = pkey(0x41)
		pos    = pkey(0x42)
		taL    = pkey(0x43)
		taU    = pkey(0x44)
		vaultA = pkey(0x45)
		vaultB = pkey(0x46)
		ownerA = pkey(0x47)
		ownerB = pkey(0x48)
		mintA  = pkey(0x49)
		mintB  = pkey(0x4a)
	)

	am := NewAccountMap()
	w := &whirlpool.Whirlpool{
		Liquidity: uint128.From64(1_000_000), SqrtPrice: uint128.From64(1).Lsh(64),
		TokenMintA: mintA, TokenVaultA: vaultA, TokenMintB: mintB, TokenVaultB: vaultB,
	}
	put(am, pool, WhirlpoolProgramID, w.Encode())
	put(am, pos, WhirlpoolProgramID, (&whirlpool.Position{Whirlpool: pool}).Encode())
	for _, k := range []solana.PublicKey{taL, taU} {
		put(am, k, WhirlpoolProgramID, (&whirlpool.TickArray{Whirlpool: pool}).Encode())
	}
	put(am, vaultA, TokenProgramID, whirlpool.NewTokenAccount(mintA, pool, 0).Encode())
	put(am, vaultB, TokenProgramID, whirlpool.NewTokenAccount(mintB, pool, 0).Encode())
	put(am, ownerA, TokenProgramID, whirlpool.NewTokenAccount(mintA, user, 0).Encode())
	put(am, ownerB, TokenProgramID, whirlpool.NewTokenAccount(mintB, user, 0).Encode())

	ix := instructions.DecodedIncreaseLiquidity{
		DataLiquidityAmount:     instructions.U128{Lo: 500_000},
		DataTokenAmountMaxA:     100, // below the observed transfer: slippage violation
		DataTokenAmountMaxB:     1_000_000,
		KeyWhirlpool:            pool,
		KeyTokenProgram:         TokenProgramID,
		KeyPositionAuthority:    user,
		KeyPosition:             pos,
		KeyPositionTokenAccount: pkey(0x4b),
		KeyTokenOwnerAccountA:   ownerA,
		KeyTokenOwnerAccountB:   ownerB,
		KeyTokenVaultA:          vaultA,
		KeyTokenVaultB:          vaultB,
		KeyTickArrayLower:       taL,
		KeyTickArrayUpper:       taU,
		TransferAmount0:         5_000,
		TransferAmount1:         5_000,
	}

	result, err := Dispatch(host, am, 1_700_000_000, ix)
	if err != nil {
		t.Fatal(err)
	}
	if result.TransactionStatus.Success {
		t.Fatal("expected slippage failure, got success")
	}
	if result.TransactionStatus.ErrCode == "" {
		t.Error("failed status carries no error code")
	}
	if !result.Snapshot.Post.Equal(result.Snapshot.Pre) {
		t.Error("failed instruction mutated its writable set")
	}
}

func TestUnsupportedVariant(t *testing.T) {
	// A host with no processors registered: every variant decodes and
	// stages fine but has nothing to execute against.
	host := NewHost(nil, nil, nil)
	am, ix := swapWorld()

	_, err := Dispatch(host, am, 1_700_000_000, ix)
	if !errors.Is(err, ErrUnsupportedVariant) {
		t.Fatalf("want ErrUnsupportedVariant, got %v", err)
	}
}

func TestDispatchMissingAccount(t *testing.T) {
	host := newTestHost()
	am, ix := swapWorld()
	am.Remove(ix.KeyWhirlpool)

	_, err := Dispatch(host, am, 1_700_000_000, ix)
	if !errors.Is(err, ErrAccountMissing) {
		t.Fatalf("want ErrAccountMissing, got %v", err)
	}
}

func TestDispatchTimeout(t *testing.T) {
	host := newTestHost()
	host.Register(instructions.VariantSwap, func(env *Env, ix any) (TransactionStatus, error) {
		time.Sleep(time.Second)
		return Ok("too slow"), nil
	})
	am, ix := swapWorld()

	_, err := dispatchWithBudget(host, am, 1_700_000_000, ix, 20*time.Millisecond)
	if !errors.Is(err, ErrExecutorTimeout) {
		t.Fatalf("want ErrExecutorTimeout, got %v", err)
	}
}

func TestCollectProtocolFeesVaultCheck(t *testing.T) {
	host := newTestHost()

	var (
		config    = pkey(0x50)
		pool      = pkey(0x51)
		vaultA    = pkey(0x52)
		vaultB    = pkey(0x53)
		destA     = pkey(0x54)
		destB     = pkey(0x55)
		mintA     = pkey(0x56)
		mintB     = pkey(0x57)
		authority = pkey(0x58)
	)

	am := NewAccountMap()
	put(am, config, WhirlpoolProgramID, (&whirlpool.WhirlpoolsConfig{CollectProtocolFeesAuthority: authority}).Encode())
	w := &whirlpool.Whirlpool{
		TokenMintA: mintA, TokenVaultA: vaultA, TokenMintB: mintB, TokenVaultB: vaultB,
		ProtocolFeeOwedA: 700, ProtocolFeeOwedB: 300,
	}
	put(am, pool, WhirlpoolProgramID, w.Encode())

	ix := instructions.DecodedCollectProtocolFees{
		KeyWhirlpoolsConfig:             config,
		KeyWhirlpool:                    pool,
		KeyCollectProtocolFeesAuthority: authority,
		KeyTokenVaultA:                  vaultA,
		KeyTokenVaultB:                  vaultB,
		KeyTokenDestinationA:            destA,
		KeyTokenDestinationB:            destB,
		KeyTokenProgram:                 TokenProgramID,
		TransferAmount0:                 700,
		TransferAmount1:                 300,
	}

	result, err := Dispatch(host, am, 1_700_000_000, ix)
	if err != nil {
		t.Fatal(err)
	}
	if !result.TransactionStatus.Success {
		t.Fatalf("collect_protocol_fees failed: %+v", result.TransactionStatus)
	}
	if !result.VaultCheckOK {
		t.Error("vault subtraction check should hold when seeds match transfers")
	}
	if got := mustTokenAmount(t, result.Snapshot.Post, destA); got != 700 {
		t.Errorf("destination A: want 700, got %d", got)
	}
	if got := mustTokenAmount(t, result.Snapshot.Post, vaultA); got != 0 {
		t.Errorf("vault A after sweep: want 0, got %d", got)
	}
	acc, _ := result.Snapshot.Post.Get(pool)
	postW, err := whirlpool.DecodeWhirlpool(acc.Data)
	if err != nil {
		t.Fatal(err)
	}
	if postW.ProtocolFeeOwedA != 0 || postW.ProtocolFeeOwedB != 0 {
		t.Errorf("protocol fees owed not cleared: %d/%d", postW.ProtocolFeeOwedA, postW.ProtocolFeeOwedB)
	}
}
