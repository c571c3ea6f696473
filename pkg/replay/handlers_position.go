package replay

import (
	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/whirlpool"
	"github.com/gagliardetto/solana-go"
)

func init() {
	registerHandler(instructions.VariantOpenPosition, replayOpenPosition)
	registerProcessor(instructions.VariantOpenPosition, processOpenPosition)
	registerHandler(instructions.VariantOpenPositionWithMetadata, replayOpenPositionWithMetadata)
	registerProcessor(instructions.VariantOpenPositionWithMetadata, processOpenPositionWithMetadata)
	registerHandler(instructions.VariantClosePosition, replayClosePosition)
	registerProcessor(instructions.VariantClosePosition, processClosePosition)
	registerHandler(instructions.VariantOpenBundledPosition, replayOpenBundledPosition)
	registerProcessor(instructions.VariantOpenBundledPosition, processOpenBundledPosition)
	registerHandler(instructions.VariantCloseBundledPosition, replayCloseBundledPosition)
	registerProcessor(instructions.VariantCloseBundledPosition, processCloseBundledPosition)
	registerHandler(instructions.VariantInitializePositionBundle, replayInitializePositionBundle)
	registerProcessor(instructions.VariantInitializePositionBundle, processInitializePositionBundle)
	registerHandler(instructions.VariantInitializePositionBundleWithMetadata, replayInitializePositionBundleWithMetadata)
	registerProcessor(instructions.VariantInitializePositionBundleWithMetadata, processInitializePositionBundleWithMetadata)
	registerHandler(instructions.VariantDeletePositionBundle, replayDeletePositionBundle)
	registerProcessor(instructions.VariantDeletePositionBundle, processDeletePositionBundle)
}

func replayOpenPosition(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedOpenPosition)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool); err != nil {
		return nil, err
	}
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{ix.KeyPosition, ix.KeyPositionTokenAccount, ix.KeyPositionMint, ix.KeyWhirlpool}
	return runReplay(host, b, creationTime, d, writable)
}

func processOpenPosition(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedOpenPosition)

	createMint(env, d.KeyPositionMint, WhirlpoolProgramID, 1, 0)
	createTokenAccount(env, d.KeyPositionTokenAccount, d.KeyPositionMint, d.KeyOwner, 1)

	p := &whirlpool.Position{
		Whirlpool:      d.KeyWhirlpool,
		PositionMint:   d.KeyPositionMint,
		TickLowerIndex: d.DataTickLowerIndex,
		TickUpperIndex: d.DataTickUpperIndex,
	}
	env.setData(d.KeyPosition, WhirlpoolProgramID, p.Encode())

	return Ok("open_position"), nil
}

func replayOpenPositionWithMetadata(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedOpenPositionWithMetadata)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool); err != nil {
		return nil, err
	}
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{
		ix.KeyPosition, ix.KeyPositionTokenAccount, ix.KeyPositionMint,
		ix.KeyPositionMetadataAccount, ix.KeyWhirlpool,
	}
	return runReplay(host, b, creationTime, d, writable)
}

func processOpenPositionWithMetadata(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedOpenPositionWithMetadata)

	createMint(env, d.KeyPositionMint, WhirlpoolProgramID, 1, 0)
	createTokenAccount(env, d.KeyPositionTokenAccount, d.KeyPositionMint, d.KeyOwner, 1)
	env.setData(d.KeyPositionMetadataAccount, MetadataProgramID, []byte("whirlpool position metadata"))

	p := &whirlpool.Position{
		Whirlpool:      d.KeyWhirlpool,
		PositionMint:   d.KeyPositionMint,
		TickLowerIndex: d.DataTickLowerIndex,
		TickUpperIndex: d.DataTickUpperIndex,
	}
	env.setData(d.KeyPosition, WhirlpoolProgramID, p.Encode())

	return Ok("open_position_with_metadata"), nil
}

func replayClosePosition(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedClosePosition)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyPosition, ix.KeyPositionTokenAccount); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyPosition, ix.KeyPositionTokenAccount}
	return runReplay(host, b, creationTime, d, writable)
}

func processClosePosition(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedClosePosition)

	p, err := getPosition(env, d.KeyPosition)
	if err != nil {
		return TransactionStatus{}, err
	}
	if !p.Liquidity.IsZero() {
		return Failed("0x1775", "cannot close a position with non-zero liquidity"), nil
	}

	env.closeAccount(d.KeyPosition)
	env.closeAccount(d.KeyPositionTokenAccount)

	return Ok("close_position"), nil
}

func replayOpenBundledPosition(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedOpenBundledPosition)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyWhirlpool, ix.KeyPositionBundle); err != nil {
		return nil, err
	}
	b.AddFunderAccount(ix.KeyFunder)

	// The position bundle is staged but stays outside the declared
	// writable set, and its occupancy bitmap is not updated; only the
	// bundled position, its token account, and the whirlpool may change.
	writable := []solana.PublicKey{ix.KeyBundledPosition, ix.KeyPositionBundleTokenAccount, ix.KeyWhirlpool}
	return runReplay(host, b, creationTime, d, writable)
}

func processOpenBundledPosition(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedOpenBundledPosition)

	p := &whirlpool.Position{
		Whirlpool:      d.KeyWhirlpool,
		PositionMint:   d.KeyPositionBundle,
		TickLowerIndex: d.DataTickLowerIndex,
		TickUpperIndex: d.DataTickUpperIndex,
	}
	env.setData(d.KeyBundledPosition, WhirlpoolProgramID, p.Encode())

	return Ok("open_bundled_position"), nil
}

func replayCloseBundledPosition(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedCloseBundledPosition)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyBundledPosition, ix.KeyPositionBundle); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyBundledPosition, ix.KeyPositionBundleTokenAccount}
	return runReplay(host, b, creationTime, d, writable)
}

func processCloseBundledPosition(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedCloseBundledPosition)

	p, err := getPosition(env, d.KeyBundledPosition)
	if err != nil {
		return TransactionStatus{}, err
	}
	if !p.Liquidity.IsZero() {
		return Failed("0x1775", "cannot close a bundled position with non-zero liquidity"), nil
	}

	env.closeAccount(d.KeyBundledPosition)
	env.closeAccount(d.KeyPositionBundleTokenAccount)

	return Ok("close_bundled_position"), nil
}

func replayInitializePositionBundle(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedInitializePositionBundle)
	b := host.NewEnvBuilder()
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{ix.KeyPositionBundle}
	return runReplay(host, b, creationTime, d, writable)
}

func processInitializePositionBundle(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedInitializePositionBundle)

	createMint(env, d.KeyPositionBundleMint, WhirlpoolProgramID, 1, 0)
	createTokenAccount(env, d.KeyPositionBundleTokenAccount, d.KeyPositionBundleMint, d.KeyPositionBundleOwner, 1)

	pb := &whirlpool.PositionBundle{PositionBundleMint: d.KeyPositionBundleMint}
	env.setData(d.KeyPositionBundle, WhirlpoolProgramID, pb.Encode())

	return Ok("initialize_position_bundle"), nil
}

func replayInitializePositionBundleWithMetadata(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedInitializePositionBundleWithMetadata)
	b := host.NewEnvBuilder()
	b.AddFunderAccount(ix.KeyFunder)

	writable := []solana.PublicKey{ix.KeyPositionBundle}
	return runReplay(host, b, creationTime, d, writable)
}

func processInitializePositionBundleWithMetadata(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedInitializePositionBundleWithMetadata)

	createMint(env, d.KeyPositionBundleMint, WhirlpoolProgramID, 1, 0)
	createTokenAccount(env, d.KeyPositionBundleTokenAccount, d.KeyPositionBundleMint, d.KeyPositionBundleOwner, 1)
	env.setData(d.KeyPositionBundleMetadata, MetadataProgramID, []byte("whirlpool position bundle metadata"))

	pb := &whirlpool.PositionBundle{PositionBundleMint: d.KeyPositionBundleMint}
	env.setData(d.KeyPositionBundle, WhirlpoolProgramID, pb.Encode())

	return Ok("initialize_position_bundle_with_metadata"), nil
}

func replayDeletePositionBundle(host *Host, am *AccountMap, creationTime int64, d instructions.Decoded) (*ReplayResult, error) {
	ix := d.(instructions.DecodedDeletePositionBundle)
	b := host.NewEnvBuilder()

	if err := stageAll(b, am, ix.KeyPositionBundle); err != nil {
		return nil, err
	}

	writable := []solana.PublicKey{ix.KeyPositionBundle}
	return runReplay(host, b, creationTime, d, writable)
}

func processDeletePositionBundle(env *Env, ix any) (TransactionStatus, error) {
	d := ix.(instructions.DecodedDeletePositionBundle)

	pb, err := getPositionBundle(env, d.KeyPositionBundle)
	if err != nil {
		return TransactionStatus{}, err
	}
	for i := 0; i < 256; i++ {
		if pb.IsOccupied(uint16(i)) {
			return Failed("0x1776", "cannot delete a position bundle with open bundled positions"), nil
		}
	}

	env.closeAccount(d.KeyPositionBundle)

	return Ok("delete_position_bundle"), nil
}
