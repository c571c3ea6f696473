package replay

import (
	"fmt"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/whirlpool"
	"github.com/gagliardetto/solana-go"
)

// The synthetic processors peek inside Whirlpool/TickArray/Position/
// token-account bytes the same way an on-chain instruction handler would;
// this file centralises the decode-mutate-encode round trip each processor
// needs so individual processors stay focused on the state transition
// itself rather than byte plumbing.

func getWhirlpool(env *Env, key solana.PublicKey) (*whirlpool.Whirlpool, error) {
	acc, err := env.mustGet(key)
	if err != nil {
		return nil, err
	}
	return whirlpool.DecodeWhirlpool(acc.Data)
}

func putWhirlpool(env *Env, key solana.PublicKey, w *whirlpool.Whirlpool) {
	acc := env.accounts[key]
	env.setData(key, acc.Owner, w.Encode())
}

func getConfig(env *Env, key solana.PublicKey) (*whirlpool.WhirlpoolsConfig, error) {
	acc, err := env.mustGet(key)
	if err != nil {
		return nil, err
	}
	return whirlpool.DecodeWhirlpoolsConfig(acc.Data)
}

func putConfig(env *Env, key solana.PublicKey, c *whirlpool.WhirlpoolsConfig) {
	acc := env.accounts[key]
	env.setData(key, acc.Owner, c.Encode())
}

func getFeeTier(env *Env, key solana.PublicKey) (*whirlpool.FeeTier, error) {
	acc, err := env.mustGet(key)
	if err != nil {
		return nil, err
	}
	return whirlpool.DecodeFeeTier(acc.Data)
}

func putFeeTier(env *Env, key solana.PublicKey, f *whirlpool.FeeTier) {
	acc := env.accounts[key]
	env.setData(key, acc.Owner, f.Encode())
}

func getPosition(env *Env, key solana.PublicKey) (*whirlpool.Position, error) {
	acc, err := env.mustGet(key)
	if err != nil {
		return nil, err
	}
	return whirlpool.DecodePosition(acc.Data)
}

func putPosition(env *Env, key solana.PublicKey, p *whirlpool.Position) {
	acc := env.accounts[key]
	env.setData(key, acc.Owner, p.Encode())
}

func getPositionBundle(env *Env, key solana.PublicKey) (*whirlpool.PositionBundle, error) {
	acc, err := env.mustGet(key)
	if err != nil {
		return nil, err
	}
	return whirlpool.DecodePositionBundle(acc.Data)
}

func putPositionBundle(env *Env, key solana.PublicKey, pb *whirlpool.PositionBundle) {
	acc := env.accounts[key]
	env.setData(key, acc.Owner, pb.Encode())
}

func getTokenAccount(env *Env, key solana.PublicKey) (*whirlpool.TokenAccount, error) {
	acc, err := env.mustGet(key)
	if err != nil {
		return nil, err
	}
	return whirlpool.DecodeTokenAccount(acc.Data)
}

func putTokenAccount(env *Env, key solana.PublicKey, t *whirlpool.TokenAccount) {
	acc := env.accounts[key]
	env.setData(key, acc.Owner, t.Encode())
}

// createTokenAccount installs a brand-new SPL Token account, for
// instructions that create a holding account as part of their effect
// (OpenPosition's position_token_account, InitializePool's vaults, ...).
func createTokenAccount(env *Env, key, mint, owner solana.PublicKey, amount uint64) {
	ta := whirlpool.NewTokenAccount(mint, owner, amount)
	env.setData(key, TokenProgramID, ta.Encode())
}

// createMint installs a brand-new SPL Token mint account.
func createMint(env *Env, key, authority solana.PublicKey, supply uint64, decimals uint8) {
	m := whirlpool.NewMint(authority, supply, decimals)
	env.setData(key, TokenProgramID, m.Encode())
}

// transferChecked debits amount from `from` and credits it to `to`,
// matching the SPL Token program's checked-subtract semantics: a transfer
// that would underflow the source balance fails the instruction rather
// than panicking, and the failure is captured as TransactionStatus data.
func transferChecked(env *Env, from, to solana.PublicKey, amount uint64) (TransactionStatus, error) {
	src, err := getTokenAccount(env, from)
	if err != nil {
		return TransactionStatus{}, err
	}
	if src.Amount < amount {
		return Failed("0x1", fmt.Sprintf("insufficient funds in %s: have %d, need %d", from, src.Amount, amount)), nil
	}
	dst, err := getTokenAccount(env, to)
	if err != nil {
		return TransactionStatus{}, err
	}
	src.Amount -= amount
	dst.Amount += amount
	putTokenAccount(env, from, src)
	putTokenAccount(env, to, dst)
	return TransactionStatus{}, nil
}
