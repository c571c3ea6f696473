package whirlpool

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// TokenAccountSize is the SPL Token program's fixed account layout size.
// Modeled locally rather than imported from gagliardetto/solana-go's token
// program package: that package's own Account type is only ever imported,
// never its field layout observed, anywhere in the retrieval pack, and this
// replayer needs to both decode and re-encode vault/owner balances, not
// just reference the type.
const TokenAccountSize = 165

// TokenAccount is the SPL Token program's per-account layout: mint, owner,
// balance, and the handful of optional fields the program always writes
// (delegate, state, is_native, delegated_amount, close_authority) encoded
// as COption-style 4-byte tag + payload.
type TokenAccount struct {
	Mint            solana.PublicKey
	Owner           solana.PublicKey
	Amount          uint64
	DelegateOption  uint32
	Delegate        solana.PublicKey
	State           uint8
	IsNativeOption  uint32
	IsNative        uint64
	DelegatedAmount uint64
	CloseAuthOption uint32
	CloseAuthority  solana.PublicKey
}

func DecodeTokenAccount(data []byte) (*TokenAccount, error) {
	if len(data) < TokenAccountSize {
		return nil, fmt.Errorf("whirlpool: short token account data: want %d bytes, got %d", TokenAccountSize, len(data))
	}
	return &TokenAccount{
		Mint:            readPubkey(data, 0),
		Owner:           readPubkey(data, 32),
		Amount:          binary.LittleEndian.Uint64(data[64:72]),
		DelegateOption:  binary.LittleEndian.Uint32(data[72:76]),
		Delegate:        readPubkey(data, 76),
		State:           data[108],
		IsNativeOption:  binary.LittleEndian.Uint32(data[109:113]),
		IsNative:        binary.LittleEndian.Uint64(data[113:121]),
		DelegatedAmount: binary.LittleEndian.Uint64(data[121:129]),
		CloseAuthOption: binary.LittleEndian.Uint32(data[129:133]),
		CloseAuthority:  readPubkey(data, 133),
	}, nil
}

func (t *TokenAccount) Encode() []byte {
	data := make([]byte, TokenAccountSize)
	writePubkey(data, 0, t.Mint)
	writePubkey(data, 32, t.Owner)
	binary.LittleEndian.PutUint64(data[64:72], t.Amount)
	binary.LittleEndian.PutUint32(data[72:76], t.DelegateOption)
	writePubkey(data, 76, t.Delegate)
	data[108] = t.State
	binary.LittleEndian.PutUint32(data[109:113], t.IsNativeOption)
	binary.LittleEndian.PutUint64(data[113:121], t.IsNative)
	binary.LittleEndian.PutUint64(data[121:129], t.DelegatedAmount)
	binary.LittleEndian.PutUint32(data[129:133], t.CloseAuthOption)
	writePubkey(data, 133, t.CloseAuthority)
	return data
}

// NewTokenAccount builds a fresh, initialized token account holding amount
// units of mint, owned by owner. Used by the environment builder to seed
// owner/vault accounts that a replayed instruction reads a balance from.
func NewTokenAccount(mint, owner solana.PublicKey, amount uint64) *TokenAccount {
	return &TokenAccount{
		Mint:   mint,
		Owner:  owner,
		Amount: amount,
		State:  1, // initialized
	}
}

// MintAccountSize is the SPL Token program's fixed mint layout size.
const MintAccountSize = 82

// Mint is the SPL Token program's per-mint layout: optional mint authority,
// total supply, decimal places, and an optional freeze authority.
type Mint struct {
	MintAuthorityOption uint32
	MintAuthority       solana.PublicKey
	Supply              uint64
	Decimals            uint8
	IsInitialized       bool
	FreezeAuthOption    uint32
	FreezeAuthority     solana.PublicKey
}

func DecodeMint(data []byte) (*Mint, error) {
	if len(data) < MintAccountSize {
		return nil, fmt.Errorf("whirlpool: short mint data: want %d bytes, got %d", MintAccountSize, len(data))
	}
	return &Mint{
		MintAuthorityOption: binary.LittleEndian.Uint32(data[0:4]),
		MintAuthority:       readPubkey(data, 4),
		Supply:              binary.LittleEndian.Uint64(data[36:44]),
		Decimals:            data[44],
		IsInitialized:       data[45] != 0,
		FreezeAuthOption:    binary.LittleEndian.Uint32(data[46:50]),
		FreezeAuthority:     readPubkey(data, 50),
	}, nil
}

func (m *Mint) Encode() []byte {
	data := make([]byte, MintAccountSize)
	binary.LittleEndian.PutUint32(data[0:4], m.MintAuthorityOption)
	writePubkey(data, 4, m.MintAuthority)
	binary.LittleEndian.PutUint64(data[36:44], m.Supply)
	data[44] = m.Decimals
	if m.IsInitialized {
		data[45] = 1
	}
	binary.LittleEndian.PutUint32(data[46:50], m.FreezeAuthOption)
	writePubkey(data, 50, m.FreezeAuthority)
	return data
}

// NewMint builds a fresh, initialized mint with the given authority,
// supply and decimals, and no freeze authority.
func NewMint(authority solana.PublicKey, supply uint64, decimals uint8) *Mint {
	return &Mint{
		MintAuthorityOption: 1,
		MintAuthority:       authority,
		Supply:              supply,
		Decimals:            decimals,
		IsInitialized:       true,
	}
}
