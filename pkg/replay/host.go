package replay

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Fixed program identities.
var (
	WhirlpoolProgramID = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	TokenProgramID     = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	MetadataProgramID  = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
)

// Processor is the synthetic stand-in for the on-chain virtual machine's
// instruction handler: given the already-typed decoded instruction and the
// env it was staged into, it performs the AMM program's state transition
// directly rather than interpreting bytecode.
type Processor func(env *Env, ix any) (TransactionStatus, error)

// Host owns the three program bytecode blobs and the processor registry
// keyed by Anchor instruction discriminator. Bytecode is retained purely
// for identity/bookkeeping (it is installed into every Env as an
// executable account) and is never interpreted.
type Host struct {
	whirlpoolBytecode []byte
	tokenBytecode     []byte
	metadataBytecode  []byte
	processors        map[[8]byte]Processor
	variants          map[[8]byte]string
}

// NewHost constructs a host from the three program binaries loaded from
// WHIRLPOOL_PROGRAM_SO_PATH, SPL_TOKEN_PROGRAM_SO_PATH, and
// TOKEN_METADATA_PROGRAM_SO_PATH.
func NewHost(whirlpoolBytecode, tokenBytecode, metadataBytecode []byte) *Host {
	h := &Host{
		whirlpoolBytecode: whirlpoolBytecode,
		tokenBytecode:     tokenBytecode,
		metadataBytecode:  metadataBytecode,
		processors:        make(map[[8]byte]Processor),
		variants:          make(map[[8]byte]string),
	}
	// Known variant names are recorded up front so an unsupported variant
	// is reported by name even when its processor was never registered.
	for variant := range defaultProcessors {
		h.variants[instructionDiscriminator(variant)] = variant
	}
	return h
}

// Register binds a variant name to its processor under the variant's
// Anchor discriminator. Called once per variant at startup; see
// RegisterDefaultProcessors.
func (h *Host) Register(variant string, p Processor) {
	disc := instructionDiscriminator(variant)
	h.processors[disc] = p
	h.variants[disc] = variant
}

// NewEnvBuilder returns a fresh builder with the host's three programs
// already installed: each instruction must see exactly the accounts it
// touches plus the three programs.
func (h *Host) NewEnvBuilder() *EnvBuilder {
	b := &EnvBuilder{
		host:     h,
		accounts: make(map[solana.PublicKey]Account),
	}
	b.installProgram(WhirlpoolProgramID, h.whirlpoolBytecode)
	b.installProgram(TokenProgramID, h.tokenBytecode)
	b.installProgram(MetadataProgramID, h.metadataBytecode)
	return b
}

// ExecuteTransaction runs tx's lone instruction against env: semantics
// equivalent to a single-tick, single-transaction VM run, deterministic
// given inputs and clock. The
// processor is selected by the Anchor discriminator leading the
// instruction's data, the same dispatch the on-chain program's entrypoint
// performs.
func (h *Host) ExecuteTransaction(env *Env, tx *solana.Transaction, ix any) (TransactionStatus, error) {
	if n := len(tx.Message.Instructions); n != 1 {
		return TransactionStatus{}, fmt.Errorf("replay: expected a single-instruction transaction, got %d instructions", n)
	}
	data := tx.Message.Instructions[0].Data
	if len(data) < 8 {
		return TransactionStatus{}, fmt.Errorf("%w: instruction data too short for a discriminator", ErrUnsupportedVariant)
	}
	var disc [8]byte
	copy(disc[:], data)
	p, ok := h.processors[disc]
	if !ok {
		if name, known := h.variants[disc]; known {
			return TransactionStatus{}, fmt.Errorf("%w: %q", ErrUnsupportedVariant, name)
		}
		return TransactionStatus{}, fmt.Errorf("%w: discriminator %x", ErrUnsupportedVariant, disc)
	}
	return p(env, ix)
}
