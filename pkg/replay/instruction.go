package replay

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode"

	"github.com/808putnam/whirlpool-tx-replayer/pkg/anchor"
	"github.com/808putnam/whirlpool-tx-replayer/pkg/instructions"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// whirlpoolInstruction carries one replayed AMM instruction through
// solana-go's transaction machinery: the account meta list assembled from
// the env's staged accounts, and the Anchor-encoded data record rebuilt
// from the decoded instruction's data_* fields.
type whirlpoolInstruction struct {
	bin.BaseVariant
	decoded                 instructions.Decoded
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func (inst *whirlpoolInstruction) ProgramID() solana.PublicKey { return WhirlpoolProgramID }

func (inst *whirlpoolInstruction) Accounts() []*solana.AccountMeta { return inst.AccountMetaSlice }

// Data serializes the instruction data: the 8-byte Anchor discriminator
// followed by the borsh-encoded argument record.
func (inst *whirlpoolInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	disc := instructionDiscriminator(inst.decoded.Variant())
	if _, err := buf.Write(disc[:]); err != nil {
		return nil, fmt.Errorf("failed to write discriminator: %w", err)
	}
	if err := encodeArgs(buf, inst.decoded); err != nil {
		return nil, fmt.Errorf("failed to encode %s args: %w", inst.decoded.Variant(), err)
	}
	return buf.Bytes(), nil
}

// instructionDiscriminator derives the Anchor instruction discriminator,
// sha256("global:<snake_case_name>")[..8].
func instructionDiscriminator(variant string) [8]byte {
	var out [8]byte
	copy(out[:], anchor.GetDiscriminator("global", toSnakeCase(variant)))
	return out
}

// toSnakeCase maps the instruction stream's camelCase names onto the
// snake_case method names Anchor hashes ("twoHopSwap" -> "two_hop_swap").
func toSnakeCase(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeArgs borsh-encodes d's scalar argument fields in their canonical
// order onto buf.
func encodeArgs(buf *bytes.Buffer, d instructions.Decoded) error {
	enc := bin.NewBorshEncoder(buf)
	for _, arg := range argFields(d) {
		var err error
		switch v := arg.(type) {
		case uint8:
			err = enc.WriteByte(v)
		case uint16:
			err = enc.WriteUint16(v, binary.LittleEndian)
		case int32:
			err = enc.WriteInt32(v, binary.LittleEndian)
		case uint64:
			err = enc.WriteUint64(v, binary.LittleEndian)
		case instructions.U128:
			if err = enc.WriteUint64(v.Lo, binary.LittleEndian); err == nil {
				err = enc.WriteUint64(v.Hi, binary.LittleEndian)
			}
		case instructions.StrictBool:
			err = enc.WriteBool(bool(v))
		case solana.PublicKey:
			err = enc.WriteBytes(v.Bytes(), false)
		default:
			err = fmt.Errorf("unsupported argument type %T", arg)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// argFields lists each variant's data_* fields in wire order. Variants
// whose arguments all travel as accounts return nil.
func argFields(d instructions.Decoded) []any {
	switch v := d.(type) {
	case instructions.DecodedSwap:
		return []any{v.DataAmount, v.DataOtherAmountThreshold, v.DataSqrtPriceLimit, v.DataAmountSpecifiedIsInput, v.DataAToB}
	case instructions.DecodedTwoHopSwap:
		return []any{v.DataAmount, v.DataOtherAmountThreshold, v.DataAmountSpecifiedIsInput, v.DataAToBOne, v.DataAToBTwo, v.DataSqrtPriceLimitOne, v.DataSqrtPriceLimitTwo}
	case instructions.DecodedIncreaseLiquidity:
		return []any{v.DataLiquidityAmount, v.DataTokenAmountMaxA, v.DataTokenAmountMaxB}
	case instructions.DecodedDecreaseLiquidity:
		return []any{v.DataLiquidityAmount, v.DataTokenAmountMinA, v.DataTokenAmountMinB}
	case instructions.DecodedCollectReward:
		return []any{v.DataRewardIndex}
	case instructions.DecodedOpenPosition:
		return []any{v.DataTickLowerIndex, v.DataTickUpperIndex}
	case instructions.DecodedOpenPositionWithMetadata:
		return []any{v.DataTickLowerIndex, v.DataTickUpperIndex}
	case instructions.DecodedOpenBundledPosition:
		return []any{v.DataBundleIndex, v.DataTickLowerIndex, v.DataTickUpperIndex}
	case instructions.DecodedCloseBundledPosition:
		return []any{v.DataBundleIndex}
	case instructions.DecodedInitializePool:
		return []any{v.DataTickSpacing, v.DataInitialSqrtPrice}
	case instructions.DecodedInitializeTickArray:
		return []any{v.DataStartTickIndex}
	case instructions.DecodedInitializeFeeTier:
		return []any{v.DataTickSpacing, v.DataDefaultFeeRate}
	case instructions.DecodedInitializeConfig:
		return []any{v.DataFeeAuthority, v.DataCollectProtocolFeesAuthority, v.DataRewardEmissionsSuperAuthority, v.DataDefaultProtocolFeeRate}
	case instructions.DecodedInitializeReward:
		return []any{v.DataRewardIndex}
	case instructions.DecodedSetRewardEmissions:
		return []any{v.DataRewardIndex, v.DataEmissionsPerSecondX64}
	case instructions.DecodedSetRewardAuthority:
		return []any{v.DataRewardIndex}
	case instructions.DecodedSetRewardAuthorityBySuperAuthority:
		return []any{v.DataRewardIndex}
	case instructions.DecodedSetFeeRate:
		return []any{v.DataFeeRate}
	case instructions.DecodedSetProtocolFeeRate:
		return []any{v.DataProtocolFeeRate}
	case instructions.DecodedSetDefaultFeeRate:
		return []any{v.DataDefaultFeeRate}
	case instructions.DecodedSetDefaultProtocolFeeRate:
		return []any{v.DataDefaultProtocolFeeRate}
	case instructions.DecodedAdminIncreaseLiquidity:
		return []any{v.DataLiquidity}
	default:
		return nil
	}
}
