package instructions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownInstruction is returned by FromJSON when the instruction name
// does not match any of the registered Whirlpool instruction variants.
var ErrUnknownInstruction = errors.New("instructions: unknown whirlpool instruction")

// ErrDecode is returned by FromJSON when the payload fails the variant's
// schema: a known name whose record could not be decoded.
var ErrDecode = errors.New("instructions: payload decode failed")

// FromJSON decodes a single instruction-stream record into its concrete
// Decoded variant, dispatching on name exactly as the original instruction
// table does. Unknown names are reported via ErrUnknownInstruction rather
// than decoded into a best-effort placeholder, so that replay dispatch can
// tell "not a real instruction" apart from "decode failed".
func FromJSON(name string, payload []byte) (Decoded, error) {
	var target Decoded
	switch name {
	case VariantAdminIncreaseLiquidity:
		target = &DecodedAdminIncreaseLiquidity{}
	case VariantCloseBundledPosition:
		target = &DecodedCloseBundledPosition{}
	case VariantClosePosition:
		target = &DecodedClosePosition{}
	case VariantCollectFees:
		target = &DecodedCollectFees{}
	case VariantCollectProtocolFees:
		target = &DecodedCollectProtocolFees{}
	case VariantCollectReward:
		target = &DecodedCollectReward{}
	case VariantDecreaseLiquidity:
		target = &DecodedDecreaseLiquidity{}
	case VariantDeletePositionBundle:
		target = &DecodedDeletePositionBundle{}
	case VariantIncreaseLiquidity:
		target = &DecodedIncreaseLiquidity{}
	case VariantInitializeConfig:
		target = &DecodedInitializeConfig{}
	case VariantInitializeFeeTier:
		target = &DecodedInitializeFeeTier{}
	case VariantInitializePool:
		target = &DecodedInitializePool{}
	case VariantInitializePositionBundle:
		target = &DecodedInitializePositionBundle{}
	case VariantInitializePositionBundleWithMetadata:
		target = &DecodedInitializePositionBundleWithMetadata{}
	case VariantInitializeReward:
		target = &DecodedInitializeReward{}
	case VariantInitializeTickArray:
		target = &DecodedInitializeTickArray{}
	case VariantOpenBundledPosition:
		target = &DecodedOpenBundledPosition{}
	case VariantOpenPosition:
		target = &DecodedOpenPosition{}
	case VariantOpenPositionWithMetadata:
		target = &DecodedOpenPositionWithMetadata{}
	case VariantSetCollectProtocolFeesAuthority:
		target = &DecodedSetCollectProtocolFeesAuthority{}
	case VariantSetDefaultFeeRate:
		target = &DecodedSetDefaultFeeRate{}
	case VariantSetDefaultProtocolFeeRate:
		target = &DecodedSetDefaultProtocolFeeRate{}
	case VariantSetFeeAuthority:
		target = &DecodedSetFeeAuthority{}
	case VariantSetFeeRate:
		target = &DecodedSetFeeRate{}
	case VariantSetProtocolFeeRate:
		target = &DecodedSetProtocolFeeRate{}
	case VariantSetRewardAuthority:
		target = &DecodedSetRewardAuthority{}
	case VariantSetRewardAuthorityBySuperAuthority:
		target = &DecodedSetRewardAuthorityBySuperAuthority{}
	case VariantSetRewardEmissions:
		target = &DecodedSetRewardEmissions{}
	case VariantSetRewardEmissionsSuperAuthority:
		target = &DecodedSetRewardEmissionsSuperAuthority{}
	case VariantSwap:
		target = &DecodedSwap{}
	case VariantTwoHopSwap:
		target = &DecodedTwoHopSwap{}
	case VariantUpdateFeesAndRewards:
		target = &DecodedUpdateFeesAndRewards{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstruction, name)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDecode, name, err)
	}
	return derefVariant(target), nil
}

// derefVariant returns the pointed-to struct value rather than the pointer
// FromJSON decoded into, so that Decoded values compare and print the same
// way regardless of how they were constructed.
func derefVariant(d Decoded) Decoded {
	switch v := d.(type) {
	case *DecodedAdminIncreaseLiquidity:
		return *v
	case *DecodedCloseBundledPosition:
		return *v
	case *DecodedClosePosition:
		return *v
	case *DecodedCollectFees:
		return *v
	case *DecodedCollectProtocolFees:
		return *v
	case *DecodedCollectReward:
		return *v
	case *DecodedDecreaseLiquidity:
		return *v
	case *DecodedDeletePositionBundle:
		return *v
	case *DecodedIncreaseLiquidity:
		return *v
	case *DecodedInitializeConfig:
		return *v
	case *DecodedInitializeFeeTier:
		return *v
	case *DecodedInitializePool:
		return *v
	case *DecodedInitializePositionBundle:
		return *v
	case *DecodedInitializePositionBundleWithMetadata:
		return *v
	case *DecodedInitializeReward:
		return *v
	case *DecodedInitializeTickArray:
		return *v
	case *DecodedOpenBundledPosition:
		return *v
	case *DecodedOpenPosition:
		return *v
	case *DecodedOpenPositionWithMetadata:
		return *v
	case *DecodedSetCollectProtocolFeesAuthority:
		return *v
	case *DecodedSetDefaultFeeRate:
		return *v
	case *DecodedSetDefaultProtocolFeeRate:
		return *v
	case *DecodedSetFeeAuthority:
		return *v
	case *DecodedSetFeeRate:
		return *v
	case *DecodedSetProtocolFeeRate:
		return *v
	case *DecodedSetRewardAuthority:
		return *v
	case *DecodedSetRewardAuthorityBySuperAuthority:
		return *v
	case *DecodedSetRewardEmissions:
		return *v
	case *DecodedSetRewardEmissionsSuperAuthority:
		return *v
	case *DecodedSwap:
		return *v
	case *DecodedTwoHopSwap:
		return *v
	case *DecodedUpdateFeesAndRewards:
		return *v
	default:
		return d
	}
}
