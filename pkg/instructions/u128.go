package instructions

import (
	"encoding/json"
	"fmt"
	"math/big"

	"lukechampine.com/uint128"
)

// U128 carries a 128-bit instruction argument (liquidity, sqrt price,
// emissions rate) across the JSON instruction-stream boundary as a decimal
// string, since JSON numbers cannot represent the full unsigned 128-bit
// range without precision loss. No JSON codec for 128-bit integers exists
// anywhere in the retrieval pack, so this narrow wire-transport concern is
// implemented directly on encoding/json + math/big.
type U128 struct {
	Hi, Lo uint64
}

func (u U128) Uint128() uint128.Uint128 {
	return uint128.Uint128{Hi: u.Hi, Lo: u.Lo}
}

func U128FromUint128(v uint128.Uint128) U128 {
	return U128{Hi: v.Hi, Lo: v.Lo}
}

func (u U128) big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(u.Lo))
	return v
}

func (u U128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.big().String())
}

func (u *U128) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// also accept a bare JSON number for small values
		var n json.Number
		if err2 := json.Unmarshal(raw, &n); err2 != nil {
			return fmt.Errorf("instructions: u128 field must be a decimal string or number: %w", err)
		}
		s = n.String()
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("instructions: invalid u128 decimal value %q", s)
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return fmt.Errorf("instructions: u128 value %q out of range", s)
	}
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask64).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	u.Hi, u.Lo = hi, lo
	return nil
}
