package instructions

import (
	"encoding/json"
	"fmt"
)

// StrictBool is a boolean field whose wire representation is the numeric
// 0/1 convention described by the instruction stream contract: any other
// value is a decode error, never silently coerced to false.
type StrictBool bool

func (b *StrictBool) UnmarshalJSON(raw []byte) error {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("instructions: boolean field must be 0 or 1, got %s: %w", raw, err)
	}
	switch n.String() {
	case "0":
		*b = false
	case "1":
		*b = true
	default:
		return fmt.Errorf("instructions: boolean field must be 0 or 1, got %s", n.String())
	}
	return nil
}

func (b StrictBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}
