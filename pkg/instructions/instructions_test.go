package instructions

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestFromJSONSwap(t *testing.T) {
	whirlpool := solana.NewWallet().PublicKey()
	payload := []byte(`{
		"dataAmount": 1000000,
		"dataOtherAmountThreshold": 990000,
		"dataSqrtPriceLimit": "79226673521066979257578248091",
		"dataAmountSpecifiedIsInput": 1,
		"dataAToB": 1,
		"keyTokenProgram": "` + solana.TokenProgramID.String() + `",
		"keyTokenAuthority": "` + solana.NewWallet().PublicKey().String() + `",
		"keyWhirlpool": "` + whirlpool.String() + `",
		"keyTokenOwnerAccountA": "` + solana.NewWallet().PublicKey().String() + `",
		"keyVaultA": "` + solana.NewWallet().PublicKey().String() + `",
		"keyTokenOwnerAccountB": "` + solana.NewWallet().PublicKey().String() + `",
		"keyVaultB": "` + solana.NewWallet().PublicKey().String() + `",
		"keyTickArray0": "` + solana.NewWallet().PublicKey().String() + `",
		"keyTickArray1": "` + solana.NewWallet().PublicKey().String() + `",
		"keyTickArray2": "` + solana.NewWallet().PublicKey().String() + `",
		"keyOracle": "` + solana.NewWallet().PublicKey().String() + `",
		"transferAmount0": 1000000,
		"transferAmount1": 990000
	}`)

	decoded, err := FromJSON(VariantSwap, payload)
	if err != nil {
		t.Fatalf("FromJSON(swap) failed: %s", err.Error())
	}
	swap, ok := decoded.(DecodedSwap)
	if !ok {
		t.Fatalf("expected DecodedSwap, got %T", decoded)
	}
	if swap.Variant() != VariantSwap {
		t.Errorf("variant mismatch: want %s, got %s", VariantSwap, swap.Variant())
	}
	if swap.KeyWhirlpool != whirlpool {
		t.Errorf("whirlpool key mismatch: want %s, got %s", whirlpool, swap.KeyWhirlpool)
	}
	if !bool(swap.DataAToB) {
		t.Errorf("expected dataAToB true")
	}
	if swap.DataAmount != 1000000 {
		t.Errorf("amount mismatch: want 1000000, got %d", swap.DataAmount)
	}
}

func TestFromJSONUnknownVariant(t *testing.T) {
	_, err := FromJSON("notARealInstruction", []byte(`{}`))
	if !errors.Is(err, ErrUnknownInstruction) {
		t.Errorf("expected ErrUnknownInstruction, got %v", err)
	}
}

func TestFromJSONRejectsUnknownFields(t *testing.T) {
	_, err := FromJSON(VariantSetFeeRate, []byte(`{
		"dataFeeRate": 100,
		"keyWhirlpoolsConfig": "`+solana.NewWallet().PublicKey().String()+`",
		"keyWhirlpool": "`+solana.NewWallet().PublicKey().String()+`",
		"keyFeeAuthority": "`+solana.NewWallet().PublicKey().String()+`",
		"bogusExtraField": true
	}`))
	if err == nil {
		t.Errorf("expected decode error for unknown field, got nil")
	}
}

func TestFromJSONBooleanWireContract(t *testing.T) {
	// Boolean fields ride the wire as 0/1; anything else is a decode
	// error, never a silent coercion.
	_, err := FromJSON(VariantSwap, []byte(`{"dataAToB": 2}`))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode for dataAToB=2, got %v", err)
	}
}

func TestStrictBoolRejectsNonBinaryValues(t *testing.T) {
	var b StrictBool
	if err := json.Unmarshal([]byte("2"), &b); err == nil {
		t.Errorf("expected error unmarshaling StrictBool from 2, got nil")
	}
	if err := json.Unmarshal([]byte(`"true"`), &b); err == nil {
		t.Errorf("expected error unmarshaling StrictBool from a JSON string, got nil")
	}
}

func TestStrictBoolRoundTrip(t *testing.T) {
	for _, want := range []StrictBool{true, false} {
		raw, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("Marshal failed: %s", err.Error())
		}
		var got StrictBool
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("Unmarshal failed: %s", err.Error())
		}
		if got != want {
			t.Errorf("round trip mismatch: want %v, got %v", want, got)
		}
	}
}

func TestU128RoundTrip(t *testing.T) {
	cases := []string{"0", "1", "79226673521066979257578248091", "340282366920938463463374607431768211455"}
	for _, s := range cases {
		var u U128
		if err := json.Unmarshal([]byte(`"`+s+`"`), &u); err != nil {
			t.Fatalf("Unmarshal(%q) failed: %s", s, err.Error())
		}
		raw, err := json.Marshal(u)
		if err != nil {
			t.Fatalf("Marshal failed: %s", err.Error())
		}
		var got string
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("Unmarshal roundtrip string failed: %s", err.Error())
		}
		if got != s {
			t.Errorf("u128 round trip mismatch: want %s, got %s", s, got)
		}
	}
}

func TestU128RejectsOutOfRange(t *testing.T) {
	var u U128
	err := json.Unmarshal([]byte(`"340282366920938463463374607431768211456"`), &u)
	if err == nil {
		t.Errorf("expected error for u128 value exceeding 128 bits, got nil")
	}
}

func TestU128AcceptsBareNumber(t *testing.T) {
	var u U128
	if err := json.Unmarshal([]byte("42"), &u); err != nil {
		t.Fatalf("Unmarshal(42) failed: %s", err.Error())
	}
	if u.Lo != 42 || u.Hi != 0 {
		t.Errorf("expected {Hi:0 Lo:42}, got %+v", u)
	}
}
