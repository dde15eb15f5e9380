package auth

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestSignAndVerifyEIP191(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	want := crypto.PubkeyToAddress(key.PublicKey)
	msg := "Please sign this message to authenticate with RWA DEX.\n\nNonce: abc123\nTimestamp: 2025-01-01T00:00:00.000Z"

	sig, err := SignEIP191(msg, key)
	if err != nil {
		t.Fatalf("SignEIP191() error = %v", err)
	}

	got, err := VerifyEIP191Signature(msg, sig)
	if err != nil {
		t.Fatalf("VerifyEIP191Signature() error = %v", err)
	}
	if got != want {
		t.Errorf("recovered %s, want %s", got.Hex(), want.Hex())
	}

	// v in {0,1} is accepted as well
	raw := []byte(strings.TrimPrefix(sig, "0x"))
	last := string(raw[len(raw)-2:])
	var lowV string
	switch last {
	case "1b":
		lowV = "00"
	case "1c":
		lowV = "01"
	default:
		t.Fatalf("unexpected v byte %q", last)
	}
	got, err = VerifyEIP191Signature(msg, sig[:len(sig)-2]+lowV)
	if err != nil || got != want {
		t.Errorf("low v signature: got %s, err %v", got.Hex(), err)
	}

	// A different message recovers a different signer.
	got, err = VerifyEIP191Signature(msg+" tampered", sig)
	if err == nil && got == want {
		t.Error("tampered message must not recover the signer")
	}
}

func TestVerifyEIP191Signature_Malformed(t *testing.T) {
	tests := []struct {
		name string
		sig  string
	}{
		{name: "not hex", sig: "0xzz"},
		{name: "too short", sig: "0x1234"},
		{name: "empty", sig: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyEIP191Signature("hello", tt.sig); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateEVMAddress(t *testing.T) {
	tests := []struct {
		address string
		want    bool
	}{
		{"0x742d35Cc6634C0532925a3b844Bc454e4438f44e", true},
		{"0x742d35cc6634c0532925a3b844bc454e4438f44e", true},
		{"742d35cc6634c0532925a3b844bc454e4438f44e", false},
		{"0x742d35cc6634c0532925a3b844bc454e4438f44", false},
		{"0xg42d35cc6634c0532925a3b844bc454e4438f44e", false},
		{"invalid", false},
	}
	for _, tt := range tests {
		if got := ValidateEVMAddress(tt.address); got != tt.want {
			t.Errorf("ValidateEVMAddress(%q) = %v, want %v", tt.address, got, tt.want)
		}
	}
}

func TestSameAddress(t *testing.T) {
	checksummed := "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	if !SameAddress(checksummed, strings.ToLower(checksummed)) {
		t.Error("SameAddress must ignore case")
	}
	if SameAddress(checksummed, "0x0000000000000000000000000000000000000001") {
		t.Error("SameAddress must reject different addresses")
	}
}
