package auth

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidateEVMAddress(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", true},
		{"0x2791bca1f2de4661ed88a30c99a7a9449aa84174", true},
		{"2791Bca1f2de4661ED88A30C99A7a9449Aa84174", false},
		{"0x2791", false},
		{"0xTempoDemoAccount723940182347", false},
	}
	for _, tt := range tests {
		if got := ValidateEVMAddress(tt.in); got != tt.want {
			t.Errorf("ValidateEVMAddress(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := NormalizeAddress("0x2791bca1f2de4661ed88a30c99a7a9449aa84174"); got != "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174" {
		t.Fatalf("unexpected checksum address %q", got)
	}
}

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		t.Fatalf("RegisterValidations() failed: %v", err)
	}

	type req struct {
		Token string `validate:"evm_address"`
	}
	if err := v.Struct(req{Token: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"}); err != nil {
		t.Fatalf("expected valid address, got %v", err)
	}
	if err := v.Struct(req{Token: "nope"}); err == nil {
		t.Fatal("expected invalid address to fail")
	}
}
