package token

import (
	"errors"
	"math/big"
	"testing"
)

func TestAmountRoundTrip(t *testing.T) {
	amounts := []string{"0", "0.01", "1", "150.00", "1234567.89", "0.000001", "42.5"}

	for _, decimals := range []int32{6, 18} {
		for _, human := range amounts {
			raw, err := ToMinorUnits(human, decimals)
			if err != nil {
				t.Fatalf("ToMinorUnits(%q, %d) failed: %v", human, decimals, err)
			}
			back := FromMinorUnits(raw, decimals)
			again, err := ToMinorUnits(back, decimals)
			if err != nil {
				t.Fatalf("ToMinorUnits(%q, %d) failed: %v", back, decimals, err)
			}
			if raw.Cmp(again) != 0 {
				t.Fatalf("round trip drift for %q at %d decimals: %s != %s", human, decimals, raw, again)
			}
		}
	}
}

func TestToMinorUnits(t *testing.T) {
	raw, err := ToMinorUnits("150.00", 6)
	if err != nil {
		t.Fatalf("ToMinorUnits failed: %v", err)
	}
	if raw.String() != "150000000" {
		t.Fatalf("expected 150000000, got %s", raw)
	}

	raw, err = ToMinorUnits("1.5", 18)
	if err != nil {
		t.Fatalf("ToMinorUnits failed: %v", err)
	}
	if raw.String() != "1500000000000000000" {
		t.Fatalf("unexpected raw amount %s", raw)
	}
}

func TestToMinorUnits_Rejects(t *testing.T) {
	if _, err := ToMinorUnits("0.0000001", 6); !errors.Is(err, ErrTooPrecise) {
		t.Fatalf("expected ErrTooPrecise, got %v", err)
	}
	if _, err := ToMinorUnits("-1", 6); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if _, err := ToMinorUnits("abc", 6); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromMinorUnits(t *testing.T) {
	tests := []struct {
		raw      string
		decimals int32
		want     string
	}{
		{"150000000", 6, "150.00"},
		{"1", 6, "0.000001"},
		{"1500000000000000000", 18, "1.50"},
		{"0", 18, "0.00"},
		{"123456", 6, "0.123456"},
	}
	for _, tt := range tests {
		raw, _ := new(big.Int).SetString(tt.raw, 10)
		if got := FromMinorUnits(raw, tt.decimals); got != tt.want {
			t.Errorf("FromMinorUnits(%s, %d) = %q, want %q", tt.raw, tt.decimals, got, tt.want)
		}
	}
}
