package auth

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

// ValidateEVMAddress checks if a string is a 0x-prefixed 20 byte hex address
func ValidateEVMAddress(address string) bool {
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

// NormalizeAddress returns a checksummed EVM address
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// RegisterValidations adds the evm_address tag to v.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("evm_address", func(fl validator.FieldLevel) bool {
		return ValidateEVMAddress(fl.Field().String())
	})
}
