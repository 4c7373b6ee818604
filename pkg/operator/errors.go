package operator

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// MaxOperatorFee is the highest fee the native registry accepts, in basis
// points (1000 = 10%).
const MaxOperatorFee = 1000

var (
	// ErrEmptyName is returned when an operator name is empty
	ErrEmptyName = errors.New("operator name must not be empty")

	// ErrFeeOutOfRange is returned when a fee is outside [0, MaxOperatorFee]
	ErrFeeOutOfRange = errors.New("operator fee out of range")

	// ErrInvalidAddress is returned for malformed or zero addresses
	ErrInvalidAddress = errors.New("invalid address")
)

// ParseAddress parses a hex address string, returning ErrInvalidAddress for
// malformed input.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

func validateFee(fee *big.Int) error {
	if fee == nil || fee.Sign() < 0 || fee.Cmp(big.NewInt(MaxOperatorFee)) > 0 {
		return fmt.Errorf("%w: %v (must be within [0, %d])", ErrFeeOutOfRange, fee, MaxOperatorFee)
	}
	return nil
}

func validateAddress(addr common.Address) error {
	if addr == (common.Address{}) {
		return fmt.Errorf("%w: zero address", ErrInvalidAddress)
	}
	return nil
}
