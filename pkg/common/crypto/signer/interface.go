package signer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Signer produces transaction signatures for the operator key
type Signer interface {
	// Address returns the operator's address
	Address() ethcommon.Address

	// SignerFn returns a transaction signing function for the given chain
	SignerFn(chainID *big.Int) (bind.SignerFn, error)

	// Sign signs an arbitrary message with the operator key
	Sign(message []byte) ([]byte, error)
}
