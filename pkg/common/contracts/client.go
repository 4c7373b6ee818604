package contracts

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// ErrNoSigner is returned by write methods when the client was constructed
// without a transaction signer.
var ErrNoSigner = errors.New("no signer configured")

// Client defines the interface for interacting with all registry contracts
// on one chain.
type Client interface {
	NativeClient
	SymbioticClient

	// ChainID returns the chain this client is bound to
	ChainID() uint64

	// Close closes the client connection
	Close() error
}

// NativeClient defines interactions with the Byzantine NativeRegistry contract
type NativeClient interface {
	// Register the signer as an operator with a display name and fee
	RegisterOperator(ctx context.Context, name string, fee *big.Int) (*types.Transaction, error)

	// Update the signer's operator display name
	UpdateOperatorName(ctx context.Context, name string) (*types.Transaction, error)

	// Update the signer's operator fee
	UpdateOperatorFee(ctx context.Context, fee *big.Int) (*types.Transaction, error)

	// Remove the signer from the registry
	DeregisterOperator(ctx context.Context) (*types.Transaction, error)

	// Check if an operator is registered
	IsOperatorRegistered(ctx context.Context, operator common.Address) (bool, error)

	// Get the registry record for an operator
	GetOperator(ctx context.Context, operator common.Address) (Operator, error)

	// Watch for operator registered events
	WatchOperatorRegistered(opts *bind.WatchOpts, sink chan<- *OperatorRegisteredEvent) (event.Subscription, error)
}

// SymbioticClient defines interactions with the Symbiotic OperatorRegistry
// and the network/vault OptInService contracts
type SymbioticClient interface {
	// Register the signer in the Symbiotic operator registry
	RegisterSymbioticOperator(ctx context.Context) (*types.Transaction, error)

	// Check if an address is a registered Symbiotic operator
	IsSymbioticOperator(ctx context.Context, operator common.Address) (bool, error)

	// Get the number of registered Symbiotic operators
	SymbioticOperatorCount(ctx context.Context) (*big.Int, error)

	// Get the operator address at an index in the registry
	SymbioticOperatorAt(ctx context.Context, index *big.Int) (common.Address, error)

	// Network opt-in service
	OptInNetwork(ctx context.Context, network common.Address) (*types.Transaction, error)
	OptOutNetwork(ctx context.Context, network common.Address) (*types.Transaction, error)
	IsOptedInNetwork(ctx context.Context, operator, network common.Address) (bool, error)
	NetworkOptInNonce(ctx context.Context, operator, network common.Address) (*big.Int, error)

	// Vault opt-in service
	OptInVault(ctx context.Context, vault common.Address) (*types.Transaction, error)
	OptOutVault(ctx context.Context, vault common.Address) (*types.Transaction, error)
	IsOptedInVault(ctx context.Context, operator, vault common.Address) (bool, error)
	VaultOptInNonce(ctx context.Context, operator, vault common.Address) (*big.Int, error)

	// Watch for network opt-in events
	WatchNetworkOptIn(opts *bind.WatchOpts, sink chan<- *OptInEvent) (event.Subscription, error)
}

// Operator is a NativeRegistry record
type Operator struct {
	Name       string
	Fee        *big.Int
	Registered bool
}

// OperatorRegisteredEvent represents a native operator registered event
type OperatorRegisteredEvent struct {
	Operator    common.Address
	Name        string
	Fee         *big.Int
	BlockNumber uint64
}

// OptInEvent represents a Symbiotic opt-in event
type OptInEvent struct {
	Who         common.Address
	Where       common.Address
	BlockNumber uint64
}
