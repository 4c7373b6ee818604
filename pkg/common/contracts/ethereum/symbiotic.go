package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts"
	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts/bindings"
)

// Symbiotic OperatorRegistry methods

// RegisterSymbioticOperator registers the signer in the Symbiotic operator registry
func (c *ChainClient) RegisterSymbioticOperator(ctx context.Context) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.operatorRegistry.RegisterOperator(opts)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to register symbiotic operator: %w", err)
	}
	return tx, nil
}

// IsSymbioticOperator checks if an address is a registered Symbiotic operator
func (c *ChainClient) IsSymbioticOperator(ctx context.Context, operator common.Address) (bool, error) {
	opts := &bind.CallOpts{Context: ctx}
	registered, err := c.operatorRegistry.IsEntity(opts, operator)
	if err != nil {
		return false, fmt.Errorf("[ChainClient] failed to check symbiotic operator: %w", err)
	}
	return registered, nil
}

// SymbioticOperatorCount gets the number of registered Symbiotic operators
func (c *ChainClient) SymbioticOperatorCount(ctx context.Context) (*big.Int, error) {
	opts := &bind.CallOpts{Context: ctx}
	count, err := c.operatorRegistry.TotalEntities(opts)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get symbiotic operator count: %w", err)
	}
	return count, nil
}

// SymbioticOperatorAt gets the operator address at an index in the registry
func (c *ChainClient) SymbioticOperatorAt(ctx context.Context, index *big.Int) (common.Address, error) {
	opts := &bind.CallOpts{Context: ctx}
	operator, err := c.operatorRegistry.Entity(opts, index)
	if err != nil {
		return common.Address{}, fmt.Errorf("[ChainClient] failed to get symbiotic operator at index %s: %w", index, err)
	}
	return operator, nil
}

// Network opt-in service methods

// OptInNetwork opts the signer into a network
func (c *ChainClient) OptInNetwork(ctx context.Context, network common.Address) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.networkOptIn.OptIn(opts, network)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to opt into network: %w", err)
	}
	return tx, nil
}

// OptOutNetwork opts the signer out of a network
func (c *ChainClient) OptOutNetwork(ctx context.Context, network common.Address) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.networkOptIn.OptOut(opts, network)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to opt out of network: %w", err)
	}
	return tx, nil
}

// IsOptedInNetwork checks if an operator is opted into a network
func (c *ChainClient) IsOptedInNetwork(ctx context.Context, operator, network common.Address) (bool, error) {
	opts := &bind.CallOpts{Context: ctx}
	optedIn, err := c.networkOptIn.IsOptedIn(opts, operator, network)
	if err != nil {
		return false, fmt.Errorf("[ChainClient] failed to check network opt-in: %w", err)
	}
	return optedIn, nil
}

// NetworkOptInNonce gets the opt-in nonce for an operator/network pair
func (c *ChainClient) NetworkOptInNonce(ctx context.Context, operator, network common.Address) (*big.Int, error) {
	opts := &bind.CallOpts{Context: ctx}
	nonce, err := c.networkOptIn.Nonces(opts, operator, network)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get network opt-in nonce: %w", err)
	}
	return nonce, nil
}

// Vault opt-in service methods

// OptInVault opts the signer into a vault
func (c *ChainClient) OptInVault(ctx context.Context, vault common.Address) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.vaultOptIn.OptIn(opts, vault)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to opt into vault: %w", err)
	}
	return tx, nil
}

// OptOutVault opts the signer out of a vault
func (c *ChainClient) OptOutVault(ctx context.Context, vault common.Address) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.vaultOptIn.OptOut(opts, vault)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to opt out of vault: %w", err)
	}
	return tx, nil
}

// IsOptedInVault checks if an operator is opted into a vault
func (c *ChainClient) IsOptedInVault(ctx context.Context, operator, vault common.Address) (bool, error) {
	opts := &bind.CallOpts{Context: ctx}
	optedIn, err := c.vaultOptIn.IsOptedIn(opts, operator, vault)
	if err != nil {
		return false, fmt.Errorf("[ChainClient] failed to check vault opt-in: %w", err)
	}
	return optedIn, nil
}

// VaultOptInNonce gets the opt-in nonce for an operator/vault pair
func (c *ChainClient) VaultOptInNonce(ctx context.Context, operator, vault common.Address) (*big.Int, error) {
	opts := &bind.CallOpts{Context: ctx}
	nonce, err := c.vaultOptIn.Nonces(opts, operator, vault)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get vault opt-in nonce: %w", err)
	}
	return nonce, nil
}

// WatchNetworkOptIn watches for network opt-in events
func (c *ChainClient) WatchNetworkOptIn(opts *bind.WatchOpts, sink chan<- *contracts.OptInEvent) (event.Subscription, error) {
	contractEvents := make(chan *bindings.OptInServiceOptIn)

	sub, err := c.networkOptIn.WatchOptIn(opts, contractEvents, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to watch for opt-in events: %w", err)
	}

	go func() {
		defer sub.Unsubscribe()
		for {
			select {
			case ev := <-contractEvents:
				sink <- &contracts.OptInEvent{
					Who:         ev.Who,
					Where:       ev.Where,
					BlockNumber: ev.Raw.BlockNumber,
				}
			case <-sub.Err():
				return
			}
		}
	}()

	return sub, nil
}
