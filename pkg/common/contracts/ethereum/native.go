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

// NativeRegistry methods

// RegisterOperator registers the signer in the native registry
func (c *ChainClient) RegisterOperator(ctx context.Context, name string, fee *big.Int) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.nativeRegistry.RegisterOperator(opts, name, fee)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to register operator: %w", err)
	}
	return tx, nil
}

// UpdateOperatorName updates the signer's operator display name
func (c *ChainClient) UpdateOperatorName(ctx context.Context, name string) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.nativeRegistry.UpdateOperatorName(opts, name)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to update operator name: %w", err)
	}
	return tx, nil
}

// UpdateOperatorFee updates the signer's operator fee
func (c *ChainClient) UpdateOperatorFee(ctx context.Context, fee *big.Int) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.nativeRegistry.UpdateOperatorFee(opts, fee)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to update operator fee: %w", err)
	}
	return tx, nil
}

// DeregisterOperator removes the signer from the native registry
func (c *ChainClient) DeregisterOperator(ctx context.Context) (*types.Transaction, error) {
	opts, err := c.txOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.nativeRegistry.DeregisterOperator(opts)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to deregister operator: %w", err)
	}
	return tx, nil
}

// IsOperatorRegistered checks if an operator is registered in the native registry
func (c *ChainClient) IsOperatorRegistered(ctx context.Context, operator common.Address) (bool, error) {
	opts := &bind.CallOpts{Context: ctx}
	registered, err := c.nativeRegistry.OperatorRegistered(opts, operator)
	if err != nil {
		return false, fmt.Errorf("[ChainClient] failed to check if operator is registered: %w", err)
	}
	return registered, nil
}

// GetOperator gets the registry record for an operator
func (c *ChainClient) GetOperator(ctx context.Context, operator common.Address) (contracts.Operator, error) {
	opts := &bind.CallOpts{Context: ctx}
	record, err := c.nativeRegistry.GetOperator(opts, operator)
	if err != nil {
		return contracts.Operator{}, fmt.Errorf("[ChainClient] failed to get operator: %w", err)
	}
	return contracts.Operator{
		Name:       record.Name,
		Fee:        record.Fee,
		Registered: record.Registered,
	}, nil
}

// WatchOperatorRegistered watches for native operator registered events
func (c *ChainClient) WatchOperatorRegistered(opts *bind.WatchOpts, sink chan<- *contracts.OperatorRegisteredEvent) (event.Subscription, error) {
	contractEvents := make(chan *bindings.NativeRegistryOperatorRegistered)

	sub, err := c.nativeRegistry.WatchOperatorRegistered(opts, contractEvents, nil)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to watch for operator registered events: %w", err)
	}

	go func() {
		defer sub.Unsubscribe()
		for {
			select {
			case ev := <-contractEvents:
				sink <- &contracts.OperatorRegisteredEvent{
					Operator:    ev.Operator,
					Name:        ev.Name,
					Fee:         ev.Fee,
					BlockNumber: ev.Raw.BlockNumber,
				}
			case <-sub.Err():
				return
			}
		}
	}()

	return sub, nil
}
