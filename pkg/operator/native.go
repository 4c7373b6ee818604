package operator

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Byzantine-Finance/operator-sdk/internal/metric"
	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts"
)

// Native registry methods. Each method validates its inputs, then delegates
// to the chain client.

// RegisterOperator registers the signer as a native operator with a display
// name and a fee in basis points.
func (c *Client) RegisterOperator(ctx context.Context, name string, fee *big.Int) (tx *types.Transaction, err error) {
	defer c.observe("native", "registerOperator", time.Now(), &err)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateFee(fee); err != nil {
		return nil, err
	}
	c.logger.Debug().Str("name", name).Str("fee", fee.String()).Msg("registering native operator")
	return c.chain.RegisterOperator(ctx, name, fee)
}

// UpdateOperatorName updates the signer's operator display name
func (c *Client) UpdateOperatorName(ctx context.Context, name string) (tx *types.Transaction, err error) {
	defer c.observe("native", "updateOperatorName", time.Now(), &err)
	if err := validateName(name); err != nil {
		return nil, err
	}
	return c.chain.UpdateOperatorName(ctx, name)
}

// UpdateOperatorFee updates the signer's operator fee in basis points
func (c *Client) UpdateOperatorFee(ctx context.Context, fee *big.Int) (tx *types.Transaction, err error) {
	defer c.observe("native", "updateOperatorFee", time.Now(), &err)
	if err := validateFee(fee); err != nil {
		return nil, err
	}
	return c.chain.UpdateOperatorFee(ctx, fee)
}

// DeregisterOperator removes the signer from the native registry
func (c *Client) DeregisterOperator(ctx context.Context) (tx *types.Transaction, err error) {
	defer c.observe("native", "deregisterOperator", time.Now(), &err)
	return c.chain.DeregisterOperator(ctx)
}

// IsOperatorRegistered checks if an operator is registered in the native registry
func (c *Client) IsOperatorRegistered(ctx context.Context, operator common.Address) (registered bool, err error) {
	defer c.observe("native", "operatorRegistered", time.Now(), &err)
	if err := validateAddress(operator); err != nil {
		return false, err
	}
	return c.chain.IsOperatorRegistered(ctx, operator)
}

// GetOperator gets the native registry record for an operator
func (c *Client) GetOperator(ctx context.Context, operator common.Address) (record contracts.Operator, err error) {
	defer c.observe("native", "getOperator", time.Now(), &err)
	if err := validateAddress(operator); err != nil {
		return contracts.Operator{}, err
	}
	return c.chain.GetOperator(ctx, operator)
}

func (c *Client) observe(protocol, method string, start time.Time, err *error) {
	metric.RecordContractCall(protocol, method, time.Since(start))
	if *err != nil {
		metric.RecordContractError(protocol, method)
	}
}
