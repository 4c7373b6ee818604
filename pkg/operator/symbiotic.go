package operator

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Symbiotic methods. The operator registry takes no arguments beyond the
// signer; the opt-in services take the network or vault address to opt into.

// RegisterSymbioticOperator registers the signer in the Symbiotic operator registry
func (c *Client) RegisterSymbioticOperator(ctx context.Context) (tx *types.Transaction, err error) {
	defer c.observe("symbiotic", "registerOperator", time.Now(), &err)
	c.logger.Debug().Msg("registering symbiotic operator")
	return c.chain.RegisterSymbioticOperator(ctx)
}

// IsSymbioticOperator checks if an address is a registered Symbiotic operator
func (c *Client) IsSymbioticOperator(ctx context.Context, operator common.Address) (registered bool, err error) {
	defer c.observe("symbiotic", "isEntity", time.Now(), &err)
	if err := validateAddress(operator); err != nil {
		return false, err
	}
	return c.chain.IsSymbioticOperator(ctx, operator)
}

// SymbioticOperatorCount gets the number of registered Symbiotic operators
func (c *Client) SymbioticOperatorCount(ctx context.Context) (count *big.Int, err error) {
	defer c.observe("symbiotic", "totalEntities", time.Now(), &err)
	return c.chain.SymbioticOperatorCount(ctx)
}

// SymbioticOperatorAt gets the operator address at an index in the registry
func (c *Client) SymbioticOperatorAt(ctx context.Context, index *big.Int) (operator common.Address, err error) {
	defer c.observe("symbiotic", "entity", time.Now(), &err)
	return c.chain.SymbioticOperatorAt(ctx, index)
}

// OptInNetwork opts the signer into a network
func (c *Client) OptInNetwork(ctx context.Context, network common.Address) (tx *types.Transaction, err error) {
	defer c.observe("symbiotic", "networkOptIn", time.Now(), &err)
	if err := validateAddress(network); err != nil {
		return nil, err
	}
	c.logger.Debug().Str("network", network.Hex()).Msg("opting into network")
	return c.chain.OptInNetwork(ctx, network)
}

// OptOutNetwork opts the signer out of a network
func (c *Client) OptOutNetwork(ctx context.Context, network common.Address) (tx *types.Transaction, err error) {
	defer c.observe("symbiotic", "networkOptOut", time.Now(), &err)
	if err := validateAddress(network); err != nil {
		return nil, err
	}
	return c.chain.OptOutNetwork(ctx, network)
}

// IsOptedInNetwork checks if an operator is opted into a network
func (c *Client) IsOptedInNetwork(ctx context.Context, operator, network common.Address) (optedIn bool, err error) {
	defer c.observe("symbiotic", "networkIsOptedIn", time.Now(), &err)
	if err := validateAddress(operator); err != nil {
		return false, err
	}
	if err := validateAddress(network); err != nil {
		return false, err
	}
	return c.chain.IsOptedInNetwork(ctx, operator, network)
}

// NetworkOptInNonce gets the opt-in nonce for an operator/network pair
func (c *Client) NetworkOptInNonce(ctx context.Context, operator, network common.Address) (nonce *big.Int, err error) {
	defer c.observe("symbiotic", "networkNonces", time.Now(), &err)
	if err := validateAddress(operator); err != nil {
		return nil, err
	}
	if err := validateAddress(network); err != nil {
		return nil, err
	}
	return c.chain.NetworkOptInNonce(ctx, operator, network)
}

// OptInVault opts the signer into a vault
func (c *Client) OptInVault(ctx context.Context, vault common.Address) (tx *types.Transaction, err error) {
	defer c.observe("symbiotic", "vaultOptIn", time.Now(), &err)
	if err := validateAddress(vault); err != nil {
		return nil, err
	}
	c.logger.Debug().Str("vault", vault.Hex()).Msg("opting into vault")
	return c.chain.OptInVault(ctx, vault)
}

// OptOutVault opts the signer out of a vault
func (c *Client) OptOutVault(ctx context.Context, vault common.Address) (tx *types.Transaction, err error) {
	defer c.observe("symbiotic", "vaultOptOut", time.Now(), &err)
	if err := validateAddress(vault); err != nil {
		return nil, err
	}
	return c.chain.OptOutVault(ctx, vault)
}

// IsOptedInVault checks if an operator is opted into a vault
func (c *Client) IsOptedInVault(ctx context.Context, operator, vault common.Address) (optedIn bool, err error) {
	defer c.observe("symbiotic", "vaultIsOptedIn", time.Now(), &err)
	if err := validateAddress(operator); err != nil {
		return false, err
	}
	if err := validateAddress(vault); err != nil {
		return false, err
	}
	return c.chain.IsOptedInVault(ctx, operator, vault)
}

// VaultOptInNonce gets the opt-in nonce for an operator/vault pair
func (c *Client) VaultOptInNonce(ctx context.Context, operator, vault common.Address) (nonce *big.Int, err error) {
	defer c.observe("symbiotic", "vaultNonces", time.Now(), &err)
	if err := validateAddress(operator); err != nil {
		return nil, err
	}
	if err := validateAddress(vault); err != nil {
		return nil, err
	}
	return c.chain.VaultOptInNonce(ctx, operator, vault)
}
