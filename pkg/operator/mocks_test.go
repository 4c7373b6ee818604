package operator

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/mock"

	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts"
)

// MockChainClient implements contracts.Client for testing
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) RegisterOperator(ctx context.Context, name string, fee *big.Int) (*types.Transaction, error) {
	args := m.Called(ctx, name, fee)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) UpdateOperatorName(ctx context.Context, name string) (*types.Transaction, error) {
	args := m.Called(ctx, name)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) UpdateOperatorFee(ctx context.Context, fee *big.Int) (*types.Transaction, error) {
	args := m.Called(ctx, fee)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) DeregisterOperator(ctx context.Context) (*types.Transaction, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) IsOperatorRegistered(ctx context.Context, operator common.Address) (bool, error) {
	args := m.Called(ctx, operator)
	return args.Bool(0), args.Error(1)
}

func (m *MockChainClient) GetOperator(ctx context.Context, operator common.Address) (contracts.Operator, error) {
	args := m.Called(ctx, operator)
	return args.Get(0).(contracts.Operator), args.Error(1)
}

func (m *MockChainClient) WatchOperatorRegistered(opts *bind.WatchOpts, sink chan<- *contracts.OperatorRegisteredEvent) (event.Subscription, error) {
	args := m.Called(opts, sink)
	sub, _ := args.Get(0).(event.Subscription)
	return sub, args.Error(1)
}

func (m *MockChainClient) RegisterSymbioticOperator(ctx context.Context) (*types.Transaction, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) IsSymbioticOperator(ctx context.Context, operator common.Address) (bool, error) {
	args := m.Called(ctx, operator)
	return args.Bool(0), args.Error(1)
}

func (m *MockChainClient) SymbioticOperatorCount(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(*big.Int)
	return count, args.Error(1)
}

func (m *MockChainClient) SymbioticOperatorAt(ctx context.Context, index *big.Int) (common.Address, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockChainClient) OptInNetwork(ctx context.Context, network common.Address) (*types.Transaction, error) {
	args := m.Called(ctx, network)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) OptOutNetwork(ctx context.Context, network common.Address) (*types.Transaction, error) {
	args := m.Called(ctx, network)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) IsOptedInNetwork(ctx context.Context, operator, network common.Address) (bool, error) {
	args := m.Called(ctx, operator, network)
	return args.Bool(0), args.Error(1)
}

func (m *MockChainClient) NetworkOptInNonce(ctx context.Context, operator, network common.Address) (*big.Int, error) {
	args := m.Called(ctx, operator, network)
	nonce, _ := args.Get(0).(*big.Int)
	return nonce, args.Error(1)
}

func (m *MockChainClient) OptInVault(ctx context.Context, vault common.Address) (*types.Transaction, error) {
	args := m.Called(ctx, vault)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) OptOutVault(ctx context.Context, vault common.Address) (*types.Transaction, error) {
	args := m.Called(ctx, vault)
	tx, _ := args.Get(0).(*types.Transaction)
	return tx, args.Error(1)
}

func (m *MockChainClient) IsOptedInVault(ctx context.Context, operator, vault common.Address) (bool, error) {
	args := m.Called(ctx, operator, vault)
	return args.Bool(0), args.Error(1)
}

func (m *MockChainClient) VaultOptInNonce(ctx context.Context, operator, vault common.Address) (*big.Int, error) {
	args := m.Called(ctx, operator, vault)
	nonce, _ := args.Get(0).(*big.Int)
	return nonce, args.Error(1)
}

func (m *MockChainClient) WatchNetworkOptIn(opts *bind.WatchOpts, sink chan<- *contracts.OptInEvent) (event.Subscription, error) {
	args := m.Called(opts, sink)
	sub, _ := args.Get(0).(event.Subscription)
	return sub, args.Error(1)
}

func (m *MockChainClient) ChainID() uint64 {
	args := m.Called()
	return args.Get(0).(uint64)
}

func (m *MockChainClient) Close() error {
	args := m.Called()
	return args.Error(0)
}
