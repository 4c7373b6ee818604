package operator

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts"
	"github.com/Byzantine-Finance/operator-sdk/pkg/config"
)

var (
	testOperator = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	testNetwork  = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	testVault    = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
)

func newTestClient(chain contracts.Client) *Client {
	return newClient(config.HoleskyChainID, chain, nil)
}

func TestRegisterOperatorValidation(t *testing.T) {
	tx := types.NewTx(&types.DynamicFeeTx{Nonce: 0})

	tests := []struct {
		name     string
		opName   string
		fee      *big.Int
		wantErr  error
		wantCall bool
	}{
		{name: "valid", opName: "operator-one", fee: big.NewInt(100), wantCall: true},
		{name: "zero_fee", opName: "operator-one", fee: big.NewInt(0), wantCall: true},
		{name: "max_fee", opName: "operator-one", fee: big.NewInt(MaxOperatorFee), wantCall: true},
		{name: "empty_name", opName: "", fee: big.NewInt(100), wantErr: ErrEmptyName},
		{name: "nil_fee", opName: "operator-one", fee: nil, wantErr: ErrFeeOutOfRange},
		{name: "negative_fee", opName: "operator-one", fee: big.NewInt(-1), wantErr: ErrFeeOutOfRange},
		{name: "fee_above_max", opName: "operator-one", fee: big.NewInt(MaxOperatorFee + 1), wantErr: ErrFeeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := new(MockChainClient)
			if tt.wantCall {
				chain.On("RegisterOperator", mock.Anything, tt.opName, tt.fee).Return(tx, nil)
			}

			client := newTestClient(chain)
			got, err := client.RegisterOperator(context.Background(), tt.opName, tt.fee)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tx, got)
			}
			chain.AssertExpectations(t)
		})
	}
}

func TestUpdateOperatorValidation(t *testing.T) {
	chain := new(MockChainClient)
	client := newTestClient(chain)
	ctx := context.Background()

	_, err := client.UpdateOperatorName(ctx, "")
	assert.True(t, errors.Is(err, ErrEmptyName))

	_, err = client.UpdateOperatorFee(ctx, big.NewInt(MaxOperatorFee+1))
	assert.True(t, errors.Is(err, ErrFeeOutOfRange))

	// No contract call happens on validation failure
	chain.AssertNotCalled(t, "UpdateOperatorName")
	chain.AssertNotCalled(t, "UpdateOperatorFee")
}

func TestZeroAddressRejected(t *testing.T) {
	chain := new(MockChainClient)
	client := newTestClient(chain)
	ctx := context.Background()
	var zero common.Address

	_, err := client.IsOperatorRegistered(ctx, zero)
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	_, err = client.GetOperator(ctx, zero)
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	_, err = client.IsSymbioticOperator(ctx, zero)
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	_, err = client.OptInNetwork(ctx, zero)
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	_, err = client.OptOutVault(ctx, zero)
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	_, err = client.IsOptedInNetwork(ctx, testOperator, zero)
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	_, err = client.VaultOptInNonce(ctx, zero, testVault)
	assert.True(t, errors.Is(err, ErrInvalidAddress))
}

func TestNoSignerPropagated(t *testing.T) {
	chain := new(MockChainClient)
	chain.On("RegisterSymbioticOperator", mock.Anything).Return(nil, contracts.ErrNoSigner)

	client := newTestClient(chain)
	_, err := client.RegisterSymbioticOperator(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, contracts.ErrNoSigner))
	chain.AssertExpectations(t)
}

func TestChainErrorsPropagatedUnchanged(t *testing.T) {
	rpcErr := errors.New("execution reverted: OperatorNotFound")

	chain := new(MockChainClient)
	chain.On("GetOperator", mock.Anything, testOperator).Return(contracts.Operator{}, rpcErr)
	chain.On("DeregisterOperator", mock.Anything).Return(nil, rpcErr)

	client := newTestClient(chain)
	ctx := context.Background()

	_, err := client.GetOperator(ctx, testOperator)
	assert.Equal(t, rpcErr, err)

	_, err = client.DeregisterOperator(ctx)
	assert.Equal(t, rpcErr, err)
	chain.AssertExpectations(t)
}

func TestReadsDelegated(t *testing.T) {
	chain := new(MockChainClient)
	chain.On("IsOperatorRegistered", mock.Anything, testOperator).Return(true, nil)
	chain.On("GetOperator", mock.Anything, testOperator).Return(contracts.Operator{
		Name:       "operator-one",
		Fee:        big.NewInt(250),
		Registered: true,
	}, nil)
	chain.On("SymbioticOperatorCount", mock.Anything).Return(big.NewInt(7), nil)
	chain.On("SymbioticOperatorAt", mock.Anything, big.NewInt(3)).Return(testOperator, nil)
	chain.On("IsOptedInNetwork", mock.Anything, testOperator, testNetwork).Return(true, nil)
	chain.On("NetworkOptInNonce", mock.Anything, testOperator, testNetwork).Return(big.NewInt(2), nil)
	chain.On("IsOptedInVault", mock.Anything, testOperator, testVault).Return(false, nil)
	chain.On("VaultOptInNonce", mock.Anything, testOperator, testVault).Return(big.NewInt(0), nil)

	client := newTestClient(chain)
	ctx := context.Background()

	registered, err := client.IsOperatorRegistered(ctx, testOperator)
	require.NoError(t, err)
	assert.True(t, registered)

	record, err := client.GetOperator(ctx, testOperator)
	require.NoError(t, err)
	assert.Equal(t, "operator-one", record.Name)
	assert.Equal(t, big.NewInt(250), record.Fee)
	assert.True(t, record.Registered)

	count, err := client.SymbioticOperatorCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), count)

	addr, err := client.SymbioticOperatorAt(ctx, big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, testOperator, addr)

	optedIn, err := client.IsOptedInNetwork(ctx, testOperator, testNetwork)
	require.NoError(t, err)
	assert.True(t, optedIn)

	nonce, err := client.NetworkOptInNonce(ctx, testOperator, testNetwork)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), nonce)

	optedIn, err = client.IsOptedInVault(ctx, testOperator, testVault)
	require.NoError(t, err)
	assert.False(t, optedIn)

	nonce, err = client.VaultOptInNonce(ctx, testOperator, testVault)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), nonce)

	chain.AssertExpectations(t)
}

func TestOptInOutDelegated(t *testing.T) {
	tx := types.NewTx(&types.DynamicFeeTx{Nonce: 1})

	chain := new(MockChainClient)
	chain.On("OptInNetwork", mock.Anything, testNetwork).Return(tx, nil)
	chain.On("OptOutNetwork", mock.Anything, testNetwork).Return(tx, nil)
	chain.On("OptInVault", mock.Anything, testVault).Return(tx, nil)
	chain.On("OptOutVault", mock.Anything, testVault).Return(tx, nil)

	client := newTestClient(chain)
	ctx := context.Background()

	for _, call := range []func() (*types.Transaction, error){
		func() (*types.Transaction, error) { return client.OptInNetwork(ctx, testNetwork) },
		func() (*types.Transaction, error) { return client.OptOutNetwork(ctx, testNetwork) },
		func() (*types.Transaction, error) { return client.OptInVault(ctx, testVault) },
		func() (*types.Transaction, error) { return client.OptOutVault(ctx, testVault) },
	} {
		got, err := call()
		require.NoError(t, err)
		assert.Equal(t, tx, got)
	}
	chain.AssertExpectations(t)
}

func TestNewClientReadOnlyWithPasswordOnly(t *testing.T) {
	t.Setenv("OPERATOR_KEYSTORE_PASSWORD", "secret")

	// No signer section at all; only the env password leaks in
	content := `
chains:
  17000:
    rpc: http://localhost:8545
`
	path := filepath.Join(t.TempDir(), "operator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "secret", cfg.Signer.Password)

	client, err := NewClient(cfg, config.HoleskyChainID)
	require.NoError(t, err)
	defer client.Close()

	// Read-only client; a password without a key source is ignored
	assert.Equal(t, common.Address{}, client.Address())
}

func TestClientAccessors(t *testing.T) {
	chain := new(MockChainClient)
	chain.On("Close").Return(nil)

	client := newTestClient(chain)
	assert.Equal(t, config.HoleskyChainID, client.ChainID())

	// Read-only client has no signer address
	assert.Equal(t, common.Address{}, client.Address())

	require.NoError(t, client.Close())
	chain.AssertExpectations(t)
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "checksummed", input: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"},
		{name: "lowercase", input: "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"},
		{name: "no_prefix", input: "70997970C51812dc3A010C7d01b50e0d17dc79C8"},
		{name: "too_short", input: "0x7099", wantErr: true},
		{name: "not_hex", input: "0xZZ997970C51812dc3A010C7d01b50e0d17dc79C8", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAddress))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testOperator, addr)
		})
	}
}
