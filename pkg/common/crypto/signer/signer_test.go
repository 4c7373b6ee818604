package signer_test

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Byzantine-Finance/operator-sdk/pkg/common/crypto/signer"
)

func TestPrivateKeySigner(t *testing.T) {
	privateKeyHex := "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	require.NoError(t, err)
	chainID := big.NewInt(1)

	s, err := signer.NewPrivateKeySigner(privateKeyHex)
	require.NoError(t, err)

	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	require.Equal(t, address, s.Address())

	signerFn, err := s.SignerFn(chainID)
	require.NoError(t, err)

	tx := types.NewTx(&types.DynamicFeeTx{
		Nonce:   0,
		Value:   big.NewInt(0),
		ChainID: chainID,
		Data:    common.Hex2Bytes("4f180e2200000000000000000000000000000000000000000000000000000000000003e8"),
	})
	signedTx, err := signerFn(address, tx)
	require.NoError(t, err)

	// Verify the sender address of the signed transaction
	from, err := types.Sender(types.LatestSignerForChainID(chainID), signedTx)
	require.NoError(t, err)
	require.Equal(t, address, from)
}

func TestPrivateKeySignerWithPrefix(t *testing.T) {
	withPrefix, err := signer.NewPrivateKeySigner("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	withoutPrefix, err := signer.NewPrivateKeySigner("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	assert.Equal(t, withoutPrefix.Address(), withPrefix.Address())

	_, err = signer.NewPrivateKeySigner("not-hex")
	require.Error(t, err)
}

func TestKeystoreSigner(t *testing.T) {
	tmpDir := t.TempDir()
	password := "testpass"

	operatorKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	ks := keystore.NewKeyStore(tmpDir, keystore.LightScryptN, keystore.LightScryptP)
	_, err = ks.ImportECDSA(operatorKey, password)
	require.NoError(t, err)

	files, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	keystorePath := filepath.Join(tmpDir, files[0].Name())

	s, err := signer.NewLocalSigner(keystorePath, password)
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(operatorKey.PublicKey), s.Address())

	// Wrong password must fail
	_, err = signer.NewLocalSigner(keystorePath, "wrong")
	require.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *signer.Config
		wantErr bool
	}{
		{
			name: "private_key",
			cfg: &signer.Config{
				PrivateKey: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
			},
		},
		{
			name: "private_key_wins_over_keystore",
			cfg: &signer.Config{
				KeystorePath: "/nonexistent/keystore.json",
				PrivateKey:   "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
			},
		},
		{
			name:    "empty_config",
			cfg:     &signer.Config{},
			wantErr: true,
		},
		{
			name:    "nil_config",
			cfg:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := signer.NewFromConfig(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, common.Address{}, s.Address())
		})
	}
}

func TestSignAndVerify(t *testing.T) {
	s, err := signer.NewPrivateKeySigner("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)

	message := []byte("test message")
	sig, err := s.Sign(message)
	require.NoError(t, err)

	assert.True(t, signer.VerifySignature(s.Address(), message, sig))
	assert.False(t, signer.VerifySignature(s.Address(), []byte("other message"), sig))

	other, err := crypto.GenerateKey()
	require.NoError(t, err)
	assert.False(t, signer.VerifySignature(crypto.PubkeyToAddress(other.PublicKey), message, sig))
}

func TestTransactOpts(t *testing.T) {
	s, err := signer.NewPrivateKeySigner("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)

	ctx := context.Background()
	opts, err := signer.TransactOpts(ctx, s, big.NewInt(17000))
	require.NoError(t, err)

	assert.Equal(t, s.Address(), opts.From)
	assert.Equal(t, ctx, opts.Context)
	assert.NotNil(t, opts.Signer)
}
