package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/Layr-Labs/eigensdk-go/signerv2"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// LocalSigner implements Signer using an in-memory ECDSA key loaded from an
// encrypted keystore file or a raw hex string.
type LocalSigner struct {
	operatorKey *ecdsa.PrivateKey
	address     ethcommon.Address
}

// NewLocalSigner creates a signer from an encrypted keystore file
func NewLocalSigner(keystorePath string, password string) (*LocalSigner, error) {
	keyJson, err := os.ReadFile(keystorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore file: %w", err)
	}
	key, err := keystore.DecryptKey(keyJson, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore: %w", err)
	}

	return &LocalSigner{
		operatorKey: key.PrivateKey,
		address:     crypto.PubkeyToAddress(key.PrivateKey.PublicKey),
	}, nil
}

// NewPrivateKeySigner creates a signer from a raw hex private key
func NewPrivateKeySigner(privateKeyHex string) (*LocalSigner, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &LocalSigner{
		operatorKey: privateKey,
		address:     crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// NewFromConfig creates a signer from a signer config. A raw private key
// takes precedence over a keystore path.
func NewFromConfig(cfg *Config) (*LocalSigner, error) {
	if cfg == nil || !cfg.IsValid() {
		return nil, fmt.Errorf("invalid signer config: keystore path or private key required")
	}
	if cfg.PrivateKey != "" {
		return NewPrivateKeySigner(cfg.PrivateKey)
	}
	return NewLocalSigner(cfg.KeystorePath, cfg.Password)
}

// Address returns the operator's address
func (s *LocalSigner) Address() ethcommon.Address {
	return s.address
}

// SignerFn returns a transaction signing function for the given chain
func (s *LocalSigner) SignerFn(chainID *big.Int) (bind.SignerFn, error) {
	signerFn, err := signerv2.PrivateKeySignerFn(s.operatorKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create signer fn: %w", err)
	}
	return signerFn, nil
}

// Sign signs the message with the operator key
func (s *LocalSigner) Sign(message []byte) ([]byte, error) {
	hash := crypto.Keccak256Hash(message)

	signature, err := crypto.Sign(hash.Bytes(), s.operatorKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	return signature, nil
}

// TransactOpts builds transaction options for a write call on the given chain
func TransactOpts(ctx context.Context, s Signer, chainID *big.Int) (*bind.TransactOpts, error) {
	signerFn, err := s.SignerFn(chainID)
	if err != nil {
		return nil, err
	}
	return &bind.TransactOpts{
		From:    s.Address(),
		Signer:  signerFn,
		Context: ctx,
	}, nil
}

// VerifySignature verifies if the signature was signed by the given address
func VerifySignature(address ethcommon.Address, message []byte, signature []byte) bool {
	hash := crypto.Keccak256Hash(message)

	pubkey, err := crypto.SigToPub(hash.Bytes(), signature)
	if err != nil {
		return false
	}

	recoveredAddr := crypto.PubkeyToAddress(*pubkey)
	return address == recoveredAddr
}
