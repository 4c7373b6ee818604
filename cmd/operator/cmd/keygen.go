package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var keygenDir string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an encrypted operator keystore",
	Long: `Generate a new ECDSA operator key and store it as an encrypted
keystore file. The keystore password is taken from --password or the
OPERATOR_KEYSTORE_PASSWORD environment variable.`,
	RunE: runKeygen,
}

func init() {
	keygenCmd.Flags().StringVar(&keygenDir, "dir", "keys", "directory to write the keystore into")
	rootCmd.AddCommand(keygenCmd)
}

func runKeygen(cmd *cobra.Command, args []string) error {
	pass := password
	if pass == "" {
		pass = os.Getenv("OPERATOR_KEYSTORE_PASSWORD")
	}
	if pass == "" {
		return fmt.Errorf("--password or OPERATOR_KEYSTORE_PASSWORD is required")
	}

	if err := os.MkdirAll(keygenDir, 0o755); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}

	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	ks := keystore.NewKeyStore(keygenDir, keystore.StandardScryptN, keystore.StandardScryptP)
	account, err := ks.ImportECDSA(privateKey, pass)
	if err != nil {
		return fmt.Errorf("failed to import key: %w", err)
	}

	// Rename the UTC-- file to something readable
	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	newPath := filepath.Join(keygenDir, fmt.Sprintf("operator-%s.key.json", strings.ToLower(address.Hex()[2:10])))
	if err := os.Rename(account.URL.Path, newPath); err != nil {
		return fmt.Errorf("failed to rename keystore: %w", err)
	}

	fmt.Printf("Address:  %s\n", address.Hex())
	fmt.Printf("Keystore: %s\n", newPath)
	return nil
}
