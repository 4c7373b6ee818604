package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Byzantine-Finance/operator-sdk/pkg/operator"
)

var statusCmd = &cobra.Command{
	Use:   "status [address]",
	Short: "Show an operator's registration status",
	Long: `Show an operator's registration status across protocols. With no
argument the signer's own address is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient(len(args) == 0)
	if err != nil {
		return err
	}
	defer client.Close()

	var addr common.Address
	if len(args) == 1 {
		addr, err = operator.ParseAddress(args[0])
		if err != nil {
			return err
		}
	} else {
		addr = client.Address()
	}

	ctx := cmd.Context()

	record, err := client.GetOperator(ctx, addr)
	if err != nil {
		return fmt.Errorf("failed to query native registry: %w", err)
	}

	symbiotic, err := client.IsSymbioticOperator(ctx, addr)
	if err != nil {
		return fmt.Errorf("failed to query symbiotic registry: %w", err)
	}

	fmt.Printf("Operator: %s (chain %d)\n", addr.Hex(), client.ChainID())
	if record.Registered {
		fmt.Printf("Native:    registered as %q, fee %s bps\n", record.Name, record.Fee)
	} else {
		fmt.Println("Native:    not registered")
	}
	if symbiotic {
		fmt.Println("Symbiotic: registered")
	} else {
		fmt.Println("Symbiotic: not registered")
	}
	return nil
}
