package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/Byzantine-Finance/operator-sdk/pkg/operator"
)

var symbioticCmd = &cobra.Command{
	Use:   "symbiotic",
	Short: "Symbiotic registry and opt-in operations",
}

var symbioticRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register as a Symbiotic operator",
	RunE:  runSymbioticRegister,
}

var optInCmd = &cobra.Command{
	Use:   "opt-in {network|vault} <address>",
	Short: "Opt into a Symbiotic network or vault",
	Args:  cobra.ExactArgs(2),
	RunE:  runOptIn,
}

var optOutCmd = &cobra.Command{
	Use:   "opt-out {network|vault} <address>",
	Short: "Opt out of a Symbiotic network or vault",
	Args:  cobra.ExactArgs(2),
	RunE:  runOptOut,
}

func init() {
	symbioticCmd.AddCommand(symbioticRegisterCmd, optInCmd, optOutCmd)
	rootCmd.AddCommand(symbioticCmd)
}

func runSymbioticRegister(cmd *cobra.Command, args []string) error {
	client, err := newClient(true)
	if err != nil {
		return err
	}
	defer client.Close()

	tx, err := client.RegisterSymbioticOperator(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to register symbiotic operator: %w", err)
	}
	fmt.Printf("Registration submitted: %s\n", tx.Hash().Hex())
	return nil
}

func runOptIn(cmd *cobra.Command, args []string) error {
	return runOptInOut(cmd, args, "opt-in",
		(*operator.Client).OptInNetwork, (*operator.Client).OptInVault)
}

func runOptOut(cmd *cobra.Command, args []string) error {
	return runOptInOut(cmd, args, "opt-out",
		(*operator.Client).OptOutNetwork, (*operator.Client).OptOutVault)
}

func runOptInOut(
	cmd *cobra.Command,
	args []string,
	action string,
	networkFn func(*operator.Client, context.Context, common.Address) (*types.Transaction, error),
	vaultFn func(*operator.Client, context.Context, common.Address) (*types.Transaction, error),
) error {
	target, err := operator.ParseAddress(args[1])
	if err != nil {
		return err
	}

	client, err := newClient(true)
	if err != nil {
		return err
	}
	defer client.Close()

	var tx *types.Transaction
	switch args[0] {
	case "network":
		tx, err = networkFn(client, cmd.Context(), target)
	case "vault":
		tx, err = vaultFn(client, cmd.Context(), target)
	default:
		return fmt.Errorf("unknown target %q, expected network or vault", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	fmt.Printf("Transaction submitted: %s\n", tx.Hash().Hex())
	return nil
}
