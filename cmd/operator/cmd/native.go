package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
)

var (
	operatorName string
	operatorFee  int64
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register as a native operator",
	Long: `Register the signing key as a native operator with a display name
and a fee in basis points (1000 = 10%).`,
	RunE: runRegister,
}

var updateNameCmd = &cobra.Command{
	Use:   "update-name",
	Short: "Update the operator display name",
	RunE:  runUpdateName,
}

var updateFeeCmd = &cobra.Command{
	Use:   "update-fee",
	Short: "Update the operator fee",
	RunE:  runUpdateFee,
}

var deregisterCmd = &cobra.Command{
	Use:   "deregister",
	Short: "Deregister from the native registry",
	RunE:  runDeregister,
}

func init() {
	registerCmd.Flags().StringVar(&operatorName, "name", "", "operator display name")
	registerCmd.Flags().Int64Var(&operatorFee, "fee", 0, "operator fee in basis points")
	registerCmd.MarkFlagRequired("name")

	updateNameCmd.Flags().StringVar(&operatorName, "name", "", "operator display name")
	updateNameCmd.MarkFlagRequired("name")

	updateFeeCmd.Flags().Int64Var(&operatorFee, "fee", 0, "operator fee in basis points")
	updateFeeCmd.MarkFlagRequired("fee")

	rootCmd.AddCommand(registerCmd, updateNameCmd, updateFeeCmd, deregisterCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	client, err := newClient(true)
	if err != nil {
		return err
	}
	defer client.Close()

	tx, err := client.RegisterOperator(cmd.Context(), operatorName, big.NewInt(operatorFee))
	if err != nil {
		return fmt.Errorf("failed to register operator: %w", err)
	}
	fmt.Printf("Registration submitted: %s\n", tx.Hash().Hex())
	return nil
}

func runUpdateName(cmd *cobra.Command, args []string) error {
	client, err := newClient(true)
	if err != nil {
		return err
	}
	defer client.Close()

	tx, err := client.UpdateOperatorName(cmd.Context(), operatorName)
	if err != nil {
		return fmt.Errorf("failed to update operator name: %w", err)
	}
	fmt.Printf("Name update submitted: %s\n", tx.Hash().Hex())
	return nil
}

func runUpdateFee(cmd *cobra.Command, args []string) error {
	client, err := newClient(true)
	if err != nil {
		return err
	}
	defer client.Close()

	tx, err := client.UpdateOperatorFee(cmd.Context(), big.NewInt(operatorFee))
	if err != nil {
		return fmt.Errorf("failed to update operator fee: %w", err)
	}
	fmt.Printf("Fee update submitted: %s\n", tx.Hash().Hex())
	return nil
}

func runDeregister(cmd *cobra.Command, args []string) error {
	client, err := newClient(true)
	if err != nil {
		return err
	}
	defer client.Close()

	tx, err := client.DeregisterOperator(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to deregister operator: %w", err)
	}
	fmt.Printf("Deregistration submitted: %s\n", tx.Hash().Hex())
	return nil
}
