package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Command-line toolkit for the loanledger server",
	Long: `ledgerctl runs and manages the loanledger API server.

The server keeps a multi-tenant ledger of fixed-rate loans, computes
amortization schedules on demand, and lets loan owners grant other users
read access.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main(). It only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
