package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loanledger/pkg/db"
	"loanledger/pkg/server/service"
	gormstore "loanledger/pkg/server/store/gorm"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage ledger users",
	Long:  `Manage the users loans are owned by and shared with.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'user' requires a subcommand (create, list)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Register a user",
	Long: `Register a user on the ledger.

Example:
  ledgerctl user create alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		users := service.NewUserService(gormstore.NewUsersStore(database))
		user, err := users.CreateUser(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to create user:", err)
			os.Exit(1)
		}

		fmt.Printf("Created user %q with id %d\n", user.Username, user.ID)
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		users := service.NewUserService(gormstore.NewUsersStore(database))
		listed, err := users.ListUsers()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to list users:", err)
			os.Exit(1)
		}

		for _, user := range listed {
			fmt.Printf("%d\t%s\n", user.ID, user.Username)
		}
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userListCmd)
}
