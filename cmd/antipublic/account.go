package main

import (
	"fmt"

	"github.com/spf13/cobra"

	antipublic "github.com/lolzteam/antipublic-go"
)

// accessCmd represents the access command
var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Check whether the token can reach the service",
	Run: func(cmd *cobra.Command, args []string) {
		ap := mustClient()

		res, err := ap.Account.Access.Call(cmd.Context(), antipublic.NoArgs{})
		if err != nil {
			fail(err)
		}

		status := red("denied")
		if res.Success {
			status = green("ok")
		}
		plus := red("no")
		if res.Plus {
			plus = green("yes")
		}

		fmt.Printf("Access: %s\n", status)
		fmt.Printf("Plus:   %s\n", plus)
	},
}

// queriesCmd represents the queries command
var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Show the remaining search queries per field",
	Run: func(cmd *cobra.Command, args []string) {
		ap := mustClient()

		res, err := ap.Account.Queries.Call(cmd.Context(), antipublic.NoArgs{})
		if err != nil {
			fail(err)
		}

		fmt.Printf("%s\n", white("=== Available Queries ==="))
		fmt.Printf("Email:    %d\n", res.Email)
		fmt.Printf("Password: %d\n", res.Password)
		fmt.Printf("Domain:   %d\n", res.Domain)
	},
}

func init() {
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(queriesCmd)
}
