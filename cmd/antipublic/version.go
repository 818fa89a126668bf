package main

import (
	"fmt"

	"github.com/spf13/cobra"

	antipublic "github.com/lolzteam/antipublic-go"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the service API version",
	Run: func(cmd *cobra.Command, args []string) {
		ap := mustClient()

		res, err := ap.Info.Version.Call(cmd.Context(), antipublic.NoArgs{})
		if err != nil {
			fail(err)
		}

		fmt.Println(res.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
