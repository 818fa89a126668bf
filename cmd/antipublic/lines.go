package main

import (
	"fmt"

	"github.com/spf13/cobra"

	antipublic "github.com/lolzteam/antipublic-go"
)

var linesPlain bool

// linesCmd represents the lines command
var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Show the total number of lines in the database",
	Run: func(cmd *cobra.Command, args []string) {
		ap := mustClient()

		var res *antipublic.LineCount
		err := spin("Counting lines...", func() error {
			var callErr error
			res, callErr = ap.Info.Lines.Call(cmd.Context(), antipublic.LinesArgs{Plain: linesPlain})
			return callErr
		})
		if err != nil {
			fail(err)
		}

		fmt.Println(res.Count)
	},
}

func init() {
	rootCmd.AddCommand(linesCmd)

	linesCmd.Flags().BoolVar(&linesPlain, "plain", false, "Use the plain-text endpoint")
}
