package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	antipublic "github.com/lolzteam/antipublic-go"
)

var (
	checkInsert bool
	checkFile   string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [line ...]",
	Short: "Check credential lines against the database",
	Long: `Check email:password lines against the Antipublic database.

Lines are taken from the arguments, from --file, or from stdin when
neither is given. Private lines are the ones the database has not seen;
use --insert to add them.

Examples:
  antipublic check user@mail.ru:hunter2
  antipublic check --file combo.txt --insert
  cat combo.txt | antipublic check`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs, err := buildCheckArgs(args)
		if err != nil {
			fail(err)
		}

		ap := mustClient()

		var res *antipublic.CheckResult
		err = spin(fmt.Sprintf("Checking %d lines...", len(checkArgs.Lines)), func() error {
			var callErr error
			res, callErr = ap.Check.Call(cmd.Context(), checkArgs)
			return callErr
		})
		if err != nil {
			fail(err)
		}

		fmt.Printf("%s\n", white("=== Check Results ==="))
		fmt.Printf("Checked: %d\n", res.Checked)
		fmt.Printf("Public:  %s\n", red(res.Checked-res.Private))
		fmt.Printf("Private: %s\n", green(res.Private))
		for _, line := range res.PrivateLines {
			fmt.Printf("  %s\n", line)
		}
	},
}

func buildCheckArgs(args []string) (antipublic.CheckArgs, error) {
	lines, err := readInputs(args, checkFile)
	if err != nil {
		return antipublic.CheckArgs{}, err
	}
	if len(lines) == 0 {
		return antipublic.CheckArgs{}, errors.New("no lines to check")
	}

	return antipublic.CheckArgs{Lines: lines, Insert: checkInsert}, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkInsert, "insert", false, "Insert unknown lines into the database")
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Read lines from a file instead of the arguments")
}
