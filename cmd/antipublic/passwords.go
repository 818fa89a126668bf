package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	antipublic "github.com/lolzteam/antipublic-go"
)

var (
	passwordsLimit int
	passwordsFile  string
)

// passwordsCmd represents the passwords command
var passwordsCmd = &cobra.Command{
	Use:   "passwords [email ...]",
	Short: "Fetch leaked passwords for email addresses",
	Long: `Fetch known leaked passwords for one or more email addresses.

Emails are taken from the arguments, from --file, or from stdin when
neither is given.

Examples:
  antipublic passwords user@mail.ru
  antipublic passwords --limit 10 --file emails.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		pwArgs, err := buildPasswordsArgs(args)
		if err != nil {
			fail(err)
		}

		ap := mustClient()

		var res *antipublic.EmailPasswords
		err = spin(fmt.Sprintf("Fetching passwords for %d emails...", len(pwArgs.Emails)), func() error {
			var callErr error
			res, callErr = ap.Passwords.Call(cmd.Context(), pwArgs)
			return callErr
		})
		if err != nil {
			fail(err)
		}

		for _, email := range pwArgs.Emails {
			passwords := res.Results[email]
			fmt.Printf("%s (%d)\n", cyan(email), len(passwords))
			for _, pw := range passwords {
				fmt.Printf("  %s\n", pw)
			}
		}
	},
}

func buildPasswordsArgs(args []string) (antipublic.PasswordsArgs, error) {
	emails, err := readInputs(args, passwordsFile)
	if err != nil {
		return antipublic.PasswordsArgs{}, err
	}
	if len(emails) == 0 {
		return antipublic.PasswordsArgs{}, errors.New("no emails to look up")
	}

	return antipublic.PasswordsArgs{Emails: emails, Limit: passwordsLimit}, nil
}

func init() {
	rootCmd.AddCommand(passwordsCmd)

	passwordsCmd.Flags().IntVar(&passwordsLimit, "limit", 0, "Max passwords per email (0 = service default)")
	passwordsCmd.Flags().StringVar(&passwordsFile, "file", "", "Read emails from a file instead of the arguments")
}
