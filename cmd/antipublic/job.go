package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	antipublic "github.com/lolzteam/antipublic-go"
	"github.com/lolzteam/antipublic-go/batch"
	"github.com/lolzteam/antipublic-go/call"
)

var jobID string

// jobCmd represents the job command
var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Capture an operation as a batch job descriptor",
	Long: `Capture an operation as a batch job descriptor without calling the service.

The subcommands take the same arguments as their live counterparts and
print the JSON descriptor for inclusion in a batch payload. Omitting
--id assigns a random one.

Examples:
  antipublic job check user@mail.ru:hunter2 --insert --id 7
  antipublic job lines --plain`,
}

var jobCheckCmd = &cobra.Command{
	Use:   "check [line ...]",
	Short: "Capture a check call",
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs, err := buildCheckArgs(args)
		if err != nil {
			fail(err)
		}
		capture(cmd, captureClient().Check, checkArgs)
	},
}

var jobSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Capture a search call",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		searchArgs, err := buildSearchArgs(args)
		if err != nil {
			fail(err)
		}
		capture(cmd, captureClient().Search, searchArgs)
	},
}

var jobPasswordsCmd = &cobra.Command{
	Use:   "passwords [email ...]",
	Short: "Capture a passwords call",
	Run: func(cmd *cobra.Command, args []string) {
		pwArgs, err := buildPasswordsArgs(args)
		if err != nil {
			fail(err)
		}
		capture(cmd, captureClient().Passwords, pwArgs)
	},
}

var jobLinesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Capture a line count call",
	Run: func(cmd *cobra.Command, args []string) {
		capture(cmd, captureClient().Info.Lines, antipublic.LinesArgs{Plain: linesPlain})
	},
}

var jobVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Capture a version call",
	Run: func(cmd *cobra.Command, args []string) {
		capture(cmd, captureClient().Info.Version, antipublic.NoArgs{})
	},
}

var jobAccessCmd = &cobra.Command{
	Use:   "access",
	Short: "Capture an access check call",
	Run: func(cmd *cobra.Command, args []string) {
		capture(cmd, captureClient().Account.Access, antipublic.NoArgs{})
	},
}

var jobQueriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Capture an available queries call",
	Run: func(cmd *cobra.Command, args []string) {
		capture(cmd, captureClient().Account.Queries, antipublic.NoArgs{})
	},
}

// captureClient builds a client for capture-only commands. Captures never
// dial the service, so a placeholder token is accepted.
func captureClient() *antipublic.Client {
	if viper.GetString("token") == "" {
		viper.Set("token", "capture-only")
	}
	return mustClient()
}

func capture[A, R any](cmd *cobra.Command, op call.Op[A, R], args A) {
	var opts []batch.JobOption
	if jobID != "" {
		opts = append(opts, batch.WithID(jobID))
	}

	job, err := op.Job(cmd.Context(), args, opts...)
	if err != nil {
		fail(err)
	}

	raw, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		fail(err)
	}

	fmt.Println(string(raw))
}

func init() {
	rootCmd.AddCommand(jobCmd)
	jobCmd.AddCommand(jobCheckCmd, jobSearchCmd, jobPasswordsCmd, jobLinesCmd, jobVersionCmd, jobAccessCmd, jobQueriesCmd)

	jobCmd.PersistentFlags().StringVar(&jobID, "id", "", "Job id (default random)")

	jobCheckCmd.Flags().BoolVar(&checkInsert, "insert", false, "Insert unknown lines into the database")
	jobCheckCmd.Flags().StringVar(&checkFile, "file", "", "Read lines from a file instead of the arguments")

	jobSearchCmd.Flags().StringVar(&searchBy, "by", "email", "Search field: email, password, or domain")
	jobSearchCmd.Flags().StringVar(&searchDirection, "direction", "", "Match direction: start or strict")
	jobSearchCmd.Flags().StringVar(&searchPageToken, "page-token", "", "Continuation token from a previous page")

	jobPasswordsCmd.Flags().IntVar(&passwordsLimit, "limit", 0, "Max passwords per email (0 = service default)")
	jobPasswordsCmd.Flags().StringVar(&passwordsFile, "file", "", "Read emails from a file instead of the arguments")

	jobLinesCmd.Flags().BoolVar(&linesPlain, "plain", false, "Use the plain-text endpoint")
}
