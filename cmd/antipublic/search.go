package main

import (
	"fmt"

	"github.com/spf13/cobra"

	antipublic "github.com/lolzteam/antipublic-go"
)

var (
	searchBy        string
	searchDirection string
	searchPageToken string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search leaked credentials by email, password, or domain",
	Long: `Search the Antipublic database for leaked credentials.

The query is matched against the field named by --by. Domain and email
searches accept --direction start (prefix match) or strict (exact match).
Pass the pageToken printed with a previous result to fetch the next page.

Examples:
  antipublic search user@mail.ru
  antipublic search --by domain --direction strict mail.ru
  antipublic search --by password qwerty --page-token CAE=`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		searchArgs, err := buildSearchArgs(args)
		if err != nil {
			fail(err)
		}

		ap := mustClient()

		var res *antipublic.SearchResult
		err = spin(fmt.Sprintf("Searching by %s...", searchBy), func() error {
			var callErr error
			res, callErr = ap.Search.Call(cmd.Context(), searchArgs)
			return callErr
		})
		if err != nil {
			fail(err)
		}

		if len(res.Results) == 0 {
			fmt.Println("No results")
			return
		}

		for _, hit := range res.Results {
			fmt.Printf("%s:%s\n", hit.Email, hit.Password)
		}
		if res.PageToken != "" {
			fmt.Printf("\nNext page: %s\n", cyan(res.PageToken))
		}
	},
}

func buildSearchArgs(args []string) (antipublic.SearchArgs, error) {
	by := antipublic.SearchBy(searchBy)
	switch by {
	case antipublic.SearchByEmail, antipublic.SearchByPassword, antipublic.SearchByDomain:
	default:
		return antipublic.SearchArgs{}, fmt.Errorf("unknown --by value %q (want email, password, or domain)", searchBy)
	}

	out := antipublic.SearchArgs{
		By:        by,
		Query:     map[antipublic.SearchBy]string{by: args[0]},
		PageToken: searchPageToken,
	}

	if searchDirection != "" {
		dir := antipublic.SearchDirection(searchDirection)
		if dir != antipublic.MatchStart && dir != antipublic.MatchStrict {
			return antipublic.SearchArgs{}, fmt.Errorf("unknown --direction value %q (want start or strict)", searchDirection)
		}
		out.Direction = map[antipublic.SearchBy]antipublic.SearchDirection{by: dir}
	}

	return out, nil
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchBy, "by", "email", "Search field: email, password, or domain")
	searchCmd.Flags().StringVar(&searchDirection, "direction", "", "Match direction: start or strict")
	searchCmd.Flags().StringVar(&searchPageToken, "page-token", "", "Continuation token from a previous page")
}
