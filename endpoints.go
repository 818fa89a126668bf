package antipublic

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lolzteam/antipublic-go/rest"
)

// decode shapes a response body into a fresh T.
func decode[T any](resp *rest.Response) (*T, error) {
	out := new(T)
	if err := resp.Decode(out); err != nil {
		return nil, err
	}

	return out, nil
}

// checkLines tests credential lines against the database, optionally
// inserting the ones it does not already hold.
func checkLines(ctx context.Context, rq rest.Requester, args CheckArgs) (*CheckResult, error) {
	resp, err := rq.Request(ctx, http.MethodPost, "/checkLines",
		rest.WithJSON(rest.Params{"lines": args.Lines, "insert": args.Insert}),
	)
	if err != nil {
		return nil, err
	}

	return decode[CheckResult](resp)
}

// searchLines pages through database lines by email, password, or domain.
func searchLines(ctx context.Context, rq rest.Requester, args SearchArgs) (*SearchResult, error) {
	resp, err := rq.Request(ctx, http.MethodPost, "/search",
		rest.WithJSON(rest.Params{
			"searchBy":  args.By,
			"query":     args.Query,
			"direction": rest.OptMap(args.Direction),
			"pageToken": rest.OptString(args.PageToken),
		}),
	)
	if err != nil {
		return nil, err
	}

	return decode[SearchResult](resp)
}

// emailPasswords returns the known passwords for each email or login.
func emailPasswords(ctx context.Context, rq rest.Requester, args PasswordsArgs) (*EmailPasswords, error) {
	resp, err := rq.Request(ctx, http.MethodPost, "/emailPasswords",
		rest.WithJSON(rest.Params{
			"emails": args.Emails,
			"limit":  rest.OptInt(args.Limit),
		}),
	)
	if err != nil {
		return nil, err
	}

	return decode[EmailPasswords](resp)
}

// countLines reports the database row count, via the JSON endpoint or the
// plain-text one.
func countLines(ctx context.Context, rq rest.Requester, args LinesArgs) (*LineCount, error) {
	if !args.Plain {
		resp, err := rq.Request(ctx, http.MethodGet, "/countLines")
		if err != nil {
			return nil, err
		}

		return decode[LineCount](resp)
	}

	resp, err := rq.Request(ctx, http.MethodGet, "/countLinesPlain")
	if err != nil {
		return nil, err
	}

	out := &LineCount{}
	txt := strings.TrimSpace(resp.Text())
	if txt == "" { // recorded call, nothing to parse
		return out, nil
	}

	n, err := strconv.ParseInt(txt, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing plain line count %q: %w", txt, err)
	}
	out.Count = n

	return out, nil
}

// version reports the running service version.
func version(ctx context.Context, rq rest.Requester, _ NoArgs) (*Version, error) {
	resp, err := rq.Request(ctx, http.MethodGet, "/version")
	if err != nil {
		return nil, err
	}

	return decode[Version](resp)
}

// checkAccess reports what the configured token may do.
func checkAccess(ctx context.Context, rq rest.Requester, _ NoArgs) (*Access, error) {
	resp, err := rq.Request(ctx, http.MethodGet, "/checkAccess")
	if err != nil {
		return nil, err
	}

	return decode[Access](resp)
}

// availableQueries reports the remaining search queries per field.
func availableQueries(ctx context.Context, rq rest.Requester, _ NoArgs) (*AvailableQueries, error) {
	resp, err := rq.Request(ctx, http.MethodGet, "/availableQueries")
	if err != nil {
		return nil, err
	}

	return decode[AvailableQueries](resp)
}
