package antipublic

import (
	"context"
	"fmt"

	"github.com/lolzteam/antipublic-go/batch"
	"github.com/lolzteam/antipublic-go/call"
	"github.com/lolzteam/antipublic-go/rest"
)

// DefaultBaseURL is the production endpoint of the Antipublic API.
const DefaultBaseURL = "https://antipublic.one/api/v2"

// Client is the Antipublic API client. Operations hang off the client and
// its Info and Account groups; every one of them supports blocking,
// asynchronous, and job-capture invocation (see the call package).
type Client struct {
	rest *rest.Client

	// Check tests credential lines against the database.
	Check call.Op[CheckArgs, *CheckResult]
	// Search pages through database lines by email, password, or domain.
	Search call.Op[SearchArgs, *SearchResult]
	// Passwords returns the known passwords for emails or logins.
	Passwords call.Op[PasswordsArgs, *EmailPasswords]

	// Info groups the database metadata operations.
	Info Info
	// Account groups the token introspection operations.
	Account Account
}

// Info holds the database metadata operations.
type Info struct {
	// Lines reports how many rows the database holds.
	Lines call.Op[LinesArgs, *LineCount]
	// Version reports the running service version.
	Version call.Op[NoArgs, *Version]
}

// Account holds the token introspection operations.
type Account struct {
	// Access reports what the configured token may do.
	Access call.Op[NoArgs, *Access]
	// Queries reports the remaining search queries.
	Queries call.Op[NoArgs, *AvailableQueries]
}

// New builds a Client for the production service, authenticating with the
// given token. Options adjust the underlying transport; see [rest.Option].
func New(token string, opts ...rest.Option) (*Client, error) {
	return NewWithBaseURL(DefaultBaseURL, token, opts...)
}

// NewWithBaseURL builds a Client against a different base URL. Tests and
// self-hosted mirrors use this; everyone else wants [New].
func NewWithBaseURL(baseURL, token string, opts ...rest.Option) (*Client, error) {
	head, err := rest.Build(baseURL, token, opts...)
	if err != nil {
		return nil, fmt.Errorf("building transport: %w", err)
	}

	return bind(head), nil
}

// bind wires the operation table to the live transport head. Operations
// are bound exactly once, here.
func bind(head *rest.Client) *Client {
	return &Client{
		rest:      head,
		Check:     call.Bind("check", head, checkLines, call.Batchable()),
		Search:    call.Bind("search", head, searchLines, call.Batchable()),
		Passwords: call.Bind("passwords", head, emailPasswords, call.Batchable()),
		Info: Info{
			Lines:   call.Bind("info.lines", head, countLines, call.Batchable()),
			Version: call.Bind("info.version", head, version, call.Batchable()),
		},
		Account: Account{
			Access:  call.Bind("account.access", head, checkAccess, call.Batchable()),
			Queries: call.Bind("account.queries", head, availableQueries, call.Batchable()),
		},
	}
}

// Request performs a custom call against the service, for endpoints the
// typed operation table does not cover.
func (c *Client) Request(ctx context.Context, method, endpoint string, opts ...rest.RequestOption) (*rest.Response, error) {
	return c.rest.Request(ctx, method, endpoint, opts...)
}

// RequestJob builds a job descriptor for a custom call without sending
// it: the job-capture counterpart of [Client.Request].
func (c *Client) RequestJob(method, endpoint string, reqOpts []rest.RequestOption, opts ...batch.JobOption) (batch.Job, error) {
	return batch.NewJob(method, endpoint, reqOpts, opts...)
}
