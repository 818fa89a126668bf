package antipublic

// SearchBy selects the field a search runs against.
type SearchBy string

const (
	SearchByEmail    SearchBy = "email"
	SearchByPassword SearchBy = "password"
	SearchByDomain   SearchBy = "domain"
)

// SearchDirection controls how a search term is matched.
type SearchDirection string

const (
	// MatchStart matches terms by prefix.
	MatchStart SearchDirection = "start"
	// MatchStrict matches terms exactly.
	MatchStrict SearchDirection = "strict"
)

// NoArgs marks operations that take no parameters.
type NoArgs struct{}

// CheckArgs are the parameters of the Check operation.
type CheckArgs struct {
	// Lines holds the credentials to test, in email:password or
	// login:password form. At most 1000 lines per call.
	Lines []string
	// Insert uploads lines the database does not already hold.
	Insert bool
}

// CheckResult reports how many of the submitted lines are known.
type CheckResult struct {
	Success      bool     `json:"success"`
	Checked      int      `json:"checked"`
	Private      int      `json:"private"`
	PrivateLines []string `json:"privateLines,omitempty"`
}

// SearchArgs are the parameters of the Search operation.
type SearchArgs struct {
	// By selects the search field.
	By SearchBy
	// Query maps the search field to its term.
	Query map[SearchBy]string
	// Direction optionally maps the search field to a match mode.
	Direction map[SearchBy]SearchDirection
	// PageToken resumes a previous search. Empty starts from the top.
	PageToken string
}

// SearchHit is one line matched by a search.
type SearchHit struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SearchResult is one page of search matches. A non-empty PageToken means
// more pages follow; feed it back through [SearchArgs.PageToken].
type SearchResult struct {
	Success   bool        `json:"success"`
	Results   []SearchHit `json:"results"`
	PageToken string      `json:"pageToken,omitempty"`
}

// PasswordsArgs are the parameters of the Passwords operation.
type PasswordsArgs struct {
	// Emails holds the emails or logins to look up.
	Emails []string
	// Limit caps the passwords returned per email. Zero means the
	// service default.
	Limit int
}

// EmailPasswords maps each requested email to its known passwords.
type EmailPasswords struct {
	Success bool                `json:"success"`
	Results map[string][]string `json:"results"`
}

// LinesArgs are the parameters of the Info.Lines operation.
type LinesArgs struct {
	// Plain asks the plain-text endpoint instead of the JSON one. The
	// result is identical either way.
	Plain bool
}

// LineCount is the number of rows the database holds.
type LineCount struct {
	Count int64 `json:"count"`
}

// Version describes the running service.
type Version struct {
	Version string `json:"version"`
}

// Access describes what the configured token may do.
type Access struct {
	Success bool `json:"success"`
	Plus    bool `json:"plus"`
}

// AvailableQueries reports the remaining search queries per field.
type AvailableQueries struct {
	Email    int `json:"email"`
	Password int `json:"password"`
	Domain   int `json:"domain"`
}
