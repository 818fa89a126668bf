// Package rest provides the transport layer for the Antipublic API: a
// configurable HTTP client built on [net/http], plus the parameter-group
// model shared by live calls and recorded ones.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := rest.Build("https://antipublic.one/api/v2", token,
//		rest.WithTimeout(30*time.Second),
//		rest.WithUserAgent("myapp/1.0"),
//	)
//
// # Making Requests
//
// [Client.Request] takes the verb, the endpoint path, and up to three
// parameter groups, and returns the raw [Response]:
//
//	resp, err := c.Request(ctx, http.MethodPost, "/checkLines",
//		rest.WithJSON(rest.Params{"lines": lines, "insert": true}),
//	)
//	var result CheckResult
//	err = resp.Decode(&result)
//
// Entries whose value is [Unset] are stripped from every group before it
// reaches the wire, so optional parameters can be passed unconditionally:
//
//	rest.Params{"limit": rest.OptInt(limit)} // dropped when limit == 0
//
// # Faults
//
// A non-2xx status surfaces as a [*StatusError] wrapping
// [ErrUnexpectedStatus], with [ErrAuthFailure] joined in for 401 and 403.
// Transient transport faults, timeouts and connection failures, are
// retried on a fixed interval before the last error is returned; see
// [WithRetry].
//
// # Requester
//
// Operations depend on the [Requester] interface rather than on [Client]
// directly, so a call can be recorded instead of sent. The recording
// implementation lives in the batch package.
package rest
