// Package antipublic is a client for the Antipublic credential-lookup
// API at https://antipublic.one/api/v2.
//
// # Building a Client
//
// Use [New] with a token and optional transport settings:
//
//	ap, err := antipublic.New(token,
//		rest.WithDelay(time.Second),
//		rest.WithTimeout(30*time.Second),
//	)
//
// # Invoking Operations
//
// Every operation supports three invocation modes. Blocking:
//
//	result, err := ap.Check.Call(ctx, antipublic.CheckArgs{
//		Lines:  []string{"email:password"},
//		Insert: true,
//	})
//
// Asynchronous, resolving the result later:
//
//	pending := ap.Check.Start(ctx, args)
//	// ... other work ...
//	result, err := pending.Result()
//
// Job capture, producing a batch descriptor instead of calling out:
//
//	job, err := ap.Check.Job(ctx, args, batch.WithID("7"))
//	// {"id":"7","method":"POST","uri":"/checkLines","params":{...}}
//
// Captured jobs are collected with [batch.Payload] and submitted in one
// round trip wherever a batch executor is available.
//
// # Custom Calls
//
// Endpoints the typed table does not cover go through [Client.Request],
// or [Client.RequestJob] for the captured form:
//
//	resp, err := ap.Request(ctx, http.MethodGet, "/countLines")
package antipublic
