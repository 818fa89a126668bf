package rest_test

import (
	"fmt"
	"time"

	"github.com/lolzteam/antipublic-go/rest"
)

func ExampleBuild() {
	c, err := rest.Build("https://antipublic.one/api/v2", "your-token",
		rest.WithTimeout(30*time.Second),
		rest.WithUserAgent("myapp/1.0"),
		rest.WithDelay(time.Second),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c

	fmt.Println("client created")
	// Output: client created
}

func ExampleTrimUnset() {
	p := rest.Params{
		"searchBy":  "domain",
		"pageToken": rest.Unset,
		"limit":     rest.OptInt(0), // zero means default, dropped
	}

	trimmed := rest.TrimUnset(p)
	fmt.Println(len(trimmed))
	// Output: 1
}
