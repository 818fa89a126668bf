package batch_test

import (
	"encoding/json"
	"fmt"

	"github.com/lolzteam/antipublic-go/batch"
	"github.com/lolzteam/antipublic-go/rest"
)

func ExampleNewJob() {
	job, err := batch.NewJob("POST", "/checkLines",
		[]rest.RequestOption{
			rest.WithJSON(rest.Params{"lines": []string{"a:b"}, "insert": true}),
		},
		batch.WithID("7"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	raw, _ := json.Marshal(job)
	fmt.Println(string(raw))
	// Output: {"id":"7","method":"POST","uri":"/checkLines","params":{"insert":true,"lines":["a:b"]}}
}

func ExamplePayload() {
	first, _ := batch.NewJob("GET", "/countLines", nil, batch.WithID("1"))
	second, _ := batch.NewJob("GET", "/version", nil, batch.WithID("2"))

	p := batch.NewPayload()
	if err := p.Add(first, second); err != nil {
		fmt.Println("error:", err)
		return
	}

	raw, _ := json.Marshal(p)
	fmt.Println(string(raw))
	// Output: [{"id":"1","method":"GET","uri":"/countLines","params":{}},{"id":"2","method":"GET","uri":"/version","params":{}}]
}
