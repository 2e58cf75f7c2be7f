package listener_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/listener"
)

func ExampleYAMLTrace() {
	var buf bytes.Buffer
	tr := listener.NewYAMLTrace(&buf)
	tr.Source(1, 0, 0)
	tr.Expand(1, 0, 0, 1.5, 1.0)
	tr.Close()

	out := buf.String()
	fmt.Println(strings.Contains(out, "type: source"))
	fmt.Println(strings.Contains(out, "type: expand"))
	// Output:
	// true
	// true
}

func ExamplePosthocTrace() {
	var buf bytes.Buffer
	tr := listener.NewPosthocTrace(&buf)
	tr.Source(1, 0, 0)
	tr.Destination(2, 3, 3)

	beforeClose := buf.Len()
	tr.Close()

	fmt.Println(beforeClose)
	fmt.Println(strings.Contains(buf.String(), "type: destination"))
	// Output:
	// 0
	// true
}
