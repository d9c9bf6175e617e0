package parser_test

import (
	"fmt"

	"github.com/npillmayer/sexptree/parser"
)

func ExampleParse() {
	forest, err := parser.Parse("a (b) (c   d)\n\t(e (f (g () h) i) j)")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, root := range forest {
		fmt.Println(root.Sexpr())
	}
	// Output:
	// a
	// (b)
	// (c d)
	// (e (f (g () h) i) j)
}
