package split_test

import (
	"fmt"

	"github.com/shapestone/shape-split/pkg/split"
)

func ExampleWhitespace() {
	tok := split.Whitespace(`xterm -e "vi /some/path"`).UnwrapQuotes(true)
	for arg := range tok.All() {
		fmt.Println(arg)
	}
	// Output:
	// xterm
	// -e
	// vi /some/path
}

func ExampleNew() {
	tok := split.New(`Type "rhit -p blog"`, ' ')
	for {
		s, ok := tok.Next()
		if !ok {
			break
		}
		fmt.Println(s)
	}
	// Output:
	// Type
	// "rhit -p blog"
}

func ExampleOnChar() {
	tok := split.OnChar(`name,"Doe, John",42`, ',').UnwrapQuotes(true)
	fmt.Printf("%q\n", tok.Collect())
	// Output:
	// ["name" "Doe, John" "42"]
}

func ExampleTokenizer_Spans() {
	text := `cp "a b" c`
	tok := split.Whitespace(text).UnwrapQuotes(true)
	for span := range tok.Spans() {
		fmt.Println(span.Start, span.End, span.In(text))
	}
	// Output:
	// 0 2 cp
	// 4 7 a b
	// 9 10 c
}

func ExampleArgs() {
	fmt.Printf("%q\n", split.Args(` a  "2 * 试" x"x "z `))
	// Output:
	// ["a" "2 * 试" "x\"x" "\"z "]
}
