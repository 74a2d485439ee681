// Command wireascii reads a Tagged Format payload and prints its ASCII
// rendering. It takes a single optional positional argument: a file path,
// or "-" / omitted to read standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tagwire/tagwire/ascii"
	"github.com/tagwire/tagwire/value"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var data []byte
	var err error
	switch {
	case len(args) == 0 || args[0] == "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	v, err := value.Decode(data)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, ascii.Format(v))
	return 0
}
