// Command pdbquery compiles nested symbolic queries over resources and
// facts into parameterized SQL.
package main

import (
	"fmt"
	"os"

	"github.com/queryforge/pdbquery/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
