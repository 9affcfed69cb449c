// Command fontdex indexes the names of every font below a directory into a
// SQLite database.
package main

import (
	"fmt"
	"os"

	"github.com/fontdex/fontdex/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fontdex:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
