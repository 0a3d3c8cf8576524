// Command lvlset runs and validates level-set evolution scenarios.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlset/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// ExitErrors were already reported by the command itself.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "lvlset:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
