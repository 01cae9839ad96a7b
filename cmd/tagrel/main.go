package main

import (
	"os"

	"github.com/alder-tools/tagrel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitFailure)
	}
}
