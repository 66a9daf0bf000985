package main

import (
	"os"

	"github.com/tidoust/cddlparser/cmd/cddl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
