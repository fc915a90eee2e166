package main

import (
	"os"

	"github.com/omt66/oxrr/cmd"
	"github.com/omt66/oxrr/logutil"
)

func main() {
	logutil.SetupFromEnv()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
