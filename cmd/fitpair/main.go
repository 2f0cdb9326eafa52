package main

import (
	"os"

	"github.com/fitpair/fitpair/internal/cli"
	"github.com/fitpair/fitpair/logger"
)

func main() {
	logger.Init()
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
