package main

import (
	"fmt"
	"os"

	"github.com/domonda/go-gridtable/internal/logger"
)

func main() {
	exitCode := 0
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
