package main

import (
	"os"

	"github.com/pageza/pantry-match/backend/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
