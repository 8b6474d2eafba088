package main

import (
	"os"

	"github.com/consign-dev/consign/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
