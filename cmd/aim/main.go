package main

import (
	"os"

	"github.com/bnema/ai-accounts-manager/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
