package main

import (
	"os"

	"github.com/regexvm/regexvm/cmd/regexvm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
