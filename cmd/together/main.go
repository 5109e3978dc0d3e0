package main

import (
	"os"

	"github.com/bnema/together-notify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
