package main

import (
	"os"

	"github.com/openbilling/superfaktura-go/cmd/sfaktura/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
