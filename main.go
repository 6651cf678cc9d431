package main

import (
	"os"

	"github.com/supafox/supafox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
