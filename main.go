package main

import (
	"os"

	"github.com/jhardy773/security-plus-study-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
