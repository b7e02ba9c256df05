package main

import (
	"os"

	"github.com/vijayyy-code/question-paper-generator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
