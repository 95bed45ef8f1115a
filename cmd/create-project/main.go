package main

import (
	"os"

	"github.com/genai-devkit/create-project/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
