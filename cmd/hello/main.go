package main

import (
	"os"

	"github.com/roach88/hello/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Stdout, os.Stderr))
}
