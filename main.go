package main

import (
	"os"

	"github.com/scan-io-git/solint/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
