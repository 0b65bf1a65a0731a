package main

import (
	"os"

	"github.com/ARM-software/golang-numerics/numerics/cmd/numstat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
