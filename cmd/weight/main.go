package main

import (
	"os"
)

var (
	version = "1.0.0"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newWeightCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
