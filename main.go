package main

import (
	"os"

	"github.com/schedlab/rtfeas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
